// file: internals/features/screening/examinations/controller/examination_controller.go
package controller

import (
	"errors"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/dto"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/model"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/repository"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/service"
	helper "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/helpers"
)

type ExaminationController struct {
	svc       *service.Service
	validator *validator.Validate
}

func NewExaminationController(db *gorm.DB) *ExaminationController {
	return &ExaminationController{
		svc:       service.NewService(repository.NewExaminationRepository(db)),
		validator: validator.New(),
	}
}

// POST /admin/examinations
func (ctl *ExaminationController) CreateExamination(c *fiber.Ctx) error {
	var req dto.CreateExaminationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	departmentID, err := uuid.Parse(req.ExaminationDepartmentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid department id")
	}

	exam, err := ctl.svc.Create(c.UserContext(), model.ExaminationModel{
		ExaminationDepartmentID:    departmentID,
		ExaminationTitle:           req.ExaminationTitle,
		ExaminationDurationMinutes: req.ExaminationDurationMinutes,
		ExaminationTotalMarks:      req.ExaminationTotalMarks,
		ExaminationPassingMarks:    req.ExaminationPassingMarks,
		ExaminationIsActive:        true,
	})
	if err != nil {
		if errors.Is(err, service.ErrPassingAboveTotal) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to create examination")
	}
	return helper.JsonCreated(c, "examination created", dto.ToExaminationDTO(exam))
}

// GET /admin/examinations?department_id=
func (ctl *ExaminationController) ListExaminations(c *fiber.Ctx) error {
	departmentID, err := uuid.Parse(c.Query("department_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "department_id query is required")
	}
	exams, err := ctl.svc.ListByDepartment(c.UserContext(), departmentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to list examinations")
	}
	return helper.JsonOK(c, "", dto.ToExaminationDTOs(exams))
}

// PATCH /admin/examinations/:id/active
func (ctl *ExaminationController) SetActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid examination id")
	}
	var req struct {
		Active bool `json:"active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	exam, err := ctl.svc.SetActive(c.UserContext(), id, req.Active)
	if err != nil {
		if errors.Is(err, service.ErrExaminationNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to update examination")
	}
	return helper.JsonUpdated(c, "examination updated", dto.ToExaminationDTO(exam))
}

// POST /admin/questions
func (ctl *ExaminationController) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	examinationID, err := uuid.Parse(req.QuestionExaminationID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid examination id")
	}

	q, err := ctl.svc.AddQuestion(c.UserContext(), model.QuestionModel{
		QuestionExaminationID: examinationID,
		QuestionContent:       req.QuestionContent,
		QuestionOptions:       req.QuestionOptions,
		QuestionCorrectOption: req.QuestionCorrectOption,
		QuestionMarks:         req.QuestionMarks,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAnswerOutOfRange):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrExaminationNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "unable to create question")
		}
	}
	return helper.JsonCreated(c, "question created", dto.ToQuestionDTO(q))
}

// GET /admin/questions?examination_id=
func (ctl *ExaminationController) ListQuestions(c *fiber.Ctx) error {
	examinationID, err := uuid.Parse(c.Query("examination_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "examination_id query is required")
	}
	questions, err := ctl.svc.ListQuestions(c.UserContext(), examinationID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to list questions")
	}
	return helper.JsonOK(c, "", dto.ToQuestionDTOs(questions))
}

// DELETE /admin/questions/:id
func (ctl *ExaminationController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid question id")
	}
	if err := ctl.svc.DeleteQuestion(c.UserContext(), id); err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to delete question")
	}
	return helper.JsonDeleted(c, "question deleted", fiber.Map{"question_id": id})
}
