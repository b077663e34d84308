// file: internals/features/screening/attempts/controller/test_attempt_controller.go
package controller

import (
	"errors"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/dto"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/repository"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/service"
	candidaterepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/repository"
	examinationrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/repository"
	helper "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/helpers"
)

type TestAttemptController struct {
	scheduler *service.Scheduler
	validator *validator.Validate
}

func NewTestAttemptController(db *gorm.DB) *TestAttemptController {
	return &TestAttemptController{
		scheduler: service.NewScheduler(
			repository.NewTestAttemptRepository(db),
			candidaterepo.NewCandidateRepository(db),
			examinationrepo.NewExaminationRepository(db),
		),
		validator: validator.New(),
	}
}

// POST /admin/attempts/assign/:candidateId
func (ctl *TestAttemptController) AssignToCandidate(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("candidateId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid candidate id")
	}

	attempt, created, err := ctl.scheduler.AssignToCandidate(c.UserContext(), candidateID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCandidateNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNoActiveExamination):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "unable to assign test")
		}
	}

	resp := dto.AssignResponse{Attempt: dto.ToTestAttemptDTO(attempt), Created: created}
	if created {
		return helper.JsonCreated(c, "test assigned", resp)
	}
	return helper.JsonOK(c, "test already assigned", resp)
}

// POST /admin/attempts/assign-all
func (ctl *TestAttemptController) AssignToAllUnassigned(c *fiber.Ctx) error {
	report, err := ctl.scheduler.AssignToAllUnassigned(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to run batch assignment")
	}
	return helper.JsonOK(c, "batch assignment finished", dto.ToBatchReportDTO(report))
}

// POST /admin/attempts/:id/result
func (ctl *TestAttemptController) RecordResult(c *fiber.Ctx) error {
	attemptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid attempt id")
	}

	var req dto.RecordResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	attempt, err := ctl.scheduler.RecordResult(c.UserContext(), attemptID, req.TestAttemptScore, req.Submitted)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttemptNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrScoreOutOfRange):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "unable to record result")
		}
	}
	return helper.JsonUpdated(c, "result recorded", dto.ToTestAttemptDTO(attempt))
}
