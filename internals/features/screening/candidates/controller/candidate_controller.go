// file: internals/features/screening/candidates/controller/candidate_controller.go
package controller

import (
	"errors"
	"log"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attemptrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/repository"
	attemptsvc "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/service"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/dto"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/repository"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/service"
	departmentrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/repository"
	examinationrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/repository"
	helper "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/helpers"
)

type CandidateController struct {
	svc       *service.Service
	scheduler *attemptsvc.Scheduler
	validator *validator.Validate
}

func NewCandidateController(db *gorm.DB) *CandidateController {
	candidates := repository.NewCandidateRepository(db)
	return &CandidateController{
		svc: service.NewService(candidates, departmentrepo.NewDepartmentRepository(db)),
		scheduler: attemptsvc.NewScheduler(
			attemptrepo.NewTestAttemptRepository(db),
			candidates,
			examinationrepo.NewExaminationRepository(db),
		),
		validator: validator.New(),
	}
}

// POST /candidates/register
// Registration also schedules the department test when the department has an
// active examination; a department without one leaves the candidate
// registered but unassigned for a later batch run.
func (ctl *CandidateController) Register(c *fiber.Ctx) error {
	var req dto.RegisterCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	cand, err := ctl.svc.Register(c.UserContext(), req.ToModel())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegNumberExists):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, service.ErrDepartmentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrDepartmentInactive):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "unable to register candidate")
		}
	}

	if _, _, err := ctl.scheduler.AssignToCandidate(c.UserContext(), cand.CandidateID); err != nil {
		if !errors.Is(err, attemptsvc.ErrNoActiveExamination) {
			log.Printf("[SCHEDULER] candidate=%s assignment at registration failed: %v", cand.CandidateID, err)
		}
	}

	// Re-read so the response reflects the post-assignment status.
	fresh, err := ctl.svc.GetByID(c.UserContext(), cand.CandidateID)
	if err == nil {
		cand = fresh
	}
	return helper.JsonCreated(c, "candidate registered", dto.ToCandidateDTO(cand))
}

// POST /candidates/:id/olevel-results
func (ctl *CandidateController) SubmitOLevelResults(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid candidate id")
	}

	var req dto.SubmitOLevelResultsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	grades := make([]service.SubjectGrade, 0, len(req.Results))
	for _, r := range req.Results {
		grades = append(grades, service.SubjectGrade{SubjectID: r.SubjectID, Grade: r.Grade})
	}
	if err := ctl.svc.SubmitOLevelResults(c.UserContext(), id, grades); err != nil {
		if errors.Is(err, service.ErrCandidateNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to record results")
	}
	return helper.JsonUpdated(c, "olevel results recorded", fiber.Map{
		"candidate_id":    id,
		"results_written": len(grades),
	})
}

// GET /candidates/status/:regNumber
func (ctl *CandidateController) Status(c *fiber.Ctx) error {
	cand, err := ctl.svc.GetByRegNumber(c.UserContext(), c.Params("regNumber"))
	if err != nil {
		if errors.Is(err, service.ErrCandidateNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to load status")
	}

	results, err := ctl.svc.ListOLevelResults(c.UserContext(), cand.CandidateID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to load status")
	}
	return helper.JsonOK(c, "", dto.StatusDTO{
		CandidateRegNumber:       cand.CandidateRegNumber,
		CandidateFullName:        cand.CandidateFullName,
		CandidateOlevelAggregate: cand.CandidateOlevelAggregate,
		CandidateFinalScore:      cand.CandidateFinalScore,
		CandidateAdmissionStatus: cand.CandidateAdmissionStatus.String(),
		OLevelResults:            dto.ToOLevelResultDTOs(results),
	})
}

// GET /admin/candidates
func (ctl *CandidateController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	cands, total, err := ctl.svc.List(c.UserContext(), paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to list candidates")
	}
	return helper.JsonList(c, "", dto.ToCandidateDTOs(cands),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
