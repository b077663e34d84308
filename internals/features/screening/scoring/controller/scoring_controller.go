// file: internals/features/screening/scoring/controller/scoring_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attemptrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/repository"
	candidaterepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/repository"
	candidatesvc "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/service"
	departmentrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/repository"
	examinationrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/repository"
	gradingrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/grading/repository"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/scoring/dto"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/scoring/service"
	helper "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/helpers"
)

type ScoringController struct {
	engine *service.Engine
}

func NewScoringController(db *gorm.DB) *ScoringController {
	return &ScoringController{
		engine: service.NewEngine(
			candidaterepo.NewCandidateRepository(db),
			departmentrepo.NewDepartmentRepository(db),
			examinationrepo.NewExaminationRepository(db),
			attemptrepo.NewTestAttemptRepository(db),
			gradingrepo.NewGradingRuleRepository(db),
		),
	}
}

// POST /admin/candidates/:id/recompute-olevel
func (ctl *ScoringController) RecomputeOlevelAggregate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid candidate id")
	}

	agg, err := ctl.engine.RecomputeOlevelAggregate(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, candidatesvc.ErrCandidateNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to recompute aggregate")
	}
	return helper.JsonOK(c, "aggregate recomputed", dto.AggregateDTO{
		OlevelAggregate:  agg.Total,
		UnresolvedGrades: agg.Unresolved,
	})
}

// POST /admin/candidates/:id/recompute-decision
func (ctl *ScoringController) RecomputeDecision(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid candidate id")
	}

	out, err := ctl.engine.RecomputeFinalScoreAndDecision(c.UserContext(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCandidateNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrDepartmentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "unable to recompute decision")
		}
	}
	return helper.JsonOK(c, "decision recomputed", dto.ToDecisionDTO(out))
}
