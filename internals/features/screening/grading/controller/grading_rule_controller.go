// file: internals/features/screening/grading/controller/grading_rule_controller.go
package controller

import (
	"errors"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/grading/dto"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/grading/repository"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/grading/service"
	helper "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/helpers"
)

type GradingRuleController struct {
	svc       *service.Resolver
	validator *validator.Validate
}

func NewGradingRuleController(db *gorm.DB) *GradingRuleController {
	return &GradingRuleController{
		svc:       service.NewResolver(repository.NewGradingRuleRepository(db)),
		validator: validator.New(),
	}
}

// POST /admin/grading-rules
func (ctl *GradingRuleController) CreateRule(c *fiber.Ctx) error {
	var req dto.CreateGradingRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	rule, err := ctl.svc.CreateRule(c.UserContext(), req.GradingRuleGrade, req.GradingRuleMarks)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGradeExists):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, service.ErrNegativeMarks):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "unable to create grading rule")
		}
	}
	return helper.JsonCreated(c, "grading rule created", dto.ToGradingRuleDTO(rule))
}

// GET /admin/grading-rules
func (ctl *GradingRuleController) ListRules(c *fiber.Ctx) error {
	rules, err := ctl.svc.ListRules(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to list grading rules")
	}
	return helper.JsonOK(c, "", dto.ToGradingRuleDTOs(rules))
}

// PATCH /admin/grading-rules/:grade
func (ctl *GradingRuleController) UpdateRule(c *fiber.Ctx) error {
	grade := c.Params("grade")
	var req dto.UpdateGradingRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	rule, err := ctl.svc.UpdateRule(c.UserContext(), grade, req.GradingRuleMarks)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRuleNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNegativeMarks):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "unable to update grading rule")
		}
	}
	return helper.JsonUpdated(c, "grading rule updated", dto.ToGradingRuleDTO(rule))
}

// DELETE /admin/grading-rules/:grade
func (ctl *GradingRuleController) DeleteRule(c *fiber.Ctx) error {
	grade := c.Params("grade")
	if err := ctl.svc.DeleteRule(c.UserContext(), grade); err != nil {
		if errors.Is(err, service.ErrRuleNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to delete grading rule")
	}
	return helper.JsonDeleted(c, "grading rule deleted", fiber.Map{"grading_rule_grade": grade})
}
