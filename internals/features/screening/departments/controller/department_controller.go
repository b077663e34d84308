// file: internals/features/screening/departments/controller/department_controller.go
package controller

import (
	"errors"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/dto"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/model"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/repository"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/service"
	helper "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/helpers"
)

type DepartmentController struct {
	svc       *service.Service
	validator *validator.Validate
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{
		svc:       service.NewService(repository.NewDepartmentRepository(db)),
		validator: validator.New(),
	}
}

// POST /admin/departments
func (ctl *DepartmentController) CreateDepartment(c *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	dept, err := ctl.svc.Create(c.UserContext(), model.DepartmentModel{
		DepartmentName:                  req.DepartmentName,
		DepartmentCode:                  req.DepartmentCode,
		DepartmentExamPercentage:        req.DepartmentExamPercentage,
		DepartmentOlevelPercentage:      req.DepartmentOlevelPercentage,
		DepartmentUtmeCutoffMark:        req.DepartmentUtmeCutoffMark,
		DepartmentOlevelCutoffAggregate: req.DepartmentOlevelCutoffAggregate,
		DepartmentFinalCutoffMark:       req.DepartmentFinalCutoffMark,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidWeightSplit):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDepartmentCodeExists):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "unable to create department")
		}
	}
	return helper.JsonCreated(c, "department created", dto.ToDepartmentDTO(dept))
}

// GET /admin/departments
func (ctl *DepartmentController) ListDepartments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	depts, total, err := ctl.svc.List(c.UserContext(), paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to list departments")
	}
	return helper.JsonList(c, "", dto.ToDepartmentDTOs(depts),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /admin/departments/:id
func (ctl *DepartmentController) GetDepartment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid department id")
	}
	dept, err := ctl.svc.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrDepartmentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to fetch department")
	}
	return helper.JsonOK(c, "", dto.ToDepartmentDTO(dept))
}

// PUT /admin/departments/:id
func (ctl *DepartmentController) UpdateDepartment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid department id")
	}
	var req dto.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	dept, err := ctl.svc.Update(c.UserContext(), id, func(d *model.DepartmentModel) {
		d.DepartmentName = req.DepartmentName
		d.DepartmentExamPercentage = req.DepartmentExamPercentage
		d.DepartmentOlevelPercentage = req.DepartmentOlevelPercentage
		d.DepartmentUtmeCutoffMark = req.DepartmentUtmeCutoffMark
		d.DepartmentOlevelCutoffAggregate = req.DepartmentOlevelCutoffAggregate
		d.DepartmentFinalCutoffMark = req.DepartmentFinalCutoffMark
		d.DepartmentStatus = model.DepartmentStatus(req.DepartmentStatus)
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDepartmentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidWeightSplit):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "unable to update department")
		}
	}
	return helper.JsonUpdated(c, "department updated", dto.ToDepartmentDTO(dept))
}
