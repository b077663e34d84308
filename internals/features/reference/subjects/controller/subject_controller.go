// file: internals/features/reference/subjects/controller/subject_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/reference/subjects/model"
	helper "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/helpers"
)

type SubjectController struct {
	db *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{db: db}
}

// GET /subjects
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	var subjects []model.SubjectModel
	if err := ctl.db.WithContext(c.UserContext()).
		Order("subject_name ASC").
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to list subjects")
	}
	return helper.JsonOK(c, "", subjects)
}
