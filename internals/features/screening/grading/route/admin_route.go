package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradingcontroller "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/grading/controller"
)

func GradingRuleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := gradingcontroller.NewGradingRuleController(db)

	rules := admin.Group("/grading-rules")
	rules.Post("/", ctl.CreateRule)
	rules.Get("/", ctl.ListRules)
	rules.Patch("/:grade", ctl.UpdateRule)
	rules.Delete("/:grade", ctl.DeleteRule)
}
