package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examcontroller "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/controller"
)

func ExaminationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := examcontroller.NewExaminationController(db)

	exams := admin.Group("/examinations")
	exams.Post("/", ctl.CreateExamination)
	exams.Get("/", ctl.ListExaminations)
	exams.Patch("/:id/active", ctl.SetActive)

	questions := admin.Group("/questions")
	questions.Post("/", ctl.CreateQuestion)
	questions.Get("/", ctl.ListQuestions)
	questions.Delete("/:id", ctl.DeleteQuestion)
}
