// file: internals/features/reference/subjects/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectcontroller "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/reference/subjects/controller"
)

func SubjectPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := subjectcontroller.NewSubjectController(db)

	public.Get("/subjects", ctl.List)
}
