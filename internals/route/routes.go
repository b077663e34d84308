// file: internals/route/routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authroute "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/auth/route"
	subjectroute "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/reference/subjects/route"
	attemptroute "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/route"
	candidateroute "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/route"
	departmentroute "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/route"
	examinationroute "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/route"
	gradingroute "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/grading/route"
	scoringroute "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/scoring/route"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/middlewares"
)

// SetupRoutes wires the public applicant surface and the JWT-guarded admin
// surface under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Public
	authroute.AuthRoutes(api, db)
	subjectroute.SubjectPublicRoutes(api, db)
	candidateroute.CandidatePublicRoutes(api, db)

	// Admin (JWT)
	admin := api.Group("/admin", middlewares.AdminAuthMiddleware())
	gradingroute.GradingRuleAdminRoutes(admin, db)
	departmentroute.DepartmentAdminRoutes(admin, db)
	examinationroute.ExaminationAdminRoutes(admin, db)
	candidateroute.CandidateAdminRoutes(admin, db)
	attemptroute.TestAttemptAdminRoutes(admin, db)
	scoringroute.ScoringAdminRoutes(admin, db)
}
