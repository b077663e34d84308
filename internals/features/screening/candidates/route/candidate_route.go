// file: internals/features/screening/candidates/route/candidate_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	candidatecontroller "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/controller"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/middlewares"
)

// CandidatePublicRoutes is the applicant-facing surface: registration,
// O-Level result submission and status lookup by registration number.
func CandidatePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := candidatecontroller.NewCandidateController(db)

	candidates := public.Group("/candidates")
	candidates.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	candidates.Post("/:id/olevel-results", ctl.SubmitOLevelResults)
	candidates.Get("/status/:regNumber", ctl.Status)
}

func CandidateAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := candidatecontroller.NewCandidateController(db)

	admin.Get("/candidates", ctl.List)
}
