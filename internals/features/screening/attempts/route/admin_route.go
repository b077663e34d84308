// file: internals/features/screening/attempts/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptcontroller "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/controller"
)

func TestAttemptAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := attemptcontroller.NewTestAttemptController(db)

	attempts := admin.Group("/attempts")
	attempts.Post("/assign/:candidateId", ctl.AssignToCandidate)
	attempts.Post("/assign-all", ctl.AssignToAllUnassigned)
	attempts.Post("/:id/result", ctl.RecordResult)
}
