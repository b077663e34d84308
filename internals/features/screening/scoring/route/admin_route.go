// file: internals/features/screening/scoring/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scoringcontroller "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/scoring/controller"
)

func ScoringAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := scoringcontroller.NewScoringController(db)

	candidates := admin.Group("/candidates")
	candidates.Post("/:id/recompute-olevel", ctl.RecomputeOlevelAggregate)
	candidates.Post("/:id/recompute-decision", ctl.RecomputeDecision)
}
