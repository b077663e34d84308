// file: internals/features/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authcontroller "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/auth/controller"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/middlewares"
)

func AuthRoutes(public fiber.Router, db *gorm.DB) {
	ctl := authcontroller.NewAuthController(db)

	auth := public.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}
