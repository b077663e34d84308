// file: internals/features/auth/controller/auth_controller.go
package controller

import (
	"errors"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/auth/dto"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/auth/repository"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/auth/service"
	helper "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/helpers"
)

type AuthController struct {
	svc       *service.AuthService
	validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		svc:       service.NewAuthService(repository.NewAdminRepository(db)),
		validator: validator.New(),
	}
}

// POST /auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	token, expiresAt, err := ctl.svc.Login(c.UserContext(), req.AdminEmail, req.AdminPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "unable to login")
	}
	return helper.JsonOK(c, "login successful", dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
