// file: internals/features/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/configs"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/auth/model"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/auth/repository"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenTTL = 12 * time.Hour

type AuthService struct {
	admins repository.AdminRepository
}

func NewAuthService(admins repository.AdminRepository) *AuthService {
	return &AuthService{admins: admins}
}

// Login verifies the credentials and issues a signed admin token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", time.Time{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminPasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   admin.AdminID.String(),
		"email": admin.AdminEmail,
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// SeedDefaultAdmin creates the bootstrap admin from env credentials when the
// table is empty. Called once at startup; a populated table is a no-op.
func (s *AuthService) SeedDefaultAdmin(ctx context.Context) error {
	total, err := s.admins.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}
	if configs.AdminPassword == "" {
		log.Println("[AUTH] ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(configs.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := model.AdminModel{
		AdminEmail:        configs.AdminEmail,
		AdminFullName:     "Screening Administrator",
		AdminPasswordHash: string(hash),
	}
	if err := s.admins.Create(ctx, &admin); err != nil {
		return err
	}
	log.Printf("[AUTH] seeded default admin %s", admin.AdminEmail)
	return nil
}
