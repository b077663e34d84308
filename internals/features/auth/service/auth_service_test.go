// file: internals/features/auth/service/auth_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/configs"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/auth/model"
)

type memAdminRepo struct {
	admins map[string]model.AdminModel
}

func (f *memAdminRepo) GetByEmail(_ context.Context, email string) (model.AdminModel, error) {
	a, ok := f.admins[email]
	if !ok {
		return model.AdminModel{}, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (f *memAdminRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.admins)), nil
}

func (f *memAdminRepo) Create(_ context.Context, admin *model.AdminModel) error {
	f.admins[admin.AdminEmail] = *admin
	return nil
}

func TestLogin(t *testing.T) {
	configs.JWTSecret = "test-secret"
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &memAdminRepo{admins: map[string]model.AdminModel{
		"admin@screening.local": {AdminEmail: "admin@screening.local", AdminPasswordHash: string(hash)},
	}}
	svc := NewAuthService(repo)
	ctx := context.Background()

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		token, _, err := svc.Login(ctx, "admin@screening.local", "correct-horse")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			t.Fatalf("issued token does not verify: %v", err)
		}
		if claims["email"] != "admin@screening.local" {
			t.Errorf("email claim = %v", claims["email"])
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if _, _, err := svc.Login(ctx, "admin@screening.local", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		if _, _, err := svc.Login(ctx, "nobody@screening.local", "correct-horse"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestSeedDefaultAdmin(t *testing.T) {
	configs.JWTSecret = "test-secret"
	configs.AdminEmail = "admin@screening.local"
	configs.AdminPassword = "bootstrap-password"
	repo := &memAdminRepo{admins: map[string]model.AdminModel{}}
	svc := NewAuthService(repo)
	ctx := context.Background()

	if err := svc.SeedDefaultAdmin(ctx); err != nil {
		t.Fatalf("SeedDefaultAdmin: %v", err)
	}
	if len(repo.admins) != 1 {
		t.Fatalf("admin count = %d, want 1", len(repo.admins))
	}

	// Populated table: a second seed is a no-op.
	if err := svc.SeedDefaultAdmin(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if len(repo.admins) != 1 {
		t.Errorf("admin count after reseed = %d, want still 1", len(repo.admins))
	}

	if _, _, err := svc.Login(ctx, configs.AdminEmail, configs.AdminPassword); err != nil {
		t.Errorf("seeded admin cannot log in: %v", err)
	}
}
