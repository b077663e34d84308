// file: internals/features/auth/repository/admin_repository.go
package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/auth/model"
)

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (model.AdminModel, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, admin *model.AdminModel) error
}

type adminRepo struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetByEmail(ctx context.Context, email string) (model.AdminModel, error) {
	var admin model.AdminModel
	err := r.db.WithContext(ctx).
		Where("admin_email = ?", strings.ToLower(strings.TrimSpace(email))).
		Take(&admin).Error
	return admin, err
}

func (r *adminRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.AdminModel{}).Count(&total).Error
	return total, err
}

func (r *adminRepo) Create(ctx context.Context, admin *model.AdminModel) error {
	admin.AdminEmail = strings.ToLower(strings.TrimSpace(admin.AdminEmail))
	return r.db.WithContext(ctx).Create(admin).Error
}
