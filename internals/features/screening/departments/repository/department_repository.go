// file: internals/features/screening/departments/repository/department_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/model"
)

type DepartmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.DepartmentModel, error)
	List(ctx context.Context, offset, limit int) ([]model.DepartmentModel, int64, error)
	Create(ctx context.Context, dept *model.DepartmentModel) error
	Save(ctx context.Context, dept *model.DepartmentModel) error
}

type departmentRepo struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) GetByID(ctx context.Context, id uuid.UUID) (model.DepartmentModel, error) {
	var dept model.DepartmentModel
	err := r.db.WithContext(ctx).
		Where("department_id = ?", id).
		Take(&dept).Error
	return dept, err
}

func (r *departmentRepo) List(ctx context.Context, offset, limit int) ([]model.DepartmentModel, int64, error) {
	var (
		depts []model.DepartmentModel
		total int64
	)
	q := r.db.WithContext(ctx).Model(&model.DepartmentModel{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("department_code ASC").
		Offset(offset).Limit(limit).
		Find(&depts).Error
	return depts, total, err
}

func (r *departmentRepo) Create(ctx context.Context, dept *model.DepartmentModel) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *departmentRepo) Save(ctx context.Context, dept *model.DepartmentModel) error {
	return r.db.WithContext(ctx).Save(dept).Error
}
