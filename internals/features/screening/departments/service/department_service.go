// file: internals/features/screening/departments/service/department_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/model"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/repository"
	helper "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/helpers"
)

var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDepartmentCodeExists = errors.New("a department with this code already exists")
	ErrInvalidWeightSplit   = errors.New("exam and olevel percentages must sum to 100")
)

type Service struct {
	repo repository.DepartmentRepository
}

func NewService(repo repository.DepartmentRepository) *Service {
	return &Service{repo: repo}
}

// ValidateCutoffPolicy rejects a weight split that does not sum to 100.
// Range checks on the individual marks are handled by the DTO validator;
// this is the cross-field invariant a tag cannot express.
func ValidateCutoffPolicy(examPct, olevelPct int) error {
	if examPct+olevelPct != 100 {
		return ErrInvalidWeightSplit
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (model.DepartmentModel, error) {
	dept, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DepartmentModel{}, ErrDepartmentNotFound
	}
	return dept, err
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]model.DepartmentModel, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *Service) Create(ctx context.Context, dept model.DepartmentModel) (model.DepartmentModel, error) {
	if err := ValidateCutoffPolicy(dept.DepartmentExamPercentage, dept.DepartmentOlevelPercentage); err != nil {
		return model.DepartmentModel{}, err
	}
	dept.DepartmentCode = strings.ToUpper(strings.TrimSpace(dept.DepartmentCode))
	if dept.DepartmentStatus == "" {
		dept.DepartmentStatus = model.DepartmentActive
	}
	if err := s.repo.Create(ctx, &dept); err != nil {
		if helper.IsUniqueViolation(err) {
			return model.DepartmentModel{}, ErrDepartmentCodeExists
		}
		return model.DepartmentModel{}, err
	}
	return dept, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, apply func(*model.DepartmentModel)) (model.DepartmentModel, error) {
	dept, err := s.GetByID(ctx, id)
	if err != nil {
		return model.DepartmentModel{}, err
	}
	apply(&dept)
	if err := ValidateCutoffPolicy(dept.DepartmentExamPercentage, dept.DepartmentOlevelPercentage); err != nil {
		return model.DepartmentModel{}, err
	}
	if err := s.repo.Save(ctx, &dept); err != nil {
		return model.DepartmentModel{}, err
	}
	return dept, nil
}
