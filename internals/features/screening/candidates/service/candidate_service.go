// file: internals/features/screening/candidates/service/candidate_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/model"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/repository"
	departmentrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/repository"
	helper "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/helpers"
)

var (
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrRegNumberExists    = errors.New("a candidate with this registration number already exists")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentInactive = errors.New("department is not accepting candidates")
)

type Service struct {
	repo        repository.CandidateRepository
	departments departmentrepo.DepartmentRepository
}

func NewService(repo repository.CandidateRepository, departments departmentrepo.DepartmentRepository) *Service {
	return &Service{repo: repo, departments: departments}
}

// Register creates the candidate in NOT_STARTED. Test assignment happens
// right after at the boundary (the scheduler is a separate component that
// shares the candidate records).
func (s *Service) Register(ctx context.Context, cand model.CandidateModel) (model.CandidateModel, error) {
	dept, err := s.departments.GetByID(ctx, cand.CandidateDepartmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CandidateModel{}, ErrDepartmentNotFound
	}
	if err != nil {
		return model.CandidateModel{}, err
	}
	if !dept.IsActive() {
		return model.CandidateModel{}, ErrDepartmentInactive
	}

	cand.CandidateAdmissionStatus = model.AdmissionNotStarted
	if err := s.repo.Create(ctx, &cand); err != nil {
		if helper.IsUniqueViolation(err) {
			return model.CandidateModel{}, ErrRegNumberExists
		}
		return model.CandidateModel{}, err
	}
	return cand, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (model.CandidateModel, error) {
	cand, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CandidateModel{}, ErrCandidateNotFound
	}
	return cand, err
}

func (s *Service) GetByRegNumber(ctx context.Context, regNumber string) (model.CandidateModel, error) {
	cand, err := s.repo.GetByRegNumber(ctx, regNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CandidateModel{}, ErrCandidateNotFound
	}
	return cand, err
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]model.CandidateModel, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

type SubjectGrade struct {
	SubjectID uuid.UUID
	Grade     string
}

// SubmitOLevelResults records subject grades for a candidate. A resubmitted
// subject replaces the previous grade (the composite unique index backs
// this). The cached aggregate is NOT touched here; recomputation is an
// explicit separate operation.
func (s *Service) SubmitOLevelResults(ctx context.Context, candidateID uuid.UUID, grades []SubjectGrade) error {
	if _, err := s.GetByID(ctx, candidateID); err != nil {
		return err
	}
	for _, sg := range grades {
		result := model.OLevelResultModel{
			OlevelResultCandidateID: candidateID,
			OlevelResultSubjectID:   sg.SubjectID,
			OlevelResultGrade:       sg.Grade,
		}
		if err := s.repo.UpsertOLevelResult(ctx, &result); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) ListOLevelResults(ctx context.Context, candidateID uuid.UUID) ([]model.OLevelResultModel, error) {
	return s.repo.ListOLevelResults(ctx, candidateID)
}
