// file: internals/features/screening/examinations/service/examination_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/model"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/repository"
)

var (
	ErrExaminationNotFound = errors.New("examination not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrAnswerOutOfRange    = errors.New("correct option index is outside the option list")
	ErrPassingAboveTotal   = errors.New("passing marks cannot exceed total marks")
)

type Service struct {
	repo repository.ExaminationRepository
}

func NewService(repo repository.ExaminationRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, exam model.ExaminationModel) (model.ExaminationModel, error) {
	if exam.ExaminationPassingMarks > exam.ExaminationTotalMarks {
		return model.ExaminationModel{}, ErrPassingAboveTotal
	}
	err := s.repo.Create(ctx, &exam)
	return exam, err
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (model.ExaminationModel, error) {
	exam, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ExaminationModel{}, ErrExaminationNotFound
	}
	return exam, err
}

func (s *Service) ListByDepartment(ctx context.Context, departmentID uuid.UUID) ([]model.ExaminationModel, error) {
	return s.repo.ListByDepartment(ctx, departmentID)
}

// SetActive toggles an examination. Deactivating does not touch existing
// attempts; it only stops the scheduler handing out new ones.
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) (model.ExaminationModel, error) {
	exam, err := s.GetByID(ctx, id)
	if err != nil {
		return model.ExaminationModel{}, err
	}
	exam.ExaminationIsActive = active
	err = s.repo.Save(ctx, &exam)
	return exam, err
}

func (s *Service) AddQuestion(ctx context.Context, q model.QuestionModel) (model.QuestionModel, error) {
	if q.QuestionCorrectOption < 0 || q.QuestionCorrectOption >= len(q.QuestionOptions) {
		return model.QuestionModel{}, ErrAnswerOutOfRange
	}
	if _, err := s.GetByID(ctx, q.QuestionExaminationID); err != nil {
		return model.QuestionModel{}, err
	}
	err := s.repo.CreateQuestion(ctx, &q)
	return q, err
}

func (s *Service) ListQuestions(ctx context.Context, examinationID uuid.UUID) ([]model.QuestionModel, error) {
	return s.repo.ListQuestions(ctx, examinationID)
}

func (s *Service) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteQuestion(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrQuestionNotFound
	}
	return err
}
