// file: internals/features/screening/examinations/repository/examination_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/model"
)

type ExaminationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.ExaminationModel, error)
	// FindActiveByDepartment returns gorm.ErrRecordNotFound when the
	// department has no active examination.
	FindActiveByDepartment(ctx context.Context, departmentID uuid.UUID) (model.ExaminationModel, error)
	ListByDepartment(ctx context.Context, departmentID uuid.UUID) ([]model.ExaminationModel, error)
	Create(ctx context.Context, exam *model.ExaminationModel) error
	Save(ctx context.Context, exam *model.ExaminationModel) error

	CreateQuestion(ctx context.Context, q *model.QuestionModel) error
	ListQuestions(ctx context.Context, examinationID uuid.UUID) ([]model.QuestionModel, error)
	DeleteQuestion(ctx context.Context, id uuid.UUID) error
}

type examinationRepo struct {
	db *gorm.DB
}

func NewExaminationRepository(db *gorm.DB) ExaminationRepository {
	return &examinationRepo{db: db}
}

func (r *examinationRepo) GetByID(ctx context.Context, id uuid.UUID) (model.ExaminationModel, error) {
	var exam model.ExaminationModel
	err := r.db.WithContext(ctx).
		Where("examination_id = ?", id).
		Take(&exam).Error
	return exam, err
}

func (r *examinationRepo) FindActiveByDepartment(ctx context.Context, departmentID uuid.UUID) (model.ExaminationModel, error) {
	var exam model.ExaminationModel
	err := r.db.WithContext(ctx).
		Where("examination_department_id = ? AND examination_is_active", departmentID).
		Order("examination_created_at DESC").
		Take(&exam).Error
	return exam, err
}

func (r *examinationRepo) ListByDepartment(ctx context.Context, departmentID uuid.UUID) ([]model.ExaminationModel, error) {
	var exams []model.ExaminationModel
	err := r.db.WithContext(ctx).
		Where("examination_department_id = ?", departmentID).
		Order("examination_created_at DESC").
		Find(&exams).Error
	return exams, err
}

func (r *examinationRepo) Create(ctx context.Context, exam *model.ExaminationModel) error {
	return r.db.WithContext(ctx).Create(exam).Error
}

func (r *examinationRepo) Save(ctx context.Context, exam *model.ExaminationModel) error {
	return r.db.WithContext(ctx).Save(exam).Error
}

func (r *examinationRepo) CreateQuestion(ctx context.Context, q *model.QuestionModel) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *examinationRepo) ListQuestions(ctx context.Context, examinationID uuid.UUID) ([]model.QuestionModel, error) {
	var questions []model.QuestionModel
	err := r.db.WithContext(ctx).
		Where("question_examination_id = ?", examinationID).
		Order("question_created_at ASC").
		Find(&questions).Error
	return questions, err
}

func (r *examinationRepo) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("question_id = ?", id).
		Delete(&model.QuestionModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
