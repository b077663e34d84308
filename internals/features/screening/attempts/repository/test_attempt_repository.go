// file: internals/features/screening/attempts/repository/test_attempt_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/model"
)

type TestAttemptRepository interface {
	Find(ctx context.Context, candidateID, examinationID uuid.UUID) (model.TestAttemptModel, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.TestAttemptModel, error)
	// LatestFinished returns the most recent COMPLETED/SUBMITTED attempt for
	// the pair, or gorm.ErrRecordNotFound.
	LatestFinished(ctx context.Context, candidateID, examinationID uuid.UUID) (model.TestAttemptModel, error)
	// CreateIfAbsent inserts the attempt, or returns the existing row when
	// the (candidate, examination) pair already has one. The boolean is true
	// when a new row was inserted.
	CreateIfAbsent(ctx context.Context, attempt *model.TestAttemptModel) (bool, error)
	Save(ctx context.Context, attempt *model.TestAttemptModel) error
}

type testAttemptRepo struct {
	db *gorm.DB
}

func NewTestAttemptRepository(db *gorm.DB) TestAttemptRepository {
	return &testAttemptRepo{db: db}
}

func (r *testAttemptRepo) Find(ctx context.Context, candidateID, examinationID uuid.UUID) (model.TestAttemptModel, error) {
	var attempt model.TestAttemptModel
	err := r.db.WithContext(ctx).
		Where("test_attempt_candidate_id = ? AND test_attempt_examination_id = ?", candidateID, examinationID).
		Take(&attempt).Error
	return attempt, err
}

func (r *testAttemptRepo) GetByID(ctx context.Context, id uuid.UUID) (model.TestAttemptModel, error) {
	var attempt model.TestAttemptModel
	err := r.db.WithContext(ctx).
		Where("test_attempt_id = ?", id).
		Take(&attempt).Error
	return attempt, err
}

func (r *testAttemptRepo) LatestFinished(ctx context.Context, candidateID, examinationID uuid.UUID) (model.TestAttemptModel, error) {
	var attempt model.TestAttemptModel
	err := r.db.WithContext(ctx).
		Where("test_attempt_candidate_id = ? AND test_attempt_examination_id = ?", candidateID, examinationID).
		Where("test_attempt_status IN ?", []model.TestAttemptStatus{model.AttemptCompleted, model.AttemptSubmitted}).
		Order("test_attempt_updated_at DESC").
		Take(&attempt).Error
	return attempt, err
}

func (r *testAttemptRepo) CreateIfAbsent(ctx context.Context, attempt *model.TestAttemptModel) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "test_attempt_candidate_id"},
				{Name: "test_attempt_examination_id"},
			},
			DoNothing: true,
		}).
		Create(attempt)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	// Lost the race (or the pair already existed): hand back the winner.
	existing, err := r.Find(ctx, attempt.TestAttemptCandidateID, attempt.TestAttemptExaminationID)
	if err != nil {
		return false, err
	}
	*attempt = existing
	return false, nil
}

func (r *testAttemptRepo) Save(ctx context.Context, attempt *model.TestAttemptModel) error {
	return r.db.WithContext(ctx).Save(attempt).Error
}
