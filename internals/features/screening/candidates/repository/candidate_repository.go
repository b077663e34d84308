// file: internals/features/screening/candidates/repository/candidate_repository.go
package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/model"
)

type CandidateRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.CandidateModel, error)
	GetByRegNumber(ctx context.Context, regNumber string) (model.CandidateModel, error)
	List(ctx context.Context, offset, limit int) ([]model.CandidateModel, int64, error)
	// ListUnassigned returns candidates with zero test attempts.
	ListUnassigned(ctx context.Context) ([]model.CandidateModel, error)
	Create(ctx context.Context, cand *model.CandidateModel) error

	// UpdateDerived writes olevel_aggregate, final_score, admission_status
	// and the breakdown snapshot in ONE statement. Concurrent recomputes
	// therefore settle last-writer-wins on the whole triple, never a field
	// mix from two snapshots.
	UpdateDerived(ctx context.Context, id uuid.UUID, aggregate, finalScore int, status model.AdmissionStatus, breakdown datatypes.JSON) error

	// MarkInProgress flips NOT_STARTED -> IN_PROGRESS; a no-op for any other
	// current status.
	MarkInProgress(ctx context.Context, id uuid.UUID) error

	ListOLevelResults(ctx context.Context, candidateID uuid.UUID) ([]model.OLevelResultModel, error)
	UpsertOLevelResult(ctx context.Context, result *model.OLevelResultModel) error
}

type candidateRepo struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) GetByID(ctx context.Context, id uuid.UUID) (model.CandidateModel, error) {
	var cand model.CandidateModel
	err := r.db.WithContext(ctx).
		Where("candidate_id = ?", id).
		Take(&cand).Error
	return cand, err
}

func (r *candidateRepo) GetByRegNumber(ctx context.Context, regNumber string) (model.CandidateModel, error) {
	var cand model.CandidateModel
	err := r.db.WithContext(ctx).
		Where("candidate_reg_number = ?", strings.ToUpper(strings.TrimSpace(regNumber))).
		Take(&cand).Error
	return cand, err
}

func (r *candidateRepo) List(ctx context.Context, offset, limit int) ([]model.CandidateModel, int64, error) {
	var (
		cands []model.CandidateModel
		total int64
	)
	q := r.db.WithContext(ctx).Model(&model.CandidateModel{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("candidate_created_at DESC").
		Offset(offset).Limit(limit).
		Find(&cands).Error
	return cands, total, err
}

func (r *candidateRepo) ListUnassigned(ctx context.Context) ([]model.CandidateModel, error) {
	var cands []model.CandidateModel
	err := r.db.WithContext(ctx).
		Where(`NOT EXISTS (
			SELECT 1 FROM test_attempts
			 WHERE test_attempt_candidate_id = candidates.candidate_id
		)`).
		Order("candidate_created_at ASC").
		Find(&cands).Error
	return cands, err
}

func (r *candidateRepo) Create(ctx context.Context, cand *model.CandidateModel) error {
	cand.CandidateRegNumber = strings.ToUpper(strings.TrimSpace(cand.CandidateRegNumber))
	return r.db.WithContext(ctx).Create(cand).Error
}

func (r *candidateRepo) UpdateDerived(ctx context.Context, id uuid.UUID, aggregate, finalScore int, status model.AdmissionStatus, breakdown datatypes.JSON) error {
	updates := map[string]any{
		"candidate_olevel_aggregate": aggregate,
		"candidate_final_score":      finalScore,
		"candidate_admission_status": status,
		"candidate_updated_at":       gorm.Expr("now()"),
	}
	if breakdown != nil {
		updates["candidate_score_breakdown"] = breakdown
	}
	res := r.db.WithContext(ctx).
		Model(&model.CandidateModel{}).
		Where("candidate_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *candidateRepo) MarkInProgress(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.CandidateModel{}).
		Where("candidate_id = ? AND candidate_admission_status = ?", id, model.AdmissionNotStarted).
		Updates(map[string]any{
			"candidate_admission_status": model.AdmissionInProgress,
			"candidate_updated_at":       gorm.Expr("now()"),
		}).Error
}

func (r *candidateRepo) ListOLevelResults(ctx context.Context, candidateID uuid.UUID) ([]model.OLevelResultModel, error) {
	var results []model.OLevelResultModel
	err := r.db.WithContext(ctx).
		Where("olevel_result_candidate_id = ?", candidateID).
		Order("olevel_result_created_at ASC").
		Find(&results).Error
	return results, err
}

func (r *candidateRepo) UpsertOLevelResult(ctx context.Context, result *model.OLevelResultModel) error {
	result.OlevelResultGrade = strings.ToUpper(strings.TrimSpace(result.OlevelResultGrade))
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "olevel_result_candidate_id"},
				{Name: "olevel_result_subject_id"},
			},
			DoUpdates: clause.Assignments(map[string]any{
				"olevel_result_grade":      result.OlevelResultGrade,
				"olevel_result_updated_at": gorm.Expr("now()"),
			}),
		}).
		Create(result).Error
}
