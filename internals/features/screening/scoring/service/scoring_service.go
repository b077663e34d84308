// file: internals/features/screening/scoring/service/scoring_service.go
package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	attemptmodel "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/model"
	attemptrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/repository"
	candidatemodel "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/model"
	candidaterepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/repository"
	candidatesvc "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/service"
	departmentmodel "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/model"
	departmentrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/repository"
	examinationrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/repository"
	gradingrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/grading/repository"
)

var (
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrDepartmentNotFound = errors.New("department not found")
)

/* =======================================================
   SCORING: weighted final score + admission decision
   ======================================================= */

// ScoreBreakdown is the audit snapshot written alongside the derived triple.
// It records every input that produced the cached final score so a decision
// can be replayed later.
type ScoreBreakdown struct {
	UtmeScore        int     `json:"utme_score"`
	OlevelAggregate  int     `json:"olevel_aggregate"`
	OlevelCeiling    int     `json:"olevel_ceiling"`
	OlevelNormalized float64 `json:"olevel_normalized"`
	TestScore        int     `json:"test_score"`
	TestTotalMarks   int     `json:"test_total_marks"`
	ExamContribution float64 `json:"exam_contribution"`
	FinalScore       int     `json:"final_score"`
	Provisional      bool    `json:"provisional"`
	ComputedAt       string  `json:"computed_at"`
}

// Outcome is what a recompute hands back to the boundary.
type Outcome struct {
	FinalScore      int
	AdmissionStatus candidatemodel.AdmissionStatus
	Breakdown       ScoreBreakdown
}

// Engine computes the weighted final score and drives the admission status
// state machine. All reads happen up front; the single derived-triple write
// at the end keeps concurrent recomputes last-writer-wins on a whole
// snapshot.
type Engine struct {
	candidates   candidaterepo.CandidateRepository
	departments  departmentrepo.DepartmentRepository
	examinations examinationrepo.ExaminationRepository
	attempts     attemptrepo.TestAttemptRepository
	grading      gradingrepo.GradingRuleRepository
	aggregator   *candidatesvc.Aggregator
}

func NewEngine(
	candidates candidaterepo.CandidateRepository,
	departments departmentrepo.DepartmentRepository,
	examinations examinationrepo.ExaminationRepository,
	attempts attemptrepo.TestAttemptRepository,
	grading gradingrepo.GradingRuleRepository,
) *Engine {
	return &Engine{
		candidates:   candidates,
		departments:  departments,
		examinations: examinations,
		attempts:     attempts,
		grading:      grading,
		aggregator:   candidatesvc.NewAggregator(candidates, grading),
	}
}

// roundHalfUp rounds to the nearest whole point, .5 going up.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// normalizationCeiling is the maximum attainable aggregate: the number of
// recorded subjects times the best marks value in the grading table. When
// the grading table is empty or the candidate has no recorded subjects, the
// department's cutoff aggregate serves as the reference ceiling.
func (e *Engine) normalizationCeiling(ctx context.Context, candidateID uuid.UUID, dept departmentmodel.DepartmentModel) (int, error) {
	results, err := e.candidates.ListOLevelResults(ctx, candidateID)
	if err != nil {
		return 0, err
	}
	snap, err := e.grading.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	best := 0
	for _, marks := range snap {
		if marks > best {
			best = marks
		}
	}
	ceiling := len(results) * best
	if ceiling <= 0 {
		ceiling = dept.DepartmentOlevelCutoffAggregate
	}
	return ceiling, nil
}

// ComputeFinalScore is a pure read: identical candidate, department, grading
// and attempt state always yields the identical rounded result.
func (e *Engine) ComputeFinalScore(ctx context.Context, candidateID uuid.UUID) (ScoreBreakdown, error) {
	cand, err := e.candidates.GetByID(ctx, candidateID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ScoreBreakdown{}, ErrCandidateNotFound
	}
	if err != nil {
		return ScoreBreakdown{}, err
	}
	dept, err := e.departments.GetByID(ctx, cand.CandidateDepartmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ScoreBreakdown{}, ErrDepartmentNotFound
	}
	if err != nil {
		return ScoreBreakdown{}, err
	}

	agg, err := e.aggregator.ComputeAggregate(ctx, candidateID)
	if err != nil {
		return ScoreBreakdown{}, err
	}
	ceiling, err := e.normalizationCeiling(ctx, candidateID, dept)
	if err != nil {
		return ScoreBreakdown{}, err
	}

	bd := ScoreBreakdown{
		UtmeScore:       cand.CandidateUtmeScore,
		OlevelAggregate: agg.Total,
		OlevelCeiling:   ceiling,
		ComputedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if ceiling > 0 {
		bd.OlevelNormalized = float64(agg.Total) / float64(ceiling) * 100
		if bd.OlevelNormalized > 100 {
			bd.OlevelNormalized = 100
		}
	}

	attempt, err := e.latestFinishedAttempt(ctx, cand)
	switch {
	case err != nil:
		return ScoreBreakdown{}, err
	case attempt == nil:
		// No finished test yet: exam contributes zero and the score is
		// provisional, never decision-grade.
		bd.Provisional = true
	default:
		exam, err := e.examinations.GetByID(ctx, attempt.TestAttemptExaminationID)
		if err != nil {
			return ScoreBreakdown{}, err
		}
		bd.TestScore = attempt.TestAttemptScore
		bd.TestTotalMarks = exam.ExaminationTotalMarks
		if exam.ExaminationTotalMarks > 0 {
			bd.ExamContribution = float64(attempt.TestAttemptScore) / float64(exam.ExaminationTotalMarks) * 100
		}
	}

	bd.FinalScore = roundHalfUp(dept.WeightedScore(bd.ExamContribution, bd.OlevelNormalized))
	return bd, nil
}

// latestFinishedAttempt finds the most recent COMPLETED or SUBMITTED attempt
// on the department's current examination, falling back to nil when the
// department has no active examination or the candidate never finished one.
func (e *Engine) latestFinishedAttempt(ctx context.Context, cand candidatemodel.CandidateModel) (*attemptmodel.TestAttemptModel, error) {
	exam, err := e.examinations.FindActiveByDepartment(ctx, cand.CandidateDepartmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	attempt, err := e.attempts.LatestFinished(ctx, cand.CandidateID, exam.ExaminationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// decide applies the admission state machine to a computed breakdown.
// Terminal statuses are never overwritten, and a provisional score keeps the
// candidate IN_PROGRESS.
func decide(current candidatemodel.AdmissionStatus, dept departmentmodel.DepartmentModel, bd ScoreBreakdown) candidatemodel.AdmissionStatus {
	if current.Terminal() {
		return current
	}
	if bd.Provisional {
		return current
	}
	passed := dept.MeetsUtmeCutoff(bd.UtmeScore) &&
		dept.MeetsOlevelCutoff(bd.OlevelAggregate) &&
		dept.MeetsFinalCutoff(bd.FinalScore)
	if passed {
		return candidatemodel.AdmissionAdmitted
	}
	return candidatemodel.AdmissionRejected
}

// RecomputeFinalScoreAndDecision recomputes the final score, runs the
// admission decision, and persists olevel_aggregate, final_score and
// admission_status as one atomic write together with the breakdown
// snapshot. Recomputing twice from the same inputs writes the same values.
func (e *Engine) RecomputeFinalScoreAndDecision(ctx context.Context, candidateID uuid.UUID) (Outcome, error) {
	cand, err := e.candidates.GetByID(ctx, candidateID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Outcome{}, ErrCandidateNotFound
	}
	if err != nil {
		return Outcome{}, err
	}
	dept, err := e.departments.GetByID(ctx, cand.CandidateDepartmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Outcome{}, ErrDepartmentNotFound
	}
	if err != nil {
		return Outcome{}, err
	}

	bd, err := e.ComputeFinalScore(ctx, candidateID)
	if err != nil {
		return Outcome{}, err
	}
	status := decide(cand.CandidateAdmissionStatus, dept, bd)

	raw, err := sonic.Marshal(bd)
	if err != nil {
		return Outcome{}, err
	}
	if err := e.candidates.UpdateDerived(ctx, candidateID,
		bd.OlevelAggregate, bd.FinalScore, status, datatypes.JSON(raw)); err != nil {
		return Outcome{}, err
	}

	if status != cand.CandidateAdmissionStatus {
		log.Printf("[SCORING] candidate=%s status %s -> %s (final=%d)",
			candidateID, cand.CandidateAdmissionStatus, status, bd.FinalScore)
	}
	return Outcome{FinalScore: bd.FinalScore, AdmissionStatus: status, Breakdown: bd}, nil
}

// RecomputeOlevelAggregate refreshes only the cached aggregate.
func (e *Engine) RecomputeOlevelAggregate(ctx context.Context, candidateID uuid.UUID) (candidatesvc.AggregateResult, error) {
	return e.aggregator.RecomputeAggregate(ctx, candidateID)
}
