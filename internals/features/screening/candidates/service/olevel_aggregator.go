// file: internals/features/screening/candidates/service/olevel_aggregator.go
package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/repository"
	gradingrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/grading/repository"
)

// AggregateResult is one O-Level aggregate computation. Unresolved carries
// the grades that had no rule in the grading table; each contributed zero to
// Total rather than failing the computation.
type AggregateResult struct {
	Total      int
	Unresolved []string
}

// Aggregator sums a candidate's recorded subject results through the grading
// table.
type Aggregator struct {
	candidates repository.CandidateRepository
	grading    gradingrepo.GradingRuleRepository
}

func NewAggregator(candidates repository.CandidateRepository, grading gradingrepo.GradingRuleRepository) *Aggregator {
	return &Aggregator{candidates: candidates, grading: grading}
}

// ComputeAggregate is a pure read: same results + same grading table give the
// same total every time.
func (s *Aggregator) ComputeAggregate(ctx context.Context, candidateID uuid.UUID) (AggregateResult, error) {
	if _, err := s.candidates.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AggregateResult{}, ErrCandidateNotFound
		}
		return AggregateResult{}, err
	}

	results, err := s.candidates.ListOLevelResults(ctx, candidateID)
	if err != nil {
		return AggregateResult{}, err
	}
	snap, err := s.grading.Snapshot(ctx)
	if err != nil {
		return AggregateResult{}, err
	}

	agg := AggregateResult{}
	for _, res := range results {
		marks, ok := snap[res.OlevelResultGrade]
		if !ok {
			agg.Unresolved = append(agg.Unresolved, res.OlevelResultGrade)
			continue
		}
		agg.Total += marks
	}
	if len(agg.Unresolved) > 0 {
		log.Printf("[SCORING] candidate=%s aggregate computed with %d unresolved grade(s): %v",
			candidateID, len(agg.Unresolved), agg.Unresolved)
	}
	return agg, nil
}

// RecomputeAggregate refreshes the cached olevel_aggregate when the freshly
// computed total differs. The write goes through the derived-triple update
// with the final score and status taken from the same candidate snapshot.
func (s *Aggregator) RecomputeAggregate(ctx context.Context, candidateID uuid.UUID) (AggregateResult, error) {
	cand, err := s.candidates.GetByID(ctx, candidateID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AggregateResult{}, ErrCandidateNotFound
	}
	if err != nil {
		return AggregateResult{}, err
	}

	agg, err := s.ComputeAggregate(ctx, candidateID)
	if err != nil {
		return AggregateResult{}, err
	}
	if agg.Total == cand.CandidateOlevelAggregate {
		return agg, nil
	}
	err = s.candidates.UpdateDerived(ctx, candidateID,
		agg.Total, cand.CandidateFinalScore, cand.CandidateAdmissionStatus, nil)
	return agg, err
}
