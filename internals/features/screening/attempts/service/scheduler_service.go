// file: internals/features/screening/attempts/service/scheduler_service.go
package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/model"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/repository"
	candidaterepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/repository"
	examrepo "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/repository"
)

var (
	ErrCandidateNotFound    = errors.New("candidate not found")
	ErrAttemptNotFound      = errors.New("test attempt not found")
	ErrNoActiveExamination  = errors.New("department has no active examination")
	ErrAttemptNotAssignable = errors.New("attempt score can only be recorded once the test is taken")
	ErrScoreOutOfRange      = errors.New("score is outside the examination's total marks")
)

// BatchFailure is one candidate the batch could not assign.
type BatchFailure struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Reason      string    `json:"reason"`
}

// BatchReport summarises one assignAllUnassigned run.
type BatchReport struct {
	AssignedCount int            `json:"assigned_count"`
	SkippedCount  int            `json:"skipped_count"`
	Failures      []BatchFailure `json:"failures"`
}

// Scheduler creates exactly one test attempt per (candidate, examination)
// pair. Idempotency rests on the storage-level unique index, so concurrent
// duplicate calls converge on the same attempt.
type Scheduler struct {
	attempts     repository.TestAttemptRepository
	candidates   candidaterepo.CandidateRepository
	examinations examrepo.ExaminationRepository
}

func NewScheduler(
	attempts repository.TestAttemptRepository,
	candidates candidaterepo.CandidateRepository,
	examinations examrepo.ExaminationRepository,
) *Scheduler {
	return &Scheduler{attempts: attempts, candidates: candidates, examinations: examinations}
}

// AssignToCandidate creates a PENDING attempt for the candidate's department
// examination, or returns the existing one. A repeat call is a no-op that
// hands back the same attempt; the boolean reports whether this call
// created the row.
func (s *Scheduler) AssignToCandidate(ctx context.Context, candidateID uuid.UUID) (model.TestAttemptModel, bool, error) {
	cand, err := s.candidates.GetByID(ctx, candidateID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.TestAttemptModel{}, false, ErrCandidateNotFound
	}
	if err != nil {
		return model.TestAttemptModel{}, false, err
	}

	exam, err := s.examinations.FindActiveByDepartment(ctx, cand.CandidateDepartmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.TestAttemptModel{}, false, ErrNoActiveExamination
	}
	if err != nil {
		return model.TestAttemptModel{}, false, err
	}

	attempt := model.TestAttemptModel{
		TestAttemptCandidateID:   cand.CandidateID,
		TestAttemptExaminationID: exam.ExaminationID,
		TestAttemptStatus:        model.AttemptPending,
	}
	created, err := s.attempts.CreateIfAbsent(ctx, &attempt)
	if err != nil {
		return model.TestAttemptModel{}, false, err
	}
	if created {
		// First assignment moves the candidate into the screening pipeline.
		if err := s.candidates.MarkInProgress(ctx, cand.CandidateID); err != nil {
			return model.TestAttemptModel{}, false, err
		}
	}
	return attempt, created, nil
}

// AssignToAllUnassigned applies AssignToCandidate to every candidate with no
// attempt yet. Per-candidate failures are recorded, not fatal; re-running
// after an interruption only picks up what is still unassigned.
func (s *Scheduler) AssignToAllUnassigned(ctx context.Context) (BatchReport, error) {
	cands, err := s.candidates.ListUnassigned(ctx)
	if err != nil {
		return BatchReport{}, err
	}

	report := BatchReport{Failures: []BatchFailure{}}
	for _, cand := range cands {
		_, created, err := s.AssignToCandidate(ctx, cand.CandidateID)
		if err != nil {
			report.Failures = append(report.Failures, BatchFailure{
				CandidateID: cand.CandidateID,
				Reason:      err.Error(),
			})
			continue
		}
		// ListUnassigned said no attempt existed; losing that race to a
		// concurrent assigner counts as a skip, not a failure.
		if created {
			report.AssignedCount++
		} else {
			report.SkippedCount++
		}
	}
	log.Printf("[SCHEDULER] batch assignment: assigned=%d skipped=%d failed=%d",
		report.AssignedCount, report.SkippedCount, len(report.Failures))
	return report, nil
}

// RecordResult stores the score produced by the test runner and finishes the
// attempt. Scoring and the admission decision consume it afterwards.
func (s *Scheduler) RecordResult(ctx context.Context, attemptID uuid.UUID, score int, submitted bool) (model.TestAttemptModel, error) {
	attempt, err := s.attempts.GetByID(ctx, attemptID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.TestAttemptModel{}, ErrAttemptNotFound
	}
	if err != nil {
		return model.TestAttemptModel{}, err
	}

	exam, err := s.examinations.GetByID(ctx, attempt.TestAttemptExaminationID)
	if err != nil {
		return model.TestAttemptModel{}, err
	}
	if score < 0 || score > exam.ExaminationTotalMarks {
		return model.TestAttemptModel{}, ErrScoreOutOfRange
	}

	attempt.TestAttemptScore = score
	if submitted {
		attempt.TestAttemptStatus = model.AttemptSubmitted
	} else {
		attempt.TestAttemptStatus = model.AttemptCompleted
	}
	if err := s.attempts.Save(ctx, &attempt); err != nil {
		return model.TestAttemptModel{}, err
	}
	return attempt, nil
}
