// file: internals/features/screening/attempts/dto/test_attempt_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/model"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/service"
)

type TestAttemptDTO struct {
	TestAttemptID            uuid.UUID  `json:"test_attempt_id"`
	TestAttemptCandidateID   uuid.UUID  `json:"test_attempt_candidate_id"`
	TestAttemptExaminationID uuid.UUID  `json:"test_attempt_examination_id"`
	TestAttemptStatus        string     `json:"test_attempt_status"`
	TestAttemptScore         int        `json:"test_attempt_score"`
	TestAttemptStartTime     *time.Time `json:"test_attempt_start_time,omitempty"`
	TestAttemptCreatedAt     time.Time  `json:"test_attempt_created_at"`
}

func ToTestAttemptDTO(m model.TestAttemptModel) TestAttemptDTO {
	return TestAttemptDTO{
		TestAttemptID:            m.TestAttemptID,
		TestAttemptCandidateID:   m.TestAttemptCandidateID,
		TestAttemptExaminationID: m.TestAttemptExaminationID,
		TestAttemptStatus:        m.TestAttemptStatus.String(),
		TestAttemptScore:         m.TestAttemptScore,
		TestAttemptStartTime:     m.TestAttemptStartTime,
		TestAttemptCreatedAt:     m.TestAttemptCreatedAt,
	}
}

type AssignResponse struct {
	Attempt TestAttemptDTO `json:"attempt"`
	Created bool           `json:"created"`
}

type BatchFailureDTO struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Reason      string    `json:"reason"`
}

type BatchReportDTO struct {
	AssignedCount int               `json:"assigned_count"`
	SkippedCount  int               `json:"skipped_count"`
	Failures      []BatchFailureDTO `json:"failures"`
}

func ToBatchReportDTO(report service.BatchReport) BatchReportDTO {
	out := BatchReportDTO{
		AssignedCount: report.AssignedCount,
		SkippedCount:  report.SkippedCount,
		Failures:      make([]BatchFailureDTO, 0, len(report.Failures)),
	}
	for _, f := range report.Failures {
		out.Failures = append(out.Failures, BatchFailureDTO{
			CandidateID: f.CandidateID,
			Reason:      f.Reason,
		})
	}
	return out
}

type RecordResultRequest struct {
	TestAttemptScore int  `json:"test_attempt_score" validate:"min=0"`
	Submitted        bool `json:"submitted"`
}
