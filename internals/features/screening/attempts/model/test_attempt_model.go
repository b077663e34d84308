// file: internals/features/screening/attempts/model/test_attempt_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: Attempt Status ('PENDING','IN_PROGRESS','COMPLETED','SUBMITTED')
============================================================================= */
type TestAttemptStatus string

const (
	AttemptPending    TestAttemptStatus = "PENDING"
	AttemptInProgress TestAttemptStatus = "IN_PROGRESS"
	AttemptCompleted  TestAttemptStatus = "COMPLETED"
	AttemptSubmitted  TestAttemptStatus = "SUBMITTED"
)

func (s TestAttemptStatus) String() string { return string(s) }
func (s TestAttemptStatus) Valid() bool {
	switch s {
	case AttemptPending, AttemptInProgress, AttemptCompleted, AttemptSubmitted:
		return true
	default:
		return false
	}
}

// Finished reports whether the attempt's score may drive scoring and an
// admission decision.
func (s TestAttemptStatus) Finished() bool {
	return s == AttemptCompleted || s == AttemptSubmitted
}

func (s *TestAttemptStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = TestAttemptStatus(v)
	case []byte:
		*s = TestAttemptStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for TestAttemptStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid TestAttemptStatus: %q", *s)
	}
	return nil
}
func (s TestAttemptStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid TestAttemptStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: test_attempts
   The composite unique index on (candidate, examination) is the storage-level
   guarantee behind idempotent assignment: a second concurrent create loses
   the race at the index, not at a check-then-insert.
============================================================================= */
type TestAttemptModel struct {
	// PK
	TestAttemptID uuid.UUID `json:"test_attempt_id" gorm:"column:test_attempt_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	TestAttemptCandidateID   uuid.UUID `json:"test_attempt_candidate_id" gorm:"column:test_attempt_candidate_id;type:uuid;not null;uniqueIndex:uq_test_attempts_candidate_examination,priority:1;index:idx_test_attempts_candidate"`
	TestAttemptExaminationID uuid.UUID `json:"test_attempt_examination_id" gorm:"column:test_attempt_examination_id;type:uuid;not null;uniqueIndex:uq_test_attempts_candidate_examination,priority:2"`

	TestAttemptStatus    TestAttemptStatus `json:"test_attempt_status" gorm:"column:test_attempt_status;type:varchar(16);not null;default:'PENDING';index:idx_test_attempts_status"`
	TestAttemptScore     int               `json:"test_attempt_score" gorm:"column:test_attempt_score;not null;default:0"`
	TestAttemptStartTime *time.Time        `json:"test_attempt_start_time,omitempty" gorm:"column:test_attempt_start_time;type:timestamptz"`

	// Audit
	TestAttemptCreatedAt time.Time `json:"test_attempt_created_at" gorm:"column:test_attempt_created_at;type:timestamptz;not null;default:now()"`
	TestAttemptUpdatedAt time.Time `json:"test_attempt_updated_at" gorm:"column:test_attempt_updated_at;type:timestamptz;not null;default:now()"`
}

func (TestAttemptModel) TableName() string { return "test_attempts" }

func (m *TestAttemptModel) BeforeSave(_ *gorm.DB) error {
	m.TestAttemptUpdatedAt = time.Now()
	return nil
}
