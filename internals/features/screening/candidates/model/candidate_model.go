// file: internals/features/screening/candidates/model/candidate_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: Admission Status ('NOT_STARTED','IN_PROGRESS','ADMITTED','REJECTED')
   ADMITTED and REJECTED are terminal; only an explicit admin reset may leave
   them.
============================================================================= */
type AdmissionStatus string

const (
	AdmissionNotStarted AdmissionStatus = "NOT_STARTED"
	AdmissionInProgress AdmissionStatus = "IN_PROGRESS"
	AdmissionAdmitted   AdmissionStatus = "ADMITTED"
	AdmissionRejected   AdmissionStatus = "REJECTED"
)

func (s AdmissionStatus) String() string { return string(s) }
func (s AdmissionStatus) Valid() bool {
	switch s {
	case AdmissionNotStarted, AdmissionInProgress, AdmissionAdmitted, AdmissionRejected:
		return true
	default:
		return false
	}
}

// Terminal reports whether the status may never be overwritten by a
// recomputation.
func (s AdmissionStatus) Terminal() bool {
	return s == AdmissionAdmitted || s == AdmissionRejected
}

func (s *AdmissionStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = AdmissionStatus(v)
	case []byte:
		*s = AdmissionStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for AdmissionStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid AdmissionStatus: %q", *s)
	}
	return nil
}
func (s AdmissionStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid AdmissionStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: candidates
   olevel_aggregate and final_score are caches of what the aggregator and the
   score engine would produce from current inputs. They are written only
   through the repository's derived-triple update so concurrent recomputes
   can never interleave a partial merge.
============================================================================= */
type CandidateModel struct {
	// PK
	CandidateID uuid.UUID `json:"candidate_id" gorm:"column:candidate_id;type:uuid;default:gen_random_uuid();primaryKey"`

	CandidateRegNumber string `json:"candidate_reg_number" gorm:"column:candidate_reg_number;type:varchar(24);not null;uniqueIndex:uq_candidates_reg_number"`
	CandidateFullName  string `json:"candidate_full_name" gorm:"column:candidate_full_name;type:varchar(120);not null"`
	CandidateEmail     string `json:"candidate_email" gorm:"column:candidate_email;type:varchar(160);not null"`

	// FK
	CandidateDepartmentID uuid.UUID `json:"candidate_department_id" gorm:"column:candidate_department_id;type:uuid;not null;index:idx_candidates_department"`

	// External input: national entrance score (0-400)
	CandidateUtmeScore int `json:"candidate_utme_score" gorm:"column:candidate_utme_score;not null"`

	// Derived caches
	CandidateOlevelAggregate int            `json:"candidate_olevel_aggregate" gorm:"column:candidate_olevel_aggregate;not null;default:0"`
	CandidateFinalScore      int            `json:"candidate_final_score" gorm:"column:candidate_final_score;not null;default:0"`
	CandidateScoreBreakdown  datatypes.JSON `json:"candidate_score_breakdown,omitempty" gorm:"column:candidate_score_breakdown;type:jsonb"`

	CandidateAdmissionStatus AdmissionStatus `json:"candidate_admission_status" gorm:"column:candidate_admission_status;type:varchar(16);not null;default:'NOT_STARTED';index:idx_candidates_status"`

	// Audit
	CandidateCreatedAt time.Time `json:"candidate_created_at" gorm:"column:candidate_created_at;type:timestamptz;not null;default:now()"`
	CandidateUpdatedAt time.Time `json:"candidate_updated_at" gorm:"column:candidate_updated_at;type:timestamptz;not null;default:now()"`
}

func (CandidateModel) TableName() string { return "candidates" }

func (m *CandidateModel) BeforeSave(_ *gorm.DB) error {
	m.CandidateUpdatedAt = time.Now()
	return nil
}
