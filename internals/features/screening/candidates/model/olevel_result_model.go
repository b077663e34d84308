// file: internals/features/screening/candidates/model/olevel_result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: olevel_results
   One grade per (candidate, subject): the composite unique index makes a
   resubmitted subject replace the old grade instead of double-counting in
   the aggregate.
============================================================================= */
type OLevelResultModel struct {
	// PK
	OlevelResultID uuid.UUID `json:"olevel_result_id" gorm:"column:olevel_result_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	OlevelResultCandidateID uuid.UUID `json:"olevel_result_candidate_id" gorm:"column:olevel_result_candidate_id;type:uuid;not null;uniqueIndex:uq_olevel_results_candidate_subject,priority:1;index:idx_olevel_results_candidate"`
	OlevelResultSubjectID   uuid.UUID `json:"olevel_result_subject_id" gorm:"column:olevel_result_subject_id;type:uuid;not null;uniqueIndex:uq_olevel_results_candidate_subject,priority:2"`

	// Letter grade as submitted; resolved to marks through the grading table
	OlevelResultGrade string `json:"olevel_result_grade" gorm:"column:olevel_result_grade;type:varchar(8);not null"`

	// Audit
	OlevelResultCreatedAt time.Time `json:"olevel_result_created_at" gorm:"column:olevel_result_created_at;type:timestamptz;not null;default:now()"`
	OlevelResultUpdatedAt time.Time `json:"olevel_result_updated_at" gorm:"column:olevel_result_updated_at;type:timestamptz;not null;default:now()"`
}

func (OLevelResultModel) TableName() string { return "olevel_results" }

func (m *OLevelResultModel) BeforeSave(_ *gorm.DB) error {
	m.OlevelResultUpdatedAt = time.Now()
	return nil
}
