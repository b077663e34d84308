// file: internals/features/screening/departments/model/department_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: Department Status ('ACTIVE','INACTIVE')
============================================================================= */
type DepartmentStatus string

const (
	DepartmentActive   DepartmentStatus = "ACTIVE"
	DepartmentInactive DepartmentStatus = "INACTIVE"
)

func (s DepartmentStatus) String() string { return string(s) }
func (s DepartmentStatus) Valid() bool {
	switch s {
	case DepartmentActive, DepartmentInactive:
		return true
	default:
		return false
	}
}

func (s *DepartmentStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = DepartmentStatus(v)
	case []byte:
		*s = DepartmentStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for DepartmentStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid DepartmentStatus: %q", *s)
	}
	return nil
}
func (s DepartmentStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid DepartmentStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: departments
   A department owns its examinations and its cutoff policy: the weight split
   between exam and O-Level plus the three admission thresholds.
============================================================================= */
type DepartmentModel struct {
	// PK
	DepartmentID uuid.UUID `json:"department_id" gorm:"column:department_id;type:uuid;default:gen_random_uuid();primaryKey"`

	DepartmentName string `json:"department_name" gorm:"column:department_name;type:varchar(120);not null"`
	DepartmentCode string `json:"department_code" gorm:"column:department_code;type:varchar(16);not null;uniqueIndex:uq_departments_code"`

	// Cutoff policy: weight split must sum to 100
	DepartmentExamPercentage   int `json:"department_exam_percentage" gorm:"column:department_exam_percentage;not null"`
	DepartmentOlevelPercentage int `json:"department_olevel_percentage" gorm:"column:department_olevel_percentage;not null"`

	// Thresholds, all in [0,100] except the UTME mark which is on the 0-400 scale
	DepartmentUtmeCutoffMark          int `json:"department_utme_cutoff_mark" gorm:"column:department_utme_cutoff_mark;not null"`
	DepartmentOlevelCutoffAggregate   int `json:"department_olevel_cutoff_aggregate" gorm:"column:department_olevel_cutoff_aggregate;not null"`
	DepartmentFinalCutoffMark         int `json:"department_final_cutoff_mark" gorm:"column:department_final_cutoff_mark;not null"`

	DepartmentStatus DepartmentStatus `json:"department_status" gorm:"column:department_status;type:varchar(12);not null;default:'ACTIVE';index:idx_departments_status"`

	// Audit
	DepartmentCreatedAt time.Time `json:"department_created_at" gorm:"column:department_created_at;type:timestamptz;not null;default:now()"`
	DepartmentUpdatedAt time.Time `json:"department_updated_at" gorm:"column:department_updated_at;type:timestamptz;not null;default:now()"`
}

func (DepartmentModel) TableName() string { return "departments" }

func (m *DepartmentModel) BeforeSave(_ *gorm.DB) error {
	m.DepartmentUpdatedAt = time.Now()
	return nil
}

/* ===================================================================
   Cutoff policy helpers
=================================================================== */

// WeightedScore folds the exam contribution and the normalised O-Level score
// into one unrounded composite using this department's weight split.
func (m *DepartmentModel) WeightedScore(examContribution, olevelNormalized float64) float64 {
	return float64(m.DepartmentExamPercentage)/100*examContribution +
		float64(m.DepartmentOlevelPercentage)/100*olevelNormalized
}

// All thresholds are inclusive: a score exactly on the cutoff meets it.
// The O-Level aggregate is point-based, so LOWER is better there.
func (m *DepartmentModel) MeetsUtmeCutoff(utmeScore int) bool {
	return utmeScore >= m.DepartmentUtmeCutoffMark
}

func (m *DepartmentModel) MeetsOlevelCutoff(aggregate int) bool {
	return aggregate <= m.DepartmentOlevelCutoffAggregate
}

func (m *DepartmentModel) MeetsFinalCutoff(finalScore int) bool {
	return finalScore >= m.DepartmentFinalCutoffMark
}

func (m *DepartmentModel) IsActive() bool {
	return m.DepartmentStatus == DepartmentActive
}
