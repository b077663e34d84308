// file: internals/features/screening/grading/model/grading_rule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: grading_rules
   Process-wide reference data: letter grade -> numeric marks. Mutated only by
   admin action, read concurrently by every aggregate computation.
============================================================================= */
type GradingRuleModel struct {
	// PK
	GradingRuleID uuid.UUID `json:"grading_rule_id" gorm:"column:grading_rule_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Grade letter, unique ("A1", "B2", ... "F9")
	GradingRuleGrade string `json:"grading_rule_grade" gorm:"column:grading_rule_grade;type:varchar(8);not null;uniqueIndex:uq_grading_rules_grade"`

	// Marks contributed per subject at this grade (>= 0)
	GradingRuleMarks int `json:"grading_rule_marks" gorm:"column:grading_rule_marks;not null"`

	// Audit
	GradingRuleCreatedAt time.Time `json:"grading_rule_created_at" gorm:"column:grading_rule_created_at;type:timestamptz;not null;default:now()"`
	GradingRuleUpdatedAt time.Time `json:"grading_rule_updated_at" gorm:"column:grading_rule_updated_at;type:timestamptz;not null;default:now()"`
}

func (GradingRuleModel) TableName() string { return "grading_rules" }

func (m *GradingRuleModel) BeforeSave(_ *gorm.DB) error {
	m.GradingRuleUpdatedAt = time.Now()
	return nil
}
