// file: internals/features/screening/examinations/model/examination_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: examinations
   One CBT definition per department (at most one active at a time is what
   the scheduler relies on; FindActiveByDepartment picks the newest active).
============================================================================= */
type ExaminationModel struct {
	// PK
	ExaminationID uuid.UUID `json:"examination_id" gorm:"column:examination_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	ExaminationDepartmentID uuid.UUID `json:"examination_department_id" gorm:"column:examination_department_id;type:uuid;not null;index:idx_examinations_department"`

	ExaminationTitle           string `json:"examination_title" gorm:"column:examination_title;type:varchar(160);not null"`
	ExaminationDurationMinutes int    `json:"examination_duration_minutes" gorm:"column:examination_duration_minutes;not null"`
	ExaminationTotalMarks      int    `json:"examination_total_marks" gorm:"column:examination_total_marks;not null"`
	ExaminationPassingMarks    int    `json:"examination_passing_marks" gorm:"column:examination_passing_marks;not null"`
	ExaminationIsActive        bool   `json:"examination_is_active" gorm:"column:examination_is_active;not null;default:true;index:idx_examinations_active,where:examination_is_active"`

	// Audit
	ExaminationCreatedAt time.Time `json:"examination_created_at" gorm:"column:examination_created_at;type:timestamptz;not null;default:now()"`
	ExaminationUpdatedAt time.Time `json:"examination_updated_at" gorm:"column:examination_updated_at;type:timestamptz;not null;default:now()"`
}

func (ExaminationModel) TableName() string { return "examinations" }

func (m *ExaminationModel) BeforeSave(_ *gorm.DB) error {
	m.ExaminationUpdatedAt = time.Now()
	return nil
}
