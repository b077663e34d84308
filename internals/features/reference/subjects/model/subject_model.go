// file: internals/features/reference/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: subjects (read-mostly reference data)
============================================================================= */
type SubjectModel struct {
	// PK
	SubjectID uuid.UUID `json:"subject_id" gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey"`

	SubjectName string `json:"subject_name" gorm:"column:subject_name;type:varchar(80);not null;uniqueIndex:uq_subjects_name"`
	SubjectCode string `json:"subject_code" gorm:"column:subject_code;type:varchar(16);not null;uniqueIndex:uq_subjects_code"`

	// Audit
	SubjectCreatedAt time.Time `json:"subject_created_at" gorm:"column:subject_created_at;type:timestamptz;not null;default:now()"`
	SubjectUpdatedAt time.Time `json:"subject_updated_at" gorm:"column:subject_updated_at;type:timestamptz;not null;default:now()"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeSave(_ *gorm.DB) error {
	m.SubjectUpdatedAt = time.Now()
	return nil
}
