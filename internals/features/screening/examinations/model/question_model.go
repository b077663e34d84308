// file: internals/features/screening/examinations/model/question_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: questions
   Options are a Postgres text[] (ordered), decoded once at the DTO boundary.
   The correct answer is stored as an index into that array so reordering an
   option list is an explicit edit, never a silent answer change.
============================================================================= */
type QuestionModel struct {
	// PK
	QuestionID uuid.UUID `json:"question_id" gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	QuestionExaminationID uuid.UUID `json:"question_examination_id" gorm:"column:question_examination_id;type:uuid;not null;index:idx_questions_examination"`

	QuestionContent       string         `json:"question_content" gorm:"column:question_content;type:text;not null"`
	QuestionOptions       pq.StringArray `json:"question_options" gorm:"column:question_options;type:text[];not null"`
	QuestionCorrectOption int            `json:"question_correct_option" gorm:"column:question_correct_option;not null"`
	QuestionMarks         int            `json:"question_marks" gorm:"column:question_marks;not null;default:1"`

	// Audit
	QuestionCreatedAt time.Time `json:"question_created_at" gorm:"column:question_created_at;type:timestamptz;not null;default:now()"`
	QuestionUpdatedAt time.Time `json:"question_updated_at" gorm:"column:question_updated_at;type:timestamptz;not null;default:now()"`
}

func (QuestionModel) TableName() string { return "questions" }

func (m *QuestionModel) BeforeSave(_ *gorm.DB) error {
	m.QuestionUpdatedAt = time.Now()
	return nil
}
