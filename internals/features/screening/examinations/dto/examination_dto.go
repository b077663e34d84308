package dto

import (
	"time"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/model"
)

// ============================
// Response DTOs
// ============================
type ExaminationDTO struct {
	ExaminationID              string    `json:"examination_id"`
	ExaminationDepartmentID    string    `json:"examination_department_id"`
	ExaminationTitle           string    `json:"examination_title"`
	ExaminationDurationMinutes int       `json:"examination_duration_minutes"`
	ExaminationTotalMarks      int       `json:"examination_total_marks"`
	ExaminationPassingMarks    int       `json:"examination_passing_marks"`
	ExaminationIsActive        bool      `json:"examination_is_active"`
	ExaminationCreatedAt       time.Time `json:"examination_created_at"`
}

type QuestionDTO struct {
	QuestionID            string   `json:"question_id"`
	QuestionExaminationID string   `json:"question_examination_id"`
	QuestionContent       string   `json:"question_content"`
	QuestionOptions       []string `json:"question_options"`
	QuestionCorrectOption int      `json:"question_correct_option"`
	QuestionMarks         int      `json:"question_marks"`
}

// ============================
// Request DTOs
// ============================
type CreateExaminationRequest struct {
	ExaminationDepartmentID    string `json:"examination_department_id" validate:"required,uuid"`
	ExaminationTitle           string `json:"examination_title" validate:"required,max=160"`
	ExaminationDurationMinutes int    `json:"examination_duration_minutes" validate:"min=1"`
	ExaminationTotalMarks      int    `json:"examination_total_marks" validate:"min=1"`
	ExaminationPassingMarks    int    `json:"examination_passing_marks" validate:"min=0"`
}

type CreateQuestionRequest struct {
	QuestionExaminationID string   `json:"question_examination_id" validate:"required,uuid"`
	QuestionContent       string   `json:"question_content" validate:"required"`
	QuestionOptions       []string `json:"question_options" validate:"required,min=2,max=6,dive,required"`
	QuestionCorrectOption int      `json:"question_correct_option" validate:"min=0"`
	QuestionMarks         int      `json:"question_marks" validate:"min=1"`
}

// ============================
// Converters
// ============================
func ToExaminationDTO(m model.ExaminationModel) ExaminationDTO {
	return ExaminationDTO{
		ExaminationID:              m.ExaminationID.String(),
		ExaminationDepartmentID:    m.ExaminationDepartmentID.String(),
		ExaminationTitle:           m.ExaminationTitle,
		ExaminationDurationMinutes: m.ExaminationDurationMinutes,
		ExaminationTotalMarks:      m.ExaminationTotalMarks,
		ExaminationPassingMarks:    m.ExaminationPassingMarks,
		ExaminationIsActive:        m.ExaminationIsActive,
		ExaminationCreatedAt:       m.ExaminationCreatedAt,
	}
}

func ToExaminationDTOs(ms []model.ExaminationModel) []ExaminationDTO {
	out := make([]ExaminationDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToExaminationDTO(m))
	}
	return out
}

// ToQuestionDTO decodes the stored text[] into the ordered option list once;
// consumers never re-parse it.
func ToQuestionDTO(m model.QuestionModel) QuestionDTO {
	return QuestionDTO{
		QuestionID:            m.QuestionID.String(),
		QuestionExaminationID: m.QuestionExaminationID.String(),
		QuestionContent:       m.QuestionContent,
		QuestionOptions:       append([]string(nil), m.QuestionOptions...),
		QuestionCorrectOption: m.QuestionCorrectOption,
		QuestionMarks:         m.QuestionMarks,
	}
}

func ToQuestionDTOs(ms []model.QuestionModel) []QuestionDTO {
	out := make([]QuestionDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToQuestionDTO(m))
	}
	return out
}
