package dto

import (
	"time"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/grading/model"
)

// ============================
// Response DTO
// ============================
type GradingRuleDTO struct {
	GradingRuleID        string    `json:"grading_rule_id"`
	GradingRuleGrade     string    `json:"grading_rule_grade"`
	GradingRuleMarks     int       `json:"grading_rule_marks"`
	GradingRuleCreatedAt time.Time `json:"grading_rule_created_at"`
	GradingRuleUpdatedAt time.Time `json:"grading_rule_updated_at"`
}

// ============================
// Create Request DTO
// ============================
type CreateGradingRuleRequest struct {
	GradingRuleGrade string `json:"grading_rule_grade" validate:"required,max=8"`
	GradingRuleMarks int    `json:"grading_rule_marks" validate:"min=0"`
}

// ============================
// Update Request DTO
// ============================
type UpdateGradingRuleRequest struct {
	GradingRuleMarks int `json:"grading_rule_marks" validate:"min=0"`
}

// ============================
// Converter
// ============================
func ToGradingRuleDTO(m model.GradingRuleModel) GradingRuleDTO {
	return GradingRuleDTO{
		GradingRuleID:        m.GradingRuleID.String(),
		GradingRuleGrade:     m.GradingRuleGrade,
		GradingRuleMarks:     m.GradingRuleMarks,
		GradingRuleCreatedAt: m.GradingRuleCreatedAt,
		GradingRuleUpdatedAt: m.GradingRuleUpdatedAt,
	}
}

func ToGradingRuleDTOs(ms []model.GradingRuleModel) []GradingRuleDTO {
	out := make([]GradingRuleDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToGradingRuleDTO(m))
	}
	return out
}
