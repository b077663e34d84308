package dto

import (
	"time"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/model"
)

// ============================
// Response DTO
// ============================
type DepartmentDTO struct {
	DepartmentID                    string    `json:"department_id"`
	DepartmentName                  string    `json:"department_name"`
	DepartmentCode                  string    `json:"department_code"`
	DepartmentExamPercentage        int       `json:"department_exam_percentage"`
	DepartmentOlevelPercentage      int       `json:"department_olevel_percentage"`
	DepartmentUtmeCutoffMark        int       `json:"department_utme_cutoff_mark"`
	DepartmentOlevelCutoffAggregate int       `json:"department_olevel_cutoff_aggregate"`
	DepartmentFinalCutoffMark       int       `json:"department_final_cutoff_mark"`
	DepartmentStatus                string    `json:"department_status"`
	DepartmentCreatedAt             time.Time `json:"department_created_at"`
}

// ============================
// Create Request DTO
// ============================
type CreateDepartmentRequest struct {
	DepartmentName                  string `json:"department_name" validate:"required,max=120"`
	DepartmentCode                  string `json:"department_code" validate:"required,max=16"`
	DepartmentExamPercentage        int    `json:"department_exam_percentage" validate:"min=0,max=100"`
	DepartmentOlevelPercentage      int    `json:"department_olevel_percentage" validate:"min=0,max=100"`
	DepartmentUtmeCutoffMark        int    `json:"department_utme_cutoff_mark" validate:"min=0,max=400"`
	DepartmentOlevelCutoffAggregate int    `json:"department_olevel_cutoff_aggregate" validate:"min=0,max=100"`
	DepartmentFinalCutoffMark       int    `json:"department_final_cutoff_mark" validate:"min=0,max=100"`
}

// ============================
// Update Request DTO (full replace of the cutoff policy)
// ============================
type UpdateDepartmentRequest struct {
	DepartmentName                  string `json:"department_name" validate:"required,max=120"`
	DepartmentExamPercentage        int    `json:"department_exam_percentage" validate:"min=0,max=100"`
	DepartmentOlevelPercentage      int    `json:"department_olevel_percentage" validate:"min=0,max=100"`
	DepartmentUtmeCutoffMark        int    `json:"department_utme_cutoff_mark" validate:"min=0,max=400"`
	DepartmentOlevelCutoffAggregate int    `json:"department_olevel_cutoff_aggregate" validate:"min=0,max=100"`
	DepartmentFinalCutoffMark       int    `json:"department_final_cutoff_mark" validate:"min=0,max=100"`
	DepartmentStatus                string `json:"department_status" validate:"required,oneof=ACTIVE INACTIVE"`
}

// ============================
// Converter
// ============================
func ToDepartmentDTO(m model.DepartmentModel) DepartmentDTO {
	return DepartmentDTO{
		DepartmentID:                    m.DepartmentID.String(),
		DepartmentName:                  m.DepartmentName,
		DepartmentCode:                  m.DepartmentCode,
		DepartmentExamPercentage:        m.DepartmentExamPercentage,
		DepartmentOlevelPercentage:      m.DepartmentOlevelPercentage,
		DepartmentUtmeCutoffMark:        m.DepartmentUtmeCutoffMark,
		DepartmentOlevelCutoffAggregate: m.DepartmentOlevelCutoffAggregate,
		DepartmentFinalCutoffMark:       m.DepartmentFinalCutoffMark,
		DepartmentStatus:                m.DepartmentStatus.String(),
		DepartmentCreatedAt:             m.DepartmentCreatedAt,
	}
}

func ToDepartmentDTOs(ms []model.DepartmentModel) []DepartmentDTO {
	out := make([]DepartmentDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToDepartmentDTO(m))
	}
	return out
}
