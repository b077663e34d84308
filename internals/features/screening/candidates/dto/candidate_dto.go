// file: internals/features/screening/candidates/dto/candidate_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/model"
)

/* ===== Requests ===== */

type RegisterCandidateRequest struct {
	CandidateRegNumber    string    `json:"candidate_reg_number" validate:"required,min=4,max=24"`
	CandidateFullName     string    `json:"candidate_full_name" validate:"required,min=3,max=120"`
	CandidateEmail        string    `json:"candidate_email" validate:"required,email,max=160"`
	CandidateDepartmentID uuid.UUID `json:"candidate_department_id" validate:"required"`
	CandidateUtmeScore    int       `json:"candidate_utme_score" validate:"min=0,max=400"`
}

func (r RegisterCandidateRequest) ToModel() model.CandidateModel {
	return model.CandidateModel{
		CandidateRegNumber:    r.CandidateRegNumber,
		CandidateFullName:     r.CandidateFullName,
		CandidateEmail:        r.CandidateEmail,
		CandidateDepartmentID: r.CandidateDepartmentID,
		CandidateUtmeScore:    r.CandidateUtmeScore,
	}
}

type SubjectGradeRequest struct {
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	Grade     string    `json:"grade" validate:"required,min=1,max=8"`
}

type SubmitOLevelResultsRequest struct {
	Results []SubjectGradeRequest `json:"results" validate:"required,min=1,max=20,dive"`
}

/* ===== Responses ===== */

type CandidateDTO struct {
	CandidateID              uuid.UUID `json:"candidate_id"`
	CandidateRegNumber       string    `json:"candidate_reg_number"`
	CandidateFullName        string    `json:"candidate_full_name"`
	CandidateEmail           string    `json:"candidate_email"`
	CandidateDepartmentID    uuid.UUID `json:"candidate_department_id"`
	CandidateUtmeScore       int       `json:"candidate_utme_score"`
	CandidateOlevelAggregate int       `json:"candidate_olevel_aggregate"`
	CandidateFinalScore      int       `json:"candidate_final_score"`
	CandidateAdmissionStatus string    `json:"candidate_admission_status"`
	CandidateCreatedAt       time.Time `json:"candidate_created_at"`
}

func ToCandidateDTO(m model.CandidateModel) CandidateDTO {
	return CandidateDTO{
		CandidateID:              m.CandidateID,
		CandidateRegNumber:       m.CandidateRegNumber,
		CandidateFullName:        m.CandidateFullName,
		CandidateEmail:           m.CandidateEmail,
		CandidateDepartmentID:    m.CandidateDepartmentID,
		CandidateUtmeScore:       m.CandidateUtmeScore,
		CandidateOlevelAggregate: m.CandidateOlevelAggregate,
		CandidateFinalScore:      m.CandidateFinalScore,
		CandidateAdmissionStatus: m.CandidateAdmissionStatus.String(),
		CandidateCreatedAt:       m.CandidateCreatedAt,
	}
}

func ToCandidateDTOs(ms []model.CandidateModel) []CandidateDTO {
	out := make([]CandidateDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToCandidateDTO(m))
	}
	return out
}

type OLevelResultDTO struct {
	SubjectID uuid.UUID `json:"subject_id"`
	Grade     string    `json:"grade"`
}

func ToOLevelResultDTOs(ms []model.OLevelResultModel) []OLevelResultDTO {
	out := make([]OLevelResultDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, OLevelResultDTO{
			SubjectID: m.OlevelResultSubjectID,
			Grade:     m.OlevelResultGrade,
		})
	}
	return out
}

// StatusDTO is the public screening-status view keyed by registration
// number.
type StatusDTO struct {
	CandidateRegNumber       string            `json:"candidate_reg_number"`
	CandidateFullName        string            `json:"candidate_full_name"`
	CandidateOlevelAggregate int               `json:"candidate_olevel_aggregate"`
	CandidateFinalScore      int               `json:"candidate_final_score"`
	CandidateAdmissionStatus string            `json:"candidate_admission_status"`
	OLevelResults            []OLevelResultDTO `json:"olevel_results"`
}
