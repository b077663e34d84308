// file: internals/features/screening/scoring/dto/scoring_dto.go
package dto

import (
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/scoring/service"
)

type AggregateDTO struct {
	OlevelAggregate  int      `json:"olevel_aggregate"`
	UnresolvedGrades []string `json:"unresolved_grades,omitempty"`
}

type DecisionDTO struct {
	FinalScore      int                    `json:"final_score"`
	AdmissionStatus string                 `json:"admission_status"`
	Breakdown       service.ScoreBreakdown `json:"breakdown"`
}

func ToDecisionDTO(out service.Outcome) DecisionDTO {
	return DecisionDTO{
		FinalScore:      out.FinalScore,
		AdmissionStatus: out.AdmissionStatus.String(),
		Breakdown:       out.Breakdown,
	}
}
