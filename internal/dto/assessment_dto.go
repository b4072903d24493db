package dto

import (
	"time"

	"github.com/google/uuid"

	"frontera-be/pkg/coaching/assessment"
)

type SubmitAssessmentRequest struct {
	Likert      map[string]int    `json:"likert" validate:"required"`
	Situational map[string]string `json:"situational,omitempty"`
}

type AssessmentResponse struct {
	Id          uuid.UUID         `json:"id"`
	Result      assessment.Result `json:"result"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

type AssessmentQuestionsResponse struct {
	Likert      []assessment.LikertQuestion      `json:"likert"`
	Situational []assessment.SituationalQuestion `json:"situational"`
}
