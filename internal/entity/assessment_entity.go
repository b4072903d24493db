package entity

import (
	"time"

	"github.com/google/uuid"

	"frontera-be/pkg/coaching/assessment"
)

// Assessment is a scored questionnaire submission. The result is derived
// once at submission time and stored verbatim.
type Assessment struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Responses   assessment.Responses
	Result      assessment.Result
	SubmittedAt time.Time
}
