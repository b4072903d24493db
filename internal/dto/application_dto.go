package dto

import (
	"time"

	"github.com/google/uuid"

	"frontera-be/internal/entity"
)

type SubmitApplicationRequest struct {
	CompanyName      string            `json:"company_name" validate:"required,min=2,max=255"`
	Industry         *string           `json:"industry,omitempty"`
	CompanySize      *string           `json:"company_size,omitempty"`
	Tier             *string           `json:"tier,omitempty"`
	Role             *string           `json:"role,omitempty"`
	StrategicFocus   *string           `json:"strategic_focus,omitempty" validate:"omitempty,oneof=strategy_to_execution product_model team_empowerment mixed"`
	PainPoints       *string           `json:"pain_points,omitempty"`
	TargetOutcomes   *string           `json:"target_outcomes,omitempty"`
	PreviousAttempts *string           `json:"previous_attempts,omitempty"`
	Objectives       []string          `json:"objectives,omitempty"`
	Links            map[string]string `json:"links,omitempty"`
}

type ApplicationResponse struct {
	Id          uuid.UUID            `json:"id"`
	Status      string               `json:"status"`
	Profile     entity.ClientProfile `json:"profile"`
	ReviewNotes *string              `json:"review_notes,omitempty"`
	DecidedAt   *time.Time           `json:"decided_at,omitempty"`
	SubmittedAt time.Time            `json:"submitted_at"`
}

type ApplicationListResponse struct {
	Id          uuid.UUID `json:"id"`
	UserId      uuid.UUID `json:"user_id"`
	UserEmail   string    `json:"user_email,omitempty"`
	CompanyName string    `json:"company_name"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ReviewApplicationRequest struct {
	Status      string  `json:"status" validate:"required,oneof=in_review accepted rejected waitlisted"`
	ReviewNotes *string `json:"review_notes,omitempty"`
}
