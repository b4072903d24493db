package entity

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusInReview  ApplicationStatus = "in_review"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWaitlist  ApplicationStatus = "waitlisted"
)

// Application is a program application submitted by a prospective client team
// and reviewed in the admin console.
type Application struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Status         ApplicationStatus
	Profile        ClientProfile
	ReviewNotes    *string
	ReviewedBy     *uuid.UUID
	DecidedAt      *time.Time
	SubmittedAt    time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}

// ClientProfile is the typed application/intake profile. Optional sections
// the applicant skipped stay nil — no reflective property access anywhere.
type ClientProfile struct {
	CompanyName      string            `json:"companyName"`
	Industry         *string           `json:"industry,omitempty"`
	CompanySize      *string           `json:"companySize,omitempty"`
	Tier             *string           `json:"tier,omitempty"`
	Role             *string           `json:"role,omitempty"`
	StrategicFocus   *string           `json:"strategicFocus,omitempty"`
	PainPoints       *string           `json:"painPoints,omitempty"`
	TargetOutcomes   *string           `json:"targetOutcomes,omitempty"`
	PreviousAttempts *string           `json:"previousAttempts,omitempty"`
	Objectives       []string          `json:"objectives,omitempty"`
	Links            map[string]string `json:"links,omitempty"`
}
