package events

import "time"

// Event type codes published to the analytics stream.
const (
	TypeApplicationSubmitted = "APPLICATION_SUBMITTED"
	TypeApplicationDecided   = "APPLICATION_DECIDED"
	TypeConversationStarted  = "CONVERSATION_STARTED"
	TypePillarCompleted      = "PILLAR_COMPLETED"
	TypeAssessmentScored     = "ASSESSMENT_SCORED"
	TypePortfolioExported    = "PORTFOLIO_EXPORTED"
	TypeEnrollmentPaid       = "ENROLLMENT_PAID"
)

func NewApplicationSubmittedEvent(applicationID, userID, companyName string) Event {
	return BaseEvent{
		Type: TypeApplicationSubmitted,
		Data: map[string]interface{}{
			"application_id": applicationID,
			"user_id":        userID,
			"company_name":   companyName,
		},
		OccurredAt: time.Now(),
	}
}

func NewApplicationDecidedEvent(applicationID, status string) Event {
	return BaseEvent{
		Type: TypeApplicationDecided,
		Data: map[string]interface{}{
			"application_id": applicationID,
			"status":         status,
		},
		OccurredAt: time.Now(),
	}
}

func NewConversationStartedEvent(conversationID, userID string) Event {
	return BaseEvent{
		Type: TypeConversationStarted,
		Data: map[string]interface{}{
			"conversation_id": conversationID,
			"user_id":         userID,
		},
		OccurredAt: time.Now(),
	}
}

func NewPillarCompletedEvent(conversationID, pillar string, overallProgress int) Event {
	return BaseEvent{
		Type: TypePillarCompleted,
		Data: map[string]interface{}{
			"conversation_id": conversationID,
			"pillar":          pillar,
			"overall":         overallProgress,
		},
		OccurredAt: time.Now(),
	}
}

func NewAssessmentScoredEvent(assessmentID, userID, archetype string, overall int) Event {
	return BaseEvent{
		Type: TypeAssessmentScored,
		Data: map[string]interface{}{
			"assessment_id": assessmentID,
			"user_id":       userID,
			"archetype":     archetype,
			"overall":       overall,
		},
		OccurredAt: time.Now(),
	}
}

func NewPortfolioExportedEvent(userID string, betCount, thesisCount int) Event {
	return BaseEvent{
		Type: TypePortfolioExported,
		Data: map[string]interface{}{
			"user_id":      userID,
			"bet_count":    betCount,
			"thesis_count": thesisCount,
		},
		OccurredAt: time.Now(),
	}
}

func NewEnrollmentPaidEvent(orderID, userID string, amount int64) Event {
	return BaseEvent{
		Type: TypeEnrollmentPaid,
		Data: map[string]interface{}{
			"order_id": orderID,
			"user_id":  userID,
			"amount":   amount,
		},
		OccurredAt: time.Now(),
	}
}
