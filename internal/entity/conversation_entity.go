package entity

import (
	"time"

	"github.com/google/uuid"

	"frontera-be/pkg/coaching/state"
)

// Conversation is one coaching conversation: a chat thread plus its
// framework state document.
type Conversation struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Title          string
	FrameworkState state.State
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}

type ConversationMessage struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Role           string
	Content        string
	CreatedAt      time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
	MessageRoleSystem    = "system"
)
