package contract

import (
	"context"

	"frontera-be/internal/entity"
	"frontera-be/internal/repository/specification"
	"frontera-be/pkg/coaching/state"

	"github.com/google/uuid"
)

type ConversationRepository interface {
	Create(ctx context.Context, conv *entity.Conversation) error
	Update(ctx context.Context, conv *entity.Conversation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateState persists a replacement framework-state document without
	// touching the rest of the row.
	UpdateState(ctx context.Context, id uuid.UUID, st state.State) error
}

type ConversationMessageRepository interface {
	Create(ctx context.Context, msg *entity.ConversationMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteByConversation(ctx context.Context, conversationId uuid.UUID) error
}
