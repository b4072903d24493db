package mapper

import (
	"encoding/json"

	"frontera-be/internal/entity"
	"frontera-be/internal/model"
	"frontera-be/pkg/coaching/state"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ConversationToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}

	// A row written before the state column existed, or with a corrupt
	// document, degrades to a fresh state rather than failing the read.
	st := state.Initialize()
	if len(c.FrameworkState) > 0 {
		if err := json.Unmarshal(c.FrameworkState, &st); err != nil {
			st = state.Initialize()
		}
	}

	return &entity.Conversation{
		Id:             c.Id,
		UserId:         c.UserId,
		Title:          c.Title,
		FrameworkState: st,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      updatedAtToPtr(c.UpdatedAt),
		DeletedAt:      deletedAtToPtr(c.DeletedAt),
		IsDeleted:      c.DeletedAt.Valid,
	}
}

func (m *ConversationMapper) ConversationToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}

	stateJSON, _ := json.Marshal(c.FrameworkState)

	return &model.Conversation{
		Id:             c.Id,
		UserId:         c.UserId,
		Title:          c.Title,
		FrameworkState: stateJSON,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      ptrToUpdatedAt(c.UpdatedAt),
		DeletedAt:      ptrToDeletedAt(c.DeletedAt, c.IsDeleted),
	}
}

func (m *ConversationMapper) MessageToEntity(msg *model.ConversationMessage) *entity.ConversationMessage {
	if msg == nil {
		return nil
	}
	return &entity.ConversationMessage{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Role:           msg.Role,
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt,
		DeletedAt:      deletedAtToPtr(msg.DeletedAt),
		IsDeleted:      msg.DeletedAt.Valid,
	}
}

func (m *ConversationMapper) MessageToModel(msg *entity.ConversationMessage) *model.ConversationMessage {
	if msg == nil {
		return nil
	}
	return &model.ConversationMessage{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Role:           msg.Role,
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt,
		DeletedAt:      ptrToDeletedAt(msg.DeletedAt, msg.IsDeleted),
	}
}
