package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByConversation struct {
	ConversationID uuid.UUID
}

func (s ByConversation) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByTerritory struct {
	Territory string
}

func (s ByTerritory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("territory = ?", s.Territory)
}

type ByOrderId struct {
	OrderId string
}

func (s ByOrderId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("order_id = ?", s.OrderId)
}

type ByApplication struct {
	ApplicationID uuid.UUID
}

func (s ByApplication) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("application_id = ?", s.ApplicationID)
}
