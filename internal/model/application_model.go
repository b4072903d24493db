package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Application struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status      string         `gorm:"type:varchar(50);not null;default:'submitted';index"`
	Profile     datatypes.JSON `gorm:"type:jsonb;not null"`
	ReviewNotes *string        `gorm:"type:text"`
	ReviewedBy  *uuid.UUID     `gorm:"type:uuid"`
	DecidedAt   *time.Time
	SubmittedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Application) TableName() string {
	return "applications"
}
