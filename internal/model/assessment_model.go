package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Assessment struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Responses   datatypes.JSON `gorm:"type:jsonb;not null"`
	Result      datatypes.JSON `gorm:"type:jsonb;not null"`
	SubmittedAt time.Time      `gorm:"autoCreateTime"`
}

func (Assessment) TableName() string {
	return "assessments"
}
