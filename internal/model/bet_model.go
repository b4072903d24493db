package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StrategicBet struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	JobToBeDone   string    `gorm:"type:text;not null"`
	Belief        string    `gorm:"type:text;not null"`
	Bet           string    `gorm:"type:text;not null"`
	SuccessMetric string    `gorm:"type:text;not null"`
	KillCriteria  string    `gorm:"type:text"`
	KillDate      *time.Time
	Scores        datatypes.JSON `gorm:"type:jsonb;not null"`
	EvidenceLinks datatypes.JSON `gorm:"type:jsonb"`
	Risks         datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (StrategicBet) TableName() string {
	return "strategic_bets"
}

type StrategicThesis struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Statement   string         `gorm:"type:text;not null"`
	WhereToPlay string         `gorm:"type:text"`
	HowToWin    string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (StrategicThesis) TableName() string {
	return "strategic_theses"
}
