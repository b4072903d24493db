package model

import (
	"time"

	"github.com/google/uuid"
)

type EnrollmentInvoice struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	ApplicationId uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderId       string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Amount        int64     `gorm:"not null"`
	Currency      string    `gorm:"type:varchar(10);not null;default:'USD'"`
	Status        string    `gorm:"type:varchar(50);not null;default:'pending'"`
	PaymentURL    string    `gorm:"type:text"`
	PaidAt        *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (EnrollmentInvoice) TableName() string {
	return "enrollment_invoices"
}
