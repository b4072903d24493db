package entity

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusExpired InvoiceStatus = "expired"
	InvoiceStatusFailed  InvoiceStatus = "failed"
)

// EnrollmentInvoice is the program-enrollment payment raised for an accepted
// application. Payment itself happens on the gateway; we track the order and
// its redirect URL.
type EnrollmentInvoice struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	ApplicationId uuid.UUID
	OrderId       string
	Amount        int64
	Currency      string
	Status        InvoiceStatus
	PaymentURL    string
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
