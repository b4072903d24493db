package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEnrollmentRequest struct {
	ApplicationId uuid.UUID `json:"application_id" validate:"required"`
}

type EnrollmentInvoiceResponse struct {
	Id         uuid.UUID  `json:"id"`
	OrderId    string     `json:"order_id"`
	Amount     int64      `json:"amount"`
	Currency   string     `json:"currency"`
	Status     string     `json:"status"`
	PaymentURL string     `json:"payment_url,omitempty"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// PaymentNotificationRequest mirrors the gateway's webhook payload; only the
// fields we act on are listed.
type PaymentNotificationRequest struct {
	OrderId           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status,omitempty"`
	StatusCode        string `json:"status_code,omitempty"`
	GrossAmount       string `json:"gross_amount,omitempty"`
	SignatureKey      string `json:"signature_key,omitempty"`
}
