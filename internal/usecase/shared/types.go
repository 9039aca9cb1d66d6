package shared

import (
	"time"

	"court-booking/internal/domain/order"
	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
)

type CourtFieldSnapshot struct {
	ID      int64
	CourtID int64
	Name    string
	Pricing slot.PeriodPricing
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	Status          string
	RequestHash     string
	ResultOrderCode *order.Code
	ExpiresAt       time.Time
}

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}

const (
	PaymentPaid   = "paid"
	PaymentFailed = "failed"
)

// PaymentConfirmation is one terminal signal from the payment provider.
type PaymentConfirmation struct {
	OrderCode   order.Code
	ProviderRef string
	Amount      int64
	Status      string
	ReceivedAt  time.Time
}
