package domain

import "time"

type PaymentStatus string

const PaymentStatusCompleted PaymentStatus = "completed"

// Payment is immutable once recorded.
type Payment struct {
	ID        string        `json:"id"`
	BookingID string        `json:"booking_id"`
	Amount    int64         `json:"amount"`
	Method    string        `json:"method"`
	Status    PaymentStatus `json:"status"`
	Reference string        `json:"reference"`
	Simulated bool          `json:"simulated"`
	CreatedAt time.Time     `json:"created_at"`
}

type PaymentInput struct {
	Method    string
	Simulated bool
}
