package domain

import "time"

const (
	AuditActionConfirm = "booking.confirm"
	AuditActionCancel  = "booking.cancel"
)

type AuditEntry struct {
	ID        int64     `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	BookingID string    `json:"booking_id"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
