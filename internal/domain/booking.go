package domain

import "time"

type BookingStatus string

const (
	BookingStatusHold      BookingStatus = "hold"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusExpired   BookingStatus = "expired"
)

// ReservingStatuses are the statuses that count against a car's availability.
var ReservingStatuses = []BookingStatus{
	BookingStatusHold,
	BookingStatusPaid,
	BookingStatusConfirmed,
}

// IsTerminal reports whether no further transition is allowed.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusExpired
}

type Booking struct {
	ID            string        `json:"id"`
	CarID         string        `json:"car_id"`
	CustomerID    string        `json:"customer_id"`
	PickupDate    time.Time     `json:"pickup_date"`
	ReturnDate    time.Time     `json:"return_date"`
	Days          int           `json:"days"`
	Total         int64         `json:"total"`
	Deposit       int64         `json:"deposit"`
	Status        BookingStatus `json:"status"`
	HoldExpiresAt *time.Time    `json:"hold_expires_at,omitempty"`
	ContactName   string        `json:"contact_name"`
	ContactEmail  string        `json:"contact_email"`
	ContactPhone  string        `json:"contact_phone"`
	Notes         string        `json:"notes"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type HoldInput struct {
	CarID      string
	CustomerID string
	PickupDate time.Time
	ReturnDate time.Time
	Notes      string
}

// Availability is the verdict for a candidate car/date range, with the
// quote the range would price at.
type Availability struct {
	Available bool  `json:"available"`
	Days      int   `json:"days"`
	Total     int64 `json:"total"`
	Deposit   int64 `json:"deposit"`
}
