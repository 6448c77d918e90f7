package dto

import (
	"time"

	"github.com/syarief02/bubatbook-sub000/internal/domain"
)

const dateLayout = "2006-01-02"

type CarResponse struct {
	ID        string `json:"id"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Plate     string `json:"plate"`
	DailyRate int64  `json:"daily_rate"`
	Available bool   `json:"available"`
	CreatedAt string `json:"created_at"`
}

type CustomerResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	CarID         string  `json:"car_id"`
	CustomerID    string  `json:"customer_id"`
	PickupDate    string  `json:"pickup_date"`
	ReturnDate    string  `json:"return_date"`
	Days          int     `json:"days"`
	Total         int64   `json:"total"`
	Deposit       int64   `json:"deposit"`
	Status        string  `json:"status"`
	HoldExpiresAt *string `json:"hold_expires_at,omitempty"`
	ContactName   string  `json:"contact_name"`
	ContactEmail  string  `json:"contact_email"`
	ContactPhone  string  `json:"contact_phone,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type PaymentResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	Amount    int64  `json:"amount"`
	Method    string `json:"method"`
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Simulated bool   `json:"simulated"`
	CreatedAt string `json:"created_at"`
}

type AvailabilityResponse struct {
	Available bool  `json:"available"`
	Days      int   `json:"days"`
	Total     int64 `json:"total"`
	Deposit   int64 `json:"deposit"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToCarResponse(c *domain.Car) CarResponse {
	return CarResponse{
		ID:        c.ID,
		Make:      c.Make,
		Model:     c.Model,
		Plate:     c.Plate,
		DailyRate: c.DailyRate,
		Available: c.Available,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		TelegramChatID: c.TelegramChatID,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:           b.ID,
		CarID:        b.CarID,
		CustomerID:   b.CustomerID,
		PickupDate:   b.PickupDate.Format(dateLayout),
		ReturnDate:   b.ReturnDate.Format(dateLayout),
		Days:         b.Days,
		Total:        b.Total,
		Deposit:      b.Deposit,
		Status:       string(b.Status),
		ContactName:  b.ContactName,
		ContactEmail: b.ContactEmail,
		ContactPhone: b.ContactPhone,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
	if b.HoldExpiresAt != nil {
		expires := b.HoldExpiresAt.Format(time.RFC3339)
		resp.HoldExpiresAt = &expires
	}
	return resp
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		BookingID: p.BookingID,
		Amount:    p.Amount,
		Method:    p.Method,
		Status:    string(p.Status),
		Reference: p.Reference,
		Simulated: p.Simulated,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func ToAvailabilityResponse(a *domain.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		Available: a.Available,
		Days:      a.Days,
		Total:     a.Total,
		Deposit:   a.Deposit,
	}
}
