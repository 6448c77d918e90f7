package dto

type CreateCarRequest struct {
	Make      string `json:"make" binding:"required"`
	Model     string `json:"model" binding:"required"`
	Plate     string `json:"plate" binding:"required"`
	DailyRate int64  `json:"daily_rate" binding:"required,gt=0"`
	Available *bool  `json:"available"`
}

type CreateCustomerRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateHoldRequest struct {
	CarID      string `json:"car_id" binding:"required,uuid"`
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	PickupDate string `json:"pickup_date" binding:"required"`
	ReturnDate string `json:"return_date" binding:"required"`
	Notes      string `json:"notes"`
}

type PayRequest struct {
	Method    string `json:"method"`
	Simulated *bool  `json:"simulated"`
}

type ConfirmRequest struct {
	Actor string `json:"actor" binding:"required"`
}

// CancelRequest carries the requester identity. A customer cancellation
// sets customer_id and is subject to the ownership check; an admin
// cancellation omits it and names the actor instead.
type CancelRequest struct {
	CustomerID *string `json:"customer_id" binding:"omitempty,uuid"`
	Actor      string  `json:"actor"`
}
