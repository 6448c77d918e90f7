package domain

import "time"

type Car struct {
	ID        string    `json:"id"`
	Make      string    `json:"make"`
	Model     string    `json:"model"`
	Plate     string    `json:"plate"`
	DailyRate int64     `json:"daily_rate"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCarInput struct {
	Make      string
	Model     string
	Plate     string
	DailyRate int64
	Available *bool
}
