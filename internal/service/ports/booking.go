package ports

import (
	"context"
	"time"

	"github.com/syarief02/bubatbook-sub000/internal/domain"
)

type BookingRepo interface {
	CreateHold(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	ListByCar(ctx context.Context, carID string) ([]*domain.Booking, error)
	CountOverlapping(ctx context.Context, carID string, pickup, ret time.Time) (int, error)
	CompleteDeposit(ctx context.Context, p *domain.Payment) error
	Confirm(ctx context.Context, bookingID, actor string) error
	Cancel(ctx context.Context, bookingID string, customerID *string, actor string) error
	ExpireOverdue(ctx context.Context) ([]*domain.Booking, error)
}
