package ports

import (
	"context"

	"github.com/syarief02/bubatbook-sub000/internal/domain"
)

type BookingNotifier interface {
	NotifyHoldCreated(ctx context.Context, customer *domain.Customer, car *domain.Car, booking *domain.Booking)
	NotifyPaymentReceived(ctx context.Context, customer *domain.Customer, car *domain.Car, booking *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, customer *domain.Customer, car *domain.Car, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, customer *domain.Customer, car *domain.Car, booking *domain.Booking)
	NotifyHoldExpired(ctx context.Context, customer *domain.Customer, car *domain.Car, booking *domain.Booking)
}
