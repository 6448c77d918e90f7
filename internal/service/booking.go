package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/syarief02/bubatbook-sub000/internal/domain"
	"github.com/syarief02/bubatbook-sub000/internal/pricing"
	"github.com/syarief02/bubatbook-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultPaymentMethod = "card"

type availabilityChecker interface {
	Check(ctx context.Context, carID string, pickup, ret time.Time) (bool, error)
}

// BookingService owns the booking lifecycle:
//
//	hold -> paid -> confirmed
//	hold -> expired (sweep only)
//	hold, paid -> cancelled
//
// cancelled and expired are terminal.
type BookingService struct {
	bookingRepo  ports.BookingRepo
	carRepo      ports.CarRepo
	customerRepo ports.CustomerRepo
	availability availabilityChecker
	notifier     ports.BookingNotifier
	logger       logger.Logger

	holdTTL        time.Duration
	depositPercent int64
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	carRepo ports.CarRepo,
	customerRepo ports.CustomerRepo,
	availability availabilityChecker,
	notifier ports.BookingNotifier,
	logger logger.Logger,
	holdTTL time.Duration,
	depositPercent int64,
) *BookingService {
	return &BookingService{
		bookingRepo:    bookingRepo,
		carRepo:        carRepo,
		customerRepo:   customerRepo,
		availability:   availability,
		notifier:       notifier,
		logger:         logger,
		holdTTL:        holdTTL,
		depositPercent: depositPercent,
	}
}

// Hold creates a time-boxed reservation. The price is locked at the car's
// current daily rate and never recalculated, even if the rate changes
// later. The repository re-checks availability inside its transaction, so
// the pre-check here can only turn racing holds away early.
func (s *BookingService) Hold(ctx context.Context, input domain.HoldInput) (*domain.Booking, error) {
	car, err := s.carRepo.GetByID(ctx, input.CarID)
	if err != nil {
		return nil, fmt.Errorf("check car: %w", err)
	}
	if !car.Available {
		return nil, domain.ErrCarUnavailable
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("check customer: %w", err)
	}

	quote := pricing.Calculate(car.DailyRate, input.PickupDate, input.ReturnDate, s.depositPercent)
	if quote.Days == 0 {
		return nil, fmt.Errorf("%w: return date must be after pickup date", domain.ErrValidation)
	}

	free, err := s.availability.Check(ctx, input.CarID, input.PickupDate, input.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if !free {
		return nil, domain.ErrDatesUnavailable
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.holdTTL)
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		CarID:         input.CarID,
		CustomerID:    input.CustomerID,
		PickupDate:    input.PickupDate,
		ReturnDate:    input.ReturnDate,
		Days:          quote.Days,
		Total:         quote.Total,
		Deposit:       quote.Deposit,
		Status:        domain.BookingStatusHold,
		HoldExpiresAt: &expiresAt,
		ContactName:   customer.Name,
		ContactEmail:  customer.Email,
		ContactPhone:  customer.Phone,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.bookingRepo.CreateHold(ctx, booking); err != nil {
		return nil, fmt.Errorf("create hold: %w", err)
	}

	s.logger.Info("hold created",
		logger.String("booking_id", booking.ID),
		logger.String("car_id", input.CarID),
		logger.String("customer_id", input.CustomerID),
		logger.Int("days", quote.Days),
		logger.Int64("total", quote.Total),
		logger.Int64("deposit", quote.Deposit),
	)

	go s.notifier.NotifyHoldCreated(context.WithoutCancel(ctx), customer, car, booking)

	return booking, nil
}

// Availability returns the verdict for a candidate range together with the
// quote it would price at, so callers can render both in one round trip.
func (s *BookingService) Availability(ctx context.Context, carID string, pickup, ret time.Time) (*domain.Availability, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, fmt.Errorf("check car: %w", err)
	}

	quote := pricing.Calculate(car.DailyRate, pickup, ret, s.depositPercent)
	if quote.Days == 0 {
		return nil, fmt.Errorf("%w: return date must be after pickup date", domain.ErrValidation)
	}

	free, err := s.availability.Check(ctx, carID, pickup, ret)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}

	return &domain.Availability{
		Available: free && car.Available,
		Days:      quote.Days,
		Total:     quote.Total,
		Deposit:   quote.Deposit,
	}, nil
}

// PayDeposit completes the simulated deposit payment on a hold. The
// payment insert and the status change are one transaction in the
// repository; a hold past its deadline fails with ErrHoldExpired even if
// the sweep has not caught it yet.
func (s *BookingService) PayDeposit(ctx context.Context, bookingID string, input domain.PaymentInput) (*domain.Payment, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	switch booking.Status {
	case domain.BookingStatusHold:
		// proceed
	case domain.BookingStatusExpired:
		return nil, domain.ErrHoldExpired
	default:
		return nil, domain.ErrInvalidTransition
	}
	if booking.HoldExpiresAt != nil && booking.HoldExpiresAt.Before(time.Now().UTC()) {
		return nil, domain.ErrHoldExpired
	}

	method := input.Method
	if method == "" {
		method = defaultPaymentMethod
	}

	payment := &domain.Payment{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		Amount:    booking.Deposit,
		Method:    method,
		Status:    domain.PaymentStatusCompleted,
		Reference: newPaymentReference(),
		Simulated: input.Simulated,
		CreatedAt: time.Now().UTC(),
	}

	if err = s.bookingRepo.CompleteDeposit(ctx, payment); err != nil {
		return nil, fmt.Errorf("complete deposit: %w", err)
	}

	s.logger.Info("deposit paid",
		logger.String("booking_id", bookingID),
		logger.String("payment_id", payment.ID),
		logger.String("reference", payment.Reference),
		logger.Int64("amount", payment.Amount),
	)

	s.notify(ctx, booking, s.notifier.NotifyPaymentReceived)

	return payment, nil
}

// Confirm is the admin step that acknowledges a paid booking. The audit
// entry is written by the repository in the same transaction.
func (s *BookingService) Confirm(ctx context.Context, bookingID, actor string) error {
	if err := s.bookingRepo.Confirm(ctx, bookingID, actor); err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", bookingID),
		logger.String("actor", actor),
	)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("failed to get booking for notification",
			logger.String("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	s.notify(ctx, booking, s.notifier.NotifyBookingConfirmed)

	return nil
}

// Cancel releases the booking's dates immediately. customerID nil means
// an admin cancellation with no ownership check.
func (s *BookingService) Cancel(ctx context.Context, bookingID string, customerID *string, actor string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}
	if booking.Status.IsTerminal() {
		return domain.ErrInvalidTransition
	}

	if err = s.bookingRepo.Cancel(ctx, bookingID, customerID, actor); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("actor", actor),
	)

	s.notify(ctx, booking, s.notifier.NotifyBookingCancelled)

	return nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByCustomer(ctx, customerID)
}

// ListByCar returns the car's reserving bookings ordered by pickup date,
// the raw material for a booking calendar.
func (s *BookingService) ListByCar(ctx context.Context, carID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByCar(ctx, carID)
}

// ExpireOverdue is the scheduler entry point for the active sweep.
func (s *BookingService) ExpireOverdue(ctx context.Context) ([]*domain.Booking, error) {
	expired, err := s.bookingRepo.ExpireOverdue(ctx)
	if err != nil {
		return nil, fmt.Errorf("expire overdue: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("overdue holds expired",
			logger.Int("count", len(expired)),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

func (s *BookingService) notifyExpired(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		customer, err := s.customerRepo.GetByID(ctx, b.CustomerID)
		if err != nil {
			s.logger.Error("failed to get customer for expiry notification",
				logger.String("customer_id", b.CustomerID),
			)
			continue
		}

		car, err := s.carRepo.GetByID(ctx, b.CarID)
		if err != nil {
			s.logger.Error("failed to get car for expiry notification",
				logger.String("car_id", b.CarID),
			)
			continue
		}

		s.notifier.NotifyHoldExpired(ctx, customer, car, b)
	}
}

// notify resolves the booking's customer and car and fires the callback
// on a detached goroutine. Lookup failures are logged, never fatal.
func (s *BookingService) notify(
	ctx context.Context,
	booking *domain.Booking,
	fn func(ctx context.Context, customer *domain.Customer, car *domain.Car, booking *domain.Booking),
) {
	customer, err := s.customerRepo.GetByID(ctx, booking.CustomerID)
	if err != nil {
		s.logger.Error("failed to get customer for notification",
			logger.String("customer_id", booking.CustomerID),
			logger.String("error", err.Error()),
		)
		return
	}

	car, err := s.carRepo.GetByID(ctx, booking.CarID)
	if err != nil {
		s.logger.Error("failed to get car for notification",
			logger.String("car_id", booking.CarID),
			logger.String("error", err.Error()),
		)
		return
	}

	go fn(context.WithoutCancel(ctx), customer, car, booking)
}

func newPaymentReference() string {
	return "PAY-" + strings.ToUpper(uuid.New().String()[:8])
}
