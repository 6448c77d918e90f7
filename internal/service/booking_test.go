package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/syarief02/bubatbook-sub000/internal/domain"
	"github.com/syarief02/bubatbook-sub000/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingFixture struct {
	bookingRepo  *mocks.MockBookingRepo
	carRepo      *mocks.MockCarRepo
	customerRepo *mocks.MockCustomerRepo
	notifier     *mocks.MockBookingNotifier
	svc          *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	carRepo := mocks.NewMockCarRepo(t)
	customerRepo := mocks.NewMockCustomerRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	availability := NewAvailabilityService(bookingRepo, log)
	svc := NewBookingService(bookingRepo, carRepo, customerRepo, availability, notifier, log, 10*time.Minute, 30)

	return &bookingFixture{
		bookingRepo:  bookingRepo,
		carRepo:      carRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
		svc:          svc,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingService_Hold_Success(t *testing.T) {
	f := newBookingFixture(t)

	car := &domain.Car{ID: "c1", Make: "Perodua", Model: "Myvi", DailyRate: 150, Available: true}
	customer := &domain.Customer{ID: "u1", Name: "Alice", Email: "alice@example.com", Phone: "0123456789"}

	f.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	f.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer, nil)
	f.bookingRepo.EXPECT().ExpireOverdue(mock.Anything).Return(nil, nil)
	f.bookingRepo.EXPECT().CountOverlapping(mock.Anything, "c1", mock.Anything, mock.Anything).Return(0, nil)
	f.bookingRepo.EXPECT().CreateHold(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyHoldCreated(mock.Anything, customer, car, mock.Anything).Return()

	booking, err := f.svc.Hold(context.Background(), domain.HoldInput{
		CarID:      "c1",
		CustomerID: "u1",
		PickupDate: date(2026, 9, 1),
		ReturnDate: date(2026, 9, 4),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusHold, booking.Status)
	assert.Equal(t, 3, booking.Days)
	assert.Equal(t, int64(450), booking.Total)
	assert.Equal(t, int64(135), booking.Deposit)
	assert.Equal(t, "Alice", booking.ContactName)
	assert.NotEmpty(t, booking.ID)
	require.NotNil(t, booking.HoldExpiresAt)
	assert.WithinDuration(t, time.Now().UTC().Add(10*time.Minute), *booking.HoldExpiresAt, 5*time.Second)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Hold_CarNotFound(t *testing.T) {
	f := newBookingFixture(t)

	f.carRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCarNotFound)

	_, err := f.svc.Hold(context.Background(), domain.HoldInput{
		CarID:      "missing",
		CustomerID: "u1",
		PickupDate: date(2026, 9, 1),
		ReturnDate: date(2026, 9, 4),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCarNotFound)
}

func TestBookingService_Hold_CarUnavailable(t *testing.T) {
	f := newBookingFixture(t)

	car := &domain.Car{ID: "c1", DailyRate: 150, Available: false}
	f.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)

	_, err := f.svc.Hold(context.Background(), domain.HoldInput{
		CarID:      "c1",
		CustomerID: "u1",
		PickupDate: date(2026, 9, 1),
		ReturnDate: date(2026, 9, 4),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCarUnavailable)
}

func TestBookingService_Hold_CustomerNotFound(t *testing.T) {
	f := newBookingFixture(t)

	car := &domain.Car{ID: "c1", DailyRate: 150, Available: true}
	f.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	f.customerRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCustomerNotFound)

	_, err := f.svc.Hold(context.Background(), domain.HoldInput{
		CarID:      "c1",
		CustomerID: "missing",
		PickupDate: date(2026, 9, 1),
		ReturnDate: date(2026, 9, 4),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestBookingService_Hold_ReturnNotAfterPickup(t *testing.T) {
	f := newBookingFixture(t)

	car := &domain.Car{ID: "c1", DailyRate: 150, Available: true}
	customer := &domain.Customer{ID: "u1", Name: "Alice"}
	f.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	f.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer, nil)

	_, err := f.svc.Hold(context.Background(), domain.HoldInput{
		CarID:      "c1",
		CustomerID: "u1",
		PickupDate: date(2026, 9, 4),
		ReturnDate: date(2026, 9, 4),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Hold_DatesUnavailable(t *testing.T) {
	f := newBookingFixture(t)

	car := &domain.Car{ID: "c1", DailyRate: 150, Available: true}
	customer := &domain.Customer{ID: "u1", Name: "Alice"}
	f.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	f.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer, nil)
	f.bookingRepo.EXPECT().ExpireOverdue(mock.Anything).Return(nil, nil)
	f.bookingRepo.EXPECT().CountOverlapping(mock.Anything, "c1", mock.Anything, mock.Anything).Return(1, nil)

	_, err := f.svc.Hold(context.Background(), domain.HoldInput{
		CarID:      "c1",
		CustomerID: "u1",
		PickupDate: date(2026, 9, 1),
		ReturnDate: date(2026, 9, 4),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDatesUnavailable)
}

func TestBookingService_Hold_LostRace(t *testing.T) {
	f := newBookingFixture(t)

	car := &domain.Car{ID: "c1", DailyRate: 150, Available: true}
	customer := &domain.Customer{ID: "u1", Name: "Alice"}
	f.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	f.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer, nil)
	f.bookingRepo.EXPECT().ExpireOverdue(mock.Anything).Return(nil, nil)
	f.bookingRepo.EXPECT().CountOverlapping(mock.Anything, "c1", mock.Anything, mock.Anything).Return(0, nil)
	f.bookingRepo.EXPECT().CreateHold(mock.Anything, mock.Anything).Return(domain.ErrDatesUnavailable)

	_, err := f.svc.Hold(context.Background(), domain.HoldInput{
		CarID:      "c1",
		CustomerID: "u1",
		PickupDate: date(2026, 9, 1),
		ReturnDate: date(2026, 9, 4),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDatesUnavailable)
}

func TestBookingService_Availability_FreeAndBookable(t *testing.T) {
	f := newBookingFixture(t)

	car := &domain.Car{ID: "c1", DailyRate: 95, Available: true}
	f.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	f.bookingRepo.EXPECT().ExpireOverdue(mock.Anything).Return(nil, nil)
	f.bookingRepo.EXPECT().CountOverlapping(mock.Anything, "c1", mock.Anything, mock.Anything).Return(0, nil)

	availability, err := f.svc.Availability(context.Background(), "c1", date(2026, 9, 1), date(2026, 9, 2))

	require.NoError(t, err)
	assert.True(t, availability.Available)
	assert.Equal(t, 1, availability.Days)
	assert.Equal(t, int64(95), availability.Total)
	assert.Equal(t, int64(29), availability.Deposit)
}

func TestBookingService_Availability_CarFlaggedOff(t *testing.T) {
	f := newBookingFixture(t)

	car := &domain.Car{ID: "c1", DailyRate: 95, Available: false}
	f.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	f.bookingRepo.EXPECT().ExpireOverdue(mock.Anything).Return(nil, nil)
	f.bookingRepo.EXPECT().CountOverlapping(mock.Anything, "c1", mock.Anything, mock.Anything).Return(0, nil)

	availability, err := f.svc.Availability(context.Background(), "c1", date(2026, 9, 1), date(2026, 9, 2))

	require.NoError(t, err)
	assert.False(t, availability.Available)
}

func TestBookingService_PayDeposit_Success(t *testing.T) {
	f := newBookingFixture(t)

	expires := time.Now().UTC().Add(5 * time.Minute)
	booking := &domain.Booking{
		ID:            "b1",
		CarID:         "c1",
		CustomerID:    "u1",
		Status:        domain.BookingStatusHold,
		Deposit:       135,
		HoldExpiresAt: &expires,
	}
	customer := &domain.Customer{ID: "u1", Name: "Alice"}
	car := &domain.Car{ID: "c1", Make: "Perodua", Model: "Myvi"}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.bookingRepo.EXPECT().CompleteDeposit(mock.Anything, mock.Anything).Return(nil)
	f.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer, nil)
	f.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	f.notifier.EXPECT().NotifyPaymentReceived(mock.Anything, customer, car, booking).Return()

	payment, err := f.svc.PayDeposit(context.Background(), "b1", domain.PaymentInput{Simulated: true})

	require.NoError(t, err)
	assert.Equal(t, "b1", payment.BookingID)
	assert.Equal(t, int64(135), payment.Amount)
	assert.Equal(t, "card", payment.Method)
	assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
	assert.True(t, strings.HasPrefix(payment.Reference, "PAY-"))
	assert.True(t, payment.Simulated)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_PayDeposit_OverdueHold(t *testing.T) {
	f := newBookingFixture(t)

	expires := time.Now().UTC().Add(-time.Minute)
	booking := &domain.Booking{
		ID:            "b1",
		Status:        domain.BookingStatusHold,
		HoldExpiresAt: &expires,
	}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := f.svc.PayDeposit(context.Background(), "b1", domain.PaymentInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHoldExpired)
}

func TestBookingService_PayDeposit_ExpiredStatus(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusExpired}
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := f.svc.PayDeposit(context.Background(), "b1", domain.PaymentInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHoldExpired)
}

func TestBookingService_PayDeposit_AlreadyPaid(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusPaid}
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := f.svc.PayDeposit(context.Background(), "b1", domain.PaymentInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_PayDeposit_BookingNotFound(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := f.svc.PayDeposit(context.Background(), "missing", domain.PaymentInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_PayDeposit_CustomMethod(t *testing.T) {
	f := newBookingFixture(t)

	expires := time.Now().UTC().Add(5 * time.Minute)
	booking := &domain.Booking{
		ID:            "b1",
		CarID:         "c1",
		CustomerID:    "u1",
		Status:        domain.BookingStatusHold,
		Deposit:       45,
		HoldExpiresAt: &expires,
	}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.bookingRepo.EXPECT().CompleteDeposit(mock.Anything, mock.Anything).Return(nil)
	f.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.Customer{ID: "u1"}, nil)
	f.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Car{ID: "c1"}, nil)
	f.notifier.EXPECT().NotifyPaymentReceived(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	payment, err := f.svc.PayDeposit(context.Background(), "b1", domain.PaymentInput{Method: "bank_transfer", Simulated: true})

	require.NoError(t, err)
	assert.Equal(t, "bank_transfer", payment.Method)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Confirm_Success(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{ID: "b1", CarID: "c1", CustomerID: "u1", Status: domain.BookingStatusConfirmed}
	customer := &domain.Customer{ID: "u1"}
	car := &domain.Car{ID: "c1"}

	f.bookingRepo.EXPECT().Confirm(mock.Anything, "b1", "admin:lena").Return(nil)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer, nil)
	f.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	f.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, customer, car, booking).Return()

	err := f.svc.Confirm(context.Background(), "b1", "admin:lena")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Confirm_NotPaid(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().Confirm(mock.Anything, "b1", "admin").Return(domain.ErrInvalidTransition)

	err := f.svc.Confirm(context.Background(), "b1", "admin")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Confirm_NotFound(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().Confirm(mock.Anything, "missing", "admin").Return(domain.ErrBookingNotFound)

	err := f.svc.Confirm(context.Background(), "missing", "admin")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{ID: "b1", CarID: "c1", CustomerID: "u1", Status: domain.BookingStatusHold}
	customer := &domain.Customer{ID: "u1"}
	car := &domain.Car{ID: "c1"}
	customerID := "u1"

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", &customerID, "customer:u1").Return(nil)
	f.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer, nil)
	f.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, customer, car, booking).Return()

	err := f.svc.Cancel(context.Background(), "b1", &customerID, "customer:u1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_Forbidden(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{ID: "b1", CarID: "c1", CustomerID: "u1", Status: domain.BookingStatusHold}
	stranger := "u2"

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", &stranger, "customer:u2").Return(domain.ErrForbidden)

	err := f.svc.Cancel(context.Background(), "b1", &stranger, "customer:u2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Cancel_Terminal(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{ID: "b1", CarID: "c1", CustomerID: "u1", Status: domain.BookingStatusCancelled}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := f.svc.Cancel(context.Background(), "b1", nil, "admin")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	err := f.svc.Cancel(context.Background(), "missing", nil, "admin")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ExpireOverdue_Success(t *testing.T) {
	f := newBookingFixture(t)

	expired := []*domain.Booking{
		{ID: "b1", CarID: "c1", CustomerID: "u1"},
		{ID: "b2", CarID: "c2", CustomerID: "u2"},
	}
	customer1 := &domain.Customer{ID: "u1"}
	customer2 := &domain.Customer{ID: "u2"}
	car1 := &domain.Car{ID: "c1"}
	car2 := &domain.Car{ID: "c2"}

	f.bookingRepo.EXPECT().ExpireOverdue(mock.Anything).Return(expired, nil)
	f.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer1, nil)
	f.customerRepo.EXPECT().GetByID(mock.Anything, "u2").Return(customer2, nil)
	f.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car1, nil)
	f.carRepo.EXPECT().GetByID(mock.Anything, "c2").Return(car2, nil)
	f.notifier.EXPECT().NotifyHoldExpired(mock.Anything, customer1, car1, expired[0]).Return()
	f.notifier.EXPECT().NotifyHoldExpired(mock.Anything, customer2, car2, expired[1]).Return()

	result, err := f.svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestBookingService_ExpireOverdue_NoneOverdue(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().ExpireOverdue(mock.Anything).Return(nil, nil)

	result, err := f.svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestBookingService_ExpireOverdue_RepoError(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().ExpireOverdue(mock.Anything).Return(nil, errors.New("db error"))

	_, err := f.svc.ExpireOverdue(context.Background())

	require.Error(t, err)
}

func TestBookingService_ListByCar_Success(t *testing.T) {
	f := newBookingFixture(t)

	bookings := []*domain.Booking{
		{ID: "b1", CarID: "c1", CustomerID: "u1", Status: domain.BookingStatusConfirmed},
		{ID: "b2", CarID: "c1", CustomerID: "u2", Status: domain.BookingStatusHold},
	}
	f.bookingRepo.EXPECT().ListByCar(mock.Anything, "c1").Return(bookings, nil)

	result, err := f.svc.ListByCar(context.Background(), "c1")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestBookingService_ListByCustomer_Success(t *testing.T) {
	f := newBookingFixture(t)

	bookings := []*domain.Booking{
		{ID: "b1", CarID: "c1", CustomerID: "u1", Status: domain.BookingStatusHold},
	}
	f.bookingRepo.EXPECT().ListByCustomer(mock.Anything, "u1").Return(bookings, nil)

	result, err := f.svc.ListByCustomer(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
