package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/syarief02/bubatbook-sub000/internal/domain"
	"github.com/syarief02/bubatbook-sub000/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type CarSvc interface {
	Create(ctx context.Context, input domain.CreateCarInput) (*domain.Car, error)
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	List(ctx context.Context) ([]*domain.Car, error)
}

type BookingSvc interface {
	Hold(ctx context.Context, input domain.HoldInput) (*domain.Booking, error)
	Availability(ctx context.Context, carID string, pickup, ret time.Time) (*domain.Availability, error)
	PayDeposit(ctx context.Context, bookingID string, input domain.PaymentInput) (*domain.Payment, error)
	Confirm(ctx context.Context, bookingID, actor string) error
	Cancel(ctx context.Context, bookingID string, customerID *string, actor string) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	ListByCar(ctx context.Context, carID string) ([]*domain.Booking, error)
}

type CustomerSvc interface {
	Create(ctx context.Context, input domain.CreateCustomerInput) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}

type Handler struct {
	carService      CarSvc
	bookingService  BookingSvc
	customerService CustomerSvc
}

func NewHandler(carService CarSvc, bookingService BookingSvc, customerService CustomerSvc) *Handler {
	return &Handler{
		carService:      carService,
		bookingService:  bookingService,
		customerService: customerService,
	}
}

// Cars

func (h *Handler) CreateCar(c *ginext.Context) {
	var req dto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateCarInput{
		Make:      req.Make,
		Model:     req.Model,
		Plate:     req.Plate,
		DailyRate: req.DailyRate,
		Available: req.Available,
	}

	car, err := h.carService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCarResponse(car))
}

func (h *Handler) GetCar(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid car id"})
		return
	}

	car, err := h.carService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCarResponse(car))
}

func (h *Handler) ListCars(c *ginext.Context) {
	cars, err := h.carService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CarResponse, 0, len(cars))
	for _, car := range cars {
		resp = append(resp, dto.ToCarResponse(car))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCarAvailability(c *ginext.Context) {
	carID := c.Param("id")
	if _, err := uuid.Parse(carID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid car id"})
		return
	}

	pickup, err := time.Parse(dateLayout, c.Query("pickup_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid pickup_date, expected YYYY-MM-DD",
		})
		return
	}
	ret, err := time.Parse(dateLayout, c.Query("return_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid return_date, expected YYYY-MM-DD",
		})
		return
	}

	availability, err := h.bookingService.Availability(c.Request.Context(), carID, pickup, ret)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

func (h *Handler) GetCarBookings(c *ginext.Context) {
	carID := c.Param("id")
	if _, err := uuid.Parse(carID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid car id"})
		return
	}

	bookings, err := h.bookingService.ListByCar(c.Request.Context(), carID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateHold(c *ginext.Context) {
	var req dto.CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	pickup, err := time.Parse(dateLayout, req.PickupDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid pickup_date, expected YYYY-MM-DD",
		})
		return
	}
	ret, err := time.Parse(dateLayout, req.ReturnDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid return_date, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.HoldInput{
		CarID:      req.CarID,
		CustomerID: req.CustomerID,
		PickupDate: pickup,
		ReturnDate: ret,
		Notes:      req.Notes,
	}

	booking, err := h.bookingService.Hold(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) PayBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	simulated := true
	if req.Simulated != nil {
		simulated = *req.Simulated
	}

	payment, err := h.bookingService.PayDeposit(c.Request.Context(), id, domain.PaymentInput{
		Method:    req.Method,
		Simulated: simulated,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.Confirm(c.Request.Context(), id, req.Actor); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "confirmed"})
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	actor := req.Actor
	if actor == "" {
		if req.CustomerID != nil {
			actor = "customer:" + *req.CustomerID
		} else {
			actor = "admin"
		}
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id, req.CustomerID, actor); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// Customers

func (h *Handler) CreateCustomer(c *ginext.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateCustomerInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		TelegramChatID: req.TelegramChatID,
	}

	customer, err := h.customerService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

func (h *Handler) ListCustomers(c *ginext.Context) {
	customers, err := h.customerService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		resp = append(resp, dto.ToCustomerResponse(customer))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCustomerBookings(c *ginext.Context) {
	customerID := c.Param("id")
	if _, err := uuid.Parse(customerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid customer id"})
		return
	}

	bookings, err := h.bookingService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrCarNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDatesUnavailable),
		errors.Is(err, domain.ErrCarUnavailable),
		errors.Is(err, domain.ErrHoldExpired),
		errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
