package domain

import "errors"

var (
	ErrCarNotFound      = errors.New("car not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrBookingNotFound  = errors.New("booking not found")
)

var (
	ErrDatesUnavailable  = errors.New("dates unavailable")
	ErrCarUnavailable    = errors.New("car is not available for rental")
	ErrHoldExpired       = errors.New("booking hold has expired")
	ErrInvalidTransition = errors.New("booking status does not allow this transition")
)

var (
	ErrForbidden  = errors.New("not the owner of this booking")
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
