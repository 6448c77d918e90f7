package service

import (
	"context"
	"fmt"
	"time"

	"github.com/syarief02/bubatbook-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AvailabilityService answers whether a car is free for a candidate date
// range. Every check first sweeps overdue holds across the whole ledger,
// so any visitor's lookup keeps the data fresh even between scheduler
// ticks.
type AvailabilityService struct {
	bookingRepo ports.BookingRepo
	logger      logger.Logger
}

func NewAvailabilityService(bookingRepo ports.BookingRepo, logger logger.Logger) *AvailabilityService {
	return &AvailabilityService{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Check reports whether the car is bookable for [pickup, return]. A
// reserving booking whose range merely touches a boundary day counts as
// overlapping.
func (s *AvailabilityService) Check(ctx context.Context, carID string, pickup, ret time.Time) (bool, error) {
	expired, err := s.bookingRepo.ExpireOverdue(ctx)
	if err != nil {
		return false, fmt.Errorf("sweep holds: %w", err)
	}
	if len(expired) > 0 {
		s.logger.Info("overdue holds swept during availability check",
			logger.Int("count", len(expired)),
		)
	}

	overlapping, err := s.bookingRepo.CountOverlapping(ctx, carID, pickup, ret)
	if err != nil {
		return false, fmt.Errorf("count overlapping: %w", err)
	}

	return overlapping == 0, nil
}
