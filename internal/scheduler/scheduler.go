package scheduler

import (
	"context"
	"time"

	"github.com/syarief02/bubatbook-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type holdSweeper interface {
	ExpireOverdue(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler actively expires overdue holds on a fixed interval, so
// reserved dates are released even when nobody is browsing. The lazy
// sweep inside the availability check stays as the fallback in between
// ticks.
type Scheduler struct {
	bookingService holdSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService holdSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.bookingService.ExpireOverdue(ctx)
	if err != nil {
		s.logger.Error("failed to expire overdue holds",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range expired {
		s.logger.Info("hold expired",
			logger.String("booking_id", b.ID),
			logger.String("car_id", b.CarID),
			logger.String("customer_id", b.CustomerID),
		)
	}
}
