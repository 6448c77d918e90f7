package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/syarief02/bubatbook-sub000/internal/domain"
	"github.com/syarief02/bubatbook-sub000/internal/service/ports"
)

type CarService struct {
	repo ports.CarRepo
}

func NewCarService(repo ports.CarRepo) *CarService {
	return &CarService{repo: repo}
}

func (s *CarService) Create(ctx context.Context, input domain.CreateCarInput) (*domain.Car, error) {
	if input.Make == "" {
		return nil, fmt.Errorf("%w: make is required", domain.ErrValidation)
	}
	if input.Model == "" {
		return nil, fmt.Errorf("%w: model is required", domain.ErrValidation)
	}
	if input.Plate == "" {
		return nil, fmt.Errorf("%w: plate is required", domain.ErrValidation)
	}
	if input.DailyRate <= 0 {
		return nil, fmt.Errorf("%w: daily_rate must be positive", domain.ErrValidation)
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	now := time.Now().UTC()
	car := &domain.Car{
		ID:        uuid.New().String(),
		Make:      input.Make,
		Model:     input.Model,
		Plate:     input.Plate,
		DailyRate: input.DailyRate,
		Available: available,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}

	return car, nil
}

func (s *CarService) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CarService) List(ctx context.Context) ([]*domain.Car, error) {
	return s.repo.List(ctx)
}
