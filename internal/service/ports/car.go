package ports

import (
	"context"

	"github.com/syarief02/bubatbook-sub000/internal/domain"
)

type CarRepo interface {
	Create(ctx context.Context, c *domain.Car) error
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	List(ctx context.Context) ([]*domain.Car, error)
}
