package ports

import (
	"context"

	"github.com/syarief02/bubatbook-sub000/internal/domain"
)

type CustomerRepo interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}
