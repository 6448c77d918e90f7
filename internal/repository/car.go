package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/syarief02/bubatbook-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CarRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCarRepo(db *dbpg.DB) *CarRepository {
	return &CarRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CarRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (id, make, model, plate, daily_rate, available, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Make, c.Model, c.Plate, c.DailyRate, c.Available, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: plate is already registered", domain.ErrValidation)
		}
		return fmt.Errorf("insert car: %w", err)
	}

	return nil
}

func (r *CarRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	query := `SELECT id, make, model, plate, daily_rate, available, created_at, updated_at
			  FROM cars
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get car: %w", err)
	}

	var c domain.Car
	if err = row.Scan(
		&c.ID, &c.Make, &c.Model, &c.Plate,
		&c.DailyRate, &c.Available, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("scan car: %w", err)
	}

	return &c, nil
}

func (r *CarRepository) List(ctx context.Context) ([]*domain.Car, error) {
	query := `SELECT id, make, model, plate, daily_rate, available, created_at, updated_at
			  FROM cars
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	var res []*domain.Car
	for rows.Next() {
		var c domain.Car
		if err = rows.Scan(
			&c.ID, &c.Make, &c.Model, &c.Plate,
			&c.DailyRate, &c.Available, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
