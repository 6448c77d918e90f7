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

const bookingColumns = `id, car_id, customer_id, pickup_date, return_date, days, total, deposit,
			status, hold_expires_at, contact_name, contact_email, contact_phone, notes,
			created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CreateHold inserts a new hold after re-checking availability inside a
// single transaction. The car row is locked first, so two racing holds on
// the same car serialize here; the exclusion constraint on the bookings
// table is the backstop for anything that slips past.
func (r *BookingRepository) CreateHold(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT available FROM cars WHERE id = $1 FOR UPDATE`
	var available bool
	if err = tx.QueryRowContext(ctx, lockQuery, b.CarID).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCarNotFound
		}
		return fmt.Errorf("lock car: %w", err)
	}
	if !available {
		return domain.ErrCarUnavailable
	}

	// Overdue holds on this car are swept before the overlap check so a
	// dead hold never blocks the insert.
	sweepQuery := `UPDATE bookings
				   SET status = $2, hold_expires_at = NULL, updated_at = now()
				   WHERE car_id = $1 AND status = $3 AND hold_expires_at < now()`
	if _, err = tx.ExecContext(
		ctx, sweepQuery, b.CarID,
		domain.BookingStatusExpired, domain.BookingStatusHold,
	); err != nil {
		return fmt.Errorf("sweep car holds: %w", err)
	}

	overlapQuery := `SELECT COUNT(*) FROM bookings
					 WHERE car_id = $1 AND status = ANY($2)
					   AND pickup_date <= $4 AND return_date >= $3`
	var overlapping int
	if err = tx.QueryRowContext(
		ctx, overlapQuery, b.CarID,
		pq.Array(domain.ReservingStatuses), b.PickupDate, b.ReturnDate,
	).Scan(&overlapping); err != nil {
		return fmt.Errorf("count overlapping: %w", err)
	}
	if overlapping > 0 {
		return domain.ErrDatesUnavailable
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.CarID, b.CustomerID, b.PickupDate, b.ReturnDate,
		b.Days, b.Total, b.Deposit, b.Status, b.HoldExpiresAt,
		b.ContactName, b.ContactEmail, b.ContactPhone, b.Notes,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
			return domain.ErrDatesUnavailable
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE customer_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by customer: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByCar(ctx context.Context, carID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE car_id = $1 AND status = ANY($2)
			  ORDER BY pickup_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, carID, pq.Array(domain.ReservingStatuses))
	if err != nil {
		return nil, fmt.Errorf("list bookings by car: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// CountOverlapping counts reserving bookings on the car whose date range
// touches the candidate range. Boundary days count as overlap.
func (r *BookingRepository) CountOverlapping(ctx context.Context, carID string, pickup, ret time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM bookings
			  WHERE car_id = $1 AND status = ANY($2)
			    AND pickup_date <= $4 AND return_date >= $3`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, carID, pq.Array(domain.ReservingStatuses), pickup, ret)
	if err != nil {
		return 0, fmt.Errorf("count overlapping: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan overlap count: %w", err)
	}

	return n, nil
}

// CompleteDeposit records the deposit payment and moves the booking to
// paid in one transaction. The status update and the payment insert
// commit together or not at all.
func (r *BookingRepository) CompleteDeposit(ctx context.Context, p *domain.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $3, hold_expires_at = NULL, updated_at = now()
			  WHERE id = $1
			    AND status = $2
			    AND hold_expires_at >= now()`
	res, err := tx.ExecContext(
		ctx, query, p.BookingID,
		domain.BookingStatusHold, domain.BookingStatusPaid,
	)
	if err != nil {
		return fmt.Errorf("mark booking paid: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return r.diagnosePaymentFailure(ctx, tx, p.BookingID)
	}

	payQuery := `INSERT INTO payments (id, booking_id, amount, method, status, reference, simulated, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err = tx.ExecContext(
		ctx, payQuery,
		p.ID, p.BookingID, p.Amount, p.Method, p.Status, p.Reference, p.Simulated, p.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	return tx.Commit()
}

// diagnosePaymentFailure tells apart the reasons a guarded paid-update can
// affect zero rows: missing booking, a hold past its deadline, or a status
// that is not hold at all.
func (r *BookingRepository) diagnosePaymentFailure(ctx context.Context, tx *sql.Tx, bookingID string) error {
	var status domain.BookingStatus
	var holdExpiresAt *time.Time
	checkQuery := `SELECT status, hold_expires_at FROM bookings WHERE id = $1`
	if err := tx.QueryRowContext(ctx, checkQuery, bookingID).Scan(&status, &holdExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("check booking: %w", err)
	}

	if status == domain.BookingStatusExpired {
		return domain.ErrHoldExpired
	}
	if status == domain.BookingStatusHold {
		// still a hold, so the deadline must have passed
		return domain.ErrHoldExpired
	}
	return domain.ErrInvalidTransition
}

// Confirm moves a paid booking to confirmed and writes the audit entry in
// the same transaction.
func (r *BookingRepository) Confirm(ctx context.Context, bookingID, actor string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := tx.ExecContext(
		ctx, query, bookingID,
		domain.BookingStatusPaid, domain.BookingStatusConfirmed,
	)
	if err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		var status domain.BookingStatus
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, bookingID).Scan(&status); scanErr != nil {
			return domain.ErrBookingNotFound
		}
		return domain.ErrInvalidTransition
	}

	entry := &domain.AuditEntry{
		Actor:     actor,
		Action:    domain.AuditActionConfirm,
		BookingID: bookingID,
		Detail:    "paid -> confirmed",
	}
	if err = r.insertAudit(ctx, tx, entry); err != nil {
		return err
	}

	return tx.Commit()
}

// Cancel moves a hold or paid booking to cancelled. When customerID is
// set the booking must belong to that customer; a mismatch is a distinct
// forbidden error, never a silent no-op.
func (r *BookingRepository) Cancel(ctx context.Context, bookingID string, customerID *string, actor string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var ownerID string
	var status domain.BookingStatus
	ownerQuery := `SELECT customer_id, status FROM bookings WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, ownerQuery, bookingID).Scan(&ownerID, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("get booking owner: %w", err)
	}

	if customerID != nil && *customerID != ownerID {
		return domain.ErrForbidden
	}
	if status != domain.BookingStatusHold && status != domain.BookingStatusPaid {
		return domain.ErrInvalidTransition
	}

	query := `UPDATE bookings
			  SET status = $2, hold_expires_at = NULL, updated_at = now()
			  WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, bookingID, domain.BookingStatusCancelled); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	entry := &domain.AuditEntry{
		Actor:     actor,
		Action:    domain.AuditActionCancel,
		BookingID: bookingID,
		Detail:    fmt.Sprintf("%s -> cancelled", status),
	}
	if err = r.insertAudit(ctx, tx, entry); err != nil {
		return err
	}

	return tx.Commit()
}

// ExpireOverdue flips every hold past its deadline to expired, across all
// cars. Running it twice in a row changes nothing the second time.
func (r *BookingRepository) ExpireOverdue(ctx context.Context) ([]*domain.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $2, hold_expires_at = NULL, updated_at = NOW()
		WHERE status = $1
		  AND hold_expires_at < NOW()
		RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusHold, domain.BookingStatusExpired,
	)
	if err != nil {
		return nil, fmt.Errorf("expire overdue: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) insertAudit(ctx context.Context, tx *sql.Tx, e *domain.AuditEntry) error {
	query := `INSERT INTO audit_log (actor, action, booking_id, detail, created_at)
			  VALUES ($1, $2, $3, $4, now())`
	if _, err := tx.ExecContext(ctx, query, e.Actor, e.Action, e.BookingID, e.Detail); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.CarID, &b.CustomerID, &b.PickupDate, &b.ReturnDate,
		&b.Days, &b.Total, &b.Deposit, &b.Status, &b.HoldExpiresAt,
		&b.ContactName, &b.ContactEmail, &b.ContactPhone, &b.Notes,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
