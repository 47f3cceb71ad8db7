package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mstepanov-dev/bookings-api/internal/logger"
	"github.com/mstepanov-dev/bookings-api/internal/models"
)

const bookingCols = `id, user_id, title, description, start_time, end_time, created_at, updated_at`

type BookingReadRepository struct {
	db *sqlx.DB
}

func NewBookingReadRepository(db *sqlx.DB) *BookingReadRepository {
	return &BookingReadRepository{db: db}
}

// GetByID returns the booking with the given id, or nil if absent.
// Ownership is not checked here; that is the service's job.
func (r *BookingReadRepository) GetByID(ctx context.Context, id int64) (*models.BookingDB, error) {
	const query = `
		SELECT ` + bookingCols + `
		FROM bookings
		WHERE id = $1
	`

	var booking models.BookingDB
	err := r.db.GetContext(ctx, &booking, query, id)

	logger.Log.Infow("booking query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// ListByUserID returns all bookings owned by userID, earliest start first.
func (r *BookingReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.BookingDB, error) {
	const query = `
		SELECT ` + bookingCols + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY start_time ASC
	`

	bookings := []models.BookingDB{}
	err := r.db.SelectContext(ctx, &bookings, query, userID)

	logger.Log.Infow("booking query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(bookings),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

type BookingWriteRepository struct {
	db *sqlx.DB
}

func NewBookingWriteRepository(db *sqlx.DB) *BookingWriteRepository {
	return &BookingWriteRepository{db: db}
}

// Create inserts a booking owned by userID and returns the stored row.
func (r *BookingWriteRepository) Create(ctx context.Context, userID int64, title string, description *string, startTime, endTime time.Time) (*models.BookingDB, error) {
	const query = `
		INSERT INTO bookings (user_id, title, description, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + bookingCols + `
	`
	args := []any{userID, title, description, startTime, endTime}

	var booking models.BookingDB
	err := r.db.GetContext(ctx, &booking, query, args...)

	logger.Log.Infow("booking insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// Update overwrites the mutable fields of a booking and returns the new row.
// Callers pass the fully merged values; unchanged fields keep their old value
// because the service copied them from the current row.
func (r *BookingWriteRepository) Update(ctx context.Context, id int64, title string, description *string, startTime, endTime time.Time) (*models.BookingDB, error) {
	const query = `
		UPDATE bookings
		SET title = $2, description = $3, start_time = $4, end_time = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + bookingCols + `
	`
	args := []any{id, title, description, startTime, endTime}

	var booking models.BookingDB
	err := r.db.GetContext(ctx, &booking, query, args...)

	logger.Log.Infow("booking update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// Delete removes the booking with the given id.
func (r *BookingWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `
		DELETE FROM bookings
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("booking delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
