package services

import (
	"context"
	"errors"
	"time"

	"github.com/mstepanov-dev/bookings-api/internal/logger"
	"github.com/mstepanov-dev/bookings-api/internal/models"
	"github.com/mstepanov-dev/bookings-api/internal/validation"
)

// Error variables
var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrForbidden       = errors.New("forbidden")
)

// BookingReader defines read-only operations for bookings.
type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*models.BookingDB, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.BookingDB, error)
}

// BookingWriter defines write operations for bookings.
type BookingWriter interface {
	Create(ctx context.Context, userID int64, title string, description *string, startTime, endTime time.Time) (*models.BookingDB, error)
	Update(ctx context.Context, id int64, title string, description *string, startTime, endTime time.Time) (*models.BookingDB, error)
	Delete(ctx context.Context, id int64) error
}

// BookingService handles owner-scoped booking CRUD. Every operation takes
// the authenticated caller's id; reads and writes on someone else's booking
// fail with ErrForbidden.
type BookingService struct {
	reader BookingReader
	writer BookingWriter
}

// NewBookingService creates a new BookingService instance.
func NewBookingService(reader BookingReader, writer BookingWriter) *BookingService {
	return &BookingService{
		reader: reader,
		writer: writer,
	}
}

// Create validates the payload and persists a booking owned by callerID.
func (svc *BookingService) Create(ctx context.Context, callerID int64, req validation.CreateBookingRequest) (*models.BookingDB, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, &validation.Error{Field: "startTime", Message: "startTime must be a valid RFC3339 datetime"}
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, &validation.Error{Field: "endTime", Message: "endTime must be a valid RFC3339 datetime"}
	}

	booking, err := svc.writer.Create(ctx, callerID, req.Title, req.Description, startTime, endTime)
	if err != nil {
		logger.Log.Errorw("failed to create booking", "err", err)
		return nil, err
	}

	return booking, nil
}

// List returns all bookings owned by callerID, earliest start first.
func (svc *BookingService) List(ctx context.Context, callerID int64) ([]models.BookingDB, error) {
	bookings, err := svc.reader.ListByUserID(ctx, callerID)
	if err != nil {
		logger.Log.Errorw("failed to list bookings", "err", err)
		return nil, err
	}

	return bookings, nil
}

// GetByID returns the booking if it exists and callerID owns it.
func (svc *BookingService) GetByID(ctx context.Context, callerID, id int64) (*models.BookingDB, error) {
	return svc.fetchOwned(ctx, callerID, id)
}

// Update applies the supplied fields on top of the stored booking and
// persists the merged row. Absent fields keep their previous value.
func (svc *BookingService) Update(ctx context.Context, callerID, id int64, req validation.UpdateBookingRequest) (*models.BookingDB, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	booking, err := svc.fetchOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	title := booking.Title
	if req.Title != nil {
		title = *req.Title
	}
	description := booking.Description
	if req.Description != nil {
		description = req.Description
	}
	startTime := booking.StartTime
	if req.StartTime != nil {
		startTime, err = time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			return nil, &validation.Error{Field: "startTime", Message: "startTime must be a valid RFC3339 datetime"}
		}
	}
	endTime := booking.EndTime
	if req.EndTime != nil {
		endTime, err = time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			return nil, &validation.Error{Field: "endTime", Message: "endTime must be a valid RFC3339 datetime"}
		}
	}

	updated, err := svc.writer.Update(ctx, id, title, description, startTime, endTime)
	if err != nil {
		logger.Log.Errorw("failed to update booking", "err", err, "booking_id", id)
		return nil, err
	}

	return updated, nil
}

// Delete removes the booking if it exists and callerID owns it.
func (svc *BookingService) Delete(ctx context.Context, callerID, id int64) error {
	if _, err := svc.fetchOwned(ctx, callerID, id); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete booking", "err", err, "booking_id", id)
		return err
	}

	return nil
}

// fetchOwned loads a booking and enforces the ownership contract:
// absent id is ErrBookingNotFound, someone else's booking is ErrForbidden.
func (svc *BookingService) fetchOwned(ctx context.Context, callerID, id int64) (*models.BookingDB, error) {
	booking, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get booking", "err", err, "booking_id", id)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.UserID != callerID {
		return nil, ErrForbidden
	}

	return booking, nil
}
