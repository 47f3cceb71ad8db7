package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mstepanov-dev/bookings-api/internal/models"
	"github.com/mstepanov-dev/bookings-api/internal/services"
	"github.com/mstepanov-dev/bookings-api/internal/validation"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func ownedBooking(id, userID int64) *models.BookingDB {
	start, _ := time.Parse(time.RFC3339, "2026-01-02T10:00:00Z")
	end, _ := time.Parse(time.RFC3339, "2026-01-02T11:00:00Z")
	desc := "weekly review"
	return &models.BookingDB{
		ID:          id,
		UserID:      userID,
		Title:       "Review",
		Description: &desc,
		StartTime:   start,
		EndTime:     end,
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookingReader(ctrl)
	mockWriter := services.NewMockBookingWriter(ctrl)
	svc := services.NewBookingService(mockReader, mockWriter)

	req := validation.CreateBookingRequest{
		Title:       "Standup",
		Description: strPtr("daily sync"),
		StartTime:   "2026-01-02T10:00:00Z",
		EndTime:     "2026-01-02T10:30:00Z",
	}

	wantStart, _ := time.Parse(time.RFC3339, req.StartTime)
	wantEnd, _ := time.Parse(time.RFC3339, req.EndTime)

	mockWriter.EXPECT().
		Create(gomock.Any(), int64(1), "Standup", req.Description, wantStart, wantEnd).
		Return(&models.BookingDB{
			ID:          5,
			UserID:      1,
			Title:       "Standup",
			Description: req.Description,
			StartTime:   wantStart,
			EndTime:     wantEnd,
		}, nil)

	booking, err := svc.Create(context.Background(), 1, req)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), booking.ID)
	assert.Equal(t, int64(1), booking.UserID)
	assert.Equal(t, wantStart, booking.StartTime)
}

func TestBookingService_Create_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewBookingService(
		services.NewMockBookingReader(ctrl),
		services.NewMockBookingWriter(ctrl),
	)

	req := validation.CreateBookingRequest{
		StartTime: "2026-01-02T10:00:00Z",
		EndTime:   "2026-01-02T10:30:00Z",
	}

	booking, err := svc.Create(context.Background(), 1, req)
	var vErr *validation.Error
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "title", vErr.Field)
	assert.Nil(t, booking)
}

func TestBookingService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookingReader(ctrl)
	svc := services.NewBookingService(mockReader, services.NewMockBookingWriter(ctrl))

	mockReader.EXPECT().
		ListByUserID(gomock.Any(), int64(1)).
		Return([]models.BookingDB{*ownedBooking(10, 1), *ownedBooking(11, 1)}, nil)

	bookings, err := svc.List(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestBookingService_OwnershipChecks(t *testing.T) {
	// getById, update and delete all share the not-found/ownership contract
	tests := []struct {
		name     string
		callerID int64
		booking  *models.BookingDB
		wantErr  error
	}{
		{name: "owner", callerID: 1, booking: ownedBooking(3, 1), wantErr: nil},
		{name: "not owner", callerID: 2, booking: ownedBooking(3, 1), wantErr: services.ErrForbidden},
		{name: "not found", callerID: 1, booking: nil, wantErr: services.ErrBookingNotFound},
	}

	for _, tt := range tests {
		t.Run("get/"+tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockBookingReader(ctrl)
			svc := services.NewBookingService(mockReader, services.NewMockBookingWriter(ctrl))

			mockReader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(tt.booking, nil)

			booking, err := svc.GetByID(context.Background(), tt.callerID, 3)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, booking)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.booking.ID, booking.ID)
		})

		t.Run("update/"+tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockBookingReader(ctrl)
			mockWriter := services.NewMockBookingWriter(ctrl)
			svc := services.NewBookingService(mockReader, mockWriter)

			mockReader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(tt.booking, nil)
			if tt.wantErr == nil {
				mockWriter.EXPECT().
					Update(gomock.Any(), int64(3), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tt.booking, nil)
			}

			_, err := svc.Update(context.Background(), tt.callerID, 3, validation.UpdateBookingRequest{})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})

		t.Run("delete/"+tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockBookingReader(ctrl)
			mockWriter := services.NewMockBookingWriter(ctrl)
			svc := services.NewBookingService(mockReader, mockWriter)

			mockReader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(tt.booking, nil)
			if tt.wantErr == nil {
				mockWriter.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
			}

			err := svc.Delete(context.Background(), tt.callerID, 3)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBookingService_Update_PartialKeepsUnsetFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookingReader(ctrl)
	mockWriter := services.NewMockBookingWriter(ctrl)
	svc := services.NewBookingService(mockReader, mockWriter)

	existing := ownedBooking(3, 1)
	mockReader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(existing, nil)

	// only title supplied: description and both times must be carried over
	mockWriter.EXPECT().
		Update(gomock.Any(), int64(3), "Renamed", existing.Description, existing.StartTime, existing.EndTime).
		DoAndReturn(func(_ context.Context, id int64, title string, description *string, startTime, endTime time.Time) (*models.BookingDB, error) {
			updated := *existing
			updated.Title = title
			return &updated, nil
		})

	updated, err := svc.Update(context.Background(), 1, 3, validation.UpdateBookingRequest{Title: strPtr("Renamed")})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, existing.Description, updated.Description)
	assert.Equal(t, existing.StartTime, updated.StartTime)
}

func TestBookingService_Update_NewTimes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookingReader(ctrl)
	mockWriter := services.NewMockBookingWriter(ctrl)
	svc := services.NewBookingService(mockReader, mockWriter)

	existing := ownedBooking(3, 1)
	mockReader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(existing, nil)

	newStart, _ := time.Parse(time.RFC3339, "2026-03-01T09:00:00Z")
	mockWriter.EXPECT().
		Update(gomock.Any(), int64(3), existing.Title, existing.Description, newStart, existing.EndTime).
		Return(existing, nil)

	_, err := svc.Update(context.Background(), 1, 3, validation.UpdateBookingRequest{
		StartTime: strPtr("2026-03-01T09:00:00Z"),
	})
	assert.NoError(t, err)
}

func TestBookingService_Update_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewBookingService(
		services.NewMockBookingReader(ctrl),
		services.NewMockBookingWriter(ctrl),
	)

	_, err := svc.Update(context.Background(), 1, 3, validation.UpdateBookingRequest{
		StartTime: strPtr("not-a-time"),
	})
	var vErr *validation.Error
	assert.ErrorAs(t, err, &vErr)
}

func TestBookingService_List_ReaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookingReader(ctrl)
	svc := services.NewBookingService(mockReader, services.NewMockBookingWriter(ctrl))

	mockReader.EXPECT().
		ListByUserID(gomock.Any(), int64(1)).
		Return(nil, errors.New("db error"))

	bookings, err := svc.List(context.Background(), 1)
	assert.EqualError(t, err, "db error")
	assert.Nil(t, bookings)
}
