package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mstepanov-dev/bookings-api/internal/logger"
	"github.com/mstepanov-dev/bookings-api/internal/middlewares"
	"github.com/mstepanov-dev/bookings-api/internal/models"
	"github.com/mstepanov-dev/bookings-api/internal/validation"
)

// BookingCreator defines the interface that the service must implement.
type BookingCreator interface {
	Create(ctx context.Context, callerID int64, req validation.CreateBookingRequest) (*models.BookingDB, error)
}

// BookingResponse represents a successful booking mutation response
// swagger:model BookingResponse
type BookingResponse struct {
	// Success message
	// default: Booking created successfully
	Message string `json:"message"`

	// The booking record
	Booking *models.BookingDB `json:"booking"`
}

// NewCreateBookingHandler returns an HTTP handler for creating bookings.
// @Summary Create a booking
// @Description Creates a booking owned by the authenticated caller.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createBookingRequest body validation.CreateBookingRequest true "Booking create request"
// @Success 201 {object} handlers.BookingResponse "Booking created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or failed validation"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/bookings [post]
func NewCreateBookingHandler(svc BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req validation.CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		booking, err := svc.Create(r.Context(), claims.UserID, req)
		if err != nil {
			var vErr *validation.Error
			switch {
			case errors.As(err, &vErr):
				respondWithError(w, http.StatusBadRequest, vErr.Message)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondWithError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondWithJSON(w, http.StatusCreated, BookingResponse{
			Message: "Booking created successfully",
			Booking: booking,
		})
	}
}
