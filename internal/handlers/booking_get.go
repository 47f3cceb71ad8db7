package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mstepanov-dev/bookings-api/internal/logger"
	"github.com/mstepanov-dev/bookings-api/internal/middlewares"
	"github.com/mstepanov-dev/bookings-api/internal/models"
	"github.com/mstepanov-dev/bookings-api/internal/services"
)

// BookingGetter defines the interface that the service must implement.
type BookingGetter interface {
	GetByID(ctx context.Context, callerID, id int64) (*models.BookingDB, error)
}

// NewGetBookingHandler returns an HTTP handler for fetching one booking.
// A booking owned by someone else yields 403, a missing one 404.
// @Summary Get a booking
// @Description Returns the booking with the given id if the caller owns it.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} models.BookingDB "The booking"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id parameter"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Booking not found"
// @Router /api/bookings/{id} [get]
func NewGetBookingHandler(svc BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid id parameter")
			return
		}

		booking, err := svc.GetByID(r.Context(), claims.UserID, id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookingNotFound):
				respondWithError(w, http.StatusNotFound, "Booking not found")
			case errors.Is(err, services.ErrForbidden):
				respondWithError(w, http.StatusForbidden, "Forbidden")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondWithError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondWithJSON(w, http.StatusOK, booking)
	}
}
