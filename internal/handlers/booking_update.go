package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mstepanov-dev/bookings-api/internal/logger"
	"github.com/mstepanov-dev/bookings-api/internal/middlewares"
	"github.com/mstepanov-dev/bookings-api/internal/models"
	"github.com/mstepanov-dev/bookings-api/internal/services"
	"github.com/mstepanov-dev/bookings-api/internal/validation"
)

// BookingUpdater defines the interface that the service must implement.
type BookingUpdater interface {
	Update(ctx context.Context, callerID, id int64, req validation.UpdateBookingRequest) (*models.BookingDB, error)
}

// NewUpdateBookingHandler returns an HTTP handler for partial booking updates.
// Fields absent from the body keep their stored value.
// @Summary Update a booking
// @Description Applies the supplied fields to the booking if the caller owns it.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param updateBookingRequest body validation.UpdateBookingRequest true "Partial booking update"
// @Success 200 {object} handlers.BookingResponse "Booking updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or failed validation"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Booking not found"
// @Router /api/bookings/{id} [put]
func NewUpdateBookingHandler(svc BookingUpdater) http.HandlerFunc {
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

		var req validation.UpdateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		booking, err := svc.Update(r.Context(), claims.UserID, id, req)
		if err != nil {
			var vErr *validation.Error
			switch {
			case errors.As(err, &vErr):
				respondWithError(w, http.StatusBadRequest, vErr.Message)
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

		respondWithJSON(w, http.StatusOK, BookingResponse{
			Message: "Booking updated successfully",
			Booking: booking,
		})
	}
}
