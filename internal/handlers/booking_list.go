package handlers

import (
	"context"
	"net/http"

	"github.com/mstepanov-dev/bookings-api/internal/logger"
	"github.com/mstepanov-dev/bookings-api/internal/middlewares"
	"github.com/mstepanov-dev/bookings-api/internal/models"
)

// BookingLister defines the interface that the service must implement.
type BookingLister interface {
	List(ctx context.Context, callerID int64) ([]models.BookingDB, error)
}

// NewListBookingsHandler returns an HTTP handler listing the caller's bookings.
// @Summary List own bookings
// @Description Returns all bookings owned by the authenticated caller, ordered by start time ascending.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BookingDB "Bookings ordered by startTime"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/bookings [get]
func NewListBookingsHandler(svc BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		bookings, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondWithJSON(w, http.StatusOK, bookings)
	}
}
