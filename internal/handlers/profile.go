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

// ProfileGetter defines the interface that the profile service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error)
}

// NewGetProfileHandler returns an HTTP handler for profile lookups.
// Without an id path parameter it resolves to the authenticated caller.
// Any authenticated caller may read any profile; the returned view never
// includes the password hash.
// @Summary Get user profile
// @Description Returns the profile of the user with the given id, or of the caller when no id is given.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int false "User ID"
// @Success 200 {object} models.UserProfile "User profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id parameter"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/users/{id} [get]
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		userID := claims.UserID
		if idParam := chi.URLParam(r, "id"); idParam != "" {
			id, err := strconv.ParseInt(idParam, 10, 64)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid id parameter")
				return
			}
			userID = id
		}

		profile, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				respondWithError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondWithError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondWithJSON(w, http.StatusOK, profile)
	}
}
