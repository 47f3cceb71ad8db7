package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mstepanov-dev/bookings-api/internal/logger"
	"github.com/mstepanov-dev/bookings-api/internal/models"
	"github.com/mstepanov-dev/bookings-api/internal/services"
	"github.com/mstepanov-dev/bookings-api/internal/validation"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, req validation.LoginRequest) (string, *models.UserPublic, error)
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// default: Login successful
	Message string `json:"message"`

	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Public user view
	User *models.UserPublic `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return a JWT token. A wrong password and an unknown email produce the same response.
// @Tags users
// @Accept json
// @Produce json
// @Param loginRequest body validation.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or failed validation"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Router /api/users/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req validation.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, user, err := svc.Login(r.Context(), req)
		if err != nil {
			var vErr *validation.Error
			switch {
			case errors.As(err, &vErr):
				respondWithError(w, http.StatusBadRequest, vErr.Message)
			case errors.Is(err, services.ErrInvalidCredentials):
				respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondWithError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondWithJSON(w, http.StatusOK, LoginResponse{
			Message: "Login successful",
			Token:   token,
			User:    user,
		})
	}
}
