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

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, req validation.RegisterRequest) (string, *models.UserPublic, error)
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`

	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Public user view
	User *models.UserPublic `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique email. Password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body validation.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or failed validation"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Router /api/users/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req validation.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, user, err := svc.Register(r.Context(), req)
		if err != nil {
			var vErr *validation.Error
			switch {
			case errors.As(err, &vErr):
				respondWithError(w, http.StatusBadRequest, vErr.Message)
			case errors.Is(err, services.ErrUserAlreadyExists):
				respondWithError(w, http.StatusConflict, "User already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondWithError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondWithJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
			Token:   token,
			User:    user,
		})
	}
}
