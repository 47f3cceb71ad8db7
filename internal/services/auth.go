package services

import (
	"context"
	"errors"

	"github.com/mstepanov-dev/bookings-api/internal/logger"
	"github.com/mstepanov-dev/bookings-api/internal/models"
	"github.com/mstepanov-dev/bookings-api/internal/repositories"
	"github.com/mstepanov-dev/bookings-api/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, email, passwordHash, firstName, lastName string, phone *string) (*models.UserDB, error)
}

// TokenGenerator defines an interface for issuing identity tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64, email string) (string, error)
}

// AuthService handles registration, login and profile lookups.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register validates the payload, creates the user with a hashed password
// and returns a fresh token plus the public user view.
func (svc *AuthService) Register(ctx context.Context, req validation.RegisterRequest) (string, *models.UserPublic, error) {
	if err := validation.Struct(req); err != nil {
		return "", nil, err
	}

	existing, err := svc.reader.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", nil, err
	}
	if existing != nil {
		logger.Log.Infow("registration rejected, email taken", "email", req.Email)
		return "", nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	user, err := svc.writer.Create(ctx, req.Email, string(hashedPassword), req.FirstName, req.LastName, req.Phone)
	if err != nil {
		// two registrations can race past the existence check
		if errors.Is(err, repositories.ErrEmailExists) {
			return "", nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, user.Public(), nil
}

// Login authenticates a user and returns a token plus the public user view.
// A missing user and a wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, req validation.LoginRequest) (string, *models.UserPublic, error) {
	if err := validation.Struct(req); err != nil {
		return "", nil, err
	}

	user, err := svc.reader.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, user.Public(), nil
}

// GetProfile returns the profile view of the user with the given id.
// Any authenticated caller may read any profile; the view carries only
// non-sensitive fields.
func (svc *AuthService) GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user.Profile(), nil
}
