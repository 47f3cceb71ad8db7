package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mstepanov-dev/bookings-api/internal/models"
	"github.com/mstepanov-dev/bookings-api/internal/repositories"
	"github.com/mstepanov-dev/bookings-api/internal/services"
	"github.com/mstepanov-dev/bookings-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func validRegisterRequest() validation.RegisterRequest {
	return validation.RegisterRequest{
		Email:     "alice@example.com",
		Password:  "secret1",
		FirstName: "Alice",
		LastName:  "Smith",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	req := validRegisterRequest()
	var storedHash string

	mockReader.EXPECT().
		GetByEmail(gomock.Any(), req.Email).
		Return(nil, nil)
	mockWriter.EXPECT().
		Create(gomock.Any(), req.Email, gomock.Any(), req.FirstName, req.LastName, gomock.Nil()).
		DoAndReturn(func(_ context.Context, email, passwordHash, firstName, lastName string, phone *string) (*models.UserDB, error) {
			storedHash = passwordHash
			return &models.UserDB{
				ID:        1,
				Email:     email,
				Password:  passwordHash,
				FirstName: firstName,
				LastName:  lastName,
			}, nil
		})
	mockJWT.EXPECT().
		Generate(gomock.Any(), int64(1), req.Email).
		Return("signed-token", nil)

	token, user, err := svc.Register(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, req.Email, user.Email)

	// the plaintext must never be stored
	assert.NotEqual(t, req.Password, storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password)))
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	req := validRegisterRequest()
	mockReader.EXPECT().
		GetByEmail(gomock.Any(), req.Email).
		Return(&models.UserDB{ID: 2, Email: req.Email}, nil)

	token, user, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestAuthService_Register_RaceOnInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	req := validRegisterRequest()
	mockReader.EXPECT().
		GetByEmail(gomock.Any(), req.Email).
		Return(nil, nil)
	mockWriter.EXPECT().
		Create(gomock.Any(), req.Email, gomock.Any(), req.FirstName, req.LastName, gomock.Nil()).
		Return(nil, repositories.ErrEmailExists)

	_, _, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
}

func TestAuthService_Register_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockTokenGenerator(ctrl),
	)

	req := validRegisterRequest()
	req.Password = "short"

	_, _, err := svc.Register(context.Background(), req)
	var vErr *validation.Error
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "password", vErr.Field)
}

func TestAuthService_Register_ReaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader,
		services.NewMockUserWriter(ctrl),
		services.NewMockTokenGenerator(ctrl),
	)

	req := validRegisterRequest()
	mockReader.EXPECT().
		GetByEmail(gomock.Any(), req.Email).
		Return(nil, errors.New("db error"))

	_, _, err := svc.Register(context.Background(), req)
	assert.EqualError(t, err, "db error")
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	stored := &models.UserDB{
		ID:        1,
		Email:     "alice@example.com",
		Password:  string(hash),
		FirstName: "Alice",
		LastName:  "Smith",
	}

	tests := []struct {
		name      string
		req       validation.LoginRequest
		user      *models.UserDB
		wantToken string
		wantErr   error
	}{
		{
			name:      "success",
			req:       validation.LoginRequest{Email: "alice@example.com", Password: "correct-password"},
			user:      stored,
			wantToken: "signed-token",
		},
		{
			name:    "unknown email",
			req:     validation.LoginRequest{Email: "ghost@example.com", Password: "correct-password"},
			user:    nil,
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:    "wrong password",
			req:     validation.LoginRequest{Email: "alice@example.com", Password: "wrong-password"},
			user:    stored,
			wantErr: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockJWT := services.NewMockTokenGenerator(ctrl)
			svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockJWT)

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.req.Email).
				Return(tt.user, nil)
			if tt.wantErr == nil {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.ID, tt.user.Email).
					Return(tt.wantToken, nil)
			}

			token, user, err := svc.Login(context.Background(), tt.req)
			if tt.wantErr != nil {
				// unknown email and wrong password are indistinguishable
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.user.ID, user.ID)
		})
	}
}

func TestAuthService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader,
		services.NewMockUserWriter(ctrl),
		services.NewMockTokenGenerator(ctrl),
	)

	phone := "+1234567"
	mockReader.EXPECT().
		GetByID(gomock.Any(), int64(1)).
		Return(&models.UserDB{
			ID:        1,
			Email:     "alice@example.com",
			Password:  "hash",
			FirstName: "Alice",
			LastName:  "Smith",
			Phone:     &phone,
		}, nil)

	profile, err := svc.GetProfile(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), profile.ID)
	assert.Equal(t, "alice@example.com", profile.Email)
	if assert.NotNil(t, profile.Phone) {
		assert.Equal(t, phone, *profile.Phone)
	}
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader,
		services.NewMockUserWriter(ctrl),
		services.NewMockTokenGenerator(ctrl),
	)

	mockReader.EXPECT().
		GetByID(gomock.Any(), int64(999)).
		Return(nil, nil)

	profile, err := svc.GetProfile(context.Background(), 999)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
	assert.Nil(t, profile)
}
