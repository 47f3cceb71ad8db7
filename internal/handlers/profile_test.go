package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/mstepanov-dev/bookings-api/internal/jwt"
	"github.com/mstepanov-dev/bookings-api/internal/middlewares"
	"github.com/mstepanov-dev/bookings-api/internal/models"
	"github.com/mstepanov-dev/bookings-api/internal/services"
	"github.com/stretchr/testify/assert"
)

// authenticated attaches identity claims the way the auth middleware does.
func authenticated(req *http.Request, userID int64, email string) *http.Request {
	ctx := middlewares.SetClaimsToContext(req.Context(), &jwt.Claims{UserID: userID, Email: email})
	return req.WithContext(ctx)
}

func profileRouter(svc ProfileGetter) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/users/me", NewGetProfileHandler(svc))
	r.Get("/api/users/{id}", NewGetProfileHandler(svc))
	return r
}

func TestGetProfileHandler_Self(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileGetter(ctrl)
	mockSvc.EXPECT().
		GetProfile(gomock.Any(), int64(42)).
		Return(&models.UserProfile{ID: 42, Email: "me@x.com", FirstName: "Me", LastName: "Self"}, nil)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/api/users/me", nil), 42, "me@x.com")
	rr := httptest.NewRecorder()

	profileRouter(mockSvc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var profile models.UserProfile
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.Equal(t, int64(42), profile.ID)
	assert.Equal(t, "me@x.com", profile.Email)
}

func TestGetProfileHandler_ByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// caller 42 reads user 7: allowed, profile carries no sensitive fields
	mockSvc := NewMockProfileGetter(ctrl)
	mockSvc.EXPECT().
		GetProfile(gomock.Any(), int64(7)).
		Return(&models.UserProfile{ID: 7, Email: "other@x.com", FirstName: "Other", LastName: "User"}, nil)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/api/users/7", nil), 42, "me@x.com")
	rr := httptest.NewRecorder()

	profileRouter(mockSvc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var profile models.UserProfile
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.Equal(t, int64(7), profile.ID)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestGetProfileHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileGetter(ctrl)
	mockSvc.EXPECT().
		GetProfile(gomock.Any(), int64(999)).
		Return(nil, services.ErrUserNotFound)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/api/users/999", nil), 42, "me@x.com")
	rr := httptest.NewRecorder()

	profileRouter(mockSvc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "User not found", resp["error"])
}

func TestGetProfileHandler_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileGetter(ctrl)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/api/users/abc", nil), 42, "me@x.com")
	rr := httptest.NewRecorder()

	profileRouter(mockSvc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetProfileHandler_NoClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileGetter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/users/7", nil)
	rr := httptest.NewRecorder()

	profileRouter(mockSvc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
