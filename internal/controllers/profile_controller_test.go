package controllers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"docyo/internal/controllers"
	"docyo/internal/models"
	"docyo/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetProfile(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		setupMock      func(m *mockGateway)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful retrieval",
			setupMock: func(m *mockGateway) {
				m.profiles.On("FindByUserID", mock.Anything, userID).Return(&models.Profile{
					UserID: userID, HeightCm: ptr(160.0), WeightKg: ptr(45.0),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Profile retrieved successfully",
		},
		{
			name: "profile not found",
			setupMock: func(m *mockGateway) {
				m.profiles.On("FindByUserID", mock.Anything, userID).Return(nil, fmt.Errorf("profile: %w", repository.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Profile not found",
		},
		{
			name: "database failure",
			setupMock: func(m *mockGateway) {
				m.profiles.On("FindByUserID", mock.Anything, userID).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Error loading profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, m := newMockGateway()
			tt.setupMock(m)
			controller := controllers.NewProfileController(gw.Profiles)
			router := setupTestRouter()
			router.GET("/profile", addAuthMiddleware(userID), controller.GetProfile)

			w := performRequest(router, http.MethodGet, "/profile", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := decode(t, w)
			assert.Equal(t, tt.expectedMsg, response["message"])
			if tt.expectedStatus == http.StatusOK {
				data := response["data"].(map[string]interface{})
				assert.Equal(t, "17.6", data["bmi"])
				assert.Equal(t, "Underweight", data["bmi_category"])
			}
		})
	}
}

func TestGetSession(t *testing.T) {
	userID := uuid.New()
	controller := controllers.NewSessionController()

	router := setupTestRouter()
	router.GET("/auth/session", addAuthMiddleware(userID), controller.GetSession)
	router.GET("/anonymous", controller.GetSession)

	w := performRequest(router, http.MethodGet, "/auth/session", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), decode(t, w)["data"].(map[string]interface{})["user_id"])

	w = performRequest(router, http.MethodGet, "/anonymous", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	response := decode(t, w)
	assert.Equal(t, "UNAUTHORIZED", response["error"])
	assert.Equal(t, "/auth", response["redirect_to"])
}
