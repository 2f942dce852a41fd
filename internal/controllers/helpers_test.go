package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"docyo/internal/middleware"
	"docyo/internal/repository"
	"docyo/internal/repository/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

type mockGateway struct {
	profiles   *mocks.MockProfileRepository
	histories  *mocks.MockMedicalHistoryRepository
	lifestyles *mocks.MockLifestyleRepository
	vitals     *mocks.MockVitalRepository
	doctors    *mocks.MockDoctorRepository
}

func newMockGateway() (*repository.Gateway, *mockGateway) {
	m := &mockGateway{
		profiles:   new(mocks.MockProfileRepository),
		histories:  new(mocks.MockMedicalHistoryRepository),
		lifestyles: new(mocks.MockLifestyleRepository),
		vitals:     new(mocks.MockVitalRepository),
		doctors:    new(mocks.MockDoctorRepository),
	}
	return &repository.Gateway{
		Profiles:         m.profiles,
		MedicalHistories: m.histories,
		Lifestyles:       m.lifestyles,
		Vitals:           m.vitals,
		Doctors:          m.doctors,
	}, m
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// addAuthMiddleware stands in for the JWT middleware.
func addAuthMiddleware(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetSession(c, middleware.Session{UserID: userID})
		c.Next()
	}
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}
