package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"docyo/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	assert.NoError(t, err)
	return token
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		session, ok := middleware.CurrentSession(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, session)
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	valid := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "valid token",
			header:         "Bearer " + valid,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Authorization header is required",
		},
		{
			name:           "wrong scheme",
			header:         "Basic " + valid,
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid authorization header format",
		},
		{
			name: "expired token",
			header: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
				Subject:   userID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			}),
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid or expired token",
		},
		{
			name: "wrong secret",
			header: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), jwt.RegisteredClaims{
				Subject: userID.String(),
			}),
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid or expired token",
		},
		{
			name: "subject is not a uuid",
			header: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
				Subject: "42",
			}),
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid token claims",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter()
			req, _ := http.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, userID.String(), response["user_id"])
				return
			}
			assert.Equal(t, "error", response["status"])
			assert.Equal(t, tt.expectedMsg, response["message"])
			assert.Equal(t, middleware.AuthPath, response["redirect_to"])
		})
	}
}

func TestCurrentSessionMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := middleware.CurrentSession(c)
	assert.False(t, ok)

	middleware.SetSession(c, middleware.Session{UserID: uuid.Nil})
	_, ok = middleware.CurrentSession(c)
	assert.True(t, ok)
}
