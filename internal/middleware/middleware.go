package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	sessionKey = "session"
	AuthPath   = "/auth"
)

// Session is the authenticated caller, resolved from the bearer token.
type Session struct {
	UserID uuid.UUID `json:"user_id"`
}

func unauthorized(c *gin.Context, message, detail string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":      "error",
		"message":     message,
		"error":       detail,
		"redirect_to": AuthPath,
	})
}

// AuthMiddleware validates an HMAC-signed bearer token whose subject is the user id.
func AuthMiddleware(secret string) gin.HandlerFunc {
	jwtSecret := []byte(secret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is required", "Missing authorization token")
			return
		}

		// Bearer {token}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			unauthorized(c, "Invalid authorization header format", "Use format: Bearer {token}")
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			detail := "Token validation failed"
			if err != nil {
				detail = err.Error()
			}
			unauthorized(c, "Invalid or expired token", detail)
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			unauthorized(c, "Invalid token claims", "Subject is not a user id")
			return
		}

		SetSession(c, Session{UserID: userID})
		c.Next()
	}
}

// SetSession stores the resolved session on the request context.
func SetSession(c *gin.Context, session Session) {
	c.Set(sessionKey, session)
}

// CurrentSession returns the session placed by AuthMiddleware.
func CurrentSession(c *gin.Context) (Session, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return Session{}, false
	}
	session, ok := value.(Session)
	return session, ok
}
