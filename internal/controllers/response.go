package controllers

import (
	"errors"
	"net/http"

	apperrors "docyo/internal/errors"
	"docyo/internal/logger"
	"docyo/internal/middleware"

	"github.com/gin-gonic/gin"
)

func statusFor(errorType apperrors.ErrorType) int {
	switch errorType {
	case apperrors.ErrorTypeValidation:
		return http.StatusBadRequest
	case apperrors.ErrorTypeNotFound:
		return http.StatusNotFound
	case apperrors.ErrorTypePermission:
		return http.StatusUnauthorized
	case apperrors.ErrorTypeRedirect:
		return http.StatusSeeOther
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and renders it with the status its type maps to.
// Redirect errors become a 303 with a Location header.
func respondError(c *gin.Context, err error) {
	apperrors.NewHandler(logger.GetLogger()).Handle(c.Request.Context(), err)

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.NewInternalError(err)
	}

	if location, ok := apperrors.RedirectTarget(err); ok {
		c.Header("Location", location)
		c.JSON(http.StatusSeeOther, gin.H{
			"status":      "redirect",
			"message":     appErr.Message,
			"redirect_to": location,
		})
		return
	}

	body := gin.H{
		"status":  "error",
		"message": appErr.Message,
		"error":   appErr.Code,
	}
	if appErr.Type == apperrors.ErrorTypePermission {
		body["redirect_to"] = middleware.AuthPath
	}
	c.JSON(statusFor(appErr.Type), body)
}

func badRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
	})
}

// requireSession writes a 401 and returns false when the request carries no session.
func requireSession(c *gin.Context) (middleware.Session, bool) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
	}
	return session, ok
}
