package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SessionController struct{}

func NewSessionController() *SessionController {
	return &SessionController{}
}

// GetSession godoc
// @Summary Current session
// @Description Return the user id carried by the bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Session retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /auth/session [get]
func (sc *SessionController) GetSession(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Session retrieved successfully",
		"data":    session,
	})
}
