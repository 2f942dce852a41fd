package routes

import (
	"docyo/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSessionRoutes(router *gin.Engine, auth gin.HandlerFunc, sessionController *controllers.SessionController) {
	authRoutes := router.Group("/auth")
	authRoutes.Use(auth)
	{
		authRoutes.GET("/session", sessionController.GetSession)
	}
}
