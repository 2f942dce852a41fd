package routes

import (
	"docyo/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterProfileRoutes(router *gin.Engine, auth gin.HandlerFunc, profileController *controllers.ProfileController) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(auth)
	{
		profileRoutes.GET("", profileController.GetProfile)
	}
}
