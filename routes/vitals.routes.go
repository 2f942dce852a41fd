package routes

import (
	"docyo/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterVitalsRoutes(router *gin.Engine, auth gin.HandlerFunc, vitalsController *controllers.VitalsController) {
	vitalsRoutes := router.Group("/vitals")
	vitalsRoutes.Use(auth)
	{
		vitalsRoutes.GET("", vitalsController.ListVitals)
		vitalsRoutes.POST("", vitalsController.RecordVital)
	}
}
