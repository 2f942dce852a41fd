package routes

import (
	"docyo/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterDoctorRoutes(router *gin.Engine, auth gin.HandlerFunc, doctorController *controllers.DoctorController) {
	doctorRoutes := router.Group("/find-doctors")
	doctorRoutes.Use(auth)
	{
		doctorRoutes.GET("", doctorController.SearchDoctors)
		doctorRoutes.GET("/filters", doctorController.GetFilterOptions)
		doctorRoutes.GET("/:id", doctorController.GetDoctor)
	}
}
