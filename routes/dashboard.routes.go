package routes

import (
	"docyo/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterDashboardRoutes(router *gin.Engine, auth gin.HandlerFunc, dashboardController *controllers.DashboardController) {
	router.GET("/dashboard", auth, dashboardController.GetDashboard)
}
