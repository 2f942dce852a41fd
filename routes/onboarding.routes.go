package routes

import (
	"docyo/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterOnboardingRoutes(router *gin.Engine, auth gin.HandlerFunc, onboardingController *controllers.OnboardingController) {
	onboardingRoutes := router.Group("/onboarding")
	onboardingRoutes.Use(auth)
	{
		onboardingRoutes.GET("", onboardingController.Resume)
		onboardingRoutes.GET("/steps/:step", onboardingController.GetStep)
		onboardingRoutes.POST("/steps/:step", onboardingController.SaveStep)
		onboardingRoutes.POST("/back", onboardingController.Back)
	}
}
