package controllers

import (
	"net/http"

	"docyo/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

// GetDashboard godoc
// @Summary Dashboard summary
// @Description Aggregate BMI, latest vitals and recent readings. Redirects to onboarding when it is unfinished.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Dashboard retrieved successfully"
// @Success 303 {object} map[string]interface{} "Onboarding not completed"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Error loading dashboard"
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	summary, err := dc.service.Summary(c.Request.Context(), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dashboard retrieved successfully",
		"data":    summary,
	})
}
