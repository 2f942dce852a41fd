package controllers

import (
	"errors"
	"net/http"

	apperrors "docyo/internal/errors"
	"docyo/internal/repository"
	"docyo/internal/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	repo repository.ProfileRepository
}

func NewProfileController(repo repository.ProfileRepository) *ProfileController {
	return &ProfileController{repo: repo}
}

// GetProfile godoc
// @Summary Get profile
// @Description Retrieve the authenticated user's profile with the derived BMI
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	profile, err := pc.repo.FindByUserID(c.Request.Context(), session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, apperrors.NewNotFoundError("Profile"))
			return
		}
		respondError(c, apperrors.NewDatabaseError(err, "Error loading profile"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data": gin.H{
			"profile":      profile,
			"bmi":          services.FormatBMI(profile.HeightCm, profile.WeightKg),
			"bmi_category": services.ClassifyBMI(profile.HeightCm, profile.WeightKg),
		},
	})
}
