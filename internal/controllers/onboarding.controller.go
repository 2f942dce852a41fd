package controllers

import (
	"net/http"
	"strconv"

	apperrors "docyo/internal/errors"
	"docyo/internal/services"

	"github.com/gin-gonic/gin"
)

type OnboardingController struct {
	service *services.OnboardingService
}

func NewOnboardingController(service *services.OnboardingService) *OnboardingController {
	return &OnboardingController{service: service}
}

type BackRequest struct {
	CurrentStep int `json:"current_step" binding:"required,min=1,max=4" example:"3"`
}

func parseStep(c *gin.Context) (services.Step, error) {
	n, err := strconv.Atoi(c.Param("step"))
	if err != nil || !services.Step(n).Valid() {
		return 0, apperrors.NewValidationError("Unknown onboarding step").WithContext("step", c.Param("step"))
	}
	return services.Step(n), nil
}

func wizardPayload(wizard *services.Wizard, form services.StepForm) gin.H {
	return gin.H{
		"current_step": wizard.Current,
		"completed":    wizard.Completed,
		"progress":     wizard.Progress(),
		"steps":        services.OnboardingSteps,
		"form":         form,
	}
}

// Resume godoc
// @Summary Resume onboarding
// @Description Return the persisted onboarding step with its stored form, or redirect to the dashboard once completed
// @Tags onboarding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Onboarding resumed"
// @Success 303 {object} map[string]interface{} "Onboarding already completed"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Error loading profile"
// @Router /onboarding [get]
func (oc *OnboardingController) Resume(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	wizard, err := oc.service.Resume(c.Request.Context(), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	form, err := oc.service.Load(c.Request.Context(), wizard, wizard.Current)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Onboarding resumed",
		"data":    wizardPayload(wizard, form),
	})
}

// GetStep godoc
// @Summary Load onboarding step
// @Description Return the stored form for a step that has already been reached
// @Tags onboarding
// @Produce json
// @Security BearerAuth
// @Param step path int true "Step number (1-4)"
// @Success 200 {object} map[string]interface{} "Step loaded"
// @Success 303 {object} map[string]interface{} "Onboarding already completed"
// @Failure 400 {object} map[string]interface{} "Unknown or unreachable step"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /onboarding/steps/{step} [get]
func (oc *OnboardingController) GetStep(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	step, err := parseStep(c)
	if err != nil {
		respondError(c, err)
		return
	}

	wizard, err := oc.service.Resume(c.Request.Context(), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	form, err := oc.service.Load(c.Request.Context(), wizard, step)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Step loaded",
		"data":    gin.H{"step": step, "form": form},
	})
}

// SaveStep godoc
// @Summary Save onboarding step
// @Description Validate and persist a step, then advance. Saving step 4 completes onboarding.
// @Tags onboarding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param step path int true "Step number (1-4)"
// @Param form body object true "Step form (PersonalInfoForm, MedicalHistoryForm, LifestyleForm or VitalsForm)"
// @Success 200 {object} map[string]interface{} "Step saved"
// @Success 303 {object} map[string]interface{} "Onboarding already completed"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Error saving step"
// @Router /onboarding/steps/{step} [post]
func (oc *OnboardingController) SaveStep(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	step, err := parseStep(c)
	if err != nil {
		respondError(c, err)
		return
	}

	form, err := services.NewStepForm(step)
	if err != nil {
		respondError(c, apperrors.NewValidationError(err.Error()))
		return
	}
	if err := c.ShouldBindJSON(form); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	wizard, err := oc.service.Resume(c.Request.Context(), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := oc.service.Save(c.Request.Context(), wizard, form)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Step saved"
	if result.Completed {
		message = "Onboarding completed"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
		"data":    result,
	})
}

// Back godoc
// @Summary Previous onboarding step
// @Description Move one step back without saving
// @Tags onboarding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BackRequest true "Current step"
// @Success 200 {object} map[string]interface{} "Moved back"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /onboarding/back [post]
func (oc *OnboardingController) Back(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req BackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	wizard := &services.Wizard{UserID: session.UserID, Current: services.ClampStep(req.CurrentStep)}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Moved back",
		"data":    oc.service.Back(wizard),
	})
}
