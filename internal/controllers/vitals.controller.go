package controllers

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "docyo/internal/errors"
	"docyo/internal/models"
	"docyo/internal/repository"
	"docyo/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	defaultVitalsLimit = 5
	maxVitalsLimit     = 50
)

type VitalsController struct {
	repo repository.VitalRepository
}

func NewVitalsController(repo repository.VitalRepository) *VitalsController {
	return &VitalsController{repo: repo}
}

// VitalInput is one reading with the onboarding ranges plus free-text notes.
type VitalInput struct {
	services.VitalsForm
	Notes string `json:"notes" binding:"max=500"`
}

// ListVitals godoc
// @Summary List vitals
// @Description Newest readings first
// @Tags vitals
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of readings (1-50)" default(5)
// @Success 200 {object} map[string]interface{} "Vitals retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid limit"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /vitals [get]
func (vc *VitalsController) ListVitals(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultVitalsLimit)))
	if err != nil || limit < 1 || limit > maxVitalsLimit {
		respondError(c, apperrors.NewValidationError("limit must be between 1 and 50"))
		return
	}

	vitals, err := vc.repo.ListByUserID(c.Request.Context(), session.UserID, limit)
	if err != nil {
		respondError(c, apperrors.NewDatabaseError(err, "Error loading vitals"))
		return
	}
	if vitals == nil {
		vitals = []models.Vital{}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Vitals retrieved successfully",
		"data":    vitals,
	})
}

// RecordVital godoc
// @Summary Record vitals
// @Description Append one reading; at least one metric is required
// @Tags vitals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vital body VitalInput true "Reading"
// @Success 201 {object} map[string]interface{} "Vitals recorded successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Error saving vitals"
// @Router /vitals [post]
func (vc *VitalsController) RecordVital(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var input VitalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	vital := &models.Vital{
		UserID:           session.UserID,
		SystolicBP:       input.SystolicBP,
		DiastolicBP:      input.DiastolicBP,
		HeartRate:        input.HeartRate,
		BloodSugar:       input.BloodSugar,
		Temperature:      input.Temperature,
		OxygenSaturation: input.OxygenSaturation,
	}
	if notes := strings.TrimSpace(input.Notes); notes != "" {
		vital.Notes = &notes
	}

	if err := vc.repo.Create(c.Request.Context(), vital); err != nil {
		if apperrors.TypeOf(err) != apperrors.ErrorTypeValidation {
			err = apperrors.NewDatabaseError(err, "Error saving vitals")
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Vitals recorded successfully",
		"data":    vital,
	})
}
