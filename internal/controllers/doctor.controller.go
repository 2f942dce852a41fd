package controllers

import (
	"net/http"

	"docyo/internal/services"

	"github.com/gin-gonic/gin"
)

type DoctorController struct {
	catalog *services.DoctorCatalog
}

func NewDoctorController(catalog *services.DoctorCatalog) *DoctorController {
	return &DoctorController{catalog: catalog}
}

// SearchDoctors godoc
// @Summary Find doctors
// @Description Filter the doctor catalog. Every filter is optional and the result keeps catalog order.
// @Tags doctors
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive match on name or specialty"
// @Param specialty query string false "Exact specialty, or All" default(All)
// @Param location query string false "City contained in the location, or All" default(All)
// @Param max_fee query int false "Inclusive fee ceiling" default(1000)
// @Param online_only query bool false "Only doctors offering online consultation"
// @Success 200 {object} services.DoctorSearchResult "Doctors retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /find-doctors [get]
func (dc *DoctorController) SearchDoctors(c *gin.Context) {
	criteria := services.DefaultDoctorCriteria()
	if err := c.ShouldBindQuery(&criteria); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	result := dc.catalog.Search(criteria.Normalize())

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Doctors retrieved successfully",
		"data":    result,
	})
}

// GetFilterOptions godoc
// @Summary Doctor filter options
// @Description Option lists for the find-doctors filters together with the default criteria
// @Tags doctors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Filter options retrieved successfully"
// @Router /find-doctors/filters [get]
func (dc *DoctorController) GetFilterOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Filter options retrieved successfully",
		"data": gin.H{
			"specialties":  services.DoctorSpecialties,
			"locations":    services.DoctorLocations,
			"fee_ceilings": services.FeeCeilings,
			"defaults":     services.DefaultDoctorCriteria(),
		},
	})
}

// GetDoctor godoc
// @Summary Doctor details
// @Description Retrieve one catalog entry by id
// @Tags doctors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Doctor ID"
// @Success 200 {object} models.Doctor "Doctor retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Doctor not found"
// @Router /find-doctors/{id} [get]
func (dc *DoctorController) GetDoctor(c *gin.Context) {
	doctor, err := dc.catalog.Find(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Doctor retrieved successfully",
		"data":    doctor,
	})
}
