package controllers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"docyo/internal/controllers"
	"docyo/internal/models"
	"docyo/internal/repository/mocks"
	"docyo/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupDoctorRouter(t *testing.T) *gin.Engine {
	repo := new(mocks.MockDoctorRepository)
	repo.On("FindAll", mock.Anything).Return([]models.Doctor{
		{ID: "1", Name: "Dr. Rajesh Kumar", Specialty: "Cardiologist", Location: "Apollo Hospital, New Delhi", Fee: 500, OnlineConsultation: true},
		{ID: "2", Name: "Dr. Priya Sharma", Specialty: "Dermatologist", Location: "Max Healthcare, Mumbai", Fee: 400, OnlineConsultation: true},
		{ID: "3", Name: "Dr. Arvind Patel", Specialty: "Orthopedic Surgeon", Location: "Fortis Hospital, Bangalore", Fee: 600},
	}, nil)

	catalog := services.NewDoctorCatalog(repo, nil, time.Hour)
	require.NoError(t, catalog.Load(context.Background()))

	controller := controllers.NewDoctorController(catalog)
	router := setupTestRouter()
	router.GET("/find-doctors", controller.SearchDoctors)
	router.GET("/find-doctors/filters", controller.GetFilterOptions)
	router.GET("/find-doctors/:id", controller.GetDoctor)
	return router
}

func TestSearchDoctors(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedIDs    []interface{}
		expectedActive bool
	}{
		{"no filters", "", http.StatusOK, []interface{}{"1", "2", "3"}, false},
		{"search", "?search=PATEL", http.StatusOK, []interface{}{"3"}, true},
		{"blank selections mean all", "?specialty=&location=", http.StatusOK, []interface{}{"1", "2", "3"}, false},
		{"fee and online", "?max_fee=500&online_only=true", http.StatusOK, []interface{}{"1", "2"}, true},
		{"location", "?location=Mumbai", http.StatusOK, []interface{}{"2"}, true},
		{"no match", "?specialty=Neurologist", http.StatusOK, []interface{}{}, true},
		{"negative fee", "?max_fee=-1", http.StatusBadRequest, nil, false},
		{"malformed fee", "?max_fee=cheap", http.StatusBadRequest, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupDoctorRouter(t)

			w := performRequest(router, http.MethodGet, "/find-doctors"+tt.query, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}
			data := decode(t, w)["data"].(map[string]interface{})
			doctors := data["doctors"].([]interface{})
			ids := make([]interface{}, 0, len(doctors))
			for _, d := range doctors {
				ids = append(ids, d.(map[string]interface{})["id"])
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, tt.expectedActive, data["has_active_filters"])
			assert.Equal(t, float64(3), data["total"])
		})
	}
}

func TestGetFilterOptions(t *testing.T) {
	router := setupDoctorRouter(t)

	w := performRequest(router, http.MethodGet, "/find-doctors/filters", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	defaults := data["defaults"].(map[string]interface{})
	assert.Equal(t, "All", defaults["specialty"])
	assert.Equal(t, float64(1000), defaults["max_fee"])
	assert.Len(t, data["specialties"], len(services.DoctorSpecialties))
}

func TestGetDoctor(t *testing.T) {
	router := setupDoctorRouter(t)

	w := performRequest(router, http.MethodGet, "/find-doctors/2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dr. Priya Sharma", decode(t, w)["data"].(map[string]interface{})["name"])

	w = performRequest(router, http.MethodGet, "/find-doctors/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", decode(t, w)["status"])
}
