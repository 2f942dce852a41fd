package services_test

import (
	"testing"

	"docyo/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name         string
		height       *float64
		weight       *float64
		expectedBMI  float64
		expectedOK   bool
		expectedText string
		category     string
	}{
		{"normal", ptr(175.0), ptr(70.0), 22.9, true, "22.9", services.BMINormal},
		{"underweight", ptr(160.0), ptr(45.0), 17.6, true, "17.6", services.BMIUnderweight},
		{"overweight", ptr(170.0), ptr(80.0), 27.7, true, "27.7", services.BMIOverweight},
		{"obese", ptr(165.0), ptr(95.0), 34.9, true, "34.9", services.BMIObese},
		{"rounded display does not change the band", ptr(170.0), ptr(72.13), 25.0, true, "25.0", services.BMINormal},
		{"missing height", nil, ptr(70.0), 0, false, services.Placeholder, ""},
		{"missing weight", ptr(175.0), nil, 0, false, services.Placeholder, ""},
		{"zero height", ptr(0.0), ptr(70.0), 0, false, services.Placeholder, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bmi, ok := services.CalculateBMI(tt.height, tt.weight)
			assert.Equal(t, tt.expectedOK, ok)
			assert.InDelta(t, tt.expectedBMI, bmi, 0.0001)
			assert.Equal(t, tt.expectedText, services.FormatBMI(tt.height, tt.weight))
			assert.Equal(t, tt.category, services.ClassifyBMI(tt.height, tt.weight))
		})
	}
}

func TestBMICategoryBoundaries(t *testing.T) {
	assert.Equal(t, services.BMIUnderweight, services.BMICategory(18.4))
	assert.Equal(t, services.BMINormal, services.BMICategory(18.5))
	assert.Equal(t, services.BMIOverweight, services.BMICategory(25))
	assert.Equal(t, services.BMIObese, services.BMICategory(30))
}

func TestStressLabel(t *testing.T) {
	assert.Equal(t, "Low", services.StressLabel(1))
	assert.Equal(t, "Low", services.StressLabel(3))
	assert.Equal(t, "Moderate", services.StressLabel(5))
	assert.Equal(t, "High", services.StressLabel(8))
	assert.Equal(t, "Very High", services.StressLabel(10))
}
