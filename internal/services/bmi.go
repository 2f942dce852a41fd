package services

import (
	"math"
	"strconv"
)

const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"

	// Placeholder shown for values that cannot be derived.
	Placeholder = "--"
)

func rawBMI(heightCm, weightKg *float64) (float64, bool) {
	if heightCm == nil || weightKg == nil || *heightCm <= 0 || *weightKg <= 0 {
		return 0, false
	}
	heightInMeters := *heightCm / 100.0
	return *weightKg / (heightInMeters * heightInMeters), true
}

// CalculateBMI returns weight / (height in metres)^2 rounded to one decimal place.
func CalculateBMI(heightCm, weightKg *float64) (float64, bool) {
	bmi, ok := rawBMI(heightCm, weightKg)
	if !ok {
		return 0, false
	}
	return math.Round(bmi*10) / 10, true
}

// ClassifyBMI bands the unrounded BMI, so 24.96 stays Normal even though it displays as 25.0.
// It returns "" when height or weight is missing.
func ClassifyBMI(heightCm, weightKg *float64) string {
	bmi, ok := rawBMI(heightCm, weightKg)
	if !ok {
		return ""
	}
	return BMICategory(bmi)
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

func FormatBMI(heightCm, weightKg *float64) string {
	bmi, ok := CalculateBMI(heightCm, weightKg)
	if !ok {
		return Placeholder
	}
	return strconv.FormatFloat(bmi, 'f', 1, 64)
}

func StressLabel(level int) string {
	switch {
	case level <= 3:
		return "Low"
	case level <= 6:
		return "Moderate"
	case level <= 8:
		return "High"
	default:
		return "Very High"
	}
}
