package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestEnumValidation(t *testing.T) {
	tests := []struct {
		name  string
		value Validator
		valid bool
	}{
		{"gender", GenderPreferNotToSay, true},
		{"unknown gender", Gender("robot"), false},
		{"smoking", SmokingFormer, true},
		{"alcohol", AlcoholStatus("daily"), false},
		{"activity", ActivityExtremelyActive, true},
		{"diet", DietPescatarian, true},
		{"empty diet", DietType(""), false},
		{"blood type", BloodType("AB-"), true},
		{"lowercase blood type", BloodType("ab-"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestProfileValidate(t *testing.T) {
	assert.NoError(t, (&Profile{OnboardingStep: 2, Gender: ptr(GenderFemale)}).Validate())
	assert.NoError(t, (&Profile{OnboardingStep: 4, OnboardingCompleted: true}).Validate())
	assert.Error(t, (&Profile{OnboardingStep: 3, OnboardingCompleted: true}).Validate())
	assert.Error(t, (&Profile{OnboardingStep: 5}).Validate())
	assert.Error(t, (&Profile{OnboardingStep: 1, Gender: ptr(Gender("x"))}).Validate())
}

func TestLifestyleValidate(t *testing.T) {
	assert.NoError(t, (&Lifestyle{}).Validate())
	assert.NoError(t, (&Lifestyle{SleepHoursAvg: ptr(3.0), StressLevel: ptr(10)}).Validate())
	assert.Error(t, (&Lifestyle{SleepHoursAvg: ptr(2.5)}).Validate())
	assert.Error(t, (&Lifestyle{SleepHoursAvg: ptr(12.5)}).Validate())
	assert.Error(t, (&Lifestyle{StressLevel: ptr(0)}).Validate())
	assert.Error(t, (&Lifestyle{DietType: ptr(DietType("carnivore"))}).Validate())
}

func TestVitalValidate(t *testing.T) {
	assert.ErrorIs(t, (&Vital{}).Validate(), ErrEmptyVital)
	assert.NoError(t, (&Vital{HeartRate: ptr(72)}).Validate())
	assert.Error(t, (&Vital{OxygenSaturation: ptr(101)}).Validate())
	assert.Error(t, (&Vital{SystolicBP: ptr(-1)}).Validate())
}

func TestDoctorValidate(t *testing.T) {
	assert.NoError(t, (&Doctor{Rating: 4.8, Fee: 500}).Validate())
	assert.Error(t, (&Doctor{Rating: 5.1}).Validate())
	assert.Error(t, (&Doctor{Fee: -1}).Validate())
}
