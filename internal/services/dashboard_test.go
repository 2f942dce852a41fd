package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "docyo/internal/errors"
	"docyo/internal/models"
	"docyo/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDashboardSummary(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	completed := &models.Profile{
		UserID:              userID,
		FullName:            ptr("Jane Doe"),
		HeightCm:            ptr(160.0),
		WeightKg:            ptr(45.0),
		OnboardingStep:      4,
		OnboardingCompleted: true,
	}

	t.Run("aggregates profile and latest vitals", func(t *testing.T) {
		gw, m := newMockGateway()
		m.profiles.On("FindByUserID", mock.Anything, userID).Return(completed, nil)
		m.vitals.On("ListByUserID", mock.Anything, userID, 5).Return([]models.Vital{
			{SystolicBP: ptr(120), DiastolicBP: ptr(80), HeartRate: ptr(72), RecordedAt: now},
			{HeartRate: ptr(75), RecordedAt: now.AddDate(0, 0, -1)},
			{BloodSugar: ptr(100.0), RecordedAt: now.AddDate(0, 0, -2)},
			{HeartRate: ptr(70), RecordedAt: now.AddDate(0, 0, -3)},
		}, nil)
		service := services.NewDashboardService(gw)

		summary, err := service.Summary(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, "Jane", summary.FirstName)
		assert.Equal(t, "17.6", summary.BMI)
		assert.Equal(t, services.BMIUnderweight, summary.BMICategory)
		assert.Equal(t, "120/80", summary.BloodPressure)
		assert.Equal(t, "72", summary.HeartRate)
		assert.Len(t, summary.RecentVitals, 3)
		assert.Equal(t, "2024-03-10", summary.RecentVitals[0].Date)
		assert.Equal(t, "75 bpm", summary.RecentVitals[1].HeartRate)
		assert.Empty(t, summary.RecentVitals[1].BloodPressure)
		m.assertExpectations(t)
	})

	t.Run("placeholders when nothing is recorded", func(t *testing.T) {
		gw, m := newMockGateway()
		m.profiles.On("FindByUserID", mock.Anything, userID).Return(nil, errNotFound)
		m.vitals.On("ListByUserID", mock.Anything, userID, 5).Return([]models.Vital{}, nil)
		service := services.NewDashboardService(gw)

		summary, err := service.Summary(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, "User", summary.FirstName)
		assert.Equal(t, services.Placeholder, summary.BMI)
		assert.Equal(t, "--/--", summary.BloodPressure)
		assert.Equal(t, services.Placeholder, summary.HeartRate)
		assert.Nil(t, summary.LatestVital)
		assert.Empty(t, summary.RecentVitals)
	})

	t.Run("incomplete onboarding redirects", func(t *testing.T) {
		gw, m := newMockGateway()
		m.profiles.On("FindByUserID", mock.Anything, userID).Return(&models.Profile{UserID: userID, OnboardingStep: 2}, nil)
		service := services.NewDashboardService(gw)

		_, err := service.Summary(context.Background(), userID)

		location, ok := apperrors.RedirectTarget(err)
		assert.True(t, ok)
		assert.Equal(t, services.OnboardingPath, location)
		m.vitals.AssertNotCalled(t, "ListByUserID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("vitals failure", func(t *testing.T) {
		gw, m := newMockGateway()
		m.profiles.On("FindByUserID", mock.Anything, userID).Return(completed, nil)
		m.vitals.On("ListByUserID", mock.Anything, userID, 5).Return(nil, errors.New("database error"))
		service := services.NewDashboardService(gw)

		_, err := service.Summary(context.Background(), userID)

		assert.Equal(t, apperrors.ErrorTypeDatabase, apperrors.TypeOf(err))
	})
}
