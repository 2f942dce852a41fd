package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	apperrors "docyo/internal/errors"
	"docyo/internal/models"
	"docyo/internal/repository"

	"github.com/google/uuid"
)

const (
	dashboardVitalsLimit = 5
	recentVitalsShown    = 3
	bloodPressureBlank   = "--/--"
	defaultGreetingName  = "User"
)

type RecentVital struct {
	Date          string `json:"date"`
	HeartRate     string `json:"heart_rate,omitempty"`
	BloodPressure string `json:"blood_pressure,omitempty"`
}

type DashboardSummary struct {
	FullName      string        `json:"full_name"`
	FirstName     string        `json:"first_name"`
	BMI           string        `json:"bmi"`
	BMICategory   string        `json:"bmi_category"`
	BloodPressure string        `json:"blood_pressure"`
	HeartRate     string        `json:"heart_rate"`
	LatestVital   *models.Vital `json:"latest_vital"`
	RecentVitals  []RecentVital `json:"recent_vitals"`
}

type DashboardService struct {
	gateway *repository.Gateway
}

func NewDashboardService(gateway *repository.Gateway) *DashboardService {
	return &DashboardService{gateway: gateway}
}

// Summary aggregates the landing view. Users with unfinished onboarding get a redirect error.
func (s *DashboardService) Summary(ctx context.Context, userID uuid.UUID) (*DashboardSummary, error) {
	profile, err := s.gateway.Profiles.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewDatabaseError(err, "Error loading profile")
	}
	if profile != nil && !profile.OnboardingCompleted {
		return nil, apperrors.NewRedirectError(OnboardingPath, "Onboarding not completed")
	}

	vitals, err := s.gateway.Vitals.ListByUserID(ctx, userID, dashboardVitalsLimit)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err, "Error loading vitals")
	}

	return buildSummary(profile, vitals), nil
}

func buildSummary(profile *models.Profile, vitals []models.Vital) *DashboardSummary {
	summary := &DashboardSummary{
		FirstName:     defaultGreetingName,
		BMI:           Placeholder,
		BloodPressure: bloodPressureBlank,
		HeartRate:     Placeholder,
		RecentVitals:  []RecentVital{},
	}

	if profile != nil {
		summary.FullName = deref(profile.FullName)
		if fields := strings.Fields(summary.FullName); len(fields) > 0 {
			summary.FirstName = fields[0]
		}
		summary.BMI = FormatBMI(profile.HeightCm, profile.WeightKg)
		summary.BMICategory = ClassifyBMI(profile.HeightCm, profile.WeightKg)
	}

	if len(vitals) == 0 {
		return summary
	}

	latest := vitals[0]
	summary.LatestVital = &latest
	if bp := formatBloodPressure(latest); bp != "" {
		summary.BloodPressure = bp
	}
	if latest.HeartRate != nil {
		summary.HeartRate = strconv.Itoa(*latest.HeartRate)
	}

	for i, v := range vitals {
		if i == recentVitalsShown {
			break
		}
		recent := RecentVital{
			Date:          v.RecordedAt.Format(time.DateOnly),
			BloodPressure: formatBloodPressure(v),
		}
		if v.HeartRate != nil {
			recent.HeartRate = strconv.Itoa(*v.HeartRate) + " bpm"
		}
		summary.RecentVitals = append(summary.RecentVitals, recent)
	}
	return summary
}

func formatBloodPressure(v models.Vital) string {
	if v.SystolicBP == nil || v.DiastolicBP == nil {
		return ""
	}
	return strconv.Itoa(*v.SystolicBP) + "/" + strconv.Itoa(*v.DiastolicBP)
}
