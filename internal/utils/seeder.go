package utils

import (
	"context"
	"fmt"

	"docyo/internal/logger"
	"docyo/internal/models"
	"docyo/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DoctorCatalogSeed is the initial find-doctors catalog, in display order.
func DoctorCatalogSeed() []models.Doctor {
	return []models.Doctor{
		{
			ID:              "1",
			Name:            "Dr. Rajesh Kumar",
			Specialty:       "Cardiologist",
			Location:        "Apollo Hospital, New Delhi",
			Fee:             500,
			Rating:          4.8,
			Reviews:         342,
			Availability:    "Mon-Fri, 10AM-6PM",
			Qualifications:  pq.StringArray{"MBBS", "MD (Cardiology)", "DNB"},
			ExperienceYears: 15,
			Bio: "Renowned cardiologist specializing in heart disease diagnosis and treatment. " +
				"Expert in preventive cardiology and lifestyle management.",
			Languages:          pq.StringArray{"English", "Hindi"},
			OnlineConsultation: true,
		},
		{
			ID:              "2",
			Name:            "Dr. Priya Sharma",
			Specialty:       "Dermatologist",
			Location:        "Max Healthcare, Mumbai",
			Fee:             400,
			Rating:          4.7,
			Reviews:         285,
			Availability:    "Tue-Sat, 2PM-8PM",
			Qualifications:  pq.StringArray{"MBBS", "MD (Dermatology)", "IAAD"},
			ExperienceYears: 12,
			Bio: "Specialist in skin health and aesthetic dermatology. " +
				"Treats acne, psoriasis, and performs cosmetic procedures with precision.",
			Languages:          pq.StringArray{"English", "Hindi", "Marathi"},
			OnlineConsultation: true,
		},
		{
			ID:              "3",
			Name:            "Dr. Arvind Patel",
			Specialty:       "Orthopedic Surgeon",
			Location:        "Fortis Hospital, Bangalore",
			Fee:             600,
			Rating:          4.9,
			Reviews:         428,
			Availability:    "Mon-Thu, 9AM-5PM",
			Qualifications:  pq.StringArray{"MBBS", "MS (Orthopedics)", "Fellowship in Sports Medicine"},
			ExperienceYears: 18,
			Bio: "Expert orthopedic surgeon with specialization in joint replacement and sports injuries. " +
				"Pioneering in minimally invasive techniques.",
			Languages:          pq.StringArray{"English", "Hindi", "Gujarati"},
			OnlineConsultation: false,
		},
		{
			ID:              "4",
			Name:            "Dr. Neha Gupta",
			Specialty:       "General Physician",
			Location:        "AIIMS, New Delhi",
			Fee:             300,
			Rating:          4.6,
			Reviews:         512,
			Availability:    "Daily, 8AM-2PM",
			Qualifications:  pq.StringArray{"MBBS", "MD (General Medicine)"},
			ExperienceYears: 10,
			Bio: "Compassionate general physician offering comprehensive health management and preventive care. " +
				"Strong patient counseling approach.",
			Languages:          pq.StringArray{"English", "Hindi", "Punjabi"},
			OnlineConsultation: true,
		},
		{
			ID:              "5",
			Name:            "Dr. Vikram Singh",
			Specialty:       "Neurologist",
			Location:        "Sir Ganga Ram Hospital, Delhi",
			Fee:             550,
			Rating:          4.8,
			Reviews:         198,
			Availability:    "Wed-Sat, 11AM-4PM",
			Qualifications:  pq.StringArray{"MBBS", "MD (Neurology)", "DM (Neurology)"},
			ExperienceYears: 14,
			Bio: "Specialized neurologist treating migraine, epilepsy, and movement disorders. " +
				"Experienced in advanced neuroimaging interpretation.",
			Languages:          pq.StringArray{"English", "Hindi"},
			OnlineConsultation: true,
		},
	}
}

// SeedDoctors upserts the catalog, numbering positions in slice order.
func SeedDoctors(ctx context.Context, repo repository.DoctorRepository, doctors []models.Doctor) error {
	for i := range doctors {
		doctors[i].Position = i + 1
	}
	if err := repo.Upsert(ctx, doctors); err != nil {
		return fmt.Errorf("failed to seed doctors: %w", err)
	}
	logger.Info("Seeded doctor catalog", "doctors", len(doctors))
	return nil
}

// SeedPatient creates a fresh profile at step 1 for a new user id.
func SeedPatient(ctx context.Context, repo repository.ProfileRepository, email string) (*models.Profile, error) {
	profile := &models.Profile{UserID: uuid.New(), OnboardingStep: models.FirstOnboardingStep}
	if email != "" {
		profile.Email = &email
	}
	if err := repo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to seed patient: %w", err)
	}
	logger.Info("Seeded patient profile", "user_id", profile.UserID.String())
	return profile, nil
}
