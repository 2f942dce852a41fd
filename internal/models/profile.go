package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FirstOnboardingStep = 1
	LastOnboardingStep  = 4
)

type Profile struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id" example:"5b0f3c1e-8f7e-4c53-9d0a-2f4d1b7c9e21"`
	CreatedAt             time.Time  `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt             time.Time  `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	UserID                uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FullName              *string    `json:"full_name" example:"John Doe"`
	Email                 *string    `json:"email" example:"john@example.com"`
	Phone                 *string    `json:"phone" example:"+91 98765 43210"`
	AvatarURL             *string    `json:"avatar_url"`
	DateOfBirth           *time.Time `gorm:"type:date" json:"date_of_birth" example:"1990-05-17T00:00:00Z"`
	Gender                *Gender    `gorm:"type:varchar(32)" json:"gender" example:"male"`
	HeightCm              *float64   `json:"height_cm" example:"175"`
	WeightKg              *float64   `json:"weight_kg" example:"70"`
	EmergencyContactName  *string    `json:"emergency_contact_name"`
	EmergencyContactPhone *string    `json:"emergency_contact_phone"`
	OnboardingStep        int        `gorm:"not null;default:1" json:"onboarding_step" example:"1"`
	OnboardingCompleted   bool       `gorm:"not null;default:false" json:"onboarding_completed" example:"false"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.OnboardingStep == 0 {
		p.OnboardingStep = FirstOnboardingStep
	}
	return nil
}

// Validate enforces the enum and the completed-implies-last-step invariant.
func (p *Profile) Validate() error {
	if p.Gender != nil {
		if err := p.Gender.Validate(); err != nil {
			return err
		}
	}
	if p.OnboardingStep < FirstOnboardingStep || p.OnboardingStep > LastOnboardingStep {
		return errOutOfRange("onboarding step", float64(p.OnboardingStep), FirstOnboardingStep, LastOnboardingStep)
	}
	if p.OnboardingCompleted && p.OnboardingStep != LastOnboardingStep {
		return errCompletedStep
	}
	return nil
}
