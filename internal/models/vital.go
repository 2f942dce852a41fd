package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmptyVital    = errors.New("at least one vital measurement is required")
	errCompletedStep = errors.New("completed onboarding must be on the last step")
)

func errOutOfRange(field string, v, min, max float64) error {
	return fmt.Errorf("%s %g out of range [%g, %g]", field, v, min, max)
}

type Vital struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	UserID           uuid.UUID `gorm:"type:uuid;index:idx_vitals_user_recorded,priority:1;not null" json:"user_id"`
	SystolicBP       *int      `json:"systolic_bp" example:"120"`
	DiastolicBP      *int      `json:"diastolic_bp" example:"80"`
	HeartRate        *int      `json:"heart_rate" example:"72"`
	BloodSugar       *float64  `json:"blood_sugar" example:"100"`
	Temperature      *float64  `json:"temperature" example:"98.6"`
	OxygenSaturation *int      `json:"oxygen_saturation" example:"98"`
	Notes            *string   `json:"notes"`
	RecordedAt       time.Time `gorm:"index:idx_vitals_user_recorded,priority:2,sort:desc;not null" json:"recorded_at"`
}

func (v *Vital) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.RecordedAt.IsZero() {
		v.RecordedAt = time.Now()
	}
	return nil
}

// HasMeasurement reports whether any metric field is set.
func (v *Vital) HasMeasurement() bool {
	return v.SystolicBP != nil || v.DiastolicBP != nil || v.HeartRate != nil ||
		v.BloodSugar != nil || v.Temperature != nil || v.OxygenSaturation != nil
}

func (v *Vital) Validate() error {
	if !v.HasMeasurement() {
		return ErrEmptyVital
	}
	for name, value := range map[string]*int{
		"systolic bp":       v.SystolicBP,
		"diastolic bp":      v.DiastolicBP,
		"heart rate":        v.HeartRate,
		"oxygen saturation": v.OxygenSaturation,
	} {
		if value != nil && *value < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	if v.OxygenSaturation != nil && *v.OxygenSaturation > 100 {
		return errOutOfRange("oxygen saturation", float64(*v.OxygenSaturation), 0, 100)
	}
	if v.BloodSugar != nil && *v.BloodSugar < 0 {
		return errors.New("blood sugar must not be negative")
	}
	return nil
}
