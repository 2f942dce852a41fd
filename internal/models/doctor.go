package models

import (
	"errors"
	"time"

	"github.com/lib/pq"
)

// Doctor is an entry of the shared, read-only doctor catalog.
type Doctor struct {
	ID                 string         `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt          time.Time      `json:"-"`
	UpdatedAt          time.Time      `json:"-"`
	Position           int            `gorm:"not null;index" json:"-"`
	Name               string         `gorm:"not null" json:"name" example:"Dr. Rajesh Kumar"`
	Specialty          string         `gorm:"not null;index" json:"specialty" example:"Cardiologist"`
	Location           string         `json:"location" example:"Apollo Hospital, New Delhi"`
	Fee                int            `json:"fee" example:"500"`
	Rating             float64        `json:"rating" example:"4.8"`
	Reviews            int            `json:"reviews" example:"342"`
	Availability       string         `json:"availability" example:"Mon-Fri, 10AM-6PM"`
	Qualifications     pq.StringArray `gorm:"type:text[]" json:"qualifications" swaggertype:"array,string"`
	ExperienceYears    int            `json:"experience_years" example:"15"`
	Bio                string         `json:"bio"`
	Languages          pq.StringArray `gorm:"type:text[]" json:"languages" swaggertype:"array,string"`
	OnlineConsultation bool           `json:"online_consultation" example:"true"`
}

const MaxRating = 5.0

func (d *Doctor) Validate() error {
	if d.Rating < 0 || d.Rating > MaxRating {
		return errOutOfRange("rating", d.Rating, 0, MaxRating)
	}
	if d.Fee < 0 {
		return errors.New("fee must not be negative")
	}
	return nil
}
