package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Surgery struct {
	Name string `json:"name" example:"Appendectomy"`
	Year string `json:"year" example:"2015"`
}

type Medication struct {
	Name      string `json:"name" example:"Metformin"`
	Dosage    string `json:"dosage" example:"500mg"`
	Frequency string `json:"frequency" example:"twice daily"`
}

// FamilyConditions are the conditions offered for the family-history checklist.
var FamilyConditions = []string{
	"Diabetes",
	"Heart Disease",
	"High Blood Pressure",
	"Cancer",
	"Stroke",
	"Alzheimer's",
	"Asthma",
	"Mental Health",
}

type MedicalHistory struct {
	ID                 uuid.UUID                           `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt          time.Time                           `json:"created_at"`
	UpdatedAt          time.Time                           `json:"updated_at"`
	UserID             uuid.UUID                           `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	ChronicIllnesses   pq.StringArray                      `gorm:"type:text[]" json:"chronic_illnesses" swaggertype:"array,string"`
	Allergies          pq.StringArray                      `gorm:"type:text[]" json:"allergies" swaggertype:"array,string"`
	PastSurgeries      datatypes.JSONSlice[Surgery]        `gorm:"type:jsonb" json:"past_surgeries"`
	CurrentMedications datatypes.JSONSlice[Medication]     `gorm:"type:jsonb" json:"current_medications"`
	BloodType          *BloodType                          `gorm:"type:varchar(3)" json:"blood_type" example:"O+"`
	FamilyHistory      datatypes.JSONType[map[string]bool] `gorm:"type:jsonb" json:"family_history" swaggertype:"object"`
}

func (MedicalHistory) TableName() string {
	return "medical_history"
}

func (m *MedicalHistory) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *MedicalHistory) Validate() error {
	if m.BloodType != nil {
		return m.BloodType.Validate()
	}
	return nil
}
