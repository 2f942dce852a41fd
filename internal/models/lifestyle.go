package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinSleepHours  = 3.0
	MaxSleepHours  = 12.0
	MinStressLevel = 1
	MaxStressLevel = 10
)

type Lifestyle struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	UserID        uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	SmokingStatus *SmokingStatus `gorm:"type:varchar(32)" json:"smoking_status" example:"never"`
	AlcoholStatus *AlcoholStatus `gorm:"type:varchar(32)" json:"alcohol_status" example:"occasional"`
	ActivityLevel *ActivityLevel `gorm:"type:varchar(32)" json:"activity_level" example:"moderately_active"`
	DietType      *DietType      `gorm:"type:varchar(32)" json:"diet_type" example:"vegetarian"`
	SleepHoursAvg *float64       `json:"sleep_hours_avg" example:"7.5"`
	StressLevel   *int           `json:"stress_level" example:"5"`
}

func (Lifestyle) TableName() string {
	return "lifestyle"
}

func (l *Lifestyle) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (l *Lifestyle) Validate() error {
	enums := []Validator{}
	if l.SmokingStatus != nil {
		enums = append(enums, *l.SmokingStatus)
	}
	if l.AlcoholStatus != nil {
		enums = append(enums, *l.AlcoholStatus)
	}
	if l.ActivityLevel != nil {
		enums = append(enums, *l.ActivityLevel)
	}
	if l.DietType != nil {
		enums = append(enums, *l.DietType)
	}
	for _, e := range enums {
		if err := e.Validate(); err != nil {
			return err
		}
	}

	if l.SleepHoursAvg != nil && (*l.SleepHoursAvg < MinSleepHours || *l.SleepHoursAvg > MaxSleepHours) {
		return errOutOfRange("sleep hours", *l.SleepHoursAvg, MinSleepHours, MaxSleepHours)
	}
	if l.StressLevel != nil && (*l.StressLevel < MinStressLevel || *l.StressLevel > MaxStressLevel) {
		return errOutOfRange("stress level", float64(*l.StressLevel), MinStressLevel, MaxStressLevel)
	}
	return nil
}
