package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"docyo/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

const (
	defaultSleepHours  = 7.0
	defaultStressLevel = 5
)

var (
	errMissingPersonalInfo = errors.New("Please fill in your name, date of birth, and gender.")
	errVitalsOutOfRange    = errors.New("Some vital readings are outside the accepted range.")
)

// StepForm is the editable field state of one wizard step.
type StepForm interface {
	Step() Step
	Validate() error
}

// NewStepForm returns an empty form for step, ready to be decoded into.
func NewStepForm(step Step) (StepForm, error) {
	switch step {
	case StepPersonalInfo:
		return &PersonalInfoForm{}, nil
	case StepMedicalHistory:
		return &MedicalHistoryForm{}, nil
	case StepLifestyle:
		return &LifestyleForm{}, nil
	case StepVitals:
		return &VitalsForm{}, nil
	}
	return nil, fmt.Errorf("unknown onboarding step %d", step)
}

func nullable(s string) interface{} {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return s
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// uniqueStrings trims, drops blanks and removes duplicates, keeping first occurrences.
func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

type PersonalInfoForm struct {
	FullName              string   `json:"full_name" example:"John Doe"`
	DateOfBirth           string   `json:"date_of_birth" example:"1990-05-17"`
	Gender                string   `json:"gender" example:"male"`
	HeightCm              *float64 `json:"height_cm" example:"175"`
	WeightKg              *float64 `json:"weight_kg" example:"70"`
	Phone                 string   `json:"phone"`
	EmergencyContactName  string   `json:"emergency_contact_name"`
	EmergencyContactPhone string   `json:"emergency_contact_phone"`

	BMI         *float64 `json:"bmi,omitempty"`
	BMICategory string   `json:"bmi_category,omitempty"`
}

func (f *PersonalInfoForm) Step() Step { return StepPersonalInfo }

func (f *PersonalInfoForm) Validate() error {
	if strings.TrimSpace(f.FullName) == "" || strings.TrimSpace(f.DateOfBirth) == "" || strings.TrimSpace(f.Gender) == "" {
		return errMissingPersonalInfo
	}
	if _, err := time.Parse(dateLayout, strings.TrimSpace(f.DateOfBirth)); err != nil {
		return fmt.Errorf("date of birth must be formatted as YYYY-MM-DD")
	}
	if f.HeightCm != nil && *f.HeightCm <= 0 {
		return errors.New("height must be positive")
	}
	if f.WeightKg != nil && *f.WeightKg <= 0 {
		return errors.New("weight must be positive")
	}
	return nil
}

func (f *PersonalInfoForm) patch() map[string]interface{} {
	dob, _ := time.Parse(dateLayout, strings.TrimSpace(f.DateOfBirth))
	patch := map[string]interface{}{
		"full_name":               strings.TrimSpace(f.FullName),
		"date_of_birth":           dob,
		"gender":                  models.Gender(strings.TrimSpace(f.Gender)),
		"height_cm":               nil,
		"weight_kg":               nil,
		"phone":                   nullable(f.Phone),
		"emergency_contact_name":  nullable(f.EmergencyContactName),
		"emergency_contact_phone": nullable(f.EmergencyContactPhone),
	}
	if f.HeightCm != nil {
		patch["height_cm"] = *f.HeightCm
	}
	if f.WeightKg != nil {
		patch["weight_kg"] = *f.WeightKg
	}
	return patch
}

func (f *PersonalInfoForm) deriveBMI() {
	f.BMI, f.BMICategory = nil, ""
	if bmi, ok := CalculateBMI(f.HeightCm, f.WeightKg); ok {
		f.BMI = &bmi
		f.BMICategory = ClassifyBMI(f.HeightCm, f.WeightKg)
	}
}

func personalInfoFromProfile(p *models.Profile) *PersonalInfoForm {
	form := &PersonalInfoForm{}
	if p != nil {
		form.FullName = deref(p.FullName)
		form.Gender = string(deref(p.Gender))
		form.HeightCm = p.HeightCm
		form.WeightKg = p.WeightKg
		form.Phone = deref(p.Phone)
		form.EmergencyContactName = deref(p.EmergencyContactName)
		form.EmergencyContactPhone = deref(p.EmergencyContactPhone)
		if p.DateOfBirth != nil {
			form.DateOfBirth = p.DateOfBirth.Format(dateLayout)
		}
	}
	form.deriveBMI()
	return form
}

type MedicalHistoryForm struct {
	ChronicIllnesses   []string            `json:"chronic_illnesses"`
	Allergies          []string            `json:"allergies"`
	PastSurgeries      []models.Surgery    `json:"past_surgeries"`
	CurrentMedications []models.Medication `json:"current_medications"`
	BloodType          string              `json:"blood_type" example:"O+"`
	FamilyHistory      map[string]bool     `json:"family_history"`
}

func (f *MedicalHistoryForm) Step() Step { return StepMedicalHistory }

func (f *MedicalHistoryForm) Validate() error { return nil }

func (f *MedicalHistoryForm) toRow(userID uuid.UUID) *models.MedicalHistory {
	surgeries := make([]models.Surgery, 0, len(f.PastSurgeries))
	for _, s := range f.PastSurgeries {
		if s.Name = strings.TrimSpace(s.Name); s.Name != "" {
			s.Year = strings.TrimSpace(s.Year)
			surgeries = append(surgeries, s)
		}
	}
	medications := make([]models.Medication, 0, len(f.CurrentMedications))
	for _, m := range f.CurrentMedications {
		if m.Name = strings.TrimSpace(m.Name); m.Name != "" {
			medications = append(medications, m)
		}
	}
	family := make(map[string]bool, len(f.FamilyHistory))
	for condition, present := range f.FamilyHistory {
		if condition = strings.TrimSpace(condition); condition != "" {
			family[condition] = present
		}
	}

	row := &models.MedicalHistory{
		UserID:             userID,
		ChronicIllnesses:   pq.StringArray(uniqueStrings(f.ChronicIllnesses)),
		Allergies:          pq.StringArray(uniqueStrings(f.Allergies)),
		PastSurgeries:      datatypes.NewJSONSlice(surgeries),
		CurrentMedications: datatypes.NewJSONSlice(medications),
		FamilyHistory:      datatypes.NewJSONType(family),
	}
	if bt := strings.TrimSpace(f.BloodType); bt != "" {
		bloodType := models.BloodType(bt)
		row.BloodType = &bloodType
	}
	return row
}

func medicalHistoryFromRow(h *models.MedicalHistory) *MedicalHistoryForm {
	form := &MedicalHistoryForm{
		ChronicIllnesses:   []string{},
		Allergies:          []string{},
		PastSurgeries:      []models.Surgery{},
		CurrentMedications: []models.Medication{},
		FamilyHistory:      map[string]bool{},
	}
	if h == nil {
		return form
	}
	if h.ChronicIllnesses != nil {
		form.ChronicIllnesses = []string(h.ChronicIllnesses)
	}
	if h.Allergies != nil {
		form.Allergies = []string(h.Allergies)
	}
	if h.PastSurgeries != nil {
		form.PastSurgeries = []models.Surgery(h.PastSurgeries)
	}
	if h.CurrentMedications != nil {
		form.CurrentMedications = []models.Medication(h.CurrentMedications)
	}
	if family := h.FamilyHistory.Data(); family != nil {
		form.FamilyHistory = family
	}
	form.BloodType = string(deref(h.BloodType))
	return form
}

type LifestyleForm struct {
	SmokingStatus string   `json:"smoking_status" example:"never"`
	AlcoholStatus string   `json:"alcohol_status" example:"occasional"`
	ActivityLevel string   `json:"activity_level" example:"moderately_active"`
	DietType      string   `json:"diet_type" example:"vegetarian"`
	SleepHoursAvg *float64 `json:"sleep_hours_avg" example:"7"`
	StressLevel   *int     `json:"stress_level" example:"5"`

	StressLabel string `json:"stress_label,omitempty"`
}

func (f *LifestyleForm) Step() Step { return StepLifestyle }

func (f *LifestyleForm) Validate() error { return nil }

func enumPtr[T ~string](s string) *T {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	v := T(s)
	return &v
}

func (f *LifestyleForm) toRow(userID uuid.UUID) *models.Lifestyle {
	return &models.Lifestyle{
		UserID:        userID,
		SmokingStatus: enumPtr[models.SmokingStatus](f.SmokingStatus),
		AlcoholStatus: enumPtr[models.AlcoholStatus](f.AlcoholStatus),
		ActivityLevel: enumPtr[models.ActivityLevel](f.ActivityLevel),
		DietType:      enumPtr[models.DietType](f.DietType),
		SleepHoursAvg: f.SleepHoursAvg,
		StressLevel:   f.StressLevel,
	}
}

func lifestyleFromRow(l *models.Lifestyle) *LifestyleForm {
	sleep, stress := defaultSleepHours, defaultStressLevel
	form := &LifestyleForm{SleepHoursAvg: &sleep, StressLevel: &stress}
	if l != nil {
		form.SmokingStatus = string(deref(l.SmokingStatus))
		form.AlcoholStatus = string(deref(l.AlcoholStatus))
		form.ActivityLevel = string(deref(l.ActivityLevel))
		form.DietType = string(deref(l.DietType))
		if l.SleepHoursAvg != nil {
			form.SleepHoursAvg = l.SleepHoursAvg
		}
		if l.StressLevel != nil {
			form.StressLevel = l.StressLevel
		}
	}
	form.StressLabel = StressLabel(*form.StressLevel)
	return form
}

// VitalsForm is one optional reading. Temperature is in Fahrenheit and blood sugar in mg/dL.
// The same ranges apply to readings logged from the dashboard.
type VitalsForm struct {
	SystolicBP       *int     `json:"systolic_bp" binding:"omitempty,min=50,max=300" example:"120"`
	DiastolicBP      *int     `json:"diastolic_bp" binding:"omitempty,min=30,max=200" example:"80"`
	HeartRate        *int     `json:"heart_rate" binding:"omitempty,min=20,max=250" example:"72"`
	BloodSugar       *float64 `json:"blood_sugar" binding:"omitempty,min=20,max=600" example:"100"`
	Temperature      *float64 `json:"temperature" binding:"omitempty,min=90,max=110" example:"98.6"`
	OxygenSaturation *int     `json:"oxygen_saturation" binding:"omitempty,min=50,max=100" example:"98"`
}

func (f *VitalsForm) Step() Step { return StepVitals }

func (f *VitalsForm) Validate() error {
	if err := binding.Validator.ValidateStruct(f); err != nil {
		return errVitalsOutOfRange
	}
	return nil
}

// toVital reports false when every field is empty; nothing is inserted then.
func (f *VitalsForm) toVital(userID uuid.UUID) (*models.Vital, bool) {
	vital := &models.Vital{
		UserID:           userID,
		SystolicBP:       f.SystolicBP,
		DiastolicBP:      f.DiastolicBP,
		HeartRate:        f.HeartRate,
		BloodSugar:       f.BloodSugar,
		Temperature:      f.Temperature,
		OxygenSaturation: f.OxygenSaturation,
	}
	return vital, vital.HasMeasurement()
}
