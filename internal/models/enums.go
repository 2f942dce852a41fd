package models

import "fmt"

// Validator is implemented by values that are checked at the data-access boundary.
type Validator interface {
	Validate() error
}

type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay}

type SmokingStatus string

const (
	SmokingNever      SmokingStatus = "never"
	SmokingFormer     SmokingStatus = "former"
	SmokingCurrent    SmokingStatus = "current"
	SmokingOccasional SmokingStatus = "occasional"
)

var SmokingStatuses = []SmokingStatus{SmokingNever, SmokingFormer, SmokingCurrent, SmokingOccasional}

type AlcoholStatus string

const (
	AlcoholNever      AlcoholStatus = "never"
	AlcoholOccasional AlcoholStatus = "occasional"
	AlcoholModerate   AlcoholStatus = "moderate"
	AlcoholHeavy      AlcoholStatus = "heavy"
)

var AlcoholStatuses = []AlcoholStatus{AlcoholNever, AlcoholOccasional, AlcoholModerate, AlcoholHeavy}

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

var ActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive, ActivityVeryActive, ActivityExtremelyActive,
}

type DietType string

const (
	DietOmnivore    DietType = "omnivore"
	DietVegetarian  DietType = "vegetarian"
	DietVegan       DietType = "vegan"
	DietPescatarian DietType = "pescatarian"
	DietKeto        DietType = "keto"
	DietPaleo       DietType = "paleo"
	DietOther       DietType = "other"
)

var DietTypes = []DietType{DietOmnivore, DietVegetarian, DietVegan, DietPescatarian, DietKeto, DietPaleo, DietOther}

type BloodType string

var BloodTypes = []BloodType{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func oneOf[T ~string](kind string, v T, allowed []T) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q", kind, string(v))
}

func (g Gender) Validate() error        { return oneOf("gender", g, Genders) }
func (s SmokingStatus) Validate() error { return oneOf("smoking status", s, SmokingStatuses) }
func (a AlcoholStatus) Validate() error { return oneOf("alcohol status", a, AlcoholStatuses) }
func (a ActivityLevel) Validate() error { return oneOf("activity level", a, ActivityLevels) }
func (d DietType) Validate() error      { return oneOf("diet type", d, DietTypes) }
func (b BloodType) Validate() error     { return oneOf("blood type", b, BloodTypes) }
