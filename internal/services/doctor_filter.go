package services

import (
	"strings"

	"docyo/internal/models"
)

const (
	// AllOption disables the specialty or location predicate.
	AllOption     = "All"
	MaxFeeCeiling = 1000
)

var (
	DoctorSpecialties = []string{
		AllOption,
		"Cardiologist",
		"Dermatologist",
		"Orthopedic Surgeon",
		"General Physician",
		"Neurologist",
	}
	DoctorLocations = []string{AllOption, "New Delhi", "Mumbai", "Bangalore", "Hyderabad", "Chennai"}
	FeeCeilings     = []int{300, 500, 700, MaxFeeCeiling}
)

// DoctorCriteria is the find-doctors filter state. Zero values are not defaults;
// start from DefaultDoctorCriteria.
type DoctorCriteria struct {
	Search     string `form:"search" json:"search"`
	Specialty  string `form:"specialty,default=All" json:"specialty"`
	Location   string `form:"location,default=All" json:"location"`
	MaxFee     int    `form:"max_fee,default=1000" json:"max_fee" binding:"gte=0"`
	OnlineOnly bool   `form:"online_only" json:"online_only"`
}

func DefaultDoctorCriteria() DoctorCriteria {
	return DoctorCriteria{
		Specialty: AllOption,
		Location:  AllOption,
		MaxFee:    MaxFeeCeiling,
	}
}

// Reset clears every filter back to its default.
func (c *DoctorCriteria) Reset() {
	*c = DefaultDoctorCriteria()
}

func (c DoctorCriteria) HasActiveFilters() bool {
	return c.Search != "" ||
		c.Specialty != AllOption ||
		c.Location != AllOption ||
		c.MaxFee < MaxFeeCeiling ||
		c.OnlineOnly
}

// Matches reports whether a doctor passes every active predicate.
func (c DoctorCriteria) Matches(d models.Doctor) bool {
	search := strings.ToLower(c.Search)
	matchesSearch := strings.Contains(strings.ToLower(d.Name), search) ||
		strings.Contains(strings.ToLower(d.Specialty), search)

	matchesSpecialty := c.Specialty == AllOption || d.Specialty == c.Specialty
	matchesLocation := c.Location == AllOption || strings.Contains(d.Location, c.Location)
	matchesFee := d.Fee <= c.MaxFee
	matchesOnline := !c.OnlineOnly || d.OnlineConsultation

	return matchesSearch && matchesSpecialty && matchesLocation && matchesFee && matchesOnline
}

// FilterDoctors returns the doctors matching criteria in catalog order. The input is not modified.
func FilterDoctors(doctors []models.Doctor, criteria DoctorCriteria) []models.Doctor {
	matched := make([]models.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if criteria.Matches(d) {
			matched = append(matched, d)
		}
	}
	return matched
}

// Normalize maps blank specialty or location selections to AllOption.
// The search term is matched as typed, surrounding spaces included.
func (c DoctorCriteria) Normalize() DoctorCriteria {
	if c.Specialty == "" {
		c.Specialty = AllOption
	}
	if c.Location == "" {
		c.Location = AllOption
	}
	return c
}
