package services

import (
	"docyo/internal/models"

	"github.com/google/uuid"
)

// Step is one page of the four-stage onboarding wizard.
type Step int

const (
	StepPersonalInfo Step = iota + 1
	StepMedicalHistory
	StepLifestyle
	StepVitals
)

type StepInfo struct {
	ID          Step   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var OnboardingSteps = []StepInfo{
	{StepPersonalInfo, "Personal Info", "Basic details & measurements"},
	{StepMedicalHistory, "Medical History", "Conditions & medications"},
	{StepLifestyle, "Lifestyle", "Habits & activity level"},
	{StepVitals, "Vitals", "Current health metrics"},
}

func (s Step) Valid() bool {
	return s >= StepPersonalInfo && s <= StepVitals
}

// ClampStep maps a persisted step number into the wizard's range.
func ClampStep(n int) Step {
	switch {
	case n < models.FirstOnboardingStep:
		return StepPersonalInfo
	case n > models.LastOnboardingStep:
		return StepVitals
	default:
		return Step(n)
	}
}

// Wizard is the per-user onboarding position. It is passed explicitly to every transition.
type Wizard struct {
	UserID    uuid.UUID `json:"-"`
	Current   Step      `json:"current_step"`
	Completed bool      `json:"completed"`
}

// Back moves one step backwards without saving anything.
func (w *Wizard) Back() Step {
	if w.Current > StepPersonalInfo {
		w.Current--
	}
	return w.Current
}

// Progress is the share of steps reached, as shown by the progress bar.
func (w *Wizard) Progress() float64 {
	if w.Completed {
		return 100
	}
	return float64(w.Current) / float64(len(OnboardingSteps)) * 100
}

// advance records a successful save of step.
func (w *Wizard) advance(step Step) {
	if step == StepVitals {
		w.Current = StepVitals
		w.Completed = true
		return
	}
	w.Current = step + 1
}
