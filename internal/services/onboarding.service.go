package services

import (
	"context"
	"errors"

	apperrors "docyo/internal/errors"
	"docyo/internal/logger"
	"docyo/internal/models"
	"docyo/internal/repository"

	"github.com/google/uuid"
)

const (
	DashboardPath  = "/dashboard"
	OnboardingPath = "/onboarding"
)

// StepResult is what the client should render after a successful save.
type StepResult struct {
	Step       Step    `json:"current_step"`
	Completed  bool    `json:"completed"`
	Progress   float64 `json:"progress"`
	RedirectTo string  `json:"redirect_to,omitempty"`
}

type OnboardingService struct {
	gateway *repository.Gateway
}

func NewOnboardingService(gateway *repository.Gateway) *OnboardingService {
	return &OnboardingService{gateway: gateway}
}

// Resume loads the user's persisted position, provisioning the per-user rows on first visit.
// A user who already finished onboarding gets a redirect error to the dashboard.
func (s *OnboardingService) Resume(ctx context.Context, userID uuid.UUID) (*Wizard, error) {
	profile, err := s.ensureRecords(ctx, userID)
	if err != nil {
		return nil, err
	}

	if profile.OnboardingCompleted {
		return &Wizard{UserID: userID, Current: StepVitals, Completed: true},
			apperrors.NewRedirectError(DashboardPath, "Onboarding already completed")
	}

	return &Wizard{UserID: userID, Current: ClampStep(profile.OnboardingStep)}, nil
}

func (s *OnboardingService) ensureRecords(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.gateway.Profiles.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		profile = &models.Profile{UserID: userID, OnboardingStep: models.FirstOnboardingStep}
		err = s.gateway.Profiles.Create(ctx, profile)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err, "Error loading profile")
	}

	if _, err := s.gateway.MedicalHistories.FindByUserID(ctx, userID); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewDatabaseError(err, "Error loading medical history")
		}
		if err := s.gateway.MedicalHistories.Create(ctx, &models.MedicalHistory{UserID: userID}); err != nil {
			return nil, apperrors.NewDatabaseError(err, "Error loading medical history")
		}
	}

	if _, err := s.gateway.Lifestyles.FindByUserID(ctx, userID); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewDatabaseError(err, "Error loading lifestyle info")
		}
		if err := s.gateway.Lifestyles.Create(ctx, &models.Lifestyle{UserID: userID}); err != nil {
			return nil, apperrors.NewDatabaseError(err, "Error loading lifestyle info")
		}
	}

	return profile, nil
}

func (s *OnboardingService) checkReachable(w *Wizard, step Step) error {
	if !step.Valid() {
		return apperrors.NewValidationError("Unknown onboarding step").WithContext("step", int(step))
	}
	if step > w.Current {
		return apperrors.NewValidationError("Complete the previous steps first").
			WithContext("step", int(step)).
			WithContext("current_step", int(w.Current))
	}
	return nil
}

// Load returns the stored field state for step. Missing rows yield empty forms.
func (s *OnboardingService) Load(ctx context.Context, w *Wizard, step Step) (StepForm, error) {
	if err := s.checkReachable(w, step); err != nil {
		return nil, err
	}

	switch step {
	case StepPersonalInfo:
		profile, err := s.gateway.Profiles.FindByUserID(ctx, w.UserID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewDatabaseError(err, "Error loading profile")
		}
		return personalInfoFromProfile(profile), nil
	case StepMedicalHistory:
		history, err := s.gateway.MedicalHistories.FindByUserID(ctx, w.UserID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewDatabaseError(err, "Error loading medical history")
		}
		return medicalHistoryFromRow(history), nil
	case StepLifestyle:
		lifestyle, err := s.gateway.Lifestyles.FindByUserID(ctx, w.UserID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewDatabaseError(err, "Error loading lifestyle info")
		}
		return lifestyleFromRow(lifestyle), nil
	default:
		return &VitalsForm{}, nil
	}
}

// Save persists form and advances w. On any failure w is left untouched.
func (s *OnboardingService) Save(ctx context.Context, w *Wizard, form StepForm) (*StepResult, error) {
	if w.Completed {
		return nil, apperrors.NewRedirectError(DashboardPath, "Onboarding already completed")
	}

	step := form.Step()
	if err := s.checkReachable(w, step); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error()).WithContext("step", int(step))
	}

	var err error
	switch f := form.(type) {
	case *PersonalInfoForm:
		err = s.savePersonalInfo(ctx, w.UserID, f)
	case *MedicalHistoryForm:
		err = s.saveMedicalHistory(ctx, w.UserID, f)
	case *LifestyleForm:
		err = s.saveLifestyle(ctx, w.UserID, f)
	case *VitalsForm:
		err = s.saveVitals(ctx, w.UserID, f)
	default:
		err = apperrors.NewValidationError("Unknown onboarding form")
	}
	if err != nil {
		return nil, err
	}

	w.advance(step)
	logger.Info("Onboarding step saved",
		"user_id", w.UserID.String(),
		"step", int(step),
		"completed", w.Completed,
	)

	result := &StepResult{Step: w.Current, Completed: w.Completed, Progress: w.Progress()}
	if w.Completed {
		result.RedirectTo = DashboardPath
	}
	return result, nil
}

// Back steps the wizard one page back. Nothing is persisted.
func (s *OnboardingService) Back(w *Wizard) *StepResult {
	w.Back()
	return &StepResult{Step: w.Current, Completed: w.Completed, Progress: w.Progress()}
}

// saveError keeps validation errors raised at the gateway boundary and wraps everything else.
func saveError(err error, message string) error {
	if apperrors.TypeOf(err) == apperrors.ErrorTypeValidation {
		return err
	}
	return apperrors.NewDatabaseError(err, message)
}

func (s *OnboardingService) savePersonalInfo(ctx context.Context, userID uuid.UUID, f *PersonalInfoForm) error {
	patch := f.patch()
	patch["onboarding_step"] = int(StepMedicalHistory)
	if err := s.gateway.Profiles.Patch(ctx, userID, patch); err != nil {
		return saveError(err, "Error saving profile")
	}
	return nil
}

func (s *OnboardingService) saveMedicalHistory(ctx context.Context, userID uuid.UUID, f *MedicalHistoryForm) error {
	if err := s.gateway.MedicalHistories.Update(ctx, f.toRow(userID)); err != nil {
		return saveError(err, "Error saving medical history")
	}
	if err := s.gateway.Profiles.Patch(ctx, userID, map[string]interface{}{"onboarding_step": int(StepLifestyle)}); err != nil {
		return saveError(err, "Error saving medical history")
	}
	return nil
}

func (s *OnboardingService) saveLifestyle(ctx context.Context, userID uuid.UUID, f *LifestyleForm) error {
	if err := s.gateway.Lifestyles.Update(ctx, f.toRow(userID)); err != nil {
		return saveError(err, "Error saving lifestyle info")
	}
	if err := s.gateway.Profiles.Patch(ctx, userID, map[string]interface{}{"onboarding_step": int(StepVitals)}); err != nil {
		return saveError(err, "Error saving lifestyle info")
	}
	return nil
}

// saveVitals inserts the optional reading and marks onboarding complete in one transaction.
// A failed completion rolls the reading back.
func (s *OnboardingService) saveVitals(ctx context.Context, userID uuid.UUID, f *VitalsForm) error {
	message := "Error saving vitals"
	err := s.gateway.Transaction(ctx, func(tx *repository.Gateway) error {
		if vital, ok := f.toVital(userID); ok {
			if err := tx.Vitals.Create(ctx, vital); err != nil {
				return err
			}
		}
		message = "Error completing onboarding"
		return tx.Profiles.Patch(ctx, userID, map[string]interface{}{
			"onboarding_step":      int(StepVitals),
			"onboarding_completed": true,
		})
	})
	if err != nil {
		return saveError(err, message)
	}
	return nil
}
