package repository

import (
	"context"
	"fmt"

	"docyo/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalHistoryRepository interface {
	Create(ctx context.Context, history *models.MedicalHistory) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.MedicalHistory, error)
	Update(ctx context.Context, history *models.MedicalHistory) error
}

type medicalHistoryRepository struct {
	db *gorm.DB
}

func NewMedicalHistoryRepository(db *gorm.DB) MedicalHistoryRepository {
	return &medicalHistoryRepository{db: db}
}

var medicalHistoryColumns = []string{
	"chronic_illnesses", "allergies", "past_surgeries", "current_medications", "blood_type", "family_history",
}

func (r *medicalHistoryRepository) Create(ctx context.Context, history *models.MedicalHistory) error {
	if err := validateRow(history); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(history).Error
}

func (r *medicalHistoryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.MedicalHistory, error) {
	var history models.MedicalHistory
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&history).Error
	if err != nil {
		return nil, translate(err, "medical history")
	}
	return &history, nil
}

// Update overwrites every editable column of the user's row, including empty ones.
func (r *medicalHistoryRepository) Update(ctx context.Context, history *models.MedicalHistory) error {
	if err := validateRow(history); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&models.MedicalHistory{}).
		Where("user_id = ?", history.UserID).
		Select(medicalHistoryColumns).
		Updates(history)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("medical history: %w", ErrNotFound)
	}
	return nil
}
