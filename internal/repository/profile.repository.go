package repository

import (
	"context"
	"fmt"

	"docyo/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Patch(ctx context.Context, userID uuid.UUID, data map[string]interface{}) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := validateRow(profile); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, translate(err, "profile")
	}
	return &profile, nil
}

// Patch updates the given columns in place; nil values are written as NULL.
func (r *profileRepository) Patch(ctx context.Context, userID uuid.UUID, data map[string]interface{}) error {
	if err := validatePatch(data); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&models.Profile{}).Where("user_id = ?", userID).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("profile: %w", ErrNotFound)
	}
	return nil
}
