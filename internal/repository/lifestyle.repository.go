package repository

import (
	"context"
	"fmt"

	"docyo/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LifestyleRepository interface {
	Create(ctx context.Context, lifestyle *models.Lifestyle) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Lifestyle, error)
	Update(ctx context.Context, lifestyle *models.Lifestyle) error
}

type lifestyleRepository struct {
	db *gorm.DB
}

func NewLifestyleRepository(db *gorm.DB) LifestyleRepository {
	return &lifestyleRepository{db: db}
}

var lifestyleColumns = []string{
	"smoking_status", "alcohol_status", "activity_level", "diet_type", "sleep_hours_avg", "stress_level",
}

func (r *lifestyleRepository) Create(ctx context.Context, lifestyle *models.Lifestyle) error {
	if err := validateRow(lifestyle); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(lifestyle).Error
}

func (r *lifestyleRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Lifestyle, error) {
	var lifestyle models.Lifestyle
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&lifestyle).Error
	if err != nil {
		return nil, translate(err, "lifestyle")
	}
	return &lifestyle, nil
}

func (r *lifestyleRepository) Update(ctx context.Context, lifestyle *models.Lifestyle) error {
	if err := validateRow(lifestyle); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&models.Lifestyle{}).
		Where("user_id = ?", lifestyle.UserID).
		Select(lifestyleColumns).
		Updates(lifestyle)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("lifestyle: %w", ErrNotFound)
	}
	return nil
}
