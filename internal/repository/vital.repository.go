package repository

import (
	"context"

	"docyo/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VitalRepository interface {
	Create(ctx context.Context, vital *models.Vital) error
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.Vital, error)
}

type vitalRepository struct {
	db *gorm.DB
}

func NewVitalRepository(db *gorm.DB) VitalRepository {
	return &vitalRepository{db: db}
}

// Create appends a reading; vitals are never updated in place.
func (r *vitalRepository) Create(ctx context.Context, vital *models.Vital) error {
	if err := validateRow(vital); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(vital).Error
}

// ListByUserID returns the newest readings first.
func (r *vitalRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.Vital, error) {
	var vitals []models.Vital
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("recorded_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&vitals).Error
	return vitals, err
}
