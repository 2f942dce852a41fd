package repository

import (
	"context"

	"docyo/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	Upsert(ctx context.Context, doctors []models.Doctor) error
}

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

// FindAll returns the catalog in its canonical order.
func (r *doctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.WithContext(ctx).Order("position ASC").Order("id ASC").Find(&doctors).Error
	return doctors, err
}

// Upsert inserts catalog entries, replacing existing rows with the same id.
func (r *doctorRepository) Upsert(ctx context.Context, doctors []models.Doctor) error {
	for i := range doctors {
		if err := validateRow(&doctors[i]); err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(doctors, 100).Error
}
