package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "docyo/internal/errors"
	"docyo/internal/logger"
	"docyo/internal/models"
	"docyo/internal/repository"
)

// CatalogCache stores a snapshot of the doctor catalog outside the process.
type CatalogCache interface {
	GetDoctorCatalog(ctx context.Context) ([]models.Doctor, bool, error)
	StoreDoctorCatalog(ctx context.Context, doctors []models.Doctor, ttl time.Duration) error
}

type DoctorSearchResult struct {
	Doctors          []models.Doctor `json:"doctors"`
	Matched          int             `json:"matched"`
	Total            int             `json:"total"`
	Criteria         DoctorCriteria  `json:"criteria"`
	HasActiveFilters bool            `json:"has_active_filters"`
}

// DoctorCatalog keeps the read-only doctor list resident in memory so searches never do I/O.
type DoctorCatalog struct {
	repo  repository.DoctorRepository
	cache CatalogCache
	ttl   time.Duration

	mu       sync.RWMutex
	doctors  []models.Doctor
	loadedAt time.Time
}

// NewDoctorCatalog creates an empty catalog; cache may be nil.
func NewDoctorCatalog(repo repository.DoctorRepository, cache CatalogCache, ttl time.Duration) *DoctorCatalog {
	return &DoctorCatalog{repo: repo, cache: cache, ttl: ttl}
}

// Load fills the catalog from the cache snapshot, falling back to the database.
func (c *DoctorCatalog) Load(ctx context.Context) error {
	if c.cache != nil {
		doctors, ok, err := c.cache.GetDoctorCatalog(ctx)
		if err != nil {
			logger.Warn("Doctor catalog cache read failed", "error", err)
		} else if ok {
			c.set(doctors)
			logger.Info("Doctor catalog loaded from cache", "doctors", len(doctors))
			return nil
		}
	}
	return c.Reload(ctx)
}

// Reload reads the catalog from the database and re-primes the cache.
func (c *DoctorCatalog) Reload(ctx context.Context) error {
	doctors, err := c.repo.FindAll(ctx)
	if err != nil {
		return apperrors.NewDatabaseError(err, "Failed to load doctor catalog")
	}
	c.set(doctors)
	logger.Info("Doctor catalog loaded from database", "doctors", len(doctors))

	if c.cache != nil {
		if err := c.cache.StoreDoctorCatalog(ctx, doctors, c.ttl); err != nil {
			logger.Warn("Doctor catalog cache write failed", "error", err)
		}
	}
	return nil
}

func (c *DoctorCatalog) set(doctors []models.Doctor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.doctors = doctors
	c.loadedAt = time.Now()
}

// Doctors returns a copy of the resident catalog in catalog order.
func (c *DoctorCatalog) Doctors() []models.Doctor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Doctor, len(c.doctors))
	copy(out, c.doctors)
	return out
}

func (c *DoctorCatalog) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}

func (c *DoctorCatalog) Search(criteria DoctorCriteria) DoctorSearchResult {
	c.mu.RLock()
	matched := FilterDoctors(c.doctors, criteria)
	total := len(c.doctors)
	c.mu.RUnlock()

	logger.Debug("Doctor search", "matched", len(matched), "total", total, "active_filters", criteria.HasActiveFilters())

	return DoctorSearchResult{
		Doctors:          matched,
		Matched:          len(matched),
		Total:            total,
		Criteria:         criteria,
		HasActiveFilters: criteria.HasActiveFilters(),
	}
}

func (c *DoctorCatalog) Find(id string) (*models.Doctor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.doctors {
		if c.doctors[i].ID == id {
			d := c.doctors[i]
			return &d, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("doctor %q", id))
}
