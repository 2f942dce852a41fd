package mocks

import (
	"context"
	"time"

	"docyo/internal/models"
	"docyo/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Shared MockProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Patch(ctx context.Context, userID uuid.UUID, data map[string]interface{}) error {
	args := m.Called(ctx, userID, data)
	return args.Error(0)
}

// Shared MockMedicalHistoryRepository
type MockMedicalHistoryRepository struct {
	mock.Mock
}

func (m *MockMedicalHistoryRepository) Create(ctx context.Context, history *models.MedicalHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *MockMedicalHistoryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.MedicalHistory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MedicalHistory), args.Error(1)
}

func (m *MockMedicalHistoryRepository) Update(ctx context.Context, history *models.MedicalHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

// Shared MockLifestyleRepository
type MockLifestyleRepository struct {
	mock.Mock
}

func (m *MockLifestyleRepository) Create(ctx context.Context, lifestyle *models.Lifestyle) error {
	args := m.Called(ctx, lifestyle)
	return args.Error(0)
}

func (m *MockLifestyleRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Lifestyle, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lifestyle), args.Error(1)
}

func (m *MockLifestyleRepository) Update(ctx context.Context, lifestyle *models.Lifestyle) error {
	args := m.Called(ctx, lifestyle)
	return args.Error(0)
}

// Shared MockVitalRepository
type MockVitalRepository struct {
	mock.Mock
}

func (m *MockVitalRepository) Create(ctx context.Context, vital *models.Vital) error {
	args := m.Called(ctx, vital)
	return args.Error(0)
}

func (m *MockVitalRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.Vital, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vital), args.Error(1)
}

// Shared MockDoctorRepository
type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Upsert(ctx context.Context, doctors []models.Doctor) error {
	args := m.Called(ctx, doctors)
	return args.Error(0)
}

// MockCatalogCache stands in for the redis doctor catalog snapshot.
type MockCatalogCache struct {
	mock.Mock
}

func (m *MockCatalogCache) GetDoctorCatalog(ctx context.Context) ([]models.Doctor, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]models.Doctor), args.Bool(1), args.Error(2)
}

func (m *MockCatalogCache) StoreDoctorCatalog(ctx context.Context, doctors []models.Doctor, ttl time.Duration) error {
	args := m.Called(ctx, doctors, ttl)
	return args.Error(0)
}

// MockTransactor runs fn against Gateway; a failing fn is returned as the rollback error.
type MockTransactor struct {
	mock.Mock
	Gateway *repository.Gateway
}

func (m *MockTransactor) Transaction(ctx context.Context, fn func(tx *repository.Gateway) error) error {
	m.Called(ctx)
	return fn(m.Gateway)
}
