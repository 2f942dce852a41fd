package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"docyo/internal/models"
	"docyo/internal/repository/mocks"
	"docyo/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDoctorCatalogSeed(t *testing.T) {
	doctors := utils.DoctorCatalogSeed()

	assert.Len(t, doctors, 5)
	seen := map[string]bool{}
	for _, d := range doctors {
		assert.NoError(t, d.Validate(), d.Name)
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
	}
}

func TestSeedDoctors(t *testing.T) {
	t.Run("positions follow slice order", func(t *testing.T) {
		repo := new(mocks.MockDoctorRepository)
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(doctors []models.Doctor) bool {
			for i, d := range doctors {
				if d.Position != i+1 {
					return false
				}
			}
			return len(doctors) == 5
		})).Return(nil).Once()

		assert.NoError(t, utils.SeedDoctors(context.Background(), repo, utils.DoctorCatalogSeed()))
		repo.AssertExpectations(t)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(mocks.MockDoctorRepository)
		repo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("database error"))

		err := utils.SeedDoctors(context.Background(), repo, utils.DoctorCatalogSeed())
		assert.ErrorContains(t, err, "failed to seed doctors")
	})
}

func TestSeedPatient(t *testing.T) {
	repo := new(mocks.MockProfileRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Profile) bool {
		return p.UserID != uuid.Nil && p.Email != nil && *p.Email == "demo@docyo.dev"
	})).Return(nil).Once()

	profile, err := utils.SeedPatient(context.Background(), repo, "demo@docyo.dev")

	assert.NoError(t, err)
	assert.Equal(t, models.FirstOnboardingStep, profile.OnboardingStep)
	repo.AssertExpectations(t)
}

func TestGenerateSessionToken(t *testing.T) {
	userID := uuid.New()

	signed, err := utils.GenerateSessionToken("secret", userID, time.Hour)
	assert.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)

	_, err = utils.GenerateSessionToken("", userID, time.Hour)
	assert.Error(t, err)
}
