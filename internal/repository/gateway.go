package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	apperrors "docyo/internal/errors"
	"docyo/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a user-scoped row or catalog entry does not exist.
var ErrNotFound = errors.New("record not found")

// Gateway bundles the per-collection repositories the services consume.
type Gateway struct {
	Profiles         ProfileRepository
	MedicalHistories MedicalHistoryRepository
	Lifestyles       LifestyleRepository
	Vitals           VitalRepository
	Doctors          DoctorRepository

	Tx Transactor
}

// Transactor runs fn with a Gateway whose repositories share one database transaction.
// Returning an error from fn rolls every write back.
type Transactor interface {
	Transaction(ctx context.Context, fn func(tx *Gateway) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

func (t gormTransactor) Transaction(ctx context.Context, fn func(tx *Gateway) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGateway(tx))
	})
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{
		Profiles:         NewProfileRepository(db),
		MedicalHistories: NewMedicalHistoryRepository(db),
		Lifestyles:       NewLifestyleRepository(db),
		Vitals:           NewVitalRepository(db),
		Doctors:          NewDoctorRepository(db),
		Tx:               gormTransactor{db: db},
	}
}

// Transaction runs fn atomically. A Gateway without a Transactor runs fn directly.
func (g *Gateway) Transaction(ctx context.Context, fn func(tx *Gateway) error) error {
	if g.Tx == nil {
		return fn(g)
	}
	return g.Tx.Transaction(ctx, fn)
}

func translate(err error, collection string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", collection, ErrNotFound)
	}
	return err
}

func validateRow(row models.Validator) error {
	if err := row.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}

// validatePatch checks every enum-like value of a column patch before it reaches the database.
func validatePatch(patch map[string]interface{}) error {
	for column, value := range patch {
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.Ptr && rv.IsNil() {
			continue
		}
		v, ok := value.(models.Validator)
		if !ok {
			continue
		}
		if err := v.Validate(); err != nil {
			return apperrors.NewValidationError(err.Error()).WithContext("column", column)
		}
	}
	return nil
}
