package store

import (
	"context"

	"github.com/MKhiriev/pizza-specials/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SpecialsRepository is the catalog of pizza specials.
//
// Every operation is atomic with respect to the others: concurrent callers
// never observe a partially applied change.
type SpecialsRepository interface {
	// ListAll returns every special in insertion order. The returned slice is
	// a copy and may be modified by the caller.
	ListAll(ctx context.Context) ([]models.PizzaSpecial, error)

	// GetByID returns the special with the given id or [ErrSpecialNotFound].
	GetByID(ctx context.Context, id uuid.UUID) (models.PizzaSpecial, error)

	// Add appends special to the catalog. It returns
	// [ErrSpecialAlreadyExists] if a special with the same id is present.
	Add(ctx context.Context, special models.PizzaSpecial) error

	// Update replaces the stored special that has the same id, keeping its
	// position in the catalog. It returns [ErrSpecialNotFound] if absent.
	Update(ctx context.Context, special models.PizzaSpecial) error

	// Remove deletes the special with the given id or returns
	// [ErrSpecialNotFound].
	Remove(ctx context.Context, id uuid.UUID) error

	// Count returns the number of specials in the catalog.
	Count(ctx context.Context) (int, error)
}

// IDGenerator produces identifiers for new specials.
type IDGenerator interface {
	Generate() uuid.UUID
}
