// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/pizza-specials/internal/logger"
	"github.com/MKhiriev/pizza-specials/models"
	"github.com/google/uuid"
)

// inMemorySpecialsRepository is the process-local implementation of
// [SpecialsRepository]. The catalog lives in a slice that keeps insertion
// order; mu is held for the whole of every operation.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that catalog changes are traced with the
// request's trace id.
type inMemorySpecialsRepository struct {
	mu       sync.Mutex
	specials []models.PizzaSpecial
}

// NewInMemorySpecialsRepository constructs an empty catalog pre-filled with
// seed. Seed entries with duplicate or zero ids are skipped.
func NewInMemorySpecialsRepository(seed ...models.PizzaSpecial) SpecialsRepository {
	repo := &inMemorySpecialsRepository{
		specials: make([]models.PizzaSpecial, 0, len(seed)),
	}

	for _, special := range seed {
		if special.ID == uuid.Nil || repo.indexOf(special.ID) >= 0 {
			continue
		}
		repo.specials = append(repo.specials, special)
	}

	return repo
}

func (r *inMemorySpecialsRepository) ListAll(ctx context.Context) ([]models.PizzaSpecial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.specials), nil
}

func (r *inMemorySpecialsRepository) GetByID(ctx context.Context, id uuid.UUID) (models.PizzaSpecial, error) {
	if id == uuid.Nil {
		return models.PizzaSpecial{}, ErrSpecialNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.PizzaSpecial{}, fmt.Errorf("%w: id %s", ErrSpecialNotFound, id)
	}

	return r.specials[i], nil
}

func (r *inMemorySpecialsRepository) Add(ctx context.Context, special models.PizzaSpecial) error {
	log := logger.FromContext(ctx)

	if special.ID == uuid.Nil {
		return ErrEmptySpecialID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(special.ID) >= 0 {
		log.Error().
			Str("func", "inMemorySpecialsRepository.Add").
			Stringer("special_id", special.ID).
			Msg("special with the same id already exists")
		return fmt.Errorf("%w: id %s", ErrSpecialAlreadyExists, special.ID)
	}

	r.specials = append(r.specials, special)
	log.Debug().
		Str("func", "inMemorySpecialsRepository.Add").
		Stringer("special_id", special.ID).
		Int("catalog_size", len(r.specials)).
		Msg("special added")

	return nil
}

func (r *inMemorySpecialsRepository) Update(ctx context.Context, special models.PizzaSpecial) error {
	if special.ID == uuid.Nil {
		return ErrSpecialNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(special.ID)
	if i < 0 {
		return fmt.Errorf("%w: id %s", ErrSpecialNotFound, special.ID)
	}

	r.specials[i] = special
	logger.FromContext(ctx).Debug().
		Str("func", "inMemorySpecialsRepository.Update").
		Stringer("special_id", special.ID).
		Msg("special updated")

	return nil
}

func (r *inMemorySpecialsRepository) Remove(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrSpecialNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: id %s", ErrSpecialNotFound, id)
	}

	r.specials = slices.Delete(r.specials, i, i+1)
	logger.FromContext(ctx).Debug().
		Str("func", "inMemorySpecialsRepository.Remove").
		Stringer("special_id", id).
		Int("catalog_size", len(r.specials)).
		Msg("special removed")

	return nil
}

func (r *inMemorySpecialsRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.specials), nil
}

// indexOf returns the position of the special with id or -1.
// The caller must hold mu.
func (r *inMemorySpecialsRepository) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(r.specials, func(s models.PizzaSpecial) bool {
		return s.ID == id
	})
}
