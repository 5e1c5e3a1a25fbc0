// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pizza-specials/internal/logger"
	"github.com/MKhiriev/pizza-specials/internal/mapper"
	"github.com/MKhiriev/pizza-specials/internal/store"
	"github.com/MKhiriev/pizza-specials/internal/validators"
	"github.com/MKhiriev/pizza-specials/models"
	"github.com/google/uuid"
)

// specialsService is the core implementation of [SpecialsService].
// It converts contracts through the mapper and delegates persistence to
// the catalog repository. Request bodies are expected to be validated
// already (see [SpecialsValidationService]); the entity about to be stored
// is checked once more, id included.
type specialsService struct {
	repository store.SpecialsRepository
	mapper     *mapper.Mapper
	validator  validators.Validator

	logger *logger.Logger
}

func NewSpecialsService(repository store.SpecialsRepository, mapper *mapper.Mapper, logger *logger.Logger) SpecialsService {
	return &specialsService{
		repository: repository,
		mapper:     mapper,
		validator:  validators.NewPizzaSpecialValidator(),
		logger:     logger,
	}
}

func (s *specialsService) ListSpecials(ctx context.Context) ([]models.PizzaSpecial, error) {
	specials, err := s.repository.ListAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "specialsService.ListSpecials").Msg("listing specials failed")
		return nil, fmt.Errorf("listing specials failed: %w", err)
	}

	return specials, nil
}

// GetSpecial returns the special with id. The zero id is reported as
// [store.ErrSpecialNotFound] without querying the repository.
func (s *specialsService) GetSpecial(ctx context.Context, id uuid.UUID) (models.PizzaSpecial, error) {
	if id == uuid.Nil {
		return models.PizzaSpecial{}, store.ErrSpecialNotFound
	}

	special, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return models.PizzaSpecial{}, fmt.Errorf("getting special failed: %w", err)
	}

	return special, nil
}

// CreateSpecial stores a new special built from req under a fresh id.
func (s *specialsService) CreateSpecial(ctx context.Context, req models.CreateRequest) (models.PizzaSpecial, error) {
	log := logger.FromContext(ctx)

	special := s.mapper.ToEntity(req)
	if err := s.validator.Validate(ctx, special); err != nil {
		log.Err(err).Str("func", "specialsService.CreateSpecial").Msg("refusing to store invalid special")
		return models.PizzaSpecial{}, fmt.Errorf("invalid special: %w", err)
	}

	if err := s.repository.Add(ctx, special); err != nil {
		log.Err(err).
			Str("func", "specialsService.CreateSpecial").
			Stringer("special_id", special.ID).
			Msg("adding special failed")
		return models.PizzaSpecial{}, fmt.Errorf("adding special failed: %w", err)
	}

	log.Info().
		Stringer("special_id", special.ID).
		Str("name", special.Name).
		Str("base_price", special.FormattedBasePrice()).
		Msg("special created")

	return special, nil
}

// UpdateSpecial replaces every mutable field of the special with id.
func (s *specialsService) UpdateSpecial(ctx context.Context, id uuid.UUID, req models.UpdateRequest) (models.PizzaSpecial, error) {
	log := logger.FromContext(ctx)

	stored, err := s.GetSpecial(ctx, id)
	if err != nil {
		return models.PizzaSpecial{}, err
	}

	updated := s.mapper.ApplyUpdate(stored, req)
	if err = s.validator.Validate(ctx, updated); err != nil {
		log.Err(err).Str("func", "specialsService.UpdateSpecial").Msg("refusing to store invalid special")
		return models.PizzaSpecial{}, fmt.Errorf("invalid special: %w", err)
	}

	if err = s.repository.Update(ctx, updated); err != nil {
		log.Err(err).
			Str("func", "specialsService.UpdateSpecial").
			Stringer("special_id", id).
			Msg("updating special failed")
		return models.PizzaSpecial{}, fmt.Errorf("updating special failed: %w", err)
	}

	log.Info().Stringer("special_id", id).Msg("special updated")

	return updated, nil
}

// DeleteSpecial removes the special with id. The zero id is reported as
// [store.ErrSpecialNotFound] without touching the repository.
func (s *specialsService) DeleteSpecial(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return store.ErrSpecialNotFound
	}

	if err := s.repository.Remove(ctx, id); err != nil {
		return fmt.Errorf("removing special failed: %w", err)
	}

	logger.FromContext(ctx).Info().Stringer("special_id", id).Msg("special deleted")

	return nil
}

func (s *specialsService) CountSpecials(ctx context.Context) (int, error) {
	return s.repository.Count(ctx)
}
