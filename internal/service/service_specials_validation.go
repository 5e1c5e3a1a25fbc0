package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pizza-specials/internal/validators"
	"github.com/MKhiriev/pizza-specials/models"
	"github.com/google/uuid"
)

// SpecialsValidationService validates request bodies before they reach the
// wrapped [SpecialsService]. A rejected body never reaches the catalog.
type SpecialsValidationService struct {
	inner     SpecialsService
	validator validators.Validator
}

func NewSpecialsValidationService() SpecialsServiceWrapper {
	return &SpecialsValidationService{
		validator: validators.NewPizzaSpecialValidator(),
	}
}

func (v *SpecialsValidationService) ListSpecials(ctx context.Context) ([]models.PizzaSpecial, error) {
	return v.inner.ListSpecials(ctx)
}

func (v *SpecialsValidationService) GetSpecial(ctx context.Context, id uuid.UUID) (models.PizzaSpecial, error) {
	return v.inner.GetSpecial(ctx, id)
}

func (v *SpecialsValidationService) CreateSpecial(ctx context.Context, req models.CreateRequest) (models.PizzaSpecial, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PizzaSpecial{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return v.inner.CreateSpecial(ctx, req)
}

func (v *SpecialsValidationService) UpdateSpecial(ctx context.Context, id uuid.UUID, req models.UpdateRequest) (models.PizzaSpecial, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PizzaSpecial{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return v.inner.UpdateSpecial(ctx, id, req)
}

func (v *SpecialsValidationService) DeleteSpecial(ctx context.Context, id uuid.UUID) error {
	return v.inner.DeleteSpecial(ctx, id)
}

func (v *SpecialsValidationService) CountSpecials(ctx context.Context) (int, error) {
	return v.inner.CountSpecials(ctx)
}

func (v *SpecialsValidationService) Wrap(wrapped SpecialsService) SpecialsService {
	v.inner = wrapped
	return v
}
