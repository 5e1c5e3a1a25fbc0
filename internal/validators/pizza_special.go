package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/pizza-specials/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the identifier of a stored special.
	FieldID = "id"

	// FieldName targets the display name. Empty or whitespace-only names are rejected.
	FieldName = "name"

	// FieldBasePrice targets the base price, accepted within
	// [models.MinBasePrice, models.MaxBasePrice].
	FieldBasePrice = "base_price"
)

// PizzaSpecialValidator enforces the catalog rules for create and update
// requests as well as for stored specials.
type PizzaSpecialValidator struct {
}

func NewPizzaSpecialValidator() Validator {
	return &PizzaSpecialValidator{}
}

// Validate checks obj, which must be a [models.CreateRequest],
// [models.UpdateRequest] or [models.PizzaSpecial] (value or pointer).
// Without fields every rule for the type is applied.
func (v *PizzaSpecialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateRequest:
		return v.validateBody(value.Name, value.BasePrice, fields...)
	case *models.CreateRequest:
		return v.validateBody(value.Name, value.BasePrice, fields...)

	case models.UpdateRequest:
		return v.validateBody(value.Name, value.BasePrice, fields...)
	case *models.UpdateRequest:
		return v.validateBody(value.Name, value.BasePrice, fields...)

	case models.PizzaSpecial:
		return v.validatePizzaSpecial(value, fields...)
	case *models.PizzaSpecial:
		return v.validatePizzaSpecial(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PizzaSpecialValidator) validateBody(name string, basePrice decimal.Decimal, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldBasePrice}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !isValidName(name) {
				return ErrEmptyName
			}
		case FieldBasePrice:
			if !isValidBasePrice(basePrice) {
				return ErrBasePriceOutOfRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PizzaSpecialValidator) validatePizzaSpecial(special models.PizzaSpecial, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldBasePrice}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if special.ID == uuid.Nil {
				return ErrEmptyID
			}
		case FieldName, FieldBasePrice:
			if err := v.validateBody(special.Name, special.BasePrice, f); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidBasePrice(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(models.MinBasePrice) && price.LessThanOrEqual(models.MaxBasePrice)
}
