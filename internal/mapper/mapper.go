// Package mapper converts between the API contracts and the catalog entity.
//
// Identifiers are issued here and nowhere else: a create request never
// carries an id, and [Mapper.ApplyUpdate] always keeps the stored one.
package mapper

import (
	"github.com/MKhiriev/pizza-specials/internal/store"
	"github.com/MKhiriev/pizza-specials/models"
)

// Mapper converts request contracts into entities and entities into
// response contracts. It holds no state besides its generator.
type Mapper struct {
	generator store.IDGenerator
}

func NewMapper(generator store.IDGenerator) *Mapper {
	return &Mapper{generator: generator}
}

// ToEntity builds a new special from req with a freshly generated id.
func (m *Mapper) ToEntity(req models.CreateRequest) models.PizzaSpecial {
	return models.PizzaSpecial{
		ID:          m.generator.Generate(),
		Name:        req.Name,
		BasePrice:   req.BasePrice,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
}

// ToResponse shapes special as the body of a 201 Created answer.
func (m *Mapper) ToResponse(special models.PizzaSpecial) models.CreatedResponse {
	return models.CreatedResponse{
		ID:          special.ID,
		Name:        special.Name,
		BasePrice:   special.FormattedBasePrice(),
		Description: special.Description,
		ImageURL:    special.ImageURL,
	}
}

// ApplyUpdate returns a copy of special with every mutable field taken from req.
func (m *Mapper) ApplyUpdate(special models.PizzaSpecial, req models.UpdateRequest) models.PizzaSpecial {
	special.Name = req.Name
	special.BasePrice = req.BasePrice
	special.Description = req.Description
	special.ImageURL = req.ImageURL

	return special
}
