package store

import (
	"github.com/MKhiriev/pizza-specials/internal/logger"
	"github.com/MKhiriev/pizza-specials/models"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	SpecialsRepository SpecialsRepository
}

// NewStorages builds the in-memory storages, pre-filled with seed.
func NewStorages(logger *logger.Logger, seed ...models.PizzaSpecial) *Storages {
	logger.Info().Int("seed_size", len(seed)).Msg("creating new storages...")

	return &Storages{
		SpecialsRepository: NewInMemorySpecialsRepository(seed...),
	}
}
