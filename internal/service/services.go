package service

import (
	"fmt"

	"github.com/MKhiriev/pizza-specials/internal/config"
	"github.com/MKhiriev/pizza-specials/internal/logger"
	"github.com/MKhiriev/pizza-specials/internal/mapper"
	"github.com/MKhiriev/pizza-specials/internal/store"
	"github.com/MKhiriev/pizza-specials/internal/utils"
	"github.com/MKhiriev/pizza-specials/models"
)

type Services struct {
	SpecialsService SpecialsService
	AuthService     AuthService
	AppInfoService  AppInfoService

	// Mapper shapes entities into response contracts for the transport layer.
	Mapper *mapper.Mapper
}

// NewServices wires the service layer on top of storages. The specials
// service is wrapped with request validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	specialsMapper := mapper.NewMapper(utils.NewUUIDGenerator())
	specialsService := NewSpecialsService(storages.SpecialsRepository, specialsMapper, logger)

	return &Services{
		SpecialsService: NewSpecialsValidationService().Wrap(specialsService),
		AuthService:     NewAuthService(cfg.App, logger),
		AppInfoService:  appInfoService,
		Mapper:          specialsMapper,
	}, nil
}
