package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/MKhiriev/pizza-specials/internal/config"
	"github.com/MKhiriev/pizza-specials/internal/handler"
	"github.com/MKhiriev/pizza-specials/internal/logger"
	"github.com/MKhiriev/pizza-specials/internal/server"
	"github.com/MKhiriev/pizza-specials/internal/service"
	"github.com/MKhiriev/pizza-specials/internal/store"
	"github.com/MKhiriev/pizza-specials/internal/utils"
	"github.com/MKhiriev/pizza-specials/models"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("error loading .env file: %v\n", err)
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("pizza-specials-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("pizza-specials-server",
		logger.WithLevel(cfg.Log.Level),
		logger.WithFile(cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays),
	)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("version", cfg.App.Version).
		Bool("metrics", !cfg.Server.DisableMetrics).
		Msg("received configs")

	storages := store.NewStorages(log, store.SeedSpecials(utils.NewUUIDGenerator())...)

	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
