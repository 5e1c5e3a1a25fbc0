package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/pizza-specials/internal/adapter"
	"github.com/MKhiriev/pizza-specials/internal/config"
	"github.com/MKhiriev/pizza-specials/internal/logger"
	"github.com/MKhiriev/pizza-specials/internal/service"
	"github.com/MKhiriev/pizza-specials/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.NewLogger("pizza-specials-client",
		logger.WithLevel(cfg.Log.Level),
		logger.WithOutput(os.Stderr),
	)

	specials, err := adapter.NewHTTPSpecialsAdapter(cfg.Adapter.HTTPAddress, cfg.Adapter.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}
	specials.SetToken(cfg.Adapter.Token)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli{
		specials:  specials,
		auth:      service.NewAuthService(cfg.App, log),
		buildInfo: models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit)),
		out:       os.Stdout,
	}

	if err = app.run(ctx, args); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
