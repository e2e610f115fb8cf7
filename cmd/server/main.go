package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/vero/internal/config"
	"github.com/MKhiriev/vero/internal/handler"
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/server"
	"github.com/MKhiriev/vero/internal/service"
	"github.com/MKhiriev/vero/internal/store"
	"github.com/MKhiriev/vero/internal/workers"
	"github.com/MKhiriev/vero/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("vero-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("env", cfg.App.Environment).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("purge_policy", string(cfg.App.PurgePolicy)).
		Bool("media_enabled", cfg.Storage.Media.Enabled()).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(ctx, storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var reporter workers.HealthReporter
	if handlers.GRPC != nil {
		reporter = handlers.GRPC
	}
	ws := workers.NewWorkers(services, reporter, cfg.Workers, log)

	srv, err := server.NewServer(handlers, ws, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
