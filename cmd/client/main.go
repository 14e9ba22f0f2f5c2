package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-event-gate/internal/adapter"
	"github.com/MKhiriev/go-event-gate/internal/client"
	"github.com/MKhiriev/go-event-gate/internal/config"
	"github.com/MKhiriev/go-event-gate/internal/document/pdfengine"
	"github.com/MKhiriev/go-event-gate/internal/fingerprint"
	"github.com/MKhiriev/go-event-gate/internal/logger"
	"github.com/MKhiriev/go-event-gate/internal/service"
	"github.com/MKhiriev/go-event-gate/internal/store"
	"github.com/MKhiriev/go-event-gate/internal/tui"
	"github.com/MKhiriev/go-event-gate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("go-event-gate", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-event-gate", cfg.App.LogFile)
	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	registrationAdapter, err := adapter.NewHTTPRegistrationAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create registration adapter")
	}
	assets := adapter.NewAssetAdapter(cfg.Adapter.RequestTimeout, log)

	pdfengine.Register(assets, log)

	services := service.NewClientServices(
		storages,
		registrationAdapter,
		assets,
		fingerprint.NewDevice(log),
		cfg.Document,
		log,
	)

	ui, err := tui.New(services, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
