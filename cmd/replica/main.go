package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/icrc7-dapp/internal/codec"
	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/handler"
	"github.com/MKhiriev/icrc7-dapp/internal/handler/http"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/metrics"
	"github.com/MKhiriev/icrc7-dapp/internal/replica"
	"github.com/MKhiriev/icrc7-dapp/internal/server"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
	"github.com/MKhiriev/icrc7-dapp/internal/store"
	"github.com/MKhiriev/icrc7-dapp/internal/workers"
	"github.com/MKhiriev/icrc7-dapp/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("icrc7-replica")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repos := store.NewRepositories(db, log)

	wireCodec, err := codec.ByName(cfg.App.Codec)
	if err != nil {
		log.Fatal().Err(err).Msg("error selecting wire codec")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	dispatcher := replica.NewDispatcher(wireCodec, collector, log)

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(repos, cfg, build, dispatcher.AgentFactory(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = dispatcher.Mount(services, cfg.App.Revision); err != nil {
		log.Fatal().Err(err).Msg("error mounting canisters")
	}

	handlers, err := handler.NewHandlers(dispatcher, services, cfg.Server, log, http.WithMetrics(collector, registry))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	archiver := workers.NewArchiveWorker(repos.Ledger, cfg.Workers.ArchiveInterval, collector, log)

	srv, err := server.NewServer(handlers, workers.NewWorkers(archiver), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("replica stopped")
	}
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
