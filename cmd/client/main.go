// Command client is the terminal password manager. Secure fields of
// higher tiers are made readable through the paired companion device.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-sif-keeper/internal/adapter"
	"github.com/MKhiriev/go-sif-keeper/internal/client"
	"github.com/MKhiriev/go-sif-keeper/internal/config"
	"github.com/MKhiriev/go-sif-keeper/internal/crypto"
	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/metrics"
	"github.com/MKhiriev/go-sif-keeper/internal/service"
	"github.com/MKhiriev/go-sif-keeper/internal/store"
	"github.com/MKhiriev/go-sif-keeper/internal/tui"
	"github.com/MKhiriev/go-sif-keeper/internal/workers"
	"github.com/MKhiriev/go-sif-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const versionCheckTimeout = 3 * time.Second

func main() {
	printBuildInfo()

	envErr := godotenv.Load()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("sif-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("sif-client", cfg.App.LogFile)
	if envErr != nil {
		log.Debug().Err(envErr).Msg("no .env file loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	companion, err := adapter.NewHTTPCompanionAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create companion adapter")
	}
	logCompanionVersion(ctx, companion, log)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	sifMetrics := metrics.NewSIFMetrics(prometheus.DefaultRegisterer)
	services := service.NewClientServices(*cfg, storages, companion, crypto.NewFieldCipher(), sifMetrics, log)

	ws := []workers.Worker{services.ExpiryJob}
	if cfg.App.MetricsAddress != "" {
		ws = append(ws, metrics.NewExporter(cfg.App.MetricsAddress, prometheus.DefaultGatherer, log))
	}

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, workers.NewWorkers(ws...), log, storages.Close)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		if ctx.Err() != nil {
			log.Warn().Err(err).Msg("client interrupted")
			return
		}
		log.Fatal().Err(err).Msg("client run error")
	}
}

// logCompanionVersion reports the paired companion at startup. The client
// works offline, so an unreachable companion is only a warning.
func logCompanionVersion(ctx context.Context, companion adapter.CompanionAdapter, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(ctx, versionCheckTimeout)
	defer cancel()

	version, err := companion.Version(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("companion is not reachable")
		return
	}
	log.Info().Str("companion_version", version).Msg("companion reachable")
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
