// Command companion runs the companion device simulator: it holds the root
// secret and releases per-item keys to a paired client over HTTP.
package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-sif-keeper/internal/config"
	"github.com/MKhiriev/go-sif-keeper/internal/handler"
	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/server"
	"github.com/MKhiriev/go-sif-keeper/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("sif-companion")
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.GetCompanionConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	services, err := service.NewServices(cfg, log)
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
