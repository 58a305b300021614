package main

import (
	"fmt"

	"github.com/samidy/monosync/internal/baas"
	"github.com/samidy/monosync/internal/config"
	handler "github.com/samidy/monosync/internal/handler/http"
	"github.com/samidy/monosync/internal/logger"
	"github.com/samidy/monosync/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("gate")
	cfg, err := config.GetGateConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	verifier := baas.NewClient(baas.ClientConfig{
		BaseURL: cfg.RemoteBaseURL,
		Timeout: cfg.RequestTimeout,
	}, log)

	gate, err := handler.NewHandler(verifier, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating gate handler")
	}

	srv, err := server.NewServer(gate.Init(), cfg, log)
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
