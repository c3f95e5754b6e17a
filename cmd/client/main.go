package main

import (
	"fmt"

	"github.com/foyerhq/foyer-client/internal/adapter"
	"github.com/foyerhq/foyer-client/internal/client"
	"github.com/foyerhq/foyer-client/internal/config"
	"github.com/foyerhq/foyer-client/internal/logger"
	"github.com/foyerhq/foyer-client/internal/service"
	"github.com/foyerhq/foyer-client/internal/store"
	"github.com/foyerhq/foyer-client/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("foyer-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	apiClient := adapter.NewHTTPClient(cfg.Adapter, log)

	localStore, err := store.New(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStore, apiClient, log)

	ui, err := tui.New(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, localStore, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
