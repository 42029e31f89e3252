package main

import (
	"context"
	"fmt"

	"github.com/divinoviana/planoespecialindividualizado/internal/config"
	"github.com/divinoviana/planoespecialindividualizado/internal/generation"
	"github.com/divinoviana/planoespecialindividualizado/internal/handler"
	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/internal/server"
	"github.com/divinoviana/planoespecialindividualizado/internal/service"
	"github.com/divinoviana/planoespecialindividualizado/internal/store"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("pei-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	generator, err := generation.NewGeminiClient(cfg.Generation, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating generation client")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, generator, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
