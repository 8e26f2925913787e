package main

import (
	"context"
	"fmt"

	"github.com/pocketdiary/diary-server/internal/adapter"
	"github.com/pocketdiary/diary-server/internal/config"
	"github.com/pocketdiary/diary-server/internal/crypto"
	handler "github.com/pocketdiary/diary-server/internal/handler/http"
	"github.com/pocketdiary/diary-server/internal/logger"
	"github.com/pocketdiary/diary-server/internal/server"
	"github.com/pocketdiary/diary-server/internal/service"
	"github.com/pocketdiary/diary-server/internal/store"
	"github.com/pocketdiary/diary-server/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("diary-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	repos, err := store.NewRepositories(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}

	cipher := crypto.NewCipherService()

	completer, err := adapter.NewHTTPChatAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating chat adapter")
	}

	services := service.NewServices(repos, cipher, completer, *cfg, log)
	handlers := handler.NewHandler(services, log)

	workers.NewWorkers(cfg.Workers, log).Run()

	server.NewServer(handlers.Init(), cfg.Server, log).RunServer()
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
