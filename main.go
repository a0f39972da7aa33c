// main.go
package main

import (
	"log"
	"os"

	"movie-ticket-booking/cmd"
	"movie-ticket-booking/internal/data/repository"
	"movie-ticket-booking/internal/usecase"
	"movie-ticket-booking/internal/wire"
	"movie-ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug, config.App.LogStdout)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("mode", config.App.Mode),
		zap.Bool("debug", config.App.Debug),
	)

	repos := repository.NewRepository(logger)
	service := usecase.NewService(repos, logger)

	if config.Inventory.Seed {
		count := usecase.Seed(service.Inventory, usecase.DefaultCatalog)
		logger.Info("Inventory seeded", zap.Int("movies", count))
	}

	switch config.App.Mode {
	case utils.ModeHTTP:
		app := wire.Wiring(service, config, logger)
		if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
			logger.Fatal("HTTP server stopped", zap.Error(err))
		}
	default:
		if err := cmd.NewConsole(service.Inventory, os.Stdin, os.Stdout, logger).Run(); err != nil {
			logger.Fatal("Console stopped", zap.Error(err))
		}
	}
}
