// main.go
package main

import (
	"context"
	"log"

	"mobile-mechanic/cmd"
	"mobile-mechanic/internal/data/repository"
	"mobile-mechanic/internal/notify"
	"mobile-mechanic/internal/payments"
	"mobile-mechanic/internal/wire"
	"mobile-mechanic/pkg/database"
	"mobile-mechanic/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Record store: in-memory unless a Postgres database is configured.
	var repo *repository.Repository
	if config.UsePostgres() {
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := repository.EnsureSchema(context.Background(), db); err != nil {
			logger.Fatal("Failed to prepare database schema", zap.Error(err))
		}

		repo = repository.NewPostgresRepository(db, logger)
		logger.Info("Using Postgres record store")
	} else {
		repo = repository.NewMemoryRepository()
		logger.Warn("Using in-memory record store; records are lost on restart")
	}

	// Payment gateway
	gateway, err := payments.NewStripeGateway(config.Stripe.SecretKey, logger)
	if err != nil {
		logger.Fatal("Failed to init payment gateway", zap.Error(err))
	}

	// Notification dispatcher
	mailer := notify.NewSMTPMailer(config.Email)
	dispatcher := notify.NewDispatcher(mailer, logger)
	if err := dispatcher.Start(context.Background()); err != nil {
		logger.Fatal("Failed to start notification dispatcher", zap.Error(err))
	}
	defer dispatcher.Close()

	// Wire all dependencies
	app := wire.Wiring(repo, gateway, dispatcher, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
