package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"gstrex/internal/config"
	"gstrex/internal/handler"
	"gstrex/internal/repository/mongodb"
	"gstrex/internal/router"
	"gstrex/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load a local .env file when present; real environments set vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, closeDB, err := mongodb.NewDB(&cfg.Mongo)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer closeDB()

	// Initialize repositories
	explorerStore := mongodb.NewExplorerRepo(db)
	transactionRepo := mongodb.NewTransactionRepo(db)
	companyRepo := mongodb.NewCompanyRepo(db)

	// Initialize services
	explorerSvc := service.NewExplorerService(explorerStore)
	reportSvc := service.NewReportService(companyRepo, transactionRepo)

	// Initialize handlers
	collectionH := handler.NewCollectionHandler(explorerSvc)
	queryH := handler.NewQueryHandler(explorerSvc)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(explorerStore)

	// Setup router
	r := router.Setup(cfg, collectionH, queryH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
