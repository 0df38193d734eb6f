package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/MassBabyGeek/ScamHunter-backend/internal/analyzer"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/api"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/config"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/database"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/handler"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/logger"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/middleware"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/progression"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Choix du backend de persistance : Postgres si configuré, fichier sinon
	var blobStore storage.Store
	if cfg.UsesPostgres() {
		pool, err := database.ConnectPostgres(cfg)
		if err != nil {
			logger.Error("Database connection failed: %v", err)
			os.Exit(1)
		}
		defer pool.Close()

		blobStore, err = storage.NewPostgresStore(context.Background(), pool)
		if err != nil {
			logger.Error("Could not init postgres storage: %v", err)
			os.Exit(1)
		}
	} else {
		blobStore, err = storage.NewFileStore(cfg.DataDir)
		if err != nil {
			logger.Error("Could not init file storage: %v", err)
			os.Exit(1)
		}
		logger.Info("Using file storage in %s", cfg.DataDir)
	}

	// Simulateur d'analyse de risque
	riskAnalyzer, err := analyzer.New(analyzer.WithDelay(
		time.Duration(cfg.AnalyzeDelayMinMs)*time.Millisecond,
		time.Duration(cfg.AnalyzeDelayMaxMs)*time.Millisecond,
	))
	if err != nil {
		logger.Error("Could not init analyzer: %v", err)
		os.Exit(1)
	}

	// Store de progression, réhydraté avant de servir la moindre requête
	store := progression.NewStore(blobStore)
	if err := store.Load(context.Background()); err != nil {
		// Non fatal : on repart d'un état neuf, seul l'historique est perdu
		logger.Warning("Could not rehydrate progression state: %v", err)
	}

	// Initialize routes
	router := api.SetupRouter(handler.New(riskAnalyzer, store))

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
