package main

import (
	"github.com/nutrivue/backend/config"
	"github.com/nutrivue/backend/internal/database"
	"github.com/nutrivue/backend/pkg/logger"
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalw("migration failed", "error", err)
	}

	log.Info("migrations applied")
}
