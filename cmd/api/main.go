package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nutrivue/backend/config"
	"github.com/nutrivue/backend/internal/database"
	"github.com/nutrivue/backend/internal/server"
	"github.com/nutrivue/backend/pkg/logger"
)

func main() {
	log := logger.New()
	if config.IsDevelopment() {
		log = logger.NewDevelopment()
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		// The API degrades to uncached plans rather than refusing to start.
		log.Warnw("redis unavailable, plan caching disabled", "error", err)
		redisClient = nil
	}

	srv := server.NewServer(cfg, db, redisClient, log)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalw("server error", "error", err)
		}
	case sig := <-quit:
		log.Infow("received signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server shutdown error", "error", err)
	}
	log.Info("server stopped")
}
