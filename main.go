package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"memory-cache/internal/cache"
	"memory-cache/internal/common/logging"
	"memory-cache/internal/config"
	"memory-cache/internal/handlers"
	"memory-cache/internal/maintenance"
	"memory-cache/internal/memories"
	"memory-cache/internal/storage"

	// Register record store backends.
	_ "memory-cache/internal/storage/postgres"
	_ "memory-cache/internal/storage/sqlite"
)

func main() {
	_ = godotenv.Load()

	// Load and validate configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logging.InitGlobalLogger(cfg.LogLevel)
	defer logging.MustSync()
	logger := logging.GetGlobalLogger()

	// Initialize the record store
	store, err := storage.NewStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	// Initialize the shared cache
	memCache, err := cache.Shared(cache.Config{
		Capacity:   cfg.CacheMaxEntries,
		DefaultTTL: cfg.CacheDefaultTTL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}

	manager := memories.NewManager(memCache, store, logger)
	h := handlers.New(memCache, manager, store, logger)

	// Set up routes
	router := mux.NewRouter()
	h.RegisterRoutes(router)

	// Scheduled expired-entry sweeps (disabled when no schedule is set)
	scheduler := maintenance.NewScheduler(memCache, cfg.CacheCleanupSchedule, logger)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start cleanup scheduler: %v", err)
	}
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			logging.String("port", cfg.Port),
			logging.String("database", cfg.DatabaseType),
			logging.Int("cache_capacity", cfg.CacheMaxEntries),
			logging.Duration("cache_default_ttl", cfg.CacheDefaultTTL),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
