package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cooksync/backend/config"
	"github.com/cooksync/backend/internal/catalog"
	"github.com/cooksync/backend/internal/server"
	"github.com/cooksync/backend/internal/service"
	"github.com/cooksync/backend/internal/storage"
	"github.com/cooksync/backend/internal/store"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	kv, err := newKV(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	st := store.New(ctx, kv)
	st.SetSimulatedLatency(cfg.SimulatedLatency)

	cat := catalog.Load(ctx, kv)

	authService := service.NewAuthService(st, cfg.JWTSecret)

	// Image uploads are optional; without AWS credentials the endpoint is
	// simply not registered.
	var imageService *service.ImageService
	if s3cfg, err := config.NewS3Config(ctx); err != nil {
		log.Printf("Warning: S3 not configured, image uploads disabled: %v", err)
	} else {
		imageService = service.NewImageService(s3cfg)
	}

	// Create and start server
	srv := server.New(cfg, st, cat, authService, imageService)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s:%s...", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

func newKV(cfg *config.Config) (storage.KV, error) {
	switch cfg.StorageBackend {
	case config.StorageRedis:
		return storage.NewRedisKV(cfg.RedisAddr(), cfg.RedisPassword, cfg.RedisDB, cfg.RedisURL)
	default:
		return storage.NewFileKV(cfg.DataDir)
	}
}
