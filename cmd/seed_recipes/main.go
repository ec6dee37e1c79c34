package main

import (
	"context"
	"log"

	"github.com/cooksync/backend/config"
	"github.com/cooksync/backend/internal/catalog"
	"github.com/cooksync/backend/internal/storage"
)

// Writes the built-in recipe catalog into the configured storage backend so
// the API serves it without falling back to the embedded copy.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var kv storage.KV
	switch cfg.StorageBackend {
	case config.StorageRedis:
		kv, err = storage.NewRedisKV(cfg.RedisAddr(), cfg.RedisPassword, cfg.RedisDB, cfg.RedisURL)
	default:
		kv, err = storage.NewFileKV(cfg.DataDir)
	}
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	if err := catalog.Seed(ctx, kv); err != nil {
		log.Fatalf("Failed to seed recipe catalog: %v", err)
	}
	log.Printf("Seeded %d recipes into %s storage", len(catalog.BuiltIn()), cfg.StorageBackend)
}
