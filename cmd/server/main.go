package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/homecart/backend/config"
	httpDelivery "github.com/homecart/backend/internal/delivery/http"
	"github.com/homecart/backend/internal/infrastructure/cache"
	"github.com/homecart/backend/internal/infrastructure/sqlite"
	"github.com/homecart/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting HomeCart Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Database: %s", cfg.DB.Path)

	// Initialize infrastructure dependencies
	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	catalogStore := sqlite.NewCatalogStore(db)
	itemStore := sqlite.NewItemStore(db)
	memoryCache := cache.NewMemoryCache()

	// Seed default categories and the default list on first run
	if err := catalogStore.EnsureDefaults(context.Background()); err != nil {
		log.Fatalf("Failed to seed defaults: %v", err)
	}

	// Initialize usecase layer
	debug := cfg.Parser.EnableDebugLogging || cfg.Server.Environment == "development"
	if debug {
		log.Printf("Parser debug logging enabled")
	}

	parserService := usecase.NewParserService(usecase.ParserConfig{EnableDebugLogging: debug})
	catalogService := usecase.NewCatalogService(catalogStore, memoryCache, usecase.CatalogServiceConfig{
		CacheTTL:           cfg.Cache.TTL,
		EnableDebugLogging: debug,
	})
	listService := usecase.NewListService(itemStore, catalogService, debug)

	log.Printf("Cache TTL: %s", cfg.Cache.TTL)
	log.Printf("Rate limit: %.1f req/s per IP (burst %d)", cfg.RateLimit.PerIP, cfg.RateLimit.Burst)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(parserService, catalogService, listService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
