package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/geerin/backend/config"
	httpDelivery "github.com/geerin/backend/internal/delivery/http"
	"github.com/geerin/backend/internal/infrastructure/fakestore"
	"github.com/geerin/backend/internal/infrastructure/store"
	"github.com/geerin/backend/internal/usecase"
)

func main() {
	// Load .env for local development; deployed environments set real env vars
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("WARNING: failed to load .env file: %v", err)
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Geerin Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Remote catalog: %s", cfg.FakeStore.BaseURL)

	// Initialize infrastructure dependencies. The local store is ephemeral by
	// design: its contents reset on every restart.
	localStore := store.NewMemoryStore(cfg.Store.IDBase)
	log.Printf("Local store id base: %d", cfg.Store.IDBase)

	catalogClient := fakestore.NewClient(cfg.FakeStore.BaseURL, cfg.FakeStore.Timeout, cfg.RateLimit.Upstream)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		catalogClient.SetDebug(true)
		log.Printf("Fake Store client debug mode enabled")
	}

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(catalogClient, localStore)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService)

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
