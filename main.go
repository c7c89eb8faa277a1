package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/stockmaster/config"
	"github.com/stockmaster/stock"
	"github.com/stockmaster/storage"
	"github.com/stockmaster/web"
)

func main() {
	// Command line flags
	var (
		reset = flag.Bool("reset", false, "Reset all data on startup, keeping a single admin user")
		help  = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the key-value store backend
	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	// Load the stock engine; missing collections are seeded with samples
	engine := stock.NewEngine(stock.NewAdapter(store))
	engine.Load(context.Background())

	if *reset {
		log.Println("Resetting all data...")
		engine.Reset(context.Background())
		log.Println("Reset completed")
	}

	// Create and start web server
	server := web.NewServer(engine, cfg.Auth.JWTSecret)

	// Start server in a goroutine
	go func() {
		if err := server.Start(cfg.App.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for interrupt signal
	<-quit
	log.Println("Shutting down server...")
}

// openStore picks the configured key-value store backend.
func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "postgres":
		return storage.NewPostgresStore(&cfg.Database)
	case "redis":
		return storage.NewRedisStore(&cfg.Redis)
	default:
		log.Println("Using in-memory storage (data is not persisted)")
		return storage.NewMemoryStore(), nil
	}
}

func showHelp() {
	log.Println(`
StockMaster Inventory Server

Usage:
  go run main.go [options]

Options:
  -reset    Clear all stock data on startup, keeping a single admin user
  -help     Show this help message

Environment:
  STORAGE_BACKEND   memory (default), postgres or redis
  APP_PORT          HTTP port (default 8080)
  JWT_SECRET        secret for session tokens

Examples:
  # Start with in-memory storage
  go run main.go

  # Start against postgres
  STORAGE_BACKEND=postgres DB_PASSWORD=secret go run main.go

To export a backup bundle from the command line, use:
  go run cmd/export/main.go -out backup.json`)
}
