package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/stockmaster/config"
	"github.com/stockmaster/stock"
	"github.com/stockmaster/storage"
)

func main() {
	// Define flags
	out := flag.String("out", "", "Write the bundle to this file instead of stdout")
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}
	defer store.Close()

	engine := stock.NewEngine(stock.NewAdapter(store))
	engine.Load(context.Background())

	bundle := engine.Export(context.Background())
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		log.Fatal("Failed to encode bundle:", err)
	}

	if *out == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal("Failed to write bundle:", err)
	}
	fmt.Printf("Exported %d products, %d transactions to %s\n",
		len(bundle.Products), len(bundle.Transactions), *out)
}

// openStore picks the configured key-value store backend.
func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "postgres":
		return storage.NewPostgresStore(&cfg.Database)
	case "redis":
		return storage.NewRedisStore(&cfg.Redis)
	default:
		return storage.NewMemoryStore(), nil
	}
}

func showHelp() {
	fmt.Println(`
StockMaster Export Tool

Dumps the full backup bundle (products, categories, suppliers,
transactions, users and settings) as JSON.

Usage:
  go run cmd/export/main.go [options]

Options:
  -out FILE   Write the bundle to FILE instead of stdout
  -help       Show this help message`)
}
