package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/AetherPulse/PulseGuard/internal/config"
	"github.com/AetherPulse/PulseGuard/internal/feeds"
	"github.com/AetherPulse/PulseGuard/internal/logging"
)

// Runs the scraper sources once and prints the combined report as JSON.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	data, err := feeds.ScrapeAll(context.Background(), feeds.FromConfig(cfg.Sources))
	if err != nil {
		logging.Fatalf("Data scraping failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		logging.Fatalf("Failed to encode scraped data: %v", err)
	}

	slog.Info("data scraping complete", "sources", len(data.Sources))
}
