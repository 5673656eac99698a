package main

import (
	"context"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/AetherPulse/PulseGuard/internal/analysis"
	"github.com/AetherPulse/PulseGuard/internal/config"
	"github.com/AetherPulse/PulseGuard/internal/feeds"
	"github.com/AetherPulse/PulseGuard/internal/logging"
	"github.com/AetherPulse/PulseGuard/internal/notify"
	"github.com/AetherPulse/PulseGuard/internal/pipeline"
	"github.com/AetherPulse/PulseGuard/internal/repository"
)

// Runs the data pipeline once and exits.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	db, err := repository.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	var sinks []notify.Sink
	if cfg.Notify.SMTPHost != "" {
		sinks = append(sinks, notify.NewEmailSink(
			cfg.Notify.SMTPHost, cfg.Notify.SMTPPort,
			cfg.Notify.SMTPUser, cfg.Notify.SMTPPass,
			cfg.Notify.EmailFrom, cfg.Notify.EmailTo,
		))
	}
	queue := notify.NewQueue(cfg.Notify.QueueSize, cfg.Notify.TTL, sinks...)

	pipe := pipeline.New(
		feeds.FromConfig(cfg.Sources),
		analysis.NewStaticAnalyzer(),
		db, db, queue,
		cfg.Worker.Count, cfg.Worker.BufferSize,
	)

	result, err := pipe.Run(context.Background())
	if err != nil {
		logging.Fatalf("Pipeline execution failed: %v", err)
	}

	slog.Info("pipeline execution complete", "timestamp", result.Timestamp, "predictions", len(result.Predictions))
}
