package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AetherPulse/PulseGuard/internal/alerts"
	"github.com/AetherPulse/PulseGuard/internal/analysis"
	"github.com/AetherPulse/PulseGuard/internal/api"
	"github.com/AetherPulse/PulseGuard/internal/config"
	"github.com/AetherPulse/PulseGuard/internal/export"
	"github.com/AetherPulse/PulseGuard/internal/feeds"
	"github.com/AetherPulse/PulseGuard/internal/fetch"
	"github.com/AetherPulse/PulseGuard/internal/logging"
	"github.com/AetherPulse/PulseGuard/internal/notify"
	"github.com/AetherPulse/PulseGuard/internal/pipeline"
	"github.com/AetherPulse/PulseGuard/internal/repository"
	"github.com/AetherPulse/PulseGuard/internal/scheduler"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	db, err := repository.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sinks []notify.Sink
	if cfg.Notify.SMTPHost != "" {
		sinks = append(sinks, notify.NewEmailSink(
			cfg.Notify.SMTPHost, cfg.Notify.SMTPPort,
			cfg.Notify.SMTPUser, cfg.Notify.SMTPPass,
			cfg.Notify.EmailFrom, cfg.Notify.EmailTo,
		))
	}
	queue := notify.NewQueue(cfg.Notify.QueueSize, cfg.Notify.TTL, sinks...)

	analyzer := analysis.NewStaticAnalyzer()
	provider := analysis.NewStaticProvider()
	sources := feeds.FromConfig(cfg.Sources)

	pipe := pipeline.New(sources, analyzer, db, db, queue, cfg.Worker.Count, cfg.Worker.BufferSize)
	store := alerts.NewStore()
	fetcher := fetch.NewService(cfg.Fetch.Latency, provider)
	exporter := export.NewExporter(cfg.Export.Dir, cfg.Export.Delay, queue)

	var sched *scheduler.Service
	if cfg.Scheduler.Enabled {
		report := func(ctx context.Context) error {
			// The daily job regenerates the risk section from the latest run.
			rec, err := db.LatestRun(ctx)
			if err != nil {
				return err
			}
			_, err = analyzer.GenerateRiskReport(ctx, rec.Result.Data, rec.Result.Analysis, rec.Result.Predictions)
			return err
		}
		sched = scheduler.NewService(pipe, report, cfg.Scheduler.PipelineSpec, cfg.Scheduler.RiskReportSpec)
		if err := sched.Start(ctx); err != nil {
			logging.Fatalf("Failed to start scheduler: %v", err)
		}
	}

	// Initial pipeline run at startup, off the serving path.
	go func() {
		slog.Info("running initial data pipeline")
		if _, err := pipe.Run(ctx); err != nil {
			slog.Error("initial data pipeline failed", "error", err)
			queue.Push(notify.LevelError, "Pipeline failed", "Initial data pipeline failed")
			return
		}
		slog.Info("initial data pipeline completed")
	}()

	// Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // Set to false when using wildcard origins
	}))
	router.Use(api.RateLimitMiddleware(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))

	handler := api.NewHandler(db, pipe, analyzer, store, fetcher, exporter, queue)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	cancel()
	if sched != nil {
		sched.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
}
