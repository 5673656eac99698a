package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/AetherPulse/PulseGuard/internal/analysis"
	"github.com/AetherPulse/PulseGuard/internal/feeds"
	"github.com/AetherPulse/PulseGuard/internal/models"
	"github.com/AetherPulse/PulseGuard/internal/notify"
	"github.com/AetherPulse/PulseGuard/internal/repository"
	"github.com/AetherPulse/PulseGuard/internal/worker"
)

// Pipeline runs the scrape -> preprocess -> analyze -> predict -> risk
// report -> persist sequence. Stages run in order and the first error
// aborts the run; there is no retry or partial recovery.
type Pipeline struct {
	sources    []feeds.Source
	analyzer   analysis.Analyzer
	runs       repository.RunRepository
	outbreaks  repository.OutbreakRepository
	queue      *notify.Queue
	workers    int
	bufferSize int
}

func New(sources []feeds.Source, analyzer analysis.Analyzer, runs repository.RunRepository, outbreaks repository.OutbreakRepository, queue *notify.Queue, workers, bufferSize int) *Pipeline {
	return &Pipeline{
		sources:    sources,
		analyzer:   analyzer,
		runs:       runs,
		outbreaks:  outbreaks,
		queue:      queue,
		workers:    workers,
		bufferSize: bufferSize,
	}
}

func (p *Pipeline) Run(ctx context.Context) (*models.PipelineResult, error) {
	slog.Info("starting data pipeline")

	scraped, err := feeds.ScrapeAll(ctx, p.sources)
	if err != nil {
		return nil, fmt.Errorf("scrape stage: %w", err)
	}

	processed := preprocess(scraped)

	an, err := p.analyzer.AnalyzeOutbreaks(ctx, processed)
	if err != nil {
		return nil, fmt.Errorf("analysis stage: %w", err)
	}

	preds, err := p.analyzer.PredictOutbreaks(ctx, processed)
	if err != nil {
		return nil, fmt.Errorf("prediction stage: %w", err)
	}

	report, err := p.analyzer.GenerateRiskReport(ctx, processed, an, preds)
	if err != nil {
		return nil, fmt.Errorf("risk report stage: %w", err)
	}

	result := models.PipelineResult{
		Timestamp:   time.Now().UTC(),
		Data:        processed,
		Analysis:    an,
		Predictions: preds,
		RiskReport:  report,
	}

	// An elevated global assessment raises a critical notification, which
	// also reaches the email sink when one is configured.
	if p.queue != nil && highRisk(report.GlobalRiskAssessment.OverallRiskLevel) {
		p.queue.Push(notify.LevelCritical, "High outbreak risk",
			fmt.Sprintf("Global risk level %s (score %d). %s",
				report.GlobalRiskAssessment.OverallRiskLevel,
				report.GlobalRiskAssessment.RiskScore,
				report.ExecutiveSummary))
	}

	if p.outbreaks != nil {
		p.storeOutbreaks(ctx, processed.NormalizedOutbreaks)
	}

	if err := p.runs.AppendRun(ctx, result); err != nil {
		return nil, fmt.Errorf("persist stage: %w", err)
	}

	slog.Info("data pipeline completed", "outbreaks", len(processed.NormalizedOutbreaks), "predictions", len(preds))
	return &result, nil
}

// storeOutbreaks pushes the normalized rows through the worker pool into
// the outbreaks table, skipping ids already present. Row-level failures are
// logged, not fatal: the run payload itself is the source of truth.
func (p *Pipeline) storeOutbreaks(ctx context.Context, rows []models.NormalizedOutbreak) {
	processor := func(ctx context.Context, row *models.NormalizedOutbreak) error {
		exists, err := p.outbreaks.OutbreakExists(ctx, row.ID)
		if err != nil {
			slog.Error("error checking outbreak existence", "id", row.ID, "error", err)
			return err
		}
		if exists {
			return nil
		}
		if err := p.outbreaks.AddOutbreak(ctx, row); err != nil {
			slog.Error("error adding outbreak", "id", row.ID, "error", err)
			return err
		}
		slog.Debug("added outbreak", "id", row.ID, "source", row.Source)
		return nil
	}

	pool := worker.NewPool(p.workers, p.bufferSize, processor)
	pool.Start(ctx)
	for i := range rows {
		if err := pool.Submit(ctx, &rows[i]); err != nil {
			slog.Warn("stopped queueing outbreak rows", "error", err)
			break
		}
	}
	pool.Stop()
}

func highRisk(level string) bool {
	switch strings.ToLower(level) {
	case "high", "very high":
		return true
	}
	return false
}

// preprocess flattens the per-source outbreak lists into normalized rows
// keyed by source/disease/region.
func preprocess(data models.ScrapedData) models.ProcessedData {
	now := time.Now().UTC()

	var normalized []models.NormalizedOutbreak
	for _, report := range data.Sources {
		for _, o := range report.Outbreaks {
			normalized = append(normalized, models.NormalizedOutbreak{
				ID:         rowID(report.Source, o.Disease, o.Region),
				Source:     report.Source,
				Disease:    o.Disease,
				Region:     o.Region,
				Cases:      o.Cases,
				Deaths:     o.Deaths,
				ReportedAt: now,
				CreatedAt:  now,
			})
		}
	}

	return models.ProcessedData{
		ScrapedData:         data,
		Preprocessed:        true,
		NormalizedOutbreaks: normalized,
	}
}

func rowID(parts ...string) string {
	slugs := make([]string, 0, len(parts))
	for _, p := range parts {
		slugs = append(slugs, strings.ReplaceAll(strings.ToLower(strings.TrimSpace(p)), " ", "-"))
	}
	return strings.Join(slugs, "_")
}
