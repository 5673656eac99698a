package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/AetherPulse/PulseGuard/internal/models"
)

// PipelineRunner is the slice of the pipeline the scheduler needs.
type PipelineRunner interface {
	Run(ctx context.Context) (*models.PipelineResult, error)
}

// ReportFunc generates the daily risk assessment report.
type ReportFunc func(ctx context.Context) error

// Service schedules the data pipeline and the daily risk report.
type Service struct {
	runner       PipelineRunner
	report       ReportFunc
	pipelineSpec string
	reportSpec   string
	cron         *cron.Cron
}

func NewService(runner PipelineRunner, report ReportFunc, pipelineSpec, reportSpec string) *Service {
	return &Service{
		runner:       runner,
		report:       report,
		pipelineSpec: pipelineSpec,
		reportSpec:   reportSpec,
		cron:         cron.New(),
	}
}

// Start registers both jobs and begins the cron loop.
func (s *Service) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.pipelineSpec, func() {
		slog.Info("running scheduled data pipeline")
		if _, err := s.runner.Run(ctx); err != nil {
			slog.Error("scheduled data pipeline failed", "error", err)
			return
		}
		slog.Info("scheduled data pipeline completed")
	}); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc(s.reportSpec, func() {
		slog.Info("generating daily risk assessment report")
		if err := s.report(ctx); err != nil {
			slog.Error("daily risk assessment report failed", "error", err)
			return
		}
		slog.Info("daily risk assessment report generated")
	}); err != nil {
		return err
	}

	s.cron.Start()
	slog.Info("scheduler started", "pipeline_spec", s.pipelineSpec, "report_spec", s.reportSpec)
	return nil
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Service) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
		slog.Info("scheduler stopped")
	}
}

// Entries reports the number of registered jobs.
func (s *Service) Entries() int {
	return len(s.cron.Entries())
}
