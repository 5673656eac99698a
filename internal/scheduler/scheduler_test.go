package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/AetherPulse/PulseGuard/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubRunner struct {
	calls atomic.Int64
}

func (s *stubRunner) Run(ctx context.Context) (*models.PipelineResult, error) {
	s.calls.Add(1)
	return &models.PipelineResult{Timestamp: time.Now().UTC()}, nil
}

func TestService_RegistersBothJobs(t *testing.T) {
	runner := &stubRunner{}
	report := func(ctx context.Context) error { return nil }

	svc := NewService(runner, report, "0 */6 * * *", "0 0 * * *")
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer svc.Stop()

	if svc.Entries() != 2 {
		t.Errorf("expected 2 cron entries, got %d", svc.Entries())
	}
}

func TestService_InvalidSpec(t *testing.T) {
	runner := &stubRunner{}
	report := func(ctx context.Context) error { return nil }

	svc := NewService(runner, report, "not a cron spec", "0 0 * * *")
	if err := svc.Start(context.Background()); err == nil {
		svc.Stop()
		t.Fatal("expected error for invalid cron spec")
	}
}

func TestService_RunsScheduledPipeline(t *testing.T) {
	runner := &stubRunner{}
	report := func(ctx context.Context) error { return nil }

	svc := NewService(runner, report, "@every 100ms", "@every 1h")
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	time.Sleep(250 * time.Millisecond)
	svc.Stop()

	if runner.calls.Load() == 0 {
		t.Error("expected at least one scheduled pipeline run")
	}
}
