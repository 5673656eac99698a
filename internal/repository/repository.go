package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AetherPulse/PulseGuard/internal/models"
)

// ErrNoRuns is returned by LatestRun before any pipeline run has persisted.
var ErrNoRuns = errors.New("no pipeline runs recorded")

// RunRecord is one persisted pipeline run.
type RunRecord struct {
	RunAt  time.Time
	Result models.PipelineResult
}

// RunRepository stores pipeline results as an append-only history keyed by
// run timestamp. Runs are never overwritten; LatestRun resolves the newest.
type RunRepository interface {
	AppendRun(ctx context.Context, result models.PipelineResult) error
	LatestRun(ctx context.Context) (*RunRecord, error)
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)
}

// OutbreakRepository stores normalized outbreak rows deduplicated by id.
type OutbreakRepository interface {
	AddOutbreak(ctx context.Context, row *models.NormalizedOutbreak) error
	OutbreakExists(ctx context.Context, id string) (bool, error)
	ListOutbreaks(ctx context.Context, limit int) ([]models.NormalizedOutbreak, error)
}
