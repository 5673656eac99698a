package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AetherPulse/PulseGuard/internal/models"
)

func setupTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	db, err := NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testResult(runAt time.Time) models.PipelineResult {
	return models.PipelineResult{
		Timestamp: runAt,
		Analysis: models.Analysis{
			Trends: []models.Trend{{Description: "test trend", Confidence: 0.9}},
		},
		Predictions: []models.Prediction{
			{Region: "Europe", Disease: "Influenza", Probability: 0.7, EstimatedCases: 100, ConfidenceLevel: 0.8},
		},
	}
}

func TestSQLiteDB_LatestRunEmpty(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.LatestRun(context.Background())
	if !errors.Is(err, ErrNoRuns) {
		t.Fatalf("expected ErrNoRuns, got %v", err)
	}
}

func TestSQLiteDB_AppendAndLatestRun(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first := testResult(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	second := testResult(time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC))

	if err := db.AppendRun(ctx, first); err != nil {
		t.Fatalf("AppendRun failed: %v", err)
	}
	if err := db.AppendRun(ctx, second); err != nil {
		t.Fatalf("AppendRun failed: %v", err)
	}

	rec, err := db.LatestRun(ctx)
	if err != nil {
		t.Fatalf("LatestRun failed: %v", err)
	}
	if !rec.Result.Timestamp.Equal(second.Timestamp) {
		t.Errorf("expected latest run %v, got %v", second.Timestamp, rec.Result.Timestamp)
	}
	if len(rec.Result.Predictions) != 1 {
		t.Errorf("expected 1 prediction in payload, got %d", len(rec.Result.Predictions))
	}
}

func TestSQLiteDB_RunsAreAppendOnly(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for day := 1; day <= 3; day++ {
		if err := db.AppendRun(ctx, testResult(time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC))); err != nil {
			t.Fatalf("AppendRun failed: %v", err)
		}
	}

	runs, err := db.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected full history of 3 runs, got %d", len(runs))
	}
	// Newest first.
	if !runs[0].RunAt.After(runs[2].RunAt) {
		t.Errorf("expected runs ordered newest first, got %v then %v", runs[0].RunAt, runs[2].RunAt)
	}
}

func TestSQLiteDB_OutbreakAddAndExists(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	exists, err := db.OutbreakExists(ctx, "who_covid-19_global")
	if err != nil {
		t.Fatalf("OutbreakExists failed: %v", err)
	}
	if exists {
		t.Error("expected false for unknown id")
	}

	now := time.Now().UTC()
	row := &models.NormalizedOutbreak{
		ID:         "who_covid-19_global",
		Source:     "WHO",
		Disease:    "COVID-19",
		Region:     "Global",
		Cases:      12345,
		Deaths:     567,
		ReportedAt: now,
		CreatedAt:  now,
	}
	if err := db.AddOutbreak(ctx, row); err != nil {
		t.Fatalf("AddOutbreak failed: %v", err)
	}

	exists, err = db.OutbreakExists(ctx, row.ID)
	if err != nil {
		t.Fatalf("OutbreakExists failed: %v", err)
	}
	if !exists {
		t.Error("expected true for stored id")
	}

	rows, err := db.ListOutbreaks(ctx, 10)
	if err != nil {
		t.Fatalf("ListOutbreaks failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Disease != "COVID-19" {
		t.Errorf("unexpected outbreak rows: %v", rows)
	}
}
