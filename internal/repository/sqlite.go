package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/AetherPulse/PulseGuard/internal/models"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS pipeline_runs (
			run_at DATETIME NOT NULL,
			payload TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS outbreaks (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			disease TEXT NOT NULL,
			region TEXT NOT NULL,
			cases INTEGER NOT NULL,
			deaths INTEGER NOT NULL,
			reported_at DATETIME NOT NULL,
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_pipeline_runs_run_at ON pipeline_runs(run_at);
		CREATE INDEX IF NOT EXISTS idx_outbreaks_region ON outbreaks(region);
  	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) AppendRun(ctx context.Context, result models.PipelineResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("error marshaling run payload: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO pipeline_runs (run_at, payload) VALUES (?, ?)`,
		result.Timestamp.UTC(), string(payload),
	)
	if err != nil {
		return fmt.Errorf("error inserting pipeline run: %w", err)
	}
	return nil
}

func (s *SQLiteDB) LatestRun(ctx context.Context) (*RunRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT run_at, payload FROM pipeline_runs ORDER BY run_at DESC LIMIT 1`,
	)

	var (
		runAt   time.Time
		payload string
	)
	if err := row.Scan(&runAt, &payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoRuns
		}
		return nil, fmt.Errorf("error scanning latest run: %w", err)
	}

	rec := RunRecord{RunAt: runAt}
	if err := json.Unmarshal([]byte(payload), &rec.Result); err != nil {
		return nil, fmt.Errorf("error unmarshaling run payload: %w", err)
	}
	return &rec, nil
}

func (s *SQLiteDB) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_at, payload FROM pipeline_runs ORDER BY run_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var (
			runAt   time.Time
			payload string
		)
		if err := rows.Scan(&runAt, &payload); err != nil {
			return nil, fmt.Errorf("error scanning run: %w", err)
		}
		rec := RunRecord{RunAt: runAt}
		if err := json.Unmarshal([]byte(payload), &rec.Result); err != nil {
			return nil, fmt.Errorf("error unmarshaling run payload: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *SQLiteDB) AddOutbreak(ctx context.Context, row *models.NormalizedOutbreak) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO outbreaks (id, source, disease, region, cases, deaths, reported_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.Source, row.Disease, row.Region, row.Cases, row.Deaths,
		row.ReportedAt.UTC(), row.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("error inserting outbreak: %w", err)
	}
	return nil
}

func (s *SQLiteDB) OutbreakExists(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM outbreaks WHERE id = ?`, id,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("error checking outbreak existence: %w", err)
	}
	return n > 0, nil
}

func (s *SQLiteDB) ListOutbreaks(ctx context.Context, limit int) ([]models.NormalizedOutbreak, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, disease, region, cases, deaths, reported_at, created_at
		 FROM outbreaks ORDER BY reported_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying outbreaks: %w", err)
	}
	defer rows.Close()

	var out []models.NormalizedOutbreak
	for rows.Next() {
		var o models.NormalizedOutbreak
		if err := rows.Scan(&o.ID, &o.Source, &o.Disease, &o.Region, &o.Cases, &o.Deaths, &o.ReportedAt, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning outbreak: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
