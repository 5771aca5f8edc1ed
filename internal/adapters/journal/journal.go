// Package journal persists the provisioning audit trail in a local SQLite
// file: one row per run, one row per executed step. It implements
// ports.Journal.
package journal

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/provtools/wlsprov/pkg/domain"
	"github.com/provtools/wlsprov/pkg/ports"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Journal is a SQLite-backed ports.Journal.
type Journal struct {
	dbConn *sqlx.DB
}

var _ ports.Journal = (*Journal)(nil)

// New opens (or creates) the journal database at the given path and applies
// all pending migrations.
func New(path string) (*Journal, error) {
	db, err := sqlx.Connect("sqlite", fmt.Sprintf("%s?_journal=WAL&_timeout=5000&_fk=true", path))
	if err != nil {
		return nil, fmt.Errorf("connecting to journal db: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting dialect for migrations: %w", err)
	}
	if err := goose.Up(db.DB, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying migration: %w", err)
	}

	return &Journal{dbConn: db}, nil
}

// BeginRun inserts a run row and returns its ID.
func (j *Journal) BeginRun(ctx context.Context, plan string) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("creating run id: %w", err)
	}

	query := `INSERT INTO run (id, plan, status, started_at) VALUES (?, ?, 'running', ?)`
	if _, err := j.dbConn.ExecContext(ctx, query, id.String(), plan, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("inserting run %s: %w", id, err)
	}
	return id.String(), nil
}

// RecordStep appends a step outcome to the run.
func (j *Journal) RecordStep(ctx context.Context, runID string, result domain.StepResult) error {
	var stepErr sql.NullString
	if result.Err != nil {
		stepErr = sql.NullString{String: result.Err.Error(), Valid: true}
	}

	query := `INSERT INTO step (run_id, step_id, status, error, duration_us, at) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := j.dbConn.ExecContext(ctx, query,
		runID, result.StepID, string(result.Status), stepErr, result.Duration.Microseconds(), result.At.UTC())
	if err != nil {
		return fmt.Errorf("inserting step %s for run %s: %w", result.StepID, runID, err)
	}
	return nil
}

// EndRun finalizes the run row.
func (j *Journal) EndRun(ctx context.Context, runID string, runErr error) error {
	status := "succeeded"
	var errText sql.NullString
	if runErr != nil {
		status = "failed"
		errText = sql.NullString{String: runErr.Error(), Valid: true}
	}

	query := `UPDATE run SET status = ?, error = ?, finished_at = ? WHERE id = ?`
	res, err := j.dbConn.ExecContext(ctx, query, status, errText, time.Now().UTC(), runID)
	if err != nil {
		return fmt.Errorf("finalizing run %s: %w", runID, err)
	}
	// A run ID the journal never saw (e.g. BeginRun failed and the caller
	// fell back to a generated ID) must not finalize silently.
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finalizing run %s: %w", runID, err)
	}
	if affected == 0 {
		return fmt.Errorf("finalizing run %s: run not recorded", runID)
	}
	return nil
}

// StepResults returns the recorded steps of a run, in execution order.
// It implements the optional read side used by the journal contract.
func (j *Journal) StepResults(ctx context.Context, runID string) ([]domain.StepResult, error) {
	rows := []struct {
		StepID     string         `db:"step_id"`
		Status     string         `db:"status"`
		Error      sql.NullString `db:"error"`
		DurationUs int64          `db:"duration_us"`
		At         time.Time      `db:"at"`
	}{}

	query := `SELECT step_id, status, error, duration_us, at FROM step WHERE run_id = ? ORDER BY seq`
	if err := j.dbConn.SelectContext(ctx, &rows, query, runID); err != nil {
		return nil, fmt.Errorf("selecting steps for run %s: %w", runID, err)
	}

	results := make([]domain.StepResult, 0, len(rows))
	for _, row := range rows {
		res := domain.StepResult{
			StepID:   row.StepID,
			Status:   domain.StepStatus(row.Status),
			Duration: time.Duration(row.DurationUs) * time.Microsecond,
			At:       row.At,
		}
		if row.Error.Valid {
			res.Err = fmt.Errorf("%s", row.Error.String)
		}
		results = append(results, res)
	}
	return results, nil
}

// Close terminates the database connection.
func (j *Journal) Close() error {
	if err := j.dbConn.Close(); err != nil {
		return fmt.Errorf("closing journal: %w", err)
	}
	return nil
}
