package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"causalbench/domain/core"
	"causalbench/domain/run"
	"causalbench/internal/errors"
	"causalbench/ports"
)

// runRepository implements ports.RunRepository over Postgres.
type runRepository struct {
	db *sqlx.DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *sqlx.DB) ports.RunRepository {
	return &runRepository{db: db}
}

// SaveRun inserts a run record.
func (r *runRepository) SaveRun(ctx context.Context, rec *run.Record) error {
	query := `INSERT INTO runs (
		id, algorithm, dataset, param_names, metric_names, trial_count, started_at, finished_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Algorithm, rec.Dataset,
		pq.StringArray(rec.ParamNames), pq.StringArray(rec.MetricNames),
		rec.TrialCount, rec.StartedAt, rec.FinishedAt,
	)
	if err != nil {
		return errors.Wrap(err, "failed to save run")
	}
	return nil
}

// SaveTrials inserts every trial of a run in one transaction.
func (r *runRepository) SaveTrials(ctx context.Context, runID core.RunID, trials []run.Trial) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	query := `INSERT INTO trials (run_id, trial_index, params, scores, error)
		VALUES ($1, $2, $3, $4, $5)`

	for _, trial := range trials {
		paramsJSON, err := json.Marshal(trial.Params)
		if err != nil {
			return errors.Wrap(err, "failed to marshal trial params")
		}
		scoresJSON, err := json.Marshal(trial.Scores)
		if err != nil {
			return errors.Wrap(err, "failed to marshal trial scores")
		}
		var trialErr sql.NullString
		if trial.Error != "" {
			trialErr = sql.NullString{String: trial.Error, Valid: true}
		}
		if _, err := tx.ExecContext(ctx, query, runID, trial.Index, paramsJSON, scoresJSON, trialErr); err != nil {
			return errors.Wrapf(err, "failed to save trial %d", trial.Index)
		}
	}
	return tx.Commit()
}

// ListRuns returns every run record, most recent first.
func (r *runRepository) ListRuns(ctx context.Context) ([]run.Record, error) {
	query := `SELECT id, algorithm, dataset, param_names, metric_names, trial_count, started_at, finished_at
		FROM runs ORDER BY started_at DESC`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list runs")
	}
	defer rows.Close()

	var records []run.Record
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// GetRun returns a single run record.
func (r *runRepository) GetRun(ctx context.Context, runID core.RunID) (*run.Record, error) {
	query := `SELECT id, algorithm, dataset, param_names, metric_names, trial_count, started_at, finished_at
		FROM runs WHERE id = $1`

	rows, err := r.db.QueryxContext(ctx, query, runID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get run")
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, errors.NotFound("run")
	}
	return scanRun(rows)
}

// GetTrials returns a run's trials in combination order.
func (r *runRepository) GetTrials(ctx context.Context, runID core.RunID) ([]run.Trial, error) {
	query := `SELECT trial_index, params, scores, error FROM trials
		WHERE run_id = $1 ORDER BY trial_index`

	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get trials")
	}
	defer rows.Close()

	var trials []run.Trial
	for rows.Next() {
		var trial run.Trial
		var paramsJSON, scoresJSON []byte
		var trialErr sql.NullString

		if err := rows.Scan(&trial.Index, &paramsJSON, &scoresJSON, &trialErr); err != nil {
			return nil, errors.Wrap(err, "failed to scan trial")
		}
		if err := json.Unmarshal(paramsJSON, &trial.Params); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal trial params")
		}
		if err := json.Unmarshal(scoresJSON, &trial.Scores); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal trial scores")
		}
		trial.Error = trialErr.String
		trials = append(trials, trial)
	}
	return trials, rows.Err()
}

func scanRun(rows *sqlx.Rows) (*run.Record, error) {
	var rec run.Record
	var params, metrics pq.StringArray

	if err := rows.Scan(&rec.ID, &rec.Algorithm, &rec.Dataset, &params, &metrics,
		&rec.TrialCount, &rec.StartedAt, &rec.FinishedAt); err != nil {
		return nil, errors.Wrap(err, "failed to scan run")
	}
	rec.ParamNames = []string(params)
	rec.MetricNames = []string(metrics)
	return &rec, nil
}
