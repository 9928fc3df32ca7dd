package ports

import (
	"context"

	"causalbench/domain/core"
	"causalbench/domain/run"
)

// RunRepository persists grid-search runs and their trials.
type RunRepository interface {
	SaveRun(ctx context.Context, rec *run.Record) error
	SaveTrials(ctx context.Context, runID core.RunID, trials []run.Trial) error
	ListRuns(ctx context.Context) ([]run.Record, error)
	GetRun(ctx context.Context, runID core.RunID) (*run.Record, error)
	GetTrials(ctx context.Context, runID core.RunID) ([]run.Trial, error)
}
