package app

import (
	"context"
	"log"
	"time"

	"causalbench/domain/core"
	"causalbench/domain/run"
	"causalbench/internal/analysis"
	"causalbench/ports"
)

// SearchService executes a grid search and persists its outcome. The
// repository is optional: without one the search still runs, it just
// leaves nothing behind.
type SearchService struct {
	repo ports.RunRepository
}

// NewSearchService wires the repository.
func NewSearchService(repo ports.RunRepository) *SearchService {
	return &SearchService{repo: repo}
}

// Execute runs the configured grid search and, when a repository is
// wired, saves the run record and every trial under a fresh run ID.
func (s *SearchService) Execute(ctx context.Context, cfg analysis.GridSearchConfig) (*run.Record, []run.Trial, error) {
	gs, err := analysis.NewGridSearch(cfg)
	if err != nil {
		return nil, nil, err
	}

	startedAt := time.Now().UTC()
	if err := gs.Run(ctx); err != nil {
		return nil, nil, err
	}
	finishedAt := time.Now().UTC()

	report, err := gs.Report()
	if err != nil {
		return nil, nil, err
	}

	rec := &run.Record{
		ID:          core.NewRunID(),
		Algorithm:   report.Algorithm,
		Dataset:     report.Dataset,
		ParamNames:  report.ParamNames,
		MetricNames: report.MetricNames,
		TrialCount:  len(report.Trials),
		StartedAt:   startedAt,
		FinishedAt:  finishedAt,
	}

	if s.repo != nil {
		if err := s.repo.SaveRun(ctx, rec); err != nil {
			return nil, nil, err
		}
		if err := s.repo.SaveTrials(ctx, rec.ID, report.Trials); err != nil {
			return nil, nil, err
		}
		log.Printf("[search] saved run %s with %d trials", rec.ID, rec.TrialCount)
	}

	return rec, report.Trials, nil
}
