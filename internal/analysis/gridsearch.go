package analysis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"causalbench/domain/dataset"
	"causalbench/domain/graph"
	"causalbench/domain/run"
	"causalbench/internal/errors"
	"causalbench/ports"
)

// GridSearchConfig configures a hyperparameter grid search.
type GridSearchConfig struct {
	// Factory builds one learner per trial from the merged parameters.
	Factory ports.LearnerFactory

	// Grid holds the varied parameters. Axis order is preserved.
	Grid Grid

	// Dataset is shared read-only across trials.
	Dataset *dataset.Dataset

	// Golden is the ground truth metrics score against. Defaults to the
	// dataset's attached golden structure.
	Golden *graph.Structure

	// Metrics are computed per trial; their order fixes score column
	// order in reports.
	Metrics []ports.Metric

	// FixedParams are constructor parameters not varied by the grid.
	// A grid axis with the same name takes precedence.
	FixedParams map[string]interface{}

	// Objectives give each metric its direction; unlisted metrics are
	// lower-is-better.
	Objectives Objectives

	// Progress receives lifecycle events. Defaults to NopProgress.
	Progress ports.Progress

	// Workers bounds concurrent trials. Defaults to 1 (sequential).
	Workers int

	// TrialTimeout bounds a single trial; zero means no timeout. A
	// timed-out trial records a failure, the search continues.
	TrialTimeout time.Duration
}

// GridSearch enumerates the Cartesian product of a parameter grid,
// learns one structure per combination, and scores it against the
// ground truth. Trial failures are recorded, never propagated: one
// pathological configuration cannot abort the search.
type GridSearch struct {
	cfg    GridSearchConfig
	golden *graph.Structure

	mu      sync.Mutex
	results []run.Trial
	ran     bool
}

// NewGridSearch validates the configuration.
func NewGridSearch(cfg GridSearchConfig) (*GridSearch, error) {
	if cfg.Factory == nil {
		return nil, errors.ConfigInvalid("grid search requires a learner factory")
	}
	if cfg.Dataset == nil {
		return nil, errors.ConfigInvalid("grid search requires a dataset")
	}
	golden := cfg.Golden
	if golden == nil {
		golden = cfg.Dataset.Golden()
	}
	if golden == nil {
		return nil, errors.ConfigInvalid("grid search requires a golden structure")
	}
	if len(cfg.Metrics) == 0 {
		return nil, errors.ConfigInvalid("grid search requires at least one metric")
	}
	if cfg.Progress == nil {
		cfg.Progress = ports.NopProgress{}
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &GridSearch{cfg: cfg, golden: golden}, nil
}

// Run executes every parameter combination. Trials run on a
// semaphore-bounded worker pool; result order follows combination
// order regardless of completion order. Run itself only fails when the
// context is canceled before all trials were scheduled.
func (gs *GridSearch) Run(ctx context.Context) error {
	combos := gs.cfg.Grid.Combinations()
	results := make([]run.Trial, len(combos))

	gs.cfg.Progress.SearchStarted(gs.cfg.Factory.Algorithm(), len(combos))

	sem := semaphore.NewWeighted(int64(gs.cfg.Workers))
	var wg sync.WaitGroup
	var runErr error

	for idx, combo := range combos {
		if err := sem.Acquire(ctx, 1); err != nil {
			// context canceled: the remaining trials are recorded as
			// failed, already-running ones finish
			for rest := idx; rest < len(combos); rest++ {
				results[rest] = run.Trial{
					Index:  rest,
					Params: combos[rest],
					Error:  fmt.Sprintf("trial not run: %v", err),
				}
			}
			runErr = err
			break
		}
		wg.Add(1)
		go func(idx int, params map[string]interface{}) {
			defer wg.Done()
			defer sem.Release(1)
			trial := gs.runTrial(ctx, idx, params)
			results[idx] = trial
			gs.emit(trial)
		}(idx, combo)
	}
	wg.Wait()

	gs.mu.Lock()
	gs.results = results
	gs.ran = true
	gs.mu.Unlock()

	gs.cfg.Progress.SearchFinished(results)
	return runErr
}

func (gs *GridSearch) emit(t run.Trial) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.cfg.Progress.TrialCompleted(t)
}

// runTrial builds the learner, learns a structure, and computes every
// metric. Construction and learning failures fail the trial; a metric
// failure only leaves that metric absent from the scores.
func (gs *GridSearch) runTrial(ctx context.Context, idx int, combo map[string]interface{}) (trial run.Trial) {
	trial = run.Trial{Index: idx, Params: combo}

	defer func() {
		if r := recover(); r != nil {
			trial.Scores = nil
			trial.Error = fmt.Sprintf("panic: %v", r)
		}
	}()

	gs.mu.Lock()
	gs.cfg.Progress.TrialStarted(idx, combo)
	gs.mu.Unlock()

	if gs.cfg.TrialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, gs.cfg.TrialTimeout)
		defer cancel()
	}

	merged := make(map[string]interface{}, len(gs.cfg.FixedParams)+len(combo))
	for k, v := range gs.cfg.FixedParams {
		merged[k] = v
	}
	for k, v := range combo {
		merged[k] = v
	}

	learner, err := gs.cfg.Factory.New(merged)
	if err != nil {
		trial.Error = err.Error()
		return trial
	}

	learned, err := learner.LearnStructure(ctx, gs.cfg.Dataset)
	if err != nil {
		trial.Error = err.Error()
		return trial
	}

	scores := make(map[string]float64, len(gs.cfg.Metrics))
	for _, metric := range gs.cfg.Metrics {
		value, err := metric.Compute(gs.golden, learned)
		if err != nil {
			// failed metric stays absent from the trial's scores
			continue
		}
		scores[metric.Name()] = value
	}
	trial.Scores = scores
	return trial
}

var errNotRun = errors.UsageError("grid search has not been run yet, call Run first")

// Results returns every trial in combination order.
func (gs *GridSearch) Results() ([]run.Trial, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if !gs.ran {
		return nil, errNotRun
	}
	out := make([]run.Trial, len(gs.results))
	copy(out, gs.results)
	return out, nil
}

// BestResult returns the trial with the best value for a metric,
// honoring its objective direction, or nil when no trial scored it.
func (gs *GridSearch) BestResult(metric string) (*run.Trial, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if !gs.ran {
		return nil, errNotRun
	}

	dir := gs.cfg.Objectives.Get(metric)
	var best *run.Trial
	for i := range gs.results {
		score, ok := gs.results[i].Score(metric)
		if !ok {
			continue
		}
		if best == nil {
			best = &gs.results[i]
			continue
		}
		bestScore, _ := best.Score(metric)
		if dir.better(score, bestScore) {
			best = &gs.results[i]
		}
	}
	if best == nil {
		return nil, nil
	}
	out := *best
	return &out, nil
}

// BestParams returns the parameter combination of the best trial for a
// metric, or nil when no trial scored it.
func (gs *GridSearch) BestParams(metric string) (map[string]interface{}, error) {
	best, err := gs.BestResult(metric)
	if err != nil || best == nil {
		return nil, err
	}
	return best.Params, nil
}

// BestScore returns the best value for a metric; ok is false when no
// trial scored it.
func (gs *GridSearch) BestScore(metric string) (value float64, ok bool, err error) {
	best, err := gs.BestResult(metric)
	if err != nil || best == nil {
		return 0, false, err
	}
	value, _ = best.Score(metric)
	return value, true, nil
}

// Report assembles the trials into an export-ready table: one row per
// trial, one column per parameter in grid order, one per metric in
// metric order, and a nullable error column.
func (gs *GridSearch) Report() (*Report, error) {
	trials, err := gs.Results()
	if err != nil {
		return nil, err
	}
	metricNames := make([]string, len(gs.cfg.Metrics))
	for i, m := range gs.cfg.Metrics {
		metricNames[i] = m.Name()
	}
	return &Report{
		Algorithm:   gs.cfg.Factory.Algorithm(),
		Dataset:     gs.cfg.Dataset.Name(),
		ParamNames:  gs.cfg.Grid.Names(),
		MetricNames: metricNames,
		Trials:      trials,
	}, nil
}

// Report is the tabular view of a finished grid search.
type Report struct {
	Algorithm   string
	Dataset     string
	ParamNames  []string
	MetricNames []string
	Trials      []run.Trial
}
