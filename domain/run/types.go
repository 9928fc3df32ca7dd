package run

import (
	"time"

	"causalbench/domain/core"
)

// Record summarizes one grid-search run for persistence and reporting.
// ParamNames and MetricNames keep the report's column order.
type Record struct {
	ID          core.RunID `db:"id" json:"id"`
	Algorithm   string     `db:"algorithm" json:"algorithm"`
	Dataset     string     `db:"dataset" json:"dataset"`
	ParamNames  []string   `json:"param_names"`
	MetricNames []string   `json:"metric_names"`
	TrialCount  int        `db:"trial_count" json:"trial_count"`
	StartedAt   time.Time  `db:"started_at" json:"started_at"`
	FinishedAt  time.Time  `db:"finished_at" json:"finished_at"`
}

// Trial is the immutable outcome of a single grid-search trial: the
// parameter assignment, the scores keyed by metric name (empty when the
// trial failed), and the failure message if any.
type Trial struct {
	Index  int                    `json:"index"`
	Params map[string]interface{} `json:"params"`
	Scores map[string]float64     `json:"scores,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// Failed reports whether the trial recorded an error.
func (t Trial) Failed() bool {
	return t.Error != ""
}

// Score returns the value for a metric and whether the trial has it.
func (t Trial) Score(metric string) (float64, bool) {
	v, ok := t.Scores[metric]
	return v, ok
}

// HasAll reports whether the trial has a score for every given metric.
func (t Trial) HasAll(metrics []string) bool {
	for _, m := range metrics {
		if _, ok := t.Scores[m]; !ok {
			return false
		}
	}
	return true
}
