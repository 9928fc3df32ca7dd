package analysis

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"causalbench/domain/run"
	"causalbench/ports"
)

// LogProgress logs grid-search events, one line per trial.
type LogProgress struct{}

var _ ports.Progress = LogProgress{}

func (LogProgress) SearchStarted(algorithm string, combinations int) {
	log.Printf("[grid] %s: %d parameter combinations", algorithm, combinations)
}

func (LogProgress) TrialStarted(index int, params map[string]interface{}) {
	log.Printf("[grid] trial %d starting: %s", index, formatParams(params))
}

func (LogProgress) TrialCompleted(t run.Trial) {
	if t.Failed() {
		log.Printf("[grid] trial %d FAILED: %s", t.Index, t.Error)
		return
	}
	log.Printf("[grid] trial %d done: %s", t.Index, formatScores(t.Scores))
}

func (LogProgress) SearchFinished(trials []run.Trial) {
	failed := 0
	for _, t := range trials {
		if t.Failed() {
			failed++
		}
	}
	log.Printf("[grid] finished: %d trials, %d failed", len(trials), failed)
}

func formatParams(params map[string]interface{}) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, params[k])
	}
	return strings.Join(parts, ", ")
}

func formatScores(scores map[string]float64) string {
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%.4f", k, scores[k])
	}
	return strings.Join(parts, ", ")
}
