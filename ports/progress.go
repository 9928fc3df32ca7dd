package ports

import (
	"causalbench/domain/run"
)

// Progress receives grid-search lifecycle events. Calling code (CLI,
// logging, UI) subscribes an implementation; the engine itself never
// prints.
type Progress interface {
	// SearchStarted fires once before the first trial, with the total
	// number of parameter combinations.
	SearchStarted(algorithm string, combinations int)

	// TrialStarted fires when a trial begins.
	TrialStarted(index int, params map[string]interface{})

	// TrialCompleted fires when a trial finishes, successfully or not.
	TrialCompleted(t run.Trial)

	// SearchFinished fires once after every trial has completed.
	SearchFinished(trials []run.Trial)
}

// NopProgress discards all events.
type NopProgress struct{}

func (NopProgress) SearchStarted(string, int)                 {}
func (NopProgress) TrialStarted(int, map[string]interface{})  {}
func (NopProgress) TrialCompleted(run.Trial)                  {}
func (NopProgress) SearchFinished([]run.Trial)                {}
