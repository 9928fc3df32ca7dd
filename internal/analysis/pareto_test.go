package analysis

import (
	"testing"

	"causalbench/domain/run"
)

func trialWith(index int, scores map[string]float64) run.Trial {
	return run.Trial{Index: index, Scores: scores}
}

func frontIndexes(front []run.Trial) []int {
	out := make([]int, len(front))
	for i, t := range front {
		out[i] = t.Index
	}
	return out
}

func TestParetoFront_NonDominated(t *testing.T) {
	objectives := Objectives{"shd": LowerIsBetter, "f1": HigherIsBetter}
	trials := []run.Trial{
		trialWith(0, map[string]float64{"shd": 2, "f1": 0.9}),
		trialWith(1, map[string]float64{"shd": 1, "f1": 0.7}),
		trialWith(2, map[string]float64{"shd": 3, "f1": 0.8}), // dominated by 0
		trialWith(3, map[string]float64{"shd": 2, "f1": 0.5}), // dominated by 0 and 1
	}

	front := ParetoFront(trials, objectives)
	got := frontIndexes(front)
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("front = %v, want [0 1]", got)
	}
}

func TestParetoFront_EqualTrialsBothSurvive(t *testing.T) {
	objectives := Objectives{"shd": LowerIsBetter}
	trials := []run.Trial{
		trialWith(0, map[string]float64{"shd": 1}),
		trialWith(1, map[string]float64{"shd": 1}),
	}

	front := ParetoFront(trials, objectives)
	if len(front) != 2 {
		t.Errorf("equal trials dominate neither, front = %v", frontIndexes(front))
	}
}

func TestParetoFront_MissingObjectiveExcluded(t *testing.T) {
	objectives := Objectives{"shd": LowerIsBetter, "f1": HigherIsBetter}
	trials := []run.Trial{
		trialWith(0, map[string]float64{"shd": 5, "f1": 0.2}),
		trialWith(1, map[string]float64{"shd": 0}), // no f1: out, even though its shd wins
		trialWith(2, nil),                          // failed trial
	}

	front := ParetoFront(trials, objectives)
	got := frontIndexes(front)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("front = %v, want [0]", got)
	}
}

func TestParetoFront_Empty(t *testing.T) {
	objectives := Objectives{"shd": LowerIsBetter}
	if front := ParetoFront(nil, objectives); front != nil {
		t.Errorf("front = %v, want nil", front)
	}
	onlyFailed := []run.Trial{trialWith(0, nil)}
	if front := ParetoFront(onlyFailed, objectives); front != nil {
		t.Errorf("front = %v, want nil", front)
	}
}

func TestParetoFront_IsAntichain(t *testing.T) {
	objectives := Objectives{"shd": LowerIsBetter, "f1": HigherIsBetter}
	trials := []run.Trial{
		trialWith(0, map[string]float64{"shd": 4, "f1": 0.95}),
		trialWith(1, map[string]float64{"shd": 3, "f1": 0.90}),
		trialWith(2, map[string]float64{"shd": 2, "f1": 0.80}),
		trialWith(3, map[string]float64{"shd": 2, "f1": 0.85}),
		trialWith(4, map[string]float64{"shd": 5, "f1": 0.60}),
	}

	front := ParetoFront(trials, objectives)
	names := objectives.Names()
	for i := range front {
		for j := range front {
			if i == j {
				continue
			}
			if dominates(front[i], front[j], names, objectives) {
				t.Errorf("front member %d dominates front member %d", front[i].Index, front[j].Index)
			}
		}
	}
}

func TestBestPareto_RanksByTieBreak(t *testing.T) {
	objectives := Objectives{"shd": LowerIsBetter, "f1": HigherIsBetter}
	trials := []run.Trial{
		trialWith(0, map[string]float64{"shd": 2, "f1": 0.9}),
		trialWith(1, map[string]float64{"shd": 1, "f1": 0.7}),
	}

	best := BestPareto(trials, objectives, "shd", LowerIsBetter)
	if best == nil || best.Index != 1 {
		t.Errorf("best by shd = %+v, want trial 1", best)
	}

	best = BestPareto(trials, objectives, "f1", HigherIsBetter)
	if best == nil || best.Index != 0 {
		t.Errorf("best by f1 = %+v, want trial 0", best)
	}
}

func TestBestPareto_SkipsMembersMissingRankMetric(t *testing.T) {
	objectives := Objectives{"shd": LowerIsBetter}
	trials := []run.Trial{
		trialWith(0, map[string]float64{"shd": 1}),
		trialWith(1, map[string]float64{"shd": 1, "f1": 0.7}),
	}

	// trial 0 has no f1; a zero-value lookup would beat 0.7 under
	// lower-is-better ranking
	best := BestPareto(trials, objectives, "f1", LowerIsBetter)
	if best == nil || best.Index != 1 {
		t.Errorf("best = %+v, want trial 1", best)
	}
}

func TestBestPareto_NoMemberHasRankMetric(t *testing.T) {
	objectives := Objectives{"shd": LowerIsBetter}
	trials := []run.Trial{
		trialWith(0, map[string]float64{"shd": 1}),
	}

	if best := BestPareto(trials, objectives, "f1", LowerIsBetter); best != nil {
		t.Errorf("best = %+v, want nil when nothing can be ranked", best)
	}
}

func TestBestPareto_EmptyFront(t *testing.T) {
	objectives := Objectives{"shd": LowerIsBetter}
	if best := BestPareto(nil, objectives, "shd", LowerIsBetter); best != nil {
		t.Errorf("best = %+v, want nil", best)
	}
}
