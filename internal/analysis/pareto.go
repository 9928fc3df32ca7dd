package analysis

import (
	"causalbench/domain/run"
)

// ParetoFront selects the non-dominated trials under the given
// objectives. A trial participates only if it has a score for every
// objective metric; trials missing any objective are excluded
// entirely. Pairwise, O(n^2) in the participating trials. The front
// preserves input order.
func ParetoFront(trials []run.Trial, objectives Objectives) []run.Trial {
	names := objectives.Names()

	var valid []run.Trial
	for _, t := range trials {
		if t.HasAll(names) {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	var front []run.Trial
	for i, candidate := range valid {
		dominated := false
		for j, other := range valid {
			if i == j {
				continue
			}
			if dominates(other, candidate, names, objectives) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, candidate)
		}
	}
	return front
}

// dominates reports whether a is at least as good as b on every
// objective and strictly better on at least one.
func dominates(a, b run.Trial, names []string, objectives Objectives) bool {
	strictlyBetter := false
	for _, name := range names {
		dir := objectives.Get(name)
		av := a.Scores[name]
		bv := b.Scores[name]
		if dir.worse(av, bv) {
			return false
		}
		if dir.better(av, bv) {
			strictlyBetter = true
		}
	}
	return strictlyBetter
}

// BestPareto ranks the Pareto front by a tie-break metric and its own
// direction, returning the single best front member. Front members
// without a score for the tie-break metric cannot be ranked and are
// skipped; nil when the front is empty or no member has the metric.
func BestPareto(trials []run.Trial, objectives Objectives, rankBy string, rankDir Direction) *run.Trial {
	front := ParetoFront(trials, objectives)

	var best *run.Trial
	for i := range front {
		score, ok := front[i].Score(rankBy)
		if !ok {
			continue
		}
		if best == nil {
			best = &front[i]
			continue
		}
		bestScore, _ := best.Score(rankBy)
		if rankDir.better(score, bestScore) {
			best = &front[i]
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}
