package metrics

import (
	"causalbench/domain/graph"
	"causalbench/ports"
)

// OrderCompleter completes a CPDAG to a DAG by orienting every
// undirected edge from the lower to the higher node index. The
// orientation is always acyclic but ignores Meek's rules, so it is a
// baseline completer; learner adapters can supply their own.
type OrderCompleter struct{}

var _ ports.DAGCompleter = OrderCompleter{}

func (OrderCompleter) Complete(s *graph.Structure) (*graph.Structure, error) {
	b := graph.NewBuilder(s.NodeCount())
	for _, arc := range s.Arcs() {
		b.AddArc(arc.Tail, arc.Head)
	}
	for _, edge := range s.Edges() {
		b.AddArc(edge.X, edge.Y)
	}
	return b.Build()
}
