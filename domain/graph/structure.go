package graph

import (
	"fmt"
	"sort"
	"strings"

	"causalbench/domain/core"
)

// NodeID indexes a variable in the node set. Node i corresponds to
// feature i of the dataset the structure was learned from.
type NodeID int

// Arc is a directed link Tail -> Head.
type Arc struct {
	Tail NodeID
	Head NodeID
}

// Edge is an undirected link between X and Y, stored with X < Y.
type Edge struct {
	X NodeID
	Y NodeID
}

// NewEdge normalizes the endpoint order.
func NewEdge(a, b NodeID) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{X: a, Y: b}
}

// Structure is a CPDAG: a fixed node set with directed arcs and
// undirected edges. For any pair of nodes at most one of
// {arc in either direction, edge} holds. Read-only once built.
type Structure struct {
	nodes int
	arcs  map[Arc]struct{}
	edges map[Edge]struct{}

	// insertion order, for deterministic enumeration
	arcList  []Arc
	edgeList []Edge
}

// Builder accumulates arcs and edges, enforcing the pair-exclusivity
// invariant on every addition.
type Builder struct {
	s   *Structure
	err error
}

// NewBuilder starts a structure over nodes 0..n-1.
func NewBuilder(n int) *Builder {
	return &Builder{
		s: &Structure{
			nodes: n,
			arcs:  make(map[Arc]struct{}),
			edges: make(map[Edge]struct{}),
		},
	}
}

// AddArc adds a directed link tail -> head.
func (b *Builder) AddArc(tail, head NodeID) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.s.checkPair(tail, head); err != nil {
		b.err = err
		return b
	}
	arc := Arc{Tail: tail, Head: head}
	b.s.arcs[arc] = struct{}{}
	b.s.arcList = append(b.s.arcList, arc)
	return b
}

// AddEdge adds an undirected link between a and b.
func (bu *Builder) AddEdge(a, b NodeID) *Builder {
	if bu.err != nil {
		return bu
	}
	if err := bu.s.checkPair(a, b); err != nil {
		bu.err = err
		return bu
	}
	edge := NewEdge(a, b)
	bu.s.edges[edge] = struct{}{}
	bu.s.edgeList = append(bu.s.edgeList, edge)
	return bu
}

// Build returns the finished structure, or the first error encountered.
func (b *Builder) Build() (*Structure, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.s, nil
}

func (s *Structure) checkPair(a, b NodeID) error {
	if a < 0 || int(a) >= s.nodes || b < 0 || int(b) >= s.nodes {
		return fmt.Errorf("%w: (%d, %d) with %d nodes", core.ErrNodeOutOfRange, a, b, s.nodes)
	}
	if a == b {
		return fmt.Errorf("%w: node %d", core.ErrSelfLoop, a)
	}
	if s.HasArc(a, b) || s.HasArc(b, a) || s.HasEdge(a, b) {
		return fmt.Errorf("%w: (%d, %d)", core.ErrPairConflict, a, b)
	}
	return nil
}

// NodeCount returns the size of the node set.
func (s *Structure) NodeCount() int {
	return s.nodes
}

// ArcCount returns the number of directed arcs.
func (s *Structure) ArcCount() int {
	return len(s.arcs)
}

// EdgeCount returns the number of undirected edges.
func (s *Structure) EdgeCount() int {
	return len(s.edges)
}

// HasArc reports whether the arc tail -> head exists.
func (s *Structure) HasArc(tail, head NodeID) bool {
	_, ok := s.arcs[Arc{Tail: tail, Head: head}]
	return ok
}

// HasEdge reports whether an undirected edge links a and b.
func (s *Structure) HasEdge(a, b NodeID) bool {
	_, ok := s.edges[NewEdge(a, b)]
	return ok
}

// Linked reports whether the pair is connected by an arc (either
// direction) or an edge.
func (s *Structure) Linked(a, b NodeID) bool {
	return s.HasArc(a, b) || s.HasArc(b, a) || s.HasEdge(a, b)
}

// Arcs returns the directed arcs in insertion order.
func (s *Structure) Arcs() []Arc {
	out := make([]Arc, len(s.arcList))
	copy(out, s.arcList)
	return out
}

// Edges returns the undirected edges in insertion order.
func (s *Structure) Edges() []Edge {
	out := make([]Edge, len(s.edgeList))
	copy(out, s.edgeList)
	return out
}

// SameNodeSet reports whether two structures share a node set.
func (s *Structure) SameNodeSet(other *Structure) bool {
	return s.nodes == other.nodes
}

func (s *Structure) String() string {
	arcs := s.Arcs()
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].Tail != arcs[j].Tail {
			return arcs[i].Tail < arcs[j].Tail
		}
		return arcs[i].Head < arcs[j].Head
	})
	edges := s.Edges()
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].X != edges[j].X {
			return edges[i].X < edges[j].X
		}
		return edges[i].Y < edges[j].Y
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "Structure{nodes=%d", s.nodes)
	for _, a := range arcs {
		fmt.Fprintf(&sb, ", %d->%d", a.Tail, a.Head)
	}
	for _, e := range edges {
		fmt.Fprintf(&sb, ", %d-%d", e.X, e.Y)
	}
	sb.WriteString("}")
	return sb.String()
}
