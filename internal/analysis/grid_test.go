package analysis

import (
	"reflect"
	"testing"
)

func TestGrid_CombinationOrder(t *testing.T) {
	g := Grid{
		{Name: "alpha", Values: []interface{}{0.01, 0.05}},
		{Name: "depth", Values: []interface{}{1, 2}},
	}

	combos := g.Combinations()
	want := []map[string]interface{}{
		{"alpha": 0.01, "depth": 1},
		{"alpha": 0.01, "depth": 2},
		{"alpha": 0.05, "depth": 1},
		{"alpha": 0.05, "depth": 2},
	}
	if !reflect.DeepEqual(combos, want) {
		t.Errorf("combinations = %v, want %v", combos, want)
	}
	if g.Size() != 4 {
		t.Errorf("Size = %d, want 4", g.Size())
	}
	if !reflect.DeepEqual(g.Names(), []string{"alpha", "depth"}) {
		t.Errorf("Names = %v", g.Names())
	}
}

func TestGrid_Empty(t *testing.T) {
	combos := Grid{}.Combinations()
	if len(combos) != 1 || len(combos[0]) != 0 {
		t.Errorf("empty grid should yield one empty combination, got %v", combos)
	}
}

func TestGrid_EmptyAxis(t *testing.T) {
	g := Grid{{Name: "alpha", Values: nil}}
	if combos := g.Combinations(); combos != nil {
		t.Errorf("axis without values should yield no combinations, got %v", combos)
	}
	if g.Size() != 0 {
		t.Errorf("Size = %d, want 0", g.Size())
	}
}
