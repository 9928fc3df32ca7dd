package analysis

// Axis is one grid dimension: a parameter name and its ordered
// candidate values.
type Axis struct {
	Name   string
	Values []interface{}
}

// Grid is an ordered parameter grid. Axis order is preserved through
// combination enumeration and tabular export, so runs are reproducible.
type Grid []Axis

// Names returns the parameter names in grid order.
func (g Grid) Names() []string {
	names := make([]string, len(g))
	for i, axis := range g {
		names[i] = axis.Name
	}
	return names
}

// Size returns the number of combinations in the Cartesian product.
// An empty grid has exactly one combination: the empty assignment.
func (g Grid) Size() int {
	size := 1
	for _, axis := range g {
		size *= len(axis.Values)
	}
	return size
}

// Combinations enumerates the full Cartesian product in grid order,
// with the last axis varying fastest.
func (g Grid) Combinations() []map[string]interface{} {
	for _, axis := range g {
		if len(axis.Values) == 0 {
			return nil
		}
	}

	combos := make([]map[string]interface{}, 0, g.Size())
	indices := make([]int, len(g))

	for {
		combo := make(map[string]interface{}, len(g))
		for i, axis := range g {
			combo[axis.Name] = axis.Values[indices[i]]
		}
		combos = append(combos, combo)

		// odometer increment, rightmost axis fastest
		pos := len(g) - 1
		for pos >= 0 {
			indices[pos]++
			if indices[pos] < len(g[pos].Values) {
				break
			}
			indices[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}
	return combos
}
