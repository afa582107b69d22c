package euler

import (
	"fmt"

	"github.com/katalvlaran/graphtask/core"
	"github.com/katalvlaran/graphtask/matrix"
)

// hierholzer builds the circuit by tour splicing over a clone of m.
// The walk starts at the first row with a nonzero degree; the next edge out of
// a row is always its first unconsumed column, as in the greedy walk.
// Complexity: O(V² + E·(V + deg)).
func hierholzer(g *core.Graph, m *matrix.AdjacencyMatrix, budget int, o Options) (*Circuit, error) {
	work := m.Clone()
	startRow := 0
	for i, d := range work.Degrees() {
		if d > 0 {
			startRow = i
			break
		}
	}

	// Explicit stack of rows; a row is popped onto the tour once exhausted.
	stack := []int{startRow}
	tour := make([]int, 0, budget+1)
	for len(stack) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		u := stack[len(stack)-1]
		at, _ := work.VertexAt(u)
		o.OnState(StateSeeking, at)

		v, err := work.FirstPresent(u)
		if err != nil {
			return nil, fmt.Errorf("BuildCircuit: %w", err)
		}
		if v == matrix.NoColumn {
			// no more edges: backtrack
			o.OnState(StateStuck, at)
			tour = append(tour, u)
			stack = stack[:len(stack)-1]
			continue
		}
		if err = work.Consume(u, v); err != nil {
			return nil, fmt.Errorf("BuildCircuit: %w", err)
		}
		stack = append(stack, v)
	}

	// Edges outside the start's component are never reached.
	if len(tour) != budget+1 {
		return nil, fmt.Errorf("BuildCircuit: tour covers %d of %d edges: %w",
			len(tour)-1, budget, ErrNotConstructible)
	}

	// The tour is collected backwards; stamp it in walk order.
	for l, r := 0, len(tour)-1; l < r; l, r = l+1, r-1 {
		tour[l], tour[r] = tour[r], tour[l]
	}
	g.ResetOrders()
	arcs := make([]*core.Arc, 0, budget)
	for k := 0; k+1 < len(tour); k++ {
		from, _ := work.VertexAt(tour[k])
		to, _ := work.VertexAt(tour[k+1])
		arc, err := resolveArc(g, from, to, o.LabelLookup)
		if err != nil {
			return nil, err
		}
		arcs = append(arcs, arc)
		arc.SetOrder(len(arcs))
		o.OnState(StateAdvancing, to)
	}
	start, _ := work.VertexAt(startRow)

	return &Circuit{Start: start, Arcs: arcs, Attempts: 1, Strategy: StrategyHierholzer}, nil
}
