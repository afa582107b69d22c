// SPDX-License-Identifier: MIT
// File: circuit.go
// Role: BuildCircuit entry point and the greedy restart walk.
// Determinism:
//   - Starts are tried in vertex-list order; within a walk the first
//     unconsumed column of the current row wins. Identical graphs therefore
//     yield identical traversal orders.
// Concurrency:
//   - None. BuildCircuit mutates arc orders on g; callers own g exclusively.
//     All walk state lives in a per-attempt value, never on the graph.

package euler

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphtask/bfs"
	"github.com/katalvlaran/graphtask/core"
	"github.com/katalvlaran/graphtask/matrix"
)

// BuildCircuit stamps every logical edge of g with its position (1..E) in an
// Eulerian circuit. Exactly one arc of each mirror pair is stamped.
//
// Stage 1 (Validate): options, nil graph, fresh snapshot, CheckFeasible.
// Stage 2 (Trivial): a graph without edges is a closed circuit of length 0.
// Stage 3 (Connectivity): optional, see WithConnectivityCheck.
// Stage 4 (Construct): run the selected Strategy.
//
// A Stage 4 failure leaves every arc order unset; earlier failures touch no
// order at all. No partial Circuit is ever returned.
// Returns ErrOptionViolation, ErrGraphNil, ErrEmptyGraph, ErrInvalidTopology,
// ErrNotEulerian, ErrNotClosed, ErrNotConstructible, ErrArcNotFound or the
// context error.
func BuildCircuit(g *core.Graph, opts ...Option) (*Circuit, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrGraphNil
	}

	// Stage 1: feasibility on a fresh snapshot.
	m, err := matrix.NewAdjacencyMatrix(g)
	if err != nil {
		return nil, fmt.Errorf("BuildCircuit: %w", err)
	}
	if err = CheckFeasible(m); err != nil {
		o.OnState(StateFailed, nil)
		return nil, err
	}

	// Stage 2: trivial circuit.
	budget := edgeBudget(m)
	start, _ := m.VertexAt(0)
	if budget == 0 {
		o.OnState(StateDone, start)
		return &Circuit{Start: start, Attempts: 1, Strategy: o.Strategy}, nil
	}

	// Stage 3: edges must sit in a single component.
	if o.CheckConnectivity {
		if err = requireSingleEdgeComponent(g, o); err != nil {
			o.OnState(StateFailed, nil)
			return nil, err
		}
	}

	// Stage 4: construct.
	var c *Circuit
	switch o.Strategy {
	case StrategyHierholzer:
		c, err = hierholzer(g, m, budget, o)
	default:
		c, err = restart(g, budget, o)
	}
	if err != nil {
		g.ResetOrders()
		o.OnState(StateFailed, nil)
		return nil, err
	}
	o.OnState(StateDone, c.Start)

	return c, nil
}

// errSecondEdgeComponent stops the component sweep once a second component
// holding edges is seeded.
var errSecondEdgeComponent = errors.New("second component with edges")

// requireSingleEdgeComponent fails with ErrNotConstructible when edges lie in
// more than one connected component. Isolated vertices are ignored.
// A component holds edges iff its seed (depth 0) has a nonzero degree.
func requireSingleEdgeComponent(g *core.Graph, o Options) error {
	withEdges := 0
	onVisit := func(v *core.Vertex, depth int) error {
		if depth != 0 || g.Degree(v) == 0 {
			return nil
		}
		withEdges++
		if withEdges > 1 {
			return errSecondEdgeComponent
		}
		return nil
	}

	_, err := bfs.Components(g, bfs.WithContext(o.Ctx), bfs.WithOnVisit(onVisit))
	switch {
	case errors.Is(err, errSecondEdgeComponent):
		return fmt.Errorf("BuildCircuit: edges span several components: %w", ErrNotConstructible)
	case err != nil:
		return fmt.Errorf("BuildCircuit: connectivity: %w", err)
	}

	return nil
}

// walk is the state of one greedy attempt.
type walk struct {
	g      *core.Graph
	m      *matrix.AdjacencyMatrix // working copy, consumed in place
	o      Options
	budget int
	arcs   []*core.Arc
}

// restart runs the greedy walk from every vertex in list order until one
// attempt stamps the whole edge budget.
// Complexity: O(V · (V² + E·deg)) worst case.
func restart(g *core.Graph, budget int, o Options) (*Circuit, error) {
	attempts := 0
	for startRow := 0; startRow < g.VertexCount(); startRow++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		// Every attempt begins from clean orders and a freshly derived matrix.
		g.ResetOrders()
		fresh, err := matrix.NewAdjacencyMatrix(g)
		if err != nil {
			return nil, fmt.Errorf("BuildCircuit: %w", err)
		}
		start, _ := fresh.VertexAt(startRow)
		if attempts > 0 {
			o.OnState(StateRetrying, start)
		}
		attempts++

		w := &walk{g: g, m: fresh.Clone(), o: o, budget: budget, arcs: make([]*core.Arc, 0, budget)}
		done, err := w.run(startRow)
		if err != nil {
			return nil, err
		}
		if done {
			return &Circuit{Start: start, Arcs: w.arcs, Attempts: attempts, Strategy: StrategyRestart}, nil
		}
	}

	return nil, fmt.Errorf("BuildCircuit: %d starts tried: %w", attempts, ErrNotConstructible)
}

// run walks from startRow. It returns (true, nil) on a closed walk over the
// whole budget, (false, nil) on a dead end, and an error for anything fatal.
func (w *walk) run(startRow int) (bool, error) {
	row := startRow
	for {
		if err := w.o.Ctx.Err(); err != nil {
			return false, err
		}
		at, _ := w.m.VertexAt(row)
		w.o.OnState(StateSeeking, at)

		col, err := w.m.FirstPresent(row)
		if err != nil {
			return false, fmt.Errorf("BuildCircuit: %w", err)
		}
		if col == matrix.NoColumn {
			w.o.OnState(StateStuck, at)
			return false, nil
		}

		arc, err := w.advance(row, col)
		if err != nil {
			return false, err
		}
		w.arcs = append(w.arcs, arc)
		arc.SetOrder(len(w.arcs))
		w.o.OnState(StateAdvancing, arc.Target())
		row = col

		if len(w.arcs) == w.budget {
			if row != startRow {
				return false, fmt.Errorf("BuildCircuit: walk ended at %v: %w", arc.Target(), ErrNotClosed)
			}
			return true, nil
		}
	}
}

// advance consumes cell (row, col) and resolves the arc it stands for.
func (w *walk) advance(row, col int) (*core.Arc, error) {
	if err := w.m.Consume(row, col); err != nil {
		return nil, fmt.Errorf("BuildCircuit: %w", err)
	}
	from, _ := w.m.VertexAt(row)
	to, _ := w.m.VertexAt(col)
	arc, err := resolveArc(w.g, from, to, w.o.LabelLookup)
	if err != nil {
		return nil, err
	}
	if arc.Order() != core.OrderUnset || (arc.Mirror() != nil && arc.Mirror().Order() != core.OrderUnset) {
		return nil, fmt.Errorf("BuildCircuit: arc %s already stamped: %w", arc.Label(), ErrInvalidTopology)
	}

	return arc, nil
}

// resolveArc maps a consumed cell back to its arc, either through from's
// incident list or through the synthesized label.
func resolveArc(g *core.Graph, from, to *core.Vertex, byLabel bool) (*core.Arc, error) {
	var (
		arc *core.Arc
		err error
	)
	if byLabel {
		arc, err = g.FindArcByLabel(core.ArcLabel(from.Label(), to.Label()))
	} else {
		arc, err = g.ArcBetween(from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("BuildCircuit: %w", err)
	}

	return arc, nil
}
