package euler

import (
	"fmt"

	"github.com/katalvlaran/graphtask/core"
)

// Verify checks the traversal orders currently stamped on g:
//   - the stamped values are exactly 1..E, E = g.EdgeCount();
//   - no logical edge has both directions stamped;
//   - arc k ends where arc k+1 begins, and arc E ends where arc 1 begins.
//
// The reverse direction of an arc is its Mirror when it was created through
// CreateEdge, otherwise the arc found by ArcBetween(target, from). Graphs
// built from hand-made CreateArc pairs therefore verify like CreateEdge ones.
//
// A graph without edges verifies when no arc is stamped.
// Returns ErrGraphNil or ErrInvalidCircuit (wrapped with the first violation).
// Complexity: O(V + A·deg).
func Verify(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	e := g.EdgeCount()
	byOrder := make([]*core.Arc, e+1)
	for _, ao := range g.OrderReport() {
		if ao.Order == core.OrderUnset {
			continue
		}
		if ao.Order < 1 || ao.Order > e {
			return fmt.Errorf("Verify: arc %s order %d outside 1..%d: %w", ao.Arc.Label(), ao.Order, e, ErrInvalidCircuit)
		}
		if prev := byOrder[ao.Order]; prev != nil {
			return fmt.Errorf("Verify: order %d on %s and %s: %w", ao.Order, prev.Label(), ao.Arc.Label(), ErrInvalidCircuit)
		}
		if rev := reverseOf(g, ao.Arc); rev != nil && rev.Order() != core.OrderUnset {
			return fmt.Errorf("Verify: edge %s traversed in both directions: %w", ao.Arc.Label(), ErrInvalidCircuit)
		}
		byOrder[ao.Order] = ao.Arc
	}

	// Orders 1..E each on a distinct edge: every edge is used exactly once.
	for k := 1; k <= e; k++ {
		if byOrder[k] == nil {
			return fmt.Errorf("Verify: order %d missing: %w", k, ErrInvalidCircuit)
		}
	}

	for k := 1; k <= e; k++ {
		next := byOrder[k%e+1]
		if byOrder[k].Target() != next.From() {
			return fmt.Errorf("Verify: %s does not continue into %s: %w",
				byOrder[k].Label(), next.Label(), ErrInvalidCircuit)
		}
	}

	return nil
}

// reverseOf returns the opposite direction of a, or nil when g holds none.
func reverseOf(g *core.Graph, a *core.Arc) *core.Arc {
	if m := a.Mirror(); m != nil {
		return m
	}
	rev, err := g.ArcBetween(a.Target(), a.From())
	if err != nil {
		return nil
	}

	return rev
}
