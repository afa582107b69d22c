package euler

import (
	"fmt"

	"github.com/katalvlaran/graphtask/matrix"
)

// CheckFeasible reports whether the snapshot m can carry an Eulerian circuit.
//
// Stage 1 (Validate): nil or zero-size matrix → ErrEmptyGraph.
// Stage 2 (Shape): every cell in {0,1}, zero diagonal, symmetric; otherwise
// ErrInvalidTopology (a consumed marker must never appear before building).
// Stage 3 (Parity): any row with an odd count of nonzero off-diagonal cells
// → ErrNotEulerian.
//
// Connectivity is assumed, not checked.
// Complexity: O(V²).
func CheckFeasible(m *matrix.AdjacencyMatrix) error {
	if m == nil || m.Size() == 0 {
		return ErrEmptyGraph
	}

	n := m.Size()
	cells := m.Cells()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			c := cells[i][j]
			switch {
			case c == matrix.CellConsumed:
				return fmt.Errorf("CheckFeasible: consumed marker at (%d,%d): %w", i, j, ErrInvalidTopology)
			case c != matrix.CellAbsent && c != matrix.CellPresent:
				return fmt.Errorf("CheckFeasible: cell (%d,%d)=%d: %w", i, j, c, ErrInvalidTopology)
			case i == j && c != matrix.CellAbsent:
				return fmt.Errorf("CheckFeasible: self-loop at row %d: %w", i, ErrInvalidTopology)
			case c != cells[j][i]:
				return fmt.Errorf("CheckFeasible: asymmetric cells (%d,%d)/(%d,%d): %w", i, j, j, i, ErrInvalidTopology)
			}
		}
	}

	for i, d := range m.Degrees() {
		if d%2 != 0 {
			v, _ := m.VertexAt(i)
			return fmt.Errorf("CheckFeasible: vertex %v has degree %d: %w", v, d, ErrNotEulerian)
		}
	}

	return nil
}

// edgeBudget returns the number of undirected edges described by a feasible
// snapshot: half the sum of row degrees.
func edgeBudget(m *matrix.AdjacencyMatrix) int {
	sum := 0
	for _, d := range m.Degrees() {
		sum += d
	}

	return sum / 2
}
