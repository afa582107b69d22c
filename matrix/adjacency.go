// SPDX-License-Identifier: MIT
// Package: graphtask/matrix
//
// adjacency.go — AdjacencyMatrix snapshot and its derivation from core.Graph.
//
// Contract:
//   - NewAdjacencyMatrix performs exactly two passes: numbering (vertex list
//     order → 0..N-1) and counting (every arc i→j increments cell[i][j]).
//   - The numbering table is owned by the matrix; vertices carry no scratch state.
//   - Public indexers return ErrOutOfRange instead of panicking.
//
// Complexity:
//   - Derivation: O(V² + A) time (zeroed grid + arc sweep), O(V²) space.
//   - At/Set/Consume: O(1). FirstPresent/Degrees: O(V) per row.

package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphtask/core"
)

// Cell values of an adjacency matrix.
const (
	CellAbsent   = 0
	CellPresent  = 1
	CellConsumed = 2
)

// NoColumn is returned by FirstPresent when a row has no present cell.
const NoColumn = -1

// AdjacencyMatrix is a square grid of arc counts over a fixed vertex numbering.
type AdjacencyMatrix struct {
	n     int                  // dimension
	data  []int                // row-major cells, len n*n
	index map[*core.Vertex]int // vertex → row/col
	byIdx []*core.Vertex       // row/col → vertex
}

// NewAdjacencyMatrix derives a fresh snapshot of g.
// Stage 1 (Validate): reject nil graph.
// Stage 2 (Number): assign 0-based indices in vertex list order.
// Stage 3 (Count): increment cell[i][j] for every arc i→j.
// Returns ErrGraphNil.
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// Pass 1: numbering.
	n := g.VertexCount()
	m := &AdjacencyMatrix{
		n:     n,
		data:  make([]int, n*n),
		index: make(map[*core.Vertex]int, n),
		byIdx: make([]*core.Vertex, 0, n),
	}
	var v *core.Vertex
	for v = g.First(); v != nil; v = v.Next() {
		m.index[v] = len(m.byIdx)
		m.byIdx = append(m.byIdx, v)
	}

	// Pass 2: counting.
	var (
		a    *core.Arc
		i, j int
		ok   bool
	)
	for v = g.First(); v != nil; v = v.Next() {
		i = m.index[v]
		for a = v.FirstArc(); a != nil; a = a.Next() {
			if j, ok = m.index[a.Target()]; !ok {
				// Arc into a vertex outside the list: store corruption.
				return nil, fmt.Errorf("NewAdjacencyMatrix: arc %s: %w", a.Label(), ErrUnknownVertex)
			}
			m.data[i*n+j]++
		}
	}

	return m, nil
}

// Size returns the matrix dimension (vertex count of the snapshot).
func (m *AdjacencyMatrix) Size() int { return m.n }

// Index returns the row/column number assigned to v by this snapshot.
func (m *AdjacencyMatrix) Index(v *core.Vertex) (int, error) {
	i, ok := m.index[v]
	if !ok {
		return 0, fmt.Errorf("Index(%v): %w", v, ErrUnknownVertex)
	}

	return i, nil
}

// VertexAt returns the vertex numbered i by this snapshot.
func (m *AdjacencyMatrix) VertexAt(i int) (*core.Vertex, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("VertexAt(%d): %w", i, ErrOutOfRange)
	}

	return m.byIdx[i], nil
}

// At returns cell[i][j].
func (m *AdjacencyMatrix) At(i, j int) (int, error) {
	if err := m.check(i, j); err != nil {
		return 0, fmt.Errorf("At: %w", err)
	}

	return m.data[i*m.n+j], nil
}

// Set overwrites cell[i][j] with v.
func (m *AdjacencyMatrix) Set(i, j, v int) error {
	if err := m.check(i, j); err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	m.data[i*m.n+j] = v

	return nil
}

// Row returns a copy of row i.
func (m *AdjacencyMatrix) Row(i int) ([]int, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}

	return append([]int(nil), m.data[i*m.n:(i+1)*m.n]...), nil
}

// FirstPresent scans row i left to right and returns the first column holding
// CellPresent, or NoColumn when the row has none.
func (m *AdjacencyMatrix) FirstPresent(i int) (int, error) {
	if i < 0 || i >= m.n {
		return NoColumn, fmt.Errorf("FirstPresent(%d): %w", i, ErrOutOfRange)
	}
	row := m.data[i*m.n : (i+1)*m.n]
	for j, c := range row {
		if c == CellPresent {
			return j, nil
		}
	}

	return NoColumn, nil
}

// Consume marks the edge i→j walked: cell[i][j] becomes CellConsumed and the
// mirror cell[j][i] becomes CellAbsent, so neither direction is offered again.
func (m *AdjacencyMatrix) Consume(i, j int) error {
	if err := m.check(i, j); err != nil {
		return fmt.Errorf("Consume: %w", err)
	}
	m.data[i*m.n+j] = CellConsumed
	m.data[j*m.n+i] = CellAbsent

	return nil
}

// Degrees returns, per row, the number of nonzero off-diagonal cells.
// Complexity: O(V²).
func (m *AdjacencyMatrix) Degrees() []int {
	out := make([]int, m.n)
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if i != j && m.data[i*m.n+j] != CellAbsent {
				out[i]++
			}
		}
	}

	return out
}

// Clone returns an independent working copy sharing the vertex numbering.
// The numbering table is read-only after derivation, so sharing it is safe.
func (m *AdjacencyMatrix) Clone() *AdjacencyMatrix {
	return &AdjacencyMatrix{
		n:     m.n,
		data:  append([]int(nil), m.data...),
		index: m.index,
		byIdx: m.byIdx,
	}
}

// Equal reports whether o has the same dimension and identical cells.
// Numbering tables are not compared: two derivations of an unchanged graph
// assign the same numbers.
func (m *AdjacencyMatrix) Equal(o *AdjacencyMatrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether cell[i][j] == cell[j][i] for all i, j.
func (m *AdjacencyMatrix) IsSymmetric() bool {
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return false
			}
		}
	}

	return true
}

// Cells returns a copy of the grid as a slice of rows.
func (m *AdjacencyMatrix) Cells() [][]int {
	out := make([][]int, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = append([]int(nil), m.data[i*m.n:(i+1)*m.n]...)
	}

	return out
}

// String renders one row per line, every cell followed by ", ".
func (m *AdjacencyMatrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			sb.WriteString(strconv.Itoa(m.data[i*m.n+j]))
			sb.WriteString(", ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// check validates a (row, col) pair.
func (m *AdjacencyMatrix) check(i, j int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, m.n, m.n, ErrOutOfRange)
	}

	return nil
}
