package euler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtask/builder"
	"github.com/katalvlaran/graphtask/core"
	"github.com/katalvlaran/graphtask/matrix"
)

// On feasible input a greedy walk can only stop at its start, so ErrNotClosed
// needs an edge budget that disagrees with the store.
func TestWalk_BudgetSpentAwayFromStart(t *testing.T) {
	g, err := builder.BuildGraph("C4", nil, builder.Cycle(4))
	require.NoError(t, err)
	m, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	w := &walk{g: g, m: m.Clone(), o: DefaultOptions(), budget: 2}
	done, err := w.run(0)
	require.False(t, done)
	require.ErrorIs(t, err, ErrNotClosed)
	require.Len(t, w.arcs, 2)
	require.Equal(t, "v3", w.arcs[1].Target().Label())
}

func TestWalk_DeadEndIsNotAnError(t *testing.T) {
	g, err := builder.BuildGraph("C4", nil, builder.Cycle(4))
	require.NoError(t, err)
	m, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	// Drop v4—v1 from the working copy only: the walk stalls at v4.
	work := m.Clone()
	require.NoError(t, work.Set(3, 0, matrix.CellAbsent))
	require.NoError(t, work.Set(0, 3, matrix.CellAbsent))

	var stuckAt *core.Vertex
	o := DefaultOptions()
	o.OnState = func(s State, at *core.Vertex) {
		if s == StateStuck {
			stuckAt = at
		}
	}
	w := &walk{g: g, m: work, o: o, budget: 4}
	done, err := w.run(0)
	require.NoError(t, err)
	require.False(t, done)
	require.Len(t, w.arcs, 3)
	require.Equal(t, "v4", stuckAt.Label())
}

func TestRequireSingleEdgeComponent(t *testing.T) {
	tests := []struct {
		name    string
		labels  []string
		pairs   [][2]int
		wantErr error
	}{
		{name: "isolated seed first", labels: []string{"z", "a", "b", "c"},
			pairs: [][2]int{{1, 2}, {2, 3}, {3, 1}}},
		{name: "isolated between", labels: []string{"a", "b", "z", "c", "d", "e"},
			pairs: [][2]int{{0, 1}, {1, 3}, {3, 0}, {3, 4}, {4, 5}, {5, 3}}},
		{name: "two triangles", labels: []string{"a", "b", "c", "z", "d", "e", "f"},
			pairs:   [][2]int{{0, 1}, {1, 2}, {2, 0}, {4, 5}, {5, 6}, {6, 4}},
			wantErr: ErrNotConstructible},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph("G", nil, builder.EdgeList(tc.labels, tc.pairs))
			require.NoError(t, err)
			err = requireSingleEdgeComponent(g, DefaultOptions())
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
