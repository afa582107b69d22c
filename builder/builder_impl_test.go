// File: builder_impl_test.go
// Package builder_test contains functional tests for every Constructor,
// verifying counts, connectivity, simplicity, determinism and validation.
package builder_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/graphtask/bfs"
	"github.com/katalvlaran/graphtask/builder"
	"github.com/katalvlaran/graphtask/core"
	"github.com/katalvlaran/graphtask/matrix"
	"github.com/stretchr/testify/require"
)

// vertexLabels returns labels in vertex-list order.
func vertexLabels(g *core.Graph) []string {
	var out []string
	for _, v := range g.Vertices() {
		out = append(out, v.Label())
	}
	return out
}

// requireSimpleConnected asserts the generator invariants on g.
func requireSimpleConnected(t *testing.T, g *core.Graph, n, m int) {
	t.Helper()
	require.Equal(t, n, g.VertexCount(), "vertex count")
	require.Equal(t, 2*m, g.ArcCount(), "arc count")
	require.Equal(t, m, g.EdgeCount(), "edge count")
	require.Len(t, g.Edges(), m)

	ok, err := bfs.Connected(g)
	require.NoError(t, err)
	require.True(t, ok, "graph must be connected")

	adj, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)
	for i, row := range adj.Cells() {
		require.Zero(t, row[i], "self-loop at row %d", i)
		for j, c := range row {
			require.LessOrEqual(t, c, 1, "parallel arcs at (%d,%d)", i, j)
		}
	}
	require.True(t, adj.IsSymmetric())

	// Every arc has its mirror.
	for _, e := range g.Edges() {
		require.Same(t, e.Forward, e.Reverse.Mirror())
		require.Same(t, e.Forward.From(), e.Reverse.Target())
	}
}

func TestRandomSimple_Properties(t *testing.T) {
	t.Parallel()

	cases := []struct{ n, m int }{
		{1, 0},
		{2, 1},
		{4, 4},
		{6, 9},
		{6, 15}, // complete K6
		{10, 9}, // tree only
		{25, 60},
		{40, 300},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(fmt.Sprintf("n=%d,m=%d", tc.n, tc.m), func(t *testing.T) {
			t.Parallel()
			for seed := int64(1); seed <= 5; seed++ {
				g, err := builder.BuildGraph("G", []builder.BuilderOption{builder.WithSeed(seed)},
					builder.RandomSimple(tc.n, tc.m))
				require.NoError(t, err, "seed=%d", seed)
				requireSimpleConnected(t, g, tc.n, tc.m)
			}
		})
	}
}

func TestRandomSimple_EmptyGraph(t *testing.T) {
	g, err := builder.BuildGraph("G", nil, builder.RandomSimple(0, 0))
	require.NoError(t, err)
	require.Equal(t, 0, g.VertexCount())
	require.Nil(t, g.First())
}

func TestRandomSimple_InvalidArguments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		n, m int
		opts []builder.BuilderOption
	}{
		{name: "negative n", n: -1, m: 0},
		{name: "too many vertices", n: 2501, m: 2500},
		{name: "too few edges", n: 5, m: 3},
		{name: "too many edges", n: 5, m: 11},
		{name: "edges on empty", n: 0, m: 1},
		{name: "custom max", n: 11, m: 10, opts: []builder.BuilderOption{builder.WithMaxVertices(10)}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			opts := append([]builder.BuilderOption{builder.WithSeed(1)}, tc.opts...)
			g, err := builder.BuildGraph("G", opts, builder.RandomSimple(tc.n, tc.m))
			require.Nil(t, g)
			require.ErrorIs(t, err, builder.ErrInvalidArgument)
		})
	}
}

func TestRandomSimple_NoPartialMutationOnInvalid(t *testing.T) {
	g := core.NewGraph("G")
	err := builder.Apply(g, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSimple(4, 7))
	require.ErrorIs(t, err, builder.ErrInvalidArgument)
	require.Equal(t, 0, g.VertexCount())
}

func TestRandomSimple_NeedsRand(t *testing.T) {
	_, err := builder.BuildGraph("G", nil, builder.RandomSimple(3, 2))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	// A single vertex involves no draws.
	g, err := builder.BuildGraph("G", nil, builder.RandomSimple(1, 0))
	require.NoError(t, err)
	require.Equal(t, []string{"v1"}, vertexLabels(g))
}

func TestRandomSimple_DeterministicPerSeed(t *testing.T) {
	build := func(seed int64) string {
		g, err := builder.BuildGraph("G", []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSimple(15, 40))
		require.NoError(t, err)
		return g.String()
	}
	if diff := cmp.Diff(build(99), build(99)); diff != "" {
		t.Fatalf("same seed produced different graphs (-a +b):\n%s", diff)
	}

	// WithRand shares the caller's stream.
	a, err := builder.BuildGraph("G", []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(99)))},
		builder.RandomSimple(15, 40))
	require.NoError(t, err)
	require.Equal(t, build(99), a.String())
}

func TestRandomTree(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := builder.BuildGraph("T", []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomTree(12))
		require.NoError(t, err)
		requireSimpleConnected(t, g, 12, 11)
		require.Equal(t, []string{"v1", "v2", "v3", "v4", "v5", "v6", "v7", "v8", "v9", "v10", "v11", "v12"},
			vertexLabels(g))
	}

	_, err := builder.BuildGraph("T", nil, builder.RandomTree(2))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph("T", nil, builder.RandomTree(-3))
	require.ErrorIs(t, err, builder.ErrInvalidArgument)
}

func TestRandomTree_ParentPlacedEarlier(t *testing.T) {
	// The first created vertex is vn; v(n-1) can only attach to it.
	g, err := builder.BuildGraph("T", []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomTree(5))
	require.NoError(t, err)
	v5, err := g.FindVertex("v5")
	require.NoError(t, err)
	v4, err := g.FindVertex("v4")
	require.NoError(t, err)
	_, err = g.ArcBetween(v5, v4)
	require.NoError(t, err)
}

func TestFixtures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctor    builder.Constructor
		wantV   int
		wantE   int
		wantDeg []int
	}{
		{name: "Cycle(4)", ctor: builder.Cycle(4), wantV: 4, wantE: 4, wantDeg: []int{2, 2, 2, 2}},
		{name: "Path(3)", ctor: builder.Path(3), wantV: 3, wantE: 2, wantDeg: []int{1, 2, 1}},
		{name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10, wantDeg: []int{4, 4, 4, 4, 4}},
		{name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0, wantDeg: []int{0}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph("F", nil, tc.ctor)
			require.NoError(t, err)
			requireSimpleConnected(t, g, tc.wantV, tc.wantE)
			var deg []int
			for _, d := range g.DegreeReport() {
				deg = append(deg, d.Degree)
			}
			require.Equal(t, tc.wantDeg, deg)
		})
	}
}

func TestCycle_Labels(t *testing.T) {
	g, err := builder.BuildGraph("C", nil, builder.Cycle(4))
	require.NoError(t, err)
	require.Equal(t, []string{"v1", "v2", "v3", "v4"}, vertexLabels(g))
	for _, lbl := range []string{"av1_v2", "av2_v3", "av3_v4", "av4_v1", "av1_v4"} {
		_, err := g.FindArcByLabel(lbl)
		require.NoError(t, err, lbl)
	}
}

func TestFixtures_Invalid(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"Cycle(2)":    builder.Cycle(2),
		"Path(1)":     builder.Path(1),
		"Complete(0)": builder.Complete(0),
		"EdgeList":    builder.EdgeList([]string{"a"}, [][2]int{{0, 1}}),
	} {
		_, err := builder.BuildGraph("X", nil, ctor)
		require.ErrorIs(t, err, builder.ErrInvalidArgument, name)
	}

	// Core rejections surface wrapped.
	_, err := builder.BuildGraph("X", nil, builder.EdgeList([]string{"a", "b"}, [][2]int{{0, 1}, {1, 0}}))
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = builder.BuildGraph("X", nil, builder.EdgeList([]string{"a"}, [][2]int{{0, 0}}))
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = builder.BuildGraph("X", nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, builder.Apply(nil, nil), builder.ErrConstructFailed)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithMaxVertices(0) })
}

func TestWithIDScheme(t *testing.T) {
	g, err := builder.BuildGraph("P", []builder.BuilderOption{
		builder.WithIDScheme(func(i int) string { return string(rune('A' + i)) }),
	}, builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, vertexLabels(g))
	_, err = g.FindArcByLabel("aA_B")
	require.NoError(t, err)
}
