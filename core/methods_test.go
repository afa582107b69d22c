// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph construction and lookup contracts.
//
// Purpose:
//   - Lock in prepend order for vertex and incident-arc lists.
//   - Validate simple-graph enforcement in CreateEdge (loops, parallels).
//   - Anchor mirror linkage and independent traversal-order fields.

package core_test

import (
	"testing"

	"github.com/katalvlaran/graphtask/core"
	"github.com/stretchr/testify/require"
)

// labels maps vertices to their labels for compact assertions.
func labels(vs []*core.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Label()
	}
	return out
}

// arcLabels maps arcs to their labels.
func arcLabels(as []*core.Arc) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.Label()
	}
	return out
}

func TestGraph_CreateVertex_PrependOrder(t *testing.T) {
	g := core.NewGraph("G")
	require.Nil(t, g.First())
	require.Equal(t, 0, g.VertexCount())

	v3 := g.CreateVertex("v3")
	v2 := g.CreateVertex("v2")
	v1 := g.CreateVertex("v1")

	// Most recently created vertex heads the list.
	require.Same(t, v1, g.First())
	require.Same(t, v2, v1.Next())
	require.Same(t, v3, v2.Next())
	require.Nil(t, v3.Next())
	require.Equal(t, []string{"v1", "v2", "v3"}, labels(g.Vertices()))
	require.Equal(t, 3, g.VertexCount())
}

func TestGraph_CreateArc_NoMirror(t *testing.T) {
	g := core.NewGraph("G")
	a := g.CreateVertex("A")
	b := g.CreateVertex("B")

	arc, err := g.CreateArc("x", a, b)
	require.NoError(t, err)
	require.Same(t, b, arc.Target())
	require.Same(t, a, arc.From())
	require.Nil(t, arc.Mirror())
	require.Equal(t, 1, g.ArcCount())
	require.Equal(t, 1, g.Degree(a))
	require.Equal(t, 0, g.Degree(b))
	require.Empty(t, g.Edges())

	// Incident list is prepend-ordered as well.
	_, err = g.CreateArc("y", a, b)
	require.NoError(t, err)
	require.Equal(t, []string{"y", "x"}, arcLabels(g.Arcs(a)))
}

func TestGraph_CreateArc_Errors(t *testing.T) {
	g := core.NewGraph("G")
	other := core.NewGraph("H")
	a := g.CreateVertex("A")
	foreign := other.CreateVertex("F")

	_, err := g.CreateArc("x", nil, a)
	require.ErrorIs(t, err, core.ErrNilVertex)

	_, err = g.CreateArc("x", a, foreign)
	require.ErrorIs(t, err, core.ErrForeignVertex)
	require.Equal(t, 0, g.ArcCount())
}

func TestGraph_CreateEdge_MirrorPair(t *testing.T) {
	g := core.NewGraph("G")
	v2 := g.CreateVertex("v2")
	v1 := g.CreateVertex("v1")

	e, err := g.CreateEdge(v1, v2)
	require.NoError(t, err)
	require.Equal(t, "av1_v2", e.Forward.Label())
	require.Equal(t, "av2_v1", e.Reverse.Label())
	require.Same(t, e.Reverse, e.Forward.Mirror())
	require.Same(t, e.Forward, e.Reverse.Mirror())

	from, to := e.Endpoints()
	require.Same(t, v1, from)
	require.Same(t, v2, to)

	require.Equal(t, 2, g.ArcCount())
	require.Equal(t, 1, g.EdgeCount())
	require.Len(t, g.Edges(), 1)

	// Orders are independent per direction.
	e.Forward.SetOrder(7)
	require.Equal(t, 7, e.Forward.Order())
	require.Equal(t, core.OrderUnset, e.Reverse.Order())
	require.Same(t, e.Forward, e.Traversed())
}

func TestGraph_CreateEdge_SimpleGraphRules(t *testing.T) {
	g := core.NewGraph("G")
	a := g.CreateVertex("A")
	b := g.CreateVertex("B")

	_, err := g.CreateEdge(a, a)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.CreateEdge(a, b)
	require.NoError(t, err)

	// Both orientations of the same pair are parallel edges.
	_, err = g.CreateEdge(a, b)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.CreateEdge(b, a)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	_, err = g.CreateEdge(a, nil)
	require.ErrorIs(t, err, core.ErrNilVertex)

	require.Equal(t, 1, g.EdgeCount())
}

func TestGraph_Lookup(t *testing.T) {
	g := core.NewGraph("G")
	c := g.CreateVertex("C")
	b := g.CreateVertex("B")
	a := g.CreateVertex("A")
	_, err := g.CreateEdge(a, b)
	require.NoError(t, err)
	_, err = g.CreateEdge(b, c)
	require.NoError(t, err)

	v, err := g.FindVertex("B")
	require.NoError(t, err)
	require.Same(t, b, v)
	_, err = g.FindVertex("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	arc, err := g.FindArcByLabel(core.ArcLabel("C", "B"))
	require.NoError(t, err)
	require.Same(t, c, arc.From())
	require.Same(t, b, arc.Target())
	_, err = g.FindArcByLabel("aA_C")
	require.ErrorIs(t, err, core.ErrArcNotFound)

	between, err := g.ArcBetween(c, b)
	require.NoError(t, err)
	require.Same(t, arc, between)
	_, err = g.ArcBetween(a, c)
	require.ErrorIs(t, err, core.ErrArcNotFound)
}

func TestGraph_ResetOrders(t *testing.T) {
	g := core.NewGraph("G")
	b := g.CreateVertex("B")
	a := g.CreateVertex("A")
	e, err := g.CreateEdge(a, b)
	require.NoError(t, err)

	e.Forward.SetOrder(1)
	e.Reverse.SetOrder(2)
	g.ResetOrders()

	for _, ao := range g.OrderReport() {
		require.Equal(t, core.OrderUnset, ao.Order, "arc %s", ao.Arc)
	}
	require.Nil(t, e.Traversed())
}
