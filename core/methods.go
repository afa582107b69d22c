// Package core: graph construction methods.
//
// This file provides the O(1) prepend operations on the vertex list and on
// incident-arc lists, plus CreateEdge which emits a linked mirror pair.
// Label synthesis for mirror pairs lives here (ArcLabel) so every producer
// and consumer of arc labels shares one definition.

package core

import "fmt"

const (
	arcLabelPrefix    = "a"
	arcLabelSeparator = "_"
)

// ArcLabel synthesizes the label of the arc from→to: "a" + from + "_" + to.
func ArcLabel(from, to string) string {
	return arcLabelPrefix + from + arcLabelSeparator + to
}

// CreateVertex prepends a new vertex with the given label to the vertex list
// and returns it. Labels are not required to be unique.
// Complexity: O(1).
func (g *Graph) CreateVertex(label string) *Vertex {
	v := &Vertex{label: label, graph: g, next: g.first}
	g.first = v
	g.vertices++

	return v
}

// CreateArc prepends a new arc from→to to from's incident list and returns it.
// The caller is responsible for the mirror arc; use CreateEdge to get both.
//
// Returns ErrNilVertex or ErrForeignVertex.
// Complexity: O(1).
func (g *Graph) CreateArc(label string, from, to *Vertex) (*Arc, error) {
	if err := g.owns(from, to); err != nil {
		return nil, fmt.Errorf("CreateArc(%s): %w", label, err)
	}

	return g.prependArc(label, from, to), nil
}

// CreateEdge adds the undirected edge from—to as two mirror arcs labeled
// ArcLabel(from,to) and ArcLabel(to,from). The forward arc is prepended to
// from's list first, then the reverse arc to to's list.
//
// Returns ErrNilVertex, ErrForeignVertex, ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
// Complexity: O(deg(from)) for the parallel-edge check.
func (g *Graph) CreateEdge(from, to *Vertex) (*Edge, error) {
	// 1) Ownership and nil checks
	if err := g.owns(from, to); err != nil {
		return nil, fmt.Errorf("CreateEdge: %w", err)
	}
	// 2) Simple-graph constraints
	if from == to {
		return nil, fmt.Errorf("CreateEdge(%s,%s): %w", from.label, to.label, ErrLoopNotAllowed)
	}
	if arcTo(from, to) != nil {
		return nil, fmt.Errorf("CreateEdge(%s,%s): %w", from.label, to.label, ErrMultiEdgeNotAllowed)
	}

	// 3) Emit the pair and link mirrors
	fwd := g.prependArc(ArcLabel(from.label, to.label), from, to)
	rev := g.prependArc(ArcLabel(to.label, from.label), to, from)
	fwd.mirror, rev.mirror = rev, fwd

	e := &Edge{Forward: fwd, Reverse: rev}
	g.edges = append(g.edges, e)

	return e, nil
}

// prependArc links a new arc at the head of from's incident list.
func (g *Graph) prependArc(label string, from, to *Vertex) *Arc {
	a := &Arc{label: label, from: from, target: to, next: from.first}
	from.first = a
	from.arcs++
	g.arcs++

	return a
}

// owns validates that every vertex is non-nil and created by g.
func (g *Graph) owns(vs ...*Vertex) error {
	for _, v := range vs {
		if v == nil {
			return ErrNilVertex
		}
		if v.graph != g {
			return fmt.Errorf("vertex %q: %w", v.label, ErrForeignVertex)
		}
	}

	return nil
}

// arcTo returns the first arc in from's incident list pointing at to, or nil.
func arcTo(from, to *Vertex) *Arc {
	for a := from.first; a != nil; a = a.next {
		if a.target == to {
			return a
		}
	}

	return nil
}
