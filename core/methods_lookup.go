// File: methods_lookup.go
// Role: Read-only queries over the linked store (lookup, iteration, counts).
// Determinism:
//   - Vertices() follows the vertex list; Arcs(v) follows v's incident list;
//     Edges() follows creation order. No sorting is applied.
// Concurrency:
//   - None. Callers own the Graph exclusively.

package core

import "fmt"

// FindVertex returns the first vertex in list order carrying label.
// Returns ErrVertexNotFound on a miss.
// Complexity: O(V).
func (g *Graph) FindVertex(label string) (*Vertex, error) {
	for v := g.first; v != nil; v = v.next {
		if v.label == label {
			return v, nil
		}
	}

	return nil, fmt.Errorf("FindVertex(%s): %w", label, ErrVertexNotFound)
}

// FindArcByLabel scans every incident list and returns the first arc whose
// label matches. A miss returns ErrArcNotFound.
// Complexity: O(V + A).
func (g *Graph) FindArcByLabel(label string) (*Arc, error) {
	var (
		v *Vertex
		a *Arc
	)
	for v = g.first; v != nil; v = v.next {
		for a = v.first; a != nil; a = a.next {
			if a.label == label {
				return a, nil
			}
		}
	}

	return nil, fmt.Errorf("FindArcByLabel(%s): %w", label, ErrArcNotFound)
}

// ArcBetween returns the arc from→to stored in from's incident list.
// Returns ErrNilVertex, ErrForeignVertex or ErrArcNotFound.
// Complexity: O(deg(from)).
func (g *Graph) ArcBetween(from, to *Vertex) (*Arc, error) {
	if err := g.owns(from, to); err != nil {
		return nil, fmt.Errorf("ArcBetween: %w", err)
	}
	if a := arcTo(from, to); a != nil {
		return a, nil
	}

	return nil, fmt.Errorf("ArcBetween(%s,%s): %w", from.label, to.label, ErrArcNotFound)
}

// Vertices returns all vertices in list order.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, g.vertices)
	for v := g.first; v != nil; v = v.next {
		out = append(out, v)
	}

	return out
}

// Arcs returns v's incident arcs in list order (most recent first).
// Complexity: O(deg(v)).
func (g *Graph) Arcs(v *Vertex) []*Arc {
	if v == nil {
		return nil
	}
	out := make([]*Arc, 0, v.arcs)
	for a := v.first; a != nil; a = a.next {
		out = append(out, a)
	}

	return out
}

// Edges returns the logical edges created through CreateEdge, in creation order.
// The returned slice is a copy.
func (g *Graph) Edges() []*Edge {
	return append([]*Edge(nil), g.edges...)
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int { return g.vertices }

// ArcCount returns the number of arcs in all incident lists. Complexity: O(1).
func (g *Graph) ArcCount() int { return g.arcs }

// EdgeCount returns the number of undirected logical edges.
// Arcs created through CreateArc count as half an edge each, so a graph
// built from mirror pairs reports exactly ArcCount()/2.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.arcs / 2 }

// Degree returns the number of incident arcs of v (0 for nil).
// Complexity: O(1).
func (g *Graph) Degree(v *Vertex) int {
	if v == nil {
		return 0
	}

	return v.arcs
}

// Contains reports whether v is a non-nil vertex created by g.
// Complexity: O(1).
func (g *Graph) Contains(v *Vertex) bool {
	return v != nil && v.graph == g
}
