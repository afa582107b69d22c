// File: view.go
// Role: Non-mutating diagnostic views and the traversal-order reset.
// Determinism:
//   - Reports follow the vertex list, then each incident list, so two calls
//     on an unchanged graph return identical slices.
// Concurrency:
//   - None. Callers own the Graph exclusively.

package core

import "strings"

// VertexDegree pairs a vertex with its incident-arc count.
type VertexDegree struct {
	Vertex *Vertex
	Degree int
}

// ArcOrder pairs an arc with its owning vertex and stamped traversal order.
type ArcOrder struct {
	Vertex *Vertex
	Arc    *Arc
	Order  int
}

// DegreeReport returns the degree of every vertex in list order.
// Complexity: O(V).
func (g *Graph) DegreeReport() []VertexDegree {
	out := make([]VertexDegree, 0, g.vertices)
	for v := g.first; v != nil; v = v.next {
		out = append(out, VertexDegree{Vertex: v, Degree: v.arcs})
	}

	return out
}

// OrderReport returns every arc together with its traversal order, walking
// the vertex list and then each incident list.
// Complexity: O(V + A).
func (g *Graph) OrderReport() []ArcOrder {
	out := make([]ArcOrder, 0, g.arcs)
	for v := g.first; v != nil; v = v.next {
		for a := v.first; a != nil; a = a.next {
			out = append(out, ArcOrder{Vertex: v, Arc: a, Order: a.order})
		}
	}

	return out
}

// ResetOrders clears the traversal order of every arc.
// Complexity: O(V + A).
func (g *Graph) ResetOrders() {
	for v := g.first; v != nil; v = v.next {
		for a := v.first; a != nil; a = a.next {
			a.order = OrderUnset
		}
	}
}

// String renders the graph as its label followed by one line per vertex:
//
//	v1 --> av1_v2 (v1->v2) av1_v4 (v1->v4)
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(g.label)
	sb.WriteString("\n")
	for v := g.first; v != nil; v = v.next {
		sb.WriteString(v.label)
		sb.WriteString(" -->")
		for a := v.first; a != nil; a = a.next {
			sb.WriteString(" ")
			sb.WriteString(a.label)
			sb.WriteString(" (")
			sb.WriteString(v.label)
			sb.WriteString("->")
			sb.WriteString(a.target.label)
			sb.WriteString(")")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
