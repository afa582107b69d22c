// Package core defines the Graph, Vertex, Arc and Edge types of the linked
// graph store, together with its sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrNilVertex           - vertex pointer is nil.
//	ErrForeignVertex       - vertex belongs to another graph.
//	ErrLoopNotAllowed      - self-loop requested through CreateEdge.
//	ErrMultiEdgeNotAllowed - parallel edge requested through CreateEdge.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrArcNotFound         - requested arc does not exist.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates a nil *Vertex was passed to a graph method.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrForeignVertex indicates a vertex created by a different Graph was used.
	ErrForeignVertex = errors.New("core: vertex belongs to another graph")

	// ErrLoopNotAllowed indicates a self-loop was requested for a simple graph.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was requested for a simple graph.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrVertexNotFound indicates a lookup referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrArcNotFound indicates a lookup referenced a non-existent arc.
	// Inside graphtask this signals a programming error (label synthesis or
	// matrix numbering out of sync with the store), never a retryable state.
	ErrArcNotFound = errors.New("core: arc not found")
)

// OrderUnset is the traversal order of an arc that is not part of a circuit.
const OrderUnset = 0

// Vertex is a node of the graph.
//
// A Vertex owns the head of its incident-arc list and the link to the next
// vertex of its Graph. Both lists are singly linked; new entries are prepended.
type Vertex struct {
	label string

	graph *Graph  // owner; used to reject foreign vertices
	next  *Vertex // next vertex in the graph list
	first *Arc    // head of the incident-arc list
	arcs  int     // number of incident arcs (out-degree)
}

// Label returns the vertex identity label.
func (v *Vertex) Label() string { return v.label }

// Next returns the vertex that follows v in its graph's list, or nil.
func (v *Vertex) Next() *Vertex { return v.next }

// FirstArc returns the most recently added incident arc of v, or nil.
func (v *Vertex) FirstArc() *Arc { return v.first }

// String implements fmt.Stringer.
func (v *Vertex) String() string { return v.label }

// Arc is one direction of a connection, owned by its source vertex.
//
// The target is a non-owning reference; all vertices are owned by the Graph.
// order holds the Eulerian-circuit position (OrderUnset when not stamped).
type Arc struct {
	label string

	from   *Vertex
	target *Vertex
	next   *Arc // next arc in from's incident list
	mirror *Arc // reverse arc when created through CreateEdge
	order  int
}

// Label returns the arc identity label.
func (a *Arc) Label() string { return a.label }

// From returns the vertex owning this arc.
func (a *Arc) From() *Vertex { return a.from }

// Target returns the vertex this arc points at.
func (a *Arc) Target() *Vertex { return a.target }

// Next returns the next arc in the owning vertex's incident list, or nil.
func (a *Arc) Next() *Arc { return a.next }

// Mirror returns the reverse-direction arc of the same logical edge, or nil
// for arcs created directly with CreateArc.
func (a *Arc) Mirror() *Arc { return a.mirror }

// Order returns the stamped traversal order (OrderUnset if none).
func (a *Arc) Order() int { return a.order }

// SetOrder stamps the traversal order of this arc only; the mirror is untouched.
func (a *Arc) SetOrder(n int) { a.order = n }

// String implements fmt.Stringer.
func (a *Arc) String() string { return a.label }

// Edge is a logical undirected edge owning its two directional arcs.
type Edge struct {
	// Forward is the arc created from the first endpoint.
	Forward *Arc

	// Reverse is the mirror arc created from the second endpoint.
	Reverse *Arc
}

// Endpoints returns the two vertices of e in creation order.
func (e *Edge) Endpoints() (*Vertex, *Vertex) {
	return e.Forward.from, e.Forward.target
}

// Traversed returns the arc of e that carries a traversal order, or nil when
// neither direction is stamped.
func (e *Edge) Traversed() *Arc {
	if e.Forward.order != OrderUnset {
		return e.Forward
	}
	if e.Reverse.order != OrderUnset {
		return e.Reverse
	}

	return nil
}

// Graph is the linked graph store.
//
// It owns every Vertex and Arc created through it. The zero value is not
// usable; construct with NewGraph.
type Graph struct {
	label string

	first    *Vertex // head of the vertex list
	vertices int     // vertex count
	arcs     int     // arc count (all directions)
	edges    []*Edge // logical edges in creation order
}

// NewGraph creates an empty Graph with the given label.
// Complexity: O(1).
func NewGraph(label string) *Graph {
	return &Graph{label: label}
}

// Label returns the graph label.
func (g *Graph) Label() string { return g.label }

// First returns the head of the vertex list (most recently created), or nil.
func (g *Graph) First() *Vertex { return g.first }
