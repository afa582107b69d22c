// Package core provides the linked in-memory graph store used by graphtask:
// vertices with ordered incident-arc lists, and undirected logical edges
// represented as a pair of mirror arcs.
//
// The Graph G = (V,A) is kept exactly the way the builders and the Eulerian
// circuit code walk it:
//
//   - Vertices form a singly linked list owned by the Graph. CreateVertex
//     prepends, so iteration order is "most recently created first".
//   - Every Vertex owns a singly linked list of outgoing Arcs. CreateArc
//     prepends, so incident-list order is "most recently added first".
//   - An undirected edge u—v is two independent Arcs, u→v and v→u, tied
//     together by an Edge value and by Arc.Mirror(). Stamping a traversal
//     order on one arc never touches its mirror.
//   - Arc labels produced by CreateEdge follow ArcLabel: "a<from>_<to>".
//
// Core Methods:
//
//	// Construction
//	NewGraph(label string) *Graph                         // O(1)
//	CreateVertex(label string) *Vertex                    // O(1)
//	CreateArc(label string, from, to *Vertex) (*Arc, error) // O(1), no mirror
//	CreateEdge(from, to *Vertex) (*Edge, error)           // O(deg(from)), mirror pair
//
//	// Lookup
//	FindVertex(label string) (*Vertex, error)             // O(V)
//	FindArcByLabel(label string) (*Arc, error)            // O(V+A)
//	ArcBetween(from, to *Vertex) (*Arc, error)            // O(deg(from))
//
//	// Iteration & counts
//	First(), Vertex.Next(), Vertex.FirstArc(), Arc.Next()
//	Vertices(), Arcs(v), Edges(), VertexCount(), ArcCount(), EdgeCount(), Degree(v)
//
//	// Traversal order (Eulerian circuit position, 0 = unset)
//	Arc.Order(), Arc.SetOrder(n), ResetOrders()
//
//	// Diagnostics
//	DegreeReport(), OrderReport(), String()
//
// Errors:
//
//	ErrNilVertex           - nil *Vertex argument.
//	ErrForeignVertex       - vertex owned by a different Graph.
//	ErrLoopNotAllowed      - CreateEdge(v, v).
//	ErrMultiEdgeNotAllowed - CreateEdge between already adjacent vertices.
//	ErrVertexNotFound      - FindVertex miss.
//	ErrArcNotFound         - FindArcByLabel / ArcBetween miss.
//
// Concurrency: a Graph is not safe for concurrent use. Each Graph, and every
// matrix derived from it, is owned by a single call stack at a time.
package core
