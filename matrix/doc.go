// Package matrix derives adjacency-matrix snapshots from a core.Graph.
//
// An AdjacencyMatrix is a square grid of arc counts, indexed by a row/column
// numbering that the matrix itself owns: NewAdjacencyMatrix numbers vertices
// 0..N-1 in the graph's current list order (pass 1) and then counts every
// arc i→j into cell[i][j] (pass 2). The numbering is never written back to the
// vertices, so an older snapshot stays internally consistent even after a
// newer one is derived.
//
// Cell values:
//
//	CellAbsent   (0) - no arc i→j, or the mirror side of a consumed edge
//	CellPresent  (1) - one unconsumed arc i→j
//	CellConsumed (2) - arc i→j was walked by the Eulerian circuit builder
//
// For a simple undirected graph built by graphtask, a freshly derived matrix
// is symmetric with entries in {0,1}. Consumption happens only on working
// copies obtained with Clone.
//
// Matrices are best for the small, dense-ish graphs the generator produces:
// O(V²) memory and O(V² + A) derivation time.
package matrix
