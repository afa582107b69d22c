// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links and visit order, plus connectivity
// helpers used to validate generated graphs and circuit inputs.
//
// What
//
//   - Explore vertices in non-decreasing distance (arc count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (may abort with an error).
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Components / Connected partition the vertex list into reachability classes.
//
// Determinism
//
//	Neighbors are expanded in incident-list order (most recently added arc
//	first), and components are seeded in vertex-list order, so results are
//	reproducible for an unchanged graph.
//
// Arcs are followed in their own direction only. Graphs built from mirror
// pairs (core.CreateEdge) are therefore explored as undirected graphs.
//
// Complexity (V = |Vertices|, A = |Arcs|)
//
//   - Time:   O(V + A)
//   - Memory: O(V)
package bfs
