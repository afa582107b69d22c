// Package graphtask is an in-memory toolkit for undirected simple graphs and
// their Eulerian circuits.
//
// What is in the box?
//
//   - core/    — linked graph store: vertices, mirror-paired arcs, edges,
//     traversal-order stamps and diagnostic reports.
//   - matrix/  — adjacency snapshots derived from a core.Graph, with the
//     consume operation the circuit walk runs on.
//   - builder/ — random connected simple graphs (RandomTree, RandomSimple)
//     plus deterministic fixtures (Cycle, Path, Complete, EdgeList).
//   - bfs/     — breadth-first traversal and connected components.
//   - euler/   — even-degree feasibility, circuit construction (greedy walk
//     with restart, or Hierholzer) and verification of stamped orders.
//   - cmd/graphtask — CLI driver: generate, circuit, trials.
//
// Quick example:
//
//	g, _ := builder.BuildGraph("C4", nil, builder.Cycle(4))
//	c, _ := euler.BuildCircuit(g)
//	fmt.Println(c) // v1 -> v2 -> v3 -> v4 -> v1
//
// Graphs are not safe for concurrent mutation; every build owns its graph.
//
//	go get github.com/katalvlaran/graphtask
package graphtask
