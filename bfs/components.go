package bfs

import "github.com/katalvlaran/graphtask/core"

// Components partitions the vertices of g into reachability classes, each
// listed in BFS visit order. Components are seeded in vertex-list order.
// For graphs built from mirror pairs these are the connected components.
// Complexity: O(V + A).
func Components(g *core.Graph, opts ...Option) ([][]*core.Vertex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[*core.Vertex]bool, g.VertexCount())
	var out [][]*core.Vertex
	for v := g.First(); v != nil; v = v.Next() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v, opts...)
		if err != nil {
			return nil, err
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// Connected reports whether every vertex of g is reachable from the first one.
// Graphs with zero or one vertex are connected.
func Connected(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.VertexCount() <= 1 {
		return true, nil
	}
	res, err := BFS(g, g.First(), opts...)
	if err != nil {
		return false, err
	}

	return len(res.Order) == g.VertexCount(), nil
}
