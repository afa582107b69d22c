package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/graphtask/core"
	"github.com/katalvlaran/graphtask/matrix"
)

// writeGraph prints the vertex/arc dump.
func writeGraph(w io.Writer, g *core.Graph) {
	fmt.Fprint(w, g.String())
}

// writeMatrix prints the adjacency snapshot, one row per line.
func writeMatrix(w io.Writer, m *matrix.AdjacencyMatrix) {
	fmt.Fprintln(w, "Adjacency matrix:")
	fmt.Fprint(w, m.String())
}

// writeDegrees prints one "Vertex v1 degree -- 2" line per vertex.
func writeDegrees(w io.Writer, g *core.Graph) {
	for _, d := range g.DegreeReport() {
		fmt.Fprintf(w, "Vertex %s degree -- %d\n", d.Vertex.Label(), d.Degree)
	}
}

// writeOrders prints every arc with its traversal order, grouped by vertex.
func writeOrders(w io.Writer, g *core.Graph) {
	var last *core.Vertex
	for _, ao := range g.OrderReport() {
		if ao.Vertex != last {
			fmt.Fprintf(w, "Vertex %s --\n", ao.Vertex.Label())
			last = ao.Vertex
		}
		fmt.Fprintf(w, "  Arc %s order -- %d\n", ao.Arc.Label(), ao.Order)
	}
}
