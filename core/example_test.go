package core_test

import (
	"fmt"

	"github.com/katalvlaran/graphtask/core"
)

// ExampleGraph builds a triangle from mirror pairs and prints the store.
func ExampleGraph() {
	// 1) Vertices are prepended, so create them in reverse to read v1..v3.
	g := core.NewGraph("G")
	v3 := g.CreateVertex("v3")
	v2 := g.CreateVertex("v2")
	v1 := g.CreateVertex("v1")

	// 2) Each CreateEdge emits two arcs labeled a<from>_<to>.
	g.CreateEdge(v1, v2)
	g.CreateEdge(v2, v3)
	g.CreateEdge(v3, v1)

	// 3) Inspect counts and the textual dump.
	fmt.Println(g.VertexCount(), g.ArcCount(), g.EdgeCount())
	fmt.Print(g)

	// Output:
	// 3 6 3
	//
	// G
	// v1 --> av1_v3 (v1->v3) av1_v2 (v1->v2)
	// v2 --> av2_v3 (v2->v3) av2_v1 (v2->v1)
	// v3 --> av3_v1 (v3->v1) av3_v2 (v3->v2)
}

// ExampleGraph_DegreeReport lists every vertex degree in list order.
func ExampleGraph_DegreeReport() {
	g := core.NewGraph("G")
	c := g.CreateVertex("C")
	b := g.CreateVertex("B")
	a := g.CreateVertex("A")
	g.CreateEdge(a, b)
	g.CreateEdge(a, c)

	for _, d := range g.DegreeReport() {
		fmt.Printf("%s:%d\n", d.Vertex, d.Degree)
	}

	// Output:
	// A:2
	// B:1
	// C:1
}
