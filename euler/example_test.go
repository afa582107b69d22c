package euler_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphtask/builder"
	"github.com/katalvlaran/graphtask/euler"
)

// ExampleBuildCircuit stamps the 4-cycle and prints the order report.
func ExampleBuildCircuit() {
	g, _ := builder.BuildGraph("C4", nil, builder.Cycle(4))

	c, err := euler.BuildCircuit(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	for _, ao := range g.OrderReport() {
		if ao.Order > 0 {
			fmt.Printf("%s=%d\n", ao.Arc.Label(), ao.Order)
		}
	}

	// Output:
	// v1 -> v2 -> v3 -> v4 -> v1
	// av1_v2=1
	// av2_v3=2
	// av3_v4=3
	// av4_v1=4
}

// ExampleBuildCircuit_notEulerian rejects a path: its endpoints have odd degree.
func ExampleBuildCircuit_notEulerian() {
	g, _ := builder.BuildGraph("P3", nil, builder.Path(3))

	_, err := euler.BuildCircuit(g)
	fmt.Println(errors.Is(err, euler.ErrNotEulerian))

	// Output:
	// true
}
