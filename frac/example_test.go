package frac_test

import (
	"fmt"

	"github.com/katalvlaran/gbalance/frac"
	"github.com/katalvlaran/gbalance/gbconfig"
	"github.com/katalvlaran/gbalance/graph"
)

// ExampleAssignment sets one endpoint's share and reads the companion back,
// demonstrating that the edge constraint x_u+x_v=1 holds by construction.
func ExampleAssignment() {
	g, err := graph.New(2, []graph.EdgeInput{{U: 0, V: 1, Weight: 0.6}}, []float64{0, 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	a := frac.New(g, gbconfig.New())
	if err := a.Set(0, 1, 0.3); err != nil {
		fmt.Println("error:", err)
		return
	}

	x0, _ := a.Get(0, 0)
	x1, _ := a.Get(0, 1)
	fmt.Printf("x0=%.1f x1=%.1f sum=%.1f\n", x0, x1, x0+x1)
	// Output: x0=0.7 x1=0.3 sum=1.0
}
