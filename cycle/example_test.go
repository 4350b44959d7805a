package cycle_test

import (
	"fmt"

	"github.com/katalvlaran/gbalance/cycle"
	"github.com/katalvlaran/gbalance/frac"
	"github.com/katalvlaran/gbalance/gbconfig"
	"github.com/katalvlaran/gbalance/graph"
)

// ExampleFind locates the only cycle in a fully fractional triangle.
func ExampleFind() {
	g, err := graph.New(3, []graph.EdgeInput{
		{U: 0, V: 1, Weight: 0.6},
		{U: 1, V: 2, Weight: 0.6},
		{U: 2, V: 0, Weight: 0.6},
	}, []float64{0, 0, 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	a := frac.New(g, gbconfig.New())
	steps, ok := cycle.Find(a, g)
	fmt.Printf("found=%v len=%d\n", ok, len(steps))
	// Output: found=true len=3
}
