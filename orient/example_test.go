package orient_test

import (
	"fmt"

	"github.com/katalvlaran/gbalance/graph"
	"github.com/katalvlaran/gbalance/orient"
)

// ExampleOrientation orients a single edge and reads back the makespan.
func ExampleOrientation() {
	g, err := graph.New(2, []graph.EdgeInput{{U: 0, V: 1, Weight: 0.5}}, []float64{0, 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	o := orient.New(g)
	if err := o.Set(0, 1); err != nil {
		fmt.Println("error:", err)
		return
	}

	ms, _ := o.Makespan()
	fmt.Printf("total=%v makespan=%.1f\n", o.IsTotal(), ms)
	// Output: total=true makespan=0.5
}
