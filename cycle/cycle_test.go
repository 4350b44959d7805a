package cycle_test

import (
	"testing"

	"github.com/katalvlaran/gbalance/cycle"
	"github.com/katalvlaran/gbalance/frac"
	"github.com/katalvlaran/gbalance/gbconfig"
	"github.com/katalvlaran/gbalance/graph"
	"github.com/katalvlaran/gbalance/rotate"
)

func TestFind_Triangle(t *testing.T) {
	g, err := graph.New(3, []graph.EdgeInput{
		{U: 0, V: 1, Weight: 0.6},
		{U: 1, V: 2, Weight: 0.6},
		{U: 2, V: 0, Weight: 0.6},
	}, []float64{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	cfg := gbconfig.New()
	a := frac.New(g, cfg)

	got, ok := cycle.Find(a, g)
	if !ok {
		t.Fatal("expected a cycle to be found")
	}
	if len(got) != 3 {
		t.Fatalf("len(cycle) = %d; want 3", len(got))
	}

	if err := rotate.Rotate(a, g, cfg, got); err != nil {
		t.Fatalf("Rotate on found cycle failed: %v", err)
	}
}

func TestFind_NoFractionalEdges(t *testing.T) {
	g, err := graph.New(2, []graph.EdgeInput{{U: 0, V: 1, Weight: 0.5}}, []float64{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	cfg := gbconfig.New()
	a := frac.New(g, cfg)
	if err := a.Set(0, 0, 1.0); err != nil {
		t.Fatal(err)
	}

	_, ok := cycle.Find(a, g)
	if ok {
		t.Fatal("expected no cycle: E_x is empty")
	}
}

func TestFind_Deterministic(t *testing.T) {
	g, err := graph.New(3, []graph.EdgeInput{
		{U: 0, V: 1, Weight: 0.6},
		{U: 1, V: 2, Weight: 0.6},
		{U: 2, V: 0, Weight: 0.6},
	}, []float64{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	cfg := gbconfig.New()

	a1 := frac.New(g, cfg)
	a2 := frac.New(g, cfg)
	got1, _ := cycle.Find(a1, g)
	got2, _ := cycle.Find(a2, g)
	if len(got1) != len(got2) {
		t.Fatalf("non-deterministic cycle length: %d vs %d", len(got1), len(got2))
	}
	for i := range got1 {
		if got1[i] != got2[i] {
			t.Fatalf("non-deterministic cycle at step %d: %+v vs %+v", i, got1[i], got2[i])
		}
	}
}
