package frac_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gbalance/frac"
	"github.com/katalvlaran/gbalance/gbconfig"
	"github.com/katalvlaran/gbalance/graph"
)

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(3, []graph.EdgeInput{
		{U: 0, V: 1, Weight: 0.6},
		{U: 1, V: 2, Weight: 0.6},
		{U: 2, V: 0, Weight: 0.6},
	}, []float64{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestEdgeConstraintHoldsByConstruction(t *testing.T) {
	g := triangle(t)
	cfg := gbconfig.New()
	a := frac.New(g, cfg)
	if err := a.Set(0, 1, 0.3); err != nil {
		t.Fatal(err)
	}
	x0, _ := a.Get(0, 0)
	x1, _ := a.Get(0, 1)
	if got, want := x0+x1, 1.0; got != want {
		t.Errorf("x0+x1 = %v; want %v", got, want)
	}
	// Vertex 1 is the larger endpoint, so x1 is read back as 1 - (1 - 0.3),
	// which differs from 0.3 in the last bit.
	if math.Abs(x1-0.3) > 1e-12 {
		t.Errorf("Get(0,1) = %v; want 0.3", x1)
	}
}

func TestFromRaw_Normalizes(t *testing.T) {
	g := triangle(t)
	cfg := gbconfig.New()
	a, err := frac.FromRaw(g, cfg, []float64{0.5, 0.5, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	for e := 0; e < 3; e++ {
		if !a.IsIntegral(e) && a.IsBig(e) {
			// fine, triangle is all big+fractional at 0.5 split
		}
		x0, _ := a.Get(e, g.Edge(e).U)
		x1, _ := a.Get(e, g.Edge(e).V)
		if x0+x1 != 1 {
			t.Errorf("edge %d: x0+x1 = %v; want 1", e, x0+x1)
		}
	}
	support := a.SupportEdges()
	if len(support) != 3 {
		t.Errorf("SupportEdges() = %v; want all 3 edges fractional", support)
	}
	bigSupport := a.BigSupportEdges()
	if len(bigSupport) != 3 {
		t.Errorf("BigSupportEdges() = %v; want all 3 edges", bigSupport)
	}
}

func TestIsIntegral_SnapsToEndpoints(t *testing.T) {
	g := triangle(t)
	cfg := gbconfig.New()
	a := frac.New(g, cfg)
	if err := a.Set(0, 1, 1.0); err != nil {
		t.Fatal(err)
	}
	if !a.IsIntegral(0) {
		t.Errorf("edge 0 should be integral after Set(...,1.0)")
	}
	owner, ok := a.IntegralOwner(0)
	if !ok || owner != 1 {
		t.Errorf("IntegralOwner(0) = (%d,%v); want (1,true)", owner, ok)
	}
}

func TestGet_NotEndpoint(t *testing.T) {
	g := triangle(t)
	a := frac.New(g, gbconfig.New())
	if _, err := a.Get(0, 2); err == nil {
		t.Errorf("expected error for non-endpoint vertex")
	}
}
