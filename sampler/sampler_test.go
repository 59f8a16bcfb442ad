package sampler

import (
	"testing"

	"github.com/npillmayer/cxcalc"
	"github.com/npillmayer/cxcalc/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.sampler")
	defer teardown()
	//
	r := Range{From: -1, To: 1, Subdivisions: 2}
	if first, last := r.Steps(); first != -2 || last != 2 {
		t.Errorf("expected steps -2…2, have %d…%d", first, last)
	}
	if r.Len() != 5 || r.At(-1) != -0.5 {
		t.Errorf("unexpected range geometry: len=%d, at(-1)=%g", r.Len(), r.At(-1))
	}
	if (Range{From: 0, To: 3}).Len() != 4 {
		t.Errorf("expected missing subdivisions to default to 1")
	}
}

func TestGridConstant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.sampler")
	defer teardown()
	//
	x := Range{From: -10, To: 10, Subdivisions: 1}
	points := Grid(grammar.Parse("2*3+4"), x, x)
	if len(points) != 1 {
		t.Fatalf("expected constant expression to produce 1 point, have %d", len(points))
	}
	if p := points[0]; p.Value != 10 || p.Row != 1 || p.Col != 1 {
		t.Errorf("unexpected point %+v", p)
	}
	if points = Grid(grammar.Parse("1/(2-2)"), x, x); len(points) != 0 {
		t.Errorf("expected non-finite constant to produce no point, have %v", points)
	}
}

func TestGridOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.sampler")
	defer teardown()
	//
	x := Range{From: -1, To: 1, Subdivisions: 1}
	y := Range{From: 0, To: 1, Subdivisions: 2}
	points := Grid(grammar.Parse("z*1"), x, y)
	if len(points) != 9 {
		t.Fatalf("expected 9 points, have %d", len(points))
	}
	for i, x := range []cxcalc.Point{
		{Value: -1, Row: 0, Col: -1},
		{Value: -1 + 0.5i, Row: 1, Col: -1},
		{Value: -1 + 1i, Row: 2, Col: -1},
		{Value: 0, Row: 0, Col: 0},
	} {
		if points[i] != x {
			t.Errorf("expected point %d to be %+v, is %+v", i, x, points[i])
		}
	}
	if last := points[8]; last.Value != 1+1i || last.Row != 2 || last.Col != 1 {
		t.Errorf("unexpected last point %+v", last)
	}
}

func TestGridFinite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.sampler")
	defer teardown()
	//
	r := Range{From: -1, To: 1, Subdivisions: 1}
	points := Grid(grammar.Parse("inv(z)"), r, r)
	if len(points) != 8 {
		t.Errorf("expected the pole at 0 to be dropped, have %d points", len(points))
	}
	for _, p := range points {
		if !cxcalc.IsFinite(p.Value) {
			t.Errorf("non-finite point %+v in sweep", p)
		}
	}
}

func TestGridPointCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.sampler")
	defer teardown()
	//
	x := Range{From: -2, To: 3, Subdivisions: 3}
	y := Range{From: -1, To: 1, Subdivisions: 4}
	points := Grid(grammar.Parse("ln(z)*sqrt(z)"), x, y)
	max := (3*5 + 1) * (4*2 + 1)
	if len(points) == 0 || len(points) > max {
		t.Errorf("expected 0 < #points ≤ %d, have %d", max, len(points))
	}
}

func TestContour(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.sampler")
	defer teardown()
	//
	x := Range{From: 0, To: 2, Subdivisions: 2}
	points := Contour(grammar.Parse("z*1"), x, grammar.Parse("x*2"))
	if len(points) != 5 {
		t.Fatalf("expected 5 points, have %d", len(points))
	}
	if p := points[2]; p.Value != 1+2i || p.Row != 2 || p.Col != 2 {
		t.Errorf("unexpected point %+v", p)
	}
}

func TestContourUndefined(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.sampler")
	defer teardown()
	//
	x := Range{From: 0, To: 2, Subdivisions: 2}
	if points := Contour(grammar.Parse("z*1"), x, grammar.Parse("(x*2")); len(points) != 0 {
		t.Errorf("expected undefined contour to produce no points, have %v", points)
	}
}

func TestSweepTruncation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.sampler")
	defer teardown()
	//
	calls := 0
	curve := func(x float32) (float32, bool) {
		calls++
		return x, x < 1.5
	}
	x := Range{From: 0, To: 3, Subdivisions: 2} // 0, 0.5, 1, 1.5, …
	points := sweep(grammar.Parse("z+1"), x, curve)
	if len(points) != 3 {
		t.Errorf("expected sweep to stop after 3 points, have %d", len(points))
	}
	if calls != 4 {
		t.Errorf("expected no samples after the curve is undefined, have %d calls", calls)
	}
}
