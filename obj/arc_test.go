package obj

import (
	"math"
	"testing"

	"github.com/HouJingChen99/gearbox-4/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestArcFullCircle(t *testing.T) {
	it, err := Arc(ArcParams{Radius: 10, Sides: 12})
	if err != nil {
		t.Fatal(err)
	}
	pts := it.Points()
	// 12 vertices plus the exact closing point
	if len(pts) != 13 {
		t.Fatalf("got %d points, want 13", len(pts))
	}
	if !d2.EqualWithin(pts[0], pts[len(pts)-1], tol) {
		t.Errorf("full circle should close on its start: %v vs %v", pts[0], pts[len(pts)-1])
	}
	for i, p := range pts {
		if math.Abs(r2.Norm(p)-10) > tol {
			t.Errorf("point %d at radius %g, want 10", i, r2.Norm(p))
		}
	}
}

func TestArcEndsExact(t *testing.T) {
	it, err := Arc(ArcParams{Radius: 10, Sides: 12, From: 0, To: 90})
	if err != nil {
		t.Fatal(err)
	}
	pts := it.Points()
	if len(pts) != 4 {
		t.Fatalf("got %d points, want 4", len(pts))
	}
	if !d2.EqualWithin(pts[0], r2.Vec{X: 10}, tol) {
		t.Errorf("first point %v, want (10,0)", pts[0])
	}
	if !d2.EqualWithin(pts[len(pts)-1], r2.Vec{Y: 10}, tol) {
		t.Errorf("last point %v, want (0,10)", pts[len(pts)-1])
	}
}

func TestArcEndSuppression(t *testing.T) {
	// the 60 degree vertex sits within 0.6 half-chords of the 65 degree
	// end point and must give way to it
	it, err := Arc(ArcParams{Radius: 10, Sides: 12, From: 0, To: 65})
	if err != nil {
		t.Fatal(err)
	}
	pts := it.Points()
	if len(pts) != 3 {
		t.Fatalf("got %d points, want 3 (end suppresses the nearby vertex)", len(pts))
	}
	end := d2.PolarToXY(10, 65*math.Pi/180)
	if !d2.EqualWithin(pts[2], end, tol) {
		t.Errorf("last point %v, want %v", pts[2], end)
	}
}

func TestArcOuter(t *testing.T) {
	it, err := Arc(ArcParams{Radius: 10, Sides: 12, From: 0, To: 90, Outer: true})
	if err != nil {
		t.Fatal(err)
	}
	pts := it.Points()
	r := outerRadius(10, 12)
	// exact start on the inflated circle, then vertices at half-step
	// offsets
	if !d2.EqualWithin(pts[0], r2.Vec{X: r}, tol) {
		t.Errorf("first point %v, want (%g,0)", pts[0], r)
	}
	want := d2.PolarToXY(r, math.Pi/12)
	if !d2.EqualWithin(pts[1], want, tol) {
		t.Errorf("second point %v, want %v", pts[1], want)
	}
	if !d2.EqualWithin(pts[len(pts)-1], r2.Vec{Y: r}, tol) {
		t.Errorf("last point %v, want (0,%g)", pts[len(pts)-1], r)
	}
}

func TestArcOffset(t *testing.T) {
	off := r2.Vec{X: 3, Y: -4}
	it, err := Arc(ArcParams{Diameter: 10, Sides: 8, Offset: off})
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range it.Points() {
		if math.Abs(d2.Distance(p, off)-5) > tol {
			t.Errorf("point %d at distance %g from center, want 5", i, d2.Distance(p, off))
		}
	}
}

func TestArcBadParams(t *testing.T) {
	if _, err := Arc(ArcParams{Sides: 12}); err == nil {
		t.Error("no radius should be an error")
	}
	if _, err := Arc(ArcParams{Radius: 5, Sides: 2}); err == nil {
		t.Error("2 sides should be an error")
	}
	if _, err := Arc(ArcParams{Radius: 5, Sides: 12, From: 90, To: 45}); err == nil {
		t.Error("backwards arc should be an error")
	}
}

func TestArcOneShot(t *testing.T) {
	it, err := Arc(ArcParams{Radius: 1, Sides: 4})
	if err != nil {
		t.Fatal(err)
	}
	it.Points()
	if _, ok := it.Next(); ok {
		t.Error("drained iterator should stay exhausted")
	}
}
