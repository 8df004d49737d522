package obj

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestFretRingGeometry(t *testing.T) {
	s, err := FretRing(FretRingParams{
		InnerDiameter: 10,
		OuterDiameter: 20,
		Circles:       6,
		Height:        2,
	})
	if err != nil {
		t.Fatal(err)
	}
	bb := s.Bounds()
	if math.Abs(bb.Min.Z) > tol || math.Abs(bb.Max.Z-2) > tol {
		t.Errorf("z extent [%g, %g], want [0, 2]", bb.Min.Z, bb.Max.Z)
	}
	// cutout centers lie on the circle of radius 7.5; the cutouts are
	// 5 across
	if d := s.Evaluate(r3.Vec{X: 7.5, Z: 1}); d >= 0 {
		t.Errorf("first cutout center should be inside, got %g", d)
	}
	cos, sin := math.Cos(math.Pi/3), math.Sin(math.Pi/3)
	if d := s.Evaluate(r3.Vec{X: 7.5 * cos, Y: 7.5 * sin, Z: 1}); d >= 0 {
		t.Errorf("rotated cutout center should be inside, got %g", d)
	}
	if d := s.Evaluate(r3.Vec{Z: 1}); d <= 0 {
		t.Errorf("ring center should be outside the cutouts, got %g", d)
	}
}

func TestFretRingBadParams(t *testing.T) {
	if _, err := FretRing(FretRingParams{InnerDiameter: 10, OuterDiameter: 20, Height: 2}); err == nil {
		t.Error("no circles should be an error")
	}
	if _, err := FretRing(FretRingParams{InnerDiameter: 20, OuterDiameter: 10, Circles: 3, Height: 2}); err == nil {
		t.Error("inverted diameters should be an error")
	}
	if _, err := FretRing(FretRingParams{InnerDiameter: 10, OuterDiameter: 20, Circles: 3}); err == nil {
		t.Error("no height should be an error")
	}
}
