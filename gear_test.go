package gearbox

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-9

// declareStyles sets up the two gear styles every pair expects.
func declareStyles(t *testing.T, reg *Registry) {
	t.Helper()
	if _, err := NewGearStyle(reg, "small", 0, 2.5, 0.2); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGearStyle(reg, "large", 0.625, 1.25, 0.2); err != nil {
		t.Fatal(err)
	}
}

func declareAxle(t *testing.T, reg *Registry, name string, at r2.Vec) *Axle {
	t.Helper()
	a, err := NewAxle(reg, AxleParams{Name: name, At: at})
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestFitSpurGearsEqualTeeth(t *testing.T) {
	// for equal tooth counts the closed form collapses to
	// p = 90 (D + sqrt(D^2-8)) / n
	const n, dist = 20, 40.0
	got, err := FitSpurGears(n, n, dist)
	if err != nil {
		t.Fatal(err)
	}
	want := 90 * (dist + math.Sqrt(dist*dist-8)) / n
	if math.Abs(got-want) > tol {
		t.Errorf("pitch %g, want %g", got, want)
	}
}

func TestFitSpurGearsPitchRadius(t *testing.T) {
	// two equal gears meshing 40 apart have pitch radii within a tenth
	// of half the distance
	pitch, err := FitSpurGears(20, 20, 40)
	if err != nil {
		t.Fatal(err)
	}
	r := 20 * pitch / 360
	if math.Abs(r-20) > 0.1 {
		t.Errorf("pitch radius %g, want within 0.1 of 20", r)
	}
}

func TestFitSpurGearsMeshingRadii(t *testing.T) {
	// the two pitch radii always sum close to the axle distance
	for _, tc := range []struct {
		a, b int
		dist float64
	}{
		{30, 8, 25.5},
		{15, 30, 31.8},
		{8, 32, 22.5},
	} {
		pitch, err := FitSpurGears(tc.a, tc.b, tc.dist)
		if err != nil {
			t.Fatalf("%d/%d at %g: %v", tc.a, tc.b, tc.dist, err)
		}
		sum := float64(tc.a+tc.b) * pitch / 360
		if math.Abs(sum-tc.dist) > 0.2 {
			t.Errorf("%d/%d at %g: pitch radii sum %g", tc.a, tc.b, tc.dist, sum)
		}
	}
}

func TestFitSpurGearsDomainError(t *testing.T) {
	_, err := FitSpurGears(100, 100, 2)
	if !errors.Is(err, ErrPitchDomain) {
		t.Errorf("got %v, want ErrPitchDomain", err)
	}
}

func TestGearPairStyleAssignment(t *testing.T) {
	reg := NewRegistry()
	declareStyles(t, reg)
	declareAxle(t, reg, "a", r2.Vec{})
	declareAxle(t, reg, "b", r2.Vec{X: 30})
	gp, err := NewGearPair(reg, GearPairParams{
		Name:           "pair",
		PrimaryAxle:    ByName("a"),
		SecondaryAxle:  ByName("b"),
		PrimaryTeeth:   10,
		SecondaryTeeth: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	if gp.Primary().Style().EntityName() != "small" {
		t.Errorf("primary with fewer teeth got style %q, want small", gp.Primary().Style().EntityName())
	}
	if gp.Secondary().Style().EntityName() != "large" {
		t.Errorf("secondary with more teeth got style %q, want large", gp.Secondary().Style().EntityName())
	}

	// the larger primary swaps the assignment
	gp2, err := NewGearPair(reg, GearPairParams{
		Name:           "pair2",
		PrimaryAxle:    ByName("a"),
		SecondaryAxle:  ByName("b"),
		PrimaryTeeth:   20,
		SecondaryTeeth: 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	if gp2.Primary().Style().EntityName() != "large" {
		t.Errorf("primary with more teeth got style %q, want large", gp2.Primary().Style().EntityName())
	}
}

func TestGearPairTieGoesToPrimary(t *testing.T) {
	reg := NewRegistry()
	declareStyles(t, reg)
	declareAxle(t, reg, "a", r2.Vec{})
	declareAxle(t, reg, "b", r2.Vec{X: 40})
	gp, err := NewGearPair(reg, GearPairParams{
		Name:           "pair",
		PrimaryAxle:    ByName("a"),
		SecondaryAxle:  ByName("b"),
		PrimaryTeeth:   20,
		SecondaryTeeth: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	if gp.Primary().Style().EntityName() != "small" {
		t.Errorf("tied primary got style %q, want small", gp.Primary().Style().EntityName())
	}
}

func TestGearPairToothAlignment(t *testing.T) {
	reg := NewRegistry()
	declareStyles(t, reg)
	declareAxle(t, reg, "a", r2.Vec{})
	declareAxle(t, reg, "b", r2.Vec{Y: 40})
	gp, err := NewGearPair(reg, GearPairParams{
		Name:           "pair",
		PrimaryAxle:    ByName("a"),
		SecondaryAxle:  ByName("b"),
		PrimaryTeeth:   20,
		SecondaryTeeth: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	// both gears face along the inter-axle bearing; the secondary turns
	// an extra half tooth so teeth interleave
	if got := gp.Primary().Rotation(); math.Abs(got-90) > tol {
		t.Errorf("primary rotation %g, want 90", got)
	}
	want := 90 + 180 + 180.0/20
	if got := gp.Secondary().Rotation(); math.Abs(got-want) > tol {
		t.Errorf("secondary rotation %g, want %g", got, want)
	}
}

func TestGearRadiiOrdering(t *testing.T) {
	reg := NewRegistry()
	declareStyles(t, reg)
	declareAxle(t, reg, "a", r2.Vec{})
	declareAxle(t, reg, "b", r2.Vec{X: 25})
	gp, err := NewGearPair(reg, GearPairParams{
		Name:           "pair",
		PrimaryAxle:    ByName("a"),
		SecondaryAxle:  ByName("b"),
		PrimaryTeeth:   30,
		SecondaryTeeth: 8,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, g := range []*Gear{gp.Primary(), gp.Secondary()} {
		if !(g.InnerRadius() < g.PitchRadius() && g.PitchRadius() < g.OuterRadius()) {
			t.Errorf("%d teeth: radii not ordered: inner %g pitch %g outer %g",
				g.Teeth(), g.InnerRadius(), g.PitchRadius(), g.OuterRadius())
		}
	}
}

func TestGearVerticalExtent(t *testing.T) {
	reg := NewRegistry()
	declareStyles(t, reg)
	declareAxle(t, reg, "a", r2.Vec{})
	declareAxle(t, reg, "b", r2.Vec{X: 25})
	gp, err := NewGearPair(reg, GearPairParams{
		Name:           "pair",
		PrimaryAxle:    ByName("a"),
		SecondaryAxle:  ByName("b"),
		PrimaryTeeth:   30,
		SecondaryTeeth: 8,
		BaseOffset:     2.8,
	})
	if err != nil {
		t.Fatal(err)
	}
	// the 30 tooth primary takes the large style: offset 0.625, height 1.25
	if got := gp.Primary().Base(); math.Abs(got-3.425) > tol {
		t.Errorf("primary base %g, want 3.425", got)
	}
	if got := gp.Primary().Top(); math.Abs(got-4.675) > tol {
		t.Errorf("primary top %g, want 4.675", got)
	}
	// the 8 tooth secondary takes the small style on the same base line
	if got := gp.Secondary().Base(); math.Abs(got-2.8) > tol {
		t.Errorf("secondary base %g, want 2.8", got)
	}
}

func TestGearOn(t *testing.T) {
	reg := NewRegistry()
	declareStyles(t, reg)
	a := declareAxle(t, reg, "a", r2.Vec{})
	b := declareAxle(t, reg, "b", r2.Vec{X: 30})
	c := declareAxle(t, reg, "c", r2.Vec{Y: 30})
	gp, err := NewGearPair(reg, GearPairParams{
		Name:           "pair",
		PrimaryAxle:    ByHandle(a),
		SecondaryAxle:  ByHandle(b),
		PrimaryTeeth:   10,
		SecondaryTeeth: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	g, primary, err := gp.GearOn(a)
	if err != nil || !primary || g != gp.Primary() {
		t.Errorf("GearOn(a) = %v primary=%v err=%v", g, primary, err)
	}
	g, primary, err = gp.GearOn(b)
	if err != nil || primary || g != gp.Secondary() {
		t.Errorf("GearOn(b) = %v primary=%v err=%v", g, primary, err)
	}
	if _, _, err = gp.GearOn(c); !errors.Is(err, ErrNoGearOnAxle) {
		t.Errorf("GearOn(c) err = %v, want ErrNoGearOnAxle", err)
	}
}

func TestGearBuild(t *testing.T) {
	reg := NewRegistry()
	declareStyles(t, reg)
	declareAxle(t, reg, "a", r2.Vec{})
	declareAxle(t, reg, "b", r2.Vec{X: 25, Y: 25})
	gp, err := NewGearPair(reg, GearPairParams{
		Name:           "pair",
		PrimaryAxle:    ByName("a"),
		SecondaryAxle:  ByName("b"),
		PrimaryTeeth:   30,
		SecondaryTeeth: 8,
		BaseOffset:     1,
	})
	if err != nil {
		t.Fatal(err)
	}
	s, err := gp.Primary().Build(false)
	if err != nil {
		t.Fatal(err)
	}
	bb := s.Bounds()
	base, top := gp.Primary().Base(), gp.Primary().Top()
	if math.Abs(bb.Min.Z-base) > tol || math.Abs(bb.Max.Z-top) > tol {
		t.Errorf("gear z extent [%g, %g], want [%g, %g]", bb.Min.Z, bb.Max.Z, base, top)
	}
	inPlace, err := gp.Secondary().Build(true)
	if err != nil {
		t.Fatal(err)
	}
	bb = inPlace.Bounds()
	center := (bb.Min.X + bb.Max.X) / 2
	if math.Abs(center-25) > 1e-6 {
		t.Errorf("in-place gear centered at x=%g, want 25", center)
	}
}
