package gearbox

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestRotateXY(t *testing.T) {
	got := rotateXY(r2.Vec{X: -8, Y: 17.5}, 90)
	if math.Abs(got.X+17.5) > tol || math.Abs(got.Y+8) > tol {
		t.Errorf("rotateXY 90 = (%g, %g), want (-17.5, -8)", got.X, got.Y)
	}
	got = rotateXY(r2.Vec{X: 3, Y: 4}, 0)
	if got.X != 3 || got.Y != 4 {
		t.Errorf("rotateXY 0 = %v, want identity", got)
	}
}

func TestMotorMountCutsPlate(t *testing.T) {
	reg := NewRegistry()
	if _, err := NewPlate(reg, "base", -3, 0, Colour{}); err != nil {
		t.Fatal(err)
	}
	if _, err := NewMotorMount(reg, MotorMountParams{Name: "stepper", Plate: ByName("base")}); err != nil {
		t.Fatal(err)
	}
	pl, _ := reg.Plate(ByName("base"))
	s, err := pl.Build()
	if err != nil {
		t.Fatal(err)
	}
	// lug hole pierces the plate
	if d := s.Evaluate(r3.Vec{X: -8, Y: 17.5, Z: -1.5}); d <= 0 {
		t.Errorf("lug hole should be open, got %g", d)
	}
	// shaft step hole around the origin
	if d := s.Evaluate(r3.Vec{X: 3, Z: -1.5}); d <= 0 {
		t.Errorf("shaft step hole should be open, got %g", d)
	}
	// plate body between the holes stays solid
	if d := s.Evaluate(r3.Vec{X: -8, Z: -1.5}); d >= 0 {
		t.Errorf("plate between the holes should be solid, got %g", d)
	}
}

func TestMotorMountAngle(t *testing.T) {
	reg := NewRegistry()
	if _, err := NewPlate(reg, "base", -3, 0, Colour{}); err != nil {
		t.Fatal(err)
	}
	if _, err := NewMotorMount(reg, MotorMountParams{Name: "stepper", Angle: 90, Plate: ByName("base")}); err != nil {
		t.Fatal(err)
	}
	pl, _ := reg.Plate(ByName("base"))
	s, err := pl.Build()
	if err != nil {
		t.Fatal(err)
	}
	// the lug pattern follows the body rotation
	if d := s.Evaluate(r3.Vec{X: -17.5, Y: -8, Z: -1.5}); d <= 0 {
		t.Errorf("rotated lug hole should be open, got %g", d)
	}
	if d := s.Evaluate(r3.Vec{X: -8, Y: 17.5, Z: -1.5}); d >= 0 {
		t.Errorf("unrotated lug position should be solid plate, got %g", d)
	}
}

func TestMotorPegs(t *testing.T) {
	reg := NewRegistry()
	if _, err := NewPlate(reg, "base", -3, 0, Colour{}); err != nil {
		t.Fatal(err)
	}
	if _, err := NewMotorMount(reg, MotorMountParams{Name: "stepper", Plate: ByName("base")}); err != nil {
		t.Fatal(err)
	}
	pegs, err := NewMotorPegs(reg, "pegs", ByName("stepper"))
	if err != nil {
		t.Fatal(err)
	}
	s, err := pegs.Build()
	if err != nil {
		t.Fatal(err)
	}
	// shank sits in the lug hole
	if d := s.Evaluate(r3.Vec{X: -8, Y: 17.5, Z: -1.5}); d >= 0 {
		t.Errorf("peg shank should fill the lug hole, got %g", d)
	}
	// flared head hangs below the plate
	bb := s.Bounds()
	if bb.Min.Z > -5 {
		t.Errorf("peg heads should hang below the plate, min z %g", bb.Min.Z)
	}
	if bb.Max.Y < 17.5+3 {
		t.Errorf("head flare missing, max y %g", bb.Max.Y)
	}

	// pegs need a motor mount, not any extra
	if _, err := NewMotorPegs(reg, "more", ByName("pegs")); err == nil {
		t.Error("pegs referencing pegs should be rejected")
	}
}

func TestMotorShaft(t *testing.T) {
	reg := NewRegistry()
	if _, err := NewPlate(reg, "base", -3, 0, Colour{}); err != nil {
		t.Fatal(err)
	}
	if _, err := NewAxle(reg, AxleParams{Name: "drive", At: r2.Vec{X: 25, Y: 25}}); err != nil {
		t.Fatal(err)
	}
	m, err := NewMotorShaft(reg, MotorShaftParams{Name: "shaft", Axle: ByName("drive"), Plate: ByName("base")})
	if err != nil {
		t.Fatal(err)
	}
	s, err := m.Build()
	if err != nil {
		t.Fatal(err)
	}
	bb := s.Bounds()
	if math.Abs(bb.Min.Z+3) > 1e-6 || math.Abs(bb.Max.Z-6.75) > 1e-6 {
		t.Errorf("shaft z extent [%g, %g], want [-3, 6.75]", bb.Min.Z, bb.Max.Z)
	}
	// round below the shoulder
	if d := s.Evaluate(r3.Vec{X: 25, Y: 27.4, Z: -2}); d >= 0 {
		t.Errorf("shaft should be round below the shoulder, got %g", d)
	}
	// flats above it
	if d := s.Evaluate(r3.Vec{X: 25, Y: 27.4, Z: 1.3}); d <= 0 {
		t.Errorf("flat should cut the shaft above the shoulder, got %g", d)
	}
	if d := s.Evaluate(r3.Vec{X: 25, Y: 26, Z: 1.3}); d >= 0 {
		t.Errorf("core between the flats should be solid, got %g", d)
	}

	// Upper hangs the motor above the plate
	u, err := NewMotorShaft(reg, MotorShaftParams{Name: "upper", Axle: ByName("drive"), Plate: ByName("base"), Upper: true})
	if err != nil {
		t.Fatal(err)
	}
	s, err = u.Build()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.Bounds().Min.Z) > 1e-6 {
		t.Errorf("upper shaft should start at the plate top face, min z %g", s.Bounds().Min.Z)
	}
}
