package gearbox

import (
	"fmt"
	"math"
	"strings"

	"github.com/HouJingChen99/gearbox-4/obj"
	sdfx "github.com/deadsy/sdfx/sdf"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// motorHole is one drilling of the 28BYJ-48 stepper mount pattern, in the
// motor's own frame with the shaft at the origin and the body along -x.
type motorHole struct {
	label string
	at    r2.Vec
	// mountDia adds a boss footprint to the plate outline; zero adds
	// none.
	mountDia float64
	holeDia  float64
	segments int
}

var stepperHoles = []motorHole{
	{label: "axle support", mountDia: 12, holeDia: 5.2},
	{label: "shaft step", holeDia: 9.5},
	{label: "lug1 support", at: r2.Vec{X: -8, Y: 17.5}, mountDia: 7, holeDia: 4.05, segments: 12},
	{label: "lug2 support", at: r2.Vec{X: -8, Y: -17.5}, mountDia: 7, holeDia: 4.05, segments: 12},
}

// MotorMountParams declares a stepper motor mount on a plate.
type MotorMountParams struct {
	Name string
	// At is the position of the motor shaft in the plate plane.
	At r2.Vec
	// Angle orients the motor body, in degrees; at 0 the body lies along
	// the negative x axis.
	Angle float64
	Plate Ref
}

// MotorMount contributes the mount pattern of a 28BYJ-48 stepper motor to
// a plate: boss footprints for the plate outline and through holes for the
// shaft and the two locating lugs.
type MotorMount struct {
	name  string
	at    r2.Vec
	angle float64
	plate *Plate
}

// NewMotorMount declares a motor mount and wires it to its plate.
func NewMotorMount(reg *Registry, p MotorMountParams) (*MotorMount, error) {
	plate, err := reg.Plate(p.Plate)
	if err != nil {
		return nil, fmt.Errorf("motor mount %q: %w", p.Name, err)
	}
	m := &MotorMount{name: p.Name, at: p.At, angle: p.Angle, plate: plate}
	if err := reg.register(NSExtra, p.Name, m); err != nil {
		return nil, err
	}
	for _, hole := range stepperHoles {
		if hole.mountDia == 0 {
			continue
		}
		at := r2.Add(m.at, rotateXY(hole.at, m.angle))
		plate.AddSupport(p.Name+" "+hole.label, at, SupportSpec{Diameter: hole.mountDia})
	}
	thickness := plate.Thickness()
	plate.AddCut(p.Name+" holes", func() (sdf.SDF3, error) {
		return m.buildCuts(thickness)
	})
	return m, nil
}

func (m *MotorMount) EntityName() string { return m.name }

// Plate returns the plate the motor mounts on.
func (m *MotorMount) Plate() *Plate { return m.plate }

// buildCuts generates the through holes in the plate underside frame.
func (m *MotorMount) buildCuts(thickness float64) (sdf.SDF3, error) {
	var holes []sdf.SDF3
	for _, hole := range stepperHoles {
		s, err := obj.ChamferedCylinder(obj.ChamferedCylinderParams{
			Height:   thickness + 2*fidget,
			Diameter: hole.holeDia,
			Segments: hole.segments,
		})
		if err != nil {
			return nil, fmt.Errorf("motor mount %q %s: %w", m.name, hole.label, err)
		}
		holes = append(holes, translate(s, hole.at.X, hole.at.Y, -fidget))
	}
	u := sdf.Union3D(holes...)
	rotated := sdf.Transform3D(u, sdf.RotateZ(sdfx.DtoR(m.angle)))
	return translate(rotated, m.at.X, m.at.Y, 0), nil
}

// MotorPegs are the little pegs that lock the motor lugs onto its plate.
// They print as a separate piece.
type MotorPegs struct {
	name  string
	motor *MotorMount
}

// NewMotorPegs declares lug pegs for an already declared motor mount.
func NewMotorPegs(reg *Registry, name string, motor Ref) (*MotorPegs, error) {
	e, err := reg.Extra(motor)
	if err != nil {
		return nil, fmt.Errorf("motor pegs %q: %w", name, err)
	}
	m, ok := e.(*MotorMount)
	if !ok {
		return nil, fmt.Errorf("motor pegs %q: %s %s is a %T, not a motor mount", name, NSExtra, motor, e)
	}
	p := &MotorPegs{name: name, motor: m}
	if err := reg.register(NSExtra, name, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *MotorPegs) EntityName() string { return p.name }

// Build returns both pegs in place under the motor lugs. Each peg is a
// shank through the lug hole with a flared head below the plate.
func (p *MotorPegs) Build() (sdf.SDF3, error) {
	thickness := p.motor.plate.Thickness()
	var pegs []sdf.SDF3
	for _, hole := range stepperHoles {
		if !strings.Contains(hole.label, "lug") {
			continue
		}
		shank, err := obj.ChamferedCylinder(obj.ChamferedCylinderParams{
			Height:     thickness + 0.5,
			Diameter:   hole.holeDia - 0.05,
			ChamferTop: 0.5,
			Segments:   24,
		})
		if err != nil {
			return nil, fmt.Errorf("motor pegs %q: %w", p.name, err)
		}
		head, err := obj.ChamferedCylinder(obj.ChamferedCylinderParams{
			Height:      2.5,
			Diameter:    6.5,
			ChamferBase: 0.5,
			Segments:    24,
		})
		if err != nil {
			return nil, fmt.Errorf("motor pegs %q: %w", p.name, err)
		}
		peg := sdf.Union3D(translate(shank, 0, 0, -0.5), translate(head, 0, 0, -2.5))
		pegs = append(pegs, translate(peg, hole.at.X, hole.at.Y, -thickness-0.15))
	}
	u := sdf.Union3D(pegs...)
	rotated := sdf.Transform3D(u, sdf.RotateZ(sdfx.DtoR(p.motor.angle)))
	return translate(rotated, p.motor.at.X, p.motor.at.Y, 0), nil
}

// MotorShaftParams declares the stepper output shaft blank.
type MotorShaftParams struct {
	Name string
	// Axle the shaft rises along; the shaft takes its position.
	Axle Ref
	// Plate the motor body hangs from.
	Plate Ref
	// Upper hangs the motor above the plate instead of below it.
	Upper bool
}

// MotorShaft is a blank of the 28BYJ-48 output shaft: a cylinder with two
// flats. Subtracting it from a gear component gives the gear a socket that
// grips the shaft; it can also be previewed on its own.
type MotorShaft struct {
	name  string
	at    r2.Vec
	plate *Plate
	upper bool
}

// 28BYJ-48 output shaft dimensions.
const (
	motorShaftHeight   = 9.75
	motorShaftShoulder = 3.3
	motorShaftDia      = 5.0
	motorAcrossFlats   = 3.05
	motorFlatX         = 6
	motorFlatY         = 1
)

// NewMotorShaft declares a motor shaft blank.
func NewMotorShaft(reg *Registry, p MotorShaftParams) (*MotorShaft, error) {
	axle, err := reg.Axle(p.Axle)
	if err != nil {
		return nil, fmt.Errorf("motor shaft %q: %w", p.Name, err)
	}
	plate, err := reg.Plate(p.Plate)
	if err != nil {
		return nil, fmt.Errorf("motor shaft %q: %w", p.Name, err)
	}
	m := &MotorShaft{name: p.Name, at: axle.pos, plate: plate, upper: p.Upper}
	if err := reg.register(NSExtra, p.Name, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MotorShaft) EntityName() string { return m.name }

// Colour returns the preview colour of the shaft.
func (m *MotorShaft) Colour() Colour { return Colour{R: 1, A: 1} }

// Build returns the shaft blank in place. The flats start above the
// shoulder, matching the real shaft.
func (m *MotorShaft) Build() (sdf.SDF3, error) {
	base := m.plate.Baseline()
	if m.upper {
		base += m.plate.Thickness()
	}
	body, err := obj.ChamferedCylinder(obj.ChamferedCylinderParams{
		Height:   motorShaftHeight,
		Diameter: motorShaftDia,
		Segments: 24,
	})
	if err != nil {
		return nil, fmt.Errorf("motor shaft %q: %w", m.name, err)
	}
	flatH := motorShaftHeight + fidget
	size := r3.Vec{X: motorFlatX, Y: motorFlatY, Z: flatH}
	zc := motorShaftShoulder + flatH/2
	yc := motorAcrossFlats/2 + motorFlatY/2
	flats := sdf.Union3D(
		translate(must3.Box(size, 0), 0, yc, zc),
		translate(must3.Box(size, 0), 0, -yc, zc),
	)
	s := sdf.Difference3D(body, flats)
	return translate(s, m.at.X, m.at.Y, base), nil
}

// rotateXY rotates a point about the origin by deg degrees anticlockwise.
func rotateXY(v r2.Vec, deg float64) r2.Vec {
	sin, cos := math.Sincos(sdfx.DtoR(deg))
	return r2.Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}
