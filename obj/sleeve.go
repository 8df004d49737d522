package obj

import (
	"errors"

	"github.com/soypat/sdf"
)

// SleeveParams describes the bore for a brass tube shaft. The bore is
// chamfered at both ends and grips the tube over a short length at each
// end; if the bore is long enough the middle section is opened up to a
// slightly larger diameter so printing flaws cannot jam the tube.
type SleeveParams struct {
	// Base and Top are the z extent of the bore.
	Base, Top float64
	// Diameter of the tube the bore should grip.
	Diameter float64
	// Segments is the bore polygon facet count. Zero selects the default.
	Segments int
	// Outer sizes the bore polygon so its faces, not its vertices, sit on
	// the nominal circle.
	Outer bool
	// Chamfer is the flare added at both bore mouths.
	Chamfer float64
	// GripLength is the length at each end kept at the grip diameter.
	GripLength float64
	// Enlarge is the length allowance reserved for the tapers between the
	// grips and the opened middle section.
	Enlarge float64
}

// Sleeve returns the subtraction solid for a shaft bore. It is not a
// standalone part; subtract it from the component it pierces.
func Sleeve(p SleeveParams) (sdf.SDF3, error) {
	height := p.Top - p.Base
	if height <= 0 {
		return nil, errors.New("sleeve top must be above its base")
	}
	primary, err := ChamferedCylinder(ChamferedCylinderParams{
		Height:      height + 2*fidget,
		Diameter:    p.Diameter,
		Segments:    p.Segments,
		Outer:       p.Outer,
		ChamferTop:  -p.Chamfer / 2,
		ChamferBase: -p.Chamfer / 2,
	})
	if err != nil {
		return nil, err
	}
	s := elevate(primary, p.Base-fidget)
	mid := height - 2*p.GripLength - p.Enlarge
	if mid <= 0 {
		return s, nil
	}
	opened, err := ChamferedCylinder(ChamferedCylinderParams{
		Height:      mid,
		Diameter:    p.Diameter + p.Chamfer,
		Segments:    p.Segments,
		Outer:       p.Outer,
		ChamferTop:  p.Chamfer / 2,
		ChamferBase: p.Chamfer / 2,
	})
	if err != nil {
		return nil, err
	}
	return sdf.Union3D(s, elevate(opened, p.Base-fidget+p.GripLength+p.Chamfer/2)), nil
}
