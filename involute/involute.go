// Package involute provides a real spur gear tooth outline for gearbox,
// adapting the involute gear generator of github.com/deadsy/sdfx to the
// soypat/sdf interfaces.
package involute

import (
	"fmt"
	"math"

	sdfxobj "github.com/deadsy/sdfx/obj"
	sdfx "github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// pressureAngle is the standard 20 degree involute pressure angle, in
	// radians.
	pressureAngle = 20 * math.Pi / 180
	// flankFacets is the number of facets approximating each involute
	// tooth flank.
	flankFacets = 10
)

// profile2 bridges a 2D field from sdfx into the sdf.SDF2 interface.
type profile2 struct {
	s sdfx.SDF2
}

func (p profile2) Evaluate(v r2.Vec) float64 {
	return p.s.Evaluate(v2.Vec{X: v.X, Y: v.Y})
}

func (p profile2) Bounds() r2.Box {
	bb := p.s.BoundingBox()
	return r2.Box{
		Min: r2.Vec{X: bb.Min.X, Y: bb.Min.Y},
		Max: r2.Vec{X: bb.Max.X, Y: bb.Max.Y},
	}
}

// Profile returns the outline of a spur gear with the given tooth count
// and circular pitch in degree units of arc length, with the teeth ground
// down radially by clearance. The gear is solid except for a small center
// hole, which any shaft bore swallows. Profile satisfies
// gearbox.ToothProfile.
func Profile(teeth int, circularPitch, clearance float64) (sdf.SDF2, error) {
	if teeth < 3 {
		return nil, fmt.Errorf("involute: %d teeth is too few", teeth)
	}
	// module relates the pitch diameter to the tooth count:
	// d = teeth * pitch / 180.
	module := circularPitch / 180
	pitchRadius := float64(teeth) * circularPitch / 360
	rootRadius := pitchRadius - module - clearance
	ringWidth := rootRadius - 0.5
	if ringWidth <= 0 {
		return nil, fmt.Errorf("involute: gear of %d teeth at pitch %g has no room for a rim", teeth, circularPitch)
	}
	g, err := sdfxobj.InvoluteGear(&sdfxobj.InvoluteGearParms{
		NumberTeeth:   teeth,
		Module:        module,
		PressureAngle: pressureAngle,
		Backlash:      0,
		Clearance:     clearance,
		RingWidth:     ringWidth,
		Facets:        flankFacets,
	})
	if err != nil {
		return nil, fmt.Errorf("involute: %w", err)
	}
	return profile2{s: g}, nil
}
