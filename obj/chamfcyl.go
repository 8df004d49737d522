package obj

import (
	"errors"
	"math"

	"github.com/soypat/sdf"
)

// ChamferedCylinderParams defines a straight cylinder with optional 45
// degree chamfers at either end.
type ChamferedCylinderParams struct {
	// Height of the cylinder. Negative heights build downward from the
	// origin instead of upward.
	Height float64
	// Diameter of the cylinder. Radius takes precedence when nonzero.
	Diameter float64
	Radius   float64
	// Segments is the facet count of the polygon approximating the
	// circular cross section. Zero selects defaultFacets.
	Segments int
	// Outer inflates the radius so the polygon faces touch the nominal
	// circle rather than the vertices. Significant for low facet counts.
	Outer bool
	// ChamferTop and ChamferBase give the radius decrease of the chamfer
	// at each end. Zero means no chamfer; negative values flare outward.
	// If the combined chamfer heights exceed the total height both are
	// scaled down proportionally.
	ChamferTop  float64
	ChamferBase float64
	// Cut lengthens the cylinder a smidgen at both ends and offsets it so
	// subtracting it leaves no zero thickness walls.
	Cut bool
}

// ChamferedCylinder builds a cylinder from up to three stacked sections:
// base chamfer frustum, straight middle and top chamfer frustum. It returns
// a nil solid without error when the parameters yield zero height.
func ChamferedCylinder(p ChamferedCylinderParams) (sdf.SDF3, error) {
	r := p.Radius
	if r == 0 {
		r = p.Diameter / 2
	}
	if r <= 0 {
		return nil, errors.New("chamfered cylinder needs a positive radius or diameter")
	}
	facets := p.Segments
	if facets == 0 {
		facets = defaultFacets
	}
	if facets < 3 {
		return nil, errors.New("chamfered cylinder needs at least 3 segments")
	}
	if p.Outer {
		r = outerRadius(r, facets)
	}
	if p.Height == 0 {
		return nil, nil
	}

	total := math.Abs(p.Height)
	hTop := math.Abs(p.ChamferTop)
	hBase := math.Abs(p.ChamferBase)
	if hTop+hBase > total {
		// chamfers never invert or overlap: squeeze their heights, keep
		// their radius deltas
		scale := total / (hTop + hBase)
		hTop *= scale
		hBase *= scale
	}
	hMid := total - hTop - hBase

	z := 0.0
	if p.Height < 0 {
		z = p.Height
	}
	cutFudge := 0.0
	if p.Cut {
		cutFudge = fidget
		z -= fidget
	}

	var sections []sdf.SDF3
	if p.ChamferBase != 0 {
		h := hBase + cutFudge
		cone := sdf.Loft3D(ngon(facets, r-p.ChamferBase), ngon(facets, r), h, 0)
		sections = append(sections, elevate(cone, z+h/2))
		z += h
	}
	if hMid > 0 {
		h := hMid
		if p.ChamferBase == 0 {
			h += cutFudge
		}
		if p.ChamferTop == 0 {
			h += cutFudge
		}
		cyl := sdf.Extrude3D(ngon(facets, r), h)
		sections = append(sections, elevate(cyl, z+h/2))
		z += h
	}
	if p.ChamferTop != 0 {
		h := hTop + cutFudge
		cone := sdf.Loft3D(ngon(facets, r), ngon(facets, r-p.ChamferTop), h, 0)
		sections = append(sections, elevate(cone, z+h/2))
	}
	return stack(sections...), nil
}
