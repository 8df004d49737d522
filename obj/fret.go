package obj

import (
	"errors"

	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// FretRingParams describes a decorative weight reduction pattern: a ring of
// evenly spaced circular cutouts between an inner and an outer diameter.
type FretRingParams struct {
	InnerDiameter float64
	OuterDiameter float64
	// Circles is the number of cutouts placed around the ring.
	Circles int
	// Height of the extruded cutout solid.
	Height float64
	// Facets of each cutout circle. Zero selects 20.
	Facets int
}

// FretRing returns the cutout solid. Each cutout circle has the diameter of
// the annulus width and is centered on the circle halfway between the two
// diameters.
func FretRing(p FretRingParams) (sdf.SDF3, error) {
	if p.Circles < 1 {
		return nil, errors.New("fret ring needs at least one cutout")
	}
	if p.InnerDiameter < 0 || p.OuterDiameter <= p.InnerDiameter {
		return nil, errors.New("fret ring needs 0 <= inner diameter < outer diameter")
	}
	if p.Height <= 0 {
		return nil, errors.New("fret ring needs a positive height")
	}
	facets := p.Facets
	if facets == 0 {
		facets = 20
	}
	cutDia := (p.OuterDiameter - p.InnerDiameter) / 2
	midRadius := (p.InnerDiameter + p.OuterDiameter) / 4
	cut := ngon(facets, cutDia/2)
	cut = sdf.Transform2D(cut, sdf.Translate2D(r2.Vec{X: midRadius}))
	ring := sdf.RotateCopy2D(cut, p.Circles)
	return elevate(sdf.Extrude3D(ring, p.Height), p.Height/2), nil
}
