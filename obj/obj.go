// Package obj provides the parametric solids the gearbox assembly engine is
// built from: chamfered cylinders, brass tube shaft sleeves, fret cutout
// rings and polygonal arc approximations.
//
// Unlike the centered primitives of the underlying sdf package, solids here
// are built with their base on the z=0 plane, centered on the z axis, the
// way they stack along an axle. A negative height extends the solid
// downward. Callers translate the result into place.
package obj

import (
	"math"

	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// fidget is the overlap added to cutting solids to prevent zero
	// thickness walls when they are subtracted.
	fidget = 1e-3
	// defaultFacets is the polygon facet count used when a parameter
	// struct leaves Segments at zero.
	defaultFacets = 32
)

// ngon returns the 2D profile of a regular polygon with the given number of
// facets. Vertices lie on the circle of the given radius; see outerRadius
// for the face-tangent variant.
func ngon(facets int, radius float64) sdf.SDF2 {
	return form2.Polygon(form2.Nagon(facets, radius))
}

// outerRadius inflates a polygon radius so the polygon faces, not its
// vertices, lie on the nominal circle.
func outerRadius(radius float64, facets int) float64 {
	return radius / math.Cos(math.Pi/float64(facets))
}

// elevate translates a solid by z along the vertical axis.
func elevate(s sdf.SDF3, z float64) sdf.SDF3 {
	if z == 0 {
		return s
	}
	return sdf.Transform3D(s, sdf.Translate3D(r3.Vec{Z: z}))
}

// stack unions vertically arranged sections, tolerating the degenerate
// one-section and empty cases that sdf.Union3D rejects.
func stack(sections ...sdf.SDF3) sdf.SDF3 {
	switch len(sections) {
	case 0:
		return nil
	case 1:
		return sections[0]
	}
	return sdf.Union3D(sections...)
}
