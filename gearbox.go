// Package gearbox declaratively assembles a multi-gear mechanical drive —
// a clock movement — from named plates, axles, gears, shafts and pillars,
// and derives the geometry needed to make the parts fit: vertical stacking
// of parts along each axle, spacer shapes between neighbouring gears, gear
// tooth sizing and orientation so meshing pairs engage correctly, and
// boolean cutouts for shaft bores and decorative weight reduction patterns.
//
// Use is a two phase process. During the declaration pass every element of
// the assembly is declared into a Registry with constructor calls
// (NewPlate, NewAxle, NewGearPair, NewComponent, ...); entities resolve
// references to one another by handle, name or declaration index. During
// the generation pass entities produce CSG solids bottom-up — gear, part,
// component, plate — as sdf.SDF3 trees ready for an external renderer such
// as the sdf render package.
//
// The secondary gear of every pair carries a half tooth angle rotation
// offset so its tooth tips land in the primary's valleys, and spacers and
// pads derive their vertical extent lazily from whatever their neighbours
// turn out to be, so subsets of the assembly can be generated in any order
// once declaration is complete.
package gearbox

import (
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// fidget is the overlap added to subtracted solids so boolean
	// differences leave no zero thickness planes.
	fidget = 1e-3
	// padFidget shaves the pads spacing a component to the next one so
	// the stack cannot bind vertically.
	padFidget = 1e-2
	// polygonShrink reduces gear bore side radii slightly since the
	// underlying circles are regular polygons.
	polygonShrink = 0.6
)

// Colour is an RGBA preview colour with components in the range 0 to 1. It
// rides along with generated solids for external renderers; the geometry
// itself is unaffected.
type Colour struct {
	R, G, B, A float64
}

// translate moves a solid by (x, y, z).
func translate(s sdf.SDF3, x, y, z float64) sdf.SDF3 {
	if x == 0 && y == 0 && z == 0 {
		return s
	}
	return sdf.Transform3D(s, sdf.Translate3D(r3.Vec{X: x, Y: y, Z: z}))
}

// unionAll unions solids, tolerating the empty and one-element cases that
// sdf.Union3D rejects.
func unionAll(solids []sdf.SDF3) sdf.SDF3 {
	switch len(solids) {
	case 0:
		return nil
	case 1:
		return solids[0]
	}
	return sdf.Union3D(solids...)
}
