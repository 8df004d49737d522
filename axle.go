package gearbox

import (
	"fmt"
	"strings"

	"github.com/HouJingChen99/gearbox-4/obj"
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// SupportSpec is the footprint of a support boss on a plate. Support
// footprints join the convex hull forming the plate outline.
type SupportSpec struct {
	Diameter float64
	// Segments is the footprint polygon facet count. Zero selects the
	// plate default.
	Segments int
}

// StdSupport is the usual boss footprint for axles and pillars.
var StdSupport = SupportSpec{Diameter: 7, Segments: 13}

// PadUpSpec grows a pad from a plate top face toward the first component on
// the axle, so the component spins just clear of the plate.
type PadUpSpec struct {
	// Height fixes the pad height. Zero derives it from the base of the
	// first component on the axle, minus PadToComponent.
	Height float64
	// PadToComponent is the running clearance left between pad and
	// component.
	PadToComponent float64
	// Shape is the pad cylinder; its Height field is ignored.
	Shape obj.ChamferedCylinderParams
}

// AxleCutSpec bores a shaft passage through a plate where the axle
// pierces it.
type AxleCutSpec struct {
	// Shaft names a ShaftStyle entry.
	Shaft string
	// Blanked leaves that much plate solid closing the bore at the plate
	// underside, for blind holes.
	Blanked float64
}

// PlateLink wires an axle to one plate: an optional support boss, an
// optional pad raising the gear train off the plate, and an optional shaft
// bore through it.
type PlateLink struct {
	Plate   Ref
	Support *SupportSpec
	PadUp   *PadUpSpec
	Cut     *AxleCutSpec
}

// AxleParams declares an axle.
type AxleParams struct {
	Name string
	// At is the axle position in the plate plane.
	At r2.Vec
	// Plates are the plates the axle is mounted between.
	Plates []PlateLink
}

// Axle is a vertical line through the assembly that components stack
// along. The axle itself has no geometry; it contributes supports, pads
// and bores to the plates it is mounted on and orders the components
// riding it.
type Axle struct {
	name       string
	pos        r2.Vec
	components []*Component
	// padHeight is the height of the plate pad generated under the first
	// component, consumed by plate bores that must reach through the pad.
	padHeight float64
}

// NewAxle declares an axle and wires it to its plates.
func NewAxle(reg *Registry, p AxleParams) (*Axle, error) {
	a := &Axle{name: p.Name, pos: p.At}
	if err := reg.register(NSAxle, p.Name, a); err != nil {
		return nil, err
	}
	for _, link := range p.Plates {
		pl, err := reg.Plate(link.Plate)
		if err != nil {
			return nil, fmt.Errorf("axle %q: %w", p.Name, err)
		}
		if link.Support != nil {
			pl.AddSupport("axle "+p.Name, a.pos, *link.Support)
		}
		if link.PadUp != nil {
			spec := *link.PadUp
			pl.AddExtra("axle pad "+p.Name, func() (sdf.SDF3, error) {
				return a.buildPadUp(spec)
			})
		}
		if link.Cut != nil {
			spec := *link.Cut
			thickness := pl.Thickness()
			pl.AddCut("axle bore "+p.Name, func() (sdf.SDF3, error) {
				return a.buildPlateCut(spec, thickness)
			})
		}
	}
	return a, nil
}

func (a *Axle) EntityName() string { return a.name }

// Position returns the axle position in the plate plane.
func (a *Axle) Position() r2.Vec { return a.pos }

// addComponent inserts c into the chain, keeping it sorted by ascending
// base z regardless of declaration order.
func (a *Axle) addComponent(c *Component) error {
	base, err := c.Base()
	if err != nil {
		return fmt.Errorf("component %q on axle %q: %w", c.name, a.name, err)
	}
	at := len(a.components)
	for i, old := range a.components {
		oldBase, err := old.Base()
		if err != nil {
			return fmt.Errorf("component %q on axle %q: %w", old.name, a.name, err)
		}
		if oldBase > base {
			at = i
			break
		}
	}
	a.components = append(a.components, nil)
	copy(a.components[at+1:], a.components[at:])
	a.components[at] = c
	return nil
}

// Components returns the components on the axle, bottom first.
func (a *Axle) Components() []*Component {
	out := make([]*Component, len(a.components))
	copy(out, a.components)
	return out
}

// ComponentIndex returns the position of c in the axle's bottom-up chain.
// A miss is a wiring defect; the error lists what the axle does carry.
func (a *Axle) ComponentIndex(c *Component) (int, error) {
	for i, have := range a.components {
		if have == c {
			return i, nil
		}
	}
	names := make([]string, len(a.components))
	for i, have := range a.components {
		names[i] = have.name
	}
	return 0, fmt.Errorf("%w: component %q not on axle %q (which carries: %s)",
		ErrMissingName, c.name, a.name, strings.Join(names, ", "))
}

// ComponentAt returns the i-th component from the bottom of the axle.
func (a *Axle) ComponentAt(i int) (*Component, error) {
	if i < 0 || i >= len(a.components) {
		return nil, fmt.Errorf("%w: component #%d of axle %q with %d riding it",
			ErrIndexRange, i, a.name, len(a.components))
	}
	return a.components[i], nil
}

// PadHeight returns the outward vertical extreme of the component chain:
// the lowest component base when fromBase is true, the highest component
// top otherwise. ok is false while the axle carries no components. The top
// query can fail when the topmost part has an unresolvable lazy extent.
func (a *Axle) PadHeight(fromBase bool) (h float64, ok bool, err error) {
	if len(a.components) == 0 {
		return 0, false, nil
	}
	if fromBase {
		h, err = a.components[0].Base()
	} else {
		h, err = a.components[len(a.components)-1].Top()
	}
	if err != nil {
		return 0, false, fmt.Errorf("axle %q: %w", a.name, err)
	}
	return h, true, nil
}

// buildPadUp generates the pad raising the gear train off a plate, in the
// plate top face frame.
func (a *Axle) buildPadUp(spec PadUpSpec) (sdf.SDF3, error) {
	h := spec.Height
	if h == 0 {
		base, ok, err := a.PadHeight(true)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: axle %q carries no components to pad up to", ErrUnresolved, a.name)
		}
		h = base - spec.PadToComponent
	}
	a.padHeight = h
	if h <= 0 {
		return nil, nil
	}
	shape := spec.Shape
	shape.Height = h
	pad, err := obj.ChamferedCylinder(shape)
	if err != nil || pad == nil {
		return nil, err
	}
	return translate(pad, a.pos.X, a.pos.Y, 0), nil
}

// buildPlateCut generates the shaft bore through a plate, in the plate
// underside frame. The bore reaches through any pad generated on top of
// the plate, so pads must be generated before cuts; Plate.Build does that.
func (a *Axle) buildPlateCut(spec AxleCutSpec, plateThickness float64) (sdf.SDF3, error) {
	params, err := ShaftStyle(spec.Shaft)
	if err != nil {
		return nil, fmt.Errorf("axle %q: %w", a.name, err)
	}
	params.Base = spec.Blanked
	params.Top = plateThickness + a.padHeight
	bore, err := obj.Sleeve(params)
	if err != nil {
		return nil, fmt.Errorf("axle %q: %w", a.name, err)
	}
	return translate(bore, a.pos.X, a.pos.Y, 0), nil
}
