package gearbox

import (
	"fmt"

	"github.com/HouJingChen99/gearbox-4/obj"
	"github.com/soypat/sdf"
)

// Part is one slice of a component's vertical chain.
type Part interface {
	// Base returns the z of the bottom of the part.
	Base() (float64, error)
	// Top returns the z of the top of the part.
	Top() (float64, error)
	// Build returns the part solid in place over its axle. A nil solid
	// with a nil error means the part legitimately has no geometry, such
	// as a pad squeezed to zero length.
	Build() (sdf.SDF3, error)
}

// rimBounded parts expose the bore side radius of a gear rim. The fret
// cutout uses it as the ring outer bound.
type rimBounded interface {
	rimInner() float64
}

// tipBounded parts expose their widest radius at the component center. The
// fret cutout uses it as the ring inner bound; spacers taper out to it.
type tipBounded interface {
	centreOuter() float64
}

// PartSpec declares one part of a component chain. Exactly one field must
// be set. Parts are declared bottom to top and order is load bearing:
// spacers and pads derive their vertical extent from their neighbours.
type PartSpec struct {
	Gear       *GearPartSpec
	AutoSpacer *AutoSpacerSpec
	PadUp      *PadUpPartSpec
	PadToPlate *PadToPlateSpec
}

// GearPartSpec places this component's gear of a pair into the chain.
type GearPartSpec struct {
	Pair Ref
}

// AutoSpacerSpec fills the gap between the gear below and the gear above.
type AutoSpacerSpec struct {
	// Straight selects a plain cylinder at the upper gear's outer radius.
	// The default is a cone from the lower gear's bore radius out to the
	// upper gear's tip radius.
	Straight bool
}

// PadUpPartSpec extends the chain up to just below the next component on
// the same axle.
type PadUpPartSpec struct {
	// Clearance left to the next component's base. Zero selects the
	// default of 0.01.
	Clearance float64
	// Shape is the pad cylinder; its Height field is ignored.
	Shape obj.ChamferedCylinderParams
}

// PadToPlateSpec extends the chain up to the underside of a plate.
type PadToPlateSpec struct {
	Plate Ref
	// Shape is the pad cylinder; its Height field is ignored.
	Shape obj.ChamferedCylinderParams
}

// makePart builds the part implementation for one chain slot.
func makePart(reg *Registry, c *Component, index int, spec PartSpec) (Part, error) {
	set := 0
	if spec.Gear != nil {
		set++
	}
	if spec.AutoSpacer != nil {
		set++
	}
	if spec.PadUp != nil {
		set++
	}
	if spec.PadToPlate != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("component %q part %d: exactly one part kind per spec, got %d", c.name, index, set)
	}
	switch {
	case spec.Gear != nil:
		pair, err := reg.Pair(spec.Gear.Pair)
		if err != nil {
			return nil, fmt.Errorf("component %q part %d: %w", c.name, index, err)
		}
		gear, _, err := pair.GearOn(c.axle)
		if err != nil {
			return nil, fmt.Errorf("component %q part %d: %w", c.name, index, err)
		}
		return &gearPart{gear: gear}, nil
	case spec.AutoSpacer != nil:
		return &autoSpacerPart{comp: c, index: index, straight: spec.AutoSpacer.Straight}, nil
	case spec.PadUp != nil:
		clearance := spec.PadUp.Clearance
		if clearance == 0 {
			clearance = 0.01
		}
		return &padUpPart{comp: c, index: index, clearance: clearance, shape: spec.PadUp.Shape}, nil
	default:
		plate, err := reg.Plate(spec.PadToPlate.Plate)
		if err != nil {
			return nil, fmt.Errorf("component %q part %d: %w", c.name, index, err)
		}
		return &padToPlatePart{comp: c, index: index, plate: plate, shape: spec.PadToPlate.Shape}, nil
	}
}

// gearPart adapts a Gear into the part chain.
type gearPart struct {
	gear *Gear
}

func (p *gearPart) Base() (float64, error)   { return p.gear.Base(), nil }
func (p *gearPart) Top() (float64, error)    { return p.gear.Top(), nil }
func (p *gearPart) Build() (sdf.SDF3, error) { return p.gear.Build(true) }
func (p *gearPart) rimInner() float64        { return p.gear.InnerRadius() }
func (p *gearPart) centreOuter() float64     { return p.gear.OuterRadius() }

// autoSpacerPart fills the vertical gap between two gear parts. Its extent
// is wholly derived, so it never bounds a chain.
type autoSpacerPart struct {
	comp     *Component
	index    int
	straight bool
}

func (p *autoSpacerPart) neighbours() (below, above Part, err error) {
	below, err = p.comp.Part(p.index - 1)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: spacer in component %q has nothing below it", ErrUnresolved, p.comp.name)
	}
	above, err = p.comp.Part(p.index + 1)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: spacer in component %q has nothing above it", ErrUnresolved, p.comp.name)
	}
	return below, above, nil
}

func (p *autoSpacerPart) Base() (float64, error) {
	below, _, err := p.neighbours()
	if err != nil {
		return 0, err
	}
	return below.Top()
}

func (p *autoSpacerPart) Top() (float64, error) {
	_, above, err := p.neighbours()
	if err != nil {
		return 0, err
	}
	return above.Base()
}

func (p *autoSpacerPart) Build() (sdf.SDF3, error) {
	below, above, err := p.neighbours()
	if err != nil {
		return nil, err
	}
	top, ok := above.(tipBounded)
	if !ok {
		return nil, fmt.Errorf("spacer in component %q needs a gear above it", p.comp.name)
	}
	belowTop, err := below.Top()
	if err != nil {
		return nil, err
	}
	aboveBase, err := above.Base()
	if err != nil {
		return nil, err
	}
	h := aboveBase - belowTop
	if h <= 0 {
		return nil, nil
	}
	var s sdf.SDF3
	if p.straight {
		s, err = obj.ChamferedCylinder(obj.ChamferedCylinderParams{
			Height: h,
			Radius: top.centreOuter(),
		})
	} else {
		bottom, ok := below.(rimBounded)
		if !ok {
			return nil, fmt.Errorf("tapered spacer in component %q needs a gear below it", p.comp.name)
		}
		s, err = obj.Cone(h, bottom.rimInner(), top.centreOuter(), 0)
	}
	if err != nil || s == nil {
		return nil, err
	}
	pos := p.comp.axle.pos
	return translate(s, pos.X, pos.Y, belowTop-fidget), nil
}

// padUpPart reaches from the part below it up to just under the next
// component on the axle. The target height is computed once and cached;
// all queries after the first see the same answer.
type padUpPart struct {
	comp      *Component
	index     int
	clearance float64
	shape     obj.ChamferedCylinderParams
	top       float64
	resolved  bool
}

func (p *padUpPart) Base() (float64, error) {
	below, err := p.comp.Part(p.index - 1)
	if err != nil {
		return 0, fmt.Errorf("%w: pad in component %q has nothing below it", ErrUnresolved, p.comp.name)
	}
	return below.Top()
}

func (p *padUpPart) Top() (float64, error) {
	if p.resolved {
		return p.top, nil
	}
	i, err := p.comp.axle.ComponentIndex(p.comp)
	if err != nil {
		return 0, err
	}
	next, err := p.comp.axle.ComponentAt(i + 1)
	if err != nil {
		return 0, fmt.Errorf("%w: pad of component %q needs a component above it on axle %q",
			ErrUnresolved, p.comp.name, p.comp.axle.name)
	}
	base, err := next.Base()
	if err != nil {
		return 0, err
	}
	p.top = base - p.clearance
	p.resolved = true
	return p.top, nil
}

func (p *padUpPart) Build() (sdf.SDF3, error) {
	base, err := p.Base()
	if err != nil {
		return nil, err
	}
	top, err := p.Top()
	if err != nil {
		return nil, err
	}
	return buildPad(p.comp, p.shape, base, top-base-padFidget)
}

// padToPlatePart reaches from the part below it up to the underside of a
// plate.
type padToPlatePart struct {
	comp  *Component
	index int
	plate *Plate
	shape obj.ChamferedCylinderParams
}

func (p *padToPlatePart) Base() (float64, error) {
	below, err := p.comp.Part(p.index - 1)
	if err != nil {
		return 0, fmt.Errorf("%w: pad in component %q has nothing below it", ErrUnresolved, p.comp.name)
	}
	return below.Top()
}

func (p *padToPlatePart) Top() (float64, error) {
	return p.plate.Baseline(), nil
}

func (p *padToPlatePart) Build() (sdf.SDF3, error) {
	base, err := p.Base()
	if err != nil {
		return nil, err
	}
	top, err := p.Top()
	if err != nil {
		return nil, err
	}
	return buildPad(p.comp, p.shape, base, top-base)
}

func (p *padToPlatePart) centreOuter() float64 {
	r := p.shape.Radius
	if r == 0 {
		r = p.shape.Diameter / 2
	}
	return r
}

// buildPad places a pad cylinder of height h starting at base over the
// component's axle. Pads squeezed to nothing are skipped.
func buildPad(c *Component, shape obj.ChamferedCylinderParams, base, h float64) (sdf.SDF3, error) {
	if h <= 0 {
		return nil, nil
	}
	shape.Height = h
	pad, err := obj.ChamferedCylinder(shape)
	if err != nil || pad == nil {
		return nil, err
	}
	return translate(pad, c.axle.pos.X, c.axle.pos.Y, base-fidget), nil
}
