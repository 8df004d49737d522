package gearbox

import (
	"fmt"

	"github.com/HouJingChen99/gearbox-4/obj"
	"github.com/soypat/sdf"
)

// ShaftCutSpec bores a shaft passage along the full height of a component.
type ShaftCutSpec struct {
	// Shaft names a ShaftStyle entry. Params overrides it when non-nil.
	Shaft  string
	Params *obj.SleeveParams
	// BaseOffset raises the start of the bore above the component base,
	// for blind bores.
	BaseOffset float64
}

// FretCutSpec punches a ring of circular cutouts through the component,
// bounded radially by two of its gear parts: outward by the rim of the
// part at OuterPart, inward by the widest radius of the part at InnerPart.
type FretCutSpec struct {
	OuterPart int
	InnerPart int
	// Circles is the number of cutouts around the ring.
	Circles int
}

// PartCutSpec subtracts the geometry of an arbitrary registered entity,
// such as a motor shaft blank.
type PartCutSpec struct {
	Namespace string
	Name      string
}

// CutSpec declares one subtraction from a component. Exactly one field
// must be set.
type CutSpec struct {
	Shaft *ShaftCutSpec
	Fret  *FretCutSpec
	Part  *PartCutSpec
}

// ComponentParams declares a component.
type ComponentParams struct {
	Name   string
	Axle   Ref
	Parts  []PartSpec
	Cuts   []CutSpec
	Colour Colour
}

// Component is one rigid printed piece riding an axle: a bottom-to-top
// chain of parts unioned together, minus its cuts. Components on the same
// axle are kept sorted by base height so pads can find their upstairs
// neighbour.
type Component struct {
	name   string
	reg    *Registry
	axle   *Axle
	parts  []Part
	cuts   []CutSpec
	colour Colour

	// the cut set is built once; see cutSet
	cutSolid  sdf.SDF3
	cutsReady bool
}

// NewComponent declares a component and schedules it on its axle.
func NewComponent(reg *Registry, p ComponentParams) (*Component, error) {
	if len(p.Parts) == 0 {
		return nil, fmt.Errorf("component %q needs at least one part", p.Name)
	}
	axle, err := reg.Axle(p.Axle)
	if err != nil {
		return nil, fmt.Errorf("component %q: %w", p.Name, err)
	}
	c := &Component{name: p.Name, reg: reg, axle: axle, cuts: p.Cuts, colour: p.Colour}
	for i, spec := range p.Parts {
		part, err := makePart(reg, c, i, spec)
		if err != nil {
			return nil, err
		}
		c.parts = append(c.parts, part)
	}
	if err := reg.register(NSComponent, p.Name, c); err != nil {
		return nil, err
	}
	if err := axle.addComponent(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Component) EntityName() string { return c.name }

// Colour returns the preview colour of the component.
func (c *Component) Colour() Colour { return c.colour }

// Axle returns the axle the component rides.
func (c *Component) Axle() *Axle { return c.axle }

// Part returns the chain part at the given index, bottom first.
func (c *Component) Part(i int) (Part, error) {
	if i < 0 || i >= len(c.parts) {
		return nil, fmt.Errorf("%w: part #%d of component %q with %d parts", ErrIndexRange, i, c.name, len(c.parts))
	}
	return c.parts[i], nil
}

// Base returns the z of the bottom of the component.
func (c *Component) Base() (float64, error) {
	return c.parts[0].Base()
}

// Top returns the z of the top of the component.
func (c *Component) Top() (float64, error) {
	return c.parts[len(c.parts)-1].Top()
}

// Build returns the component solid: the union of its parts minus the
// union of its cuts. Parts without geometry are skipped.
func (c *Component) Build() (sdf.SDF3, error) {
	var solids []sdf.SDF3
	for i, part := range c.parts {
		s, err := part.Build()
		if err != nil {
			return nil, fmt.Errorf("component %q part %d: %w", c.name, i, err)
		}
		if s != nil {
			solids = append(solids, s)
		}
	}
	body := unionAll(solids)
	if body == nil {
		return nil, nil
	}
	cuts, err := c.cutSet()
	if err != nil {
		return nil, err
	}
	if cuts != nil {
		body = sdf.Difference3D(body, cuts)
	}
	return body, nil
}

// cutSet builds the union of the component's cuts on first use and caches
// it. Only the cut set is cached; the additive side of Build is cheap and
// rebuilt every call.
func (c *Component) cutSet() (sdf.SDF3, error) {
	if c.cutsReady {
		return c.cutSolid, nil
	}
	var cuts []sdf.SDF3
	for i, spec := range c.cuts {
		s, err := c.buildCut(spec)
		if err != nil {
			return nil, fmt.Errorf("component %q cut %d: %w", c.name, i, err)
		}
		if s != nil {
			cuts = append(cuts, s)
		}
	}
	c.cutSolid = unionAll(cuts)
	c.cutsReady = true
	return c.cutSolid, nil
}

func (c *Component) buildCut(spec CutSpec) (sdf.SDF3, error) {
	switch {
	case spec.Shaft != nil:
		var params obj.SleeveParams
		if spec.Shaft.Params != nil {
			params = *spec.Shaft.Params
		} else {
			var err error
			params, err = ShaftStyle(spec.Shaft.Shaft)
			if err != nil {
				return nil, err
			}
		}
		base, err := c.Base()
		if err != nil {
			return nil, err
		}
		top, err := c.Top()
		if err != nil {
			return nil, err
		}
		params.Base = base + spec.Shaft.BaseOffset
		params.Top = top
		bore, err := obj.Sleeve(params)
		if err != nil {
			return nil, err
		}
		return translate(bore, c.axle.pos.X, c.axle.pos.Y, 0), nil
	case spec.Fret != nil:
		outer, err := c.Part(spec.Fret.OuterPart)
		if err != nil {
			return nil, err
		}
		inner, err := c.Part(spec.Fret.InnerPart)
		if err != nil {
			return nil, err
		}
		rim, ok := outer.(rimBounded)
		if !ok {
			return nil, fmt.Errorf("fret outer bound must be a gear part")
		}
		hub, ok := inner.(tipBounded)
		if !ok {
			return nil, fmt.Errorf("fret inner bound must be a gear or plate pad part")
		}
		base, err := outer.Base()
		if err != nil {
			return nil, err
		}
		base -= fidget
		top, err := inner.Top()
		if err != nil {
			return nil, err
		}
		ring, err := obj.FretRing(obj.FretRingParams{
			// keep a sliver of rim between the cutouts and the teeth
			OuterDiameter: 2*rim.rimInner() - 0.3,
			InnerDiameter: 2 * hub.centreOuter(),
			Circles:       spec.Fret.Circles,
			Height:        top + 2*fidget - base,
		})
		if err != nil {
			return nil, err
		}
		return translate(ring, c.axle.pos.X, c.axle.pos.Y, base), nil
	case spec.Part != nil:
		e, err := c.reg.resolve(spec.Part.Namespace, ByName(spec.Part.Name))
		if err != nil {
			return nil, err
		}
		s, ok := e.(Solid)
		if !ok {
			return nil, fmt.Errorf("%s %q has no geometry to subtract", spec.Part.Namespace, spec.Part.Name)
		}
		return s.Build()
	}
	return nil, fmt.Errorf("empty cut spec")
}
