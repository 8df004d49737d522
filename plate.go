package gearbox

import (
	"fmt"

	"github.com/HouJingChen99/gearbox-4/internal/d2"
	"github.com/HouJingChen99/gearbox-4/obj"
	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// plateSupport is one boss footprint contributing to the plate outline.
type plateSupport struct {
	label string
	at    r2.Vec
	spec  SupportSpec
}

// plateGen is a deferred solid generator contributed by another entity.
// Extras run in a frame whose origin is the plate top face; cuts in a
// frame whose origin is the plate underside.
type plateGen struct {
	label string
	gen   func() (sdf.SDF3, error)
}

// Plate is a flat mounting board. Its outline is not declared: it is the
// convex hull of the support footprints the axles, pillars and motors
// mounted on it contribute. Extras (pads, pillar bodies) are unioned on
// top; cuts (shaft bores, peg sockets, mounting holes) are subtracted
// last.
type Plate struct {
	name      string
	thickness float64
	zbase     float64
	colour    Colour
	supports  []plateSupport
	extras    []plateGen
	cuts      []plateGen
}

// NewPlate declares a plate. thickness may be negative, in which case
// zoffset gives the top face of the plate instead of its underside.
func NewPlate(reg *Registry, name string, thickness, zoffset float64, colour Colour) (*Plate, error) {
	if thickness == 0 {
		return nil, fmt.Errorf("plate %q needs a nonzero thickness", name)
	}
	p := &Plate{name: name, colour: colour}
	if thickness < 0 {
		p.thickness = -thickness
		p.zbase = zoffset + thickness
	} else {
		p.thickness = thickness
		p.zbase = zoffset
	}
	if err := reg.register(NSPlate, name, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Plate) EntityName() string { return p.name }

// Baseline returns the z of the plate underside.
func (p *Plate) Baseline() float64 { return p.zbase }

// Thickness returns the plate thickness, always positive.
func (p *Plate) Thickness() float64 { return p.thickness }

// Colour returns the preview colour of the plate.
func (p *Plate) Colour() Colour { return p.colour }

// AddSupport contributes a boss footprint at the given position to the
// plate outline hull.
func (p *Plate) AddSupport(label string, at r2.Vec, spec SupportSpec) {
	p.supports = append(p.supports, plateSupport{label: label, at: at, spec: spec})
}

// AddExtra defers a solid to be unioned onto the plate. The generator runs
// during Build in a frame whose origin is the plate top face.
func (p *Plate) AddExtra(label string, gen func() (sdf.SDF3, error)) {
	p.extras = append(p.extras, plateGen{label: label, gen: gen})
}

// AddCut defers a solid to be subtracted from the plate. The generator
// runs during Build in a frame whose origin is the plate underside.
func (p *Plate) AddCut(label string, gen func() (sdf.SDF3, error)) {
	p.cuts = append(p.cuts, plateGen{label: label, gen: gen})
}

// outline returns the convex hull of the support footprints.
func (p *Plate) outline() (d2.Set, error) {
	var pts d2.Set
	for _, sup := range p.supports {
		sides := sup.spec.Segments
		if sides == 0 {
			sides = 32
		}
		it, err := obj.Arc(obj.ArcParams{
			Diameter: sup.spec.Diameter,
			Sides:    sides,
			Offset:   sup.at,
		})
		if err != nil {
			return nil, fmt.Errorf("plate %q support %s: %w", p.name, sup.label, err)
		}
		pts = append(pts, it.Points()...)
	}
	return d2.ConvexHull(pts), nil
}

// Build returns the plate solid: the extruded outline hull plus the
// extras, minus the cuts. Extras are generated before cuts because shaft
// bores size themselves to reach through the pads.
func (p *Plate) Build() (sdf.SDF3, error) {
	var adds []sdf.SDF3
	if len(p.supports) > 0 {
		hull, err := p.outline()
		if err != nil {
			return nil, err
		}
		board := sdf.Extrude3D(form2.Polygon(hull), p.thickness)
		adds = append(adds, translate(board, 0, 0, p.zbase+p.thickness/2))
	}
	topFace := p.zbase + p.thickness
	for _, extra := range p.extras {
		s, err := extra.gen()
		if err != nil {
			return nil, fmt.Errorf("plate %q extra %s: %w", p.name, extra.label, err)
		}
		if s != nil {
			adds = append(adds, translate(s, 0, 0, topFace))
		}
	}
	body := unionAll(adds)
	if body == nil {
		return nil, nil
	}
	var cuts []sdf.SDF3
	for _, cut := range p.cuts {
		s, err := cut.gen()
		if err != nil {
			return nil, fmt.Errorf("plate %q cut %s: %w", p.name, cut.label, err)
		}
		if s != nil {
			cuts = append(cuts, translate(s, 0, 0, p.zbase))
		}
	}
	if sub := unionAll(cuts); sub != nil {
		body = sdf.Difference3D(body, sub)
	}
	return body, nil
}
