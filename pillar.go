package gearbox

import (
	"fmt"

	"github.com/HouJingChen99/gearbox-4/obj"
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// PillarParams declares a pillar holding two plates apart.
type PillarParams struct {
	Name string
	At   r2.Vec
	// Diameter and Sides shape the polygonal pillar body.
	Diameter float64
	Sides    int
	// BasePlate and TopPlate may each be left zero when the pillar only
	// touches one plate.
	BasePlate Ref
	TopPlate  Ref
	// AttachToBase grows the pillar body out of the base plate as one
	// printed piece.
	AttachToBase bool
	// SocketInTop cuts a socket for the alignment peg through the top
	// plate.
	SocketInTop bool
	// PegDiameter and PegSides shape the alignment peg. Zero selects a
	// square peg of diameter 4.
	PegDiameter float64
	PegSides    int
	// Support overrides the boss footprint on both plates. Nil selects
	// StdSupport.
	Support *SupportSpec
}

// Pillar is a spacer column between two plates with a polygonal alignment
// peg through the top one. The body reaches slightly into the top plate so
// the assembly clamps tight.
type Pillar struct {
	name     string
	at       r2.Vec
	diameter float64
	sides    int
	pegDia   float64
	pegSides int
	base     *Plate
	top      *Plate
}

// NewPillar declares a pillar and wires it to its plates.
func NewPillar(reg *Registry, p PillarParams) (*Pillar, error) {
	pil := &Pillar{
		name:     p.Name,
		at:       p.At,
		diameter: p.Diameter,
		sides:    p.Sides,
		pegDia:   p.PegDiameter,
		pegSides: p.PegSides,
	}
	if pil.pegDia == 0 {
		pil.pegDia = 4
	}
	if pil.pegSides == 0 {
		pil.pegSides = 4
	}
	if !p.BasePlate.IsZero() {
		base, err := reg.Plate(p.BasePlate)
		if err != nil {
			return nil, fmt.Errorf("pillar %q: %w", p.Name, err)
		}
		pil.base = base
	}
	if !p.TopPlate.IsZero() {
		top, err := reg.Plate(p.TopPlate)
		if err != nil {
			return nil, fmt.Errorf("pillar %q: %w", p.Name, err)
		}
		pil.top = top
	}
	if err := reg.register(NSPillar, p.Name, pil); err != nil {
		return nil, err
	}
	support := StdSupport
	if p.Support != nil {
		support = *p.Support
	}
	if pil.base != nil {
		pil.base.AddSupport("pillar "+p.Name, p.At, support)
		if p.AttachToBase && pil.top != nil {
			pil.base.AddExtra("pillar "+p.Name, pil.buildBody)
		}
	}
	if pil.top != nil {
		pil.top.AddSupport("pillar "+p.Name, p.At, support)
		if p.SocketInTop {
			pil.top.AddCut("pillar peg "+p.Name, pil.buildSocket)
		}
	}
	return pil, nil
}

func (p *Pillar) EntityName() string { return p.name }

// buildBody generates the pillar column and its peg in the base plate top
// face frame.
func (p *Pillar) buildBody() (sdf.SDF3, error) {
	baseTop := p.base.Baseline() + p.base.Thickness()
	// reach a touch into the top plate so the stack clamps tight
	h := p.top.Baseline() - baseTop + 0.2
	body, err := obj.ChamferedCylinder(obj.ChamferedCylinderParams{
		Height:   h,
		Diameter: p.diameter,
		Segments: p.sides,
	})
	if err != nil {
		return nil, fmt.Errorf("pillar %q: %w", p.name, err)
	}
	peg, err := obj.ChamferedCylinder(obj.ChamferedCylinderParams{
		Height:   p.top.Thickness(),
		Diameter: p.pegDia,
		Segments: p.pegSides,
	})
	if err != nil {
		return nil, fmt.Errorf("pillar %q peg: %w", p.name, err)
	}
	s := sdf.Union3D(body, translate(peg, 0, 0, h))
	return translate(s, p.at.X, p.at.Y, 0), nil
}

// buildSocket generates the peg socket in the top plate underside frame.
func (p *Pillar) buildSocket() (sdf.SDF3, error) {
	socket, err := obj.ChamferedCylinder(obj.ChamferedCylinderParams{
		Height:   p.top.Thickness() + 2*fidget,
		Diameter: p.pegDia + 0.1,
		Segments: p.pegSides,
	})
	if err != nil {
		return nil, fmt.Errorf("pillar %q socket: %w", p.name, err)
	}
	return translate(socket, p.at.X, p.at.Y, -fidget), nil
}

// Build returns the pillar body in place, for previewing it on its own.
// The body normally prints as part of the base plate.
func (p *Pillar) Build() (sdf.SDF3, error) {
	if p.base == nil || p.top == nil {
		return nil, nil
	}
	s, err := p.buildBody()
	if err != nil {
		return nil, err
	}
	return translate(s, 0, 0, p.base.Baseline()+p.base.Thickness()), nil
}
