package gearbox

import (
	"fmt"
	"math"

	"github.com/HouJingChen99/gearbox-4/internal/d2"
	sdfx "github.com/deadsy/sdfx/sdf"
	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r3"
)

// FitSpurGears returns the unique circular pitch, in degree units of arc
// length, that makes two spur gears with the given tooth counts mesh
// exactly at the given center distance. It fails with ErrPitchDomain when
// the tooth counts are too large for the distance.
func FitSpurGears(teethA, teethB int, centerDistance float64) (float64, error) {
	a := float64(teethA)
	b := float64(teethB)
	d := centerDistance
	disc := (d*d-4)*a*a*b*b - 2*a*b*b*b - 2*a*a*a*b
	if disc < 0 {
		return 0, fmt.Errorf("%w: %d and %d teeth at distance %g", ErrPitchDomain, teethA, teethB, centerDistance)
	}
	return (180*d*a*b + 180*math.Sqrt(disc)) / (a*b*b + a*a*b), nil
}

// ToothProfile returns the 2D outline of a spur gear with the given tooth
// count, circular pitch and clearance, centered on the origin. The tooth
// form itself is outside the scope of this package; involute.Profile
// provides a real one.
type ToothProfile func(teeth int, circularPitch, clearance float64) (sdf.SDF2, error)

// DiskProfile stands in for a tooth profile with a plain disc at the gear
// outer radius. Useful for dry runs where the tooth shape is irrelevant.
func DiskProfile(teeth int, circularPitch, clearance float64) (sdf.SDF2, error) {
	r := float64(teeth)*circularPitch/360 + circularPitch/180
	return form2.Polygon(form2.Nagon(48, r)), nil
}

// GearStyle carries the vertical dimensions shared by a class of gears: the
// offset of the gear base above its component base line, the face height,
// and the radial clearance ground off the teeth.
type GearStyle struct {
	name      string
	Offset    float64
	Height    float64
	Clearance float64
}

// NewGearStyle declares a gear style.
func NewGearStyle(reg *Registry, name string, offset, height, clearance float64) (*GearStyle, error) {
	s := &GearStyle{name: name, Offset: offset, Height: height, Clearance: clearance}
	if err := reg.register(NSGearStyle, name, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *GearStyle) EntityName() string { return s.name }

// Gear is one wheel of a meshing pair, bound to an axle. Gears are not
// declared directly; NewGearPair makes them.
type Gear struct {
	axle       *Axle
	teeth      int
	style      *GearStyle
	pitch      float64
	rotation   float64 // tooth alignment, degrees
	baseOffset float64
	profile    ToothProfile
}

// Teeth returns the tooth count.
func (g *Gear) Teeth() int { return g.teeth }

// Axle returns the axle carrying the gear.
func (g *Gear) Axle() *Axle { return g.axle }

// Style returns the gear's vertical dimensions.
func (g *Gear) Style() *GearStyle { return g.style }

// CircularPitch returns the pitch solved for the pair.
func (g *Gear) CircularPitch() float64 { return g.pitch }

// Rotation returns the tooth alignment angle in degrees.
func (g *Gear) Rotation() float64 { return g.rotation }

// PitchRadius returns the radius of the rolling contact circle.
func (g *Gear) PitchRadius() float64 {
	return float64(g.teeth) * g.pitch / 360
}

// OuterRadius returns the radius at the tooth tips.
func (g *Gear) OuterRadius() float64 {
	return g.PitchRadius() + g.pitch/180
}

// InnerRadius returns the radius at the tooth roots, shrunk a little for
// the polygonal approximation of the rim.
func (g *Gear) InnerRadius() float64 {
	return g.PitchRadius() - g.pitch/180 - g.style.Clearance - polygonShrink
}

// Base returns the z of the underside of the gear face.
func (g *Gear) Base() float64 { return g.baseOffset + g.style.Offset }

// Top returns the z of the top of the gear face.
func (g *Gear) Top() float64 { return g.Base() + g.style.Height }

// Build returns the gear solid at its vertical position and tooth
// alignment. inPlace additionally translates it over its axle.
func (g *Gear) Build(inPlace bool) (sdf.SDF3, error) {
	profile, err := g.profile(g.teeth, g.pitch, g.style.Clearance)
	if err != nil {
		return nil, fmt.Errorf("%d tooth profile: %w", g.teeth, err)
	}
	s := sdf.Extrude3D(profile, g.style.Height)
	s = sdf.Transform3D(s, sdf.RotateZ(sdfx.DtoR(g.rotation)))
	tr := r3.Vec{Z: g.Base() + g.style.Height/2}
	if inPlace {
		tr.X = g.axle.pos.X
		tr.Y = g.axle.pos.Y
	}
	return sdf.Transform3D(s, sdf.Translate3D(tr)), nil
}

// GearPairParams declares a meshing pair of spur gears.
type GearPairParams struct {
	Name          string
	PrimaryAxle   Ref
	SecondaryAxle Ref
	// PrimaryTeeth and SecondaryTeeth set the tooth counts; the pitch
	// follows from them and the axle distance.
	PrimaryTeeth   int
	SecondaryTeeth int
	// BaseOffset is the component base line the gear styles stack on.
	BaseOffset float64
	Colour     Colour
	// Profile generates the tooth outlines. Nil selects DiskProfile.
	Profile ToothProfile
}

// GearPair is a driving and a driven gear sized to mesh across the
// distance between their axles. The gear with fewer teeth takes the
// "small" gear style, the other the "large" style; a tie goes to the
// primary. The secondary is rotated an extra half tooth so its teeth land
// in the primary's valleys.
type GearPair struct {
	name      string
	colour    Colour
	primary   *Gear
	secondary *Gear
}

// NewGearPair solves the pitch for a gear pair and declares it.
func NewGearPair(reg *Registry, p GearPairParams) (*GearPair, error) {
	if p.PrimaryTeeth < 3 || p.SecondaryTeeth < 3 {
		return nil, fmt.Errorf("gear pair %q: gears need at least 3 teeth", p.Name)
	}
	primAxle, err := reg.Axle(p.PrimaryAxle)
	if err != nil {
		return nil, fmt.Errorf("gear pair %q: %w", p.Name, err)
	}
	secAxle, err := reg.Axle(p.SecondaryAxle)
	if err != nil {
		return nil, fmt.Errorf("gear pair %q: %w", p.Name, err)
	}
	pitch, err := FitSpurGears(p.PrimaryTeeth, p.SecondaryTeeth, d2.Distance(primAxle.pos, secAxle.pos))
	if err != nil {
		return nil, fmt.Errorf("gear pair %q: %w", p.Name, err)
	}
	primStyle, secStyle := "small", "large"
	if p.PrimaryTeeth > p.SecondaryTeeth {
		primStyle, secStyle = secStyle, primStyle
	}
	ps, err := reg.Style(ByName(primStyle))
	if err != nil {
		return nil, fmt.Errorf("gear pair %q: %w", p.Name, err)
	}
	ss, err := reg.Style(ByName(secStyle))
	if err != nil {
		return nil, fmt.Errorf("gear pair %q: %w", p.Name, err)
	}
	profile := p.Profile
	if profile == nil {
		profile = DiskProfile
	}
	bearing := d2.Bearing(primAxle.pos, secAxle.pos)
	gp := &GearPair{
		name:   p.Name,
		colour: p.Colour,
		primary: &Gear{
			axle:       primAxle,
			teeth:      p.PrimaryTeeth,
			style:      ps,
			pitch:      pitch,
			rotation:   bearing,
			baseOffset: p.BaseOffset,
			profile:    profile,
		},
		secondary: &Gear{
			axle:       secAxle,
			teeth:      p.SecondaryTeeth,
			style:      ss,
			pitch:      pitch,
			rotation:   bearing + 180 + 180/float64(p.SecondaryTeeth),
			baseOffset: p.BaseOffset,
			profile:    profile,
		},
	}
	if err := reg.register(NSGearPair, p.Name, gp); err != nil {
		return nil, err
	}
	return gp, nil
}

func (gp *GearPair) EntityName() string { return gp.name }

// Colour returns the preview colour of the pair.
func (gp *GearPair) Colour() Colour { return gp.colour }

// Primary returns the driving gear.
func (gp *GearPair) Primary() *Gear { return gp.primary }

// Secondary returns the driven gear.
func (gp *GearPair) Secondary() *Gear { return gp.secondary }

// GearOn returns the pair's gear riding the given axle and whether it is
// the primary.
func (gp *GearPair) GearOn(a *Axle) (*Gear, bool, error) {
	switch a {
	case gp.primary.axle:
		return gp.primary, true, nil
	case gp.secondary.axle:
		return gp.secondary, false, nil
	}
	return nil, false, fmt.Errorf("%w: pair %q, axle %q", ErrNoGearOnAxle, gp.name, a.name)
}

// Build returns both gears of the pair in place over their axles.
func (gp *GearPair) Build() (sdf.SDF3, error) {
	prim, err := gp.primary.Build(true)
	if err != nil {
		return nil, fmt.Errorf("gear pair %q: %w", gp.name, err)
	}
	sec, err := gp.secondary.Build(true)
	if err != nil {
		return nil, fmt.Errorf("gear pair %q: %w", gp.name, err)
	}
	return sdf.Union3D(prim, sec), nil
}
