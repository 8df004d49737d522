package gearbox

import (
	"fmt"

	"github.com/HouJingChen99/gearbox-4/obj"
	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// handDims describes one clock hand outline: a straight bar with a
// triangular point, a counterweight circle behind the hub, and the hub
// itself. All hands extrude 1.5 high with a slight draft.
type handDims struct {
	barHalfWidth float64
	barBottom    float64
	barTop       float64
	tipBase      float64
	tipPoint     float64
	tailY        float64
	hubDia       float64
	z            float64
}

var (
	hourDims   = handDims{barHalfWidth: 1.5, barBottom: -8, barTop: 13, tipBase: 12.5, tipPoint: 16, tailY: -10, hubDia: 7.5, z: 21}
	minuteDims = handDims{barHalfWidth: 1.35, barBottom: -9, barTop: 14, tipBase: 13.5, tipPoint: 17, tailY: -10, hubDia: 5.5, z: 24}
	secondDims = handDims{barHalfWidth: 1.2, barBottom: -10, barTop: 15, tipBase: 14.5, tipPoint: 18, tailY: -11, hubDia: 4, z: 27}
)

// Hand is a clock hand, bored to press onto a brass tube shaft. Hands are
// centered on the origin; z places each one clear of the hands below it.
type Hand struct {
	name  string
	shaft string
	dims  handDims
}

const handThickness = 1.5

func newHand(reg *Registry, name, shaft string, dims handDims) (*Hand, error) {
	if _, err := ShaftStyle(shaft); err != nil {
		return nil, fmt.Errorf("hand %q: %w", name, err)
	}
	h := &Hand{name: name, shaft: shaft, dims: dims}
	if err := reg.register(NSExtra, name, h); err != nil {
		return nil, err
	}
	return h, nil
}

// NewHourHand declares the hour hand, bored for the given shaft style.
func NewHourHand(reg *Registry, name, shaft string) (*Hand, error) {
	return newHand(reg, name, shaft, hourDims)
}

// NewMinuteHand declares the minute hand.
func NewMinuteHand(reg *Registry, name, shaft string) (*Hand, error) {
	return newHand(reg, name, shaft, minuteDims)
}

// NewSecondHand declares the second hand.
func NewSecondHand(reg *Registry, name, shaft string) (*Hand, error) {
	return newHand(reg, name, shaft, secondDims)
}

func (h *Hand) EntityName() string { return h.name }

// outline returns the 2D hand shape.
func (h *Hand) outline() sdf.SDF2 {
	d := h.dims
	bar := form2.Polygon([]r2.Vec{
		{X: -d.barHalfWidth, Y: d.barBottom},
		{X: d.barHalfWidth, Y: d.barBottom},
		{X: d.barHalfWidth, Y: d.barTop},
		{X: -d.barHalfWidth, Y: d.barTop},
	})
	tip := form2.Polygon([]r2.Vec{
		{X: -3, Y: d.tipBase},
		{X: 3, Y: d.tipBase},
		{X: 0, Y: d.tipPoint},
	})
	tail := form2.Polygon(form2.Nagon(8, 3))
	tail = sdf.Transform2D(tail, sdf.Translate2D(r2.Vec{Y: d.tailY}))
	hub := form2.Polygon(form2.Nagon(8, d.hubDia/2))
	return sdf.Union2D(bar, tip, tail, hub)
}

// Build returns the hand solid at its stacking height, tapered slightly
// toward the top face and bored for its shaft.
func (h *Hand) Build() (sdf.SDF3, error) {
	body := sdf.ScaleExtrude3D(h.outline(), handThickness, r2.Vec{X: 0.95, Y: 0.95})
	body = translate(body, 0, 0, handThickness/2)
	params, err := ShaftStyle(h.shaft)
	if err != nil {
		return nil, err
	}
	params.Base = 0
	params.Top = handThickness
	bore, err := obj.Sleeve(params)
	if err != nil {
		return nil, fmt.Errorf("hand %q: %w", h.name, err)
	}
	return translate(sdf.Difference3D(body, bore), 0, 0, h.dims.z), nil
}
