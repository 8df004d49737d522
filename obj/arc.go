package obj

import (
	"errors"
	"math"

	"github.com/HouJingChen99/gearbox-4/internal/d2"
	sdfx "github.com/deadsy/sdfx/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// endSuppression is the fraction of half a polygon side length below which
// a candidate point is considered a near duplicate of the arc end point and
// dropped. Empirical constant, do not re-derive.
const endSuppression = 0.6

// ArcParams describes a polygonal approximation of a circular arc.
type ArcParams struct {
	// Radius of the arc. Diameter is used when Radius is zero.
	Radius   float64
	Diameter float64
	// Sides is the facet count a full circle would use.
	Sides int
	// From and To are the arc bounds in degrees, anticlockwise with the
	// positive x axis as 0. Equal bounds select a full circle.
	From, To float64
	// Outer shifts vertices by half a segment angle and inflates the
	// radius so the polygon edges, not the vertices, approximate the
	// circle.
	Outer bool
	// Offset displaces the arc center from the origin.
	Offset r2.Vec
}

// ArcIter is a one-shot iterator over the points of a polygonal arc. The
// first and last points lie exactly on the circle at the requested bounds;
// intermediate points are polygon vertices.
type ArcIter struct {
	radius float64
	offset r2.Vec
	start  float64 // angle of the first vertex candidate, radians
	stop   float64
	step   float64
	n      int // candidates consumed so far
	end    r2.Vec
	minLen float64
	first  *r2.Vec // pending exact start point (outer mode)
	done   bool
}

// Arc returns an iterator over the points approximating an arc with a
// regular polygon of p.Sides sides between the two bound angles.
func Arc(p ArcParams) (*ArcIter, error) {
	r := p.Radius
	if r == 0 {
		r = p.Diameter / 2
	}
	if r <= 0 {
		return nil, errors.New("arc needs a positive radius or diameter")
	}
	if p.Sides < 3 {
		return nil, errors.New("arc needs at least 3 sides")
	}
	if p.To < p.From {
		return nil, errors.New("arc cannot go backwards (clockwise)")
	}
	from := sdfx.DtoR(p.From)
	to := sdfx.DtoR(p.To)
	if to == from {
		to = from + 2*math.Pi
	}
	half := math.Pi / float64(p.Sides)
	it := &ArcIter{
		offset: p.Offset,
		start:  from,
		stop:   to,
		step:   2 * half,
	}
	if p.Outer {
		r = outerRadius(r, p.Sides)
		// vertex candidates move to segment midpoints; the exact start
		// point is emitted separately ahead of them
		it.start = from + half
		first := r2.Add(d2.PolarToXY(r, from), p.Offset)
		it.first = &first
	}
	it.radius = r
	it.end = r2.Add(d2.PolarToXY(r, to), p.Offset)
	it.minLen = r * math.Sin(half) * endSuppression
	return it, nil
}

// Next returns the next point of the arc. The second return value is false
// once the sequence is exhausted; the iterator cannot be restarted.
func (it *ArcIter) Next() (r2.Vec, bool) {
	if it.done {
		return r2.Vec{}, false
	}
	if it.first != nil {
		p := *it.first
		it.first = nil
		return p, true
	}
	ang := it.start + float64(it.n)*it.step
	if ang >= it.stop {
		it.done = true
		return it.end, true
	}
	it.n++
	p := r2.Add(d2.PolarToXY(it.radius, ang), it.offset)
	// the first vertex of a closed circle coincides with the end point
	// and must still be emitted; suppression is for trailing near
	// duplicates only
	if it.n > 1 && d2.Distance(p, it.end) < it.minLen {
		// too close to the end point to be worth a polygon edge
		it.done = true
		return it.end, true
	}
	return p, true
}

// Points drains the iterator into a slice.
func (it *ArcIter) Points() []r2.Vec {
	var pts []r2.Vec
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		pts = append(pts, p)
	}
	return pts
}
