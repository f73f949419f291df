package curve

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/transporters/vmath"
)

var (
	// ErrInvalidControlPoints is returned by Build when the control point
	// count does not fit the kind, or a coordinate is not finite
	ErrInvalidControlPoints = errors.New("invalid control points")

	// ErrDegenerateSampleCount is returned when fewer than two samples are requested
	ErrDegenerateSampleCount = errors.New("degenerate sample count")
)

// Curve is an immutable piecewise cubic curve over the global parameter t in [0, 1]
// A new Curve is built for every shape change
// Both kinds are stored as Bezier spans; B-spline spans are converted at build time
type Curve struct {
	kind   Kind
	points []vmath.Vec2
	spans  []gg.CubicBez
}

// Build validates the control points for kind and returns a curve owning a copy of them
func Build(kind Kind, points []vmath.Vec2) (*Curve, error) {
	segments := segmentCount(kind, len(points))
	if segments == 0 {
		return nil, fmt.Errorf("%w: %d points for %s", ErrInvalidControlPoints, len(points), kind)
	}
	for i, p := range points {
		if !vmath.V2IsFinite(p) {
			return nil, fmt.Errorf("%w: point %d is not finite", ErrInvalidControlPoints, i)
		}
	}

	owned := make([]vmath.Vec2, len(points))
	copy(owned, points)

	spans := make([]gg.CubicBez, segments)
	for i := range spans {
		switch kind {
		case CubicBSpline:
			spans[i] = bsplineSpan(owned[i], owned[i+1], owned[i+2], owned[i+3])
		default:
			j := i * 3
			spans[i] = gg.NewCubicBez(pt(owned[j]), pt(owned[j+1]), pt(owned[j+2]), pt(owned[j+3]))
		}
	}

	return &Curve{
		kind:   kind,
		points: owned,
		spans:  spans,
	}, nil
}

func (c *Curve) Kind() Kind {
	return c.kind
}

func (c *Curve) Segments() int {
	return len(c.spans)
}

// ControlPoints returns a copy of the control polygon
func (c *Curve) ControlPoints() []vmath.Vec2 {
	out := make([]vmath.Vec2, len(c.points))
	copy(out, c.points)
	return out
}

// Evaluate returns the position at t
// Panics if t is outside [0, 1] or NaN; callers clamp
func (c *Curve) Evaluate(t float64) vmath.Vec2 {
	if !(t >= 0 && t <= 1) {
		panic(fmt.Sprintf("curve: parameter %v outside [0, 1]", t))
	}

	seg, u := c.locate(t)
	p := c.spans[seg].Eval(u)
	return vmath.Vec2{X: p.X, Y: p.Y}
}

// Tessellate samples n positions at t = i/(n-1), both endpoints included
func (c *Curve) Tessellate(n int) ([]vmath.Vec2, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: %d", ErrDegenerateSampleCount, n)
	}
	out := make([]vmath.Vec2, n)
	c.fill(out)
	return out, nil
}

// TessellateInto fills dst with len(dst) samples, reusing the caller's buffer
func (c *Curve) TessellateInto(dst []vmath.Vec2) error {
	if len(dst) < 2 {
		return fmt.Errorf("%w: %d", ErrDegenerateSampleCount, len(dst))
	}
	c.fill(dst)
	return nil
}

func (c *Curve) fill(dst []vmath.Vec2) {
	last := float64(len(dst) - 1)
	for i := range dst {
		dst[i] = c.Evaluate(float64(i) / last)
	}
}

// locate maps global t to a span index and its local parameter
// t == 1 resolves to the end of the last span
func (c *Curve) locate(t float64) (int, float64) {
	n := len(c.spans)
	s := t * float64(n)
	seg := int(math.Floor(s))
	if seg >= n {
		seg = n - 1
	}
	return seg, s - float64(seg)
}

func pt(v vmath.Vec2) gg.Point {
	return gg.Pt(v.X, v.Y)
}

// bsplineSpan converts one uniform cubic B-spline span to its Bezier control points
func bsplineSpan(p0, p1, p2, p3 vmath.Vec2) gg.CubicBez {
	return gg.NewCubicBez(
		gg.Pt((p0.X+4*p1.X+p2.X)/6, (p0.Y+4*p1.Y+p2.Y)/6),
		gg.Pt((2*p1.X+p2.X)/3, (2*p1.Y+p2.Y)/3),
		gg.Pt((p1.X+2*p2.X)/3, (p1.Y+2*p2.Y)/3),
		gg.Pt((p1.X+4*p2.X+p3.X)/6, (p1.Y+4*p2.Y+p3.Y)/6),
	)
}
