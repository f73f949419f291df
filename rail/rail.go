package rail

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/transporters/curve"
	"github.com/lixenwraith/transporters/parameter"
	"github.com/lixenwraith/transporters/vmath"
)

var (
	// ErrIndexOutOfRange is returned by SetControlPoint for an index outside the control polygon
	ErrIndexOutOfRange = errors.New("control point index out of range")

	// ErrOutOfRangeParameter is returned by Sample for t outside [0, 1]
	ErrOutOfRangeParameter = errors.New("curve parameter out of range")
)

// Rail owns one curve and its cached tessellation
// The tessellation is rebuilt before any mutating call returns, so readers
// never observe vertices that disagree with the curve
type Rail struct {
	curve     *curve.Curve
	points    []vmath.Vec2
	vertices  []vmath.Vec2
	placement vmath.Transform
	version   uint64
}

// New builds the curve and tessellates it once
func New(kind curve.Kind, points []vmath.Vec2, placement vmath.Transform) (*Rail, error) {
	c, err := curve.Build(kind, points)
	if err != nil {
		return nil, fmt.Errorf("rail: %w", err)
	}

	r := &Rail{
		curve:     c,
		points:    c.ControlPoints(),
		vertices:  make([]vmath.Vec2, parameter.TessellationSamples),
		placement: placement,
	}
	if err := c.TessellateInto(r.vertices); err != nil {
		return nil, fmt.Errorf("rail: %w", err)
	}
	return r, nil
}

// SetControlPoint moves one control point, rebuilds the curve and re-tessellates
// This is the only entry point for shape changes. On error nothing is modified
func (r *Rail) SetControlPoint(index int, p vmath.Vec2) error {
	if index < 0 || index >= len(r.points) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(r.points))
	}

	next := make([]vmath.Vec2, len(r.points))
	copy(next, r.points)
	next[index] = p

	c, err := curve.Build(r.curve.Kind(), next)
	if err != nil {
		return fmt.Errorf("rail: %w", err)
	}

	// Tessellate into a scratch buffer so a failure leaves the cache intact
	vertices := make([]vmath.Vec2, len(r.vertices))
	if err := c.TessellateInto(vertices); err != nil {
		return fmt.Errorf("rail: %w", err)
	}

	r.curve = c
	r.points = next
	r.vertices = vertices
	r.version++
	return nil
}

// Sample evaluates the curve at t
func (r *Rail) Sample(t float64) (vmath.Vec2, error) {
	if !(t >= 0 && t <= 1) {
		return vmath.Vec2{}, fmt.Errorf("%w: %v", ErrOutOfRangeParameter, t)
	}
	return r.curve.Evaluate(t), nil
}

// Vertices returns a copy of the tessellation in rail-local space
func (r *Rail) Vertices() []vmath.Vec2 {
	out := make([]vmath.Vec2, len(r.vertices))
	copy(out, r.vertices)
	return out
}

// WorldVertices returns the tessellation with the placement applied
func (r *Rail) WorldVertices() []vmath.Vec2 {
	out := make([]vmath.Vec2, len(r.vertices))
	for i, v := range r.vertices {
		out[i] = r.placement.Apply(v)
	}
	return out
}

// ControlPoints returns a copy of the control polygon
func (r *Rail) ControlPoints() []vmath.Vec2 {
	out := make([]vmath.Vec2, len(r.points))
	copy(out, r.points)
	return out
}

// ControlPoint returns point i, ok is false when i is out of range
func (r *Rail) ControlPoint(i int) (vmath.Vec2, bool) {
	if i < 0 || i >= len(r.points) {
		return vmath.Vec2{}, false
	}
	return r.points[i], true
}

// Len returns the number of control points
func (r *Rail) Len() int {
	return len(r.points)
}

func (r *Rail) Kind() curve.Kind {
	return r.curve.Kind()
}

// Curve returns the current immutable curve version
func (r *Rail) Curve() *curve.Curve {
	return r.curve
}

func (r *Rail) Placement() vmath.Transform {
	return r.placement
}

// Translate moves the placement; the curve shape is untouched
func (r *Rail) Translate(delta vmath.Vec2) {
	r.placement = r.placement.Translated(delta)
}

// Version increments on every successful shape edit
func (r *Rail) Version() uint64 {
	return r.version
}
