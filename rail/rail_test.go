package rail

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/transporters/curve"
	"github.com/lixenwraith/transporters/parameter"
	"github.com/lixenwraith/transporters/vmath"
)

func testPoints() []vmath.Vec2 {
	return []vmath.Vec2{
		{X: -500, Y: -300},
		{X: -100, Y: 300},
		{X: 100, Y: -300},
		{X: 500, Y: 300},
	}
}

func newTestRail(t *testing.T, kind curve.Kind) *Rail {
	t.Helper()
	r, err := New(kind, testPoints(), vmath.TransformAt(-100, 150))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return r
}

// freshTessellation recomputes vertices from the rail's current curve
func freshTessellation(t *testing.T, r *Rail) []vmath.Vec2 {
	t.Helper()
	want, err := r.Curve().Tessellate(parameter.TessellationSamples)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	return want
}

func TestNewTessellatesOnce(t *testing.T) {
	r := newTestRail(t, curve.CubicBezier)

	v := r.Vertices()
	if len(v) != parameter.TessellationSamples {
		t.Fatalf("len(Vertices) = %d, want %d", len(v), parameter.TessellationSamples)
	}
	if v[0] != testPoints()[0] || v[len(v)-1] != testPoints()[3] {
		t.Errorf("endpoints = %v, %v", v[0], v[len(v)-1])
	}
	if d := cmp.Diff(freshTessellation(t, r), v); d != "" {
		t.Errorf("initial tessellation mismatch (-want +got):\n%s", d)
	}
}

func TestNewRejectsInvalidCurve(t *testing.T) {
	_, err := New(curve.CubicBezier, testPoints()[:3], vmath.Transform{})
	if !errors.Is(err, curve.ErrInvalidControlPoints) {
		t.Fatalf("expected ErrInvalidControlPoints, got %v", err)
	}
}

func TestSetControlPointKeepsTessellationFresh(t *testing.T) {
	for _, kind := range []curve.Kind{curve.CubicBezier, curve.CubicBSpline} {
		r := newTestRail(t, kind)
		rng := rand.New(rand.NewSource(7))

		for i := 0; i < 50; i++ {
			idx := rng.Intn(r.Len())
			p := vmath.Vec2{X: rng.Float64()*1000 - 500, Y: rng.Float64()*600 - 300}
			if err := r.SetControlPoint(idx, p); err != nil {
				t.Fatalf("%s: SetControlPoint(%d): %v", kind, idx, err)
			}
			if got, _ := r.ControlPoint(idx); got != p {
				t.Fatalf("%s: ControlPoint(%d) = %v, want %v", kind, idx, got, p)
			}
			if d := cmp.Diff(freshTessellation(t, r), r.Vertices()); d != "" {
				t.Fatalf("%s: stale tessellation after edit %d (-want +got):\n%s", kind, i, d)
			}
		}
		if r.Version() != 50 {
			t.Errorf("%s: Version() = %d, want 50", kind, r.Version())
		}
	}
}

func TestSetControlPointIndexOutOfRange(t *testing.T) {
	r := newTestRail(t, curve.CubicBezier)
	beforePoints := r.ControlPoints()
	beforeVertices := r.Vertices()

	for _, idx := range []int{-1, r.Len(), r.Len() + 5} {
		err := r.SetControlPoint(idx, vmath.Vec2{X: 1, Y: 1})
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SetControlPoint(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
	}

	if d := cmp.Diff(beforePoints, r.ControlPoints()); d != "" {
		t.Errorf("control points changed (-before +after):\n%s", d)
	}
	if d := cmp.Diff(beforeVertices, r.Vertices()); d != "" {
		t.Errorf("vertices changed (-before +after):\n%s", d)
	}
	if r.Version() != 0 {
		t.Errorf("Version() = %d after rejected edits", r.Version())
	}
}

func TestSetControlPointRejectsNonFinite(t *testing.T) {
	r := newTestRail(t, curve.CubicBezier)
	before := r.ControlPoints()

	var zero float64
	err := r.SetControlPoint(1, vmath.Vec2{X: 1 / zero, Y: 0})
	if !errors.Is(err, curve.ErrInvalidControlPoints) {
		t.Fatalf("expected ErrInvalidControlPoints, got %v", err)
	}
	if d := cmp.Diff(before, r.ControlPoints()); d != "" {
		t.Errorf("control points changed (-before +after):\n%s", d)
	}
}

func TestSample(t *testing.T) {
	r := newTestRail(t, curve.CubicBezier)

	got, err := r.Sample(1)
	if err != nil {
		t.Fatalf("Sample(1): %v", err)
	}
	if want := (vmath.Vec2{X: 500, Y: 300}); got != want {
		t.Errorf("Sample(1) = %v, want %v", got, want)
	}

	for _, param := range []float64{-0.5, 1.5} {
		if _, err := r.Sample(param); !errors.Is(err, ErrOutOfRangeParameter) {
			t.Errorf("Sample(%v) error = %v, want ErrOutOfRangeParameter", param, err)
		}
	}
}

func TestVerticesIsReadOnlyView(t *testing.T) {
	r := newTestRail(t, curve.CubicBezier)
	v := r.Vertices()
	v[0] = vmath.Vec2{X: 9999, Y: 9999}

	if r.Vertices()[0] == v[0] {
		t.Error("mutating returned vertices leaked into the rail cache")
	}
}

func TestTranslateKeepsShape(t *testing.T) {
	r := newTestRail(t, curve.CubicBezier)
	local := r.Vertices()

	r.Translate(vmath.Vec2{X: 10, Y: -20})

	if d := cmp.Diff(local, r.Vertices()); d != "" {
		t.Errorf("translation changed local vertices (-before +after):\n%s", d)
	}
	want := vmath.Vec2{X: -500 - 100 + 10, Y: -300 + 150 - 20}
	if got := r.WorldVertices()[0]; got != want {
		t.Errorf("WorldVertices()[0] = %v, want %v", got, want)
	}
}
