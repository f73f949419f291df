package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in world units, Y up
// Used for curve control points, tessellation vertices and sampled positions
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2Lerp interpolates from a (t=0) to b (t=1), t is not clamped
func V2Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

// V2IsFinite reports false if either component is NaN or ±Inf
func V2IsFinite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// V2FlipY converts a screen-space delta (Y down) into world space (Y up)
func V2FlipY(v Vec2) Vec2 {
	return Vec2{v.X, -v.Y}
}
