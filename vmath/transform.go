package vmath

// Transform is the placement of a scene object in world space
// Translation only: rails and decor are never rotated or scaled
type Transform struct {
	Translation Vec2
}

// TransformAt returns a placement translated to (x, y)
func TransformAt(x, y float64) Transform {
	return Transform{Translation: Vec2{x, y}}
}

// Apply maps a local point into world space
func (t Transform) Apply(p Vec2) Vec2 {
	return V2Add(p, t.Translation)
}

// Inverse maps a world point back into local space
func (t Transform) Inverse(p Vec2) Vec2 {
	return V2Sub(p, t.Translation)
}

// Translated returns a copy of t moved by delta
func (t Transform) Translated(delta Vec2) Transform {
	return Transform{Translation: V2Add(t.Translation, delta)}
}
