package render

import (
	"math"

	"github.com/lixenwraith/transporters/parameter"
	"github.com/lixenwraith/transporters/vmath"
)

// Viewport maps world space (origin centered, Y up) onto terminal cells (origin top-left, Y down)
// The full WorldWidth x WorldHeight box is stretched over the drawable area
type Viewport struct {
	Width, Height int     // Drawable cells
	UnitsX        float64 // World units per column
	UnitsY        float64 // World units per row
}

// NewViewport fits the world box into a screen of w x h cells, minus the status bar
func NewViewport(w, h int) Viewport {
	h -= parameter.StatusBarHeight
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Viewport{
		Width:  w,
		Height: h,
		UnitsX: parameter.WorldWidth / float64(w),
		UnitsY: parameter.WorldHeight / float64(h),
	}
}

// ToScreen returns the cell containing a world point; it may lie off screen
func (v Viewport) ToScreen(p vmath.Vec2) (x, y int) {
	x = int(math.Floor((p.X + parameter.WorldWidth/2) / v.UnitsX))
	y = int(math.Floor((parameter.WorldHeight/2 - p.Y) / v.UnitsY))
	return x, y
}

// ToWorld returns the world point at the center of a cell
func (v Viewport) ToWorld(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		X: (float64(x)+0.5)*v.UnitsX - parameter.WorldWidth/2,
		Y: parameter.WorldHeight/2 - (float64(y)+0.5)*v.UnitsY,
	}
}

// CellDelta scales a pointer motion in cells to world units
// The result keeps screen orientation (Y down); the editor flips it
func (v Viewport) CellDelta(dx, dy int) vmath.Vec2 {
	return vmath.Vec2{X: float64(dx) * v.UnitsX, Y: float64(dy) * v.UnitsY}
}

// Contains reports whether a cell is inside the drawable area
func (v Viewport) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.Width && y < v.Height
}
