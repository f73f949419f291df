package component

import (
	"github.com/lixenwraith/transporters/parameter"
	"github.com/lixenwraith/transporters/vmath"
)

// PlacementComponent positions static decor in world space
type PlacementComponent struct {
	Transform vmath.Transform
}

// PlatformComponent is a square landing platform centered on its placement
type PlatformComponent struct {
	Size float64
}

// PlugBarComponent is a bar carrying a row of plugs
type PlugBarComponent struct {
	Plugs int
}

// Rect is an axis-aligned box by center and size, world units
type Rect struct {
	Center vmath.Vec2
	Width  float64
	Height float64
}

// Layout returns the bar and plug rectangles relative to the bar placement
// Plugs sit on top of the bar, spaced by PlugSpacing on both sides
func (p PlugBarComponent) Layout() (bar Rect, plugs []Rect) {
	barWidth := (parameter.PlugWidth+parameter.PlugSpacing)*float64(p.Plugs) + parameter.PlugSpacing
	bar = Rect{Width: barWidth, Height: parameter.PlugBarHeight}

	start := -barWidth / 2
	plugs = make([]Rect, p.Plugs)
	for i := range plugs {
		x := start + parameter.PlugSpacing + (parameter.PlugWidth+parameter.PlugSpacing)*float64(i) + parameter.PlugWidth/2
		plugs[i] = Rect{
			Center: vmath.Vec2{X: x, Y: 6},
			Width:  parameter.PlugWidth,
			Height: parameter.PlugHeight,
		}
	}
	return bar, plugs
}
