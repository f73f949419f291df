package input

import (
	"github.com/lixenwraith/transporters/core"
	"github.com/lixenwraith/transporters/engine"
	"github.com/lixenwraith/transporters/parameter"
	"github.com/lixenwraith/transporters/render"
)

// PickKind identifies what a pointer press landed on
type PickKind uint8

const (
	PickNone PickKind = iota
	PickHandle
	PickRail
)

// Pick hit-tests a screen cell against handles first, then rail grab handles
// The nearest candidate within HandleHitRadius cells (Chebyshev) wins; ties go to the earliest entity
func Pick(world *engine.World, vp render.Viewport, x, y int) (core.Entity, PickKind) {
	best := core.Entity(0)
	bestDist := parameter.HandleHitRadius + 1

	for _, h := range world.Handles.All() {
		pos, err := world.HandleWorldPosition(h)
		if err != nil {
			continue
		}
		hx, hy := vp.ToScreen(pos)
		if d := cellDistance(x, y, hx, hy); d < bestDist {
			best, bestDist = h, d
		}
	}
	if best != 0 {
		return best, PickHandle
	}

	for _, e := range world.Rails.All() {
		r, ok := world.Rails.Get(e)
		if !ok {
			continue
		}
		gx, gy := vp.ToScreen(r.Placement().Translation)
		if d := cellDistance(x, y, gx, gy); d < bestDist {
			best, bestDist = e, d
		}
	}
	if best != 0 {
		return best, PickRail
	}
	return 0, PickNone
}

func cellDistance(x0, y0, x1, y1 int) int {
	dx, dy := x1-x0, y1-y0
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}
