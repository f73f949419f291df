package component

import (
	"github.com/lixenwraith/transporters/core"
	"github.com/lixenwraith/transporters/vmath"
)

// ControlPointComponent is a draggable handle bound to one rail control point
// Position is rail-local and mirrors the rail's control point at Index
type ControlPointComponent struct {
	Rail     core.Entity
	Index    int
	Position vmath.Vec2
}
