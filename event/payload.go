package event

import (
	"github.com/lixenwraith/transporters/core"
	"github.com/lixenwraith/transporters/vmath"
)

// DragControlPointPayload carries a pointer delta for a handle
// Delta is in world units with screen orientation (Y down)
type DragControlPointPayload struct {
	Handle core.Entity
	Delta  vmath.Vec2
}

// DragRailPayload carries a pointer delta for a rail, screen orientation (Y down)
type DragRailPayload struct {
	Rail  core.Entity
	Delta vmath.Vec2
}

// HandleReleasedPayload identifies the entity whose drag ended
type HandleReleasedPayload struct {
	Entity core.Entity
}

// SpawnAgentPayload identifies the rail for a new agent
type SpawnAgentPayload struct {
	Rail core.Entity
}

// SoundRequestPayload selects a sound effect
type SoundRequestPayload struct {
	Sound core.SoundType
}
