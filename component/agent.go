package component

import (
	"github.com/lixenwraith/transporters/core"
	"github.com/lixenwraith/transporters/vmath"
)

// Direction is the traversal state of an agent
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// AgentComponent is a token ping-ponging along a rail
type AgentComponent struct {
	Rail      core.Entity
	Progress  float64 // [0, 1]
	Direction Direction

	// Position is the last successful rail-local sample
	Position vmath.Vec2

	// WorldPosition is Position with the rail placement applied at sample time
	// Kept so an agent that lost its rail stays where it was last drawn
	WorldPosition vmath.Vec2

	// Err holds the last sampling failure, nil when the rail resolved
	Err error
}

// NewAgent returns an agent at the start of rail, heading forward
func NewAgent(rail core.Entity) AgentComponent {
	return AgentComponent{
		Rail:      rail,
		Progress:  0,
		Direction: Forward,
	}
}
