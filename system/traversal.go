package system

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/transporters/component"
	"github.com/lixenwraith/transporters/core"
	"github.com/lixenwraith/transporters/engine"
	"github.com/lixenwraith/transporters/event"
	"github.com/lixenwraith/transporters/parameter"
)

// TraversalSystem moves agents back and forth along their rails
// Progress advances at AgentSpeed per second in curve parameter space,
// not arc length, so visual speed follows the curve's parametrization
type TraversalSystem struct{}

func NewTraversalSystem() *TraversalSystem {
	return &TraversalSystem{}
}

func (s *TraversalSystem) Priority() int {
	return parameter.PriorityTraversal
}

// Update advances every agent by dt and resamples its rail
func (s *TraversalSystem) Update(world *engine.World, dt time.Duration) {
	step := dt.Seconds() * parameter.AgentSpeed

	for _, e := range world.Agents.All() {
		agent, ok := world.Agents.Get(e)
		if !ok {
			continue
		}

		var turned bool
		agent.Progress, agent.Direction, turned = Advance(agent.Progress, agent.Direction, step)

		r, err := world.Rail(agent.Rail)
		if err != nil {
			if agent.Err == nil {
				engine.Logger().Warn("agent lost its rail", "agent", e, "rail", agent.Rail, "error", err)
			}
			agent.Err = err
			world.Agents.Set(e, agent)
			continue
		}

		pos, err := r.Sample(agent.Progress)
		if err != nil {
			// Advance keeps progress in [0, 1]; reaching here is a bug
			panic(fmt.Sprintf("traversal: agent %d: %v", e, err))
		}
		agent.Position = pos
		agent.WorldPosition = r.Placement().Apply(pos)
		agent.Err = nil
		world.Agents.Set(e, agent)

		if turned {
			world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundTurn})
		}
	}
}

// Advance applies one step of the ping-pong state machine
// Reaching or passing a bound clamps to it and flips direction; the overshoot
// is discarded, not carried into the reversed direction
// Negative or NaN steps are treated as zero
// Landing exactly on a bound flips too (>=, <=), so a full-length step ends Backward at 1
func Advance(progress float64, dir component.Direction, step float64) (float64, component.Direction, bool) {
	if math.IsNaN(step) || step < 0 {
		step = 0
	}

	switch dir {
	case component.Forward:
		progress += step
		if progress >= 1 {
			return 1, component.Backward, true
		}
	case component.Backward:
		progress -= step
		if progress <= 0 {
			return 0, component.Forward, true
		}
	}
	return progress, dir, false
}
