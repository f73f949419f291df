package system

import (
	"time"

	"github.com/lixenwraith/transporters/engine"
	"github.com/lixenwraith/transporters/event"
	"github.com/lixenwraith/transporters/parameter"
)

// SpawnSystem turns queued spawn requests into agents
type SpawnSystem struct{}

func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

func (s *SpawnSystem) Priority() int {
	return parameter.PriorityEditor
}

// Update implements System interface (no tick-based logic)
func (s *SpawnSystem) Update(world *engine.World, dt time.Duration) {}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSpawnAgent}
}

func (s *SpawnSystem) HandleEvent(world *engine.World, ev event.GameEvent) {
	p, ok := ev.Payload.(*event.SpawnAgentPayload)
	if !ok {
		return
	}
	if _, err := world.SpawnAgent(p.Rail); err != nil {
		engine.Logger().Warn("agent spawn rejected", "rail", p.Rail, "error", err)
	}
}
