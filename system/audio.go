package system

import (
	"time"

	"github.com/lixenwraith/transporters/engine"
	"github.com/lixenwraith/transporters/event"
	"github.com/lixenwraith/transporters/parameter"
)

// AudioSystem consumes sound request events and plays audio
// Decouples scene systems from direct SoundManager access
type AudioSystem struct {
	player engine.AudioPlayer
}

// NewAudioSystem creates an audio system with the given player
// player may be nil if audio is disabled
func NewAudioSystem(player engine.AudioPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityTraversal + 1
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update(world *engine.World, dt time.Duration) {}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

func (s *AudioSystem) HandleEvent(world *engine.World, ev event.GameEvent) {
	if s.player == nil {
		return
	}
	if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
		s.player.Play(p.Sound)
	}
}
