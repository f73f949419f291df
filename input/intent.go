package input

import (
	"github.com/lixenwraith/transporters/core"
	"github.com/lixenwraith/transporters/vmath"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit     // q, ESC, Ctrl+C
	IntentResize   // Terminal resize event
	IntentSnapshot // p
	IntentSpawnRail

	// Scene intents, published to the world event queue
	IntentSpawnAgent  // Space
	IntentDragHandle  // Left drag started over a control point handle
	IntentDragRail    // Left drag started over a rail grab handle
	IntentDragRelease // Left button released after a drag
)

var intentNames = map[IntentType]string{
	IntentNone:        "None",
	IntentQuit:        "Quit",
	IntentResize:      "Resize",
	IntentSnapshot:    "Snapshot",
	IntentSpawnRail:   "SpawnRail",
	IntentSpawnAgent:  "SpawnAgent",
	IntentDragHandle:  "DragHandle",
	IntentDragRail:    "DragRail",
	IntentDragRelease: "DragRelease",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Intent is a parsed user action
type Intent struct {
	Type IntentType

	// Target is the handle or rail under drag, or the rail for an agent spawn
	Target core.Entity

	// Delta is the pointer motion in world units, screen orientation (Y down)
	Delta vmath.Vec2

	// Width and Height carry the new screen size for IntentResize
	Width  int
	Height int
}
