package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/transporters/core"
	"github.com/lixenwraith/transporters/engine"
	"github.com/lixenwraith/transporters/event"
	"github.com/lixenwraith/transporters/render"
)

// Machine is the input state machine
// Parses tcell events into semantic Intent, tracking the left-button drag gesture
type Machine struct {
	viewport render.Viewport

	// Drag state
	target     core.Entity
	targetKind PickKind
	lastX      int
	lastY      int
	pressed    bool
}

// NewMachine creates a new input machine for a viewport
func NewMachine(vp render.Viewport) *Machine {
	return &Machine{viewport: vp}
}

// SetViewport updates the cell to world mapping after a resize
func (m *Machine) SetViewport(vp render.Viewport) {
	m.viewport = vp
}

// Active returns the entity under drag, zero when idle
func (m *Machine) Active() core.Entity {
	return m.target
}

// Reset drops any drag in progress without emitting a release
func (m *Machine) Reset() {
	m.target = 0
	m.targetKind = PickNone
	m.pressed = false
}

// Process parses a tcell event and returns an Intent
// Returns nil if the event carries no action
func (m *Machine) Process(world *engine.World, ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(world, ev)
	case *tcell.EventMouse:
		return m.processMouse(world, ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, Width: w, Height: h}
	}
	return nil
}

func (m *Machine) processKey(world *engine.World, ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
	default:
		return nil
	}

	switch ev.Rune() {
	case 'q':
		return &Intent{Type: IntentQuit}
	case 'p':
		return &Intent{Type: IntentSnapshot}
	case 'b':
		return &Intent{Type: IntentSpawnRail}
	case ' ':
		rails := world.Rails.All()
		if len(rails) == 0 {
			return nil
		}
		return &Intent{Type: IntentSpawnAgent, Target: rails[0]}
	}
	return nil
}

func (m *Machine) processMouse(world *engine.World, ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	left := ev.Buttons()&tcell.Button1 != 0

	if !left {
		if !m.pressed {
			return nil
		}
		target := m.target
		m.Reset()
		if target == 0 {
			return nil
		}
		return &Intent{Type: IntentDragRelease, Target: target}
	}

	if !m.pressed {
		// Press: pick once, a miss swallows the rest of the gesture
		m.pressed = true
		m.target, m.targetKind = Pick(world, m.viewport, x, y)
		m.lastX, m.lastY = x, y
		return nil
	}

	if m.target == 0 || (x == m.lastX && y == m.lastY) {
		return nil
	}

	delta := m.viewport.CellDelta(x-m.lastX, y-m.lastY)
	m.lastX, m.lastY = x, y

	t := IntentDragHandle
	if m.targetKind == PickRail {
		t = IntentDragRail
	}
	return &Intent{Type: t, Target: m.target, Delta: delta}
}

// Publish queues scene intents on the world event queue
// Returns false for intents the caller must handle itself
func Publish(world *engine.World, in *Intent) bool {
	if in == nil {
		return false
	}
	switch in.Type {
	case IntentSpawnAgent:
		world.PushEvent(event.EventSpawnAgent, &event.SpawnAgentPayload{Rail: in.Target})
	case IntentDragHandle:
		world.PushEvent(event.EventDragControlPoint, &event.DragControlPointPayload{Handle: in.Target, Delta: in.Delta})
	case IntentDragRail:
		world.PushEvent(event.EventDragRail, &event.DragRailPayload{Rail: in.Target, Delta: in.Delta})
	case IntentDragRelease:
		world.PushEvent(event.EventHandleReleased, &event.HandleReleasedPayload{Entity: in.Target})
	default:
		return false
	}
	return true
}
