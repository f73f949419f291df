package system

import (
	"fmt"
	"time"

	"github.com/lixenwraith/transporters/core"
	"github.com/lixenwraith/transporters/engine"
	"github.com/lixenwraith/transporters/event"
	"github.com/lixenwraith/transporters/parameter"
	"github.com/lixenwraith/transporters/vmath"
)

// EditorSystem applies pointer drags to control point handles and rails
// Drag deltas arrive in screen orientation (Y down) and are flipped to world Y up
type EditorSystem struct{}

func NewEditorSystem() *EditorSystem {
	return &EditorSystem{}
}

func (s *EditorSystem) Priority() int {
	return parameter.PriorityEditor
}

// Update implements System interface (edits are event driven)
func (s *EditorSystem) Update(world *engine.World, dt time.Duration) {}

// EventTypes returns the event types EditorSystem handles
func (s *EditorSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventDragControlPoint,
		event.EventDragRail,
		event.EventHandleReleased,
	}
}

// HandleEvent routes drag events; rejected edits are logged and dropped
func (s *EditorSystem) HandleEvent(world *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventDragControlPoint:
		if p, ok := ev.Payload.(*event.DragControlPointPayload); ok {
			if err := s.DragControlPoint(world, p.Handle, p.Delta); err != nil {
				engine.Logger().Warn("control point drag rejected", "handle", p.Handle, "error", err)
			}
		}
	case event.EventDragRail:
		if p, ok := ev.Payload.(*event.DragRailPayload); ok {
			if err := s.DragRail(world, p.Rail, p.Delta); err != nil {
				engine.Logger().Warn("rail drag rejected", "rail", p.Rail, "error", err)
			}
		}
	case event.EventHandleReleased:
		world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundDrop})
	}
}

// DragControlPoint moves a handle and its rail control point by a screen-oriented delta
// The rail is re-tessellated before returning. On error neither rail nor handle change
func (s *EditorSystem) DragControlPoint(world *engine.World, handle core.Entity, delta vmath.Vec2) error {
	cp, r, err := world.ResolveHandle(handle)
	if err != nil {
		return err
	}

	next := vmath.V2Add(cp.Position, vmath.V2FlipY(delta))
	if err := r.SetControlPoint(cp.Index, next); err != nil {
		return fmt.Errorf("handle %d: %w", handle, err)
	}

	cp.Position = next
	world.Handles.Set(handle, cp)

	engine.Logger().Debug("control point moved", "handle", handle, "rail", cp.Rail, "index", cp.Index, "x", next.X, "y", next.Y)
	return nil
}

// DragRail translates a rail placement by a screen-oriented delta
func (s *EditorSystem) DragRail(world *engine.World, railEntity core.Entity, delta vmath.Vec2) error {
	r, err := world.Rail(railEntity)
	if err != nil {
		return err
	}
	r.Translate(vmath.V2FlipY(delta))
	return nil
}
