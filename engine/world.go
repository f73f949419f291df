package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/transporters/component"
	"github.com/lixenwraith/transporters/core"
	"github.com/lixenwraith/transporters/curve"
	"github.com/lixenwraith/transporters/event"
	"github.com/lixenwraith/transporters/rail"
	"github.com/lixenwraith/transporters/vmath"
)

var (
	// ErrDanglingReference is returned when a handle or agent names a rail
	// that is no longer in the world
	ErrDanglingReference = errors.New("dangling rail reference")

	// ErrUnknownEntity is returned when an entity is not in the expected store
	ErrUnknownEntity = errors.New("unknown entity")
)

// World is the arena of rails, their handles, agents and static decor
// Rails own their curves; handles and agents hold non-owning core.Entity
// references that are resolved on every use
type World struct {
	nextEntityID core.Entity

	Rails     *Store[*rail.Rail]
	Handles   *Store[component.ControlPointComponent]
	Agents    *Store[component.AgentComponent]
	Platforms *Store[component.PlatformComponent]
	PlugBars  *Store[component.PlugBarComponent]
	Placement *Store[component.PlacementComponent]

	// railHandles lists handle entities per rail in control point order
	railHandles map[core.Entity][]core.Entity

	// Events is drained at the start of every tick
	Events *event.EventQueue
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Rails:        NewStore[*rail.Rail](),
		Handles:      NewStore[component.ControlPointComponent](),
		Agents:       NewStore[component.AgentComponent](),
		Platforms:    NewStore[component.PlatformComponent](),
		PlugBars:     NewStore[component.PlugBarComponent](),
		Placement:    NewStore[component.PlacementComponent](),
		railHandles:  make(map[core.Entity][]core.Entity),
		Events:       event.NewEventQueue(),
	}
}

// CreateEntity allocates a new entity id
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// SpawnRail creates a rail and one control point handle per control point
func (w *World) SpawnRail(kind curve.Kind, points []vmath.Vec2, placement vmath.Transform) (core.Entity, []core.Entity, error) {
	r, err := rail.New(kind, points, placement)
	if err != nil {
		return 0, nil, fmt.Errorf("spawn rail: %w", err)
	}

	railEntity := w.CreateEntity()
	w.Rails.Set(railEntity, r)

	handles := make([]core.Entity, r.Len())
	for i, p := range r.ControlPoints() {
		h := w.CreateEntity()
		w.Handles.Set(h, component.ControlPointComponent{
			Rail:     railEntity,
			Index:    i,
			Position: p,
		})
		handles[i] = h
	}
	w.railHandles[railEntity] = handles

	Logger().Info("rail spawned", "rail", railEntity, "kind", kind, "points", r.Len())
	return railEntity, append([]core.Entity(nil), handles...), nil
}

// SpawnAgent creates an agent at the start of an existing rail
func (w *World) SpawnAgent(railEntity core.Entity) (core.Entity, error) {
	r, err := w.Rail(railEntity)
	if err != nil {
		return 0, fmt.Errorf("spawn agent: %w", err)
	}

	agent := component.NewAgent(railEntity)
	// Start position is valid before the first tick
	agent.Position, _ = r.Sample(0)
	agent.WorldPosition = r.Placement().Apply(agent.Position)

	e := w.CreateEntity()
	w.Agents.Set(e, agent)

	Logger().Info("agent spawned", "agent", e, "rail", railEntity)
	return e, nil
}

// DestroyRail removes a rail and its handles
// Agents are not owned by the rail and report ErrDanglingReference afterwards
func (w *World) DestroyRail(railEntity core.Entity) error {
	if !w.Rails.Has(railEntity) {
		return fmt.Errorf("destroy rail %d: %w", railEntity, ErrUnknownEntity)
	}
	w.Handles.RemoveBatch(w.railHandles[railEntity])
	delete(w.railHandles, railEntity)
	w.Rails.Remove(railEntity)

	Logger().Info("rail destroyed", "rail", railEntity)
	return nil
}

// DestroyAgent removes an agent
func (w *World) DestroyAgent(agent core.Entity) error {
	if !w.Agents.Has(agent) {
		return fmt.Errorf("destroy agent %d: %w", agent, ErrUnknownEntity)
	}
	w.Agents.Remove(agent)
	return nil
}

// SpawnPlatform places a square platform decoration
func (w *World) SpawnPlatform(size float64, placement vmath.Transform) core.Entity {
	e := w.CreateEntity()
	w.Platforms.Set(e, component.PlatformComponent{Size: size})
	w.Placement.Set(e, component.PlacementComponent{Transform: placement})
	return e
}

// SpawnPlugBar places a plug bar decoration
func (w *World) SpawnPlugBar(plugs int, placement vmath.Transform) core.Entity {
	e := w.CreateEntity()
	w.PlugBars.Set(e, component.PlugBarComponent{Plugs: plugs})
	w.Placement.Set(e, component.PlacementComponent{Transform: placement})
	return e
}

// Rail resolves a rail entity
func (w *World) Rail(railEntity core.Entity) (*rail.Rail, error) {
	r, ok := w.Rails.Get(railEntity)
	if !ok {
		return nil, fmt.Errorf("rail %d: %w", railEntity, ErrDanglingReference)
	}
	return r, nil
}

// ResolveHandle returns a handle and its owning rail
func (w *World) ResolveHandle(handle core.Entity) (component.ControlPointComponent, *rail.Rail, error) {
	cp, ok := w.Handles.Get(handle)
	if !ok {
		return cp, nil, fmt.Errorf("handle %d: %w", handle, ErrUnknownEntity)
	}
	r, err := w.Rail(cp.Rail)
	if err != nil {
		return cp, nil, fmt.Errorf("handle %d: %w", handle, err)
	}
	return cp, r, nil
}

// HandlesOf returns the handle entities of a rail in control point order
func (w *World) HandlesOf(railEntity core.Entity) []core.Entity {
	return append([]core.Entity(nil), w.railHandles[railEntity]...)
}

// HandleWorldPosition returns a handle position with its rail placement applied
func (w *World) HandleWorldPosition(handle core.Entity) (vmath.Vec2, error) {
	cp, r, err := w.ResolveHandle(handle)
	if err != nil {
		return vmath.Vec2{}, err
	}
	return r.Placement().Apply(cp.Position), nil
}

// AgentWorldPosition returns an agent position with its rail placement applied
func (w *World) AgentWorldPosition(agent core.Entity) (vmath.Vec2, error) {
	a, ok := w.Agents.Get(agent)
	if !ok {
		return vmath.Vec2{}, fmt.Errorf("agent %d: %w", agent, ErrUnknownEntity)
	}
	r, err := w.Rail(a.Rail)
	if err != nil {
		return vmath.Vec2{}, err
	}
	return r.Placement().Apply(a.Position), nil
}

// PushEvent queues an event for the next dispatch
func (w *World) PushEvent(t event.EventType, payload any) {
	w.Events.Push(event.GameEvent{Type: t, Payload: payload})
}
