package event

// EventType represents the type of scene event
type EventType int

const (
	// EventDragControlPoint moves one control point handle
	// Trigger: pointer drag over a handle
	// Consumer: EditorSystem | Payload: *DragControlPointPayload
	EventDragControlPoint EventType = iota

	// EventDragRail translates a rail placement, shape unchanged
	// Trigger: pointer drag over the rail grab handle
	// Consumer: EditorSystem | Payload: *DragRailPayload
	EventDragRail

	// EventHandleReleased ends a drag gesture
	// Trigger: pointer button release after a drag
	// Consumer: EditorSystem | Payload: *HandleReleasedPayload
	EventHandleReleased

	// EventSpawnAgent creates an agent on an existing rail
	// Trigger: keyboard
	// Consumer: SpawnSystem | Payload: *SpawnAgentPayload
	EventSpawnAgent

	// EventSoundRequest requests audio playback
	// Trigger: TraversalSystem on turnaround, EditorSystem on release
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventDragControlPoint: "DragControlPoint",
	EventDragRail:         "DragRail",
	EventHandleReleased:   "HandleReleased",
	EventSpawnAgent:       "SpawnAgent",
	EventSoundRequest:     "SoundRequest",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventNames[t]
}

// GameEvent is a typed event with its payload
type GameEvent struct {
	Type    EventType
	Payload any
}
