package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/transporters/core"
	"github.com/lixenwraith/transporters/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventSpawnAgent, Payload: &SpawnAgentPayload{Rail: core.Entity(i + 1)}})
	}
	if q.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", q.Len())
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("Consume returned %d events, want 5", len(events))
	}
	for i, ev := range events {
		p := ev.Payload.(*SpawnAgentPayload)
		if p.Rail != core.Entity(i+1) {
			t.Errorf("event %d rail = %d, want %d", i, p.Rail, i+1)
		}
	}

	if q.Consume() != nil {
		t.Error("second Consume should be empty")
	}
	if q.Len() != 0 {
		t.Errorf("Len() after consume = %d", q.Len())
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventSoundRequest, Payload: i})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Consume returned %d events, want %d", len(events), parameter.EventQueueSize)
	}
	if first := events[0].Payload.(int); first != 10 {
		t.Errorf("oldest surviving event = %d, want 10", first)
	}
	if last := events[len(events)-1].Payload.(int); last != total-1 {
		t.Errorf("newest event = %d, want %d", last, total-1)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers, perProducer = 4, 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventDragRail})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != producers*perProducer {
		t.Errorf("consumed %d events, want %d", got, producers*perProducer)
	}
}

type recordingHandler struct {
	types []EventType
	seen  []EventType
}

func (h *recordingHandler) HandleEvent(ctx *int, ev GameEvent) {
	*ctx++
	h.seen = append(h.seen, ev.Type)
}

func (h *recordingHandler) EventTypes() []EventType {
	return h.types
}

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)

	drag := &recordingHandler{types: []EventType{EventDragControlPoint, EventDragRail}}
	sound := &recordingHandler{types: []EventType{EventSoundRequest}}
	r.Register(drag)
	r.Register(sound)

	q.Push(GameEvent{Type: EventDragRail})
	q.Push(GameEvent{Type: EventSoundRequest})
	q.Push(GameEvent{Type: EventDragControlPoint})
	q.Push(GameEvent{Type: EventSpawnAgent}) // no handler

	calls := 0
	if n := r.DispatchAll(&calls); n != 4 {
		t.Errorf("DispatchAll consumed %d, want 4", n)
	}
	if calls != 3 {
		t.Errorf("handlers called %d times, want 3", calls)
	}
	if len(drag.seen) != 2 || drag.seen[0] != EventDragRail || drag.seen[1] != EventDragControlPoint {
		t.Errorf("drag handler saw %v", drag.seen)
	}
	if r.HandlerCount(EventSpawnAgent) != 0 || r.HandlerCount(EventDragRail) != 1 {
		t.Error("unexpected handler counts")
	}
}

// relayHandler pushes a sound request for every drag it receives
type relayHandler struct {
	queue *EventQueue
}

func (h *relayHandler) HandleEvent(ctx *int, ev GameEvent) {
	*ctx++
	h.queue.Push(GameEvent{Type: EventSoundRequest})
}

func (h *relayHandler) EventTypes() []EventType {
	return []EventType{EventHandleReleased}
}

func TestRouterHandlerPushWaitsForNextDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)
	sound := &recordingHandler{types: []EventType{EventSoundRequest}}
	r.Register(&relayHandler{queue: q})
	r.Register(sound)

	q.Push(GameEvent{Type: EventHandleReleased})

	calls := 0
	if n := r.DispatchAll(&calls); n != 1 {
		t.Fatalf("first dispatch consumed %d, want 1", n)
	}
	if len(sound.seen) != 0 {
		t.Fatalf("event pushed during dispatch was delivered in the same pass")
	}
	if q.Len() != 1 {
		t.Fatalf("Len() = %d after dispatch, want 1 pending", q.Len())
	}

	if n := r.DispatchAll(&calls); n != 1 {
		t.Fatalf("second dispatch consumed %d, want 1", n)
	}
	if len(sound.seen) != 1 || sound.seen[0] != EventSoundRequest {
		t.Errorf("sound handler saw %v", sound.seen)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventDragControlPoint.String() != "DragControlPoint" {
		t.Errorf("got %q", EventDragControlPoint.String())
	}
	if EventType(-1).String() != "Unknown" {
		t.Errorf("got %q", EventType(-1).String())
	}
}
