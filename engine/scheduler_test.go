package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/transporters/event"
)

type orderSystem struct {
	name     string
	priority int
	log      *[]string
	dts      []time.Duration
}

func (s *orderSystem) Update(world *World, dt time.Duration) {
	*s.log = append(*s.log, s.name)
	s.dts = append(s.dts, dt)
}

func (s *orderSystem) Priority() int { return s.priority }

func (s *orderSystem) HandleEvent(world *World, ev event.GameEvent) {
	*s.log = append(*s.log, "event:"+ev.Type.String())
}

func (s *orderSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventDragRail}
}

func TestSchedulerOrdering(t *testing.T) {
	w := NewWorld()
	s := NewScheduler(w)

	var log []string
	late := &orderSystem{name: "late", priority: 200, log: &log}
	early := &orderSystem{name: "early", priority: 100, log: &log}
	s.AddSystem(late)
	s.AddSystem(early)
	s.RegisterEventHandler(early)

	w.PushEvent(event.EventDragRail, nil)
	s.Tick(-time.Second)

	want := []string{"event:DragRail", "early", "late"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
	if early.dts[0] != 0 {
		t.Errorf("negative dt passed through as %v", early.dts[0])
	}
}
