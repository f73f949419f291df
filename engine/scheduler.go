package engine

import (
	"sort"
	"time"

	"github.com/lixenwraith/transporters/event"
)

// System is implemented by per-tick scene logic
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// Scheduler runs one cooperative pass per tick:
//  1. drain the event queue and dispatch every pending event synchronously
//  2. run systems in priority order
//
// Edits are therefore fully applied before any system reads rail state
type Scheduler struct {
	world     *World
	router    *event.Router[*World]
	systems   []System
	tickCount uint64
}

// NewScheduler creates a scheduler bound to the world's event queue
func NewScheduler(world *World) *Scheduler {
	return &Scheduler{
		world:  world,
		router: event.NewRouter[*World](world.Events),
	}
}

// RegisterEventHandler adds an event handler to the router
func (s *Scheduler) RegisterEventHandler(h event.Handler[*World]) {
	s.router.Register(h)
}

// AddSystem registers a system, keeping priority order stable for equal priorities
func (s *Scheduler) AddSystem(sys System) {
	s.systems = append(s.systems, sys)
	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].Priority() < s.systems[j].Priority()
	})
}

// Tick advances the scene by dt
// Negative dt is treated as zero
func (s *Scheduler) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}

	if n := s.router.DispatchAll(s.world); n > 0 {
		Logger().Debug("events dispatched", "count", n, "tick", s.tickCount)
	}

	for _, sys := range s.systems {
		sys.Update(s.world, dt)
	}
	s.tickCount++
}

// TickCount returns the number of completed ticks
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount
}
