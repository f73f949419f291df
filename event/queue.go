package event

import (
	"sync/atomic"

	"github.com/lixenwraith/transporters/parameter"
)

// EventQueue is a lock-free MPSC ring buffer for scene events
// Producers are the input publisher and systems, all on the loop goroutine;
// handlers may push while a dispatch is running, those events wait for the next tick
// Thread-Safety:
//   - Push: Lock-free CAS, safe from any goroutine
//   - Consume: Single consumer (tick)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds event using lock-free CAS with published flags pattern
func (eq *EventQueue) Push(ev GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.EventBufferMask

			eq.events[idx] = ev
			eq.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := eq.head.Load()
			if nextTail-currentHead > parameter.EventQueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-parameter.EventQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head
func (eq *EventQueue) Consume() []GameEvent {
	for {
		currentHead := eq.head.Load()
		currentTail := eq.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		available := currentTail - currentHead
		if available > parameter.EventQueueSize {
			available = parameter.EventQueueSize
			currentHead = currentTail - parameter.EventQueueSize
		}

		result := make([]GameEvent, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (currentHead + i) & parameter.EventBufferMask

			if !eq.published[idx].Load() {
				break // Writer incomplete, picked up next tick
			}

			result = append(result, eq.events[idx])
			eq.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if eq.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns approximate pending event count
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return diff
}
