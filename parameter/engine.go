package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the default render and tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps dt handed to systems after a stall (terminal suspend, debugger)
	MaxTickDelta = 250 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023

	// InputChannelSize buffers terminal events between the poller goroutine and the loop
	InputChannelSize = 256
)

// System priorities, lower runs first
const (
	PriorityEditor    = 100
	PriorityTraversal = 200
)
