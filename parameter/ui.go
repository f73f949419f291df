package parameter

import "time"

// World Viewport
const (
	// WorldWidth and WorldHeight are the world extents mapped onto the terminal
	// Matches a 1280x720 window centered on the origin
	WorldWidth  = 1280.0
	WorldHeight = 720.0

	// HandleHitRadius is the pick distance for control point handles, in cells
	HandleHitRadius = 1

	// StatusBarHeight reserves the bottom row for the status line
	StatusBarHeight = 1
)

// Glyphs
const (
	RailChar     = '·'
	HandleChar   = '●'
	RailGrabChar = '■'
	AgentChar    = '◆'
	PlatformChar = '▒'
	PlugBarChar  = '▀'
	PlugChar     = '▄'
)

// Decor, world units
const (
	// PlatformSize is the side of the square platform at the origin
	PlatformSize = 100.0

	// PlugWidth and PlugHeight are the dimensions of a single plug
	PlugWidth  = 16.0
	PlugHeight = 4.0

	// PlugSpacing is the gap around plugs inside the bar
	PlugSpacing = 8.0

	// PlugBarHeight is the thickness of the bar
	PlugBarHeight = 8.0

	// PlugCount is the number of plugs on the default bar
	PlugCount = 4
)

// PlugBarPlacement is the world translation of the plug bar
var PlugBarPlacement = [2]float64{200, 0}

// Snapshot
const (
	SnapshotWidth      = 1280
	SnapshotHeight     = 720
	SnapshotLineWidth  = 2.0
	SnapshotMarkerSize = 16.0
)

// StatusMessageDuration is how long a transient status message stays visible
const StatusMessageDuration = 3 * time.Second
