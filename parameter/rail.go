package parameter

// Rail Geometry
const (
	// TessellationSamples is the fixed polyline resolution of every rail
	TessellationSamples = 100

	// AgentSpeed is progress per second; one end-to-end pass takes one second
	AgentSpeed = 1.0
)

// DefaultRailPoints is the control polygon of the startup rail (rail-local)
var DefaultRailPoints = [4][2]float64{
	{-500, -300},
	{-100, 300},
	{100, -300},
	{500, 300},
}

// DefaultRailPlacement is the world translation of the startup rail
var DefaultRailPlacement = [2]float64{-100, 150}

// SecondaryRailPoints is the control polygon of the rail spawned from the keyboard
var SecondaryRailPoints = [6][2]float64{
	{-450, -250},
	{-300, 100},
	{-100, -200},
	{100, 200},
	{300, -100},
	{450, 250},
}

// SecondaryRailPlacement is the world translation of the keyboard-spawned rail
var SecondaryRailPlacement = [2]float64{50, -150}
