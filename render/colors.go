package render

// Scene palette
var (
	RGBBackground = RGB{204, 204, 204} // Light gray clear color
	RGBRail       = RGB{128, 128, 128} // Gray polyline
	RGBHandle     = RGB{0, 128, 0}     // Green control point handle
	RGBRailGrab   = RGB{0, 160, 0}     // Green rail grab handle
	RGBActive     = RGB{0, 255, 0}     // Handle under drag
	RGBAgent      = RGB{0, 0, 255}     // Blue agent token
	RGBAgentLost  = RGB{255, 0, 0}     // Agent whose rail is gone
	RGBPlatform   = RGB{128, 128, 128} // Gray platform
	RGBPlugBar    = RGB{0, 0, 0}       // Black bar
	RGBPlug       = RGB{255, 255, 0}   // Yellow plug
	RGBStatusBar  = RGB{40, 40, 40}    // Dark status line
	RGBStatusText = RGB{255, 255, 255} // White status text
)
