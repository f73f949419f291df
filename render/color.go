package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit color channels, decoupled from tcell
// Shared by the terminal renderer and the PNG snapshot
type RGB struct {
	R, G, B uint8
}

// Tcell converts to a truecolor tcell color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Float returns channels in [0, 1]
func (c RGB) Float() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}
