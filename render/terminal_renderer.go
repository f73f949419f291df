package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/transporters/component"
	"github.com/lixenwraith/transporters/core"
	"github.com/lixenwraith/transporters/engine"
	"github.com/lixenwraith/transporters/parameter"
	"github.com/lixenwraith/transporters/vmath"
)

// FrameState carries per-frame UI state owned by the input layer
type FrameState struct {
	Active  core.Entity // Entity under drag, zero when idle
	Message string      // Transient status message
}

// TerminalRenderer draws the scene into a tcell screen
// Draw order: decor, rails, rail grab handles, control point handles, agents, status bar
type TerminalRenderer struct {
	screen   tcell.Screen
	viewport Viewport
	base     tcell.Style
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen:   screen,
		viewport: NewViewport(w, h),
		base:     tcell.StyleDefault.Background(RGBBackground.Tcell()),
	}
}

// Resize recomputes the viewport after a terminal resize
func (r *TerminalRenderer) Resize(w, h int) {
	r.viewport = NewViewport(w, h)
}

// Viewport returns the current world to screen mapping
func (r *TerminalRenderer) Viewport() Viewport {
	return r.viewport
}

// RenderFrame renders the entire scene
func (r *TerminalRenderer) RenderFrame(world *engine.World, state FrameState) {
	r.screen.SetStyle(r.base)
	r.screen.Clear()

	r.drawPlatforms(world)
	r.drawPlugBars(world)
	r.drawRails(world, state.Active)
	r.drawHandles(world, state.Active)
	r.drawAgents(world)
	r.drawStatusBar(world, state.Message)

	r.screen.Show()
}

func (r *TerminalRenderer) put(p vmath.Vec2, ch rune, fg RGB) {
	x, y := r.viewport.ToScreen(p)
	r.putCell(x, y, ch, fg)
}

func (r *TerminalRenderer) putCell(x, y int, ch rune, fg RGB) {
	if !r.viewport.Contains(x, y) {
		return
	}
	r.screen.SetContent(x, y, ch, nil, r.base.Foreground(fg.Tcell()))
}

// fillRect fills every cell whose center lies inside a world rectangle, at least one cell
func (r *TerminalRenderer) fillRect(rect component.Rect, ch rune, fg RGB) {
	topLeft := vmath.Vec2{X: rect.Center.X - rect.Width/2, Y: rect.Center.Y + rect.Height/2}
	bottomRight := vmath.Vec2{X: rect.Center.X + rect.Width/2, Y: rect.Center.Y - rect.Height/2}
	x0, y0 := r.viewport.ToScreen(topLeft)
	x1, y1 := r.viewport.ToScreen(bottomRight)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.putCell(x, y, ch, fg)
		}
	}
}

func (r *TerminalRenderer) drawPlatforms(world *engine.World) {
	for _, e := range world.Platforms.All() {
		p, _ := world.Platforms.Get(e)
		pl, _ := world.Placement.Get(e)
		r.fillRect(component.Rect{
			Center: pl.Transform.Translation,
			Width:  p.Size,
			Height: p.Size,
		}, parameter.PlatformChar, RGBPlatform)
	}
}

func (r *TerminalRenderer) drawPlugBars(world *engine.World) {
	for _, e := range world.PlugBars.All() {
		b, _ := world.PlugBars.Get(e)
		pl, _ := world.Placement.Get(e)

		bar, plugs := b.Layout()
		bar.Center = pl.Transform.Apply(bar.Center)
		r.fillRect(bar, parameter.PlugBarChar, RGBPlugBar)
		for _, plug := range plugs {
			plug.Center = pl.Transform.Apply(plug.Center)
			r.fillRect(plug, parameter.PlugChar, RGBPlug)
		}
	}
}

func (r *TerminalRenderer) drawRails(world *engine.World, active core.Entity) {
	for _, e := range world.Rails.All() {
		rl, ok := world.Rails.Get(e)
		if !ok {
			continue
		}

		vertices := rl.WorldVertices()
		px, py := r.viewport.ToScreen(vertices[0])
		for _, v := range vertices[1:] {
			x, y := r.viewport.ToScreen(v)
			traceLine(px, py, x, y, func(cx, cy int) {
				r.putCell(cx, cy, parameter.RailChar, RGBRail)
			})
			px, py = x, y
		}

		grab := RGBRailGrab
		if e == active {
			grab = RGBActive
		}
		r.put(rl.Placement().Translation, parameter.RailGrabChar, grab)
	}
}

func (r *TerminalRenderer) drawHandles(world *engine.World, active core.Entity) {
	for _, h := range world.Handles.All() {
		pos, err := world.HandleWorldPosition(h)
		if err != nil {
			continue
		}
		color := RGBHandle
		if h == active {
			color = RGBActive
		}
		r.put(pos, parameter.HandleChar, color)
	}
}

func (r *TerminalRenderer) drawAgents(world *engine.World) {
	for _, e := range world.Agents.All() {
		pos, err := world.AgentWorldPosition(e)
		if err != nil {
			// Rail is gone, keep the token visible where it stopped
			a, _ := world.Agents.Get(e)
			r.put(a.WorldPosition, parameter.AgentChar, RGBAgentLost)
			continue
		}
		r.put(pos, parameter.AgentChar, RGBAgent)
	}
}

func (r *TerminalRenderer) drawStatusBar(world *engine.World, message string) {
	w, h := r.screen.Size()
	y := h - 1
	if y < 0 {
		return
	}
	style := tcell.StyleDefault.Background(RGBStatusBar.Tcell()).Foreground(RGBStatusText.Tcell())

	text := fmt.Sprintf(" rails:%d agents:%d  drag %c edit  %c move  space agent  b spline  p snapshot  q quit",
		world.Rails.Count(), world.Agents.Count(), parameter.HandleChar, parameter.RailGrabChar)
	if message != "" {
		text = " " + message
	}

	runes := []rune(text)
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		r.screen.SetContent(x, y, ch, nil, style)
	}
}
