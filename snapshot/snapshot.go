// Package snapshot rasterizes the scene into a PNG image
package snapshot

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/transporters/component"
	"github.com/lixenwraith/transporters/engine"
	"github.com/lixenwraith/transporters/parameter"
	"github.com/lixenwraith/transporters/render"
	"github.com/lixenwraith/transporters/vmath"
)

// Render draws the world into a new context of the given pixel size
// World space (origin centered, Y up) is stretched over the whole image
func Render(world *engine.World, width, height int) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(rgba(render.RGBBackground))

	dc.Push()
	dc.Translate(float64(width)/2, float64(height)/2)
	dc.Scale(float64(width)/parameter.WorldWidth, -float64(height)/parameter.WorldHeight)

	drawPlatforms(dc, world)
	drawPlugBars(dc, world)
	drawRails(dc, world)
	drawHandles(dc, world)
	drawAgents(dc, world)

	dc.Pop()
	return dc
}

// Write encodes a default-sized snapshot as PNG
func Write(world *engine.World, w io.Writer) error {
	dc := Render(world, parameter.SnapshotWidth, parameter.SnapshotHeight)
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Save writes a default-sized snapshot to a PNG file
func Save(world *engine.World, path string) error {
	dc := Render(world, parameter.SnapshotWidth, parameter.SnapshotHeight)
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	engine.Logger().Info("snapshot saved", "path", path)
	return nil
}

func rgba(c render.RGB) gg.RGBA {
	r, g, b := c.Float()
	return gg.RGB(r, g, b)
}

func setColor(dc *gg.Context, c render.RGB) {
	dc.SetRGB(c.Float())
}

func fillRect(dc *gg.Context, r component.Rect) {
	dc.DrawRectangle(r.Center.X-r.Width/2, r.Center.Y-r.Height/2, r.Width, r.Height)
	_ = dc.Fill()
}

func fillMarker(dc *gg.Context, p vmath.Vec2) {
	s := parameter.SnapshotMarkerSize
	dc.DrawRectangle(p.X-s/2, p.Y-s/2, s, s)
	_ = dc.Fill()
}

func drawPlatforms(dc *gg.Context, world *engine.World) {
	setColor(dc, render.RGBPlatform)
	for _, e := range world.Platforms.All() {
		p, _ := world.Platforms.Get(e)
		pl, _ := world.Placement.Get(e)
		fillRect(dc, component.Rect{Center: pl.Transform.Translation, Width: p.Size, Height: p.Size})
	}
}

func drawPlugBars(dc *gg.Context, world *engine.World) {
	for _, e := range world.PlugBars.All() {
		b, _ := world.PlugBars.Get(e)
		pl, _ := world.Placement.Get(e)

		bar, plugs := b.Layout()
		bar.Center = pl.Transform.Apply(bar.Center)
		setColor(dc, render.RGBPlugBar)
		fillRect(dc, bar)

		setColor(dc, render.RGBPlug)
		for _, plug := range plugs {
			plug.Center = pl.Transform.Apply(plug.Center)
			fillRect(dc, plug)
		}
	}
}

func drawRails(dc *gg.Context, world *engine.World) {
	dc.SetLineWidth(parameter.SnapshotLineWidth)
	for _, e := range world.Rails.All() {
		r, ok := world.Rails.Get(e)
		if !ok {
			continue
		}

		setColor(dc, render.RGBRail)
		vertices := r.WorldVertices()
		dc.MoveTo(vertices[0].X, vertices[0].Y)
		for _, v := range vertices[1:] {
			dc.LineTo(v.X, v.Y)
		}
		_ = dc.Stroke()

		setColor(dc, render.RGBRailGrab)
		fillMarker(dc, r.Placement().Translation)
	}
}

func drawHandles(dc *gg.Context, world *engine.World) {
	setColor(dc, render.RGBHandle)
	for _, h := range world.Handles.All() {
		pos, err := world.HandleWorldPosition(h)
		if err != nil {
			continue
		}
		dc.DrawCircle(pos.X, pos.Y, parameter.SnapshotMarkerSize/2)
		_ = dc.Fill()
	}
}

func drawAgents(dc *gg.Context, world *engine.World) {
	for _, e := range world.Agents.All() {
		pos, err := world.AgentWorldPosition(e)
		if err != nil {
			a, _ := world.Agents.Get(e)
			setColor(dc, render.RGBAgentLost)
			fillMarker(dc, a.WorldPosition)
			continue
		}
		setColor(dc, render.RGBAgent)
		fillMarker(dc, pos)
	}
}
