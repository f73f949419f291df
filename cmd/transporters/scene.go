package main

import (
	"fmt"

	"github.com/lixenwraith/transporters/core"
	"github.com/lixenwraith/transporters/curve"
	"github.com/lixenwraith/transporters/engine"
	"github.com/lixenwraith/transporters/parameter"
	"github.com/lixenwraith/transporters/vmath"
)

func toVecs(points [][2]float64) []vmath.Vec2 {
	out := make([]vmath.Vec2, len(points))
	for i, p := range points {
		out[i] = vmath.V2(p[0], p[1])
	}
	return out
}

func placementAt(p [2]float64) vmath.Transform {
	return vmath.TransformAt(p[0], p[1])
}

// buildScene populates the startup scene: platform, plug bar and one rail of the given kind
func buildScene(world *engine.World, kind curve.Kind) (core.Entity, error) {
	world.SpawnPlatform(parameter.PlatformSize, vmath.Transform{})
	world.SpawnPlugBar(parameter.PlugCount, placementAt(parameter.PlugBarPlacement))

	r, _, err := world.SpawnRail(kind, toVecs(parameter.DefaultRailPoints[:]), placementAt(parameter.DefaultRailPlacement))
	if err != nil {
		return 0, fmt.Errorf("build scene: %w", err)
	}
	return r, nil
}

// spawnSecondaryRail adds the multi-span B-spline rail
func spawnSecondaryRail(world *engine.World) (core.Entity, error) {
	r, _, err := world.SpawnRail(curve.CubicBSpline, toVecs(parameter.SecondaryRailPoints[:]), placementAt(parameter.SecondaryRailPlacement))
	return r, err
}
