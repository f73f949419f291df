package main

import (
	"testing"

	"github.com/lixenwraith/transporters/curve"
	"github.com/lixenwraith/transporters/engine"
	"github.com/lixenwraith/transporters/parameter"
)

func TestBuildScene(t *testing.T) {
	for _, kind := range []curve.Kind{curve.CubicBezier, curve.CubicBSpline} {
		t.Run(kind.String(), func(t *testing.T) {
			world := engine.NewWorld()
			railEntity, err := buildScene(world, kind)
			if err != nil {
				t.Fatalf("buildScene: %v", err)
			}

			r, err := world.Rail(railEntity)
			if err != nil {
				t.Fatalf("rail not in world: %v", err)
			}
			if r.Kind() != kind {
				t.Errorf("rail kind = %v, want %v", r.Kind(), kind)
			}
			if got := len(world.HandlesOf(railEntity)); got != len(parameter.DefaultRailPoints) {
				t.Errorf("handles = %d, want %d", got, len(parameter.DefaultRailPoints))
			}
			if world.Platforms.Count() != 1 || world.PlugBars.Count() != 1 {
				t.Errorf("decor = %d platforms, %d plug bars, want 1 each", world.Platforms.Count(), world.PlugBars.Count())
			}
			if got := r.Placement().Translation; got.X != parameter.DefaultRailPlacement[0] || got.Y != parameter.DefaultRailPlacement[1] {
				t.Errorf("placement = %v", got)
			}
		})
	}
}

func TestSpawnSecondaryRail(t *testing.T) {
	world := engine.NewWorld()
	railEntity, err := spawnSecondaryRail(world)
	if err != nil {
		t.Fatalf("spawnSecondaryRail: %v", err)
	}
	r, _ := world.Rail(railEntity)
	if r.Kind() != curve.CubicBSpline {
		t.Errorf("kind = %v, want bspline", r.Kind())
	}
	if got, want := r.Curve().Segments(), len(parameter.SecondaryRailPoints)-3; got != want {
		t.Errorf("segments = %d, want %d", got, want)
	}
}
