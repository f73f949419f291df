package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/transporters/audio"
	"github.com/lixenwraith/transporters/core"
	"github.com/lixenwraith/transporters/curve"
	"github.com/lixenwraith/transporters/engine"
	"github.com/lixenwraith/transporters/input"
	"github.com/lixenwraith/transporters/parameter"
	"github.com/lixenwraith/transporters/render"
	"github.com/lixenwraith/transporters/snapshot"
	"github.com/lixenwraith/transporters/system"
)

var (
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/transporters.log")
	muteFlag     = flag.Bool("mute", false, "Disable audio")
	kindFlag     = flag.String("kind", "bezier", "Startup rail curve: bezier, bspline")
	snapshotFlag = flag.String("snapshot", "", "Render the startup scene to a PNG file and exit")
	fpsFlag      = flag.Int("fps", 0, "Frame rate, 0 uses the default interval")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the scene crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	kind, ok := curve.ParseKind(*kindFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown curve kind %q (want bezier or bspline)\n", *kindFlag)
		os.Exit(2)
	}

	world := engine.NewWorld()
	if _, err := buildScene(world, kind); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build scene: %v\n", err)
		os.Exit(1)
	}

	// Headless mode: no terminal, no audio
	if *snapshotFlag != "" {
		if err := snapshot.Save(world, *snapshotFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Snapshot failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Initialize audio engine, continue silently on failure
	var player engine.AudioPlayer
	if !*muteFlag {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			engine.Logger().Warn("audio initialization failed, continuing without audio", "error", err)
		} else {
			player = sm
			defer sm.Cleanup()
		}
	}

	scheduler := engine.NewScheduler(world)
	editorSystem := system.NewEditorSystem()
	spawnSystem := system.NewSpawnSystem()
	audioSystem := system.NewAudioSystem(player)
	scheduler.AddSystem(editorSystem)
	scheduler.AddSystem(spawnSystem)
	scheduler.AddSystem(system.NewTraversalSystem())
	scheduler.AddSystem(audioSystem)
	scheduler.RegisterEventHandler(editorSystem)
	scheduler.RegisterEventHandler(spawnSystem)
	scheduler.RegisterEventHandler(audioSystem)

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.RegisterScreen(screen)
	// Normal exit terminal cleanup
	defer func() {
		core.RegisterScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen)
	machine := input.NewMachine(renderer.Viewport())

	eventChan := make(chan tcell.Event, parameter.InputChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Screen finalized
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	interval := parameter.FrameUpdateInterval
	if *fpsFlag > 0 {
		interval = time.Second / time.Duration(*fpsFlag)
	}
	frameTicker := time.NewTicker(interval)
	defer frameTicker.Stop()

	var (
		status      string
		statusUntil time.Time
		lastTick    = time.Now()
	)
	setStatus := func(msg string) {
		status = msg
		statusUntil = time.Now().Add(parameter.StatusMessageDuration)
	}

	engine.Logger().Info("scene started", "kind", kind, "interval", interval, "audio", player != nil)

	for {
		select {
		case ev := <-eventChan:
			intent := machine.Process(world, ev)
			if intent == nil || input.Publish(world, intent) {
				continue
			}

			switch intent.Type {
			case input.IntentQuit:
				return
			case input.IntentResize:
				renderer.Resize(intent.Width, intent.Height)
				machine.SetViewport(renderer.Viewport())
				screen.Sync()
			case input.IntentSnapshot:
				path := fmt.Sprintf("transporters-%s.png", time.Now().Format("20060102-150405"))
				if err := snapshot.Save(world, path); err != nil {
					engine.Logger().Warn("snapshot failed", "error", err)
					setStatus("snapshot failed: " + err.Error())
				} else {
					setStatus("saved " + path)
				}
			case input.IntentSpawnRail:
				if _, err := spawnSecondaryRail(world); err != nil {
					engine.Logger().Warn("rail spawn failed", "error", err)
				}
			}

		case now := <-frameTicker.C:
			dt := now.Sub(lastTick)
			lastTick = now
			// Clamp after stalls (suspend, slow terminal) so agents do not jump
			if dt > parameter.MaxTickDelta {
				dt = parameter.MaxTickDelta
			}
			scheduler.Tick(dt)

			if status != "" && now.After(statusUntil) {
				status = ""
			}
			renderer.RenderFrame(world, render.FrameState{Active: machine.Active(), Message: status})
		}
	}
}
