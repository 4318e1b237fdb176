package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/DJG-inc/DodgeBallThreeJS/audio"
	"github.com/DJG-inc/DodgeBallThreeJS/core"
	"github.com/DJG-inc/DodgeBallThreeJS/engine"
	"github.com/DJG-inc/DodgeBallThreeJS/input"
	"github.com/DJG-inc/DodgeBallThreeJS/manifest"
	"github.com/DJG-inc/DodgeBallThreeJS/parameter"
	"github.com/DJG-inc/DodgeBallThreeJS/physics"
	"github.com/DJG-inc/DodgeBallThreeJS/render"
)

var (
	configFlag = flag.String("config", "", "TOML config file layered over the defaults")
	keymapFlag = flag.String("keymap", "", "TOML keymap override")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/arena.log and show the debug line")
	seedFlag   = flag.Int64("seed", 0, "PRNG seed, 0 keeps the configured seed")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := manifest.LoadConfig(*configFlag, *seedFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	keys := input.DefaultKeyTable()
	if *keymapFlag != "" {
		data, err := os.ReadFile(*keymapFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "keymap: %v\n", err)
			os.Exit(1)
		}
		override, err := input.LoadKeyConfig(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		keys.Merge(override)
	}

	sampler := input.NewSampler()
	world, integrator, err := manifest.NewSimulation(cfg, sampler)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	sink := audio.NewSink(cfg.Audio, cfg.Projectile.PlayerSpeedMax)
	sink.SetMuted(*muteFlag)
	defer sink.Close()

	var boxes []physics.AABB
	if level, ok := world.Oracle.(*physics.StaticWorld); ok {
		boxes = level.Boxes()
	}
	renderer := render.NewTerminalRenderer(screen, boxes, world.Status)
	renderer.Debug = *debugFlag

	log.Printf("session %s: started, seed %d", world.RunID, cfg.Engine.Seed)

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()
	clock := engine.NewFrameClock(engine.NewTimeProvider())
	var mouse mouseLook

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				renderer.Resize()

			case *tcell.EventKey:
				action := lookupKey(keys, ev)
				if !action.IsCommand() {
					sampler.Tap(action, parameter.KeyTapHold)
					continue
				}
				if action == input.ActionToggleMute {
					sink.SetMuted(!sink.Muted())
					continue
				}
				if action == input.ActionReset {
					sampler.Clear()
				}
				if !manifest.RunCommand(world, integrator, action) {
					return
				}

			case *tcell.EventMouse:
				mouse.handle(ev, sampler)
			}

		case <-frameTicker.C:
			snap := integrator.Step(clock.Delta())
			sink.Handle(world.Events.Consume())
			renderer.RenderFrame(snap)
		}
	}
}
