package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/DJG-inc/DodgeBallThreeJS/audio"
	"github.com/DJG-inc/DodgeBallThreeJS/core"
	"github.com/DJG-inc/DodgeBallThreeJS/input"
	"github.com/DJG-inc/DodgeBallThreeJS/manifest"
)

var (
	configFlag = flag.String("config", "", "TOML config file layered over the defaults")
	keymapFlag = flag.String("keymap", "", "TOML keymap override")
	debugFlag  = flag.Bool("debug", false, "Log to stderr and show the debug line")
	seedFlag   = flag.Int64("seed", 0, "PRNG seed, 0 keeps the configured seed")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()
	if !*debugFlag {
		log.SetOutput(io.Discard)
	}
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

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

	sink := audio.NewSink(cfg.Audio, cfg.Projectile.PlayerSpeedMax)
	sink.SetMuted(*muteFlag)
	defer sink.Close()

	game := NewGame(world, integrator, sampler, sink, keys)
	game.debug = *debugFlag

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Dodgeball Arena")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("run: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
