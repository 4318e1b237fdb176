package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DJG-inc/DodgeBallThreeJS/core"
	"github.com/DJG-inc/DodgeBallThreeJS/engine"
	"github.com/DJG-inc/DodgeBallThreeJS/input"
	"github.com/DJG-inc/DodgeBallThreeJS/manifest"
)

var (
	configFlag = flag.String("config", "", "TOML config file layered over the defaults")
	addrFlag   = flag.String("addr", "", "Listen address, overrides server.addr")
	debugFlag  = flag.Bool("debug", false, "Log to stderr")
	seedFlag   = flag.Int64("seed", 0, "PRNG seed, 0 keeps the configured seed")
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
	if *addrFlag != "" {
		cfg.Server.Addr = *addrFlag
	}

	sampler := input.NewSampler()
	world, integrator, err := manifest.NewSimulation(cfg, sampler)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation: %v\n", err)
		os.Exit(1)
	}
	srv := newServer(world, integrator, sampler)

	mux := http.NewServeMux()
	mux.Handle("/ws", srv.hub)
	httpServer := &http.Server{Addr: cfg.Server.Addr, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	core.Go(func() {
		log.Printf("listening on %s", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "listen: %v\n", err)
			stop()
		}
	})

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Server.TickRate))
	defer ticker.Stop()
	clock := engine.NewFrameClock(engine.NewTimeProvider())

	for {
		select {
		case <-ctx.Done():
			log.Printf("session %s: shutting down", world.RunID)
			srv.hub.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			httpServer.Shutdown(shutdownCtx)
			cancel()
			return
		case <-ticker.C:
			srv.step(clock.Delta())
		}
	}
}
