package manifest

import (
	"log"

	"github.com/DJG-inc/DodgeBallThreeJS/config"
	"github.com/DJG-inc/DodgeBallThreeJS/engine"
	"github.com/DJG-inc/DodgeBallThreeJS/input"
)

// LoadConfig reads path over the defaults, or returns the defaults when path is empty
// A non-zero seed overrides the configured one
func LoadConfig(path string, seed int64) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Engine.Seed = seed
	}
	return cfg, nil
}

// RunCommand applies a session command from a host goroutine
// Returns false when the host should exit
func RunCommand(w *engine.World, it *engine.Integrator, a input.Action) bool {
	switch a {
	case input.ActionPause:
		w.RunSafe(w.TogglePause)
	case input.ActionReset:
		w.RunSafe(func() {
			w.Reset()
			it.ResetTick()
		})
	case input.ActionQuit:
		log.Printf("session %s: quit", w.RunID)
		return false
	}
	return true
}
