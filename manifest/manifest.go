package manifest

import (
	"fmt"
	"log"
	"sync"

	"github.com/DJG-inc/DodgeBallThreeJS/config"
	"github.com/DJG-inc/DodgeBallThreeJS/engine"
	"github.com/DJG-inc/DodgeBallThreeJS/input"
	"github.com/DJG-inc/DodgeBallThreeJS/physics"
	"github.com/DJG-inc/DodgeBallThreeJS/registry"
	"github.com/DJG-inc/DodgeBallThreeJS/status"
	"github.com/DJG-inc/DodgeBallThreeJS/system"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

var registerOnce sync.Once

// RegisterSystems registers all system factories with the registry
func RegisterSystems() {
	registerOnce.Do(func() {
		registry.RegisterSystem("player", system.NewPlayerSystem)
		registry.RegisterSystem("projectile", system.NewProjectileSystem)
		registry.RegisterSystem("enemy", system.NewEnemySystem)
		registry.RegisterSystem("spawn", system.NewSpawnSystem)
		registry.RegisterSystem("recovery", system.NewRecoverySystem)
		registry.RegisterSystem("charge", system.NewChargeSystem)
	})
}

// ActiveSystems returns the systems to instantiate
// Execution order comes from priorities; this order only fixes handler registration order
func ActiveSystems() []string {
	return []string{
		"player",
		"projectile",
		"enemy",
		"spawn",
		"recovery",
		"charge",
	}
}

// Install creates every active system on w
func Install(w *engine.World) error {
	RegisterSystems()
	for _, name := range ActiveSystems() {
		factory, ok := registry.GetSystem(name)
		if !ok {
			return fmt.Errorf("system %q not registered", name)
		}
		w.AddSystem(factory(w))
	}
	return nil
}

// LoadLevel builds the collision oracle from configured boxes, or the built-in arena when none are set
// The oracle is published ready once loading finishes
func LoadLevel(cfg *config.Config, reg *status.Registry) *physics.StaticWorld {
	boxes := physics.DefaultArena()
	if len(cfg.Level.Boxes) > 0 {
		boxes = make([]physics.AABB, 0, len(cfg.Level.Boxes))
		for _, b := range cfg.Level.Boxes {
			boxes = append(boxes, physics.AABB{
				Min: vmath.Vec3{X: b.Min[0], Y: b.Min[1], Z: b.Min[2]},
				Max: vmath.Vec3{X: b.Max[0], Y: b.Max[1], Z: b.Max[2]},
			})
		}
	}
	world := physics.NewStaticWorld()
	world.Load(boxes)
	if reg != nil {
		reg.Bools.Get(status.KeyOracleReady).Store(world.Ready())
	}
	log.Printf("level loaded: %d boxes", len(boxes))
	return world
}

// NewSimulation wires a complete simulation: world, level, systems, and frame integrator
// src may be nil for a host without local input
func NewSimulation(cfg *config.Config, src input.Source) (*engine.World, *engine.Integrator, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	w := engine.NewWorld(cfg, nil)
	w.Oracle = LoadLevel(cfg, w.Status)
	if err := Install(w); err != nil {
		return nil, nil, err
	}
	return w, engine.NewIntegrator(w, src), nil
}
