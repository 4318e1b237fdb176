package system

import (
	"math"

	"github.com/DJG-inc/DodgeBallThreeJS/engine"
	"github.com/DJG-inc/DodgeBallThreeJS/event"
	"github.com/DJG-inc/DodgeBallThreeJS/parameter"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// SpawnSystem requests new enemies on the difficulty-driven interval
type SpawnSystem struct {
	world     *engine.World
	nextSpawn float64
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{world: world}
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.nextSpawn = parameter.EnemyFirstSpawnDelay
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

func (s *SpawnSystem) Update(float64) {
	w := s.world
	if w.Time < s.nextSpawn {
		return
	}

	jitter := w.Config.Enemy.SpawnJitter * (2*w.Rand.Float64() - 1)
	s.nextSpawn = w.Time + w.Session.Difficulty.SpawnInterval*(1+jitter)

	if w.Enemies.Len() >= w.Config.Enemy.MaxAlive {
		return
	}
	w.Dispatch(event.EventSpawnEnemy, &event.SpawnEnemyPayload{Position: SpawnPoint(w)})
}

// SpawnPoint picks a point on the spawn ring around the origin, retrying when inside geometry
// The last candidate is used even if blocked; push-out resolves it on the first substep
func SpawnPoint(w *engine.World) vmath.Vec3 {
	cfg := w.Config.Enemy
	var p vmath.Vec3
	for i := 0; i < parameter.EnemySpawnAttempts; i++ {
		angle := w.Rand.Range(0, 2*math.Pi)
		r := w.Rand.Range(cfg.SpawnRadiusMin, cfg.SpawnRadiusMax)
		s, c := math.Sincos(angle)
		p = vmath.Vec3{X: r * c, Y: cfg.SpawnHeight, Z: r * s}
		if _, hit := w.Oracle.IntersectSphere(p, cfg.Radius); !hit {
			return p
		}
	}
	return p
}
