package system

import (
	"math"
	"testing"

	"github.com/DJG-inc/DodgeBallThreeJS/component"
	"github.com/DJG-inc/DodgeBallThreeJS/core"
	"github.com/DJG-inc/DodgeBallThreeJS/event"
	"github.com/DJG-inc/DodgeBallThreeJS/physics"
	"github.com/DJG-inc/DodgeBallThreeJS/status"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

func TestIsIncoming(t *testing.T) {
	cfg := newTestWorld(nil).Config.Enemy
	body := vmath.Vec3{Z: -10}

	tests := []struct {
		name string
		pos  vmath.Vec3
		vel  vmath.Vec3
		want bool
	}{
		{"head on", vmath.Vec3{Z: -6}, vmath.Vec3{Z: -20}, true},
		{"moving away", vmath.Vec3{Z: -6}, vmath.Vec3{Z: 20}, false},
		{"outside radius", vmath.Vec3{Z: 5}, vmath.Vec3{Z: -40}, false},
		{"wide pass", vmath.Vec3{X: 4, Z: -6}, vmath.Vec3{Z: -20}, false},
		{"too slow to arrive", vmath.Vec3{Z: -4}, vmath.Vec3{Z: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &component.Projectile{Kinetic: core.Kinetic{Pos: tt.pos, Vel: tt.vel}, Flight: &component.Flight{}}
			if got := IsIncoming(cfg, p, body); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestOwnThrowIsNotAThreat(t *testing.T) {
	cfg := newTestWorld(nil).Config.Enemy
	e := &component.Enemy{ID: 7, Kinetic: core.Kinetic{Pos: vmath.Vec3{Z: -10}}}
	projectiles := []component.Projectile{
		{Kinetic: core.Kinetic{Pos: vmath.Vec3{Z: -6}, Vel: vmath.Vec3{Z: -20}}, Owner: component.OwnerEnemy, Thrower: 7, Flight: &component.Flight{}},
		{Kinetic: core.Kinetic{Pos: vmath.Vec3{Z: -6}, Vel: vmath.Vec3{Z: -20}}, Owner: component.OwnerPlayer},
	}
	if n := CountThreats(cfg, projectiles, e); n != 0 {
		t.Errorf("Expected no threats from own throw or resting ball, got %d", n)
	}

	projectiles[0].Thrower = 8
	if n := CountThreats(cfg, projectiles, e); n != 1 {
		t.Errorf("Expected another enemy's throw to count, got %d", n)
	}
	if lvl := ThreatLevel(cfg, 10); lvl != 1 {
		t.Errorf("Expected threat level clamped to 1, got %f", lvl)
	}
}

func TestChooseEvasiveClearAndBlocked(t *testing.T) {
	rnd := vmath.NewFastRand(9)
	pos := vmath.Vec3{Y: 0.5}

	dir := ChooseEvasive(physics.EmptyWorld{}, rnd, pos, vmath.Vec3{Z: -1}, 2)
	if dir.Y != 0 || math.Abs(vmath.V3Mag(dir)-1) > 1e-9 {
		t.Errorf("Expected horizontal unit direction in open space, got %+v", dir)
	}

	boxed := physics.NewStaticWorld()
	boxed.Load([]physics.AABB{{Min: vmath.Vec3{X: -20, Y: -20, Z: -20}, Max: vmath.Vec3{X: 20, Y: 20, Z: 20}}})
	if dir := ChooseEvasive(boxed, rnd, pos, vmath.Vec3{Z: -1}, 2); dir != vmath.Up {
		t.Errorf("Expected Up when all candidates are blocked, got %+v", dir)
	}
}

func TestChooseEvasiveAvoidsWall(t *testing.T) {
	rnd := vmath.NewFastRand(3)
	wall := physics.NewStaticWorld()
	// Wall directly to +X of the body
	wall.Load([]physics.AABB{{Min: vmath.Vec3{X: 1, Y: -5, Z: -5}, Max: vmath.Vec3{X: 2, Y: 5, Z: 5}}})

	for i := 0; i < 50; i++ {
		dir := ChooseEvasive(wall, rnd, vmath.Vec3{}, vmath.Vec3{Z: -1}, 2)
		if dir.X > 0.1 {
			t.Fatalf("Picked blocked direction %+v", dir)
		}
	}
}

func TestEnemyDodgesIncoming(t *testing.T) {
	w := newTestWorld(nil)
	es := NewEnemySystem(w)
	w.AddSystem(es)

	id := addEnemy(w, vmath.Vec3{Y: 1, Z: -10})
	addProjectile(w, component.Projectile{
		Kinetic: core.Kinetic{Pos: vmath.Vec3{Y: 1, Z: -7}, Vel: vmath.Vec3{Z: -20}},
		Owner:   component.OwnerPlayer,
		Flight:  &component.Flight{},
	})

	es.Update(dt)

	e, _ := w.Enemies.Get(id)
	if _, ok := e.Behavior.(component.Dodging); !ok {
		t.Fatalf("Expected dodging, got %s", e.Behavior.Name())
	}
	if e.Threat <= 0 {
		t.Errorf("Expected positive threat, got %f", e.Threat)
	}
	if math.Hypot(e.Vel.X, e.Vel.Z) < 7 {
		t.Errorf("Expected dodge impulse, got %+v", e.Vel)
	}
	if got := w.Status.Ints.Get(status.KeyEnemyDodges).Load(); got != 1 {
		t.Errorf("Expected 1 dodge recorded, got %d", got)
	}

	// Cooldown blocks an immediate second dodge
	e.Behavior = component.SeekingPlayer{}
	es.Update(dt)
	if _, ok := e.Behavior.(component.Dodging); ok {
		t.Error("Dodged again inside cooldown")
	}
}

func TestEnemyThrowsAfterCooldown(t *testing.T) {
	w := newTestWorld(nil)
	w.AddSystem(NewProjectileSystem(w))
	es := NewEnemySystem(w)
	w.AddSystem(es)

	id := addEnemy(w, vmath.Vec3{Y: 1, Z: -10})
	e, _ := w.Enemies.Get(id)
	e.Holding = true
	e.NextThrow = 0.5

	es.Update(dt)
	if w.Projectiles.Len() != 0 {
		t.Fatal("Threw before cooldown elapsed")
	}
	if _, ok := e.Behavior.(component.Throwing); !ok {
		t.Errorf("Expected throwing state while holding, got %s", e.Behavior.Name())
	}

	w.Time = 0.5
	es.Update(dt)

	items := w.Projectiles.Items()
	if len(items) != 1 {
		t.Fatalf("Expected 1 projectile, got %d", len(items))
	}
	p := items[0]
	if p.Owner != component.OwnerEnemy || p.Thrower != id {
		t.Errorf("Unexpected ownership: owner=%s thrower=%d", p.Owner, p.Thrower)
	}
	if math.Abs(vmath.V3Mag(p.Vel)-w.Config.Projectile.EnemySpeed) > 1e-9 {
		t.Errorf("Expected throw speed %f, got %f", w.Config.Projectile.EnemySpeed, vmath.V3Mag(p.Vel))
	}
	if p.Vel.Z <= 0 {
		t.Errorf("Expected throw toward player at +Z, got %+v", p.Vel)
	}
	if e.Holding {
		t.Error("Expected possession cleared after throw")
	}
	if want := 0.5 + w.Config.Enemy.ThrowInterval; e.NextThrow != want {
		t.Errorf("Expected next throw at %f, got %f", want, e.NextThrow)
	}
}

func TestEnemySeeksRestingBall(t *testing.T) {
	w := newTestWorld(nil)
	es := NewEnemySystem(w)
	w.AddSystem(es)

	id := addEnemy(w, vmath.Vec3{X: 10, Y: 1, Z: 10})
	ball := addProjectile(w, component.Projectile{
		Kinetic: core.Kinetic{Pos: vmath.Vec3{X: 15, Y: 0.2, Z: 10}},
		Owner:   component.OwnerPlayer,
	})

	es.Update(dt)

	e, _ := w.Enemies.Get(id)
	sb, ok := e.Behavior.(component.SeekingBall)
	if !ok || sb.Ball != ball {
		t.Fatalf("Expected seeking ball %d, got %s", ball, e.Behavior.Name())
	}
	if e.Vel.X <= 0 {
		t.Errorf("Expected motion toward ball at +X, got %+v", e.Vel)
	}
}

func TestEnemySeeksPlayerWithoutBall(t *testing.T) {
	w := newTestWorld(nil)
	es := NewEnemySystem(w)
	w.AddSystem(es)

	id := addEnemy(w, vmath.Vec3{X: 10, Y: 1})
	es.Update(dt)

	e, _ := w.Enemies.Get(id)
	if _, ok := e.Behavior.(component.SeekingPlayer); !ok {
		t.Fatalf("Expected seeking player, got %s", e.Behavior.Name())
	}
	if e.Vel.X >= 0 {
		t.Errorf("Expected motion toward player at -X, got %+v", e.Vel)
	}
}

func TestEnemyRelocatedWhenFallen(t *testing.T) {
	w := newTestWorld(nil)
	es := NewEnemySystem(w)
	w.AddSystem(es)

	id := addEnemy(w, vmath.Vec3{Y: -100})
	es.Update(dt)

	e, _ := w.Enemies.Get(id)
	if e.Pos.Y != w.Config.Enemy.SpawnHeight {
		t.Errorf("Expected relocation to spawn height, got %+v", e.Pos)
	}
}

func TestSpawnSystemSchedule(t *testing.T) {
	w := newTestWorld(nil)
	w.AddSystem(NewEnemySystem(w))
	ss := NewSpawnSystem(w)
	w.AddSystem(ss)
	w.Config.Enemy.MaxAlive = 1

	ss.Update(dt)
	if w.Enemies.Len() != 0 {
		t.Fatal("Spawned before first delay")
	}

	w.Time = 1
	ss.Update(dt)
	if w.Enemies.Len() != 1 {
		t.Fatalf("Expected 1 enemy, got %d", w.Enemies.Len())
	}
	if n := eventCount(w.Events.Consume(), event.EventEnemySpawned); n != 1 {
		t.Errorf("Expected 1 spawn event, got %d", n)
	}
	e := w.Enemies.Items()[0]
	r := math.Hypot(e.Pos.X, e.Pos.Z)
	if r < w.Config.Enemy.SpawnRadiusMin || r > w.Config.Enemy.SpawnRadiusMax {
		t.Errorf("Spawn outside ring: r=%f", r)
	}

	w.Time = 100
	ss.Update(dt)
	if w.Enemies.Len() != 1 {
		t.Errorf("Expected cap of 1 enemy, got %d", w.Enemies.Len())
	}
}

func TestThreatMakesHoldingEnemyThrowSooner(t *testing.T) {
	w := newTestWorld(nil)
	es := NewEnemySystem(w)
	w.AddSystem(es)

	id := addEnemy(w, vmath.Vec3{Y: 1, Z: -10})
	e, _ := w.Enemies.Get(id)
	e.Holding = true
	e.NextThrow = 0.3
	e.DodgeCooldown = 100

	es.Update(dt)
	if !e.Holding {
		t.Fatal("Calm enemy threw before its cooldown")
	}

	addProjectile(w, component.Projectile{
		Kinetic: core.Kinetic{Pos: vmath.Vec3{Y: 1, Z: -7}, Vel: vmath.Vec3{Z: -20}},
		Owner:   component.OwnerPlayer,
		Flight:  &component.Flight{},
	})
	es.Update(dt)

	if e.Threat <= 0 {
		t.Fatalf("Expected positive threat, got %f", e.Threat)
	}
	if e.Holding {
		t.Errorf("Expected threatened enemy to throw early, next throw was %f at t=%f", e.NextThrow, w.Time)
	}
	if want := w.Time + w.Config.Enemy.ThrowInterval; e.NextThrow != want {
		t.Errorf("Expected next throw at %f, got %f", want, e.NextThrow)
	}
}
