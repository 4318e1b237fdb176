package engine

import (
	"github.com/DJG-inc/DodgeBallThreeJS/component"
	"github.com/DJG-inc/DodgeBallThreeJS/core"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// VisualState is how a projectile should be drawn
type VisualState uint8

const (
	VisualFlying VisualState = iota
	VisualCollectible
)

func (v VisualState) String() string {
	if v == VisualCollectible {
		return "collectible"
	}
	return "flying"
}

// ViewPose is the camera for this frame
type ViewPose struct {
	Position vmath.Vec3 `msgpack:"pos"`
	Forward  vmath.Vec3 `msgpack:"fwd"`
	Yaw      float64    `msgpack:"yaw"`
	Pitch    float64    `msgpack:"pitch"`
	Grounded bool       `msgpack:"grounded"`
}

type ProjectileView struct {
	ID       core.Entity     `msgpack:"id"`
	Position vmath.Vec3      `msgpack:"pos"`
	State    VisualState     `msgpack:"state"`
	Owner    component.Owner `msgpack:"owner"`
}

type EnemyView struct {
	ID       core.Entity `msgpack:"id"`
	Position vmath.Vec3  `msgpack:"pos"`
	LockOn   bool        `msgpack:"lock_on"`
	Holding  bool        `msgpack:"holding"`
	Behavior string      `msgpack:"behavior"`
	Threat   float64     `msgpack:"threat"`
}

type SessionView struct {
	Score         int     `msgpack:"score"`
	TimeRemaining int     `msgpack:"time_remaining"`
	ChargeLevel   float64 `msgpack:"charge"`
	Charging      bool    `msgpack:"charging"`
	Ammo          int     `msgpack:"ammo"`
	MaxAmmo       int     `msgpack:"max_ammo"`
	Paused        bool    `msgpack:"paused"`
	GameOver      bool    `msgpack:"game_over"`
	Difficulty    int     `msgpack:"difficulty"`
}

// Snapshot is an immutable per-frame copy of everything a renderer, HUD, or remote client needs
type Snapshot struct {
	RunID       string           `msgpack:"run_id"`
	Frame       int64            `msgpack:"frame"`
	View        ViewPose         `msgpack:"view"`
	Projectiles []ProjectileView `msgpack:"projectiles"`
	Enemies     []EnemyView      `msgpack:"enemies"`
	Session     SessionView      `msgpack:"session"`
}

// Snapshot copies the current state; the result shares no memory with the world
func (w *World) Snapshot() *Snapshot {
	s := &Snapshot{
		RunID: w.RunID,
		Frame: w.Frame,
		View: ViewPose{
			Position: w.Player.ViewPosition(),
			Forward:  w.View.Forward(),
			Yaw:      w.View.Yaw,
			Pitch:    w.View.Pitch,
			Grounded: w.Player.Grounded,
		},
		Projectiles: make([]ProjectileView, 0, w.Projectiles.Len()),
		Enemies:     make([]EnemyView, 0, w.Enemies.Len()),
	}

	for _, p := range w.Projectiles.Items() {
		state := VisualFlying
		if !p.Flying() {
			state = VisualCollectible
		}
		s.Projectiles = append(s.Projectiles, ProjectileView{ID: p.ID, Position: p.Pos, State: state, Owner: p.Owner})
	}

	lock := w.Session.LockOn
	for _, e := range w.Enemies.Items() {
		behavior := ""
		if e.Behavior != nil {
			behavior = e.Behavior.Name()
		}
		s.Enemies = append(s.Enemies, EnemyView{
			ID:       e.ID,
			Position: e.Pos,
			LockOn:   lock.Kind == component.TargetEnemy && lock.ID == e.ID,
			Holding:  e.Holding,
			Behavior: behavior,
			Threat:   e.Threat,
		})
	}

	ss := w.Session
	s.Session = SessionView{
		Score:         ss.Score,
		TimeRemaining: ss.TimeRemaining,
		ChargeLevel:   ss.Charge,
		Charging:      ss.Charging,
		Ammo:          ss.Ammo,
		MaxAmmo:       ss.MaxAmmo(),
		Paused:        ss.Paused(),
		GameOver:      ss.GameOver(),
		Difficulty:    ss.Difficulty.Level,
	}
	return s
}
