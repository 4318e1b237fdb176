package config

import (
	"errors"
	"fmt"
)

// Validate reports every out-of-range field joined into one error
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	e := c.Engine
	check(e.Substeps >= 1, "engine.substeps must be >= 1, got %d", e.Substeps)
	check(e.MaxFrameDelta > 0, "engine.max_frame_delta must be positive, got %g", e.MaxFrameDelta)

	p := c.Player
	check(p.Radius > 0, "player.radius must be positive, got %g", p.Radius)
	check(p.SpawnEndY > p.SpawnStartY, "player.spawn_end_y must exceed spawn_start_y")
	check(p.OutOfBoundsY < p.SpawnEndY, "player.out_of_bounds_y must be below the spawn pose")
	check(p.DampingRate >= 0, "player.damping_rate must be non-negative, got %g", p.DampingRate)
	check(p.AirDampingFactor >= 0 && p.AirDampingFactor <= 1, "player.air_damping_factor must be in [0,1], got %g", p.AirDampingFactor)

	pr := c.Projectile
	check(pr.Radius > 0, "projectile.radius must be positive, got %g", pr.Radius)
	check(pr.MaxRange > 0, "projectile.max_range must be positive, got %g", pr.MaxRange)
	check(pr.Restitution >= 0 && pr.Restitution < 1, "projectile.restitution must be in [0,1), got %g", pr.Restitution)
	check(pr.RestFriction >= 0 && pr.RestFriction <= 1, "projectile.rest_friction must be in [0,1], got %g", pr.RestFriction)
	check(pr.PlayerSpeedMin > 0 && pr.PlayerSpeedMax >= pr.PlayerSpeedMin, "projectile player speeds must satisfy 0 < min <= max")
	check(pr.EnemySpeed > 0, "projectile.enemy_speed must be positive, got %g", pr.EnemySpeed)
	check(inUnit(pr.PlayerHoming) && inUnit(pr.EnemyHoming), "projectile homing fractions must be in [0,1]")
	check(pr.EnemyHoming <= pr.PlayerHoming, "projectile.enemy_homing must not exceed player_homing")
	check(pr.PickupRadius > 0 && pr.PlayerHitRange > 0 && pr.EnemyHitRange > 0, "projectile contact radii must be positive")
	check(pr.EnemyHitRange <= pr.PlayerHitRange && pr.EnemyHitRange <= pr.PickupRadius, "projectile.enemy_hit_radius must be the smallest contact radius")

	en := c.Enemy
	check(en.Radius > 0, "enemy.radius must be positive, got %g", en.Radius)
	check(en.MaxAlive >= 0, "enemy.max_alive must be non-negative, got %d", en.MaxAlive)
	check(en.SpawnRadiusMin > 0 && en.SpawnRadiusMax >= en.SpawnRadiusMin, "enemy spawn ring must satisfy 0 < min <= max")
	check(en.SpawnJitter >= 0 && en.SpawnJitter < 1, "enemy.spawn_jitter must be in [0,1), got %g", en.SpawnJitter)
	check(en.ThrowInterval > 0, "enemy.throw_interval must be positive, got %g", en.ThrowInterval)
	check(inUnit(en.ThreatThrowScale), "enemy.threat_throw_scale must be in [0,1], got %g", en.ThreatThrowScale)
	check(en.ThreatRadius > 0 && en.ThreatHorizon > 0 && en.ThreatProximity > 0, "enemy threat radius/horizon/proximity must be positive")
	check(en.ThreatNormalizer > 0, "enemy.threat_normalizer must be positive, got %g", en.ThreatNormalizer)
	check(en.DodgeClearance > 0, "enemy.dodge_clearance must be positive, got %g", en.DodgeClearance)

	s := c.Session
	check(s.Duration > 0, "session.duration must be positive, got %d", s.Duration)
	check(s.MaxAmmo >= 1, "session.max_ammo must be >= 1, got %d", s.MaxAmmo)
	check(s.ChargeMax > 0 && s.ChargeRate > 0, "session charge max/rate must be positive")
	check(s.LockOnConeDeg > 0 && s.LockOnConeDeg < 90, "session.lock_on_cone_deg must be in (0,90), got %g", s.LockOnConeDeg)
	check(s.KillScore >= 0 && s.HitPenalty >= 0, "session score deltas must be non-negative")

	d := c.Difficulty
	check(d.Step > 0, "difficulty.step must be positive, got %g", d.Step)
	check(d.SpawnIntervalMin > 0 && d.SpawnIntervalMin <= d.SpawnIntervalInitial, "difficulty spawn interval floor must be in (0, initial]")
	check(d.DodgeCooldownMin >= 0 && d.DodgeCooldownMin <= d.DodgeCooldownInitial, "difficulty dodge cooldown floor must be in [0, initial]")
	check(d.DodgeSpeedMax >= d.DodgeSpeedInitial, "difficulty dodge speed cap must be >= initial")
	check(d.MoveSpeedMax >= d.MoveSpeedInitial, "difficulty move speed cap must be >= initial")
	check(d.SpawnIntervalStep >= 0 && d.DodgeCooldownStep >= 0 && d.DodgeSpeedStep >= 0 && d.MoveSpeedStep >= 0,
		"difficulty steps must be non-negative")

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0,1], got %g", c.Audio.Volume)
	check(c.Server.TickRate > 0 && c.Server.SnapshotEvery >= 1, "server tick_rate and snapshot_every must be positive")

	for i, b := range c.Level.Boxes {
		check(b.Min[0] < b.Max[0] && b.Min[1] < b.Max[1] && b.Min[2] < b.Max[2], "level.boxes[%d] min must be below max on every axis", i)
	}

	return errors.Join(errs...)
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
