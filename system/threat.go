package system

import (
	"github.com/DJG-inc/DodgeBallThreeJS/component"
	"github.com/DJG-inc/DodgeBallThreeJS/config"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// IsIncoming reports whether a flying projectile threatens a body at pos
// It must be approaching, inside the threat radius, and its straight-line path over the
// horizon must pass within the proximity radius
func IsIncoming(cfg config.EnemyConfig, p *component.Projectile, pos vmath.Vec3) bool {
	toBody := vmath.V3Sub(pos, p.Pos)
	if vmath.V3Dot(p.Vel, toBody) <= 0 {
		return false
	}
	if vmath.V3MagSq(toBody) >= cfg.ThreatRadius*cfg.ThreatRadius {
		return false
	}
	ahead := vmath.V3AddScaled(p.Pos, p.Vel, cfg.ThreatHorizon)
	return vmath.SegmentPointDistSq(p.Pos, ahead, pos) <= cfg.ThreatProximity*cfg.ThreatProximity
}

// CountThreats counts flying projectiles incoming on e; its own throws never count
func CountThreats(cfg config.EnemyConfig, projectiles []component.Projectile, e *component.Enemy) int {
	n := 0
	for i := range projectiles {
		p := &projectiles[i]
		if !p.Flying() || (p.Owner == component.OwnerEnemy && p.Thrower == e.ID) {
			continue
		}
		if IsIncoming(cfg, p, e.Pos) {
			n++
		}
	}
	return n
}

// ThreatLevel normalizes a threat count into [0, 1]
func ThreatLevel(cfg config.EnemyConfig, count int) float64 {
	if cfg.ThreatNormalizer <= 0 {
		if count > 0 {
			return 1
		}
		return 0
	}
	return vmath.Clamp(float64(count)/cfg.ThreatNormalizer, 0, 1)
}
