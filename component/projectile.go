package component

import (
	"github.com/DJG-inc/DodgeBallThreeJS/core"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// Owner identifies which side threw a projectile
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

// Flight holds state valid only while a projectile has not touched the world
type Flight struct {
	Target Target
}

// Projectile is a thrown ball
// Flying while Flight is non-nil; the first world contact drops Flight and the ball becomes collectible
type Projectile struct {
	ID core.Entity
	core.Kinetic

	Owner   Owner
	Origin  vmath.Vec3  // Spawn point, for range culling
	Thrower core.Entity // Throwing enemy, 0 for player throws

	Flight *Flight
}

func (p *Projectile) Flying() bool {
	return p.Flight != nil
}

// Land ends flight; homing and bounce response no longer apply
func (p *Projectile) Land() {
	p.Flight = nil
}

// HomingTarget returns the flight target, none when resting
func (p *Projectile) HomingTarget() Target {
	if p.Flight == nil {
		return Target{}
	}
	return p.Flight.Target
}
