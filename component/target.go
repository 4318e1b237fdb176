package component

import (
	"github.com/DJG-inc/DodgeBallThreeJS/core"
)

// TargetKind selects how a homing target resolves its position
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetPlayer
	TargetEnemy
)

// Target is a weak handle to a homing destination
// Enemy targets are resolved by ID each substep; a missing enemy resolves to nothing
type Target struct {
	Kind TargetKind
	ID   core.Entity // Set only for TargetEnemy
}

func PlayerTarget() Target {
	return Target{Kind: TargetPlayer}
}

func EnemyTarget(id core.Entity) Target {
	return Target{Kind: TargetEnemy, ID: id}
}

func (t Target) IsNone() bool {
	return t.Kind == TargetNone
}
