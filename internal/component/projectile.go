// internal/component/projectile.go
package component

import "coin-tower-defense/internal/types"

// TargetKind — закрытый набор типов целей снаряда
type TargetKind int

const (
	TargetEnemy TargetKind = iota // снаряд башни
	TargetTower                   // снаряд стреляющего врага
)

func (k TargetKind) String() string {
	switch k {
	case TargetEnemy:
		return "enemy"
	case TargetTower:
		return "tower"
	default:
		return "unknown"
	}
}

// TargetRef is a weak handle to a projectile's target. The owning registry
// may drop the entity at any time, so every use re-resolves it.
type TargetRef struct {
	Kind TargetKind
	ID   types.EntityID
}

// SlowPayload — замедление, которое снаряд накладывает при попадании
type SlowPayload struct {
	Factor   float64
	Duration float64
}
