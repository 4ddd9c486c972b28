// internal/entity/enemy.go
package entity

import (
	"coin-tower-defense/internal/component"
	"coin-tower-defense/internal/config"
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/types"
)

// RangedAttack — параметры атаки стреляющего врага
type RangedAttack struct {
	Cooldown        float64 // сколько осталось до готовности
	Interval        float64
	Range           float64
	Damage          float64
	ProjectileSpeed float64
}

// Enemy is a unit walking the path.
type Enemy struct {
	ID   types.EntityID
	Type defs.EnemyType
	component.Position
	component.Health
	component.Velocity
	component.PathFollower

	Reward    int
	Radius    float64
	Slow      component.SlowEffect
	Ranged    *RangedAttack  // только у стрелков
	LastHitBy types.EntityID // башня, нанесшая последний удар
	Escaped   bool
}

// NewEnemy создает врага в точке старта маршрута.
func NewEnemy(id types.EntityID, entry defs.RosterEntry, x, y float64) *Enemy {
	e := &Enemy{
		ID:       id,
		Type:     entry.EnemyType,
		Position: component.Position{X: x, Y: y},
		Health:   component.Health{Value: entry.Health, Max: entry.Health},
		Velocity: component.Velocity{Speed: entry.Speed},
		Reward:   entry.Reward,
		Radius:   config.EnemyRadius,
		Slow:     component.SlowEffect{SlowFactor: 1},
	}
	if def, ok := defs.Enemy(entry.EnemyType); ok {
		if def.Visuals.Radius > 0 {
			e.Radius = def.Visuals.Radius
		}
		if def.Ranged {
			e.Ranged = &RangedAttack{
				Interval:        config.RangedEnemyCooldown,
				Range:           config.RangedEnemyRange,
				Damage:          config.RangedEnemyDamage,
				ProjectileSpeed: config.RangedEnemyProjectileSpeed,
			}
		}
	}
	return e
}

// TakeDamage reduces health (clamped at 0) and reports whether the hit was lethal.
func (e *Enemy) TakeDamage(amount float64) bool {
	return e.Health.TakeDamage(amount)
}

// ApplySlow overwrites any active slow with a fresh timer.
func (e *Enemy) ApplySlow(factor, duration float64) {
	e.Slow.Apply(factor, duration)
}

// IsSlowed — действует ли замедление
func (e *Enemy) IsSlowed() bool {
	return e.Slow.Active()
}

// IsDead — здоровье исчерпано
func (e *Enemy) IsDead() bool {
	return e.Value <= 0
}

// CurrentSpeed — скорость с учетом замедления
func (e *Enemy) CurrentSpeed() float64 {
	return e.Speed * e.Slow.Multiplier()
}
