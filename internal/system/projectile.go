// internal/system/projectile.go
package system

import (
	"coin-tower-defense/internal/component"
	"coin-tower-defense/internal/config"
	"coin-tower-defense/internal/entity"
	"coin-tower-defense/internal/event"
	"coin-tower-defense/internal/types"
	"math"
)

// TargetResolver определяет методы, которые ProjectileRegistry требует от игры.
// Владельцы целей — реестры врагов и башен; снаряд держит только ссылку.
type TargetResolver interface {
	EnemyByID(id types.EntityID) (*entity.Enemy, bool)
	TowerByID(id types.EntityID) (*entity.Tower, bool)
	// DamageTower наносит урон и, если башня разрушена, убирает ее с поля.
	DamageTower(id types.EntityID, amount float64) bool
}

// ProjectileRegistry управляет движением снарядов и нанесением урона
type ProjectileRegistry struct {
	ids        *entity.IDAllocator
	dispatcher *event.Dispatcher
	resolver   TargetResolver

	projectiles []*entity.Projectile
}

func NewProjectileRegistry(ids *entity.IDAllocator, dispatcher *event.Dispatcher) *ProjectileRegistry {
	return &ProjectileRegistry{ids: ids, dispatcher: dispatcher}
}

// Bind подключает владельцев целей. Вызывается один раз после того, как
// собраны все реестры.
func (r *ProjectileRegistry) Bind(resolver TargetResolver) {
	r.resolver = resolver
}

// Launch регистрирует снаряд и выдает ему идентификатор.
func (r *ProjectileRegistry) Launch(p entity.Projectile) *entity.Projectile {
	proj := p
	proj.ID = r.ids.NewEntity()
	proj.Active = true
	r.projectiles = append(r.projectiles, &proj)
	return &proj
}

// target is the tagged view of whatever a projectile is flying at.
type target struct {
	x, y      float64
	hitRadius float64
}

// resolve re-checks liveness of the referenced target.
func (r *ProjectileRegistry) resolve(ref component.TargetRef) (target, bool) {
	if r.resolver == nil {
		return target{}, false
	}
	switch ref.Kind {
	case component.TargetEnemy:
		e, ok := r.resolver.EnemyByID(ref.ID)
		if !ok {
			return target{}, false
		}
		return target{x: e.X, y: e.Y, hitRadius: math.Max(e.Radius, config.ProjectileHitRadius)}, true
	case component.TargetTower:
		t, ok := r.resolver.TowerByID(ref.ID)
		if !ok || t.Destroyed {
			return target{}, false
		}
		return target{x: t.X, y: t.Y, hitRadius: config.TowerHitRadius}, true
	}
	return target{}, false
}

// Update moves every projectile toward its target. Projectiles whose target
// vanished are retired without effect.
func (r *ProjectileRegistry) Update(deltaTime float64) {
	for i := len(r.projectiles) - 1; i >= 0; i-- {
		p := r.projectiles[i]
		tgt, ok := r.resolve(p.Target)
		if !ok {
			r.retire(i)
			continue
		}

		dist := math.Hypot(tgt.x-p.X, tgt.y-p.Y)
		step := p.Speed * deltaTime
		if dist <= tgt.hitRadius || dist <= step {
			r.hit(p)
			r.retire(i)
			continue
		}
		p.MoveTowards(tgt.x, tgt.y, dist, step, config.ProjectileTrailSize)
	}
}

func (r *ProjectileRegistry) hit(p *entity.Projectile) {
	switch p.Target.Kind {
	case component.TargetEnemy:
		e, ok := r.resolver.EnemyByID(p.Target.ID)
		if !ok {
			return
		}
		e.LastHitBy = p.Source
		e.TakeDamage(p.Damage)
		if p.Slow != nil && !e.IsDead() {
			e.ApplySlow(p.Slow.Factor, p.Slow.Duration)
		}
	case component.TargetTower:
		r.resolver.DamageTower(p.Target.ID, p.Damage)
	}
}

func (r *ProjectileRegistry) retire(i int) {
	r.projectiles[i].Active = false
	r.projectiles = append(r.projectiles[:i], r.projectiles[i+1:]...)
}

// All returns the live collection; callers must not modify the slice.
func (r *ProjectileRegistry) All() []*entity.Projectile { return r.projectiles }

func (r *ProjectileRegistry) Count() int { return len(r.projectiles) }

func (r *ProjectileRegistry) Clear() { r.projectiles = nil }
