// internal/system/enemy.go
package system

import (
	"coin-tower-defense/internal/component"
	"coin-tower-defense/internal/config"
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/entity"
	"coin-tower-defense/internal/event"
	"coin-tower-defense/internal/types"
	"coin-tower-defense/pkg/gridmap"
	"math"
)

// TowerLister отдает живые башни в порядке реестра. Нужна стрелкам;
// передается замыканием, чтобы не тянуть зависимость на TowerRegistry.
type TowerLister func() []*entity.Tower

// EnemyRegistry владеет живыми врагами и двигает их по маршруту.
type EnemyRegistry struct {
	ids         *entity.IDAllocator
	path        *gridmap.Path
	projectiles *ProjectileRegistry
	dispatcher  *event.Dispatcher
	towers      TowerLister

	enemies []*entity.Enemy
}

func NewEnemyRegistry(ids *entity.IDAllocator, path *gridmap.Path, projectiles *ProjectileRegistry,
	dispatcher *event.Dispatcher, towers TowerLister) *EnemyRegistry {
	return &EnemyRegistry{
		ids:         ids,
		path:        path,
		projectiles: projectiles,
		dispatcher:  dispatcher,
		towers:      towers,
	}
}

// Spawn ставит нового врага в начало маршрута.
func (r *EnemyRegistry) Spawn(entry defs.RosterEntry) *entity.Enemy {
	start, _ := r.path.WaypointPixel(0)
	e := entity.NewEnemy(r.ids.NewEntity(), entry, start.X, start.Y)
	r.enemies = append(r.enemies, e)
	r.dispatcher.Emit(event.EnemySpawned, event.EnemyData{EnemyID: e.ID, Type: e.Type, Reward: e.Reward})
	return e
}

// Update moves every enemy by deltaTime (already time-scaled) and runs the
// ranged attack loop. Enemies that reached the end of the path are removed
// and returned; lives are the caller's business.
func (r *EnemyRegistry) Update(deltaTime float64) []*entity.Enemy {
	var escaped []*entity.Enemy
	// обратный порядок: удаление не пропускает соседей
	for i := len(r.enemies) - 1; i >= 0; i-- {
		e := r.enemies[i]
		if e.IsDead() {
			continue
		}
		if r.updateEnemy(e, deltaTime) {
			e.Escaped = true
			escaped = append(escaped, e)
			r.enemies = append(r.enemies[:i], r.enemies[i+1:]...)
		}
	}
	// возвращаем в порядке появления
	for i, j := 0, len(escaped)-1; i < j; i, j = i+1, j-1 {
		escaped[i], escaped[j] = escaped[j], escaped[i]
	}
	return escaped
}

// updateEnemy returns true when the enemy finished the path.
func (r *EnemyRegistry) updateEnemy(e *entity.Enemy, deltaTime float64) bool {
	e.Slow.Update(deltaTime)
	if r.advance(e, deltaTime) {
		return true
	}
	if e.Ranged != nil {
		r.rangedAttack(e, deltaTime)
	}
	return false
}

func (r *EnemyRegistry) advance(e *entity.Enemy, deltaTime float64) bool {
	last := r.path.Len() - 1
	if e.CurrentIndex >= last {
		return true
	}
	target, _ := r.path.WaypointPixel(e.CurrentIndex + 1)
	dx := target.X - e.X
	dy := target.Y - e.Y
	dist := math.Hypot(dx, dy)
	step := e.CurrentSpeed() * deltaTime

	if dist <= step || dist < config.WaypointSnapDistance {
		e.X, e.Y = target.X, target.Y
		e.CurrentIndex++
	} else {
		e.X += dx / dist * step
		e.Y += dy / dist * step
	}
	return e.CurrentIndex >= last
}

// rangedAttack: перезарядка сбрасывается только если цель нашлась.
func (r *EnemyRegistry) rangedAttack(e *entity.Enemy, deltaTime float64) {
	atk := e.Ranged
	if atk.Cooldown > 0 {
		atk.Cooldown -= deltaTime
		if atk.Cooldown > 0 {
			return
		}
	}
	if r.towers == nil {
		return
	}
	target := nearestTower(r.towers(), e.X, e.Y, atk.Range)
	if target == nil {
		return
	}
	r.projectiles.Launch(entity.Projectile{
		Position: component.Position{X: e.X, Y: e.Y},
		Target:   component.TargetRef{Kind: component.TargetTower, ID: target.ID},
		Source:   e.ID,
		Damage:   atk.Damage,
		Speed:    atk.ProjectileSpeed,
		Size:     config.EnemyShotSize,
		Color:    config.EnemyShotColor,
	})
	atk.Cooldown = atk.Interval
	r.dispatcher.Emit(event.EnemyShot, event.ShotData{SourceID: e.ID, TargetID: target.ID})
}

// nearestTower — ближайшая башня в радиусе; при равенстве побеждает первая.
func nearestTower(towers []*entity.Tower, x, y, radius float64) *entity.Tower {
	var best *entity.Tower
	bestDist := math.MaxFloat64
	for _, t := range towers {
		if t.Destroyed {
			continue
		}
		d := math.Hypot(t.X-x, t.Y-y)
		if d <= radius && d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}

// RemoveDead забирает из реестра убитых врагов, в порядке появления.
func (r *EnemyRegistry) RemoveDead() []*entity.Enemy {
	var dead []*entity.Enemy
	alive := r.enemies[:0]
	for _, e := range r.enemies {
		if e.IsDead() {
			dead = append(dead, e)
		} else {
			alive = append(alive, e)
		}
	}
	for i := len(alive); i < len(r.enemies); i++ {
		r.enemies[i] = nil
	}
	r.enemies = alive
	return dead
}

// Get — поиск по слабой ссылке; мертвый враг считается отсутствующим.
func (r *EnemyRegistry) Get(id types.EntityID) (*entity.Enemy, bool) {
	for _, e := range r.enemies {
		if e.ID == id {
			return e, !e.IsDead()
		}
	}
	return nil, false
}

func (r *EnemyRegistry) Remove(id types.EntityID) bool {
	for i, e := range r.enemies {
		if e.ID == id {
			r.enemies = append(r.enemies[:i], r.enemies[i+1:]...)
			return true
		}
	}
	return false
}

// All returns the live collection; callers must not modify the slice.
func (r *EnemyRegistry) All() []*entity.Enemy { return r.enemies }

func (r *EnemyRegistry) Count() int { return len(r.enemies) }

func (r *EnemyRegistry) Clear() { r.enemies = nil }

// SetPath подменяет маршрут после перестройки поля.
func (r *EnemyRegistry) SetPath(path *gridmap.Path) { r.path = path }

// Progress — доля пройденного врагом маршрута
func (r *EnemyRegistry) Progress(e *entity.Enemy) float64 {
	return r.path.Progress(e.X, e.Y)
}
