// internal/system/tower.go
package system

import (
	"coin-tower-defense/internal/component"
	"coin-tower-defense/internal/config"
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/entity"
	"coin-tower-defense/internal/event"
	"coin-tower-defense/internal/types"
	"coin-tower-defense/pkg/gridmap"
	"log"
	"math"
)

// TowerRegistry управляет башнями: постройка, наведение, стрельба, выбор.
type TowerRegistry struct {
	ids         *entity.IDAllocator
	grid        *gridmap.Grid
	enemies     *EnemyRegistry
	projectiles *ProjectileRegistry
	dispatcher  *event.Dispatcher

	towers   []*entity.Tower
	selected types.EntityID
}

func NewTowerRegistry(ids *entity.IDAllocator, grid *gridmap.Grid, enemies *EnemyRegistry,
	projectiles *ProjectileRegistry, dispatcher *event.Dispatcher) *TowerRegistry {
	return &TowerRegistry{
		ids:         ids,
		grid:        grid,
		enemies:     enemies,
		projectiles: projectiles,
		dispatcher:  dispatcher,
	}
}

// CanPlace — клетка существует, не занята и не лежит на маршруте
func (r *TowerRegistry) CanPlace(row, col int) bool {
	return r.grid.IsValidCell(row, col) && !r.grid.IsOccupied(row, col)
}

// Place builds a tower and marks its cell occupied. Gold is the caller's
// concern. Returns false for invalid or occupied cells and unknown types.
func (r *TowerRegistry) Place(row, col int, towerType defs.TowerType) (*entity.Tower, bool) {
	if !r.CanPlace(row, col) {
		return nil, false
	}
	def, ok := defs.Tower(towerType)
	if !ok {
		log.Printf("TowerRegistry: unknown tower type %q", towerType)
		return nil, false
	}
	center := r.grid.CellCenter(row, col)
	t := entity.NewTower(r.ids.NewEntity(), def, row, col, center.X, center.Y)
	r.towers = append(r.towers, t)
	r.grid.SetOccupied(row, col, true)
	return t, true
}

// Remove always frees the cell and drops the selection if it pointed here.
func (r *TowerRegistry) Remove(id types.EntityID) bool {
	for i, t := range r.towers {
		if t.ID != id {
			continue
		}
		r.grid.SetOccupied(t.Row, t.Col, false)
		r.towers = append(r.towers[:i], r.towers[i+1:]...)
		if r.selected == id {
			r.selected = 0
		}
		t.Selected = false
		return true
	}
	return false
}

// Damage applies damage to a tower; a destroyed tower is removed and its cell
// freed before returning.
func (r *TowerRegistry) Damage(id types.EntityID, amount float64) bool {
	t, ok := r.Get(id)
	if !ok {
		return false
	}
	if !t.TakeDamage(amount) {
		return false
	}
	r.Remove(id)
	r.dispatcher.Emit(event.TowerDestroyed, event.TowerData{
		TowerID: t.ID, Type: t.Type, Row: t.Row, Col: t.Col, Level: t.Level,
	})
	return true
}

// Update ticks every tower: flash, cooldown, targeting and firing.
func (r *TowerRegistry) Update(deltaTime float64) {
	for _, t := range r.towers {
		if t.FlashTimer > 0 {
			t.FlashTimer = math.Max(0, t.FlashTimer-deltaTime)
		}
		if t.FireCooldown > 0 {
			t.FireCooldown -= deltaTime
		}

		target := r.currentTarget(t)
		if target == nil {
			target = r.acquireTarget(t)
		}
		if target == nil {
			t.Target = 0
			continue
		}
		t.Target = target.ID

		if t.FireCooldown <= 0 {
			r.fire(t, target)
		}
	}
}

// currentTarget returns the held target if it is still alive and in range.
func (r *TowerRegistry) currentTarget(t *entity.Tower) *entity.Enemy {
	if t.Target == 0 {
		return nil
	}
	e, ok := r.enemies.Get(t.Target)
	if !ok || !t.InRange(e.X, e.Y) {
		return nil
	}
	return e
}

// acquireTarget выбирает врага с наименьшим здоровьем в радиусе.
// При равенстве — первый в порядке реестра.
func (r *TowerRegistry) acquireTarget(t *entity.Tower) *entity.Enemy {
	var best *entity.Enemy
	for _, e := range r.enemies.All() {
		if e.IsDead() || !t.InRange(e.X, e.Y) {
			continue
		}
		if best == nil || e.Value < best.Value {
			best = e
		}
	}
	return best
}

func (r *TowerRegistry) fire(t *entity.Tower, target *entity.Enemy) {
	def, _ := defs.Tower(t.Type)
	var slow *component.SlowPayload
	if t.Slow != nil {
		s := *t.Slow
		slow = &s
	}
	r.projectiles.Launch(entity.Projectile{
		Position: t.Position,
		Target:   component.TargetRef{Kind: component.TargetEnemy, ID: target.ID},
		Source:   t.ID,
		Damage:   t.Damage,
		Speed:    t.ProjectileSpeed,
		Size:     t.ProjectileSize,
		Slow:     slow,
		Color:    def.Visuals.Color,
	})
	// не накапливаем пропущенные выстрелы
	t.FireCooldown = t.FireInterval()
	r.dispatcher.Emit(event.TowerFired, event.ShotData{SourceID: t.ID, TargetID: target.ID, TowerType: t.Type})
}

// Select marks the last tower whose center lies within the selection radius
// of (x, y). All other towers are deselected either way.
func (r *TowerRegistry) Select(x, y float64) (*entity.Tower, bool) {
	var picked *entity.Tower
	for _, t := range r.towers {
		t.Selected = false
		if math.Hypot(t.X-x, t.Y-y) <= config.SelectionRadius {
			picked = t
		}
	}
	r.selected = 0
	if picked == nil {
		return nil, false
	}
	picked.Selected = true
	r.selected = picked.ID
	return picked, true
}

// Selected — выбранная башня, если есть
func (r *TowerRegistry) Selected() (*entity.Tower, bool) {
	if r.selected == 0 {
		return nil, false
	}
	return r.Get(r.selected)
}

func (r *TowerRegistry) ClearSelection() {
	for _, t := range r.towers {
		t.Selected = false
	}
	r.selected = 0
}

// CreditKill увеличивает счетчик убийств башни, если она еще стоит.
func (r *TowerRegistry) CreditKill(id types.EntityID) {
	if t, ok := r.Get(id); ok {
		t.Kills++
	}
}

func (r *TowerRegistry) Get(id types.EntityID) (*entity.Tower, bool) {
	for _, t := range r.towers {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// AtCell — башня в клетке, если есть
func (r *TowerRegistry) AtCell(row, col int) (*entity.Tower, bool) {
	for _, t := range r.towers {
		if t.Row == row && t.Col == col {
			return t, true
		}
	}
	return nil, false
}

// All returns the live collection; callers must not modify the slice.
func (r *TowerRegistry) All() []*entity.Tower { return r.towers }

func (r *TowerRegistry) Count() int { return len(r.towers) }

// Clear сносит все башни и освобождает клетки.
func (r *TowerRegistry) Clear() {
	for _, t := range r.towers {
		r.grid.SetOccupied(t.Row, t.Col, false)
	}
	r.towers = nil
	r.selected = 0
}

// Revalidate заново размечает клетки после изменения размера поля. Башни,
// оказавшиеся за границей или на новом маршруте, сносятся и возвращаются.
func (r *TowerRegistry) Revalidate() []*entity.Tower {
	var removed []*entity.Tower
	kept := r.towers[:0]
	for _, t := range r.towers {
		if !r.grid.IsValidCell(t.Row, t.Col) || r.grid.IsOccupied(t.Row, t.Col) {
			if r.selected == t.ID {
				r.selected = 0
			}
			t.Selected = false
			removed = append(removed, t)
			continue
		}
		r.grid.SetOccupied(t.Row, t.Col, true)
		center := r.grid.CellCenter(t.Row, t.Col)
		t.X, t.Y = center.X, center.Y
		kept = append(kept, t)
	}
	for i := len(kept); i < len(r.towers); i++ {
		r.towers[i] = nil
	}
	r.towers = kept
	return removed
}
