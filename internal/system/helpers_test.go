package system

import (
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/entity"
	"coin-tower-defense/internal/event"
	"coin-tower-defense/internal/types"
	"coin-tower-defense/pkg/gridmap"
	"testing"
)

// world собирает реестры так же, как игра, но без контроллера.
type world struct {
	grid        *gridmap.Grid
	path        *gridmap.Path
	dispatcher  *event.Dispatcher
	projectiles *ProjectileRegistry
	enemies     *EnemyRegistry
	towers      *TowerRegistry
	waves       *WaveScheduler
	events      *recorder
	gold        int
}

func (w *world) EnemyByID(id types.EntityID) (*entity.Enemy, bool) { return w.enemies.Get(id) }
func (w *world) TowerByID(id types.EntityID) (*entity.Tower, bool) { return w.towers.Get(id) }
func (w *world) DamageTower(id types.EntityID, amount float64) bool {
	return w.towers.Damage(id, amount)
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fixedChooser int

func (f fixedChooser) Intn(n int) int { return int(f) % n }

// newWorld: поле 20×10, маршрут по нулевой строке от (0,0) до (0,10).
func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{events: &recorder{}}
	w.grid = gridmap.NewGrid(20, 10, 20)
	path, err := gridmap.NewPath(w.grid, []gridmap.GridPos{{Row: 0, Col: 0}, {Row: 0, Col: 10}})
	if err != nil {
		t.Fatalf("NewPath: %v", err)
	}
	w.path = path
	w.dispatcher = event.NewDispatcher()
	w.dispatcher.SubscribeAll(w.events, event.AllTypes...)

	ids := entity.NewIDAllocator()
	w.projectiles = NewProjectileRegistry(ids, w.dispatcher)
	w.enemies = NewEnemyRegistry(ids, w.path, w.projectiles, w.dispatcher, func() []*entity.Tower {
		return w.towers.All()
	})
	w.towers = NewTowerRegistry(ids, w.grid, w.enemies, w.projectiles, w.dispatcher)
	w.waves = NewWaveScheduler(w.enemies, fixedChooser(0), w.dispatcher, func(gold int) { w.gold += gold })
	w.projectiles.Bind(w)
	return w
}

func (w *world) spawn(t defs.EnemyType, health, speed float64) *entity.Enemy {
	return w.enemies.Spawn(defs.RosterEntry{EnemyType: t, Health: health, Speed: speed, Reward: 10})
}

func (w *world) place(t *testing.T, row, col int, towerType defs.TowerType) *entity.Tower {
	t.Helper()
	tower, ok := w.towers.Place(row, col, towerType)
	if !ok {
		t.Fatalf("placing %s at (%d,%d) failed", towerType, row, col)
	}
	return tower
}
