package system

import (
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/event"
	"testing"
)

func TestTowerFiresOnFirstTickAndDealsExactDamage(t *testing.T) {
	w := newWorld(t)
	tower := w.place(t, 3, 3, defs.TowerMiner) // центр (70,70)
	enemy := w.spawn(defs.EnemyBitcoin, 50, 0)
	enemy.X, enemy.Y = tower.X+35, tower.Y

	const dt = 0.05
	w.towers.Update(dt)
	if w.projectiles.Count() != 1 || w.events.count(event.TowerFired) != 1 {
		t.Fatalf("tower must fire on its first eligible tick, projectiles=%d", w.projectiles.Count())
	}
	w.projectiles.Update(dt)

	// 0.5 с: снаряд долетает, а второй выстрел еще не готов (интервал 1/1.5 с)
	for i := 1; i < 10; i++ {
		w.towers.Update(dt)
		w.projectiles.Update(dt)
	}
	if enemy.Value != 40 {
		t.Fatalf("enemy health = %v, want 40", enemy.Value)
	}
	if w.projectiles.Count() != 0 || w.events.count(event.TowerFired) != 1 {
		t.Fatalf("unexpected extra shots: projectiles=%d fired=%d", w.projectiles.Count(), w.events.count(event.TowerFired))
	}
	if enemy.LastHitBy != tower.ID {
		t.Fatalf("kill credit not recorded")
	}
}

func TestTowerTargetsLowestHealthInRange(t *testing.T) {
	w := newWorld(t)
	tower := w.place(t, 3, 3, defs.TowerLightning) // радиус 80
	healthy := w.spawn(defs.EnemyBitcoin, 50, 0)
	weak := w.spawn(defs.EnemyBitcoin, 20, 0)
	farAway := w.spawn(defs.EnemyBitcoin, 5, 0)
	healthy.X, healthy.Y = tower.X+30, tower.Y
	weak.X, weak.Y = tower.X-60, tower.Y
	farAway.X, farAway.Y = tower.X+200, tower.Y

	w.towers.Update(0.01)
	if tower.Target != weak.ID {
		t.Fatalf("tower targeted %d, want weakest in range %d", tower.Target, weak.ID)
	}

	// цель ушла из радиуса: башня переключается
	weak.X = tower.X - 300
	w.towers.Update(0.01)
	if tower.Target != healthy.ID {
		t.Fatalf("tower should re-acquire, got target %d", tower.Target)
	}
}

func TestTowerKeepsHeldTargetWhileInRange(t *testing.T) {
	w := newWorld(t)
	tower := w.place(t, 3, 3, defs.TowerLightning) // радиус 80
	held := w.spawn(defs.EnemyBitcoin, 50, 0)
	held.X, held.Y = tower.X+30, tower.Y

	w.towers.Update(0.01)
	if tower.Target != held.ID {
		t.Fatalf("tower targeted %d, want %d", tower.Target, held.ID)
	}

	// более слабый враг подошел вплотную, но текущая цель жива и в радиусе
	weak := w.spawn(defs.EnemyBitcoin, 1, 0)
	weak.X, weak.Y = tower.X+10, tower.Y
	for i := 0; i < 5; i++ {
		w.towers.Update(0.1)
		if tower.Target != held.ID {
			t.Fatalf("tick %d: tower switched to %d while %d is still valid", i, tower.Target, held.ID)
		}
	}

	held.TakeDamage(held.Value)
	w.towers.Update(0.01)
	if tower.Target != weak.ID {
		t.Fatalf("tower should re-acquire after its target died, got %d", tower.Target)
	}
}

func TestIdleTowerDoesNotQueueShots(t *testing.T) {
	w := newWorld(t)
	tower := w.place(t, 3, 3, defs.TowerMiner) // 1.5 выстрела/с
	e := w.spawn(defs.EnemyMonero, 10000, 0)
	e.X, e.Y = tower.X+20, tower.Y

	w.towers.Update(0.01)
	if w.events.count(event.TowerFired) != 1 {
		t.Fatalf("tower must fire at the enemy in range")
	}

	// 5 с без цели
	e.X = tower.X + 500
	for i := 0; i < 100; i++ {
		w.towers.Update(0.05)
	}
	if w.events.count(event.TowerFired) != 1 {
		t.Fatalf("tower fired without a target")
	}

	// цель вернулась: за 0.6 с (меньше интервала 1/1.5 с) ровно один выстрел
	e.X = tower.X + 20
	for i := 0; i < 12; i++ {
		w.towers.Update(0.05)
	}
	if got := w.events.count(event.TowerFired); got != 2 {
		t.Fatalf("fired %d times, want 2: idle time must not queue shots", got)
	}
}

func TestTowerWithoutTargetDoesNotFire(t *testing.T) {
	w := newWorld(t)
	tower := w.place(t, 5, 5, defs.TowerMiner)
	e := w.spawn(defs.EnemyBitcoin, 50, 0)
	e.X, e.Y = tower.X+100, tower.Y

	w.towers.Update(0.1)
	if tower.Target != 0 || w.projectiles.Count() != 0 {
		t.Fatalf("tower fired without a target in range")
	}
}

func TestFireTowerSlowsTarget(t *testing.T) {
	w := newWorld(t)
	tower := w.place(t, 3, 3, defs.TowerFire)
	e := w.spawn(defs.EnemyMonero, 500, 0)
	e.X, e.Y = tower.X+10, tower.Y

	w.towers.Update(0.01)
	w.projectiles.Update(0.01)
	if !e.IsSlowed() || e.Slow.Timer != 1.0 {
		t.Fatalf("fire projectile must apply a 1s slow, got %+v", e.Slow)
	}
}

func TestPlacementRules(t *testing.T) {
	w := newWorld(t)
	if _, ok := w.towers.Place(0, 5, defs.TowerMiner); ok {
		t.Fatalf("placing on the path must fail")
	}
	if _, ok := w.towers.Place(-1, 5, defs.TowerMiner); ok {
		t.Fatalf("placing out of bounds must fail")
	}
	if _, ok := w.towers.Place(4, 4, "NOPE"); ok {
		t.Fatalf("unknown tower type must fail")
	}
	w.place(t, 4, 4, defs.TowerMiner)
	if !w.grid.IsOccupied(4, 4) {
		t.Fatalf("placed tower must occupy its cell")
	}
	if _, ok := w.towers.Place(4, 4, defs.TowerFire); ok {
		t.Fatalf("placing on an occupied cell must fail")
	}
}

func TestSelectPicksLastMatchAndRemoveClearsSelection(t *testing.T) {
	w := newWorld(t)
	a := w.place(t, 4, 4, defs.TowerMiner)
	b := w.place(t, 4, 5, defs.TowerMiner)

	// точка ровно между центрами: обе башни в радиусе, побеждает последняя
	picked, ok := w.towers.Select((a.X+b.X)/2, a.Y)
	if !ok || picked.ID != b.ID || a.Selected || !b.Selected {
		t.Fatalf("expected last matching tower selected")
	}

	if _, ok := w.towers.Select(0, 0); ok || b.Selected {
		t.Fatalf("click on empty space must deselect")
	}

	w.towers.Select(a.X, a.Y)
	w.towers.Remove(a.ID)
	if _, ok := w.towers.Selected(); ok {
		t.Fatalf("removing the selected tower must clear selection")
	}
	if w.grid.IsOccupied(4, 4) {
		t.Fatalf("removed tower must free its cell")
	}
}
