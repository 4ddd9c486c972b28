package system

import (
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/event"
	"math"
	"testing"
)

func TestEnemyReachesEndAfterDistanceOverSpeed(t *testing.T) {
	w := newWorld(t)
	e := w.spawn(defs.EnemyBitcoin, 50, 50)
	const dt = 0.01
	want := w.path.TotalLength() / 50 // 200 px / 50 px/s

	elapsed := 0.0
	for i := 0; i < 1000; i++ {
		elapsed += dt
		if escaped := w.enemies.Update(dt); len(escaped) > 0 {
			if escaped[0].ID != e.ID || !escaped[0].Escaped {
				t.Fatalf("wrong enemy escaped")
			}
			break
		}
	}
	tolerance := dt + 5.0/50
	if math.Abs(elapsed-want) > tolerance {
		t.Fatalf("escaped after %.2fs, want %.2fs ±%.2f", elapsed, want, tolerance)
	}
	if w.enemies.Count() != 0 {
		t.Fatalf("escaped enemy must be removed")
	}
}

func TestSlowHalvesMovement(t *testing.T) {
	w := newWorld(t)
	e := w.spawn(defs.EnemyBitcoin, 50, 40)
	startX := e.X
	e.ApplySlow(0.5, 1.0)
	w.enemies.Update(0.5)
	if got := e.X - startX; math.Abs(got-10) > 1e-9 {
		t.Fatalf("slowed enemy moved %v px, want 10", got)
	}
}

func TestRangedEnemyCooldownResetsOnlyWithTarget(t *testing.T) {
	w := newWorld(t)
	shooter := w.spawn(defs.EnemyShooter, 100, 0)

	w.enemies.Update(0.1)
	if shooter.Ranged.Cooldown > 0 || w.projectiles.Count() != 0 {
		t.Fatalf("no tower in range: cooldown must stay ready")
	}

	far := w.place(t, 3, 1, defs.TowerMiner)  // (30,70), ~63 px
	near := w.place(t, 2, 0, defs.TowerMiner) // (10,50), 40 px
	w.enemies.Update(0.1)
	if w.projectiles.Count() != 1 {
		t.Fatalf("shooter should fire once, projectiles=%d", w.projectiles.Count())
	}
	shot := w.projectiles.All()[0]
	if shot.Target.ID != near.ID || !shot.IsEnemyShot() {
		t.Fatalf("shooter must target the nearest tower, got %d (far=%d)", shot.Target.ID, far.ID)
	}
	if shooter.Ranged.Cooldown != 2 {
		t.Fatalf("cooldown = %v, want 2", shooter.Ranged.Cooldown)
	}
	if w.events.count(event.EnemyShot) != 1 {
		t.Fatalf("EnemyShot event missing")
	}
}

func TestEnemyShotDestroysTowerAndFreesCell(t *testing.T) {
	w := newWorld(t)
	w.spawn(defs.EnemyShooter, 100, 0)
	tower := w.place(t, 2, 0, defs.TowerMiner)
	tower.Value = 15

	w.enemies.Update(0.1)
	for i := 0; i < 40 && w.projectiles.Count() > 0; i++ {
		w.projectiles.Update(0.1)
	}
	if _, ok := w.towers.Get(tower.ID); ok {
		t.Fatalf("destroyed tower must leave the registry")
	}
	if w.grid.IsOccupied(2, 0) {
		t.Fatalf("destroyed tower must free its cell")
	}
	if w.events.count(event.TowerDestroyed) != 1 {
		t.Fatalf("TowerDestroyed event missing")
	}
}

func TestRemoveDeadKeepsOrder(t *testing.T) {
	w := newWorld(t)
	a := w.spawn(defs.EnemyBitcoin, 10, 0)
	b := w.spawn(defs.EnemyBitcoin, 10, 0)
	c := w.spawn(defs.EnemyBitcoin, 10, 0)
	a.TakeDamage(10)
	c.TakeDamage(10)

	dead := w.enemies.RemoveDead()
	if len(dead) != 2 || dead[0] != a || dead[1] != c {
		t.Fatalf("unexpected dead list %v", dead)
	}
	if w.enemies.Count() != 1 || w.enemies.All()[0] != b {
		t.Fatalf("survivor missing")
	}
}
