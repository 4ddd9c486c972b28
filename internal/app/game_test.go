package app

import (
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/entity"
	"coin-tower-defense/internal/event"
	"coin-tower-defense/internal/utils"
	"coin-tower-defense/pkg/gridmap"
	"math"
	"testing"
)

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

// newTestGame: поле 20×10 по 20 px, маршрут по нулевой строке длиной 200 px.
func newTestGame(t *testing.T) (*Game, *recorder) {
	t.Helper()
	grid := gridmap.NewGrid(20, 10, 20)
	path, err := gridmap.NewPath(grid, []gridmap.GridPos{{Row: 0, Col: 0}, {Row: 0, Col: 10}})
	if err != nil {
		t.Fatalf("NewPath: %v", err)
	}
	g := NewGame(grid, path, utils.NewPRNGService(1))
	rec := &recorder{}
	g.EventDispatcher.SubscribeAll(rec, event.AllTypes...)
	return g, rec
}

func spawn(g *Game, health, speed float64, reward int) *entity.Enemy {
	return g.Enemies.Spawn(defs.RosterEntry{EnemyType: defs.EnemyBitcoin, Health: health, Speed: speed, Reward: reward})
}

func TestPlacementChargesGoldOnce(t *testing.T) {
	g, rec := newTestGame(t)
	if g.State.Gold != 100 {
		t.Fatalf("starting gold = %d", g.State.Gold)
	}
	if !g.PlaceTower(4, 4, defs.TowerMiner) {
		t.Fatalf("placement on a free cell must succeed")
	}
	if g.State.Gold != 50 || !g.Grid.IsOccupied(4, 4) {
		t.Fatalf("gold=%d occupied=%v", g.State.Gold, g.Grid.IsOccupied(4, 4))
	}
	if g.PlaceTower(4, 4, defs.TowerMiner) {
		t.Fatalf("second placement on the same cell must fail")
	}
	if g.State.Gold != 50 {
		t.Fatalf("failed placement changed gold to %d", g.State.Gold)
	}
	if g.PlaceTower(0, 3, defs.TowerMiner) {
		t.Fatalf("placement on the path must fail")
	}
	if g.PlaceTower(5, 5, defs.TowerFire) {
		t.Fatalf("placement without enough gold must fail")
	}
	if rec.count(event.TowerPlaced) != 1 || g.Stats.TowersPlaced != 1 {
		t.Fatalf("expected exactly one TowerPlaced")
	}
}

func TestKillCreditsRewardOnSameTick(t *testing.T) {
	g, rec := newTestGame(t)
	g.PlaceTower(1, 1, defs.TowerMiner) // (30,30), до старта маршрута ~28 px
	e := spawn(g, 10, 0, 10)

	for i := 0; i < 20 && g.Enemies.Count() > 0; i++ {
		g.Update(0.05)
	}
	if g.Enemies.Count() != 0 {
		t.Fatalf("enemy should have been killed")
	}
	if g.State.Gold != 50+10 {
		t.Fatalf("gold = %d, want 60", g.State.Gold)
	}
	if rec.count(event.EnemyKilled) != 1 || g.Stats.EnemiesKilled != 1 {
		t.Fatalf("EnemyKilled not reported")
	}
	tower := g.Towers.All()[0]
	if tower.Kills != 1 || e.LastHitBy != tower.ID {
		t.Fatalf("kill credit missing: kills=%d", tower.Kills)
	}
}

func TestEscapeAtOneLifeEndsGame(t *testing.T) {
	g, rec := newTestGame(t)
	g.State.Lives = 1
	spawn(g, 50, 50, 10)

	for i := 0; i < 100 && !g.State.GameOver; i++ {
		g.Update(0.1)
	}
	if !g.State.GameOver || g.State.Lives != 0 {
		t.Fatalf("game over=%v lives=%d", g.State.GameOver, g.State.Lives)
	}
	if rec.count(event.GameOver) != 1 || rec.count(event.EnemyEscaped) != 1 {
		t.Fatalf("missing GameOver/EnemyEscaped events")
	}

	gold := g.State.Gold
	doomed := spawn(g, 1, 50, 10)
	doomed.TakeDamage(1)
	for i := 0; i < 10; i++ {
		g.Update(0.1)
	}
	if g.State.Gold != gold || g.State.Lives != 0 {
		t.Fatalf("state changed after game over: gold=%d lives=%d", g.State.Gold, g.State.Lives)
	}
	if g.PlaceTower(4, 4, defs.TowerMiner) || g.StartWave() || g.TogglePause() {
		t.Fatalf("commands must be rejected after game over")
	}
}

func TestUpgradePastMaxLevelIsRejected(t *testing.T) {
	g, _ := newTestGame(t)
	g.State.Gold = 1000
	g.PlaceTower(4, 4, defs.TowerMiner)
	tower, _ := g.Towers.AtCell(4, 4)

	if g.UpgradeSelectedTower() {
		t.Fatalf("upgrade without selection must fail")
	}
	if !g.SelectTowerAt(tower.X, tower.Y) {
		t.Fatalf("selection failed")
	}
	if !g.UpgradeSelectedTower() || !g.UpgradeSelectedTower() {
		t.Fatalf("two upgrades must succeed")
	}
	gold, damage := g.State.Gold, tower.Damage
	for i := 0; i < 3; i++ {
		if g.UpgradeSelectedTower() {
			t.Fatalf("upgrade at max level must fail")
		}
	}
	if g.State.Gold != gold || tower.Damage != damage || tower.Level != 3 {
		t.Fatalf("failed upgrade changed state")
	}
	if gold != 1000-50-25-37 {
		t.Fatalf("gold after upgrades = %d", gold)
	}
}

func TestSellRefundsSeventyPercent(t *testing.T) {
	g, rec := newTestGame(t)
	g.PlaceTower(4, 4, defs.TowerMiner)
	tower, _ := g.Towers.AtCell(4, 4)
	g.SelectTowerAt(tower.X, tower.Y)

	if !g.SellSelectedTower() {
		t.Fatalf("sell failed")
	}
	if g.State.Gold != 50+35 {
		t.Fatalf("gold = %d, want 85", g.State.Gold)
	}
	if g.Grid.IsOccupied(4, 4) || g.Towers.Count() != 0 {
		t.Fatalf("sold tower must free its cell")
	}
	if g.SellSelectedTower() {
		t.Fatalf("sell without selection must fail")
	}
	if rec.count(event.TowerSold) != 1 {
		t.Fatalf("TowerSold not emitted")
	}
}

func TestAutoSpeedBoostsAndResetsOnFire(t *testing.T) {
	g, _ := newTestGame(t)
	g.PlaceTower(5, 1, defs.TowerMiner) // проекция на маршрут — 10% пути
	tower := g.Towers.All()[0]
	e := spawn(g, 500, 0, 10)
	e.X = 150 // 70% пути, вне зоны обороны

	for i := 0; i < 60; i++ {
		g.Update(0.1)
	}
	if g.State.TimeScale != 3 || !g.AutoBoosted() {
		t.Fatalf("expected auto boost, time scale %v", g.State.TimeScale)
	}

	e.X, e.Y = tower.X, tower.Y-30
	g.Update(0.01)
	if g.Stats.ProjectilesFired != 1 {
		t.Fatalf("tower should fire")
	}
	if g.State.TimeScale != 1 || g.AutoBoosted() {
		t.Fatalf("firing must reset to 1x, got %v", g.State.TimeScale)
	}
}

func TestAutoSpeedStaysOffWithoutEnemies(t *testing.T) {
	g, _ := newTestGame(t)
	g.PlaceTower(5, 1, defs.TowerMiner)
	for i := 0; i < 100; i++ {
		g.Update(0.1)
	}
	if g.State.TimeScale != 1 {
		t.Fatalf("no enemies: time scale must stay 1x, got %v", g.State.TimeScale)
	}
}

func TestManualSpeedDisablesAutoSpeed(t *testing.T) {
	g, _ := newTestGame(t)
	e := spawn(g, 500, 0, 10)
	e.X = 150

	if !g.ToggleManualSpeed() || g.State.TimeScale != 2 {
		t.Fatalf("manual toggle to 2x failed")
	}
	for i := 0; i < 80; i++ {
		g.Update(0.1)
	}
	if g.State.TimeScale != 2 || g.AutoBoosted() {
		t.Fatalf("manual speed overridden: %v", g.State.TimeScale)
	}
	g.ToggleManualSpeed()
	g.ToggleManualSpeed()
	if g.SpeedIndex() != 0 || g.State.TimeScale != 1 {
		t.Fatalf("speed cycle must wrap to 1x")
	}
}

func TestVictoryAfterTwentyWaves(t *testing.T) {
	g, rec := newTestGame(t)
	for wave := 1; wave <= 20; wave++ {
		if !g.Waves.StartWave() {
			t.Fatalf("wave %d did not start", wave)
		}
		g.Waves.Update(1000)
		for _, e := range g.Enemies.All() {
			e.TakeDamage(e.Value)
		}
		g.Enemies.RemoveDead()
		g.Waves.Update(0)
	}
	g.Update(0.01)
	if !g.State.Victory || rec.count(event.Victory) != 1 {
		t.Fatalf("expected victory after 20 waves")
	}
	// бонусы: 60 + 70 + ... + 250
	if want := 100 + 20*50 + 10*(20*21/2); g.State.Gold != want {
		t.Fatalf("gold = %d, want %d", g.State.Gold, want)
	}
	if g.StartWave() {
		t.Fatalf("no waves after victory")
	}
	g.Update(0.1)
	if rec.count(event.Victory) != 1 {
		t.Fatalf("victory must be reported once")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g, _ := newTestGame(t)
	e := spawn(g, 50, 50, 10)
	x := e.X

	g.TogglePause()
	g.Update(0.1)
	if e.X != x {
		t.Fatalf("paused game moved an enemy")
	}
	if g.PlaceTower(4, 4, defs.TowerMiner) {
		t.Fatalf("commands other than pause are rejected while paused")
	}
	if !g.TogglePause() || g.State.Paused {
		t.Fatalf("unpause failed")
	}
	g.Update(0.1)
	if e.X == x {
		t.Fatalf("enemy should move after unpause")
	}
}

func TestDeltaIsClamped(t *testing.T) {
	g, _ := newTestGame(t)
	e := spawn(g, 50, 50, 10)
	x := e.X
	g.Update(5)
	if moved := e.X - x; math.Abs(moved-5) > 1e-9 {
		t.Fatalf("enemy moved %v px in one clamped tick, want 5", moved)
	}
}

func TestStartWaveTwiceIsRejected(t *testing.T) {
	g, rec := newTestGame(t)
	if !g.StartWave() || g.StartWave() {
		t.Fatalf("second StartWave during a wave must fail")
	}
	g.Update(0.05)
	if rec.count(event.EnemySpawned) != 1 {
		t.Fatalf("first roster entry spawns immediately")
	}
	snap := g.Snapshot()
	if !snap.WaveInProgress || snap.EnemiesRemaining != 7 {
		t.Fatalf("snapshot wave=%v remaining=%d", snap.WaveInProgress, snap.EnemiesRemaining)
	}
}

func TestSnapshotReflectsTowers(t *testing.T) {
	g, _ := newTestGame(t)
	g.PlaceTower(4, 4, defs.TowerMiner)
	snap := g.Snapshot()
	if len(snap.Towers) != 1 {
		t.Fatalf("towers in snapshot: %d", len(snap.Towers))
	}
	tv := snap.Towers[0]
	if tv.UpgradeCost != 25 || tv.SellValue != 35 || tv.Level != 1 || tv.Health != 100 {
		t.Fatalf("unexpected tower view %+v", tv)
	}
	if snap.Gold != 50 || snap.Lives != 20 || snap.Wave != 1 || snap.TimeScale != 1 {
		t.Fatalf("unexpected header %+v", snap)
	}
}

func TestResizeDropsTowersOutsideTheField(t *testing.T) {
	g := NewDefaultGame(1)
	if !g.PlaceTower(0, 39, defs.TowerMiner) || !g.PlaceTower(0, 0, defs.TowerMiner) {
		t.Fatalf("placement failed")
	}
	g.Resize(20, 10)
	if g.Towers.Count() != 1 {
		t.Fatalf("towers after resize: %d", g.Towers.Count())
	}
	if !g.Grid.HasTower(0, 0) {
		t.Fatalf("surviving tower must re-occupy its cell")
	}
	if g.Path.Len() == 0 || !g.Grid.IsPath(5, 0) {
		t.Fatalf("path must be rebuilt after resize")
	}
}

func TestRestart(t *testing.T) {
	g, _ := newTestGame(t)
	g.PlaceTower(4, 4, defs.TowerMiner)
	g.StartWave()
	g.Update(0.1)
	g.Restart()
	if g.State.Gold != 100 || g.Towers.Count() != 0 || g.Enemies.Count() != 0 || g.Waves.InProgress() {
		t.Fatalf("restart must reset the session")
	}
	if g.Grid.IsOccupied(4, 4) {
		t.Fatalf("restart must free tower cells")
	}
}
