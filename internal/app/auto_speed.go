// internal/app/auto_speed.go
package app

import "coin-tower-defense/internal/config"

// autoSpeed ускоряет игру, пока враги идут вне зоны обороны, а башни молчат.
type autoSpeed struct {
	clock        float64 // собственные часы, без ускорения
	sinceCheck   float64
	lastActivity float64 // последний выстрел или враг в зоне обороны
	boosted      bool
}

// updateAutoSpeed runs on the unscaled delta. The check is polled every
// config.AutoSpeedCheckInterval and only while speed is not set manually.
func (g *Game) updateAutoSpeed(dt float64) {
	a := &g.auto
	a.clock += dt
	if g.speedIndex != 0 {
		return
	}
	a.sinceCheck += dt
	if a.sinceCheck < config.AutoSpeedCheckInterval {
		return
	}
	a.sinceCheck = 0

	hasEnemies := g.Enemies.Count() > 0
	inArea := g.enemiesInDefenseArea()
	if hasEnemies && !inArea && a.clock-a.lastActivity >= config.AutoSpeedGracePeriod {
		if !a.boosted {
			g.State.TimeScale = config.AutoSpeedBoost
			a.boosted = true
		}
		return
	}

	g.State.TimeScale = 1
	a.boosted = false
	if inArea || !hasEnemies {
		a.lastActivity = a.clock
	}
}

// enemiesInDefenseArea: есть ли враг, не ушедший дальше самой дальней башни
// по маршруту. Без башен зоны обороны нет.
func (g *Game) enemiesInDefenseArea() bool {
	towers := g.Towers.All()
	if len(towers) == 0 {
		return false
	}
	maxTower := 0.0
	for _, t := range towers {
		maxTower = max(maxTower, g.Path.Progress(t.X, t.Y))
	}
	for _, e := range g.Enemies.All() {
		if g.Path.Progress(e.X, e.Y) <= maxTower {
			return true
		}
	}
	return false
}

// recordTowerFire сбрасывает автоускорение сразу, не дожидаясь опроса.
// Ручную скорость не трогает.
func (g *Game) recordTowerFire() {
	g.auto.lastActivity = g.auto.clock
	if g.auto.boosted {
		g.auto.boosted = false
		g.State.TimeScale = 1
	}
}

// AutoBoosted — ускорение включено автоматически
func (g *Game) AutoBoosted() bool { return g.auto.boosted }

// SpeedIndex — позиция ручной скорости в config.ManualSpeeds
func (g *Game) SpeedIndex() int { return g.speedIndex }
