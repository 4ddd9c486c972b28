// internal/app/tower_management.go
package app

import (
	"coin-tower-defense/internal/config"
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/entity"
	"coin-tower-defense/internal/event"
)

// acceptsCommands: после конца партии и на паузе команды не выполняются.
func (g *Game) acceptsCommands() bool {
	return !g.IsOver() && !g.State.Paused
}

// CanPlace reports whether a tower of the given type could be built at
// (row, col) right now, gold included.
func (g *Game) CanPlace(row, col int, towerType defs.TowerType) bool {
	def, ok := defs.Tower(towerType)
	return ok && g.acceptsCommands() && g.State.Gold >= def.Cost && g.Towers.CanPlace(row, col)
}

// PlaceTower attempts to build a tower and charges its cost.
func (g *Game) PlaceTower(row, col int, towerType defs.TowerType) bool {
	if !g.CanPlace(row, col, towerType) {
		return false
	}
	tower, ok := g.Towers.Place(row, col, towerType)
	if !ok {
		return false
	}
	g.State.Gold -= tower.Cost
	g.Stats.TowersPlaced++
	g.EventDispatcher.Emit(event.TowerPlaced, towerData(tower, tower.Cost))
	return true
}

// UpgradeSelectedTower fails with no selection, at max level or when gold is
// short of the upgrade cost.
func (g *Game) UpgradeSelectedTower() bool {
	if !g.acceptsCommands() {
		return false
	}
	tower, ok := g.Towers.Selected()
	if !ok || tower.IsMaxLevel() {
		return false
	}
	cost := tower.UpgradeCost()
	if g.State.Gold < cost {
		return false
	}
	if !tower.Upgrade() {
		return false
	}
	g.State.Gold -= cost
	g.EventDispatcher.Emit(event.TowerUpgraded, towerData(tower, cost))
	return true
}

// SellSelectedTower refunds config.SellRefundRatio of everything invested.
func (g *Game) SellSelectedTower() bool {
	if !g.acceptsCommands() {
		return false
	}
	tower, ok := g.Towers.Selected()
	if !ok {
		return false
	}
	refund := tower.SellValue()
	if !g.Towers.Remove(tower.ID) {
		return false
	}
	g.State.Gold += refund
	g.EventDispatcher.Emit(event.TowerSold, towerData(tower, refund))
	return true
}

// SelectTowerAt выбирает башню под курсором; промах снимает выбор.
func (g *Game) SelectTowerAt(x, y float64) bool {
	if !g.acceptsCommands() {
		return false
	}
	_, ok := g.Towers.Select(x, y)
	return ok
}

// StartWave запускает следующую волну.
func (g *Game) StartWave() bool {
	if !g.acceptsCommands() {
		return false
	}
	return g.Waves.StartWave()
}

// ToggleManualSpeed cycles through config.ManualSpeeds. Any manual choice
// other than the first disables the automatic speed-up.
func (g *Game) ToggleManualSpeed() bool {
	if !g.acceptsCommands() {
		return false
	}
	g.speedIndex = (g.speedIndex + 1) % len(config.ManualSpeeds)
	g.State.TimeScale = config.ManualSpeeds[g.speedIndex]
	g.auto.boosted = false
	if g.speedIndex == 0 {
		g.auto.sinceCheck = 0
		g.auto.lastActivity = g.auto.clock
	}
	return true
}

// TogglePause работает всегда, кроме законченной партии.
func (g *Game) TogglePause() bool {
	if g.IsOver() {
		return false
	}
	g.State.Paused = !g.State.Paused
	return true
}

// SelectedTower — выбранная башня, если есть
func (g *Game) SelectedTower() (*entity.Tower, bool) {
	return g.Towers.Selected()
}

func towerData(t *entity.Tower, gold int) event.TowerData {
	return event.TowerData{TowerID: t.ID, Type: t.Type, Row: t.Row, Col: t.Col, Level: t.Level, Gold: gold}
}
