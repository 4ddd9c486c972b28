// internal/entity/tower.go
package entity

import (
	"coin-tower-defense/internal/component"
	"coin-tower-defense/internal/config"
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/types"
	"math"
)

// Tower is a placed defensive unit. Combat stats are a pure function of
// (Type, Level), see TowerStats.
type Tower struct {
	ID       types.EntityID
	Type     defs.TowerType
	Row, Col int
	component.Position
	component.Health
	component.Combat

	Damage          float64
	ProjectileSpeed float64
	ProjectileSize  float64
	Slow            *component.SlowPayload // nil, если башня не замедляет

	Level        int
	MaxLevel     int
	UpgradesMade int
	Cost         int
	invested     int // сумма реально оплаченных улучшений

	Target     types.EntityID // слабая ссылка на врага
	Kills      int
	Selected   bool
	FlashTimer float64 // мигание после попадания
	Destroyed  bool
}

// TowerStats returns damage, range and fire rate of a tower type at a level.
// Damage grows ×1.4 per level, range and fire rate ×1.2.
func TowerStats(def defs.TowerDefinition, level int) (damage, rng, fireRate float64) {
	if level < 1 {
		level = 1
	}
	n := float64(level - 1)
	damage = def.Damage * math.Pow(config.DamageGrowthPerLevel, n)
	rng = def.Range * math.Pow(config.RangeGrowthPerLevel, n)
	fireRate = def.FireRate * math.Pow(config.FireRateGrowthPerLevel, n)
	return damage, rng, fireRate
}

// NewTower создает башню первого уровня в центре клетки.
func NewTower(id types.EntityID, def defs.TowerDefinition, row, col int, x, y float64) *Tower {
	maxHealth := def.MaxHealth
	if maxHealth <= 0 {
		maxHealth = config.TowerMaxHealth
	}
	t := &Tower{
		ID:              id,
		Type:            def.ID,
		Row:             row,
		Col:             col,
		Position:        component.Position{X: x, Y: y},
		Health:          component.Health{Value: maxHealth, Max: maxHealth},
		ProjectileSpeed: def.ProjectileSpeed,
		ProjectileSize:  def.ProjectileSize,
		Level:           1,
		MaxLevel:        config.MaxTowerLevel,
		Cost:            def.Cost,
	}
	if def.SlowsTarget {
		t.Slow = &component.SlowPayload{Factor: config.SlowFactor, Duration: config.SlowDuration}
	}
	t.applyStats()
	return t
}

func (t *Tower) definition() defs.TowerDefinition {
	def, _ := defs.Tower(t.Type)
	return def
}

func (t *Tower) applyStats() {
	t.Damage, t.Range, t.FireRate = TowerStats(t.definition(), t.Level)
}

// IsMaxLevel — дальше улучшать нельзя
func (t *Tower) IsMaxLevel() bool {
	return t.Level >= t.MaxLevel
}

// UpgradeCost is the price of the next level, 0 at max level. Callers must
// check IsMaxLevel before charging.
func (t *Tower) UpgradeCost() int {
	if t.IsMaxLevel() {
		return 0
	}
	return int(math.Floor(float64(t.Cost) * config.UpgradeCostRatio * math.Pow(config.UpgradeCostGrowth, float64(t.Level-1))))
}

// Upgrade raises the level by one and records the paid cost. It returns false
// and changes nothing once the tower is at max level.
func (t *Tower) Upgrade() bool {
	if t.IsMaxLevel() {
		return false
	}
	t.invested += t.UpgradeCost()
	t.Level++
	t.UpgradesMade++
	t.applyStats()
	return true
}

// TotalValue — стоимость постройки плюс все оплаченные улучшения
func (t *Tower) TotalValue() int {
	return t.Cost + t.invested
}

// SellValue — возврат при продаже
func (t *Tower) SellValue() int {
	return int(math.Floor(float64(t.TotalValue()) * config.SellRefundRatio))
}

// TakeDamage reduces health and starts the damage flash. It returns true when
// this hit destroyed the tower.
func (t *Tower) TakeDamage(amount float64) bool {
	if t.Destroyed {
		return false
	}
	t.FlashTimer = config.TowerDamageFlashTime
	if t.Health.TakeDamage(amount) {
		t.Destroyed = true
	}
	return t.Destroyed
}

// ShowHealthBar — полоска видна, пока башня повреждена или мигает
func (t *Tower) ShowHealthBar() bool {
	return t.Value < t.Max || t.FlashTimer > 0
}

// InRange проверяет дистанцию до точки
func (t *Tower) InRange(x, y float64) bool {
	return math.Hypot(x-t.X, y-t.Y) <= t.Range
}
