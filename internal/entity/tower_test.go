package entity

import (
	"coin-tower-defense/internal/defs"
	"math"
	"testing"
)

func newTestTower(t *testing.T, id defs.TowerType) *Tower {
	t.Helper()
	def, ok := defs.Tower(id)
	if !ok {
		t.Fatalf("no definition for %s", id)
	}
	return NewTower(1, def, 2, 3, 70, 50)
}

func TestTowerStatsFollowLevelLaw(t *testing.T) {
	for _, id := range defs.TowerOrder {
		def, _ := defs.Tower(id)
		tower := newTestTower(t, id)
		for level := 1; level <= tower.MaxLevel; level++ {
			n := float64(level - 1)
			wantDamage := def.Damage * math.Pow(1.4, n)
			wantRange := def.Range * math.Pow(1.2, n)
			wantRate := def.FireRate * math.Pow(1.2, n)
			if math.Abs(tower.Damage-wantDamage) > 1e-9 || math.Abs(tower.Range-wantRange) > 1e-9 || math.Abs(tower.FireRate-wantRate) > 1e-9 {
				t.Fatalf("%s level %d: got dmg=%v range=%v rate=%v", id, level, tower.Damage, tower.Range, tower.FireRate)
			}
			tower.Upgrade()
		}
	}
}

func TestUpgradeCostStrictlyIncreasingAndZeroAtMax(t *testing.T) {
	for _, id := range defs.TowerOrder {
		tower := newTestTower(t, id)
		prev := -1
		for !tower.IsMaxLevel() {
			cost := tower.UpgradeCost()
			if cost <= prev {
				t.Fatalf("%s: cost %d at level %d not greater than %d", id, cost, tower.Level, prev)
			}
			prev = cost
			tower.Upgrade()
		}
		if tower.UpgradeCost() != 0 {
			t.Fatalf("%s: upgrade cost at max level = %d", id, tower.UpgradeCost())
		}
	}
}

func TestUpgradePastMaxIsIdempotent(t *testing.T) {
	tower := newTestTower(t, defs.TowerMiner)
	for tower.Upgrade() {
	}
	damage, rng, rate, value := tower.Damage, tower.Range, tower.FireRate, tower.TotalValue()
	for i := 0; i < 5; i++ {
		if tower.Upgrade() {
			t.Fatalf("upgrade past max level must fail")
		}
	}
	if tower.Damage != damage || tower.Range != rng || tower.FireRate != rate || tower.TotalValue() != value {
		t.Fatalf("failed upgrade changed stats")
	}
	if tower.Level != 3 || tower.UpgradesMade != 2 {
		t.Fatalf("unexpected level %d / upgrades %d", tower.Level, tower.UpgradesMade)
	}
}

func TestTotalValueCountsPaidUpgrades(t *testing.T) {
	tower := newTestTower(t, defs.TowerMiner)
	if tower.TotalValue() != 50 || tower.SellValue() != 35 {
		t.Fatalf("fresh miner value %d sell %d", tower.TotalValue(), tower.SellValue())
	}
	first := tower.UpgradeCost() // 25
	tower.Upgrade()
	second := tower.UpgradeCost() // 37
	tower.Upgrade()
	if first != 25 || second != 37 {
		t.Fatalf("upgrade costs %d, %d", first, second)
	}
	if tower.TotalValue() != 50+25+37 {
		t.Fatalf("total value %d", tower.TotalValue())
	}
	if tower.SellValue() != int(math.Floor(112*0.7)) {
		t.Fatalf("sell value %d", tower.SellValue())
	}
}

func TestTowerTakeDamage(t *testing.T) {
	tower := newTestTower(t, defs.TowerLightning)
	if tower.TakeDamage(30) {
		t.Fatalf("30 damage should not destroy a 100hp tower")
	}
	if tower.Value != 70 || !tower.ShowHealthBar() || tower.FlashTimer <= 0 {
		t.Fatalf("unexpected state after hit: hp=%v flash=%v", tower.Value, tower.FlashTimer)
	}
	if !tower.TakeDamage(100) {
		t.Fatalf("lethal hit should report destroyed")
	}
	if tower.Value != 0 || !tower.Destroyed {
		t.Fatalf("destroyed tower hp=%v", tower.Value)
	}
	if tower.TakeDamage(10) {
		t.Fatalf("already destroyed tower cannot be destroyed twice")
	}
}

func TestFireTowerCarriesSlow(t *testing.T) {
	if newTestTower(t, defs.TowerFire).Slow == nil {
		t.Fatalf("fire tower must carry slow payload")
	}
	if newTestTower(t, defs.TowerMiner).Slow != nil {
		t.Fatalf("miner must not slow")
	}
}
