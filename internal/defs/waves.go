// internal/defs/waves.go
package defs

import (
	"coin-tower-defense/internal/config"
	"math"
)

// RosterEntry — один враг в составе волны
type RosterEntry struct {
	EnemyType  EnemyType
	Health     float64
	Speed      float64
	Reward     int
	SpawnDelay float64 // секунды от начала волны
}

// WaveDefinition описывает состав волны в порядке появления.
type WaveDefinition struct {
	Number  int
	Entries []RosterEntry
}

// Chooser — источник случайных индексов (utils.PRNGService)
type Chooser interface {
	Intn(n int) int
}

// WaveMultiplier — общий множитель здоровья и награды для волны
func WaveMultiplier(waveNumber int) float64 {
	return 1 + float64(waveNumber-1)*config.WaveHealthScalePerWave
}

// BaseEnemyCount is the size of the main roster of a wave.
func BaseEnemyCount(waveNumber int) int {
	return config.WaveBaseEnemies + waveNumber*config.WaveEnemiesPerWave
}

// RangedSupplement is the number of extra ranged enemies appended after the
// main roster. Zero until the ranged type unlocks.
func RangedSupplement(waveNumber int) int {
	ranged, ok := rangedEnemy()
	if !ok || waveNumber < ranged.UnlockWave {
		return 0
	}
	return int(math.Floor(float64(waveNumber-ranged.UnlockWave+1) * config.WaveRangedPerWave))
}

// RosterSize — полный размер волны
func RosterSize(waveNumber int) int {
	return BaseEnemyCount(waveNumber) + RangedSupplement(waveNumber)
}

// EligibleEnemyTypes lists the enemy types unlocked at or below waveNumber,
// in library order.
func EligibleEnemyTypes(waveNumber int) []EnemyType {
	var eligible []EnemyType
	for _, id := range EnemyOrder {
		if EnemyLibrary[id].UnlockWave <= waveNumber {
			eligible = append(eligible, id)
		}
	}
	return eligible
}

// EnemyStats scales the definition of id for the given wave. Speed is fixed
// per type.
func EnemyStats(id EnemyType, waveNumber int) (health, speed float64, reward int) {
	def, ok := EnemyLibrary[id]
	if !ok {
		return 50, 80, 10
	}
	m := WaveMultiplier(waveNumber)
	return math.Floor(def.Health * m), def.Speed, int(math.Floor(float64(def.Reward) * m))
}

// NewWaveDefinition builds the roster of a wave. Size, type eligibility and
// delays are deterministic; only the type of each main-roster slot is drawn
// from rng.
func NewWaveDefinition(waveNumber int, rng Chooser) WaveDefinition {
	wave := WaveDefinition{Number: waveNumber}
	types := EligibleEnemyTypes(waveNumber)
	if len(types) == 0 {
		return wave
	}

	baseCount := BaseEnemyCount(waveNumber)
	for i := 0; i < baseCount; i++ {
		id := types[rng.Intn(len(types))]
		wave.Entries = append(wave.Entries, newEntry(id, waveNumber, float64(i)*config.WaveSpawnSpacing))
	}

	// Стрелки идут отдельной пачкой после основной волны
	if ranged, ok := rangedEnemy(); ok {
		for i := 0; i < RangedSupplement(waveNumber); i++ {
			delay := float64(baseCount+i)*config.WaveSpawnSpacing + config.WaveRangedExtraDelay
			wave.Entries = append(wave.Entries, newEntry(ranged.ID, waveNumber, delay))
		}
	}
	return wave
}

func newEntry(id EnemyType, waveNumber int, delay float64) RosterEntry {
	health, speed, reward := EnemyStats(id, waveNumber)
	return RosterEntry{EnemyType: id, Health: health, Speed: speed, Reward: reward, SpawnDelay: delay}
}

func rangedEnemy() (EnemyDefinition, bool) {
	for _, id := range EnemyOrder {
		if def := EnemyLibrary[id]; def.Ranged {
			return def, true
		}
	}
	return EnemyDefinition{}, false
}
