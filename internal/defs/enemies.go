// internal/defs/enemies.go
package defs

// EnemyType identifies one of the enemy kinds.
type EnemyType string

const (
	EnemyBitcoin  EnemyType = "BITCOIN"
	EnemyEthereum EnemyType = "ETHEREUM"
	EnemyDogecoin EnemyType = "DOGECOIN"
	EnemyMonero   EnemyType = "MONERO"
	EnemyShooter  EnemyType = "SHOOTER"
)

// EnemyDefinition holds the wave-1 stats of an enemy kind and the wave from
// which it may appear in rosters.
type EnemyDefinition struct {
	ID         EnemyType `json:"id"`
	Name       string    `json:"name"`
	Health     float64   `json:"health"`
	Speed      float64   `json:"speed"` // pixels per second
	Reward     int       `json:"reward"`
	UnlockWave int       `json:"unlock_wave"`
	Ranged     bool      `json:"ranged"`
	Visuals    Visuals   `json:"visuals"`
}

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary map[EnemyType]EnemyDefinition

// EnemyOrder — порядок типов врагов из файла; влияет на случайный выбор в волне
var EnemyOrder []EnemyType

// Enemy returns the definition for an enemy type.
func Enemy(id EnemyType) (EnemyDefinition, bool) {
	def, ok := EnemyLibrary[id]
	return def, ok
}
