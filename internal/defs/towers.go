// internal/defs/towers.go
package defs

// TowerType identifies one of the buildable tower kinds.
type TowerType string

const (
	TowerMiner     TowerType = "MINER"
	TowerLightning TowerType = "LIGHTNING"
	TowerFire      TowerType = "FIRE"
)

// TowerDefinition holds all the static data for a specific type of tower.
// Stats are level-1 values; upgrades scale them in entity.TowerStats.
type TowerDefinition struct {
	ID              TowerType `json:"id"`
	Name            string    `json:"name"`
	Cost            int       `json:"cost"`
	Damage          float64   `json:"damage"`
	Range           float64   `json:"range"`     // pixels
	FireRate        float64   `json:"fire_rate"` // shots per second
	ProjectileSpeed float64   `json:"projectile_speed"`
	ProjectileSize  float64   `json:"projectile_size"`
	SlowsTarget     bool      `json:"slows_target"`
	MaxHealth       float64   `json:"max_health"`
	Visuals         Visuals   `json:"visuals"`
}

// TowerLibrary is a map to hold all tower definitions, keyed by their ID.
var TowerLibrary map[TowerType]TowerDefinition

// TowerOrder — порядок башен в палитре (как в файле определений)
var TowerOrder []TowerType

// Tower returns the definition for a tower type.
func Tower(id TowerType) (TowerDefinition, bool) {
	def, ok := TowerLibrary[id]
	return def, ok
}
