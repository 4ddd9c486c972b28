// internal/event/types.go
package event

const (
	TowerPlaced    EventType = "TowerPlaced"    // Башня построена
	TowerUpgraded  EventType = "TowerUpgraded"  // Башня улучшена
	TowerSold      EventType = "TowerSold"      // Башня продана
	TowerFired     EventType = "TowerFired"     // Башня выстрелила
	TowerDestroyed EventType = "TowerDestroyed" // Башню разрушили стрелки
	EnemySpawned   EventType = "EnemySpawned"
	EnemyShot      EventType = "EnemyShot" // Стрелок выстрелил в башню
	EnemyKilled    EventType = "EnemyKilled"
	EnemyEscaped   EventType = "EnemyEscaped"
	WaveStarted    EventType = "WaveStarted"
	WaveCompleted  EventType = "WaveCompleted" // Волна закончилась
	GameOver       EventType = "GameOver"
	Victory        EventType = "Victory"
)

// AllTypes — все известные типы, в порядке объявления
var AllTypes = []EventType{
	TowerPlaced, TowerUpgraded, TowerSold, TowerFired, TowerDestroyed,
	EnemySpawned, EnemyShot, EnemyKilled, EnemyEscaped,
	WaveStarted, WaveCompleted, GameOver, Victory,
}
