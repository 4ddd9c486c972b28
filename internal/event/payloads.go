// internal/event/payloads.go
package event

import (
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/types"
)

type TowerData struct {
	TowerID types.EntityID
	Type    defs.TowerType
	Row     int
	Col     int
	Level   int
	Gold    int // стоимость постройки/улучшения или сумма возврата
}

type ShotData struct {
	SourceID  types.EntityID
	TargetID  types.EntityID
	TowerType defs.TowerType // пусто для выстрелов врагов
}

type EnemyData struct {
	EnemyID  types.EntityID
	Type     defs.EnemyType
	Reward   int
	KilledBy types.EntityID // 0, если убийца неизвестен
}

type WaveData struct {
	Number int
	Size   int
	Bonus  int
}

type OutcomeData struct {
	WavesCompleted int
	Lives          int
	Gold           int
}
