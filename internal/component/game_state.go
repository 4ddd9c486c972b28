// internal/component/game_state.go
package component

// GameState — экономика и флаги партии
type GameState struct {
	Gold      int
	Lives     int
	TimeScale float64
	Paused    bool
	GameOver  bool
	Victory   bool
}

// Stats — статистика сессии
type Stats struct {
	TowersPlaced     int
	ProjectilesFired int
	EnemiesKilled    int
	EnemiesEscaped   int
}
