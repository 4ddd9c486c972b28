// internal/config/config.go
package config

import "image/color"

const (
	GridCols = 40
	GridRows = 18
	CellSize = 20.0 // pixels

	ScreenWidth  = GridCols * CellSize
	HUDHeight    = 120
	ScreenHeight = GridRows*CellSize + HUDHeight

	StartingGold  = 100
	StartingLives = 20
	VictoryWaves  = 20

	MaxDeltaTime = 0.1 // секунды, ограничение шага после подвисания

	// Автоускорение
	AutoSpeedCheckInterval = 0.5 // секунды
	AutoSpeedGracePeriod   = 5.0 // сколько башни должны молчать до ускорения
	AutoSpeedBoost         = 3.0

	SellRefundRatio      = 0.7
	UpgradeCostRatio     = 0.5
	UpgradeCostGrowth    = 1.5
	MaxTowerLevel        = 3
	TowerMaxHealth       = 100
	TowerDamageFlashTime = 0.2
	SelectionRadius      = CellSize / 2

	// Прирост характеристик башни за уровень
	DamageGrowthPerLevel   = 1.4
	RangeGrowthPerLevel    = 1.2
	FireRateGrowthPerLevel = 1.2

	WaypointSnapDistance = 5.0 // pixels
	EnemyRadius          = 8.0
	RangedEnemyRadius    = 10.0

	RangedEnemyCooldown        = 2.0 // секунды между выстрелами
	RangedEnemyRange           = 100.0
	RangedEnemyDamage          = 20
	RangedEnemyProjectileSpeed = 50.0
	EnemyShotSize              = 4.0

	SlowFactor   = 0.5
	SlowDuration = 1.0 // секунды

	ProjectileHitRadius = 15.0
	TowerHitRadius      = 16.0
	ProjectileTrailSize = 3

	// Волны
	WaveBaseEnemies        = 5
	WaveEnemiesPerWave     = 2
	WaveHealthScalePerWave = 0.15
	WaveSpawnSpacing       = 1.0 // секунды между врагами
	WaveRangedExtraDelay   = 2.0
	WaveRangedPerWave      = 0.8
	WaveBonusBase          = 50
	WaveBonusPerWave       = 10

	ClickCooldown = 300 // ms, защита от двойных кликов по кнопкам

	// Раскладка HUD
	HUDTop            = GridRows * CellSize
	PaletteX          = 170
	PaletteButtonW    = 100
	PaletteButtonH    = 26
	WaveButtonW       = 120
	ControlButtonSize = 9
	IndicatorRadius   = 8
	StrokeWidth       = 1.5

	// Инспектор
	InspectBroadcastInterval = 200 // ms между рассылками снимка
)

// ManualSpeeds — цикл ручного ускорения
var ManualSpeeds = []float64{1, 2, 3}

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GridLineColor    = color.RGBA{40, 44, 60, 255}
	PathColor        = color.RGBA{70, 100, 120, 220}
	ValidPlaceColor  = color.RGBA{50, 205, 50, 120}
	InvalidColor     = color.RGBA{220, 60, 60, 120}
	RangeColor       = color.RGBA{255, 255, 255, 40}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	SelectionColor   = color.RGBA{255, 215, 0, 255}
	HealthBarBack    = color.RGBA{60, 0, 0, 255}
	HealthBarFront   = color.RGBA{50, 205, 50, 255}
	EnemyShotColor   = color.RGBA{231, 76, 60, 255}
	HUDColor         = color.RGBA{30, 32, 44, 255}
	SlowRingColor    = color.RGBA{120, 200, 255, 255}
	WaveButtonColor  = color.RGBA{40, 90, 140, 255}
	PauseColor       = color.RGBA{220, 180, 60, 255}
	PlayColor        = color.RGBA{60, 200, 90, 255}

	// Цвета индикатора фазы
	IdleStateColor    = color.RGBA{70, 130, 180, 255}
	WaveStateColor    = color.RGBA{50, 205, 50, 255}
	BoostStateColor   = color.RGBA{255, 140, 0, 255}
	VictoryStateColor = color.RGBA{255, 215, 0, 255}
	DefeatStateColor  = color.RGBA{220, 20, 60, 255}

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x3
	}
)
