// internal/app/snapshot.go
package app

import (
	"coin-tower-defense/internal/component"
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/types"
	"image/color"
)

// TowerView — башня глазами отрисовки и инспектора
type TowerView struct {
	ID          types.EntityID `json:"id"`
	Type        defs.TowerType `json:"type"`
	Row         int            `json:"row"`
	Col         int            `json:"col"`
	X           float64        `json:"x"`
	Y           float64        `json:"y"`
	Level       int            `json:"level"`
	MaxLevel    int            `json:"max_level"`
	Damage      float64        `json:"damage"`
	Range       float64        `json:"range"`
	FireRate    float64        `json:"fire_rate"`
	Health      float64        `json:"health"`
	MaxHealth   float64        `json:"max_health"`
	Selected    bool           `json:"selected"`
	Flashing    bool           `json:"flashing"`
	Kills       int            `json:"kills"`
	UpgradeCost int            `json:"upgrade_cost"`
	SellValue   int            `json:"sell_value"`
	Target      types.EntityID `json:"target,omitempty"`
}

type EnemyView struct {
	ID        types.EntityID `json:"id"`
	Type      defs.EnemyType `json:"type"`
	X         float64        `json:"x"`
	Y         float64        `json:"y"`
	Health    float64        `json:"health"`
	MaxHealth float64        `json:"max_health"`
	Radius    float64        `json:"radius"`
	Slowed    bool           `json:"slowed"`
	Ranged    bool           `json:"ranged"`
	Progress  float64        `json:"progress"`
}

type ProjectileView struct {
	ID        types.EntityID       `json:"id"`
	X         float64              `json:"x"`
	Y         float64              `json:"y"`
	Kind      string               `json:"kind"` // "enemy" — снаряд башни, "tower" — стрелка
	Size      float64              `json:"size"`
	Color     color.RGBA           `json:"color"`
	EnemyShot bool                 `json:"enemy_shot"`
	Trail     []component.Position `json:"trail,omitempty"`
}

// Snapshot — все, что видно снаружи ядра за один кадр.
type Snapshot struct {
	Gold             int     `json:"gold"`
	Lives            int     `json:"lives"`
	Wave             int     `json:"wave"`
	WavesCompleted   int     `json:"waves_completed"`
	WaveInProgress   bool    `json:"wave_in_progress"`
	EnemiesRemaining int     `json:"enemies_remaining"`
	TimeScale        float64 `json:"time_scale"`
	SpeedIndex       int     `json:"speed_index"`
	AutoBoosted      bool    `json:"auto_boosted"`
	Paused           bool    `json:"paused"`
	GameOver         bool    `json:"game_over"`
	Victory          bool    `json:"victory"`
	GameTime         float64 `json:"game_time"`

	Stats       component.Stats  `json:"stats"`
	Towers      []TowerView      `json:"towers"`
	Enemies     []EnemyView      `json:"enemies"`
	Projectiles []ProjectileView `json:"projectiles"`
}

// Snapshot copies the current state; the result shares nothing with the game.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Gold:             g.State.Gold,
		Lives:            g.State.Lives,
		Wave:             g.Waves.CurrentWave(),
		WavesCompleted:   g.Waves.WavesCompleted(),
		WaveInProgress:   g.Waves.InProgress(),
		EnemiesRemaining: g.Waves.Remaining(),
		TimeScale:        g.State.TimeScale,
		SpeedIndex:       g.speedIndex,
		AutoBoosted:      g.auto.boosted,
		Paused:           g.State.Paused,
		GameOver:         g.State.GameOver,
		Victory:          g.State.Victory,
		GameTime:         g.gameTime,
		Stats:            g.Stats,
		Towers:           make([]TowerView, 0, g.Towers.Count()),
		Enemies:          make([]EnemyView, 0, g.Enemies.Count()),
		Projectiles:      make([]ProjectileView, 0, g.Projectiles.Count()),
	}
	for _, t := range g.Towers.All() {
		s.Towers = append(s.Towers, TowerView{
			ID: t.ID, Type: t.Type, Row: t.Row, Col: t.Col, X: t.X, Y: t.Y,
			Level: t.Level, MaxLevel: t.MaxLevel,
			Damage: t.Damage, Range: t.Range, FireRate: t.FireRate,
			Health: t.Value, MaxHealth: t.Max,
			Selected: t.Selected, Flashing: t.FlashTimer > 0, Kills: t.Kills,
			UpgradeCost: t.UpgradeCost(), SellValue: t.SellValue(), Target: t.Target,
		})
	}
	for _, e := range g.Enemies.All() {
		s.Enemies = append(s.Enemies, EnemyView{
			ID: e.ID, Type: e.Type, X: e.X, Y: e.Y,
			Health: e.Value, MaxHealth: e.Max, Radius: e.Radius,
			Slowed: e.IsSlowed(), Ranged: e.Ranged != nil,
			Progress: g.Path.Progress(e.X, e.Y),
		})
	}
	for _, p := range g.Projectiles.All() {
		s.Projectiles = append(s.Projectiles, ProjectileView{
			ID: p.ID, X: p.X, Y: p.Y, Kind: p.Target.Kind.String(),
			Size: p.Size, Color: p.Color, EnemyShot: p.IsEnemyShot(),
			Trail: append([]component.Position(nil), p.Trail...),
		})
	}
	return s
}
