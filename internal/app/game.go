// internal/app/game.go
package app

import (
	"coin-tower-defense/internal/component"
	"coin-tower-defense/internal/config"
	"coin-tower-defense/internal/entity"
	"coin-tower-defense/internal/event"
	"coin-tower-defense/internal/system"
	"coin-tower-defense/internal/types"
	"coin-tower-defense/internal/utils"
	"coin-tower-defense/pkg/gridmap"
	"log"
)

// Game holds the main game state and logic.
type Game struct {
	Grid            *gridmap.Grid
	Path            *gridmap.Path
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	Towers      *system.TowerRegistry
	Enemies     *system.EnemyRegistry
	Projectiles *system.ProjectileRegistry
	Waves       *system.WaveScheduler

	State component.GameState
	Stats component.Stats

	ids        *entity.IDAllocator
	auto       autoSpeed
	speedIndex int     // индекс в config.ManualSpeeds; 0 — автоускорение разрешено
	gameTime   float64 // реальное время партии без пауз
}

// NewGame собирает игру на готовом поле и маршруте.
func NewGame(grid *gridmap.Grid, path *gridmap.Path, rng *utils.PRNGService) *Game {
	if grid == nil || path == nil {
		panic("grid and path cannot be nil")
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}

	ids := entity.NewIDAllocator()
	dispatcher := event.NewDispatcher()
	g := &Game{
		Grid:            grid,
		Path:            path,
		EventDispatcher: dispatcher,
		Rng:             rng,
		ids:             ids,
	}
	// Порядок сборки: снаряды, враги, башни, волны. Циклы разрываются
	// замыканиями и интерфейсом, который реализует сама игра.
	g.Projectiles = system.NewProjectileRegistry(ids, dispatcher)
	g.Enemies = system.NewEnemyRegistry(ids, path, g.Projectiles, dispatcher, g.liveTowers)
	g.Towers = system.NewTowerRegistry(ids, grid, g.Enemies, g.Projectiles, dispatcher)
	g.Waves = system.NewWaveScheduler(g.Enemies, rng, dispatcher, g.addGold)
	g.Projectiles.Bind(g)

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.TowerFired, listener)

	g.resetState()
	return g
}

// NewDefaultGame — поле config.GridCols × config.GridRows со стандартным маршрутом.
func NewDefaultGame(seed int64) *Game {
	grid := gridmap.NewGrid(config.GridCols, config.GridRows, config.CellSize)
	return NewGame(grid, gridmap.NewDefaultPath(grid), utils.NewPRNGService(seed))
}

func (g *Game) resetState() {
	g.State = component.GameState{
		Gold:      config.StartingGold,
		Lives:     config.StartingLives,
		TimeScale: 1,
	}
	g.Stats = component.Stats{}
	g.auto = autoSpeed{}
	g.speedIndex = 0
	g.gameTime = 0
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.TowerFired:
		l.game.Stats.ProjectilesFired++
		l.game.recordTowerFire()
	}
}

// Update progresses the game state by one frame. deltaTime is real time in
// seconds; it is clamped to config.MaxDeltaTime.
func (g *Game) Update(deltaTime float64) {
	if g.State.Paused || g.IsOver() {
		return
	}
	dt := utils.Clamp(deltaTime, 0, config.MaxDeltaTime)
	g.gameTime += dt

	g.updateAutoSpeed(dt)
	g.Towers.Update(dt)
	scaled := dt * g.State.TimeScale
	escaped := g.Enemies.Update(scaled)
	// полет снарядов не ускоряется
	g.Projectiles.Update(dt)
	g.Waves.Update(scaled)
	g.reconcile(escaped)
	g.checkVictory()
}

// reconcile pays for kills and charges lives for escapes.
func (g *Game) reconcile(escaped []*entity.Enemy) {
	for _, e := range g.Enemies.RemoveDead() {
		g.State.Gold += e.Reward
		g.Stats.EnemiesKilled++
		if e.LastHitBy != 0 {
			g.Towers.CreditKill(e.LastHitBy)
		}
		g.EventDispatcher.Emit(event.EnemyKilled, event.EnemyData{
			EnemyID: e.ID, Type: e.Type, Reward: e.Reward, KilledBy: e.LastHitBy,
		})
	}

	for _, e := range escaped {
		if g.State.GameOver {
			break
		}
		g.State.Lives--
		g.Stats.EnemiesEscaped++
		g.EventDispatcher.Emit(event.EnemyEscaped, event.EnemyData{EnemyID: e.ID, Type: e.Type})
		if g.State.Lives <= 0 {
			g.State.Lives = 0
			g.State.GameOver = true
			log.Printf("Поражение на волне %d", g.Waves.CurrentWave())
			g.EventDispatcher.Emit(event.GameOver, g.outcome())
		}
	}
}

func (g *Game) checkVictory() {
	if g.IsOver() || g.Waves.WavesCompleted() < config.VictoryWaves {
		return
	}
	g.State.Victory = true
	g.State.TimeScale = 1
	log.Printf("Победа: пройдено %d волн", g.Waves.WavesCompleted())
	g.EventDispatcher.Emit(event.Victory, g.outcome())
}

func (g *Game) outcome() event.OutcomeData {
	return event.OutcomeData{WavesCompleted: g.Waves.WavesCompleted(), Lives: g.State.Lives, Gold: g.State.Gold}
}

// IsOver — партия закончена поражением или победой
func (g *Game) IsOver() bool {
	return g.State.GameOver || g.State.Victory
}

func (g *Game) addGold(amount int) {
	g.State.Gold += amount
}

func (g *Game) liveTowers() []*entity.Tower {
	return g.Towers.All()
}

// --- TargetResolver ---

func (g *Game) EnemyByID(id types.EntityID) (*entity.Enemy, bool) {
	return g.Enemies.Get(id)
}

func (g *Game) TowerByID(id types.EntityID) (*entity.Tower, bool) {
	return g.Towers.Get(id)
}

// DamageTower: разрушенная башня уходит с поля в том же вызове.
func (g *Game) DamageTower(id types.EntityID, amount float64) bool {
	return g.Towers.Damage(id, amount)
}

// --- Public Accessors & Mutators ---

// Restart начинает партию заново на том же поле.
func (g *Game) Restart() {
	g.Towers.Clear()
	g.Enemies.Clear()
	g.Projectiles.Clear()
	g.Waves.Reset()
	g.Rng.Reseed()
	g.resetState()
}

// Resize перестраивает поле и маршрут под новый размер. Башни, попавшие за
// границу или на маршрут, сносятся без возврата золота.
func (g *Game) Resize(cols, rows int) {
	g.Grid.Resize(cols, rows)
	g.Path.Rebuild(g.Grid)
	g.Enemies.SetPath(g.Path)
	for _, t := range g.Towers.Revalidate() {
		log.Printf("Resize: башня %d в (%d,%d) снесена", t.ID, t.Row, t.Col)
	}
}

// GameTime — прошедшее реальное время партии в секундах
func (g *Game) GameTime() float64 { return g.gameTime }
