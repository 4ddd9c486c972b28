// internal/state/game_state.go
package state

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"coin-tower-defense/internal/app"
	"coin-tower-defense/internal/config"
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/ui"
	"coin-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	minGridCols = 10
	minGridRows = 5
)

// GameState — экран партии: поле, HUD и управление с клавиатуры и мыши
type GameState struct {
	sm       *StateMachine
	session  *Session
	game     *app.Game
	renderer *render.GridRenderer

	palette       *ui.TowerPalette
	infoPanel     *ui.InfoPanel
	waveButton    *ui.Button
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	indicator     *ui.StateIndicator
	waveIndicator *ui.WaveIndicator
	lives         *ui.LivesIndicator

	width, height int
	hudTop        int
	hover         render.Hover
	snap          app.Snapshot
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	g := session.Game
	palette := &render.Palette{
		BackgroundColor:  config.BackgroundColor,
		GridLineColor:    config.GridLineColor,
		PathColor:        config.PathColor,
		ValidPlaceColor:  config.ValidPlaceColor,
		InvalidColor:     config.InvalidColor,
		RangeColor:       config.RangeColor,
		TextLightColor:   config.TextLightColor,
		TowerStrokeColor: config.TowerStrokeColor,
		SelectionColor:   config.SelectionColor,
		HealthBarBack:    config.HealthBarBack,
		HealthBarFront:   config.HealthBarFront,
		SlowRingColor:    config.SlowRingColor,
		StrokeWidth:      config.StrokeWidth,
	}
	gs := &GameState{
		sm:        sm,
		session:   session,
		game:      g,
		renderer:  render.NewGridRenderer(g.Grid, g.Path, session.Face, palette),
		infoPanel: ui.NewInfoPanel(session.Face, session.TitleFace),
	}
	gs.layout(int(g.Grid.Width()), int(g.Grid.Height())+config.HUDHeight)
	gs.snap = g.Snapshot()
	return gs
}

// layout раскладывает HUD под полем заданной ширины.
func (g *GameState) layout(width, height int) {
	g.width, g.height = width, height
	g.hudTop = int(g.game.Grid.Height())
	top := g.hudTop

	var selected defs.TowerType
	if g.palette != nil {
		selected = g.palette.Selected
	}
	g.palette = ui.NewTowerPalette(config.PaletteX, top+10, config.PaletteButtonW, config.PaletteButtonH)
	g.palette.Selected = selected
	waveTop := top + 20 + config.PaletteButtonH
	g.waveButton = ui.NewButton(
		image.Rect(config.PaletteX, waveTop, config.PaletteX+config.WaveButtonW, waveTop+config.PaletteButtonH),
		"Start wave", config.WaveButtonColor)

	controlsY := float32(waveTop + config.PaletteButtonH/2)
	controlsX := float32(config.PaletteX + config.WaveButtonW + 30)
	g.speedButton = ui.NewSpeedButton(controlsX, controlsY, config.ControlButtonSize, config.SpeedButtonColors)
	g.pauseButton = ui.NewPauseButton(controlsX+40, controlsY, config.ControlButtonSize, config.PauseColor, config.PlayColor)
	g.indicator = ui.NewStateIndicator(controlsX+80, controlsY, config.IndicatorRadius)
	g.waveIndicator = ui.NewWaveIndicator(width/2, 20, config.TextLightColor)
	g.lives = ui.NewLivesIndicator(10, float32(top+44))
	g.infoPanel.SetBounds(width, top, height)
}

// Resize подгоняет поле под окно: клетки целиком, HUD снизу.
func (g *GameState) Resize(width, height int) {
	cols := max(width/int(config.CellSize), minGridCols)
	rows := max((height-config.HUDHeight)/int(config.CellSize), minGridRows)
	if cols != g.game.Grid.Cols || rows != g.game.Grid.Rows {
		log.Printf("Resize: поле %dx%d -> %dx%d", g.game.Grid.Cols, g.game.Grid.Rows, cols, rows)
		g.game.Resize(cols, rows)
		g.renderer.RenderMapImage()
	}
	g.layout(width, height)
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.handleKeys()

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if y >= g.hudTop || g.infoPanel.Contains(x, y) {
			g.handleUIClick(x, y)
		} else {
			g.handleFieldClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.palette.Clear()
	}
	g.updateHover(x, y)

	g.game.Update(deltaTime)

	g.snap = g.game.Snapshot()
	g.syncWidgets()
	g.session.publish(g.snap)
}

func (g *GameState) handleKeys() {
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5} {
		if i < len(g.palette.Types()) && inpututil.IsKeyJustPressed(key) {
			g.palette.SelectIndex(i)
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.palette.Clear()
		g.game.Towers.ClearSelection()
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.check(g.game.UpgradeSelectedTower())
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.check(g.game.SellSelectedTower())
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.check(g.game.StartWave())
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.togglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.toggleSpeed()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if g.game.IsOver() {
			g.restart()
		}
	}
}

func (g *GameState) handleUIClick(x, y int) {
	cooldown := time.Duration(config.ClickCooldown) * time.Millisecond
	switch action := g.infoPanel.HandleClick(x, y); action {
	case ui.PanelUpgrade:
		g.check(g.game.UpgradeSelectedTower())
		return
	case ui.PanelSell:
		g.check(g.game.SellSelectedTower())
		return
	}
	switch {
	case g.palette.HandleClick(x, y):
	case g.waveButton.IsClicked(x, y):
		g.check(g.game.StartWave())
	case g.speedButton.IsClicked(x, y):
		if g.speedButton.CanToggle(cooldown) {
			g.toggleSpeed()
		}
	case g.pauseButton.IsClicked(x, y):
		if g.pauseButton.CanToggle(cooldown) {
			g.togglePause()
		}
	}
}

// handleFieldClick: в режиме постройки ставит башню, иначе выбирает существующую.
func (g *GameState) handleFieldClick(x, y int) {
	row, col := g.game.Grid.ToGrid(float64(x), float64(y))
	if g.palette.Selected != "" {
		if g.game.PlaceTower(row, col, g.palette.Selected) {
			return
		}
		if _, occupied := g.game.Towers.AtCell(row, col); !occupied {
			g.session.reject()
			return
		}
	}
	g.game.SelectTowerAt(float64(x), float64(y))
}

// check сообщает об отклоненной команде.
func (g *GameState) check(accepted bool) {
	if !accepted {
		g.session.reject()
	}
}

func (g *GameState) updateHover(x, y int) {
	g.hover = render.Hover{}
	if g.palette.Selected == "" || y >= g.hudTop {
		return
	}
	row, col := g.game.Grid.ToGrid(float64(x), float64(y))
	def, _ := defs.Tower(g.palette.Selected)
	g.hover = render.Hover{
		Active: true,
		Row:    row,
		Col:    col,
		Valid:  g.game.CanPlace(row, col, g.palette.Selected),
		Range:  def.Range,
	}
}

func (g *GameState) togglePause() {
	if g.game.TogglePause() {
		g.pauseButton.TogglePause()
	}
}

func (g *GameState) toggleSpeed() {
	if g.game.ToggleManualSpeed() {
		g.speedButton.ToggleState()
	}
}

func (g *GameState) restart() {
	log.Println("Restart")
	g.game.Restart()
	g.palette.Clear()
	g.infoPanel.Hide()
}

// syncWidgets подтягивает виджеты к состоянию ядра после шага.
func (g *GameState) syncWidgets() {
	g.palette.Refresh(g.snap.Gold)
	g.infoPanel.Sync(g.snap)
	g.infoPanel.Update()
	g.waveButton.Disabled = g.snap.WaveInProgress || g.snap.GameOver || g.snap.Victory
	g.speedButton.SetState(g.snap.SpeedIndex)
	g.speedButton.Boosted = g.snap.AutoBoosted
	g.pauseButton.SetPaused(g.snap.Paused)
}

func (g *GameState) phaseColor() color.RGBA {
	switch {
	case g.snap.Victory:
		return config.VictoryStateColor
	case g.snap.GameOver:
		return config.DefeatStateColor
	case g.snap.AutoBoosted:
		return config.BoostStateColor
	case g.snap.WaveInProgress:
		return config.WaveStateColor
	}
	return config.IdleStateColor
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.snap, g.hover)

	cx, cy := ebiten.CursorPosition()
	face := g.session.Face

	vector.DrawFilledRect(screen, 0, float32(g.hudTop), float32(g.width), float32(g.height-g.hudTop), config.HUDColor, false)
	status := fmt.Sprintf("Gold $%d", g.snap.Gold)
	text.Draw(screen, status, g.session.TitleFace, 10, g.hudTop+20, config.SelectionColor)
	g.lives.Draw(screen, face, g.snap.Lives, config.StartingLives)
	waveLine := fmt.Sprintf("Wave %d/%d  left %d", g.snap.Wave, config.VictoryWaves, g.snap.EnemiesRemaining)
	text.Draw(screen, waveLine, face, 10, g.height-10, config.TextLightColor)

	g.palette.Draw(screen, face, cx, cy)
	g.waveButton.Draw(screen, face, cx, cy)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.indicator.Draw(screen, g.phaseColor())
	g.waveIndicator.Draw(screen, g.session.TitleFace, g.snap.Wave)
	g.infoPanel.Draw(screen, cx, cy)

	switch {
	case g.snap.Victory:
		g.drawBanner(screen, "VICTORY", fmt.Sprintf("%d waves held. Press R to play again", g.snap.WavesCompleted))
	case g.snap.GameOver:
		g.drawBanner(screen, "GAME OVER", fmt.Sprintf("Reached wave %d. Press R to restart", g.snap.Wave))
	case g.snap.Paused:
		g.drawBanner(screen, "PAUSED", "Press P to resume")
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  x%.0f", ebiten.ActualTPS(), g.snap.TimeScale), 4, 0)
}

func (g *GameState) drawBanner(screen *ebiten.Image, title, hint string) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.hudTop), color.RGBA{A: 128}, false)
	titleBounds := text.BoundString(g.session.TitleFace, title)
	hintBounds := text.BoundString(g.session.Face, hint)
	midY := g.hudTop / 2
	text.Draw(screen, title, g.session.TitleFace, (g.width-titleBounds.Dx())/2, midY, color.White)
	text.Draw(screen, hint, g.session.Face, (g.width-hintBounds.Dx())/2, midY+24, config.TextLightColor)
}

func (g *GameState) Exit() {}
