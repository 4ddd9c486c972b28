// internal/tui/view.go
package tui

import (
	"fmt"
	"image/color"

	"coin-tower-defense/internal/app"
	"coin-tower-defense/internal/config"
	"coin-tower-defense/internal/defs"

	"github.com/gdamore/tcell/v2"
)

// cellWidth — сколько колонок терминала занимает одна клетка поля
const cellWidth = 2

var (
	styleDefault = tcell.StyleDefault
	stylePath    = tcell.StyleDefault.Background(tcell.NewRGBColor(40, 55, 70))
	styleCursor  = tcell.StyleDefault.Reverse(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleGold    = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleAlert   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleShot    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHostile = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// View — терминальное представление партии: поле клетками по две колонки,
// под ним строки состояния.
type View struct {
	screen    tcell.Screen
	game      *app.Game
	cursorRow int
	cursorCol int
	building  defs.TowerType
	message   string

	OnFrame  func(app.Snapshot) // после каждого шага; может быть nil
	OnReject func()             // команда игрока отклонена
}

func NewView(screen tcell.Screen, game *app.Game) *View {
	return &View{screen: screen, game: game}
}

// FitGrid подгоняет поле под терминал: по строке на клетку, снизу 4 строки HUD.
func (v *View) FitGrid() {
	w, h := v.screen.Size()
	cols := max(w/cellWidth, 10)
	rows := max(h-4, 5)
	if cols != v.game.Grid.Cols || rows != v.game.Grid.Rows {
		v.game.Resize(cols, rows)
	}
	v.clampCursor()
}

func (v *View) clampCursor() {
	v.cursorRow = min(max(v.cursorRow, 0), v.game.Grid.Rows-1)
	v.cursorCol = min(max(v.cursorCol, 0), v.game.Grid.Cols-1)
}

func (v *View) put(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// cellOf переводит пиксельные координаты ядра в клетку.
func (v *View) cellOf(x, y float64) (row, col int) {
	return v.game.Grid.ToGrid(x, y)
}

// Draw рисует снимок целиком.
func (v *View) Draw(snap app.Snapshot) {
	v.screen.Clear()
	grid := v.game.Grid

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			style := styleDefault
			ch := ' '
			if grid.IsPath(row, col) {
				style = stylePath
				ch = '·'
			}
			v.screen.SetContent(col*cellWidth, row, ch, nil, style)
			v.screen.SetContent(col*cellWidth+1, row, ' ', nil, style)
		}
	}

	for _, t := range snap.Towers {
		def, _ := defs.Tower(t.Type)
		style := styleDefault.Foreground(rgb(def.Visuals.Color)).Bold(true)
		if t.Flashing {
			style = styleAlert
		}
		if t.Selected {
			style = style.Underline(true)
		}
		v.put(t.Col*cellWidth, t.Row, def.Visuals.Glyph+fmt.Sprint(t.Level), style)
	}

	for _, p := range snap.Projectiles {
		row, col := v.cellOf(p.X, p.Y)
		style := styleShot
		if p.EnemyShot {
			style = styleHostile
		}
		v.screen.SetContent(col*cellWidth+1, row, '*', nil, style)
	}

	for _, e := range snap.Enemies {
		def, _ := defs.Enemy(e.Type)
		row, col := v.cellOf(e.X, e.Y)
		style := stylePath.Foreground(rgb(def.Visuals.Color)).Bold(true)
		if e.Slowed {
			style = style.Italic(true)
		}
		v.put(col*cellWidth, row, def.Visuals.Glyph, style)
	}

	// курсор
	mainc, _, style, _ := v.screen.GetContent(v.cursorCol*cellWidth, v.cursorRow)
	v.screen.SetContent(v.cursorCol*cellWidth, v.cursorRow, mainc, nil, style.Reverse(true))
	if mainc == ' ' {
		v.screen.SetContent(v.cursorCol*cellWidth, v.cursorRow, '[', nil, styleCursor)
		v.screen.SetContent(v.cursorCol*cellWidth+1, v.cursorRow, ']', nil, styleCursor)
	}

	v.drawHUD(snap, grid.Rows)
	v.screen.Show()
}

func (v *View) drawHUD(snap app.Snapshot, top int) {
	v.put(0, top, fmt.Sprintf("$%d", snap.Gold), styleGold)
	lives := fmt.Sprintf("  lives %d/%d  wave %d/%d  left %d  x%.0f", snap.Lives, config.StartingLives,
		snap.Wave, config.VictoryWaves, snap.EnemiesRemaining, snap.TimeScale)
	if snap.AutoBoosted {
		lives += " auto"
	}
	v.put(len(fmt.Sprintf("$%d", snap.Gold)), top, lives, styleHUD)

	build := "build: -"
	if v.building != "" {
		def, _ := defs.Tower(v.building)
		build = fmt.Sprintf("build: %s ($%d)", def.Name, def.Cost)
	}
	v.put(0, top+1, build, styleHUD)

	for _, t := range snap.Towers {
		if !t.Selected {
			continue
		}
		upgrade := "max"
		if t.UpgradeCost > 0 {
			upgrade = fmt.Sprintf("$%d", t.UpgradeCost)
		}
		v.put(0, top+2, fmt.Sprintf("%s L%d dmg %.0f rng %.0f hp %.0f/%.0f kills %d  [u]pgrade %s [s]ell +$%d",
			t.Type, t.Level, t.Damage, t.Range, t.Health, t.MaxHealth, t.Kills, upgrade, t.SellValue), styleHUD)
	}

	status := v.message
	switch {
	case snap.Victory:
		status = "VICTORY! [r]estart [q]uit"
	case snap.GameOver:
		status = "GAME OVER. [r]estart [q]uit"
	case snap.Paused:
		status = "PAUSED. [p] to resume"
	case status == "":
		status = "[1-3] tower [enter] place/select [space] wave [f] speed [p] pause [q] quit"
	}
	style := styleHUD
	if snap.GameOver || snap.Victory {
		style = styleAlert
	}
	v.put(0, top+3, status, style)
}
