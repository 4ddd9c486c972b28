// internal/tui/input.go
package tui

import (
	"coin-tower-defense/internal/defs"

	"github.com/gdamore/tcell/v2"
)

type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdUp
	cmdDown
	cmdLeft
	cmdRight
	cmdAct // поставить башню или выбрать существующую под курсором
	cmdUpgrade
	cmdSell
	cmdWave
	cmdPause
	cmdSpeed
	cmdRestart
	cmdCancel
	cmdTower1
	cmdTower2
	cmdTower3
)

// keyCommand сопоставляет клавишу команде.
func keyCommand(key tcell.Key, r rune) command {
	switch key {
	case tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyEscape:
		return cmdCancel
	case tcell.KeyUp:
		return cmdUp
	case tcell.KeyDown:
		return cmdDown
	case tcell.KeyLeft:
		return cmdLeft
	case tcell.KeyRight:
		return cmdRight
	case tcell.KeyEnter:
		return cmdAct
	case tcell.KeyRune:
	default:
		return cmdNone
	}
	switch r {
	case 'q':
		return cmdQuit
	case 'k':
		return cmdUp
	case 'j':
		return cmdDown
	case 'h':
		return cmdLeft
	case 'l':
		return cmdRight
	case 'u':
		return cmdUpgrade
	case 's':
		return cmdSell
	case ' ':
		return cmdWave
	case 'p':
		return cmdPause
	case 'f':
		return cmdSpeed
	case 'r':
		return cmdRestart
	case '1':
		return cmdTower1
	case '2':
		return cmdTower2
	case '3':
		return cmdTower3
	}
	return cmdNone
}

// HandleEvent обрабатывает событие терминала; false — пора выходить.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.apply(keyCommand(ev.Key(), ev.Rune()))
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return true
		}
		x, y := ev.Position()
		if y < v.game.Grid.Rows && x/cellWidth < v.game.Grid.Cols {
			v.cursorRow, v.cursorCol = y, x/cellWidth
			return v.apply(cmdAct)
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.FitGrid()
	}
	return true
}

func (v *View) apply(cmd command) bool {
	v.message = ""
	g := v.game
	switch cmd {
	case cmdQuit:
		return false
	case cmdUp:
		v.cursorRow--
	case cmdDown:
		v.cursorRow++
	case cmdLeft:
		v.cursorCol--
	case cmdRight:
		v.cursorCol++
	case cmdCancel:
		v.building = ""
		g.Towers.ClearSelection()
	case cmdTower1, cmdTower2, cmdTower3:
		i := int(cmd - cmdTower1)
		if i < len(defs.TowerOrder) {
			if v.building == defs.TowerOrder[i] {
				v.building = ""
			} else {
				v.building = defs.TowerOrder[i]
			}
		}
	case cmdAct:
		v.act()
	case cmdUpgrade:
		v.report(g.UpgradeSelectedTower(), "can't upgrade")
	case cmdSell:
		v.report(g.SellSelectedTower(), "nothing to sell")
	case cmdWave:
		v.report(g.StartWave(), "wave already running")
	case cmdPause:
		g.TogglePause()
	case cmdSpeed:
		g.ToggleManualSpeed()
	case cmdRestart:
		if g.IsOver() {
			g.Restart()
			v.building = ""
		}
	}
	v.clampCursor()
	return true
}

func (v *View) act() {
	g := v.game
	if v.building != "" {
		if g.PlaceTower(v.cursorRow, v.cursorCol, v.building) {
			return
		}
		if _, occupied := g.Towers.AtCell(v.cursorRow, v.cursorCol); !occupied {
			v.report(false, "can't build here")
			return
		}
	}
	center := g.Grid.CellCenter(v.cursorRow, v.cursorCol)
	g.SelectTowerAt(center.X, center.Y)
}

func (v *View) report(ok bool, msg string) {
	if !ok {
		v.message = msg
		if v.OnReject != nil {
			v.OnReject()
		}
	}
}
