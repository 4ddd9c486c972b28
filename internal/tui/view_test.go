package tui

import (
	"strings"
	"testing"

	"coin-tower-defense/internal/app"
	"coin-tower-defense/internal/config"
	"coin-tower-defense/internal/defs"

	"github.com/gdamore/tcell/v2"
)

func newTestView(t *testing.T) (*View, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return NewView(screen, app.NewDefaultGame(1)), screen
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(mainc)
	}
	return b.String()
}

func TestFitGridMatchesTerminal(t *testing.T) {
	v, _ := newTestView(t)
	v.FitGrid()
	if v.game.Grid.Cols != 40 || v.game.Grid.Rows != 20 {
		t.Fatalf("grid %dx%d, want 40x20", v.game.Grid.Cols, v.game.Grid.Rows)
	}
}

func TestKeyCommands(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		want command
	}{
		{tcell.KeyRune, 'u', cmdUpgrade},
		{tcell.KeyRune, ' ', cmdWave},
		{tcell.KeyRune, '2', cmdTower2},
		{tcell.KeyEnter, 0, cmdAct},
		{tcell.KeyCtrlC, 0, cmdQuit},
		{tcell.KeyRune, 'z', cmdNone},
	}
	for _, c := range cases {
		if got := keyCommand(c.key, c.r); got != c.want {
			t.Errorf("keyCommand(%v, %q) = %v, want %v", c.key, c.r, got, c.want)
		}
	}
}

func TestBuildUpgradeSellFlow(t *testing.T) {
	v, _ := newTestView(t)
	g := v.game
	rejected := 0
	v.OnReject = func() { rejected++ }

	v.apply(cmdTower1)
	if v.building != defs.TowerMiner {
		t.Fatalf("building %q, want MINER", v.building)
	}
	v.apply(cmdAct) // курсор в (0,0), клетка свободна
	if g.Towers.Count() != 1 || g.State.Gold != config.StartingGold-50 {
		t.Fatalf("placement failed: towers=%d gold=%d", g.Towers.Count(), g.State.Gold)
	}

	// повторный Enter по занятой клетке выбирает башню
	v.apply(cmdAct)
	if _, ok := g.SelectedTower(); !ok {
		t.Fatal("tower under cursor should be selected")
	}
	if rejected != 0 {
		t.Fatalf("unexpected rejections: %d", rejected)
	}

	v.apply(cmdUpgrade) // 25 золота из 50
	tower, _ := g.SelectedTower()
	if tower.Level != 2 {
		t.Fatalf("level %d, want 2", tower.Level)
	}
	v.apply(cmdSell)
	if g.Towers.Count() != 0 {
		t.Fatal("tower should be sold")
	}
	v.apply(cmdSell)
	if rejected != 1 || v.message == "" {
		t.Fatalf("selling nothing should be reported, rejected=%d", rejected)
	}
}

func TestCursorStaysOnGrid(t *testing.T) {
	v, _ := newTestView(t)
	v.apply(cmdUp)
	v.apply(cmdLeft)
	if v.cursorRow != 0 || v.cursorCol != 0 {
		t.Fatalf("cursor escaped to (%d,%d)", v.cursorRow, v.cursorCol)
	}
	for i := 0; i < 100; i++ {
		v.apply(cmdRight)
	}
	if v.cursorCol != v.game.Grid.Cols-1 {
		t.Fatalf("cursor col %d, want %d", v.cursorCol, v.game.Grid.Cols-1)
	}
}

func TestDrawShowsTowerAndHUD(t *testing.T) {
	v, screen := newTestView(t)
	v.FitGrid()
	v.apply(cmdTower1)
	v.apply(cmdAct)
	v.Step(0.016)

	if mainc, _, _, _ := screen.GetContent(0, 0); mainc != 'M' {
		t.Fatalf("tower glyph %q at (0,0), want 'M'", mainc)
	}
	hud := rowText(screen, v.game.Grid.Rows, 80)
	if !strings.HasPrefix(hud, "$50") {
		t.Fatalf("HUD line %q should start with gold", hud)
	}
}

func TestQuitAndRestart(t *testing.T) {
	v, _ := newTestView(t)
	if v.apply(cmdQuit) {
		t.Fatal("quit should stop the loop")
	}
	v.game.State.GameOver = true
	v.game.State.Gold = 0
	v.apply(cmdRestart)
	if v.game.IsOver() || v.game.State.Gold != config.StartingGold {
		t.Fatal("restart should reset the game")
	}
}
