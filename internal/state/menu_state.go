// internal/state/menu_state.go
package state

import (
	"fmt"
	"image/color"

	"coin-tower-defense/internal/config"
	"coin-tower-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState — титульный экран со списком башен и врагов
type MenuState struct {
	sm      *StateMachine
	session *Session
	lines   []string
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {
	m.lines = m.lines[:0]
	m.lines = append(m.lines, "Towers:")
	for i, id := range defs.TowerOrder {
		def, _ := defs.Tower(id)
		m.lines = append(m.lines, fmt.Sprintf("  [%d] %-10s $%-4d dmg %-4.0f range %-4.0f rate %.1f/s",
			i+1, def.Name, def.Cost, def.Damage, def.Range, def.FireRate))
	}
	m.lines = append(m.lines, "", "Coins:")
	for _, id := range defs.EnemyOrder {
		def, _ := defs.Enemy(id)
		m.lines = append(m.lines, fmt.Sprintf("  %-10s hp %-4.0f speed %-3.0f reward %-3d from wave %d",
			def.Name, def.Health, def.Speed, def.Reward, def.UnlockWave))
	}
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "COIN TOWER DEFENSE", m.session.TitleFace, 40, 60, config.SelectionColor)
	y := 100
	for _, line := range m.lines {
		text.Draw(screen, line, m.session.Face, 40, y, config.TextLightColor)
		y += 16
	}
	text.Draw(screen, fmt.Sprintf("Survive %d waves. Press SPACE or click to start.", config.VictoryWaves),
		m.session.Face, 40, y+24, color.RGBA{R: 180, G: 200, B: 220, A: 255})
}

func (m *MenuState) Exit() {}
