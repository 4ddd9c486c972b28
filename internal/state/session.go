// internal/state/session.go
package state

import (
	"coin-tower-defense/internal/app"

	"golang.org/x/image/font"
)

// Session — то, что экраны делят между собой: партия, шрифты и наблюдатель кадров.
type Session struct {
	Game      *app.Game
	Face      font.Face
	TitleFace font.Face
	// OnFrame получает снимок после каждого шага; nil — никому не нужен.
	OnFrame func(app.Snapshot)
	// OnReject зовется, когда команда игрока не прошла (нет золота, занято, ...).
	OnReject func()
}

func (s *Session) publish(snap app.Snapshot) {
	if s.OnFrame != nil {
		s.OnFrame(snap)
	}
}

func (s *Session) reject() {
	if s.OnReject != nil {
		s.OnReject()
	}
}
