// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"coin-tower-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

func NewWaveIndicator(x, y int, clr color.Color) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            clr,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
	}
}

// Draw рисует номер волны по центру X; каждая десятая — красная.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	label := utils.ToRoman(waveNumber)

	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = color.RGBA{R: 230, G: 50, B: 50, A: 255}
	}

	bounds := text.BoundString(face, label)
	x := i.X - bounds.Dx()/2

	// Обводка
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, i.Y, textColor)
}
