// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton — кнопка ручного ускорения, цвет зависит от выбранной скорости
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	CurrentState   int
	Boosted        bool // автоускорение сейчас активно
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	clr := b.StateColors[b.CurrentState%len(b.StateColors)]
	if b.Boosted && b.CurrentState == 0 {
		clr = b.StateColors[len(b.StateColors)-1]
	}

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	// Левый треугольник
	fillPolygon(screen, clr,
		[2]float32{b.X - width, b.Y - height/2},
		[2]float32{b.X, b.Y},
		[2]float32{b.X - width, b.Y + height/2},
	)
	// Правый треугольник
	fillPolygon(screen, clr,
		[2]float32{b.X - width + offset, b.Y - height/2},
		[2]float32{b.X + offset, b.Y},
		[2]float32{b.X - width + offset, b.Y + height/2},
	)
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// форма сложная, проверяем по кругу
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// CanToggle защищает от двойных кликов.
func (b *SpeedButton) CanToggle(cooldown time.Duration) bool {
	return time.Since(b.LastToggleTime) >= cooldown
}

// SetState синхронизирует кнопку с индексом скорости игры.
func (b *SpeedButton) SetState(index int) {
	if index != b.CurrentState {
		b.CurrentState = index
		b.LastClickTime = time.Now()
	}
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}
