// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	LivesCols          = 10
	LivesCircleRadius  = 5.0
	LivesCircleSpacing = 3.0
)

var (
	lifeFullColor  = color.RGBA{R: 70, G: 130, B: 220, A: 255}
	lifeLowColor   = color.RGBA{R: 220, G: 50, B: 50, A: 255}
	lifeEmptyColor = color.RGBA{R: 10, G: 10, B: 10, A: 255}
)

// LivesIndicator отображает оставшиеся жизни сеткой кружков.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Draw: до половины запаса кружки синие, ниже половины — все красные.
func (i *LivesIndicator) Draw(screen *ebiten.Image, face font.Face, lives, maxLives int) {
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	half := maxLives / 2

	for j := 0; j < maxLives; j++ {
		row := j / LivesCols
		col := j % LivesCols
		cx := i.X + float32(col)*step + LivesCircleRadius
		cy := i.Y + float32(row)*step + LivesCircleRadius

		clr := lifeEmptyColor
		if j < lives {
			clr = lifeFullColor
			if lives <= half {
				clr = lifeLowColor
			}
		}
		vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, clr, true)
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, color.White, true)
	}

	label := "Lives " + strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	text.Draw(screen, label, face, int(i.X), int(i.Y)-4, color.White)
}
