// internal/ui/tower_palette.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"coin-tower-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TowerPalette — ряд кнопок выбора башни для постройки.
type TowerPalette struct {
	X, Y     int
	buttons  []*Button
	types    []defs.TowerType
	Selected defs.TowerType // "" — режим постройки выключен
}

// NewTowerPalette раскладывает кнопки в порядке определений.
func NewTowerPalette(x, y, buttonW, buttonH int) *TowerPalette {
	p := &TowerPalette{X: x, Y: y}
	for i, id := range defs.TowerOrder {
		def, _ := defs.Tower(id)
		left := x + i*(buttonW+6)
		rect := image.Rect(left, y, left+buttonW, y+buttonH)
		label := fmt.Sprintf("%d %s $%d", i+1, def.Name, def.Cost)
		p.buttons = append(p.buttons, NewButton(rect, label, DarkenRGBA(def.Visuals.Color)))
		p.types = append(p.types, id)
	}
	return p
}

// Types возвращает типы башен в порядке кнопок.
func (p *TowerPalette) Types() []defs.TowerType { return p.types }

// SelectIndex выбирает башню по номеру горячей клавиши (с нуля).
// Повторный выбор той же башни снимает выделение.
func (p *TowerPalette) SelectIndex(i int) {
	if i < 0 || i >= len(p.types) {
		return
	}
	if p.Selected == p.types[i] {
		p.Selected = ""
		return
	}
	p.Selected = p.types[i]
}

func (p *TowerPalette) Clear() { p.Selected = "" }

// HandleClick возвращает true, если клик пришелся на палитру.
func (p *TowerPalette) HandleClick(x, y int) bool {
	for i, b := range p.buttons {
		if b.Contains(x, y) {
			if !b.Disabled {
				p.SelectIndex(i)
			}
			return true
		}
	}
	return false
}

// Refresh гасит кнопки, на которые не хватает золота.
func (p *TowerPalette) Refresh(gold int) {
	for i, b := range p.buttons {
		def, _ := defs.Tower(p.types[i])
		b.Disabled = def.Cost > gold
	}
}

func (p *TowerPalette) Draw(screen *ebiten.Image, face font.Face, cursorX, cursorY int) {
	for i, b := range p.buttons {
		b.Draw(screen, face, cursorX, cursorY)
		if p.types[i] == p.Selected {
			r := b.Rect
			vector.StrokeRect(screen, float32(r.Min.X)-1, float32(r.Min.Y)-1, float32(r.Dx())+2, float32(r.Dy())+2,
				2, color.RGBA{R: 255, G: 215, B: 0, A: 255}, true)
		}
	}
}

// DarkenRGBA — приглушенный цвет фона кнопки
func DarkenRGBA(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
