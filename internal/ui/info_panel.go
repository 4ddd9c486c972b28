// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"coin-tower-defense/internal/app"
	"coin-tower-defense/internal/config"
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelWidth     = 290
	panelMargin    = 5
	animationSpeed = 20.0
	lineHeight     = 14
)

// PanelAction — что игрок нажал на панели
type PanelAction int

const (
	PanelNone PanelAction = iota
	PanelUpgrade
	PanelSell
)

// InfoPanel показывает характеристики выбранной башни и кнопки улучшения/продажи.
// Выезжает справа внутри полосы HUD.
type InfoPanel struct {
	IsVisible     bool
	TargetTower   types.EntityID
	fontFace      font.Face
	titleFontFace font.Face
	currentX      float64
	targetX       float64
	right         int
	top, bottom   int
	UpgradeButton *Button
	SellButton    *Button
	view          app.TowerView
}

func NewInfoPanel(face, titleFace font.Face) *InfoPanel {
	p := &InfoPanel{
		fontFace:      face,
		titleFontFace: titleFace,
		UpgradeButton: NewButton(image.Rectangle{}, "Upgrade", color.RGBA{R: 40, G: 110, B: 60, A: 255}),
		SellButton:    NewButton(image.Rectangle{}, "Sell", color.RGBA{R: 140, G: 60, B: 40, A: 255}),
	}
	p.SetBounds(config.ScreenWidth, config.HUDTop, config.ScreenHeight)
	return p
}

// SetBounds задает полосу HUD, в которой ездит панель. Панель прячется.
func (p *InfoPanel) SetBounds(right, top, bottom int) {
	p.right, p.top, p.bottom = right, top, bottom
	p.currentX = float64(right)
	p.targetX = float64(right)
	p.IsVisible = false
	p.TargetTower = 0
}

// Sync подгоняет панель под текущий выбор в снимке.
func (p *InfoPanel) Sync(snap app.Snapshot) {
	for _, t := range snap.Towers {
		if t.Selected {
			p.view = t
			p.TargetTower = t.ID
			p.IsVisible = true
			p.targetX = float64(p.right - panelWidth)
			p.UpgradeButton.Disabled = t.UpgradeCost == 0 || t.UpgradeCost > snap.Gold
			if t.UpgradeCost == 0 {
				p.UpgradeButton.Text = "Max level"
			} else {
				p.UpgradeButton.Text = fmt.Sprintf("Upgrade $%d", t.UpgradeCost)
			}
			p.SellButton.Text = fmt.Sprintf("Sell +$%d", t.SellValue)
			return
		}
	}
	p.Hide()
}

func (p *InfoPanel) Hide() {
	p.targetX = float64(p.right)
}

// Update двигает панель к целевой позиции.
func (p *InfoPanel) Update() {
	if p.currentX == p.targetX {
		return
	}
	diff := p.targetX - p.currentX
	if math.Abs(diff) < animationSpeed {
		p.currentX = p.targetX
	} else if diff > 0 {
		p.currentX += animationSpeed
	} else {
		p.currentX -= animationSpeed
	}
	if p.currentX >= float64(p.right) {
		p.IsVisible = false
		p.TargetTower = 0
	}
}

// Contains — клик внутри выехавшей панели
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && p.rect().Overlaps(image.Rect(x, y, x+1, y+1))
}

// HandleClick разбирает клик по кнопкам панели.
func (p *InfoPanel) HandleClick(x, y int) PanelAction {
	if !p.IsVisible {
		return PanelNone
	}
	p.layoutButtons()
	switch {
	case p.UpgradeButton.IsClicked(x, y):
		return PanelUpgrade
	case p.SellButton.IsClicked(x, y):
		return PanelSell
	}
	return PanelNone
}

func (p *InfoPanel) rect() image.Rectangle {
	return image.Rect(
		int(p.currentX)+panelMargin,
		p.top+panelMargin,
		int(p.currentX)+panelWidth-panelMargin,
		p.bottom-panelMargin,
	)
}

func (p *InfoPanel) layoutButtons() {
	r := p.rect()
	btnWidth, btnHeight := 120, 24
	p.UpgradeButton.Rect = image.Rect(r.Max.X-btnWidth-10, r.Min.Y+10, r.Max.X-10, r.Min.Y+10+btnHeight)
	p.SellButton.Rect = image.Rect(r.Max.X-btnWidth-10, r.Min.Y+20+btnHeight, r.Max.X-10, r.Min.Y+20+2*btnHeight)
}

func (p *InfoPanel) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	if !p.IsVisible && p.currentX >= float64(p.right) {
		return
	}
	r := p.rect()
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, borderColor, true)

	if p.TargetTower == 0 {
		return
	}
	p.drawTowerInfo(screen, r.Min.X+10, r.Min.Y+16)
	p.layoutButtons()
	p.UpgradeButton.Draw(screen, p.fontFace, cursorX, cursorY)
	p.SellButton.Draw(screen, p.fontFace, cursorX, cursorY)
}

func (p *InfoPanel) drawTowerInfo(screen *ebiten.Image, startX, startY int) {
	t := p.view
	title := string(t.Type)
	if def, ok := defs.Tower(t.Type); ok {
		title = def.Name
	}
	text.Draw(screen, fmt.Sprintf("%s  L%d/%d", title, t.Level, t.MaxLevel), p.titleFontFace, startX, startY, config.TextLightColor)

	y := startY + lineHeight + 4
	text.Draw(screen, fmt.Sprintf("Damage: %.0f", t.Damage), p.fontFace, startX, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Range: %.0f", t.Range), p.fontFace, startX, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Rate: %.2f/s", t.FireRate), p.fontFace, startX, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("HP: %.0f/%.0f", t.Health, t.MaxHealth), p.fontFace, startX, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Kills: %d", t.Kills), p.fontFace, startX, y, config.TextLightColor)
}
