// pkg/render/grid_renderer.go
package render

import (
	"image/color"
	"math"

	"coin-tower-defense/internal/app"
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Hover — подсветка клетки под курсором в режиме постройки
type Hover struct {
	Active   bool
	Row, Col int
	Valid    bool
	Range    float64 // радиус будущей башни, 0 — не рисовать
}

// GridRenderer рисует поле, маршрут и все сущности из снимка игры.
type GridRenderer struct {
	grid     *gridmap.Grid
	path     *gridmap.Path
	palette  *Palette
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	fontFace font.Face
	mapImage *ebiten.Image // предрендеренный задник: сетка и дорога
}

func NewGridRenderer(grid *gridmap.Grid, path *gridmap.Path, face font.Face, palette *Palette) *GridRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &GridRenderer{
		grid:     grid,
		path:     path,
		palette:  palette,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 8),
		fillIs:   make([]uint16, 0, 8),
		fontFace: face,
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage перерисовывает задник; вызывать после изменения размеров поля.
func (r *GridRenderer) RenderMapImage() {
	w, h := int(math.Max(1, r.grid.Width())), int(math.Max(1, r.grid.Height()))
	if r.mapImage == nil || r.mapImage.Bounds().Dx() != w || r.mapImage.Bounds().Dy() != h {
		r.mapImage = ebiten.NewImage(w, h)
	}
	r.mapImage.Fill(r.palette.BackgroundColor)

	size := float32(r.grid.CellSize)
	for row := 0; row < r.grid.Rows; row++ {
		for col := 0; col < r.grid.Cols; col++ {
			if r.grid.IsPath(row, col) {
				p := r.grid.ToPixel(row, col)
				vector.DrawFilledRect(r.mapImage, float32(p.X), float32(p.Y), size, size, r.palette.PathColor, false)
			}
		}
	}
	for col := 0; col <= r.grid.Cols; col++ {
		x := float32(col) * size
		vector.StrokeLine(r.mapImage, x, 0, x, float32(h), 1, r.palette.GridLineColor, false)
	}
	for row := 0; row <= r.grid.Rows; row++ {
		y := float32(row) * size
		vector.StrokeLine(r.mapImage, 0, y, float32(w), y, 1, r.palette.GridLineColor, false)
	}

	// точки маршрута поверх дороги
	pts := r.path.PixelWaypoints()
	for i := 0; i+1 < len(pts); i++ {
		vector.StrokeLine(r.mapImage, float32(pts[i].X), float32(pts[i].Y), float32(pts[i+1].X), float32(pts[i+1].Y),
			2, DarkenColor(r.palette.PathColor), true)
	}
}

func (r *GridRenderer) Draw(screen *ebiten.Image, snap app.Snapshot, hover Hover) {
	screen.DrawImage(r.mapImage, nil)

	if hover.Active && r.grid.IsValidCell(hover.Row, hover.Col) {
		r.drawHover(screen, hover)
	}
	for _, t := range snap.Towers {
		r.drawTower(screen, t)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range snap.Projectiles {
		r.drawProjectile(screen, p)
	}
}

func (r *GridRenderer) drawHover(screen *ebiten.Image, hover Hover) {
	p := r.grid.ToPixel(hover.Row, hover.Col)
	clr := r.palette.InvalidColor
	if hover.Valid {
		clr = r.palette.ValidPlaceColor
	}
	size := float32(r.grid.CellSize)
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), size, size, clr, false)
	if hover.Range > 0 {
		c := r.grid.CellCenter(hover.Row, hover.Col)
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(hover.Range), 1, r.palette.RangeColor, true)
	}
}

func (r *GridRenderer) drawTower(screen *ebiten.Image, t app.TowerView) {
	def, _ := defs.Tower(t.Type)
	x, y := float32(t.X), float32(t.Y)
	radius := float32(r.grid.CellSize/2) - 2

	if t.Selected {
		vector.DrawFilledCircle(screen, x, y, float32(t.Range), WithAlpha(r.palette.RangeColor, 30), true)
		vector.StrokeCircle(screen, x, y, float32(t.Range), 1, r.palette.RangeColor, true)
	}

	body := def.Visuals.Color
	if t.Flashing {
		body = FlashColor(body)
	}
	vector.DrawFilledCircle(screen, x, y, radius, body, true)
	stroke := r.palette.TowerStrokeColor
	if t.Selected {
		stroke = r.palette.SelectionColor
	}
	vector.StrokeCircle(screen, x, y, radius, r.palette.StrokeWidth, stroke, true)

	// уровень — точки под башней
	for i := 0; i < t.Level; i++ {
		px := x - float32(t.Level-1)*2.5 + float32(i)*5
		vector.DrawFilledCircle(screen, px, y+radius-1, 1.5, r.palette.SelectionColor, true)
	}

	if def.Visuals.Glyph != "" {
		r.drawCenteredText(screen, def.Visuals.Glyph, x, y, r.palette.TextLightColor)
	}
	if t.Health < t.MaxHealth || t.Flashing {
		r.drawHealthBar(screen, x, y-radius-4, radius*2, t.Health/t.MaxHealth)
	}
}

func (r *GridRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	def, _ := defs.Enemy(e.Type)
	x, y := float32(e.X), float32(e.Y)
	radius := float32(e.Radius)

	if e.Ranged {
		// стрелок — треугольник
		r.fillTriangle(screen, x, y-radius, x-radius, y+radius*0.8, x+radius, y+radius*0.8, def.Visuals.Color)
	} else {
		vector.DrawFilledCircle(screen, x, y, radius, def.Visuals.Color, true)
	}
	if e.Slowed {
		vector.StrokeCircle(screen, x, y, radius+2, 1.5, r.palette.SlowRingColor, true)
	}
	if def.Visuals.Glyph != "" {
		r.drawCenteredText(screen, def.Visuals.Glyph, x, y, r.palette.TextLightColor)
	}
	r.drawHealthBar(screen, x, y-radius-5, radius*2, e.Health/e.MaxHealth)
}

func (r *GridRenderer) drawProjectile(screen *ebiten.Image, p app.ProjectileView) {
	size := float32(math.Max(p.Size, 1))
	for i, pos := range p.Trail {
		alpha := uint8(60 * (i + 1))
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), size*0.6, WithAlpha(p.Color, alpha), true)
	}
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), size, p.Color, true)
}

func (r *GridRenderer) drawHealthBar(screen *ebiten.Image, cx, top, width float32, fraction float64) {
	fraction = math.Max(0, math.Min(1, fraction))
	left := cx - width/2
	vector.DrawFilledRect(screen, left, top, width, 3, r.palette.HealthBarBack, false)
	vector.DrawFilledRect(screen, left, top, width*float32(fraction), 3, r.palette.HealthBarFront, false)
}

func (r *GridRenderer) fillTriangle(target *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, clr color.RGBA) {
	path := vector.Path{}
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(clr.R) / 255
		r.fillVs[i].ColorG = float32(clr.G) / 255
		r.fillVs[i].ColorB = float32(clr.B) / 255
		r.fillVs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *GridRenderer) drawCenteredText(target *ebiten.Image, label string, x, y float32, clr color.Color) {
	bounds := text.BoundString(r.fontFace, label)
	text.Draw(target, label, r.fontFace, int(x)-bounds.Dx()/2, int(y)+bounds.Dy()/2-1, clr)
}
