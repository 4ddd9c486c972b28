// pkg/render/color.go
package render

import "image/color"

// Palette holds all the colors the playfield renderer needs.
type Palette struct {
	BackgroundColor  color.RGBA
	GridLineColor    color.RGBA
	PathColor        color.RGBA
	ValidPlaceColor  color.RGBA
	InvalidColor     color.RGBA
	RangeColor       color.RGBA
	TextLightColor   color.RGBA
	TowerStrokeColor color.RGBA
	SelectionColor   color.RGBA
	HealthBarBack    color.RGBA
	HealthBarFront   color.RGBA
	SlowRingColor    color.RGBA
	StrokeWidth      float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha — тот же цвет с другой прозрачностью
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// FlashColor смешивает цвет с красным для мигания при попадании.
func FlashColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((int(c.R) + 255) / 2),
		G: uint8(int(c.G) / 2),
		B: uint8(int(c.B) / 2),
		A: c.A,
	}
}
