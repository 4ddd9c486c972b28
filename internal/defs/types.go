// internal/defs/types.go
package defs

import "image/color"

// Visuals contains parameters for rendering a tower, an enemy or a shot.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Radius float64    `json:"radius"`
	Glyph  string     `json:"glyph"` // символ для терминального режима
}
