// pkg/render/font.go
package render

import (
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadFontFace грузит TTF-шрифт; если файла нет, берет встроенный basicfont.
func LoadFontFace(path string, size float64) font.Face {
	if path == "" {
		return basicfont.Face7x13
	}
	fontData, err := os.ReadFile(path)
	if err != nil {
		log.Printf("font: %v, falling back to basicfont", err)
		return basicfont.Face7x13
	}
	tt, err := opentype.Parse(fontData)
	if err != nil {
		log.Printf("font: parse %s: %v, falling back to basicfont", path, err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("font: face %s: %v, falling back to basicfont", path, err)
		return basicfont.Face7x13
	}
	return face
}
