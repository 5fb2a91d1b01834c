// pkg/render/color.go
package render

import (
	"image/color"

	"go-orc-defense/internal/utils"
)

// MapColors holds the colors of the static map and the placement tiles.
type MapColors struct {
	BackgroundColor color.Color
	PathColor       color.Color
	TileFillColor   color.Color
	TileAffordColor color.Color
	TileStrokeColor color.Color
	PathWidth       float32
	StrokeWidth     float32
}

// Fade multiplies the alpha of a color by alpha (clamped to 0..1).
func Fade(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * utils.Clamp(alpha, 0, 1))
	return n
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
