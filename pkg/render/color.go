// pkg/render/color.go
package render

import "image/color"

// Palette holds the colors the renderer needs for one frame.
type Palette struct {
	Background color.RGBA
	Grid       color.RGBA
	Player     color.RGBA
	Flash      color.RGBA
	Stroke     color.RGBA
	Text       color.RGBA
	Overlay    color.RGBA
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

// WithAlpha returns c with its alpha replaced. Channels are premultiplied
// so the result stays a valid color.RGBA.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	k := float64(a) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: a,
	}
}
