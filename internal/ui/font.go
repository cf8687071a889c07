package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the bitmap face every overlay uses.
var DefaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// drawText draws s with its top-left corner at (x, y), scaled by size.
func drawText(screen *ebiten.Image, s string, face text.Face, x, y, size float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// measure returns the width and height of s at the given scale.
func measure(s string, face text.Face, size float64) (float64, float64) {
	w, h := text.Measure(s, face, 0)
	return w * size, h * size
}
