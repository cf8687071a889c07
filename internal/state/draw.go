package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/ui"
)

func drawCentered(screen *ebiten.Image, s string, y, size float64) {
	w, _ := text.Measure(s, ui.DefaultFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate((config.ScreenWidth-w*size)/2, y)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, s, ui.DefaultFace, op)
}
