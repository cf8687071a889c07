// internal/ui/indicator.go
package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
)

// CountdownBanner — баннер READY / SET / PLANT. При смене этапа он коротко
// увеличивается и возвращается к обычному размеру.
type CountdownBanner struct {
	Y          float64
	Stage      string
	Visible    bool
	ChangeTime time.Time
}

func NewCountdownBanner(y float64) *CountdownBanner {
	return &CountdownBanner{Y: y}
}

// Show switches to stage and restarts the pulse.
func (b *CountdownBanner) Show(stage string) {
	b.Stage = stage
	b.Visible = true
	b.ChangeTime = time.Now()
}

func (b *CountdownBanner) Hide() {
	b.Visible = false
}

// Draw отрисовывает картинку текущего этапа по центру экрана.
func (b *CountdownBanner) Draw(screen *ebiten.Image, images *ImageManager) {
	if !b.Visible {
		return
	}
	name := bannerImage(b.Stage)
	img := images.Image(name)
	bounds := img.Bounds()

	elapsed := time.Since(b.ChangeTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	w := float64(bounds.Dx()) * scale
	h := float64(bounds.Dy()) * scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((config.ScreenWidth-w)/2, b.Y-h/2)
	screen.DrawImage(img, op)

	if images.IsPlaceholder(name) {
		tw, th := measure(b.Stage, DefaultFace, 3)
		drawText(screen, b.Stage, DefaultFace, (config.ScreenWidth-tw)/2, b.Y-th/2, 3, config.TextLightColor)
	}
}

func bannerImage(stage string) string {
	for _, s := range app.DefaultCountdown {
		if s.Label == stage {
			return s.Image
		}
	}
	return stage
}
