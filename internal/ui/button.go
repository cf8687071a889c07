// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button — прямоугольная кнопка с подписью. После нажатия коротко «пульсирует».
type Button struct {
	Rect          image.Rectangle
	Text          string
	BgColor       color.Color
	TextColor     color.Color
	BorderColor   color.Color
	TextSize      float64
	LastClickTime time.Time
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, bg color.Color) *Button {
	return &Button{
		Rect:        rect,
		Text:        label,
		BgColor:     bg,
		TextColor:   color.White,
		BorderColor: color.White,
		TextSize:    2,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Press запускает анимацию нажатия.
func (b *Button) Press() {
	b.LastClickTime = time.Now()
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face text.Face) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.1*math.Exp(-elapsed*8)

	w := float64(b.Rect.Dx()) * scale
	h := float64(b.Rect.Dy()) * scale
	x := float64(b.Rect.Min.X) - (w-float64(b.Rect.Dx()))/2
	y := float64(b.Rect.Min.Y) - (h-float64(b.Rect.Dy()))/2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), b.BgColor, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, b.BorderColor, true)

	tw, th := measure(b.Text, face, b.TextSize)
	drawText(screen, b.Text, face, x+(w-tw)/2, y+(h-th)/2, b.TextSize, b.TextColor)
}
