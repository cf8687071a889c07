// internal/ui/hud.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/interfaces"
)

// HUD implements interfaces.HUD for ebiten: the scoreboard strip, the
// countdown banner and the pause overlay with its resume button.
type HUD struct {
	Stats        interfaces.Stats
	Paused       bool
	Banner       *CountdownBanner
	ResumeButton *Button
	images       *ImageManager
}

var _ interfaces.HUD = (*HUD)(nil)

func NewHUD(images *ImageManager) *HUD {
	x := (config.ScreenWidth - config.ResumeButtonWidth) / 2
	y := config.ScreenHeight/2 + 30
	return &HUD{
		Banner: NewCountdownBanner(config.CountdownBannerY),
		ResumeButton: NewButton(
			image.Rect(x, y, x+config.ResumeButtonWidth, y+config.ResumeButtonHeight),
			"RESUME", config.ResumeButtonColor),
		images: images,
	}
}

func (h *HUD) Update(stats interfaces.Stats) {
	h.Stats = stats
}

func (h *HUD) ShowPause(visible bool) {
	h.Paused = visible
}

func (h *HUD) ShowCountdown(stage string) {
	h.Banner.Show(stage)
}

func (h *HUD) HideCountdown() {
	h.Banner.Hide()
}

// ScoreLine is the text of the scoreboard strip.
func (h *HUD) ScoreLine() string {
	minutes := int(h.Stats.Elapsed.Minutes())
	seconds := int(h.Stats.Elapsed.Seconds()) % 60
	return fmt.Sprintf("%s   Sun: %d   Score: %d   Breaches: %d   %02d:%02d",
		h.Stats.Player, h.Stats.Resources, h.Stats.Score, h.Stats.Breaches, minutes, seconds)
}

// ResumeClicked reports whether a click at (x, y) hits the resume button of
// the pause overlay.
func (h *HUD) ResumeClicked(x, y int) bool {
	if !h.Paused || !h.ResumeButton.Contains(x, y) {
		return false
	}
	h.ResumeButton.Press()
	return true
}

// Draw отрисовывает HUD поверх кадра.
func (h *HUD) Draw(screen *ebiten.Image) {
	top := float32(config.ScreenHeight - config.HUDHeight)
	vector.DrawFilledRect(screen, 0, top, config.ScreenWidth, config.HUDHeight, config.HUDColor, false)
	drawText(screen, h.ScoreLine(), DefaultFace,
		config.HUDPaddingX, float64(top)+(config.HUDHeight-config.HUDTextOffsetY)/2, 1, config.TextLightColor)

	h.Banner.Draw(screen, h.images)

	if !h.Paused {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlayColor, false)
	const label = "PAUSED"
	tw, th := measure(label, DefaultFace, 4)
	drawText(screen, label, DefaultFace, (config.ScreenWidth-tw)/2, config.ScreenHeight/2-th-10, 4, config.TextLightColor)
	h.ResumeButton.Draw(screen, DefaultFace)
}
