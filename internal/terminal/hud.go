package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/interfaces"
)

const resumeLabel = "[ RESUME ]"

// HUD implements interfaces.HUD on the bottom row of the screen plus a
// centred banner for the countdown and the pause overlay.
type HUD struct {
	screen    tcell.Screen
	stats     interfaces.Stats
	paused    bool
	countdown string

	resumeCol, resumeRow int
}

var _ interfaces.HUD = (*HUD)(nil)

func NewHUD(screen tcell.Screen) *HUD {
	return &HUD{screen: screen, resumeRow: -1}
}

func (h *HUD) Update(stats interfaces.Stats) { h.stats = stats }
func (h *HUD) ShowPause(visible bool)        { h.paused = visible }
func (h *HUD) ShowCountdown(stage string)    { h.countdown = stage }
func (h *HUD) HideCountdown()                { h.countdown = "" }

func (h *HUD) Paused() bool { return h.paused }

func (h *HUD) Countdown() string { return h.countdown }

// StatusLine is the text of the bottom row.
func (h *HUD) StatusLine() string {
	minutes := int(h.stats.Elapsed.Minutes())
	seconds := int(h.stats.Elapsed.Seconds()) % 60
	return fmt.Sprintf(" %s | Sun %d | Score %d | Breaches %d | %02d:%02d | Esc pause, q quit",
		h.stats.Player, h.stats.Resources, h.stats.Score, h.stats.Breaches, minutes, seconds)
}

// ResumeClicked reports whether a click on (col, row) hits the resume label.
func (h *HUD) ResumeClicked(col, row int) bool {
	if !h.paused || row != h.resumeRow {
		return false
	}
	return col >= h.resumeCol && col < h.resumeCol+len(resumeLabel)
}

// Draw writes the HUD over whatever the surface drew this frame.
func (h *HUD) Draw() {
	cols, rows := h.screen.Size()
	bar := tcell.StyleDefault.
		Background(tcellColor(config.HUDColor)).
		Foreground(tcellColor(config.TextLightColor))
	h.fill(rows-1, cols, bar)
	putString(h.screen, 0, rows-1, h.StatusLine(), bar)

	banner := tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	if h.countdown != "" {
		putCentered(h.screen, rows/2, cols, h.countdown, banner)
	}

	h.resumeRow = -1
	if !h.paused {
		return
	}
	overlay := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite).Bold(true)
	putCentered(h.screen, rows/2-1, cols, "  PAUSED  ", overlay)
	button := tcell.StyleDefault.
		Background(tcellColor(config.ResumeButtonColor)).
		Foreground(tcell.ColorWhite)
	h.resumeRow = rows/2 + 1
	h.resumeCol = putCentered(h.screen, h.resumeRow, cols, resumeLabel, button)
}

func (h *HUD) fill(row, cols int, style tcell.Style) {
	for col := 0; col < cols; col++ {
		h.screen.SetContent(col, row, ' ', nil, style)
	}
}

func putString(screen tcell.Screen, col, row int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(col, row, r, nil, style)
		col++
	}
}

// putCentered returns the column the text starts at.
func putCentered(screen tcell.Screen, row, cols int, s string, style tcell.Style) int {
	col := (cols - len([]rune(s))) / 2
	if col < 0 {
		col = 0
	}
	putString(screen, col, row, s, style)
	return col
}
