// internal/state/menu_state.go
package state

import (
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/ui"
)

// MenuState — экран входа: игрок вводит имя и нажимает Enter или кнопку.
// Сюда же возвращает игра, если имени нет.
type MenuState struct {
	sm      *StateMachine
	name    []rune
	message string
	start   *ui.Button
}

func NewMenuState(sm *StateMachine) *MenuState {
	x := (config.ScreenWidth - config.ResumeButtonWidth) / 2
	y := config.ScreenHeight/2 + 40
	return &MenuState{
		sm:    sm,
		start: ui.NewButton(image.Rect(x, y, x+config.ResumeButtonWidth, y+config.ResumeButtonHeight), "PLAY", config.ResumeButtonColor),
	}
}

func (m *MenuState) Enter() {
	if name, ok := m.sm.Ctx.Store.PlayerName(); ok {
		m.name = []rune(name)
	}
}

func (m *MenuState) Update(deltaTime float64) {
	m.name = ebiten.AppendInputChars(m.name)
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(m.name) > 0 {
		m.name = m.name[:len(m.name)-1]
	}

	submit := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if m.start.Contains(x, y) {
			m.start.Press()
			submit = true
		}
	}
	if submit {
		m.submit()
	}
}

func (m *MenuState) submit() {
	if err := m.sm.Ctx.Store.SetPlayerName(string(m.name)); err != nil {
		m.message = err.Error()
		return
	}
	m.message = ""
	m.sm.SetState(NewGameState(m.sm))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	title := "LANE DEFENSE"
	drawCentered(screen, title, 120, 4)
	drawCentered(screen, "Enter your name", 220, 2)

	boxW, boxH := float32(320), float32(36)
	boxX := float32(config.ScreenWidth)/2 - boxW/2
	vector.StrokeRect(screen, boxX, 250, boxW, boxH, 2, config.TextLightColor, true)
	drawCentered(screen, strings.TrimSpace(string(m.name))+"_", 258, 2)

	if m.message != "" {
		drawCentered(screen, m.message, 340, 1.5)
	}
	m.start.Draw(screen, ui.DefaultFace)
}

func (m *MenuState) Exit() {}
