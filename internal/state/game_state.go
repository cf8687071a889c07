// internal/state/game_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-lane-defense/internal/app"
	"go-lane-defense/internal/ui"
)

// GameState — состояние игры: одна сессия от отсчёта до закрытия окна.
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	recorder *ui.FrameRecorder
	hud      *ui.HUD
	keys     []ebiten.Key
}

func NewGameState(sm *StateMachine) *GameState {
	ctx := sm.Ctx
	recorder := ui.NewFrameRecorder(ctx.Images)
	hud := ui.NewHUD(ctx.Images)
	gameLogic := game.NewGame(ctx.Tuning, ctx.Seeds, ctx.Catalog, recorder, hud, sm.newDispatcher(), ctx.Logger)

	return &GameState{
		sm:       sm,
		game:     gameLogic,
		recorder: recorder,
		hud:      hud,
	}
}

// Game exposes the running session.
func (g *GameState) Game() *game.Game {
	return g.game
}

func (g *GameState) Enter() {
	if g.game.Begin(g.sm.Ctx.Store) == game.OutcomeRedirect {
		g.sm.SetState(NewMenuState(g.sm))
	}
}

func (g *GameState) Update(deltaTime float64) {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.game.OnKey(k.String())
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		// Кнопка RESUME перехватывает клик, в игру он не попадает.
		if g.hud.ResumeClicked(x, y) {
			g.game.Resume()
		} else {
			g.game.OnPointerDown(float64(x), float64(y))
		}
	}

	g.game.Tick(time.Duration(deltaTime * float64(time.Second)))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.recorder.Replay(screen)
	g.hud.Draw(screen)
}

func (g *GameState) Exit() {
	g.game.Stop()
}
