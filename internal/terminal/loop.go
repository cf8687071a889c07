package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/logging"
)

// Loop drives one game session on a tcell screen.
type Loop struct {
	screen  tcell.Screen
	game    *app.Game
	hud     *HUD
	surface *Surface
	logger  *logging.Logger

	frame     time.Duration
	mouseDown bool
}

func NewLoop(screen tcell.Screen, game *app.Game, hud *HUD, surface *Surface, fps int, logger *logging.Logger) *Loop {
	if fps <= 0 {
		fps = config.TerminalFPS
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Loop{
		screen:  screen,
		game:    game,
		hud:     hud,
		surface: surface,
		logger:  logger,
		frame:   time.Second / time.Duration(fps),
	}
}

// Run blocks until the player quits or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(l.frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if l.HandleEvent(ev) {
				l.logger.Info("quit requested")
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			l.Frame(dt)
		}
	}
}

// Frame advances the game by dt and flushes the screen.
func (l *Loop) Frame(dt time.Duration) {
	limit := time.Duration(config.MaxDeltaTime * float64(time.Second))
	if dt > limit {
		dt = limit
	}
	l.game.Tick(dt)
	l.hud.Draw()
	l.screen.Show()
}

// HandleEvent routes one tcell event into the game. It returns true when the
// player asked to quit.
func (l *Loop) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return true
		case tcell.KeyEscape:
			l.game.OnKey(config.PauseKey)
		case tcell.KeyRune:
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return true
			}
			l.game.OnKey(string(ev.Rune()))
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !l.mouseDown {
			l.click(ev.Position())
		}
		l.mouseDown = pressed
	case *tcell.EventResize:
		l.screen.Sync()
	}
	return false
}

func (l *Loop) click(col, row int) {
	if l.hud.ResumeClicked(col, row) {
		l.game.Resume()
		return
	}
	p := l.surface.CellToPoint(col, row)
	l.game.OnPointerDown(p.X, p.Y)
}
