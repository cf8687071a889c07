package terminal

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/session"
)

// ErrPromptCancelled is returned when the player leaves the name prompt.
var ErrPromptCancelled = errors.New("name prompt cancelled")

// NamePrompt is the terminal entry screen.
type NamePrompt struct {
	store *session.Store
	name  []rune
	err   error
}

func NewNamePrompt(store *session.Store) *NamePrompt {
	return &NamePrompt{store: store}
}

func (p *NamePrompt) Name() string { return string(p.name) }

// HandleKey edits the name. done is true once a valid name is stored or the
// prompt is cancelled.
func (p *NamePrompt) HandleKey(ev *tcell.EventKey) (done bool, err error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, ErrPromptCancelled
	case tcell.KeyEnter:
		if p.err = p.store.SetPlayerName(string(p.name)); p.err != nil {
			return false, nil
		}
		return true, nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.name) > 0 {
			p.name = p.name[:len(p.name)-1]
		}
	case tcell.KeyRune:
		if len(p.name) < session.MaxNameLength {
			p.name = append(p.name, ev.Rune())
		}
	}
	p.err = nil
	return false, nil
}

func (p *NamePrompt) Draw(screen tcell.Screen) {
	screen.Clear()
	cols, rows := screen.Size()
	title := tcell.StyleDefault.Foreground(tcellColor(config.CardBorderColor)).Bold(true)
	plain := tcell.StyleDefault.Foreground(tcellColor(config.TextLightColor))
	putCentered(screen, rows/2-2, cols, config.WindowTitle, title)
	putCentered(screen, rows/2, cols, "Your name: "+string(p.name)+"_", plain)
	if p.err != nil {
		putCentered(screen, rows/2+2, cols, p.err.Error(), tcell.StyleDefault.Foreground(tcell.ColorRed))
	} else {
		putCentered(screen, rows/2+2, cols, "Enter to play, Esc to quit", plain)
	}
	screen.Show()
}

// Run blocks until a name is stored or the prompt is cancelled.
func (p *NamePrompt) Run(screen tcell.Screen) error {
	p.Draw(screen)
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return ErrPromptCancelled
		case *tcell.EventKey:
			if done, err := p.HandleKey(ev); done {
				return err
			}
		case *tcell.EventResize:
			screen.Sync()
		}
		p.Draw(screen)
	}
}
