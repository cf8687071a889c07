// Package terminal is the tcell shell: it renders the playfield as coloured
// cells and feeds keyboard and mouse events back into the game.
package terminal

import (
	"image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"go-lane-defense/internal/assets"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/interfaces"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/render"
)

// Surface implements interfaces.Surface on a tcell screen. One cell covers
// CellWidth x CellHeight playfield pixels.
type Surface struct {
	screen     tcell.Screen
	palette    *render.Palette
	CellWidth  float64
	CellHeight float64

	last string // картинка последнего DrawImage, для SetVisualState
}

var _ interfaces.Surface = (*Surface)(nil)

func NewSurface(screen tcell.Screen, cellWidth, cellHeight float64) *Surface {
	return &Surface{
		screen:     screen,
		palette:    render.DefaultPalette(),
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}
}

// CellToPoint maps a cell to the playfield pixel at its centre.
func (s *Surface) CellToPoint(col, row int) types.Point {
	return types.Point{
		X: (float64(col) + 0.5) * s.CellWidth,
		Y: (float64(row) + 0.5) * s.CellHeight,
	}
}

// cells returns the cell span covered by a playfield rectangle, clipped to
// the screen. ok is false when nothing is visible.
func (s *Surface) cells(x, y, w, h float64) (c0, r0, c1, r1 int, ok bool) {
	cols, rows := s.screen.Size()
	c0 = int(math.Floor(x / s.CellWidth))
	r0 = int(math.Floor(y / s.CellHeight))
	c1 = int(math.Ceil((x+w)/s.CellWidth)) - 1
	r1 = int(math.Ceil((y+h)/s.CellHeight)) - 1
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, cols-1), min(r1, rows-2) // последняя строка занята HUD
	return c0, r0, c1, r1, c0 <= c1 && r0 <= r1
}

func (s *Surface) Clear() {
	s.screen.Clear()
	s.last = ""
}

func (s *Surface) DrawImage(image string, x, y, width, height float64) {
	s.last = image
	c0, r0, c1, r1, ok := s.cells(x, y, width, height)
	if !ok {
		return
	}
	style := s.style(image, false)
	glyph := Glyph(image)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

func (s *Surface) SetVisualState(id types.EntityID, state interfaces.VisualState) {
	b := state.Bounds
	c0, r0, c1, r1, ok := s.cells(b.X, b.Y, b.Width, b.Height)
	if !ok {
		return
	}
	if state.Disabled && s.last != "" {
		style := s.style(s.last, true)
		glyph := Glyph(s.last)
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				s.screen.SetContent(col, row, glyph, nil, style)
			}
		}
	}
	if state.Highlighted {
		border := tcell.StyleDefault.Foreground(tcellColor(config.CardBorderColor)).Bold(true)
		for col := c0; col <= c1; col++ {
			s.screen.SetContent(col, r0, '─', nil, border)
			s.screen.SetContent(col, r1, '─', nil, border)
		}
		for row := r0; row <= r1; row++ {
			s.screen.SetContent(c0, row, '│', nil, border)
			s.screen.SetContent(c1, row, '│', nil, border)
		}
	}
}

func (s *Surface) style(image string, disabled bool) tcell.Style {
	bg := s.palette.Color(image)
	if disabled {
		bg = render.DarkenColor(bg)
	}
	fg := render.DarkenColor(render.DarkenColor(bg))
	if image == assets.Background {
		fg = bg
	}
	return tcell.StyleDefault.Background(tcellColor(bg)).Foreground(tcellColor(fg))
}

// Glyph is the character an image is drawn with.
func Glyph(image string) rune {
	switch {
	case image == assets.Background:
		return ' '
	case image == assets.Sun:
		return '*'
	case image == assets.LawnmowerIdle || image == assets.LawnmowerActive:
		return '='
	case image == assets.Shovel:
		return 'S'
	case strings.HasPrefix(image, "zombie/"):
		return 'Z'
	case strings.HasPrefix(image, "seeds/"):
		name := strings.TrimPrefix(image, "seeds/")
		if name != "" {
			return rune(name[0])
		}
	}
	return '?'
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
