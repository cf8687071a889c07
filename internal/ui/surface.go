// internal/ui/surface.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/interfaces"
	"go-lane-defense/internal/types"
)

// DrawOp is one recorded DrawImage call.
type DrawOp struct {
	Image         string
	X, Y          float64
	Width, Height float64
}

// FrameRecorder implements interfaces.Surface for ebiten. The simulation runs
// in Update, where ebiten forbids drawing to the screen, so calls are recorded
// and replayed in Draw. While the game is paused nothing is recorded and the
// last frame keeps being replayed under the pause overlay.
type FrameRecorder struct {
	images *ImageManager
	ops    []DrawOp
	states map[types.EntityID]interfaces.VisualState
}

var _ interfaces.Surface = (*FrameRecorder)(nil)

func NewFrameRecorder(images *ImageManager) *FrameRecorder {
	return &FrameRecorder{
		images: images,
		states: make(map[types.EntityID]interfaces.VisualState),
	}
}

func (r *FrameRecorder) Clear() {
	r.ops = r.ops[:0]
	clear(r.states)
}

func (r *FrameRecorder) DrawImage(image string, x, y, width, height float64) {
	r.ops = append(r.ops, DrawOp{Image: image, X: x, Y: y, Width: width, Height: height})
}

func (r *FrameRecorder) SetVisualState(id types.EntityID, state interfaces.VisualState) {
	r.states[id] = state
}

// Ops returns the recorded frame.
func (r *FrameRecorder) Ops() []DrawOp {
	return r.ops
}

// State returns the visual state recorded for id.
func (r *FrameRecorder) State(id types.EntityID) (interfaces.VisualState, bool) {
	s, ok := r.states[id]
	return s, ok
}

// Replay draws the recorded frame on screen.
func (r *FrameRecorder) Replay(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	for _, op := range r.ops {
		img := r.images.Image(op.Image)
		b := img.Bounds()
		if b.Dx() == 0 || b.Dy() == 0 {
			continue
		}
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Scale(op.Width/float64(b.Dx()), op.Height/float64(b.Dy()))
		opts.GeoM.Translate(op.X, op.Y)
		opts.Filter = ebiten.FilterLinear
		screen.DrawImage(img, opts)
	}

	for _, s := range r.states {
		x, y := float32(s.Bounds.X), float32(s.Bounds.Y)
		w, h := float32(s.Bounds.Width), float32(s.Bounds.Height)
		if s.Disabled {
			vector.DrawFilledRect(screen, x, y, w, h, config.DisabledTint, false)
		}
		if s.Highlighted {
			vector.StrokeRect(screen, x, y, w, h, config.CardBorderWidth, config.CardBorderColor, true)
		}
	}
}
