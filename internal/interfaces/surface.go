package interfaces

import "go-lane-defense/internal/types"

// VisualState is the style treatment a shell applies on top of an image.
type VisualState struct {
	Highlighted bool
	Disabled    bool
	Bounds      types.Rect // где лежит картинка, чтобы оболочка могла нарисовать рамку
}

// Surface is the drawing capability the core renders into. The core owns all
// coordinates; a Surface only produces pixels (or cells).
type Surface interface {
	Clear()
	DrawImage(image string, x, y, width, height float64)
	SetVisualState(id types.EntityID, state VisualState)
}
