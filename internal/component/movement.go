// component/movement.go
package component

// Position — компонент позиции (левый верхний угол картинки)
type Position struct {
	X, Y float64
}

// Size is the natural (unscaled) size of the entity image.
type Size struct {
	Width, Height float64
}

// Motion — постоянная скорость в пикселях за тик
type Motion struct {
	VX, VY float64
}
