// internal/component/visual.go
package component

// Animation is a frame cursor over a fixed-length sequence.
type Animation struct {
	Frame   int // текущий кадр, [0, Max)
	Elapsed int // тиков с момента создания
	Hold    int // сколько тиков держится один кадр
	Max     int // длина последовательности
}

// Step advances the cursor by one tick and wraps after the last frame.
// A cursor outside [0, Max) is reset to 0 first.
func (a *Animation) Step() {
	if a.Max <= 0 {
		a.Frame = 0
		return
	}
	if a.Frame < 0 || a.Frame >= a.Max {
		a.Frame = 0
	}
	a.Elapsed++
	if a.Hold > 0 && a.Elapsed%a.Hold == 0 {
		a.Frame = (a.Frame + 1) % a.Max
	}
}
