// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — смещение за тик
type Velocity struct {
	VX, VY float64
}

// Rect — прямоугольник с левым верхним углом в (X, Y).
type Rect struct {
	X, Y, W, H float64
}

// Center возвращает центр прямоугольника.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}
