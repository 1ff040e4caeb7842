// internal/system/collision.go
package system

import (
	"go-space-arcade/internal/component"
	"math"
)

// Overlaps — пересечение прямоугольников. Касание краями не считается.
func Overlaps(a, b component.Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Contains — точка строго внутри прямоугольника.
func Contains(r component.Rect, x, y float64) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// WithinRadius — расстояние от точки до центра строго меньше r.
func WithinRadius(px, py, cx, cy, r float64) bool {
	return math.Hypot(px-cx, py-cy) < r
}

// RectDistance — расстояние от точки до ближайшей точки прямоугольника.
// Для точки внутри равно нулю.
func RectDistance(px, py float64, r component.Rect) float64 {
	dx := math.Max(math.Max(r.X-px, 0), px-(r.X+r.W))
	dy := math.Max(math.Max(r.Y-py, 0), py-(r.Y+r.H))
	return math.Hypot(dx, dy)
}
