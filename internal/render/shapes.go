// internal/render/shapes.go
package render

import "math"

// Силуэты пришельцев в единицах радиуса. Нос смотрит вправо.
var alienShapes = map[string][][2]float64{
	"arrow":    {{1, 0}, {-0.6, 0.7}, {-0.2, 0}, {-0.6, -0.7}},
	"dart":     {{1, 0}, {-0.8, 0.45}, {-0.5, 0}, {-0.8, -0.45}},
	"vshape":   {{0.6, 0}, {-0.8, 0.9}, {-0.3, 0}, {-0.8, -0.9}},
	"diamond":  {{1, 0}, {0, 0.8}, {-1, 0}, {0, -0.8}},
	"cross":    {{1, 0.25}, {0.25, 0.25}, {0.25, 1}, {-0.25, 1}, {-0.25, 0.25}, {-1, 0.25}, {-1, -0.25}, {-0.25, -0.25}, {-0.25, -1}, {0.25, -1}, {0.25, -0.25}, {1, -0.25}},
	"wings":    {{1, 0}, {0, 0.3}, {-0.6, 1}, {-0.4, 0}, {-0.6, -1}, {0, -0.3}},
	"star":     regularStar(5, 1, 0.45),
	"octagon":  regularPolygon(8),
	"triangle": regularPolygon(3),
	"hexagon":  regularPolygon(6),
}

func regularPolygon(n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(a), math.Sin(a)}
	}
	return pts
}

func regularStar(n int, outer, inner float64) [][2]float64 {
	pts := make([][2]float64, 2*n)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(a) * r, math.Sin(a) * r}
	}
	return pts
}

func shapeFor(name string) [][2]float64 {
	if pts, ok := alienShapes[name]; ok {
		return pts
	}
	return alienShapes["diamond"]
}
