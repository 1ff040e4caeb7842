// pkg/gridmap/grid.go
package gridmap

import "math"

// Cell — клетка поля. IsPath задаётся один раз при создании карты.
type Cell struct {
	Occupied bool
	IsPath   bool
	Tower    uint64 // 0 — башни нет
}

// Point — координата клетки. Может лежать за пределами поля (вход маршрута).
type Point struct {
	X, Y int
}

// Grid — прямоугольная сетка с фиксированным маршрутом.
type Grid struct {
	Width, Height int
	CellSize      float64
	Path          []Point
	cells         [][]Cell
}

// NewGrid создаёт сетку и помечает клетки маршрута занятыми.
func NewGrid(width, height int, cellSize float64, path []Point) *Grid {
	cells := make([][]Cell, width)
	for x := range cells {
		cells[x] = make([]Cell, height)
	}
	g := &Grid{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		Path:     path,
		cells:    cells,
	}
	for _, p := range path {
		if g.InBounds(p.X, p.Y) {
			g.cells[p.X][p.Y].IsPath = true
			g.cells[p.X][p.Y].Occupied = true
		}
	}
	return g
}

// InBounds проверяет, что клетка лежит на поле.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Cell возвращает копию клетки. Для клеток вне поля ok == false.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[x][y], true
}

// Place занимает свободную клетку башней.
func (g *Grid) Place(x, y int, tower uint64) bool {
	if !g.InBounds(x, y) || g.cells[x][y].Occupied || tower == 0 {
		return false
	}
	g.cells[x][y].Occupied = true
	g.cells[x][y].Tower = tower
	return true
}

// Release освобождает клетку от башни. Клетки маршрута остаются занятыми.
func (g *Grid) Release(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	c := &g.cells[x][y]
	c.Tower = 0
	c.Occupied = c.IsPath
}

// Reset снимает все башни.
func (g *Grid) Reset() {
	for x := range g.cells {
		for y := range g.cells[x] {
			g.Release(x, y)
		}
	}
}

// ToPixel возвращает центр клетки в пикселях.
func (g *Grid) ToPixel(p Point) (float64, float64) {
	return float64(p.X)*g.CellSize + g.CellSize/2, float64(p.Y)*g.CellSize + g.CellSize/2
}

// PixelToCell переводит пиксели в клетку. ok == false вне поля.
func (g *Grid) PixelToCell(px, py float64) (Point, bool) {
	p := Point{X: int(math.Floor(px / g.CellSize)), Y: int(math.Floor(py / g.CellSize))}
	return p, g.InBounds(p.X, p.Y)
}

// Waypoint возвращает центр i-й точки маршрута.
func (g *Grid) Waypoint(i int) (float64, float64) {
	return g.ToPixel(g.Path[i])
}

// NearestWaypoint ищет индекс точки маршрута, ближайшей к (px, py).
// При равенстве выигрывает меньший индекс.
func (g *Grid) NearestWaypoint(px, py float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i := range g.Path {
		wx, wy := g.Waypoint(i)
		if d := math.Hypot(px-wx, py-wy); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
