// internal/component/building.go
package component

import (
	"image/color"
	"math"
)

// Window — окно здания. Генерируется один раз.
type Window struct {
	X, Y, Size float64
	Lit        bool
	Industrial bool
}

// Detail — декор на крыше: антенна, труба, вывеска, кондиционер.
type Detail struct {
	Kind string
	Rect
}

// Building — цель в игре про здания.
type Building struct {
	Rect
	Kind      string
	Style     string
	Health    float64
	MaxHealth float64
	Points    int
	Destroyed bool
	Color     color.RGBA
	Windows   []Window
	Details   []Detail
}

// Opacity — единственная связь декора с игрой: прозрачность по здоровью.
func (b *Building) Opacity() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return math.Max(0, b.Health/b.MaxHealth)
}

// PowerUp — ящик с патронами.
type PowerUp struct {
	Rect
	Kind string
}
