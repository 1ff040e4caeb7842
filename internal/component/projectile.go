// internal/component/projectile.go
package component

import (
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/types"
	"image/color"
)

// Projectile представляет летящий снаряд обеих игр.
type Projectile struct {
	Position
	Velocity
	Damage float64
	Size   float64
	Attack defs.Behavior
	Color  color.RGBA
	Trail  *Trail
	// Pierced — пришельцы, уже пробитые этим снарядом.
	Pierced map[types.EntityID]struct{}
}

// HasPierced проверяет членство в множестве пробитых.
func (p *Projectile) HasPierced(id types.EntityID) bool {
	_, ok := p.Pierced[id]
	return ok
}

// MarkPierced добавляет пришельца и возвращает размер множества.
func (p *Projectile) MarkPierced(id types.EntityID) int {
	if p.Pierced == nil {
		p.Pierced = make(map[types.EntityID]struct{})
	}
	p.Pierced[id] = struct{}{}
	return len(p.Pierced)
}

// Trail — кольцевой буфер последних позиций. При переполнении вытесняется самая старая.
type Trail struct {
	points []Position
	start  int
	size   int
}

func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{points: make([]Position, capacity)}
}

// Push добавляет позицию.
func (t *Trail) Push(p Position) {
	capacity := len(t.points)
	if t.size < capacity {
		t.points[(t.start+t.size)%capacity] = p
		t.size++
		return
	}
	t.points[t.start] = p
	t.start = (t.start + 1) % capacity
}

// Len — количество сохранённых позиций.
func (t *Trail) Len() int {
	return t.size
}

// Points возвращает позиции от старой к новой.
func (t *Trail) Points() []Position {
	out := make([]Position, t.size)
	for i := 0; i < t.size; i++ {
		out[i] = t.points[(t.start+i)%len(t.points)]
	}
	return out
}
