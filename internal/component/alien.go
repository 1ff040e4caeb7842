// internal/component/alien.go
package component

import "image/color"

// Alien — пришелец, идущий по маршруту.
// PathIndex указывает на последнюю достигнутую точку; цель движения — PathIndex+1.
type Alien struct {
	Kind string
	Position
	PathIndex int
	Health    float64
	MaxHealth float64
	BaseSpeed float64
	Slow      SlowEffect
	Reward    int
	Size      float64 // радиус столкновения
	Shape     string
	Color     color.RGBA
	Rotation  float64
}

// EffectiveSpeed учитывает замедление.
func (a *Alien) EffectiveSpeed() float64 {
	if a.Slow.Active() {
		return a.BaseSpeed * a.Slow.Factor
	}
	return a.BaseSpeed
}

// Dead сообщает, что здоровье исчерпано.
func (a *Alien) Dead() bool {
	return a.Health <= 0
}

// TakeDamage уменьшает здоровье. Отрицательный урон игнорируется.
func (a *Alien) TakeDamage(amount float64) {
	if amount > 0 {
		a.Health -= amount
	}
}
