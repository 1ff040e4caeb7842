// internal/component/visual.go
package component

import "image/color"

// ParticleKind — вид частицы.
type ParticleKind int

const (
	ParticleDebris    ParticleKind = iota // осколок, летит и тормозит
	ParticleExplosion                     // расширяющееся кольцо
	ParticleLaser                         // луч лазерной башни
	ParticleLightning                     // звено цепной молнии
)

// Particle — короткоживущий визуальный эффект.
// Для лучей и молний используются From/To, для остальных Position.
type Particle struct {
	Kind ParticleKind
	Position
	Velocity
	FromX, FromY float64
	ToX, ToY     float64
	Life         int
	MaxLife      int
	Size         float64
	MaxSize      float64
	Color        color.RGBA
}

// Alpha — доля оставшейся жизни для прозрачности.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Star — звезда фона, дрейфующая вниз.
type Star struct {
	Position
	Size  float64
	Speed float64
}

// Explosion — вспышка в игре про здания.
type Explosion struct {
	Position
	Size    float64
	MaxSize float64
	Life    int
}

// Debris — обломок под действием гравитации.
type Debris struct {
	Position
	Velocity
	Life  int
	Size  float64
	Color color.RGBA
}
