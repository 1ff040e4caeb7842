// internal/system/visual_effect.go
package system

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/types"
	"go-space-arcade/internal/utils"
	"image/color"
	"math"
)

const (
	debrisLife    = 40
	debrisDrag    = 0.97
	explosionLife = 25
	laserLife     = 8
	lightningLife = 12
)

// VisualEffectSystem создаёт и обновляет частицы и звёздный фон защиты станции.
type VisualEffectSystem struct {
	world *entity.DefenseWorld
	prng  *utils.PRNGService
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.DefenseWorld, prng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{world: world, prng: prng}
}

// CreateStars заполняет фон звёздами.
func (s *VisualEffectSystem) CreateStars() {
	s.world.Stars = make([]component.Star, config.StarCount)
	for i := range s.world.Stars {
		s.world.Stars[i] = component.Star{
			Position: component.Position{
				X: s.prng.Float64() * config.FieldWidth,
				Y: s.prng.Float64() * config.FieldHeight,
			},
			Size:  s.prng.Range(0.5, 2),
			Speed: s.prng.Range(0.1, 0.5),
		}
	}
}

// Debris разбрасывает count осколков по кругу.
func (s *VisualEffectSystem) Debris(x, y float64, c color.RGBA, count int) {
	for i := 0; i < count; i++ {
		angle := math.Pi * 2 * float64(i) / float64(count)
		speed := s.prng.Range(2, 3)
		s.world.Particles.Add(s.world.NewEntity(), &component.Particle{
			Kind:     component.ParticleDebris,
			Position: component.Position{X: x, Y: y},
			Velocity: component.Velocity{VX: math.Cos(angle) * speed, VY: math.Sin(angle) * speed},
			Life:     debrisLife,
			MaxLife:  debrisLife,
			Size:     s.prng.Range(2, 3),
			Color:    c,
		})
	}
}

// Explosion — кольцо, растущее до radius за время жизни.
func (s *VisualEffectSystem) Explosion(x, y, radius float64) {
	s.world.Particles.Add(s.world.NewEntity(), &component.Particle{
		Kind:     component.ParticleExplosion,
		Position: component.Position{X: x, Y: y},
		Life:     explosionLife,
		MaxLife:  explosionLife,
		MaxSize:  radius,
		Color:    config.CreditsColor,
	})
}

// Beam — луч лазера или звено молнии.
func (s *VisualEffectSystem) Beam(kind component.ParticleKind, x1, y1, x2, y2 float64, c color.RGBA) {
	life := laserLife
	if kind == component.ParticleLightning {
		life = lightningLife
	}
	s.world.Particles.Add(s.world.NewEntity(), &component.Particle{
		Kind:    kind,
		FromX:   x1,
		FromY:   y1,
		ToX:     x2,
		ToY:     y2,
		Life:    life,
		MaxLife: life,
		Color:   c,
	})
}

// Update продвигает частицы и звёзды на один тик.
func (s *VisualEffectSystem) Update() {
	s.world.Particles.Each(func(_ types.EntityID, p *component.Particle) bool {
		p.Life--
		switch p.Kind {
		case component.ParticleExplosion:
			p.Size += p.MaxSize / explosionLife
		case component.ParticleDebris:
			p.X += p.VX
			p.Y += p.VY
			p.VX *= debrisDrag
			p.VY *= debrisDrag
		}
		return true
	})
	s.world.Particles.RemoveIf(func(_ types.EntityID, p *component.Particle) bool {
		return p.Life <= 0
	})

	for i := range s.world.Stars {
		star := &s.world.Stars[i]
		star.Y += star.Speed
		if star.Y > config.FieldHeight {
			star.Y = 0
			star.X = s.prng.Float64() * config.FieldWidth
		}
	}
}
