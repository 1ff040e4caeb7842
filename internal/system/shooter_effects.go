// internal/system/shooter_effects.go
package system

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/types"
	"go-space-arcade/internal/utils"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	blastLife  = 30
	shardCount = 8
	shardLife  = 60
)

// ShooterEffectSystem — вспышки и обломки игры про здания.
type ShooterEffectSystem struct {
	world *entity.ShooterWorld
	prng  *utils.PRNGService
}

func NewShooterEffectSystem(world *entity.ShooterWorld, prng *utils.PRNGService) *ShooterEffectSystem {
	return &ShooterEffectSystem{world: world, prng: prng}
}

// Explosion добавляет вспышку и восемь обломков, подброшенных вверх.
func (s *ShooterEffectSystem) Explosion(x, y, size float64) {
	s.world.Explosions.Add(s.world.NewEntity(), &component.Explosion{
		Position: component.Position{X: x, Y: y},
		MaxSize:  size,
		Life:     blastLife,
	})
	for i := 0; i < shardCount; i++ {
		// оттенки от красно-оранжевого до жёлтого
		r, g, b := colorful.Hsl(s.prng.Range(15, 60), 0.7, 0.5).RGB255()
		s.world.Debris.Add(s.world.NewEntity(), &component.Debris{
			Position: component.Position{X: x, Y: y},
			Velocity: component.Velocity{
				VX: (s.prng.Float64() - 0.5) * 10,
				VY: -s.prng.Range(2, 8),
			},
			Life:  shardLife,
			Size:  s.prng.Range(2, 4),
			Color: color.RGBA{r, g, b, 255},
		})
	}
}

func (s *ShooterEffectSystem) Update() {
	s.world.Explosions.Each(func(_ types.EntityID, e *component.Explosion) bool {
		e.Size += e.MaxSize / blastLife
		e.Life--
		return true
	})
	s.world.Explosions.RemoveIf(func(_ types.EntityID, e *component.Explosion) bool {
		return e.Life <= 0
	})

	s.world.Debris.Each(func(_ types.EntityID, d *component.Debris) bool {
		d.X += d.VX
		d.Y += d.VY
		d.VY += config.DebrisGravity
		d.VX *= config.DebrisDrag
		d.Life--
		return true
	})
	s.world.Debris.RemoveIf(func(_ types.EntityID, d *component.Debris) bool {
		return d.Life <= 0 || d.Y > config.GroundY
	})
}
