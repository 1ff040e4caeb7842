// internal/system/powerup.go
package system

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/types"
	"go-space-arcade/internal/utils"
)

const crateAmmo = "ammo"

// PowerUpSystem сбрасывает ящики с патронами и выдаёт их танку.
type PowerUpSystem struct {
	world           *entity.ShooterWorld
	stats           *component.ShooterStats
	prng            *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewPowerUpSystem(world *entity.ShooterWorld, stats *component.ShooterStats,
	prng *utils.PRNGService, eventDispatcher *event.Dispatcher) *PowerUpSystem {
	return &PowerUpSystem{world: world, stats: stats, prng: prng, eventDispatcher: eventDispatcher}
}

// Update подбирает ящики под танком и иногда сбрасывает новый, если патронов мало.
func (s *PowerUpSystem) Update() {
	tank := s.world.Tank.Rect
	s.world.PowerUps.RemoveIf(func(id types.EntityID, p *component.PowerUp) bool {
		if !Overlaps(tank, p.Rect) {
			return false
		}
		s.stats.Ammo += config.CrateAmmo
		s.stats.Score += config.CrateScore
		s.eventDispatcher.Dispatch(event.Event{Type: event.CratePicked, Data: id})
		return true
	})

	if s.stats.Ammo < config.CrateAmmoBelow && s.prng.Chance(config.CrateChance) {
		s.Drop(s.prng.Float64()*(config.MapWidth-100) + 50)
	}
}

// Drop кладёт ящик на землю в точке x.
func (s *PowerUpSystem) Drop(x float64) types.EntityID {
	id := s.world.NewEntity()
	s.world.PowerUps.Add(id, &component.PowerUp{
		Rect: component.Rect{X: x, Y: config.GroundY - config.CrateSize, W: config.CrateSize, H: config.CrateSize},
		Kind: crateAmmo,
	})
	return id
}
