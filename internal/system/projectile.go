// internal/system/projectile.go
package system

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/types"
)

const pierceDebris = 6

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	world           *entity.DefenseWorld
	effects         *VisualEffectSystem
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.DefenseWorld, effects *VisualEffectSystem, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		effects:         effects,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update() {
	spent := make(map[types.EntityID]bool)
	s.world.Projectiles.Each(func(id types.EntityID, proj *component.Projectile) bool {
		proj.Trail.Push(proj.Position)
		proj.X += proj.VX
		proj.Y += proj.VY

		var hit bool
		if proj.Attack.Kind == defs.BehaviorPierce {
			hit = s.pierce(proj)
		} else {
			hit = s.strike(proj)
		}
		if hit || outOfField(proj.X, proj.Y) {
			spent[id] = true
		}
		return true
	})
	if len(spent) > 0 {
		s.world.Projectiles.RemoveIf(func(id types.EntityID, _ *component.Projectile) bool {
			return spent[id]
		})
	}
}

func outOfField(x, y float64) bool {
	return x < 0 || x > config.FieldWidth || y < 0 || y > config.FieldHeight
}

// firstHit — первый живой пришелец, в радиус которого попал снаряд.
func (s *ProjectileSystem) firstHit(proj *component.Projectile) (types.EntityID, *component.Alien) {
	hitID := types.None
	var hit *component.Alien
	s.world.Aliens.Each(func(id types.EntityID, alien *component.Alien) bool {
		if alien.Dead() {
			return true
		}
		if WithinRadius(proj.X, proj.Y, alien.X, alien.Y, alien.Size) {
			hitID, hit = id, alien
			return false
		}
		return true
	})
	return hitID, hit
}

// strike обрабатывает обычные, замедляющие и взрывные снаряды.
func (s *ProjectileSystem) strike(proj *component.Projectile) bool {
	hitID, alien := s.firstHit(proj)
	if alien == nil {
		return false
	}
	alien.TakeDamage(proj.Damage)

	switch proj.Attack.Kind {
	case defs.BehaviorExplosive:
		s.effects.Explosion(proj.X, proj.Y, proj.Attack.AOE)
		s.world.Aliens.Each(func(id types.EntityID, other *component.Alien) bool {
			if id != hitID && WithinRadius(proj.X, proj.Y, other.X, other.Y, proj.Attack.AOE) {
				other.TakeDamage(proj.Damage * config.SplashFalloff)
			}
			return true
		})
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ProjectileBurst,
			Data: event.AlienInfo{ID: hitID, Kind: alien.Kind, X: proj.X, Y: proj.Y},
		})
	case defs.BehaviorSlow:
		ApplySlow(alien, proj.Attack)
	}
	return true
}

// pierce наносит урон каждому новому пришельцу на пути.
// Снаряд исчезает, когда множество пробитых достигает PierceCount.
func (s *ProjectileSystem) pierce(proj *component.Projectile) bool {
	spent := false
	s.world.Aliens.Each(func(id types.EntityID, alien *component.Alien) bool {
		if alien.Dead() || proj.HasPierced(id) {
			return true
		}
		if !WithinRadius(proj.X, proj.Y, alien.X, alien.Y, alien.Size) {
			return true
		}
		alien.TakeDamage(proj.Damage)
		s.effects.Debris(alien.X, alien.Y, proj.Color, pierceDebris)
		if proj.MarkPierced(id) >= proj.Attack.PierceCount {
			spent = true
			return false
		}
		return true
	})
	return spent
}
