package system

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/types"
	"go-space-arcade/internal/utils"
	"math"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	world           *entity.DefenseWorld
	effects         *VisualEffectSystem
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.DefenseWorld, effects *VisualEffectSystem, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		world:           world,
		effects:         effects,
		eventDispatcher: eventDispatcher,
	}
}

// Update выбирает цели и стреляет. tick — номер текущего тика симуляции.
func (s *CombatSystem) Update(tick int) {
	s.world.Towers.Each(func(id types.EntityID, tower *component.Tower) bool {
		tower.Target = s.FindTarget(tower)
		if tower.Target == types.None || tick-tower.LastShot < tower.FireInterval {
			return true
		}
		target, ok := s.world.Aliens.Get(tower.Target)
		if !ok {
			return true
		}
		s.fire(id, tower, tower.Target, target)
		tower.LastShot = tick
		return true
	})
}

// FindTarget ищет ближайшего живого пришельца строго ближе Range.
// При равных расстояниях побеждает тот, кто встретился первым.
func (s *CombatSystem) FindTarget(tower *component.Tower) types.EntityID {
	nearest := types.None
	minDistance := tower.Range
	s.world.Aliens.Each(func(id types.EntityID, alien *component.Alien) bool {
		if alien.Dead() {
			return true
		}
		distance := utils.Distance(tower.X, tower.Y, alien.X, alien.Y)
		if distance < minDistance {
			minDistance = distance
			nearest = id
		}
		return true
	})
	return nearest
}

func (s *CombatSystem) fire(towerID types.EntityID, tower *component.Tower, targetID types.EntityID, target *component.Alien) {
	tower.Angle = math.Atan2(target.Y-tower.Y, target.X-tower.X)

	switch tower.Attack.Kind {
	case defs.BehaviorContinuous:
		target.TakeDamage(tower.Damage)
		s.effects.Beam(component.ParticleLaser, tower.X, tower.Y, target.X, target.Y, tower.Color)
	case defs.BehaviorChain:
		s.chainLightning(tower, targetID, target)
	case defs.BehaviorPierce:
		s.launch(tower, config.RailSpeed, config.RailSize, math.Cos(tower.Angle), math.Sin(tower.Angle))
	case defs.BehaviorExplosive:
		s.launchAt(tower, target, config.MissileSpeed, config.MissileSize)
	default:
		// BOLT и SLOW: обычный снаряд, замедление срабатывает при попадании
		s.launchAt(tower, target, config.BoltSpeed, config.BoltSize)
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TowerFired,
		Data: event.TowerInfo{ID: towerID, DefID: tower.DefID, Name: tower.Name, Level: tower.Level, Attack: tower.Attack.Kind},
	})
}

func (s *CombatSystem) launchAt(tower *component.Tower, target *component.Alien, speed, size float64) {
	dx := target.X - tower.X
	dy := target.Y - tower.Y
	distance := math.Hypot(dx, dy)
	if distance == 0 {
		dx, distance = 1, 1
	}
	s.launch(tower, speed, size, dx/distance, dy/distance)
}

func (s *CombatSystem) launch(tower *component.Tower, speed, size, dirX, dirY float64) {
	proj := &component.Projectile{
		Position: component.Position{X: tower.X, Y: tower.Y},
		Velocity: component.Velocity{VX: dirX * speed, VY: dirY * speed},
		Damage:   tower.Damage,
		Size:     size,
		Attack:   tower.Attack,
		Color:    tower.Color,
		Trail:    component.NewTrail(config.DefenseTrail),
	}
	s.world.Projectiles.Add(s.world.NewEntity(), proj)
}

// chainLightning бьёт основную цель полным уроном, затем перескакивает
// к ближайшему ещё не задетому пришельцу в пределах ChainRange от предыдущего звена.
func (s *CombatSystem) chainLightning(tower *component.Tower, primaryID types.EntityID, primary *component.Alien) {
	primary.TakeDamage(tower.Damage)
	s.effects.Beam(component.ParticleLightning, tower.X, tower.Y, primary.X, primary.Y, tower.Color)

	chained := map[types.EntityID]bool{primaryID: true}
	current := primary
	for i := 0; i < tower.Attack.ChainCount-1; i++ {
		nextID := types.None
		var next *component.Alien
		closest := tower.Attack.ChainRange
		s.world.Aliens.Each(func(id types.EntityID, alien *component.Alien) bool {
			if chained[id] {
				return true
			}
			distance := utils.Distance(current.X, current.Y, alien.X, alien.Y)
			if distance < closest {
				closest = distance
				nextID = id
				next = alien
			}
			return true
		})
		if next == nil {
			break
		}

		next.TakeDamage(tower.Damage * config.ChainFalloff)
		chained[nextID] = true
		s.effects.Beam(component.ParticleLightning, current.X, current.Y, next.X, next.Y, tower.Color)
		current = next
	}
}
