// internal/system/artillery.go
package system

import (
	"errors"
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/types"
	"log"
	"math"
)

const (
	hitBlast       = 20.0
	explosiveBlast = 40.0
	collapseBlast  = 50.0
)

var ErrUnknownWeapon = errors.New("unknown weapon slot")

// Armory — оружие танка. Owned меняется при покупке, каталог остаётся нетронутым.
type Armory struct {
	Weapons  []defs.WeaponDefinition
	Current  int
	LastShot int
	Open     bool
}

// NewArmory копирует каталог оружия. Первое оружие выдаётся сразу.
func NewArmory(catalog []defs.WeaponDefinition) *Armory {
	weapons := make([]defs.WeaponDefinition, len(catalog))
	copy(weapons, catalog)
	return &Armory{Weapons: weapons, LastShot: -1 << 20}
}

// Weapon — текущее оружие.
func (a *Armory) Weapon() defs.WeaponDefinition {
	return a.Weapons[a.Current]
}

// ArmoryAction — итог выбора слота.
type ArmoryAction int

const (
	ArmoryEquipped ArmoryAction = iota
	ArmoryPurchased
)

// Select покупает оружие в слоте (с нуля) или экипирует уже купленное.
func (a *Armory) Select(slot int, wallet *Ledger) (ArmoryAction, error) {
	if slot < 0 || slot >= len(a.Weapons) {
		return ArmoryEquipped, ErrUnknownWeapon
	}
	w := &a.Weapons[slot]
	if w.Owned {
		a.Current = slot
		return ArmoryEquipped, nil
	}
	if !wallet.Spend(w.Cost) {
		return ArmoryPurchased, ErrInsufficientFunds
	}
	w.Owned = true
	a.Current = slot
	return ArmoryPurchased, nil
}

// ArtillerySystem стреляет из танка и разрушает здания.
type ArtillerySystem struct {
	world           *entity.ShooterWorld
	armory          *Armory
	stats           *component.ShooterStats
	wallet          *Ledger
	effects         *ShooterEffectSystem
	eventDispatcher *event.Dispatcher
}

func NewArtillerySystem(world *entity.ShooterWorld, armory *Armory, stats *component.ShooterStats,
	wallet *Ledger, effects *ShooterEffectSystem, eventDispatcher *event.Dispatcher) *ArtillerySystem {
	return &ArtillerySystem{
		world:           world,
		armory:          armory,
		stats:           stats,
		wallet:          wallet,
		effects:         effects,
		eventDispatcher: eventDispatcher,
	}
}

// Fire выпускает снаряд из центра танка по направлению башни.
// Скорострельность считается в тиках симуляции.
func (s *ArtillerySystem) Fire() bool {
	if !s.stats.Running || s.stats.Ammo <= 0 || s.armory.Open {
		return false
	}
	weapon := s.armory.Weapon()
	if float64(s.stats.Tick-s.armory.LastShot) < weapon.FireInterval {
		return false
	}

	tank := &s.world.Tank
	cx, cy := tank.Center()
	s.world.Projectiles.Add(s.world.NewEntity(), &component.Projectile{
		Position: component.Position{X: cx, Y: cy},
		Velocity: component.Velocity{
			VX: math.Cos(tank.TurretAngle) * weapon.Speed,
			VY: math.Sin(tank.TurretAngle) * weapon.Speed,
		},
		Damage: weapon.Damage,
		Size:   weapon.Size,
		Attack: weapon.Attack,
		Color:  weapon.Color.RGBA(),
		Trail:  component.NewTrail(config.ShooterTrail),
	})
	s.stats.Ammo--
	s.armory.LastShot = s.stats.Tick
	s.eventDispatcher.Dispatch(event.Event{Type: event.ShotFired})
	return true
}

// Update двигает снаряды и проверяет попадания в здания.
func (s *ArtillerySystem) Update() {
	spent := make(map[types.EntityID]bool)
	s.world.Projectiles.Each(func(id types.EntityID, proj *component.Projectile) bool {
		proj.Trail.Push(proj.Position)
		proj.X += proj.VX
		proj.Y += proj.VY

		if s.strike(proj) || outOfMap(proj.X, proj.Y) {
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

func outOfMap(x, y float64) bool {
	return x < -config.ProjectileSlop || x > config.MapWidth+config.ProjectileSlop ||
		y < -config.ProjectileSlop || y > config.GroundY+config.ProjectileSlop
}

func (s *ArtillerySystem) strike(proj *component.Projectile) bool {
	hitID := types.None
	var hit *component.Building
	s.world.Buildings.Each(func(id types.EntityID, b *component.Building) bool {
		if !b.Destroyed && Contains(b.Rect, proj.X, proj.Y) {
			hitID, hit = id, b
			return false
		}
		return true
	})
	if hit == nil {
		return false
	}

	s.damage(hitID, hit, proj.Damage)
	if proj.Attack.Kind == defs.BehaviorExplosive {
		s.effects.Explosion(proj.X, proj.Y, explosiveBlast)
		aoe := proj.Attack.AOE
		if aoe <= 0 {
			aoe = config.ShooterAOE
		}
		s.world.Buildings.Each(func(id types.EntityID, b *component.Building) bool {
			if id != hitID && !b.Destroyed && RectDistance(proj.X, proj.Y, b.Rect) < aoe {
				s.damage(id, b, proj.Damage*config.SplashFalloff)
			}
			return true
		})
	} else {
		s.effects.Explosion(proj.X, proj.Y, hitBlast)
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BuildingHit,
		Data: event.BuildingInfo{ID: hitID, X: proj.X, Y: proj.Y},
	})
	return true
}

func (s *ArtillerySystem) damage(id types.EntityID, b *component.Building, amount float64) {
	b.Health -= amount
	if b.Health > 0 || b.Destroyed {
		return
	}
	b.Health = 0
	b.Destroyed = true
	money := BuildingMoney(b.Points)
	s.stats.Destroyed++
	s.stats.Score += b.Points
	s.wallet.Earn(money)

	cx, cy := b.Center()
	s.effects.Explosion(cx, cy, collapseBlast)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BuildingDestroyed,
		Data: event.BuildingInfo{ID: id, Points: b.Points, Money: money, X: cx, Y: cy},
	})
}

// CheckOutcome завершает игру победой или поражением.
func (s *ArtillerySystem) CheckOutcome() {
	if !s.stats.Running {
		return
	}
	if s.world.LiveBuildings() == 0 {
		s.stats.Score += config.WinBonus
		s.stats.Running = false
		s.stats.Won = true
		log.Printf("[ArtillerySystem] City cleared, score %d", s.stats.Score)
		s.eventDispatcher.Dispatch(event.Event{Type: event.CityCleared, Data: s.stats.Score})
		return
	}
	if s.stats.Ammo <= 0 && s.world.Projectiles.Len() == 0 {
		s.stats.Running = false
		log.Printf("[ArtillerySystem] Out of ammo, score %d", s.stats.Score)
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: s.stats.Score})
	}
}
