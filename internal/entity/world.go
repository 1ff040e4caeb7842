// internal/entity/world.go
package entity

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/types"
)

// IDAllocator выдаёт id, которые никогда не используются повторно,
// даже после перезапуска мира.
type IDAllocator struct {
	next types.EntityID
}

func (a *IDAllocator) NewEntity() types.EntityID {
	a.next++
	return a.next
}

// DefenseWorld — все сущности защиты станции.
type DefenseWorld struct {
	IDAllocator
	Towers      *Store[*component.Tower]
	Aliens      *Store[*component.Alien]
	Projectiles *Store[*component.Projectile]
	Particles   *Store[*component.Particle]
	Stars       []component.Star
}

func NewDefenseWorld() *DefenseWorld {
	return &DefenseWorld{
		Towers:      NewStore[*component.Tower](),
		Aliens:      NewStore[*component.Alien](),
		Projectiles: NewStore[*component.Projectile](),
		Particles:   NewStore[*component.Particle](),
	}
}

// Reset очищает коллекции. Счётчик id продолжает расти.
func (w *DefenseWorld) Reset() {
	w.Towers.Clear()
	w.Aliens.Clear()
	w.Projectiles.Clear()
	w.Particles.Clear()
	w.Stars = nil
}

// ShooterWorld — сущности игры про здания.
type ShooterWorld struct {
	IDAllocator
	Tank        component.Tank
	Camera      component.Camera
	Buildings   *Store[*component.Building]
	Projectiles *Store[*component.Projectile]
	Explosions  *Store[*component.Explosion]
	Debris      *Store[*component.Debris]
	PowerUps    *Store[*component.PowerUp]
}

func NewShooterWorld() *ShooterWorld {
	return &ShooterWorld{
		Buildings:   NewStore[*component.Building](),
		Projectiles: NewStore[*component.Projectile](),
		Explosions:  NewStore[*component.Explosion](),
		Debris:      NewStore[*component.Debris](),
		PowerUps:    NewStore[*component.PowerUp](),
	}
}

func (w *ShooterWorld) Reset() {
	w.Tank = component.Tank{}
	w.Camera = component.Camera{}
	w.Buildings.Clear()
	w.Projectiles.Clear()
	w.Explosions.Clear()
	w.Debris.Clear()
	w.PowerUps.Clear()
}

// LiveBuildings считает неразрушенные здания.
func (w *ShooterWorld) LiveBuildings() int {
	n := 0
	w.Buildings.Each(func(_ types.EntityID, b *component.Building) bool {
		if !b.Destroyed {
			n++
		}
		return true
	})
	return n
}
