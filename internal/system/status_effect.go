// internal/system/status_effect.go
package system

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/types"
)

// StatusEffectSystem управляет жизненным циклом эффектов, таких как замедление.
type StatusEffectSystem struct {
	world *entity.DefenseWorld
}

func NewStatusEffectSystem(world *entity.DefenseWorld) *StatusEffectSystem {
	return &StatusEffectSystem{world: world}
}

// Update уменьшает таймеры замедления на один тик.
func (s *StatusEffectSystem) Update() {
	s.world.Aliens.Each(func(_ types.EntityID, a *component.Alien) bool {
		a.Slow.Tick()
		return true
	})
}

// ApplySlow ставит замедление заново. Повторное попадание не суммируется.
func ApplySlow(a *component.Alien, attack defs.Behavior) {
	factor := attack.SlowFactor
	if factor <= 0 {
		factor = config.SlowMultiplier
	}
	a.Slow = component.SlowEffect{Timer: config.SlowDuration, Factor: factor}
}
