// internal/system/movement.go
package system

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/types"
	"go-space-arcade/internal/utils"
	"go-space-arcade/pkg/gridmap"
	"image/color"
	"log"
	"math"
)

const leakDebris = 15

var leakColor = color.RGBA{255, 0, 0, 255}

// MovementSystem ведёт пришельцев по маршруту и снимает щит за прорвавшихся.
type MovementSystem struct {
	world           *entity.DefenseWorld
	grid            *gridmap.Grid
	progress        *component.Progress
	effects         *VisualEffectSystem
	eventDispatcher *event.Dispatcher
}

// PathPoints переводит маршрут из каталога в точки сетки.
func PathPoints(path []defs.GridPoint) []gridmap.Point {
	out := make([]gridmap.Point, len(path))
	for i, p := range path {
		out[i] = gridmap.Point{X: p.X, Y: p.Y}
	}
	return out
}

func NewMovementSystem(world *entity.DefenseWorld, grid *gridmap.Grid, progress *component.Progress,
	effects *VisualEffectSystem, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{
		world:           world,
		grid:            grid,
		progress:        progress,
		effects:         effects,
		eventDispatcher: eventDispatcher,
	}
}

func (s *MovementSystem) Update() {
	last := len(s.grid.Path) - 1
	leaked := make(map[types.EntityID]bool)

	s.world.Aliens.Each(func(id types.EntityID, alien *component.Alien) bool {
		alien.Rotation = utils.NormalizeAngle(alien.Rotation + config.AlienSpinSpeed)
		if alien.PathIndex >= last {
			leaked[id] = true
			return true
		}

		tx, ty := s.grid.Waypoint(alien.PathIndex + 1)
		dx := tx - alien.X
		dy := ty - alien.Y
		dist := math.Hypot(dx, dy)
		if dist < config.WaypointArrival {
			alien.PathIndex++
			return true
		}
		speed := alien.EffectiveSpeed()
		alien.X += dx / dist * speed
		alien.Y += dy / dist * speed
		return true
	})

	if len(leaked) == 0 {
		return
	}
	s.world.Aliens.RemoveIf(func(id types.EntityID, alien *component.Alien) bool {
		if !leaked[id] {
			return false
		}
		s.progress.Shield -= config.ShieldLeakCost
		if s.progress.Shield < 0 {
			s.progress.Shield = 0
		}
		s.effects.Debris(alien.X, alien.Y, leakColor, leakDebris)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.AlienLeaked,
			Data: event.AlienInfo{ID: id, Kind: alien.Kind, X: alien.X, Y: alien.Y},
		})
		return true
	})

	if s.progress.Shield <= 0 && s.progress.Running {
		s.progress.Running = false
		log.Printf("[MovementSystem] Shield depleted on wave %d", s.progress.Wave)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.GameOver,
			Data: event.WaveInfo{Wave: s.progress.Wave},
		})
	}
}
