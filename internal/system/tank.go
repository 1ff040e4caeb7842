// internal/system/tank.go
package system

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/types"
	"go-space-arcade/internal/utils"
	"math"
)

// TankControls — удерживаемые клавиши и курсор в координатах экрана.
type TankControls struct {
	Left, Right, Up, Down bool
	CursorX, CursorY      float64
}

// TankSystem двигает танк, наводит башню и ведёт камеру.
type TankSystem struct {
	world *entity.ShooterWorld
}

func NewTankSystem(world *entity.ShooterWorld) *TankSystem {
	return &TankSystem{world: world}
}

// Reset ставит танк на стартовую позицию.
func (s *TankSystem) Reset(weapon string) {
	s.world.Tank = component.Tank{
		Rect:   component.Rect{X: config.TankStartX, Y: config.TankStartY, W: config.TankWidth, H: config.TankHeight},
		Speed:  config.TankSpeed,
		Weapon: weapon,
	}
	s.world.Camera = component.Camera{}
}

// Update двигает танк по осям по отдельности: упор в здание по одной оси
// не мешает скользить по другой.
func (s *TankSystem) Update(c TankControls) {
	tank := &s.world.Tank
	oldX, oldY := tank.X, tank.Y
	newX, newY := oldX, oldY

	if c.Left {
		newX = tank.X - tank.Speed
		tank.Angle = math.Pi
	}
	if c.Right {
		newX = tank.X + tank.Speed
		tank.Angle = 0
	}
	if c.Up {
		newY = tank.Y - tank.Speed
	}
	if c.Down {
		newY = tank.Y + tank.Speed
	}

	newX = utils.Clamp(newX, 0, config.MapWidth-tank.W)
	newY = utils.Clamp(newY, 0, config.GroundY-tank.H)

	if !s.Blocked(component.Rect{X: newX, Y: oldY, W: tank.W, H: tank.H}) {
		tank.X = newX
	}
	if !s.Blocked(component.Rect{X: tank.X, Y: newY, W: tank.W, H: tank.H}) {
		tank.Y = newY
	}

	cx, cy := tank.Center()
	worldX := c.CursorX + s.world.Camera.X
	worldY := c.CursorY + s.world.Camera.Y
	tank.TurretAngle = math.Atan2(worldY-cy, worldX-cx)
}

// Blocked сообщает, пересекает ли прямоугольник живое здание.
func (s *TankSystem) Blocked(r component.Rect) bool {
	blocked := false
	s.world.Buildings.Each(func(_ types.EntityID, b *component.Building) bool {
		if !b.Destroyed && Overlaps(r, b.Rect) {
			blocked = true
			return false
		}
		return true
	})
	return blocked
}

// UpdateCamera плавно подтягивает камеру к танку в пределах карты.
func (s *TankSystem) UpdateCamera() {
	cam := &s.world.Camera
	cx, cy := s.world.Tank.Center()
	cam.TargetX = utils.Clamp(cx-config.ScreenWidth/2, 0, config.MapWidth-config.ScreenWidth)
	cam.TargetY = utils.Clamp(cy-config.ShooterHeight/2, -50, config.GroundY-config.ShooterHeight+100)
	cam.X = utils.Lerp(cam.X, cam.TargetX, config.CameraSmooth)
	cam.Y = utils.Lerp(cam.Y, cam.TargetY, config.CameraSmooth)
}
