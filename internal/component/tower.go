// component/tower.go
package component

import (
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/types"
	"image/color"
)

type Tower struct {
	DefID        string // ID из towers.yaml
	Name         string
	GridX, GridY int
	X, Y         float64 // центр клетки
	Damage       float64
	Range        float64
	FireInterval int // тиков между выстрелами
	Level        int // 1..3
	BaseCost     int
	Invested     int // всё, что игрок потратил на башню
	Attack       defs.Behavior
	Target       types.EntityID // пересчитывается каждый тик, может указывать на удалённого пришельца
	Angle        float64
	LastShot     int // тик последнего выстрела
	Color        color.RGBA
	Size         float64
}
