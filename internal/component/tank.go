// internal/component/tank.go
package component

// Tank — танк игрока. Башня вращается независимо от корпуса.
type Tank struct {
	Rect
	Angle       float64 // корпус: 0 вправо, π влево
	TurretAngle float64
	Speed       float64
	Weapon      string // id текущего оружия
}

// Center — центр танка, откуда вылетают снаряды.
func (t *Tank) Center() (float64, float64) {
	return t.Rect.Center()
}

// Camera сглаженно следует за танком.
type Camera struct {
	X, Y             float64
	TargetX, TargetY float64
}
