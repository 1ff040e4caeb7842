// internal/defs/aliens.go
package defs

import "fmt"

// Типы пришельцев, на которые завязана логика волн.
const (
	AlienScout      = "scout"
	AlienFighter    = "fighter"
	AlienCruiser    = "cruiser"
	AlienMothership = "mothership"
)

// AlienDefinition — базовые характеристики пришельца до масштабирования волной.
type AlienDefinition struct {
	ID     string   `yaml:"id"`
	Health float64  `yaml:"health"`
	Speed  float64  `yaml:"speed"` // единиц за тик
	Reward float64  `yaml:"reward"`
	Size   float64  `yaml:"size"` // радиус столкновения
	Color  HexColor `yaml:"color"`
	Shapes []string `yaml:"shapes"`
}

func (d AlienDefinition) validate() error {
	if d.Health <= 0 || d.Speed <= 0 || d.Size <= 0 {
		return fmt.Errorf("alien %s: health, speed and size must be positive", d.ID)
	}
	if d.Reward < 0 {
		return fmt.Errorf("alien %s: reward cannot be negative", d.ID)
	}
	if len(d.Shapes) == 0 {
		return fmt.Errorf("alien %s: at least one shape is required", d.ID)
	}
	return nil
}
