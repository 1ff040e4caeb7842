// internal/defs/towers.go
package defs

import "fmt"

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Cost         int      `yaml:"cost"`
	Damage       float64  `yaml:"damage"`
	Range        float64  `yaml:"range"`
	FireInterval int      `yaml:"fireInterval"` // тиков между выстрелами
	Special      bool     `yaml:"special"`      // открывается только выбором после 9-й волны
	Attack       Behavior `yaml:"attack"`
	Color        HexColor `yaml:"color"`
	Size         float64  `yaml:"size"`
}

func (d TowerDefinition) validate() error {
	if d.ID == "" {
		return fmt.Errorf("tower without id")
	}
	if d.Cost <= 0 {
		return fmt.Errorf("tower %s: cost must be positive, got %d", d.ID, d.Cost)
	}
	if d.Damage <= 0 || d.Range <= 0 {
		return fmt.Errorf("tower %s: damage and range must be positive", d.ID)
	}
	if d.FireInterval <= 0 {
		return fmt.Errorf("tower %s: fireInterval must be positive, got %d", d.ID, d.FireInterval)
	}
	if _, err := ParseHexColor(string(d.Color)); err != nil {
		return fmt.Errorf("tower %s: %w", d.ID, err)
	}
	if err := d.Attack.Validate(); err != nil {
		return fmt.Errorf("tower %s: %w", d.ID, err)
	}
	return nil
}
