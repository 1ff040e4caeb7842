// internal/defs/weapons.go
package defs

import "fmt"

// WeaponDefinition — оружие танка в игре про здания.
type WeaponDefinition struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Damage       float64  `yaml:"damage"`
	Speed        float64  `yaml:"speed"`
	Size         float64  `yaml:"size"`
	Cost         int      `yaml:"cost"`
	FireInterval float64  `yaml:"fireInterval"` // в тиках, может быть дробным
	Owned        bool     `yaml:"owned"`        // есть у игрока с самого начала
	Attack       Behavior `yaml:"attack"`
	Color        HexColor `yaml:"color"`
}

func (d WeaponDefinition) validate() error {
	if d.Damage <= 0 || d.Speed <= 0 || d.Size <= 0 {
		return fmt.Errorf("weapon %s: damage, speed and size must be positive", d.ID)
	}
	if d.Cost < 0 {
		return fmt.Errorf("weapon %s: cost cannot be negative", d.ID)
	}
	if d.FireInterval <= 0 {
		return fmt.Errorf("weapon %s: fireInterval must be positive", d.ID)
	}
	switch d.Attack.Kind {
	case BehaviorBolt, BehaviorExplosive:
	default:
		return fmt.Errorf("weapon %s: unsupported attack %q", d.ID, d.Attack.Kind)
	}
	return d.Attack.Validate()
}

// BuildingType — тип здания и диапазоны его размеров.
type BuildingType struct {
	ID           string   `yaml:"id"`
	Style        string   `yaml:"style"`
	Health       int      `yaml:"health"`
	Points       int      `yaml:"points"`
	Color        HexColor `yaml:"color"`
	WidthMin     float64  `yaml:"widthMin"`
	WidthSpread  float64  `yaml:"widthSpread"`
	HeightMin    float64  `yaml:"heightMin"`
	HeightSpread float64  `yaml:"heightSpread"`
}

func (b BuildingType) validate() error {
	if b.Health <= 0 || b.Points < 0 {
		return fmt.Errorf("building %s: health must be positive and points non-negative", b.ID)
	}
	if b.WidthMin <= 0 || b.HeightMin <= 0 {
		return fmt.Errorf("building %s: minimum dimensions must be positive", b.ID)
	}
	return nil
}
