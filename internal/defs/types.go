// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// BehaviorKind — вид поведения оружия. Режимы взаимоисключающие.
type BehaviorKind string

const (
	BehaviorBolt       BehaviorKind = "BOLT"       // обычный снаряд
	BehaviorContinuous BehaviorKind = "CONTINUOUS" // мгновенный луч
	BehaviorSlow       BehaviorKind = "SLOW"       // снаряд с замедлением
	BehaviorChain      BehaviorKind = "CHAIN"      // цепная молния
	BehaviorPierce     BehaviorKind = "PIERCE"     // пробивающий снаряд
	BehaviorExplosive  BehaviorKind = "EXPLOSIVE"  // взрыв по области
)

// Behavior — режим атаки вместе с его параметрами.
// Заполнены только поля, относящиеся к Kind.
type Behavior struct {
	Kind        BehaviorKind `yaml:"kind"`
	AOE         float64      `yaml:"aoe,omitempty"`
	ChainCount  int          `yaml:"chainCount,omitempty"`
	ChainRange  float64      `yaml:"chainRange,omitempty"`
	PierceCount int          `yaml:"pierceCount,omitempty"`
	SlowFactor  float64      `yaml:"slowFactor,omitempty"`
}

// Validate проверяет, что параметры соответствуют виду поведения.
func (b Behavior) Validate() error {
	switch b.Kind {
	case BehaviorBolt, BehaviorContinuous:
	case BehaviorSlow:
		if b.SlowFactor <= 0 || b.SlowFactor >= 1 {
			return fmt.Errorf("slowFactor must be within (0, 1), got %v", b.SlowFactor)
		}
	case BehaviorChain:
		if b.ChainCount < 1 || b.ChainRange <= 0 {
			return fmt.Errorf("chain needs chainCount >= 1 and chainRange > 0")
		}
	case BehaviorPierce:
		if b.PierceCount < 1 {
			return fmt.Errorf("pierceCount must be at least 1, got %d", b.PierceCount)
		}
	case BehaviorExplosive:
		if b.AOE <= 0 {
			return fmt.Errorf("aoe must be positive, got %v", b.AOE)
		}
	default:
		return fmt.Errorf("unknown behavior kind %q", b.Kind)
	}
	return nil
}

// HexColor — цвет в виде "#RRGGBB" в YAML.
type HexColor string

// RGBA разбирает цвет. Некорректная строка даёт белый цвет.
func (h HexColor) RGBA() color.RGBA {
	c, err := ParseHexColor(string(h))
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return c
}

// ParseHexColor разбирает "#RRGGBB".
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: expected 6 hex digits", s)
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// GridPoint — клетка сетки (может лежать за её пределами, как вход пути).
type GridPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}
