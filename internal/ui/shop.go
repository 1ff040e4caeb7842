// internal/ui/shop.go
package ui

import (
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
)

// ShopSlide — выезжающая панель магазина. Offset 0 — панель видна полностью,
// ShopSlideMax — спрятана за краем экрана.
type ShopSlide struct {
	Offset float64
	Hidden bool
}

// Toggle прячет или показывает панель и возвращает новое состояние видимости.
func (s *ShopSlide) Toggle() bool {
	s.Hidden = !s.Hidden
	return !s.Hidden
}

// Update сдвигает панель на один шаг к цели. Вызывается каждый тик, в том числе на паузе.
func (s *ShopSlide) Update() {
	target := 0.0
	if s.Hidden {
		target = config.ShopSlideMax
	}
	switch {
	case s.Offset < target:
		s.Offset = min(target, s.Offset+config.ShopSlideStep)
	case s.Offset > target:
		s.Offset = max(target, s.Offset-config.ShopSlideStep)
	}
}

// Карточки магазина: ряд с шагом shopCardStep от левого края панели.
const (
	shopCardStep   = 148
	shopCardWidth  = 140
	shopCardHeight = 80
)

// Top — верхний край панели с учётом сдвига.
func (s *ShopSlide) Top() int {
	return config.ScreenHeight - config.ShopSlideMax + int(s.Offset)
}

// Buttons раскладывает открытые башни по карточкам панели.
func (s *ShopSlide) Buttons(towers []defs.TowerDefinition) []Button {
	top := s.Top()
	out := make([]Button, 0, len(towers))
	for i, def := range towers {
		out = append(out, NewButton(20+i*shopCardStep, top+30, shopCardWidth, shopCardHeight, def.Name, def.ID))
	}
	return out
}
