// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"go-space-arcade/internal/config"
	"image/color"
	"strings"
)

// WaveIndicator — подпись номера волны в HUD.
type WaveIndicator struct {
	Color     color.RGBA
	BossColor color.RGBA
}

func NewWaveIndicator() *WaveIndicator {
	return &WaveIndicator{
		Color:     config.ShieldColor,
		BossColor: config.BossColor,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Text — "Wave N (римскими)".
func (i *WaveIndicator) Text(wave int) string {
	if wave <= 0 {
		return ""
	}
	return fmt.Sprintf("Wave %d (%s)", wave, toRoman(wave))
}

// TextColor красный для волн босса.
func (i *WaveIndicator) TextColor(wave int) color.RGBA {
	if wave > 0 && wave%config.BossWaveEvery == 0 {
		return i.BossColor
	}
	return i.Color
}
