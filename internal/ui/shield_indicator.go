// internal/ui/shield_indicator.go
package ui

import "image/color"

const (
	ShieldCells     = 10
	ShieldCellValue = 10
)

var (
	shieldHighColor  = color.RGBA{0, 120, 255, 255}
	shieldLowColor   = color.RGBA{220, 40, 40, 255}
	shieldEmptyColor = color.RGBA{0, 0, 0, 255}
)

// ShieldIndicatorCells раскрашивает ячейки щита: каждая ячейка — ShieldCellValue единиц.
// Пока щита больше половины, «избыток» синий, остальное красное; пустые ячейки чёрные.
func ShieldIndicatorCells(shield, maxShield int) []color.RGBA {
	total := (maxShield + ShieldCellValue - 1) / ShieldCellValue
	filled := (max(shield, 0) + ShieldCellValue - 1) / ShieldCellValue
	half := total / 2

	cells := make([]color.RGBA, total)
	for j := range cells {
		switch {
		case j >= filled:
			cells[j] = shieldEmptyColor
		case filled > half && j < filled-half:
			cells[j] = shieldHighColor
		default:
			cells[j] = shieldLowColor
		}
	}
	return cells
}
