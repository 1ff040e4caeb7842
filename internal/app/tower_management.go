// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/system"
	"go-space-arcade/internal/ui"
	"log"
)

// SetCursor запоминает клетку под курсором в пикселях поля.
func (d *Defense) SetCursor(px, py float64) {
	d.Hover, d.HoverValid = d.Grid.PixelToCell(px, py)
}

// Click обрабатывает клик по полю: карточки выбора, магазин, затем клетка.
func (d *Defense) Click(px, py int, shift bool) {
	if d.AwaitingChoice() {
		for i, opt := range ui.ChoiceOptions(d.Catalog.SpecialTowers()) {
			if opt.Contains(px, py) {
				d.ChooseSpecial(i + 1)
				return
			}
		}
		return
	}
	if b, ok := ui.ButtonAt(d.Shop.Buttons(d.ShopTowers()), px, py); ok {
		d.Selected = b.Value
		return
	}
	cell, ok := d.Grid.PixelToCell(float64(px), float64(py))
	if !ok {
		return
	}
	d.ClickCell(cell.X, cell.Y, shift)
}

// ClickCell ставит выбранную башню или, с Shift, улучшает стоящую.
func (d *Defense) ClickCell(x, y int, shift bool) {
	if !d.Progress.Running || d.AwaitingChoice() {
		return
	}
	if _, _, ok := d.construction.TowerAt(x, y); ok && shift {
		d.UpgradeAt(x, y)
		return
	}

	_, err := d.construction.Place(x, y, d.Selected)
	switch {
	case err == nil:
	case errors.Is(err, system.ErrInsufficientFunds):
		d.notify("Insufficient credits!", ui.SeverityError)
	case errors.Is(err, system.ErrTowerCap):
		d.notify(fmt.Sprintf("Maximum %d towers reached! Sell towers to build more.", config.MaxTowers), ui.SeverityError)
	case errors.Is(err, system.ErrOccupied):
		d.notify("Cannot deploy here! Shift+Click to upgrade towers", ui.SeverityError)
	case errors.Is(err, system.ErrLocked):
		d.notify("That tower is not unlocked yet", ui.SeverityError)
	default:
		log.Printf("[Defense %s] Place at (%d,%d) rejected: %v", d.shortID(), x, y, err)
	}
}

// UpgradeAt улучшает башню в клетке.
func (d *Defense) UpgradeAt(x, y int) {
	if !d.Progress.Running {
		return
	}
	tower, err := d.construction.Upgrade(x, y)
	switch {
	case err == nil:
	case errors.Is(err, system.ErrNoTower):
		d.notify("Hover over a tower to upgrade with E key", ui.SeverityInfo)
	case errors.Is(err, system.ErrMaxLevel):
		d.notify(fmt.Sprintf("%s is already max level (%d)!", tower.Name, config.MaxTowerLevel), ui.SeverityError)
	case errors.Is(err, system.ErrInsufficientFunds):
		d.notify("Insufficient credits for upgrade!", ui.SeverityError)
	}
}

// SellAt продаёт башню в клетке.
func (d *Defense) SellAt(x, y int) {
	if !d.Progress.Running {
		return
	}
	if _, err := d.construction.Sell(x, y); errors.Is(err, system.ErrNoTower) {
		d.notify("Hover over a tower to sell with F key", ui.SeverityInfo)
	}
}

// UpgradeHovered и SellHovered работают с клеткой под курсором.
func (d *Defense) UpgradeHovered() {
	if d.HoverValid {
		d.UpgradeAt(d.Hover.X, d.Hover.Y)
	}
}

func (d *Defense) SellHovered() {
	if d.HoverValid {
		d.SellAt(d.Hover.X, d.Hover.Y)
	}
}

// SelectTower выбирает n-ю (с единицы) открытую башню.
func (d *Defense) SelectTower(n int) bool {
	towers := d.ShopTowers()
	if n < 1 || n > len(towers) {
		return false
	}
	d.Selected = towers[n-1].ID
	return true
}

// ChooseSpecial открывает n-ю особую башню во время выбора.
func (d *Defense) ChooseSpecial(n int) bool {
	specials := d.Catalog.SpecialTowers()
	if n < 1 || n > len(specials) {
		return false
	}
	def := specials[n-1]
	if !d.waves.ChooseSpecial(def.ID) {
		return false
	}
	d.Selected = def.ID
	d.notify(fmt.Sprintf("%s unlocked! Wave %d starting now!", def.Name, d.Progress.Wave), ui.SeveritySuccess)
	return true
}

// NumberKey — клавиши 1..6: выбор особой башни, если он открыт, иначе выбор башни в магазине.
func (d *Defense) NumberKey(n int) {
	if d.AwaitingChoice() {
		d.ChooseSpecial(n)
		return
	}
	d.SelectTower(n)
}

// TogglePause ставит игру на паузу. Во время выбора башни пауза не снимается.
func (d *Defense) TogglePause() {
	p := d.Progress
	if !p.Running || d.AwaitingChoice() {
		return
	}
	p.Paused = !p.Paused
	if p.Paused {
		d.notify("System Paused - Press Space", ui.SeverityInfo)
	} else {
		d.notify("System Active", ui.SeverityInfo)
	}
}

// ToggleShop прячет или показывает магазин.
func (d *Defense) ToggleShop() {
	if !d.Progress.Running {
		return
	}
	if d.Shop.Toggle() {
		d.notify("Shop Visible", ui.SeverityInfo)
	} else {
		d.notify("Shop Hidden", ui.SeverityInfo)
	}
}
