// internal/system/economy.go
package system

import (
	"go-space-arcade/internal/config"
	"math"
)

// Ledger — баланс кредитов или денег. Никогда не уходит в минус.
type Ledger struct {
	Balance int
}

// Earn начисляет сумму. Отрицательные суммы игнорируются.
func (l *Ledger) Earn(amount int) {
	if amount > 0 {
		l.Balance += amount
	}
}

func (l *Ledger) CanAfford(amount int) bool {
	return amount >= 0 && l.Balance >= amount
}

// Spend списывает сумму. При нехватке средств баланс не меняется.
func (l *Ledger) Spend(amount int) bool {
	if !l.CanAfford(amount) {
		return false
	}
	l.Balance -= amount
	return true
}

// UpgradeCost — цена перехода с уровня level на следующий.
func UpgradeCost(baseCost, level int) int {
	return int(math.Floor(float64(baseCost) * config.UpgradeCostFactor * float64(level)))
}

// TotalInvestment — базовая цена плюс все улучшения до уровня level.
func TotalInvestment(baseCost, level int) int {
	total := baseCost
	for i := 1; i < level; i++ {
		total += UpgradeCost(baseCost, i)
	}
	return total
}

// SellRefund — возврат за башню уровня level.
func SellRefund(baseCost, level int) int {
	return int(math.Floor(float64(TotalInvestment(baseCost, level)) * config.SellRefundFraction))
}

// WaveBonus — награда за зачищенную волну.
func WaveBonus(wave int) int {
	return config.WaveBonusBase + config.WaveBonusStep*wave
}

// BuildingMoney — деньги за разрушенное здание.
func BuildingMoney(points int) int {
	return points / config.MoneyPerPoints
}
