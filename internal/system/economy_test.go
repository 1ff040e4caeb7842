package system

import (
	"go-space-arcade/internal/utils"
	"testing"
)

func TestLedgerNeverNegative(t *testing.T) {
	prng := utils.NewPRNGService(7)
	l := &Ledger{Balance: 200}
	for i := 0; i < 1000; i++ {
		amount := prng.Intn(300) - 50
		if prng.Chance(0.5) {
			before := l.Balance
			if !l.Spend(amount) && l.Balance != before {
				t.Fatalf("failed Spend(%d) changed the balance", amount)
			}
		} else {
			l.Earn(amount)
		}
		if l.Balance < 0 {
			t.Fatalf("balance went negative: %d", l.Balance)
		}
	}
}

func TestLedgerSpend(t *testing.T) {
	l := &Ledger{Balance: 100}
	if l.Spend(101) {
		t.Error("expected Spend to fail with insufficient balance")
	}
	if !l.Spend(100) || l.Balance != 0 {
		t.Errorf("expected exact spend to succeed, balance %d", l.Balance)
	}
	if l.Spend(-10) {
		t.Error("negative spend must be rejected")
	}
}

func TestUpgradeAndRefund(t *testing.T) {
	tests := []struct {
		base, level       int
		upgrade, invested int
		refund            int
	}{
		{150, 1, 120, 150, 75},
		{150, 2, 240, 270, 135},
		{150, 3, 360, 510, 255},
		{350, 1, 280, 350, 175},
		{450, 2, 720, 810, 405},
	}
	for _, tt := range tests {
		if got := UpgradeCost(tt.base, tt.level); got != tt.upgrade {
			t.Errorf("UpgradeCost(%d, %d) = %d, want %d", tt.base, tt.level, got, tt.upgrade)
		}
		if got := TotalInvestment(tt.base, tt.level); got != tt.invested {
			t.Errorf("TotalInvestment(%d, %d) = %d, want %d", tt.base, tt.level, got, tt.invested)
		}
		if got := SellRefund(tt.base, tt.level); got != tt.refund {
			t.Errorf("SellRefund(%d, %d) = %d, want %d", tt.base, tt.level, got, tt.refund)
		}
	}
}

func TestWaveBonusAndBuildingMoney(t *testing.T) {
	if got := WaveBonus(1); got != 75 {
		t.Errorf("WaveBonus(1) = %d, want 75", got)
	}
	if got := WaveBonus(10); got != 210 {
		t.Errorf("WaveBonus(10) = %d, want 210", got)
	}
	if got := BuildingMoney(150); got != 30 {
		t.Errorf("BuildingMoney(150) = %d, want 30", got)
	}
	if got := BuildingMoney(12); got != 2 {
		t.Errorf("BuildingMoney(12) = %d, want 2", got)
	}
}
