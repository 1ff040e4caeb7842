package utils

import (
	"go-space-arcade/internal/defs"
	"math"
	"testing"
)

func TestChooseWeighted(t *testing.T) {
	rng := NewPRNGService(7)

	t.Run("single entry always wins", func(t *testing.T) {
		entries := []defs.SpawnWeight{{Alien: "scout", Weight: 100}}
		for i := 0; i < 50; i++ {
			if got := rng.ChooseWeighted(entries); got != "scout" {
				t.Fatalf("expected scout, got %s", got)
			}
		}
	})

	t.Run("zero weight is never chosen", func(t *testing.T) {
		entries := []defs.SpawnWeight{{Alien: "scout", Weight: 0}, {Alien: "fighter", Weight: 5}}
		for i := 0; i < 200; i++ {
			if got := rng.ChooseWeighted(entries); got != "fighter" {
				t.Fatalf("expected fighter, got %s", got)
			}
		}
	})

	t.Run("distribution roughly follows weights", func(t *testing.T) {
		entries := []defs.SpawnWeight{{Alien: "a", Weight: 25}, {Alien: "b", Weight: 75}}
		counts := map[string]int{}
		for i := 0; i < 4000; i++ {
			counts[rng.ChooseWeighted(entries)]++
		}
		if counts["a"] < 800 || counts["a"] > 1200 {
			t.Errorf("expected about 1000 picks of a, got %d", counts["a"])
		}
	})

	t.Run("empty table", func(t *testing.T) {
		if got := rng.ChooseWeighted(nil); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}

func TestSeededServicesAgree(t *testing.T) {
	a, b := NewPRNGService(99), NewPRNGService(99)
	for i := 0; i < 20; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed must produce the same sequence")
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"inside range", 1, 1},
		{"three half turns", 3 * math.Pi, math.Pi},
		{"past pi", math.Pi + 0.5, -math.Pi + 0.5},
		{"below minus pi", -math.Pi - 0.5, math.Pi - 0.5},
		{"many turns", 10*math.Pi + 0.25, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp: expected 3, got %v", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Errorf("Clamp: expected 0, got %v", got)
	}
}
