package system

import (
	"go-space-arcade/internal/component"
	"math"
	"testing"
)

func TestOverlaps(t *testing.T) {
	base := component.Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		r    component.Rect
		want bool
	}{
		{"inside", component.Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", component.Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching edge", component.Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching corner", component.Rect{X: 10, Y: 10, W: 5, H: 5}, false},
		{"apart", component.Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(base, tt.r); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", base, tt.r, got, tt.want)
			}
			if got := Overlaps(tt.r, base); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %v", tt.r)
			}
		})
	}
}

func TestContainsIsStrict(t *testing.T) {
	r := component.Rect{X: 10, Y: 10, W: 20, H: 20}
	if !Contains(r, 15, 15) {
		t.Error("expected point inside")
	}
	if Contains(r, 10, 15) || Contains(r, 30, 15) || Contains(r, 15, 30) {
		t.Error("points on the border must not be contained")
	}
}

func TestWithinRadius(t *testing.T) {
	if !WithinRadius(3, 0, 0, 0, 5) {
		t.Error("3 < 5 should be within")
	}
	if WithinRadius(5, 0, 0, 0, 5) {
		t.Error("distance equal to radius must be outside")
	}
}

func TestRectDistance(t *testing.T) {
	r := component.Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name   string
		px, py float64
		want   float64
	}{
		{"inside", 5, 5, 0},
		{"left", -4, 5, 4},
		{"below", 5, 13, 3},
		{"corner", 13, 14, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectDistance(tt.px, tt.py, r); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RectDistance = %v, want %v", got, tt.want)
			}
		})
	}
}
