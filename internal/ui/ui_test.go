package ui

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"strings"
	"testing"
)

func TestNotifierAutoHide(t *testing.T) {
	n := NewNotifier()
	if n.Visible() {
		t.Fatal("new notifier should be hidden")
	}
	n.Show("Insufficient credits!", SeverityError)
	n.Update(2.5)
	if !n.Visible() {
		t.Fatal("message hidden too early")
	}
	n.Show("Plasma Cannon deployed!", SeveritySuccess)
	n.Update(2.5)
	if !n.Visible() || n.Text != "Plasma Cannon deployed!" {
		t.Fatalf("new message should restart the timer, got %q visible=%v", n.Text, n.Visible())
	}
	n.Update(0.6)
	if n.Visible() {
		t.Error("message should hide after three seconds")
	}
}

func TestSeverityColor(t *testing.T) {
	if SeverityError.Color() != config.NoticeColors["error"] {
		t.Error("error severity should use the error color")
	}
	if Severity("bogus").Color() != config.NoticeColors["info"] {
		t.Error("unknown severity should fall back to info")
	}
}

func TestShopSlide(t *testing.T) {
	var s ShopSlide
	if visible := s.Toggle(); visible {
		t.Fatal("first toggle should hide the shop")
	}
	for i := 0; i < 16; i++ {
		s.Update()
	}
	if s.Offset != 128 {
		t.Fatalf("expected offset 128 after 16 steps, got %v", s.Offset)
	}
	s.Update()
	s.Update()
	if s.Offset != config.ShopSlideMax {
		t.Fatalf("offset should stop at %v, got %v", config.ShopSlideMax, s.Offset)
	}
	s.Toggle()
	s.Update()
	if s.Offset != config.ShopSlideMax-config.ShopSlideStep {
		t.Errorf("expected slide back by one step, got %v", s.Offset)
	}
}

func TestWaveIndicator(t *testing.T) {
	w := NewWaveIndicator()
	tests := []struct {
		wave int
		text string
		boss bool
	}{
		{1, "Wave 1 (I)", false},
		{9, "Wave 9 (IX)", false},
		{10, "Wave 10 (X)", true},
		{44, "Wave 44 (XLIV)", false},
		{0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := w.Text(tt.wave); got != tt.text {
				t.Errorf("Text(%d) = %q, want %q", tt.wave, got, tt.text)
			}
			if got := w.TextColor(tt.wave) == w.BossColor; got != tt.boss {
				t.Errorf("boss color for wave %d: got %v, want %v", tt.wave, got, tt.boss)
			}
		})
	}
}

func TestShieldIndicatorCells(t *testing.T) {
	tests := []struct {
		name             string
		shield           int
		blue, red, empty int
	}{
		{"full", 100, 5, 5, 0},
		{"half", 50, 0, 5, 5},
		{"partial cell counts", 45, 0, 5, 5},
		{"above half", 72, 3, 5, 2},
		{"empty", 0, 0, 0, 10},
		{"negative", -10, 0, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := ShieldIndicatorCells(tt.shield, config.MaxShield)
			if len(cells) != ShieldCells {
				t.Fatalf("expected %d cells, got %d", ShieldCells, len(cells))
			}
			var blue, red, empty int
			for _, c := range cells {
				switch c {
				case shieldHighColor:
					blue++
				case shieldLowColor:
					red++
				case shieldEmptyColor:
					empty++
				}
			}
			if blue != tt.blue || red != tt.red || empty != tt.empty {
				t.Errorf("got blue=%d red=%d empty=%d, want %d/%d/%d", blue, red, empty, tt.blue, tt.red, tt.empty)
			}
		})
	}
}

func TestButtonAt(t *testing.T) {
	buttons := []Button{
		NewButton(0, 0, 100, 50, "Defense", "defense"),
		NewButton(0, 60, 100, 50, "Shooter", "shooter"),
	}
	tests := []struct {
		x, y int
		want string
		ok   bool
	}{
		{10, 10, "defense", true},
		{99, 109, "shooter", true},
		{100, 10, "", false}, // правая граница не входит
		{50, 55, "", false},
	}
	for _, tt := range tests {
		b, ok := ButtonAt(buttons, tt.x, tt.y)
		if ok != tt.ok || b.Value != tt.want {
			t.Errorf("ButtonAt(%d,%d) = %q,%v want %q,%v", tt.x, tt.y, b.Value, ok, tt.want, tt.ok)
		}
	}
}

func TestTowerInfo(t *testing.T) {
	tower := &component.Tower{
		Name:     "Plasma Cannon",
		Level:    1,
		Damage:   15,
		Range:    100,
		BaseCost: 150,
		Attack:   defs.Behavior{Kind: defs.BehaviorBolt},
	}
	info := NewTowerInfo(tower)
	if info.Title != "Plasma Cannon (Level 1)" {
		t.Errorf("unexpected title %q", info.Title)
	}
	joined := strings.Join(info.Lines, "\n")
	for _, want := range []string{"Damage: 15", "Range: 100", "Upgrade: 120 credits", "Sell: 75 credits"} {
		if !strings.Contains(joined, want) {
			t.Errorf("info lines missing %q:\n%s", want, joined)
		}
	}

	tower.Level = config.MaxTowerLevel
	joined = strings.Join(NewTowerInfo(tower).Lines, "\n")
	if !strings.Contains(joined, "Max level") || !strings.Contains(joined, "Sell: 255 credits") {
		t.Errorf("max level tower lines unexpected:\n%s", joined)
	}
}

func TestChoiceOptions(t *testing.T) {
	specials := defs.MustLoad().SpecialTowers()
	opts := ChoiceOptions(specials)
	if len(opts) != len(specials) {
		t.Fatalf("expected %d options, got %d", len(specials), len(opts))
	}
	for i, o := range opts {
		if o.Value != specials[i].ID {
			t.Errorf("option %d selects %q, want %q", i, o.Value, specials[i].ID)
		}
		if o.Rect.Min.X < 0 || o.Rect.Max.X > config.FieldWidth {
			t.Errorf("option %d is off the field: %v", i, o.Rect)
		}
	}
	if opts[0].Rect.Overlaps(opts[1].Rect) {
		t.Error("choice cards overlap")
	}
}

func TestPauseButtonIcon(t *testing.T) {
	b := NewPauseButton()
	if b.Icon(false) != "II" || b.Icon(true) != ">" {
		t.Error("unexpected pause icons")
	}
	if !b.Contains(config.FieldWidth-20, 20) {
		t.Error("pause button should sit in the top right corner")
	}
}

func TestShopButtonsFollowSlide(t *testing.T) {
	towers := defs.MustLoad().Towers[:4]
	var s ShopSlide
	buttons := s.Buttons(towers)
	if len(buttons) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(buttons))
	}
	if b, ok := ButtonAt(buttons, 20+148+5, config.ScreenHeight-130+40); !ok || b.Value != "laser" {
		t.Errorf("second card should select laser, got %q ok=%v", b.Value, ok)
	}

	s.Offset = config.ShopSlideMax
	if _, ok := ButtonAt(s.Buttons(towers), 30, config.ScreenHeight-130+40); ok {
		t.Error("hidden shop should not catch clicks above the screen edge")
	}
}
