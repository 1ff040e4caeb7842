package app

import (
	"go-space-arcade/internal/audio"
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/ui"
	"strings"
	"testing"
)

func TestNewDefense(t *testing.T) {
	d, _ := newTestDefense(t)

	if d.Ledger.Balance != config.StartCredits || d.Progress.Shield != config.MaxShield || d.Progress.Wave != 1 {
		t.Errorf("unexpected start: credits %d shield %d wave %d", d.Ledger.Balance, d.Progress.Shield, d.Progress.Wave)
	}
	if d.Selected != "plasma" {
		t.Errorf("expected plasma selected, got %q", d.Selected)
	}
	if n := len(d.ShopTowers()); n != 4 {
		t.Errorf("expected 4 towers in the shop, got %d", n)
	}
	if len(d.World.Stars) != config.StarCount {
		t.Errorf("expected %d stars, got %d", config.StarCount, len(d.World.Stars))
	}
	if !d.Announcement.Visible() || d.Announcement.Title != "WAVE 1" {
		t.Errorf("expected wave 1 announcement, got %+v", d.Announcement)
	}
}

func TestFirstSpawnAfterAnnouncement(t *testing.T) {
	d, _ := newTestDefense(t)

	d.frames(4 * 60)
	if d.World.Aliens.Len() != 0 {
		t.Fatalf("no alien expected before the first spawn interval, got %d", d.World.Aliens.Len())
	}
	if d.Notifier.Text != "Wave 1 - 9 alien ships incoming!" {
		t.Errorf("unexpected notice %q", d.Notifier.Text)
	}

	d.frames(60)
	if d.World.Aliens.Len() != 1 {
		t.Fatalf("expected one alien after five seconds, got %d", d.World.Aliens.Len())
	}
	if d.Progress.Tick != 5*60 {
		t.Errorf("expected %d ticks, got %d", 5*60, d.Progress.Tick)
	}
}

func TestPlaceUpgradeSellMessages(t *testing.T) {
	d, player := newTestDefense(t)

	d.ClickCell(0, 0, false)
	if d.Ledger.Balance != 50 || d.Notifier.Text != "Plasma Cannon deployed!" {
		t.Fatalf("place: balance %d notice %q", d.Ledger.Balance, d.Notifier.Text)
	}

	tests := []struct {
		name     string
		x, y     int
		shift    bool
		notice   string
		severity ui.Severity
	}{
		{"occupied cell", 0, 0, false, "Cannot deploy here! Shift+Click to upgrade towers", ui.SeverityError},
		{"path cell", 0, 2, false, "Cannot deploy here! Shift+Click to upgrade towers", ui.SeverityError},
		{"not enough credits", 3, 0, false, "Insufficient credits!", ui.SeverityError},
		{"upgrade without credits", 0, 0, true, "Insufficient credits for upgrade!", ui.SeverityError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d.ClickCell(tt.x, tt.y, tt.shift)
			if d.Notifier.Text != tt.notice || d.Notifier.Severity != tt.severity {
				t.Errorf("got %q (%s), want %q (%s)", d.Notifier.Text, d.Notifier.Severity, tt.notice, tt.severity)
			}
		})
	}

	d.Ledger.Balance = 1000
	d.ClickCell(0, 0, true)
	if d.Notifier.Text != "Plasma Cannon upgraded to Level 2!" {
		t.Errorf("unexpected upgrade notice %q", d.Notifier.Text)
	}
	d.SetCursor(25, 25)
	d.UpgradeHovered()
	d.UpgradeHovered()
	if d.Notifier.Text != "Plasma Cannon is already max level (3)!" {
		t.Errorf("unexpected max level notice %q", d.Notifier.Text)
	}

	d.SellHovered()
	if d.Notifier.Text != "Plasma Cannon sold for 255 credits!" || player.count(audio.CueSell) != 1 {
		t.Errorf("sell: notice %q, sell cues %d", d.Notifier.Text, player.count(audio.CueSell))
	}
	d.SellHovered()
	if d.Notifier.Text != "Hover over a tower to sell with F key" {
		t.Errorf("unexpected notice %q", d.Notifier.Text)
	}
}

func TestTowerCapMessage(t *testing.T) {
	d, _ := newTestDefense(t)
	d.Ledger.Balance = 100000

	placed := 0
	for x := 0; x < config.GridWidth && placed < config.MaxTowers; x++ {
		for y := 0; y < config.GridHeight && placed < config.MaxTowers; y++ {
			if cell, _ := d.Grid.Cell(x, y); !cell.Occupied {
				d.ClickCell(x, y, false)
				placed++
			}
		}
	}
	d.ClickCell(15, 9, false)
	if !strings.HasPrefix(d.Notifier.Text, "Maximum 20 towers reached!") {
		t.Errorf("unexpected notice %q", d.Notifier.Text)
	}
}

func TestPauseStopsSimulationButNotShop(t *testing.T) {
	d, _ := newTestDefense(t)

	d.TogglePause()
	if !d.Progress.Paused || d.Notifier.Text != "System Paused - Press Space" {
		t.Fatalf("pause: paused=%v notice %q", d.Progress.Paused, d.Notifier.Text)
	}
	d.ToggleShop()
	d.frames(6 * 60)
	if d.Progress.Tick != 0 {
		t.Errorf("ticks advanced while paused: %d", d.Progress.Tick)
	}
	if d.World.Aliens.Len() != 0 {
		t.Errorf("aliens spawned while paused: %d", d.World.Aliens.Len())
	}
	if d.Shop.Offset != config.ShopSlideMax {
		t.Errorf("shop should keep sliding while paused, offset %v", d.Shop.Offset)
	}

	d.TogglePause()
	if d.Progress.Paused || d.Notifier.Text != "System Active" {
		t.Errorf("resume: paused=%v notice %q", d.Progress.Paused, d.Notifier.Text)
	}
}

func TestRestartClearsBoard(t *testing.T) {
	d, _ := newTestDefense(t)
	session := d.SessionID
	d.ClickCell(0, 0, false)
	d.frames(5 * 60)

	d.Restart()
	if d.SessionID == session {
		t.Error("restart should start a new session")
	}
	if d.World.Towers.Len() != 0 || d.World.Aliens.Len() != 0 {
		t.Errorf("world not cleared: %d towers, %d aliens", d.World.Towers.Len(), d.World.Aliens.Len())
	}
	if cell, _ := d.Grid.Cell(0, 0); cell.Occupied {
		t.Error("grid cell still occupied after restart")
	}
	if d.Ledger.Balance != config.StartCredits || d.Progress.Tick != 0 {
		t.Errorf("unexpected state: credits %d tick %d", d.Ledger.Balance, d.Progress.Tick)
	}
	if err := d.construction.CheckGrid(); err != nil {
		t.Error(err)
	}
}

func TestShieldDepletionGameOver(t *testing.T) {
	d, _ := newTestDefense(t)
	d.Progress.Shield = config.ShieldLeakCost
	d.World.Aliens.Add(d.World.NewEntity(), &component.Alien{
		Kind:      defs.AlienScout,
		PathIndex: len(d.Grid.Path) - 1,
		Health:    80,
		MaxHealth: 80,
	})

	d.frames(1)
	if d.Progress.Running {
		t.Fatal("game should be over")
	}
	if d.Notifier.Text != "Station Destroyed! Survived 0 waves. 0 aliens destroyed!" {
		t.Errorf("unexpected notice %q", d.Notifier.Text)
	}
	d.frames(10)
	if d.Progress.Tick != 1 {
		t.Errorf("simulation kept running after game over: tick %d", d.Progress.Tick)
	}
}

func TestKillAndFireCues(t *testing.T) {
	d, player := newTestDefense(t)
	d.ClickCell(0, 0, false)

	d.World.Aliens.Add(d.World.NewEntity(), &component.Alien{
		Kind:      defs.AlienScout,
		Position:  component.Position{X: 75, Y: 25},
		Health:    1000,
		MaxHealth: 1000,
		Size:      10,
	})
	d.frames(20)
	if player.count(audio.CuePlasma) != 1 {
		t.Errorf("expected one plasma shot in 20 ticks, got %d", player.count(audio.CuePlasma))
	}

	d.World.Aliens.Add(d.World.NewEntity(), &component.Alien{
		Kind:     defs.AlienScout,
		Position: component.Position{X: 400, Y: 400},
		Reward:   12,
	})
	before := d.Ledger.Balance
	d.frames(1)
	if player.count(audio.CueAlienDeath) != 1 {
		t.Errorf("expected one death cue, got %d", player.count(audio.CueAlienDeath))
	}
	if d.Ledger.Balance != before+12 || d.Progress.Kills != 1 {
		t.Errorf("reward not paid: balance %d kills %d", d.Ledger.Balance, d.Progress.Kills)
	}
}

// finishWave имитирует конец волны: всё выпущено, поле пусто.
func finishWave(d *Defense, wave int) {
	d.Scheduler.NextGeneration()
	d.Progress.Wave = wave
	d.Progress.Phase = component.PhaseInProgress
	d.Progress.AllSpawned = true
}

func TestSpecialChoiceFlow(t *testing.T) {
	d, _ := newTestDefense(t)
	finishWave(d, 9)
	d.frames(1)

	if !d.AwaitingChoice() || !d.Progress.Paused {
		t.Fatalf("expected choice pause, phase %v paused %v", d.Progress.Phase, d.Progress.Paused)
	}
	if d.Notifier.Text != "Wave 9 Complete! +195 credits | SPECIAL UNLOCK AVAILABLE!" {
		t.Errorf("unexpected notice %q", d.Notifier.Text)
	}
	if len(d.Snapshot().Choices) != 2 {
		t.Error("snapshot should carry the two choice cards")
	}

	d.TogglePause()
	if !d.Progress.Paused {
		t.Error("pause must not be lifted during the choice")
	}
	d.ClickCell(3, 0, false)
	if d.World.Towers.Len() != 0 {
		t.Error("building is not allowed during the choice")
	}

	d.NumberKey(1)
	if d.AwaitingChoice() || d.Progress.Paused {
		t.Fatal("choice should resume the game")
	}
	if d.Selected != "lightning" || d.Notifier.Text != "Tesla Coil unlocked! Wave 10 starting now!" {
		t.Errorf("selected %q notice %q", d.Selected, d.Notifier.Text)
	}
	if len(d.ShopTowers()) != 5 {
		t.Errorf("expected 5 shop towers, got %d", len(d.ShopTowers()))
	}

	d.NumberKey(2)
	if d.Selected != "laser" {
		t.Errorf("number keys should select shop towers again, got %q", d.Selected)
	}
}

func TestChoiceByClick(t *testing.T) {
	d, _ := newTestDefense(t)
	finishWave(d, 9)
	d.frames(1)

	card := d.Snapshot().Choices[1]
	c := card.Rect.Min.Add(card.Rect.Size().Div(2))
	d.Click(c.X, c.Y, false)
	if d.Progress.SpecialChoice != "sniper" {
		t.Errorf("expected sniper, got %q", d.Progress.SpecialChoice)
	}
}

func TestBossWaveMessages(t *testing.T) {
	d, _ := newTestDefense(t)
	finishWave(d, 10)
	d.frames(1)

	if d.Progress.BossesDefeated != 1 || d.Progress.Wave != 11 {
		t.Fatalf("bosses %d wave %d", d.Progress.BossesDefeated, d.Progress.Wave)
	}
	if d.Notifier.Text != "Wave 10 Complete! +210 credits | Wave 11 starting now!" {
		t.Errorf("unexpected notice %q", d.Notifier.Text)
	}

	finishWave(d, 9+10)
	d.Progress.SpecialChoice = "lightning"
	d.frames(1)
	if !strings.Contains(d.Notifier.Text, "BOSS WAVE 20 STARTING NOW!") || d.Notifier.Severity != ui.SeverityError {
		t.Errorf("unexpected notice %q (%s)", d.Notifier.Text, d.Notifier.Severity)
	}
}

func TestShopClickSelectsTower(t *testing.T) {
	d, _ := newTestDefense(t)
	d.Click(20+148+5, config.ScreenHeight-config.ShopSlideMax+40, false)
	if d.Selected != "laser" {
		t.Errorf("expected laser, got %q", d.Selected)
	}
	if d.World.Towers.Len() != 0 {
		t.Error("shop click must not place a tower")
	}

	d.Click(25, 25, false)
	if d.World.Towers.Len() != 0 || d.Notifier.Text != "Insufficient credits!" {
		t.Errorf("laser costs 300: towers %d notice %q", d.World.Towers.Len(), d.Notifier.Text)
	}
}

func TestDefenseSnapshotIsACopy(t *testing.T) {
	d, _ := newTestDefense(t)
	d.ClickCell(0, 0, false)

	d.SetCursor(25, 25)
	s := d.Snapshot()
	if s.HoverInfo == nil || s.HoverInfo.Title != "Plasma Cannon (Level 1)" {
		t.Fatalf("expected hover info for the plasma tower, got %+v", s.HoverInfo)
	}
	s.Towers[0].Damage = 999
	if d.World.Towers.Values()[0].Damage == 999 {
		t.Error("snapshot shares tower state with the world")
	}

	d.SetCursor(25, 125)
	if s := d.Snapshot(); !s.HoverValid || s.HoverFree {
		t.Errorf("path cell should be hovered and blocked: valid %v free %v", s.HoverValid, s.HoverFree)
	}
}
