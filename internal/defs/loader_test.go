package defs

import (
	"image/color"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(c.Towers) != 6 {
		t.Errorf("expected 6 towers, got %d", len(c.Towers))
	}
	plasma, ok := c.Tower("plasma")
	if !ok {
		t.Fatal("plasma tower not found")
	}
	if plasma.Cost != 150 || plasma.Damage != 15 || plasma.Range != 100 || plasma.FireInterval != 15 {
		t.Errorf("unexpected plasma stats: %+v", plasma)
	}

	specials := c.SpecialTowers()
	if len(specials) != 2 || specials[0].ID != "lightning" || specials[1].ID != "sniper" {
		t.Errorf("unexpected special towers: %+v", specials)
	}
	if specials[0].Attack.Kind != BehaviorChain || specials[0].Attack.ChainCount != 3 {
		t.Errorf("lightning should chain 3 targets, got %+v", specials[0].Attack)
	}

	scout := c.Aliens[AlienScout]
	if scout.Health != 80 || scout.Size != 10 {
		t.Errorf("unexpected scout stats: %+v", scout)
	}
	if c.Aliens[AlienFighter].Health != 150 {
		t.Errorf("fighter health: expected 150, got %v", c.Aliens[AlienFighter].Health)
	}

	if len(c.Path) != 48 {
		t.Errorf("expected 48 waypoints, got %d", len(c.Path))
	}
	if !c.Weapons[0].Owned || c.Weapons[0].ID != "basic" {
		t.Errorf("first weapon should be the owned basic cannon, got %+v", c.Weapons[0])
	}
	if len(c.Buildings) != 6 {
		t.Errorf("expected 6 building types, got %d", len(c.Buildings))
	}
}

func TestBandFor(t *testing.T) {
	c := MustLoad()

	tests := []struct {
		wave      int
		boss      bool
		wantAlien string // должен присутствовать в полосе
		noAlien   string // должен отсутствовать
	}{
		{1, false, AlienScout, AlienFighter},
		{3, false, AlienFighter, AlienCruiser},
		{8, false, AlienCruiser, AlienMothership},
		{10, true, AlienCruiser, AlienMothership},
		{11, false, AlienMothership, ""},
	}

	for _, tt := range tests {
		band, ok := c.BandFor(tt.wave, tt.boss)
		if !ok {
			t.Fatalf("wave %d: no band", tt.wave)
		}
		has := func(id string) bool {
			for _, w := range band.Weights {
				if w.Alien == id && w.Weight > 0 {
					return true
				}
			}
			return false
		}
		if !has(tt.wantAlien) {
			t.Errorf("wave %d: expected %s in band", tt.wave, tt.wantAlien)
		}
		if tt.noAlien != "" && has(tt.noAlien) {
			t.Errorf("wave %d: did not expect %s in band", tt.wave, tt.noAlien)
		}
	}
}

func TestLoadFSValidation(t *testing.T) {
	base := func() fstest.MapFS {
		m := fstest.MapFS{}
		for _, name := range []string{"towers.yaml", "aliens.yaml", "weapons.yaml", "buildings.yaml", "waves.yaml"} {
			data, err := fs.ReadFile(embedded, "data/"+name)
			if err != nil {
				t.Fatalf("read %s: %v", name, err)
			}
			m[name] = &fstest.MapFile{Data: data}
		}
		return m
	}

	t.Run("embedded copy is valid", func(t *testing.T) {
		if _, err := LoadFS(base()); err != nil {
			t.Fatalf("LoadFS failed: %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		m := base()
		delete(m, "aliens.yaml")
		if _, err := LoadFS(m); err == nil || !strings.Contains(err.Error(), "aliens.yaml") {
			t.Errorf("expected error naming aliens.yaml, got %v", err)
		}
	})

	t.Run("chain tower without range", func(t *testing.T) {
		m := base()
		m["towers.yaml"] = &fstest.MapFile{Data: []byte(`
towers:
  - id: bad
    cost: 10
    damage: 1
    range: 10
    fireInterval: 5
    color: "#FFFFFF"
    attack: {kind: CHAIN, chainCount: 2}
`)}
		if _, err := LoadFS(m); err == nil {
			t.Error("expected validation error for chain without chainRange")
		}
	})

	t.Run("band with unknown alien", func(t *testing.T) {
		m := base()
		m["waves.yaml"] = &fstest.MapFile{Data: []byte(`
path: [{x: 0, y: 0}, {x: 1, y: 0}]
bands:
  - minWave: 1
    weights: [{alien: dragon, weight: 1}]
`)}
		if _, err := LoadFS(m); err == nil {
			t.Error("expected validation error for unknown alien")
		}
	})
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"with hash", "#FF6347", color.RGBA{0xFF, 0x63, 0x47, 255}, false},
		{"without hash", "00BFFF", color.RGBA{0x00, 0xBF, 0xFF, 255}, false},
		{"lower case", "#ffd700", color.RGBA{0xFF, 0xD7, 0x00, 255}, false},
		{"short form rejected", "#FFF", color.RGBA{}, true},
		{"not hex", "#GG0000", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %+v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHexColor(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}

	if got := HexColor("bogus").RGBA(); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("invalid HexColor should fall back to white, got %+v", got)
	}
}
