// internal/defs/loader.go
package defs

import (
	"embed"
	"fmt"
	"io/fs"
	"log"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// Catalog — все статические определения обеих игр.
// Слайсы сохраняют порядок из YAML: он же порядок в магазинах.
type Catalog struct {
	Towers    []TowerDefinition
	Aliens    map[string]AlienDefinition
	Weapons   []WeaponDefinition
	Buildings []BuildingType
	Bands     []SpawnBand
	Path      []GridPoint
}

type towersFile struct {
	Towers []TowerDefinition `yaml:"towers"`
}

type aliensFile struct {
	Aliens []AlienDefinition `yaml:"aliens"`
}

type weaponsFile struct {
	Weapons []WeaponDefinition `yaml:"weapons"`
}

type buildingsFile struct {
	Buildings []BuildingType `yaml:"buildings"`
}

type wavesFile struct {
	Path  []GridPoint `yaml:"path"`
	Bands []SpawnBand `yaml:"bands"`
}

// Load читает встроенные в бинарник определения.
func Load() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded definitions: %w", err)
	}
	return LoadFS(sub)
}

// MustLoad — Load для тестов и инициализации, где ошибка означает сломанную сборку.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFS читает towers.yaml, aliens.yaml, weapons.yaml, buildings.yaml и waves.yaml из fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	var tf towersFile
	if err := readYAML(fsys, "towers.yaml", &tf); err != nil {
		return nil, err
	}
	var af aliensFile
	if err := readYAML(fsys, "aliens.yaml", &af); err != nil {
		return nil, err
	}
	var wf weaponsFile
	if err := readYAML(fsys, "weapons.yaml", &wf); err != nil {
		return nil, err
	}
	var bf buildingsFile
	if err := readYAML(fsys, "buildings.yaml", &bf); err != nil {
		return nil, err
	}
	var vf wavesFile
	if err := readYAML(fsys, "waves.yaml", &vf); err != nil {
		return nil, err
	}

	c := &Catalog{
		Towers:    tf.Towers,
		Aliens:    make(map[string]AlienDefinition, len(af.Aliens)),
		Weapons:   wf.Weapons,
		Buildings: bf.Buildings,
		Bands:     vf.Bands,
		Path:      vf.Path,
	}
	for _, a := range af.Aliens {
		c.Aliens[a.ID] = a
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}

	log.Printf("[Defs] Loaded %d towers, %d aliens, %d weapons, %d building types, %d spawn bands",
		len(c.Towers), len(c.Aliens), len(c.Weapons), len(c.Buildings), len(c.Bands))
	return c, nil
}

func readYAML(fsys fs.FS, name string, out interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func (c *Catalog) validate() error {
	if len(c.Towers) == 0 {
		return fmt.Errorf("at least one tower is required")
	}
	seen := make(map[string]bool)
	for _, t := range c.Towers {
		if seen[t.ID] {
			return fmt.Errorf("duplicate tower id %s", t.ID)
		}
		seen[t.ID] = true
		if err := t.validate(); err != nil {
			return err
		}
	}
	for _, id := range []string{AlienScout, AlienFighter, AlienCruiser, AlienMothership} {
		a, ok := c.Aliens[id]
		if !ok {
			return fmt.Errorf("alien %s is required", id)
		}
		if err := a.validate(); err != nil {
			return err
		}
	}
	for _, w := range c.Weapons {
		if err := w.validate(); err != nil {
			return err
		}
	}
	if len(c.Weapons) == 0 || !c.Weapons[0].Owned {
		return fmt.Errorf("the first weapon must be owned from the start")
	}
	for _, b := range c.Buildings {
		if err := b.validate(); err != nil {
			return err
		}
	}
	if len(c.Buildings) == 0 {
		return fmt.Errorf("at least one building type is required")
	}
	for _, b := range c.Bands {
		if err := b.validate(c.Aliens); err != nil {
			return err
		}
	}
	if len(c.Path) < 2 {
		return fmt.Errorf("path needs at least two waypoints, got %d", len(c.Path))
	}
	return nil
}

// Tower ищет башню по id.
func (c *Catalog) Tower(id string) (TowerDefinition, bool) {
	for _, t := range c.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return TowerDefinition{}, false
}

// SpecialTowers возвращает башни, доступные только через выбор после 9-й волны.
func (c *Catalog) SpecialTowers() []TowerDefinition {
	var out []TowerDefinition
	for _, t := range c.Towers {
		if t.Special {
			out = append(out, t)
		}
	}
	return out
}
