// internal/defs/waves.go
package defs

import "fmt"

// Фильтр полосы по типу волны.
const (
	BandAnyWave    = "any"
	BandBossWave   = "boss"
	BandNormalWave = "normal"
)

// SpawnWeight — вес типа пришельца внутри полосы.
type SpawnWeight struct {
	Alien  string `yaml:"alien"`
	Weight int    `yaml:"weight"`
}

// SpawnBand описывает распределение типов пришельцев для диапазона волн.
// MaxWave == 0 означает «без верхней границы».
type SpawnBand struct {
	MinWave int           `yaml:"minWave"`
	MaxWave int           `yaml:"maxWave"`
	Waves   string        `yaml:"waves"` // any | boss | normal
	Weights []SpawnWeight `yaml:"weights"`
}

// Matches сообщает, относится ли волна к полосе.
func (b SpawnBand) Matches(wave int, boss bool) bool {
	if wave < b.MinWave || (b.MaxWave > 0 && wave > b.MaxWave) {
		return false
	}
	switch b.Waves {
	case BandBossWave:
		return boss
	case BandNormalWave:
		return !boss
	}
	return true
}

func (b SpawnBand) validate(aliens map[string]AlienDefinition) error {
	if b.MinWave < 1 {
		return fmt.Errorf("band starting at %d: minWave must be at least 1", b.MinWave)
	}
	if b.MaxWave != 0 && b.MaxWave < b.MinWave {
		return fmt.Errorf("band %d-%d: maxWave below minWave", b.MinWave, b.MaxWave)
	}
	switch b.Waves {
	case "", BandAnyWave, BandBossWave, BandNormalWave:
	default:
		return fmt.Errorf("band %d-%d: unknown waves filter %q", b.MinWave, b.MaxWave, b.Waves)
	}
	total := 0
	for _, w := range b.Weights {
		if _, ok := aliens[w.Alien]; !ok {
			return fmt.Errorf("band %d-%d: unknown alien %q", b.MinWave, b.MaxWave, w.Alien)
		}
		if w.Weight < 0 {
			return fmt.Errorf("band %d-%d: negative weight for %s", b.MinWave, b.MaxWave, w.Alien)
		}
		total += w.Weight
	}
	if total <= 0 {
		return fmt.Errorf("band %d-%d: weights must sum to a positive value", b.MinWave, b.MaxWave)
	}
	return nil
}

// BandFor возвращает первую подходящую полосу.
func (c *Catalog) BandFor(wave int, boss bool) (SpawnBand, bool) {
	for _, b := range c.Bands {
		if b.Matches(wave, boss) {
			return b, true
		}
	}
	return SpawnBand{}, false
}
