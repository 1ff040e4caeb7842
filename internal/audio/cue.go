// internal/audio/cue.go
package audio

import "go-space-arcade/internal/defs"

// Cue — имя звукового эффекта.
type Cue string

const (
	CueShoot      Cue = "shoot"
	CueExplosion  Cue = "explosion"
	CuePowerUp    Cue = "powerup"
	CueAlienDeath Cue = "alien_death"
	CueSell       Cue = "sell"
	CuePlasma     Cue = "plasma"
	CueLaser      Cue = "laser"
	CueMissile    Cue = "missile"
	CueFreeze     Cue = "freeze"
	CueLightning  Cue = "lightning"
	CueRailgun    Cue = "railgun"
	CueBlast      Cue = "blast" // разрыв ракеты на поле защиты
)

// Cues — все известные эффекты.
var Cues = []Cue{
	CueShoot, CueExplosion, CuePowerUp, CueAlienDeath, CueSell,
	CuePlasma, CueLaser, CueMissile, CueFreeze, CueLightning, CueRailgun, CueBlast,
}

// Player проигрывает эффекты. Ошибки вывода не возвращаются: звук не должен
// останавливать игру.
type Player interface {
	Play(cue Cue)
}

// Nop — проигрыватель для отключённого звука и тестов.
type Nop struct{}

func (Nop) Play(Cue) {}

// CueForBehavior подбирает выстрел башни по виду атаки.
func CueForBehavior(kind defs.BehaviorKind) Cue {
	switch kind {
	case defs.BehaviorContinuous:
		return CueLaser
	case defs.BehaviorExplosive:
		return CueMissile
	case defs.BehaviorSlow:
		return CueFreeze
	case defs.BehaviorChain:
		return CueLightning
	case defs.BehaviorPierce:
		return CueRailgun
	}
	return CuePlasma
}
