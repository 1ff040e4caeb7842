package component

import "go-space-arcade/internal/config"

// WavePhase — фаза волны
type WavePhase int

const (
	PhaseAnnouncing WavePhase = iota
	PhaseSpawning
	PhaseInProgress
	PhaseComplete
	PhaseAwaitingChoice
)

func (p WavePhase) String() string {
	switch p {
	case PhaseAnnouncing:
		return "announcing"
	case PhaseSpawning:
		return "spawning"
	case PhaseInProgress:
		return "in-progress"
	case PhaseComplete:
		return "complete"
	case PhaseAwaitingChoice:
		return "awaiting-choice"
	}
	return "unknown"
}

// Progress — состояние прогрессии защиты станции.
type Progress struct {
	Wave           int
	Phase          WavePhase
	Shield         int
	Kills          int
	BossesDefeated int
	Spawned        int
	SpawnTarget    int
	AllSpawned     bool
	SpecialChoice  string // пусто, пока особая башня не выбрана
	Unlocked       []string
	Running        bool
	Paused         bool
	Tick           int
}

// BossWave сообщает, является ли текущая волна волной босса.
func (p *Progress) BossWave() bool {
	return p.Wave%config.BossWaveEvery == 0
}

// ShooterStats — счётчики игры про здания.
type ShooterStats struct {
	Score     int
	Destroyed int
	Ammo      int
	Running   bool
	Won       bool
	Tick      int
}
