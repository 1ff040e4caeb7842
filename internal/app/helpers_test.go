package app

import (
	"go-space-arcade/internal/audio"
	"go-space-arcade/internal/defs"
	"testing"
)

// recordingPlayer запоминает проигранные эффекты.
type recordingPlayer struct {
	cues []audio.Cue
}

func (r *recordingPlayer) Play(c audio.Cue) {
	r.cues = append(r.cues, c)
}

func (r *recordingPlayer) count(c audio.Cue) int {
	n := 0
	for _, cue := range r.cues {
		if cue == c {
			n++
		}
	}
	return n
}

func newTestDefense(t *testing.T) (*Defense, *recordingPlayer) {
	t.Helper()
	player := &recordingPlayer{}
	return NewDefense(defs.MustLoad(), player, 11), player
}

func newTestShooter(t *testing.T) (*Shooter, *recordingPlayer) {
	t.Helper()
	player := &recordingPlayer{}
	return NewShooter(defs.MustLoad(), player, 5), player
}

// frames крутит игру n кадров по 1/60 секунды.
func (d *Defense) frames(n int) {
	for i := 0; i < n; i++ {
		d.Update(1.0 / 60)
	}
}
