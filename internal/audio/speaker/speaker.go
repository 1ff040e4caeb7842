// internal/audio/speaker/speaker.go
package speaker

import (
	sfx "go-space-arcade/internal/audio"
	"go-space-arcade/internal/config"
	"log"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

// Player выводит синтезированные эффекты через аудиоконтекст ebiten.
// PCM каждого эффекта синтезируется один раз и кэшируется.
type Player struct {
	ctx    *audio.Context
	volume float64
	cache  map[sfx.Cue][]byte
}

// New создаёт проигрыватель по настройкам. При выключенном звуке возвращает sfx.Nop.
// Аудиоконтекст ebiten может существовать только один, поэтому New вызывается один раз.
func New(settings config.Settings) sfx.Player {
	if !settings.SoundEnabled {
		log.Println("[Audio] Sound disabled")
		return sfx.Nop{}
	}
	return &Player{
		ctx:    audio.NewContext(SampleRate),
		volume: settings.SoundVolume,
		cache:  make(map[sfx.Cue][]byte),
	}
}

// Preload синтезирует все эффекты заранее, чтобы первый выстрел не ждал синтеза.
func (p *Player) Preload() {
	for _, cue := range sfx.Cues {
		p.pcm(cue)
	}
}

func (p *Player) pcm(cue sfx.Cue) ([]byte, bool) {
	if data, ok := p.cache[cue]; ok {
		return data, true
	}
	data, err := sfx.Render(cue, beep.SampleRate(SampleRate), p.volume)
	if err != nil {
		log.Printf("[Audio] Warning: %v", err)
		return nil, false
	}
	p.cache[cue] = data
	return data, true
}

func (p *Player) Play(cue sfx.Cue) {
	data, ok := p.pcm(cue)
	if !ok {
		return
	}
	p.ctx.NewPlayerFromBytes(data).Play()
}
