// internal/audio/synth.go
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave — форма сигнала осциллятора.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

type sweepPoint struct {
	at   float64 // секунды от начала тона
	freq float64
}

// tone — один осциллятор с огибающей: громкость падает экспоненциально
// от gain до floor к концу тона.
type tone struct {
	wave        Wave
	sweep       []sweepPoint
	exponential bool
	duration    float64
	gain        float64
	floor       float64
	attack      float64
	delay       float64
}

func sweep(from, to, over float64) []sweepPoint {
	return []sweepPoint{{0, from}, {over, to}}
}

var cueTones = map[Cue][]tone{
	CuePlasma:     {{wave: WaveSine, sweep: sweep(1200, 800, 0.1), exponential: true, duration: 0.1, gain: 0.15}},
	CueLaser:      {{wave: WaveSaw, sweep: sweep(2000, 2000, 0.08), duration: 0.08, gain: 0.08}},
	CueMissile:    {{wave: WaveSaw, sweep: sweep(600, 300, 0.2), duration: 0.2, gain: 0.2}},
	CueFreeze:     {{wave: WaveTriangle, sweep: sweep(1500, 500, 0.15), duration: 0.15, gain: 0.12}},
	CueBlast:      {{wave: WaveSaw, sweep: sweep(150, 30, 0.4), exponential: true, duration: 0.4, gain: 0.3}},
	CueAlienDeath: {{wave: WaveSquare, sweep: sweep(800, 100, 0.25), exponential: true, duration: 0.25, gain: 0.18}},
	CueLightning: {{
		wave:     WaveSquare,
		sweep:    []sweepPoint{{0, 800}, {0.05, 400}, {0.1, 600}},
		duration: 0.15,
		gain:     0.2,
	}},
	CueRailgun:   {{wave: WaveSaw, sweep: sweep(2500, 100, 0.3), exponential: true, duration: 0.3, gain: 0.25}},
	CueSell:      {{wave: WaveSine, sweep: sweep(400, 200, 0.2), exponential: true, duration: 0.2, gain: 0.15}},
	CueShoot:     {{wave: WaveSquare, sweep: sweep(300, 150, 0.1), exponential: true, duration: 0.1, gain: 0.1}},
	CueExplosion: {{wave: WaveSaw, sweep: sweep(100, 50, 0.3), exponential: true, duration: 0.3, gain: 0.2}},
	CuePowerUp: {
		{wave: WaveSine, sweep: sweep(400, 400, 0.15), duration: 0.15, gain: 0.05, floor: 0.001, attack: 0.01},
		{wave: WaveSine, sweep: sweep(500, 500, 0.15), duration: 0.15, gain: 0.05, floor: 0.001, attack: 0.01, delay: 0.05},
		{wave: WaveSine, sweep: sweep(600, 600, 0.15), duration: 0.15, gain: 0.05, floor: 0.001, attack: 0.01, delay: 0.1},
	},
}

func (t tone) freqAt(at float64) float64 {
	pts := t.sweep
	if at <= pts[0].at {
		return pts[0].freq
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if at > b.at {
			continue
		}
		frac := (at - a.at) / (b.at - a.at)
		if t.exponential && a.freq > 0 && b.freq > 0 {
			return a.freq * math.Pow(b.freq/a.freq, frac)
		}
		return a.freq + (b.freq-a.freq)*frac
	}
	return pts[len(pts)-1].freq
}

func (t tone) envelope(at float64) float64 {
	if t.attack > 0 && at < t.attack {
		return t.gain * at / t.attack
	}
	floor := t.floor
	if floor <= 0 {
		floor = 0.01
	}
	span := t.duration - t.attack
	if span <= 0 {
		return t.gain
	}
	return t.gain * math.Pow(floor/t.gain, (at-t.attack)/span)
}

func (t tone) sample(phase float64) float64 {
	switch t.wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	}
	return math.Sin(2 * math.Pi * phase)
}

// oscillator проигрывает один tone как beep.Streamer.
type oscillator struct {
	tone     tone
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

func newOscillator(t tone, rate beep.SampleRate) *oscillator {
	return &oscillator{tone: t, rate: rate, total: rate.N(seconds(t.duration))}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.total {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.total {
			return i, true
		}
		at := float64(o.position) / float64(o.rate)
		val := o.tone.sample(o.phase) * o.tone.envelope(at)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.tone.freqAt(at) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// newVolume масштабирует поток; нулевая громкость даёт тишину.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Streamer собирает поток для эффекта с общей громкостью volume (0..1).
func Streamer(cue Cue, rate beep.SampleRate, volume float64) (beep.Streamer, bool) {
	tones, ok := cueTones[cue]
	if !ok {
		return nil, false
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		var s beep.Streamer = newOscillator(t, rate)
		if t.delay > 0 {
			s = beep.Seq(beep.Silence(rate.N(seconds(t.delay))), s)
		}
		parts = append(parts, s)
	}
	if len(parts) == 1 {
		return newVolume(parts[0], volume), true
	}
	return newVolume(beep.Mix(parts...), volume), true
}

// Duration — длина эффекта с учётом задержек его тонов.
func Duration(cue Cue) time.Duration {
	var longest float64
	for _, t := range cueTones[cue] {
		longest = math.Max(longest, t.delay+t.duration)
	}
	return seconds(longest)
}

// Render синтезирует эффект в 16-битный стерео PCM (little endian),
// который принимает аудиоконтекст ebiten.
func Render(cue Cue, rate beep.SampleRate, volume float64) ([]byte, error) {
	s, ok := Streamer(cue, rate, volume)
	if !ok {
		return nil, fmt.Errorf("unknown cue %q", cue)
	}
	limit := rate.N(Duration(cue))
	pcm := make([]byte, 0, limit*4)
	buf := make([][2]float64, 512)
	for frames := 0; frames < limit; {
		n, ok := s.Stream(buf[:min(len(buf), limit-frames)])
		for _, frame := range buf[:n] {
			pcm = appendSample(pcm, frame[0])
			pcm = appendSample(pcm, frame[1])
		}
		frames += n
		if !ok || n == 0 {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to synthesize %s: %w", cue, err)
	}
	return pcm, nil
}

func appendSample(pcm []byte, v float64) []byte {
	v = math.Max(-1, math.Min(1, v))
	s := int16(v * math.MaxInt16)
	return append(pcm, byte(s), byte(s>>8))
}
