package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// wave maps a phase in [0,1) to a sample in [-1,1]
type wave func(phase float64) float64

func sine(p float64) float64 { return math.Sin(2 * math.Pi * p) }

func square(p float64) float64 {
	if p < 0.5 {
		return 1
	}
	return -1
}

func saw(p float64) float64 { return 2*p - 1 }

func noise(float64) float64 { return rand.Float64()*2 - 1 }

// note is one tone with a linear attack and release, scaled by gain
type note struct {
	hz      float64
	wave    wave
	length  time.Duration
	attack  time.Duration
	release time.Duration
	gain    float64
}

// gainAt is the envelope level at sample i of n
func gainAt(i, n, attack, release int) float64 {
	g := 1.0
	if i < attack {
		g = float64(i) / float64(attack)
	}
	if tail := n - i; tail <= release {
		g = min(g, float64(tail)/float64(release))
	}
	return g
}

// stream renders the note as a finite stream, the same sample on both channels
func (nt note) stream(rate beep.SampleRate) beep.Streamer {
	total := rate.N(nt.length)
	attack, release := rate.N(nt.attack), rate.N(nt.release)
	step := nt.hz / float64(rate)

	pos, phase := 0, 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		k := min(len(samples), total-pos)
		for i := range samples[:k] {
			v := nt.gain * gainAt(pos, total, attack, release) * nt.wave(phase)
			samples[i] = [2]float64{v, v}
			phase = math.Mod(phase+step, 1)
			pos++
		}
		return k, true
	})
}

func render(rate beep.SampleRate, notes []note) []beep.Streamer {
	out := make([]beep.Streamer, len(notes))
	for i, nt := range notes {
		out[i] = nt.stream(rate)
	}
	return out
}

// newVolume scales s linearly by vol. Log2(0) is -Inf, so zero is mapped to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound names a built-in effect
type Sound uint8

const (
	SoundBlip Sound = iota // Short tick, one per move
	SoundBell              // Two-partial ding
	SoundBuzz              // Falling saw with a noise burst
)

func (s Sound) String() string {
	switch s {
	case SoundBlip:
		return "blip"
	case SoundBell:
		return "bell"
	case SoundBuzz:
		return "buzz"
	}
	return "unknown"
}

// Layers of a sound play together, notes within a layer play in order
var sounds = map[Sound][][]note{
	SoundBlip: {{
		{hz: 660, wave: square, length: 40 * time.Millisecond, attack: 2 * time.Millisecond, release: 25 * time.Millisecond, gain: 0.4},
	}},
	// A5 with an octave overtone that decays faster
	SoundBell: {
		{{hz: 880, wave: sine, length: 350 * time.Millisecond, attack: 5 * time.Millisecond, release: 300 * time.Millisecond, gain: 0.7}},
		{{hz: 1760, wave: sine, length: 350 * time.Millisecond, attack: 5 * time.Millisecond, release: 150 * time.Millisecond, gain: 0.3}},
	},
	// Crackle, then a saw falling a fifth
	SoundBuzz: {{
		{wave: noise, length: 30 * time.Millisecond, gain: 0.3},
		{hz: 140, wave: saw, length: 70 * time.Millisecond, attack: 5 * time.Millisecond, release: 20 * time.Millisecond, gain: 1},
		{hz: 90, wave: saw, length: 80 * time.Millisecond, release: 60 * time.Millisecond, gain: 1},
	}},
}

// Streamer builds a fresh, finite stream for s at vol in [0,1]. Unknown sounds
// return nil
func Streamer(s Sound, rate beep.SampleRate, vol float64) beep.Streamer {
	layers, ok := sounds[s]
	if !ok {
		return nil
	}
	mixed := make([]beep.Streamer, len(layers))
	for i, layer := range layers {
		mixed[i] = beep.Seq(render(rate, layer)...)
	}
	return newVolume(beep.Mix(mixed...), vol)
}
