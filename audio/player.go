// Package audio plays short synthesized sound effects through the system speaker.
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the speaker rate used for every effect
const SampleRate = beep.SampleRate(44100)

// Config controls the Player
type Config struct {
	Enabled bool
	Volume  float64 // 0.0 - 1.0
}

// Player mixes effects onto the speaker. A disabled or uninitialized Player
// accepts every call and does nothing
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player; the speaker is opened by Init
func NewPlayer(cfg Config) *Player {
	cfg.Volume = min(max(cfg.Volume, 0), 1)
	return &Player{cfg: cfg, mixer: &beep.Mixer{}}
}

// Init opens the speaker with a 100ms buffer. It is a no-op when disabled or
// already initialized
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled || p.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("audio: speaker at %d Hz, volume %.2f", SampleRate, p.cfg.Volume)
	return nil
}

// Enabled reports whether Play reaches the speaker
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play starts s without waiting for it to finish
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	st := Streamer(s, SampleRate, p.cfg.Volume)
	if st == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// Close drops pending sounds and closes the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.initialized = false
}
