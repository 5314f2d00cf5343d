// Package audio plays the game's synthesized sound effects through the
// system speaker. Playback is fire and forget: sounds overlap freely in a
// mixer, and an unavailable audio device only costs a warning.
package audio

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/wordfall/internal/config"
)

// speakerOnce guards speaker.Init, which may only run once per process.
var (
	speakerOnce sync.Once
	speakerErr  error
)

// Player mixes shoot and explosion sounds into the speaker.
type Player struct {
	cfg    config.AudioConfig
	rate   beep.SampleRate
	mixer  *beep.Mixer
	logger *log.Logger

	ready  atomic.Bool
	closed atomic.Bool
	seed   atomic.Int64
}

// New creates a player. Nothing reaches the device until Open succeeds.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	p := &Player{
		cfg:    cfg,
		rate:   beep.SampleRate(rate),
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	p.seed.Store(time.Now().UnixNano())
	return p
}

// Open initializes the speaker in the background so a slow or missing
// device never delays the first frame. Sounds requested before the device
// is ready are dropped.
func (p *Player) Open() {
	if !p.cfg.Enabled {
		p.logger.Debug("audio disabled")
		return
	}
	go func() {
		if err := p.init(); err != nil {
			p.logger.Warn("audio unavailable", "err", err)
			return
		}
		if !p.closed.Load() {
			p.ready.Store(true)
			p.logger.Debug("audio ready", "rate", int(p.rate))
		}
	}()
}

func (p *Player) init() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(p.rate, p.rate.N(50*time.Millisecond))
	})
	if speakerErr != nil {
		return fmt.Errorf("audio: speaker init: %w", speakerErr)
	}
	speaker.Play(p.mixer)
	return nil
}

// Ready reports whether sounds are currently audible.
func (p *Player) Ready() bool {
	return p.ready.Load() && !p.closed.Load()
}

// PlayShoot plays the projectile sound.
func (p *Player) PlayShoot() {
	p.add(shootSound(p.rate, p.cfg.MasterVolume*p.cfg.ShootVolume))
}

// PlayExplosion plays the word destroyed sound.
func (p *Player) PlayExplosion() {
	p.add(explosionSound(p.rate, p.cfg.MasterVolume*p.cfg.ExplosionVolume, p.seed.Add(1)))
}

func (p *Player) add(s beep.Streamer) {
	if !p.Ready() {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences the player. The shared speaker stays initialized.
func (p *Player) Close() {
	if p.closed.Swap(true) {
		return
	}
	if p.ready.Load() {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
}

// Nop discards every sound.
type Nop struct{}

func (Nop) PlayShoot()     {}
func (Nop) PlayExplosion() {}
