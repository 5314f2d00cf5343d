package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	shootDuration     = 120 * time.Millisecond
	explosionDuration = 450 * time.Millisecond
)

// sweep is a square wave whose pitch glides from one frequency to another
// with an exponential fade. It ends after a fixed number of samples.
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	decay    float64
	phase    float64
	pos      int
	total    int
}

func newSweep(rate beep.SampleRate, from, to float64, d time.Duration) *sweep {
	return &sweep{rate: rate, from: from, to: to, decay: 18, total: rate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		t := float64(s.pos) / float64(s.rate)

		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		val *= math.Exp(-t * s.decay)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// burst is white noise over a low rumble, decaying quickly.
type burst struct {
	rate  beep.SampleRate
	rng   *rand.Rand
	decay float64
	pos   int
	total int
}

func newBurst(rate beep.SampleRate, d time.Duration, seed int64) *burst {
	return &burst{rate: rate, rng: rand.New(rand.NewSource(seed)), decay: 7, total: rate.N(d)}
}

func (b *burst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.total {
			return i, i > 0
		}
		t := float64(b.pos) / float64(b.rate)
		noise := b.rng.Float64()*2 - 1
		rumble := math.Sin(2 * math.Pi * 70 * t)

		val := math.Exp(-t*b.decay) * (0.7*noise + 0.3*rumble)

		samples[i][0] = val
		samples[i][1] = val
		b.pos++
	}
	return len(samples), true
}

func (b *burst) Err() error { return nil }

// newVolume scales a streamer linearly. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// shootSound is a short descending laser blip.
func shootSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(newSweep(rate, 1400, 320, shootDuration), vol)
}

// explosionSound is a noisy thump.
func explosionSound(rate beep.SampleRate, vol float64, seed int64) beep.Streamer {
	return newVolume(newBurst(rate, explosionDuration, seed), vol)
}
