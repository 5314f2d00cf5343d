package core

import "time"

// DefaultTickThreshold is the minimum spacing between processed ticks (~60 Hz).
const DefaultTickThreshold = 16 * time.Millisecond

// Pacer rate-limits simulation ticks. Frame callbacks that arrive sooner than
// the threshold after the last processed tick are skipped, never accumulated,
// so a fast frame source redraws the last computed state.
type Pacer struct {
	threshold time.Duration
	last      time.Time
	primed    bool
}

// NewPacer creates a pacer with the given threshold.
// A non-positive threshold uses DefaultTickThreshold.
func NewPacer(threshold time.Duration) *Pacer {
	if threshold <= 0 {
		threshold = DefaultTickThreshold
	}
	return &Pacer{threshold: threshold}
}

// Reset makes now the reference point for the next tick.
func (p *Pacer) Reset(now time.Time) {
	p.last = now
	p.primed = true
}

// Due reports whether a tick should be processed at now, and records it if so.
// The first call after construction is always due.
func (p *Pacer) Due(now time.Time) bool {
	if !p.primed {
		p.Reset(now)
		return true
	}
	if now.Sub(p.last) < p.threshold {
		return false
	}
	p.last = now
	return true
}

// Threshold returns the configured minimum tick spacing.
func (p *Pacer) Threshold() time.Duration {
	return p.threshold
}
