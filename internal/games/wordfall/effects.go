package wordfall

import (
	"math"

	"github.com/vovakirdan/wordfall/internal/core"
)

// Explosion tuning
const (
	particleDrag     = 0.96
	particleFadeMult = 1.5
	explosionGrowth  = 0.5
)

var (
	successColors = []core.Color{core.ColorYellow, core.ColorOrange, core.ColorBrightYellow, core.ColorWhite}
	missColors    = []core.Color{core.ColorRed, core.ColorBrightRed, core.ColorOrange}
)

// spawnExplosion adds a cosmetic burst with particles radiating outward.
func (e *Engine) spawnExplosion(pos core.Vec, kind ExplosionKind) {
	radius := e.cfg.Effects.SuccessRadius
	count := e.cfg.Effects.ParticleCount
	colors := successColors
	if kind == ExplosionMiss {
		radius = e.cfg.Effects.MissRadius
		count /= 2
		colors = missColors
	}

	ex := &Explosion{
		Pos:       pos,
		Radius:    radius,
		Kind:      kind,
		Alpha:     1,
		Particles: make([]Particle, 0, count),
	}
	for i := 0; i < count; i++ {
		angle := float64(i) * 2 * math.Pi / float64(count)
		speed := 1 + e.rng.Float64()*3
		ex.Particles = append(ex.Particles, Particle{
			Pos:    pos,
			Vel:    core.FromAngle(angle, speed),
			Radius: 1 + e.rng.Float64()*2,
			Color:  colors[e.rng.Intn(len(colors))],
			Alpha:  1,
		})
	}
	e.explosions = append(e.explosions, ex)
}

// updateExplosions fades explosions and moves their particles.
func (e *Engine) updateExplosions() {
	decay := e.cfg.Effects.ExplosionDecay
	for _, ex := range e.explosions {
		ex.Alpha = math.Max(0, ex.Alpha-decay)
		ex.Radius += explosionGrowth
		for i := range ex.Particles {
			p := &ex.Particles[i]
			p.Pos = p.Pos.Add(p.Vel)
			p.Vel = p.Vel.Scale(particleDrag)
			p.Alpha = math.Max(0, p.Alpha-decay*particleFadeMult)
		}
	}
}

// initStars scatters the background stars over the playfield.
func (e *Engine) initStars() {
	e.stars = make([]Star, e.cfg.Effects.StarCount)
	for i := range e.stars {
		e.stars[i] = Star{
			Pos:        core.Vec{X: e.rng.Float64() * e.width, Y: e.rng.Float64() * e.height},
			Size:       0.5 + e.rng.Float64()*1.5,
			Speed:      0.2 + e.rng.Float64()*0.8,
			Brightness: 0.3 + e.rng.Float64()*0.7,
		}
	}
}

// updateStars drifts stars down, wrapping at the bottom.
func (e *Engine) updateStars() {
	for i := range e.stars {
		s := &e.stars[i]
		s.Pos.Y += s.Speed
		if s.Pos.Y > e.height {
			s.Pos.Y -= e.height
		}
	}
}

// wrapStars folds stars back into a resized playfield.
func (e *Engine) wrapStars() {
	if e.width <= 0 || e.height <= 0 {
		return
	}
	for i := range e.stars {
		s := &e.stars[i]
		s.Pos.X = math.Mod(s.Pos.X, e.width)
		s.Pos.Y = math.Mod(s.Pos.Y, e.height)
	}
}
