package wordfall

import "github.com/vovakirdan/wordfall/internal/core"

// Snapshot is an immutable copy of everything a renderer needs.
type Snapshot struct {
	Tick       uint64
	Width      float64
	Height     float64
	SafetyLine float64
	Player     Player

	Enemies     []Enemy
	Active      int // Index into Enemies, -1 for none
	Projectiles []Projectile
	Explosions  []Explosion
	Stars       []Star

	Score  int
	Lives  int
	Level  int
	Status core.Status
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       e.tick,
		Width:      e.width,
		Height:     e.height,
		SafetyLine: e.safetyLine,
		Player:     e.player,
		Enemies:    e.Enemies(),
		Active:     e.ActiveIndex(),
		Score:      e.round.Score,
		Lives:      e.round.Lives,
		Level:      e.Level(),
		Status:     e.round.Status,
	}

	s.Projectiles = make([]Projectile, 0, len(e.projectiles))
	for _, p := range e.projectiles {
		if !p.dead {
			s.Projectiles = append(s.Projectiles, *p)
		}
	}

	s.Explosions = make([]Explosion, 0, len(e.explosions))
	for _, ex := range e.explosions {
		cp := *ex
		cp.Particles = append([]Particle(nil), ex.Particles...)
		s.Explosions = append(s.Explosions, cp)
	}

	s.Stars = append([]Star(nil), e.stars...)
	return s
}
