package wordfall

import "github.com/vovakirdan/wordfall/internal/core"

// EntityID identifies an entity for its whole lifetime. Zero means none.
type EntityID uint64

// Player is the turret at the bottom of the playfield.
// Rotation is 0 when the barrel points straight up.
type Player struct {
	Pos      core.Vec
	Width    float64
	Height   float64
	Rotation float64
}

// Muzzle returns the point projectiles are fired from.
func (p Player) Muzzle() core.Vec {
	return core.Vec{X: p.Pos.X, Y: p.Pos.Y - p.Height/2}
}

// Enemy is a falling word. Typed and Hit are prefix lengths of Word,
// so both prefixes are always prefixes of the word.
type Enemy struct {
	ID     EntityID
	Word   string
	Typed  int
	Hit    int
	Pos    core.Vec // Centre of the word
	Width  float64  // Measured width including padding
	Height float64
	Speed  float64 // Playfield units per tick

	dead bool
}

// TypedChars returns the typed prefix.
func (e *Enemy) TypedChars() string { return e.Word[:e.Typed] }

// HitChars returns the destroyed prefix.
func (e *Enemy) HitChars() string { return e.Word[:e.Hit] }

// Finished reports whether the whole word has been typed.
func (e *Enemy) Finished() bool { return e.Typed >= len(e.Word) }

// Destroyed reports whether every character has been hit.
func (e *Enemy) Destroyed() bool { return e.Hit >= len(e.Word) }

// Left returns the x coordinate of the left edge.
func (e *Enemy) Left() float64 { return e.Pos.X - e.Width/2 }

// CharWidth returns the width of a single character slot.
func (e *Enemy) CharWidth() float64 {
	if len(e.Word) == 0 {
		return 0
	}
	return e.Width / float64(len(e.Word))
}

// CharCenter returns the centre of the character at index i.
func (e *Enemy) CharCenter(i int) core.Vec {
	return core.Vec{
		X: e.Left() + e.CharWidth()*(float64(i)+0.5),
		Y: e.Pos.Y,
	}
}

// Target returns the centre of the next character to be hit.
func (e *Enemy) Target() core.Vec {
	return e.CharCenter(e.Hit)
}

// Projectile travels in a straight line from the muzzle.
type Projectile struct {
	ID     EntityID
	Pos    core.Vec
	Target core.Vec
	Angle  float64
	Radius float64
	Speed  float64

	dead bool
}

// ExplosionKind selects the look of an explosion.
type ExplosionKind int

const (
	ExplosionSuccess ExplosionKind = iota // Word destroyed
	ExplosionMiss                         // Word crossed the safety line
)

// Particle is a single fragment of an explosion.
type Particle struct {
	Pos    core.Vec
	Vel    core.Vec
	Radius float64
	Color  core.Color
	Alpha  float64
}

// Explosion is a cosmetic burst. It is removed once Alpha reaches zero.
type Explosion struct {
	Pos       core.Vec
	Radius    float64
	Kind      ExplosionKind
	Alpha     float64
	Particles []Particle
}

// Star is a background decoration drifting down the playfield.
type Star struct {
	Pos        core.Vec
	Size       float64
	Speed      float64
	Brightness float64
}
