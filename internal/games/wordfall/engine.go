// Package wordfall implements the typing-combat game: words fall toward a
// safety line and the player destroys them by typing their letters, while a
// turret fires projectiles at the typed characters.
//
// The Engine owns every entity collection and the round state. It has no
// notion of wall-clock pacing or input devices; the Controller feeds it
// rate-limited ticks and letters, and renderers read Snapshots.
package wordfall

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
)

// Engine is the simulation. It is not safe for concurrent use; callers
// serialize ticks, keystrokes and resizes.
type Engine struct {
	cfg        config.WordfallConfig
	difficulty *config.DifficultyManager
	scorer     Scorer
	measure    core.TextMeasurer
	rng        *rand.Rand

	// Layout (computed from surface size)
	width      float64
	height     float64
	safetyLine float64
	player     Player

	round       Round
	enemies     []*Enemy
	projectiles []*Projectile
	explosions  []*Explosion
	stars       []Star

	nextID EntityID
	tick   uint64
	events []Event
}

// NewEngine creates an idle engine for a width x height playfield.
// A nil measurer uses a monospace advance of 8 units per letter.
func NewEngine(cfg config.WordfallConfig, width, height float64, seed int64, measure core.TextMeasurer) *Engine {
	if measure == nil {
		measure = core.MonospaceMeasurer{Advance: 8}
	}
	e := &Engine{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		scorer:     NewScorer(cfg.Scoring),
		measure:    measure,
		rng:        rand.New(rand.NewSource(seed)),
		round:      Round{Lives: cfg.Rules.Lives, Status: core.StatusIdle},
	}
	e.Resize(width, height)
	e.initStars()
	return e
}

// Reset starts a fresh round: no entities, zero score, full lives,
// no active enemy and the spawn timer set to now.
func (e *Engine) Reset(now time.Time) {
	e.round = freshRound(e.cfg.Rules.Lives, now)
	e.enemies = nil
	e.projectiles = nil
	e.explosions = nil
	e.player.Rotation = 0
	e.tick = 0
	e.events = e.events[:0]
}

// Resize recomputes the layout for a new playfield size. The safety line and
// player anchor depend only on the size, so resizing back restores them.
func (e *Engine) Resize(width, height float64) {
	e.width = width
	e.height = height
	e.safetyLine = height * e.cfg.Layout.SafetyLineRatio
	e.player.Width = e.cfg.Player.Width
	e.player.Height = e.cfg.Player.Height
	e.player.Pos = core.Vec{X: width / 2, Y: height - e.cfg.Player.BottomOffset}
	e.wrapStars()
	e.repairActive()
}

// Tick advances the simulation by one step and returns what happened.
// Ticks outside a playing round change nothing.
func (e *Engine) Tick(now time.Time) []Event {
	if e.round.Status != core.StatusPlaying {
		return nil
	}
	e.tick++

	e.maybeSpawn(now)
	e.advanceProjectiles()
	e.advanceEnemies()
	e.updateExplosions()
	e.updateStars()
	e.repairActive()

	e.compact()
	return e.flushEvents()
}

// advanceEnemies moves every word down and resolves the safety line and the
// bottom edge, in that priority.
func (e *Engine) advanceEnemies() {
	for _, en := range e.enemies {
		if en.dead {
			continue
		}
		newY := en.Pos.Y + en.Speed

		switch {
		case en.Pos.Y < e.safetyLine && newY >= e.safetyLine:
			en.dead = true
			crossing := core.Vec{X: en.Pos.X, Y: e.safetyLine}
			e.spawnExplosion(crossing, ExplosionMiss)
			e.loseLife(en, crossing)
		case newY >= e.height:
			en.dead = true
		default:
			en.Pos.Y = newY
		}

		if en.dead && en.ID == e.round.Active {
			e.round.Active = 0
		}
	}
}

// loseLife costs one life and ends the round at zero.
func (e *Engine) loseLife(en *Enemy, at core.Vec) {
	if e.round.Status != core.StatusPlaying || e.round.Lives <= 0 {
		return
	}
	e.round.Lives--
	e.emit(Event{Kind: EventLifeLost, Enemy: en.ID, Word: en.Word, Pos: at, LivesDelta: -1})

	if e.round.Lives == 0 {
		e.round.Status = core.StatusGameOver
		e.emit(Event{Kind: EventGameOver, Pos: at})
	}
}

// eligible reports whether an enemy may receive keystrokes.
func (e *Engine) eligible(en *Enemy) bool {
	return !en.dead && !en.Finished() && en.Pos.Y < e.safetyLine
}

// firstEligible returns the first eligible enemy in collection order,
// skipping the given ID.
func (e *Engine) firstEligible(except EntityID) *Enemy {
	for _, en := range e.enemies {
		if en.ID != except && e.eligible(en) {
			return en
		}
	}
	return nil
}

// find returns the live enemy with the given ID.
func (e *Engine) find(id EntityID) *Enemy {
	if id == 0 {
		return nil
	}
	for _, en := range e.enemies {
		if en.ID == id && !en.dead {
			return en
		}
	}
	return nil
}

// repairActive keeps the active enemy eligible, falling back to the first
// eligible enemy or none.
func (e *Engine) repairActive() {
	if en := e.find(e.round.Active); en != nil && e.eligible(en) {
		return
	}
	e.round.Active = 0
	if en := e.firstEligible(0); en != nil {
		e.round.Active = en.ID
	}
}

// compact drops soft-deleted entities, preserving order.
func (e *Engine) compact() {
	enemies := e.enemies[:0]
	for _, en := range e.enemies {
		if !en.dead {
			enemies = append(enemies, en)
		}
	}
	clear(e.enemies[len(enemies):])
	e.enemies = enemies

	projectiles := e.projectiles[:0]
	for _, p := range e.projectiles {
		if !p.dead {
			projectiles = append(projectiles, p)
		}
	}
	clear(e.projectiles[len(projectiles):])
	e.projectiles = projectiles

	explosions := e.explosions[:0]
	for _, ex := range e.explosions {
		if ex.Alpha > 0 {
			explosions = append(explosions, ex)
		}
	}
	clear(e.explosions[len(explosions):])
	e.explosions = explosions
}

func (e *Engine) newID() EntityID {
	e.nextID++
	return e.nextID
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// flushEvents hands the pending events to the caller.
func (e *Engine) flushEvents() []Event {
	if len(e.events) == 0 {
		return nil
	}
	out := make([]Event, len(e.events))
	copy(out, e.events)
	e.events = e.events[:0]
	return out
}

// Round returns the current round state.
func (e *Engine) Round() Round { return e.round }

// Status returns the lifecycle state.
func (e *Engine) Status() core.Status { return e.round.Status }

// Factor returns the current difficulty factor.
func (e *Engine) Factor() float64 { return e.difficulty.Factor(e.round.Destroyed) }

// Level returns the displayed difficulty level.
func (e *Engine) Level() int { return e.difficulty.Level(e.round.Destroyed) }

// SafetyLine returns the y coordinate of the safety line.
func (e *Engine) SafetyLine() float64 { return e.safetyLine }

// Player returns the turret.
func (e *Engine) Player() Player { return e.player }

// Size returns the playfield size.
func (e *Engine) Size() (float64, float64) { return e.width, e.height }

// ActiveIndex returns the index of the active enemy in the live collection,
// or -1 when there is none.
func (e *Engine) ActiveIndex() int {
	i := 0
	for _, en := range e.enemies {
		if en.dead {
			continue
		}
		if en.ID == e.round.Active {
			return i
		}
		i++
	}
	return -1
}

// Enemies returns copies of the live enemies in collection order.
func (e *Engine) Enemies() []Enemy {
	out := make([]Enemy, 0, len(e.enemies))
	for _, en := range e.enemies {
		if !en.dead {
			out = append(out, *en)
		}
	}
	return out
}

// State converts the round to the platform-level game state.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:    e.round.Score,
		Lives:    e.round.Lives,
		Level:    e.Level(),
		Status:   e.round.Status,
		GameOver: e.round.Status == core.StatusGameOver,
	}
}
