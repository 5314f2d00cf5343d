package wordfall

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordfall/internal/core"
)

// SoundPlayer plays the game's sound effects. Calls must not block and
// failures are the player's concern; the game never waits on audio.
type SoundPlayer interface {
	PlayShoot()
	PlayExplosion()
}

// Observer receives integer score or lives changes along with the new total.
type Observer func(delta, total int)

// Controller supervises the round lifecycle (idle -> playing -> gameOver ->
// playing), paces ticks and turns engine events into sound, logging and
// observer callbacks.
type Controller struct {
	engine *Engine
	pacer  *core.Pacer
	sound  SoundPlayer
	logger *log.Logger

	stopped bool
	muted   bool

	score int
	lives int

	scoreObservers []Observer
	livesObservers []Observer
}

// Option configures a Controller.
type Option func(*Controller)

// WithSound sets the sound effect player.
func WithSound(p SoundPlayer) Option {
	return func(c *Controller) { c.sound = p }
}

// WithLogger sets the logger used for lifecycle and gameplay events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTickThreshold sets the minimum spacing between ticks.
func WithTickThreshold(d time.Duration) Option {
	return func(c *Controller) { c.pacer = core.NewPacer(d) }
}

// NewController wraps an engine. The round stays idle until Start.
func NewController(engine *Engine, opts ...Option) *Controller {
	c := &Controller{
		engine: engine,
		pacer:  core.NewPacer(core.DefaultTickThreshold),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.score = engine.Round().Score
	c.lives = engine.Round().Lives
	return c
}

// Start begins the first round. Only valid from idle.
func (c *Controller) Start(now time.Time) bool {
	if c.stopped || c.engine.Status() != core.StatusIdle {
		return false
	}
	c.begin(now)
	c.logger.Info("round started")
	return true
}

// Restart begins a fresh round after game over.
func (c *Controller) Restart(now time.Time) bool {
	if c.stopped || c.engine.Status() != core.StatusGameOver {
		return false
	}
	c.begin(now)
	c.logger.Info("round restarted")
	return true
}

func (c *Controller) begin(now time.Time) {
	c.engine.Reset(now)
	c.pacer.Reset(now)
	c.sync()
}

// Stop tears the controller down. Pending frames and later input are ignored.
func (c *Controller) Stop() {
	if c.stopped {
		return
	}
	c.stopped = true
	c.logger.Debug("controller stopped")
}

// Frame is the per-frame callback. It advances the simulation by one tick
// when a round is playing and the tick threshold has elapsed, and reports
// whether a tick ran.
func (c *Controller) Frame(now time.Time) bool {
	if !c.Running() || !c.pacer.Due(now) {
		return false
	}
	c.dispatch(c.engine.Tick(now))
	return true
}

// Type delivers one typed character. Ignored unless a round is playing.
func (c *Controller) Type(r rune) {
	if !c.Running() {
		return
	}
	c.dispatch(c.engine.AttemptCharacter(r))
}

// Resize applies a new playfield size before the next tick.
func (c *Controller) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	c.engine.Resize(width, height)
}

// Running reports whether ticks and input currently reach the engine.
func (c *Controller) Running() bool {
	return !c.stopped && c.engine.Status() == core.StatusPlaying
}

// SetMuted enables or disables sound effects.
func (c *Controller) SetMuted(muted bool) { c.muted = muted }

// ToggleMute flips the mute state and returns the new value.
func (c *Controller) ToggleMute() bool {
	c.muted = !c.muted
	c.logger.Debug("mute toggled", "muted", c.muted)
	return c.muted
}

// Muted reports whether sound effects are muted.
func (c *Controller) Muted() bool { return c.muted }

// OnScore registers a score observer.
func (c *Controller) OnScore(fn Observer) {
	c.scoreObservers = append(c.scoreObservers, fn)
}

// OnLives registers a lives observer.
func (c *Controller) OnLives(fn Observer) {
	c.livesObservers = append(c.livesObservers, fn)
}

// Engine returns the underlying simulation.
func (c *Controller) Engine() *Engine { return c.engine }

// Snapshot returns the current render snapshot.
func (c *Controller) Snapshot() Snapshot { return c.engine.Snapshot() }

// dispatch reacts to engine events in order.
func (c *Controller) dispatch(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventSpawn:
			c.logger.Debug("word spawned", "word", ev.Word, "x", int(ev.Pos.X))
		case EventShot:
			c.play(SoundPlayer.PlayShoot)
		case EventHit:
			c.logger.Debug("character hit", "word", ev.Word)
		case EventWordDestroyed:
			c.play(SoundPlayer.PlayExplosion)
			c.logger.Debug("word destroyed", "word", ev.Word, "level", c.engine.Level())
		case EventLifeLost:
			c.logger.Debug("word crossed safety line", "word", ev.Word)
		case EventGameOver:
			c.logger.Info("game over", "score", c.engine.Round().Score)
		}

		if ev.ScoreDelta != 0 {
			c.score += ev.ScoreDelta
			c.notify(c.scoreObservers, ev.ScoreDelta, c.score)
		}
		if ev.LivesDelta != 0 {
			c.lives += ev.LivesDelta
			c.notify(c.livesObservers, ev.LivesDelta, c.lives)
		}
	}
}

// sync reports the difference between the observed totals and a freshly
// reset round.
func (c *Controller) sync() {
	r := c.engine.Round()
	if d := r.Score - c.score; d != 0 {
		c.score = r.Score
		c.notify(c.scoreObservers, d, c.score)
	}
	if d := r.Lives - c.lives; d != 0 {
		c.lives = r.Lives
		c.notify(c.livesObservers, d, c.lives)
	}
}

func (c *Controller) notify(observers []Observer, delta, total int) {
	for _, fn := range observers {
		fn(delta, total)
	}
}

func (c *Controller) play(fn func(SoundPlayer)) {
	if c.muted || c.sound == nil {
		return
	}
	fn(c.sound)
}
