package wordfall

import (
	"time"

	"github.com/vovakirdan/wordfall/internal/core"
)

// maybeSpawn adds a word once the difficulty-scaled interval has elapsed.
func (e *Engine) maybeSpawn(now time.Time) {
	base := time.Duration(e.cfg.Enemy.SpawnIntervalMs) * time.Millisecond
	interval := e.difficulty.SpawnInterval(base, e.round.Destroyed)
	if now.Sub(e.round.LastSpawn) <= interval {
		return
	}

	word := e.cfg.Words[e.rng.Intn(len(e.cfg.Words))]
	speed := e.difficulty.Speed(e.cfg.Enemy.BaseSpeed, e.round.Destroyed) * (0.9 + e.rng.Float64()*0.2)
	width := e.measure.MeasureText(word) + e.cfg.Enemy.Padding

	// Keep the whole word on screen
	x := e.width / 2
	if e.width > width {
		x = e.rng.Float64()*(e.width-width) + width/2
	}

	e.spawnEnemy(word, core.Vec{X: x, Y: 0}, width, speed)
	e.round.LastSpawn = now
}

// spawnEnemy appends a word to the collection and makes it active if
// nothing else is.
func (e *Engine) spawnEnemy(word string, pos core.Vec, width, speed float64) *Enemy {
	en := &Enemy{
		ID:     e.newID(),
		Word:   word,
		Pos:    pos,
		Width:  width,
		Height: e.cfg.Enemy.Height,
		Speed:  speed,
	}
	e.enemies = append(e.enemies, en)
	e.emit(Event{Kind: EventSpawn, Enemy: en.ID, Word: word, Pos: pos})

	if e.round.Active == 0 && e.eligible(en) {
		e.round.Active = en.ID
	}
	return en
}
