package wordfall

import (
	"math"

	"github.com/vovakirdan/wordfall/internal/core"
)

// advanceProjectiles moves projectiles along their fixed angle, discards the
// ones that leave the playfield and resolves hits.
func (e *Engine) advanceProjectiles() {
	for _, p := range e.projectiles {
		if p.dead {
			continue
		}
		p.Pos = p.Pos.Add(core.FromAngle(p.Angle, p.Speed))

		if p.Pos.X < -p.Radius || p.Pos.X > e.width+p.Radius ||
			p.Pos.Y < -p.Radius || p.Pos.Y > e.height+p.Radius {
			p.dead = true
			continue
		}

		e.resolveProjectile(p)
	}
}

// resolveProjectile tests a projectile against enemies in collection order.
// The first enemy whose next target character is within range ends the
// search and consumes the projectile, even when no hit is registered.
func (e *Engine) resolveProjectile(p *Projectile) {
	for _, en := range e.enemies {
		if en.dead || !e.collides(p, en) {
			continue
		}
		p.dead = true
		if en.Hit < en.Typed && en.Hit < len(en.Word) {
			e.registerHit(en)
		}
		return
	}
}

// collides reports whether the projectile centre lies within the tolerance
// circle around the enemy's next target character.
func (e *Engine) collides(p *Projectile, en *Enemy) bool {
	if en.Hit >= len(en.Word) {
		return false
	}
	cw := en.CharWidth()
	tolerance := e.cfg.Rules.HitTolerance * cw
	return core.Dist(p.Pos, en.Target()) < tolerance
}

// registerHit destroys the next character of a word and completes the word
// when it was the last one.
func (e *Engine) registerHit(en *Enemy) {
	target := en.Target()
	en.Hit++

	points := e.scorer.CharHit(en)
	e.addScore(points)
	e.emit(Event{Kind: EventHit, Enemy: en.ID, Word: en.Word, Pos: target, ScoreDelta: points})

	if en.Destroyed() {
		e.destroyWord(en)
	}
}

// destroyWord scores a fully destroyed word and removes it.
func (e *Engine) destroyWord(en *Enemy) {
	points := e.scorer.WordDestroyed(en)
	e.addScore(points)
	e.round.Destroyed++
	en.dead = true
	e.spawnExplosion(en.Pos, ExplosionSuccess)
	e.emit(Event{Kind: EventWordDestroyed, Enemy: en.ID, Word: en.Word, Pos: en.Pos, ScoreDelta: points})

	if en.ID == e.round.Active {
		e.round.Active = 0
	}
	e.repairActive()
}

func (e *Engine) addScore(points int) {
	if points > 0 {
		e.round.Score += points
	}
}

// aim returns the angle from the muzzle to a point.
func aim(from, to core.Vec) float64 {
	return core.AngleTo(from, to)
}

// barrelRotation converts an aim angle into a turret rotation where 0 is up.
func barrelRotation(angle float64) float64 {
	return angle + math.Pi/2
}
