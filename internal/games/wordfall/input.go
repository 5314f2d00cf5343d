package wordfall

import "github.com/vovakirdan/wordfall/internal/core"

// Letter normalizes a typed rune. Only ASCII letters are gameplay input;
// everything else reports false.
func Letter(r rune) (byte, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return byte(r), true
	case r >= 'A' && r <= 'Z':
		return byte(r - 'A' + 'a'), true
	default:
		return 0, false
	}
}

// LetterFromKey maps a key name as reported by terminal and window toolkits
// ("a", "Q", "ctrl+a", "enter") to a gameplay letter.
func LetterFromKey(key string) (byte, bool) {
	if len(key) != 1 {
		return 0, false
	}
	return Letter(rune(key[0]))
}

// AttemptCharacter routes one typed character to the active enemy.
// Non-letters, mismatches and a missing active enemy are no-ops.
func (e *Engine) AttemptCharacter(r rune) []Event {
	letter, ok := Letter(r)
	if !ok || e.round.Status != core.StatusPlaying {
		return nil
	}
	e.attempt(letter, true)
	e.compact()
	return e.flushEvents()
}

// attempt applies a letter. When the active enemy has already passed the
// safety line the letter is re-dispatched once to the next eligible enemy.
func (e *Engine) attempt(letter byte, redispatch bool) {
	en := e.find(e.round.Active)
	if en == nil {
		return
	}

	if en.Pos.Y >= e.safetyLine {
		next := e.firstEligible(en.ID)
		if next == nil || !redispatch {
			return
		}
		e.round.Active = next.ID
		e.attempt(letter, false)
		return
	}

	if en.Finished() || en.Word[en.Typed] != letter {
		return
	}
	en.Typed++
	e.fireAt(en)

	// Catch-up: keep the destroyed prefix close behind fast typing
	if en.Typed-en.Hit >= e.cfg.Rules.CatchUpGap {
		e.registerHit(en)
	}

	if en.Finished() && !en.dead {
		e.round.Active = 0
		if next := e.firstEligible(en.ID); next != nil {
			e.round.Active = next.ID
		}
	}
	e.repairActive()
}

// fireAt turns the turret toward the enemy's next target character and
// fires one projectile at it.
func (e *Engine) fireAt(en *Enemy) {
	muzzle := e.player.Muzzle()
	target := en.Target()
	angle := aim(muzzle, target)
	e.player.Rotation = barrelRotation(angle)

	p := &Projectile{
		ID:     e.newID(),
		Pos:    muzzle,
		Target: target,
		Angle:  angle,
		Radius: e.cfg.Projectile.Radius,
		Speed:  e.cfg.Projectile.Speed,
	}
	e.projectiles = append(e.projectiles, p)
	e.emit(Event{Kind: EventShot, Enemy: en.ID, Word: en.Word, Pos: target})
}
