package wordfall

import (
	"time"

	"github.com/vovakirdan/wordfall/internal/core"
)

// Round is the score, lives and lifecycle state of one round.
type Round struct {
	Score     int
	Lives     int
	Status    core.Status
	Active    EntityID // Enemy receiving keystrokes, 0 for none
	Destroyed int      // Words destroyed, drives difficulty
	LastSpawn time.Time
}

// freshRound returns the state a round starts with.
func freshRound(lives int, now time.Time) Round {
	return Round{
		Lives:     lives,
		Status:    core.StatusPlaying,
		LastSpawn: now,
	}
}
