package wordfall

import "github.com/vovakirdan/wordfall/internal/core"

// EventKind identifies something that happened during a tick or keystroke.
type EventKind int

const (
	EventSpawn         EventKind = iota // A new word entered the playfield
	EventShot                           // A matching letter fired a projectile
	EventHit                            // A character was destroyed
	EventWordDestroyed                  // Every character of a word was destroyed
	EventLifeLost                       // A word crossed the safety line
	EventGameOver                       // Lives reached zero
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventShot:
		return "shot"
	case EventHit:
		return "hit"
	case EventWordDestroyed:
		return "word_destroyed"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event reports a state change to the controller.
// ScoreDelta and LivesDelta are the integer changes caused by the event.
type Event struct {
	Kind       EventKind
	Enemy      EntityID
	Word       string
	Pos        core.Vec
	ScoreDelta int
	LivesDelta int
}
