package wordfall

import "github.com/vovakirdan/wordfall/internal/config"

// Scorer awards points. Exactly one policy is active per round.
type Scorer interface {
	// CharHit returns points for one destroyed character.
	CharHit(e *Enemy) int
	// WordDestroyed returns points for a fully destroyed word.
	WordDestroyed(e *Enemy) int
}

// NewScorer returns the policy selected by cfg.Mode.
func NewScorer(cfg config.ScoringConfig) Scorer {
	if cfg.Mode == config.ScoringPerChar {
		return perCharScorer{char: cfg.CharPoints, bonusPerChar: cfg.CompletionBonusPerChar}
	}
	return completionScorer{points: cfg.WordPoints}
}

// completionScorer only scores finished words.
type completionScorer struct {
	points int
}

func (s completionScorer) CharHit(*Enemy) int       { return 0 }
func (s completionScorer) WordDestroyed(*Enemy) int { return s.points }

// perCharScorer scores every character plus a length-based bonus.
type perCharScorer struct {
	char         int
	bonusPerChar int
}

func (s perCharScorer) CharHit(*Enemy) int         { return s.char }
func (s perCharScorer) WordDestroyed(e *Enemy) int { return s.bonusPerChar * len(e.Word) }
