package core

import "unicode/utf8"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the display surface.
type RuntimeConfig struct {
	ScreenW  int   // Surface width in screen units (cells or pixels)
	ScreenH  int   // Surface height in screen units
	TickRate int   // Frame callbacks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in platform layer

	// CellW and CellH convert one screen unit into playfield units.
	// Terminals use roughly 8x16, pixel windows use 1x1. Zero means 1.
	CellW float64
	CellH float64

	// Measurer reports rendered text width in playfield units.
	// Nil selects a monospace measurer based on CellW.
	Measurer TextMeasurer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults for a terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		CellW:    8,
		CellH:    16,
	}
}

// Scale returns the cell size with zero values replaced by 1.
func (c RuntimeConfig) Scale() (float64, float64) {
	w, h := c.CellW, c.CellH
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return w, h
}

// WorldSize returns the surface size in playfield units.
func (c RuntimeConfig) WorldSize() (float64, float64) {
	w, h := c.Scale()
	return float64(c.ScreenW) * w, float64(c.ScreenH) * h
}

// TextMeasurer reports the width a string occupies when drawn.
type TextMeasurer interface {
	MeasureText(s string) float64
}

// MonospaceMeasurer measures text as a fixed advance per rune.
type MonospaceMeasurer struct {
	Advance float64
}

// MeasureText implements TextMeasurer.
func (m MonospaceMeasurer) MeasureText(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * m.Advance
}

// Status is the lifecycle state of a round.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusGameOver
	StatusPaused // Reserved; no transition reaches it
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "gameOver"
	case StatusPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Remaining lives
	Level    int    // Displayed difficulty level
	Status   Status // Lifecycle state
	GameOver bool   // Whether the round has ended
	Muted    bool   // Whether sound effects are muted
}

// StepResult is returned by Game.Step() after each frame callback.
type StepResult struct {
	State  GameState
	Ticked bool // False when the frame was skipped by the tick rate limiter
}
