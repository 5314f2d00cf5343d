// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame callback. Epoch identifies the loop
// that scheduled it; ticks from a cancelled loop are dropped.
type TickMsg struct {
	Time  time.Time
	Epoch uint64
}

// epochs hands out tick loop generations, unique across all models.
var epochs atomic.Uint64

func nextEpoch() uint64 {
	return epochs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message after a
// frame interval at the specified rate.
func tickCmd(tickRate int, epoch uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Epoch: epoch}
	})
}
