// Package tui provides the Bubble Tea integration for the animation player.
// It handles the terminal UI loop, input mapping, the picker and SSH sessions.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the animation by one tick. Player is the id of
// the player whose clock sent it, so a stale clock cannot drive a new player.
type TickMsg struct {
	Time   time.Time
	Player int64
}

var lastPlayerID atomic.Int64

func nextPlayerID() int64 {
	return lastPlayerID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick message after one
// tick at the specified rate.
func tickCmd(player int64, ticksPerSecond int) tea.Cmd {
	interval := time.Second / time.Duration(max(ticksPerSecond, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Player: player}
	})
}
