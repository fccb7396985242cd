package tui

import (
	"time"

	"github.com/akyairhashvil/conciergerie/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// settleMsg returns a screen's mascot to rest. It belongs to one mount and
// one reaction; anything else is stale.
type settleMsg struct {
	mount uuid.UUID
	seq   int
}

func settleAfter(d time.Duration, mount uuid.UUID, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return settleMsg{mount: mount, seq: seq} })
}

type blinkMsg struct {
	closed bool
}

func blinkCmd(closed bool) tea.Cmd {
	d := config.BlinkInterval - config.BlinkDuration
	if !closed {
		d = config.BlinkDuration
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return blinkMsg{closed: closed} })
}

type toastExpiredMsg struct{}

func toastExpiry(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return toastExpiredMsg{} })
}
