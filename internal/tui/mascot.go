package tui

import (
	"github.com/akyairhashvil/conciergerie/internal/config"
	"github.com/charmbracelet/lipgloss"
)

type Mood string

const (
	MoodNeutral   Mood = "neutral"
	MoodThinking  Mood = "thinking"
	MoodHappy     Mood = "happy"
	MoodSurprised Mood = "surprised"
	MoodTired     Mood = "tired"
)

// Mascot is the assistant's face. A reaction holds until the matching
// settle arrives; a newer reaction makes older settles stale.
type Mascot struct {
	rest Mood
	mood Mood
	seq  int
}

func NewMascot(rest Mood) Mascot {
	return Mascot{rest: rest, mood: rest}
}

func (m *Mascot) Mood() Mood { return m.mood }
func (m *Mascot) Rest() Mood { return m.rest }

// React switches to mood and returns the sequence number its settle must carry.
func (m *Mascot) React(mood Mood) int {
	m.seq++
	m.mood = mood
	return m.seq
}

// Settle returns to the resting mood if seq is still the latest reaction.
func (m *Mascot) Settle(seq int) bool {
	if seq != m.seq {
		return false
	}
	m.mood = m.rest
	return true
}

func (m *Mascot) eyes(blink bool) string {
	if blink {
		return "- -"
	}
	if m.mood == MoodTired {
		return "◡ ◡"
	}
	return "● ●"
}

func (m *Mascot) mouth() string {
	switch m.mood {
	case MoodHappy:
		return "◡"
	case MoodSurprised:
		return "o"
	case MoodTired:
		return "_"
	default:
		return "·"
	}
}

// View renders the face. Compact mode is a single line.
func (m *Mascot) View(blink, compact bool) string {
	color := CurrentTheme.Mood[m.mood]
	face := lipgloss.NewStyle().Foreground(color)
	suffix := ""
	if m.mood == MoodThinking {
		suffix = " …"
	}
	if compact {
		return face.Render("("+m.eyes(blink)+") "+m.mouth()) + suffix
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Align(lipgloss.Center)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		box.Render(face.Render(m.eyes(blink))+"\n"+face.Render(m.mouth())),
		suffix,
	)
}

func compactHeight(height int) bool {
	return height > 0 && height < config.CompactModeThreshold
}
