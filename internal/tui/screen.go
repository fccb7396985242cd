package tui

import (
	"context"
	"strings"
	"time"

	"github.com/akyairhashvil/conciergerie/internal/config"
	"github.com/akyairhashvil/conciergerie/internal/gesture"
	"github.com/akyairhashvil/conciergerie/internal/models"
	"github.com/akyairhashvil/conciergerie/internal/notify"
	"github.com/akyairhashvil/conciergerie/internal/provider"
	"github.com/akyairhashvil/conciergerie/internal/swipe"
	"github.com/akyairhashvil/conciergerie/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
)

// screen is one mounted tab. A mount lives until the tab is left.
type screen interface {
	Mount() uuid.UUID
	Settle(seq int)
	Cancel()
	Capturing() bool
	HandleMouse(msg tea.MouseMsg, width, height int) tea.Cmd
	View(width, height int, blink bool) string
	Err() error
}

// screenOptions is what every controller is mounted with.
type screenOptions struct {
	ctx      context.Context
	provider provider.Provider
	sink     notify.Sink
	commit   float64
	hint     float64
	settle   time.Duration
	now      func() time.Time
}

func (o screenOptions) notify(tab Tab, itemID string, outcome models.Outcome, title, body string, tone models.Tone) {
	if o.sink == nil {
		return
	}
	o.sink.Notify(models.NewNotification(string(tab), itemID, outcome, title, body, tone))
}

func (o screenOptions) newCard(opts ...swipe.Option[tea.Cmd]) *swipe.Card[tea.Cmd] {
	all := append([]swipe.Option[tea.Cmd]{swipe.WithThresholds[tea.Cmd](o.commit, o.hint)}, opts...)
	return swipe.New(all...)
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func toPx(x, y int) (float64, float64) {
	return float64(x) * config.CellWidthPx, float64(y) * config.CellHeightPx
}

func isLeftPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

// dragCard forwards a mouse event to a card. Presses only start a drag when
// they land on hit.
func dragCard(card *swipe.Card[tea.Cmd], msg tea.MouseMsg, hit rect) tea.Cmd {
	if card == nil {
		return nil
	}
	px, py := toPx(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !hit.contains(msg.X, msg.Y) {
			return nil
		}
		util.LogError("start drag", card.Press(gesture.PointerMouse, px, py))
	case tea.MouseActionMotion:
		card.Drag(px, py)
	case tea.MouseActionRelease:
		if !card.Frame().Active {
			return nil
		}
		card.Drag(px, py)
		_, cmd, _ := card.Release()
		return cmd
	}
	return nil
}

func cardWidth(width int) int {
	return util.Clamp(width-4, config.MinCardWidth, config.MaxCardWidth)
}

// cardBox is the frame of a swipe card, tinted by the previewed direction.
func cardBox(width int, accent lipgloss.Color, overlay swipe.Overlay, tf swipe.Transform) lipgloss.Style {
	theme := CurrentTheme
	border := lipgloss.RoundedBorder()
	if tf.RotateDeg >= 5 || tf.RotateDeg <= -5 {
		border = lipgloss.ThickBorder()
	}
	switch overlay {
	case swipe.OverlayAccept:
		accent = theme.Accept
	case swipe.OverlayReject:
		accent = theme.Reject
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(accent).
		Padding(0, 1).
		Width(width - 2)
}

// placeCard offsets a rendered card by the drag transform within a band
// one row above and two rows below its resting place.
func placeCard(card string, width int, tf swipe.Transform) string {
	cols, rows := tf.Cells()
	w := lipgloss.Width(card)
	left := util.Clamp((width-w)/2+cols, 0, max(width-w, 0))
	top := util.Clamp(1+rows, 0, 3)
	return strings.Repeat("\n", top) +
		lipgloss.NewStyle().MarginLeft(left).Render(card) +
		strings.Repeat("\n", 3-top)
}

// restingCard is where placeCard draws a card with no transform.
func restingCard(card string, width, top int) rect {
	w := lipgloss.Width(card)
	return rect{x: max((width-w)/2, 0), y: top + 1, w: w, h: lipgloss.Height(card)}
}

func priorityDot(p models.Priority) string {
	theme := CurrentTheme
	switch p {
	case models.PriorityHigh:
		return lipgloss.NewStyle().Foreground(theme.Reject).Render("●")
	case models.PriorityMedium:
		return lipgloss.NewStyle().Foreground(theme.Warning).Render("●")
	case models.PriorityLow:
		return lipgloss.NewStyle().Foreground(theme.Accept).Render("●")
	}
	return ""
}

// legend renders direction hints, highlighting the previewed one.
func legend(card *swipe.Card[tea.Cmd], labels map[gesture.Intent]string, width int) string {
	if card == nil {
		return ""
	}
	theme := CurrentTheme
	hints := card.Hints()
	if len(hints) == 0 {
		return ""
	}
	cell := width / len(hints)
	parts := make([]string, len(hints))
	for i, h := range hints {
		color := theme.Primary
		arrow := "↑"
		switch h.Direction {
		case gesture.Left:
			color, arrow = theme.Reject, "←"
		case gesture.Right:
			color, arrow = theme.Accept, "→"
		}
		label := theme.Dim.Render(labels[h.Direction])
		if h.Highlighted {
			label = theme.Focused.Render(labels[h.Direction])
		}
		parts[i] = lipgloss.PlaceHorizontal(cell, lipgloss.Center,
			lipgloss.NewStyle().Foreground(color).Render(arrow)+" "+label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func emptyView(width int, title, body string) string {
	theme := CurrentTheme
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Center,
		"",
		theme.Header.Render("✓ "+title),
		theme.Subtitle.Render(body),
		"",
	))
}

func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, config.TruncationSuffix)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func trimLines(s string, max int) string {
	if max <= 0 || s == "" {
		return ""
	}
	lines := splitLines(s)
	if len(lines) <= max {
		return s
	}
	return strings.Join(lines[:max], "\n")
}
