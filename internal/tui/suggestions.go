package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/conciergerie/internal/deck"
	"github.com/akyairhashvil/conciergerie/internal/gesture"
	"github.com/akyairhashvil/conciergerie/internal/models"
	"github.com/akyairhashvil/conciergerie/internal/swipe"
	"github.com/akyairhashvil/conciergerie/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

var suggestionLegend = map[gesture.Intent]string{
	gesture.Left:  "Dismiss",
	gesture.Right: "Accept",
}

// suggestionsScreen reviews AI ideas one card at a time.
type suggestionsScreen struct {
	mount     uuid.UUID
	opts      screenOptions
	deck      *deck.Deck[models.Suggestion]
	card      *swipe.Card[tea.Cmd]
	mascot    Mascot
	accepted  int
	dismissed int
	err       error
}

func newSuggestionsScreen(opts screenOptions) *suggestionsScreen {
	s := &suggestionsScreen{mount: uuid.New(), opts: opts, mascot: NewMascot(MoodThinking)}
	items, err := opts.provider.Suggestions(opts.ctx)
	if err != nil {
		util.LogError("load suggestions", err)
		s.err = err
		items = nil
	}
	s.deck = deck.New(items)
	if !s.deck.Empty() {
		s.card = opts.newCard(
			swipe.OnRight(s.accept),
			swipe.OnLeft(s.dismiss),
		)
	}
	return s
}

func (s *suggestionsScreen) Mount() uuid.UUID { return s.mount }
func (s *suggestionsScreen) Err() error       { return s.err }
func (s *suggestionsScreen) Capturing() bool  { return false }
func (s *suggestionsScreen) Settle(seq int)   { s.mascot.Settle(seq) }

func (s *suggestionsScreen) Cancel() {
	if s.card != nil {
		s.card.Cancel()
	}
}

func (s *suggestionsScreen) accept() tea.Cmd {
	s.accepted++
	return s.commit(models.OutcomeAccept, "Great choice! ✨", "Suggestion accepted and scheduled", models.ToneInfo, MoodHappy)
}

func (s *suggestionsScreen) dismiss() tea.Cmd {
	s.dismissed++
	return s.commit(models.OutcomeReject, "No problem", "Suggestion dismissed", models.ToneError, MoodNeutral)
}

func (s *suggestionsScreen) commit(outcome models.Outcome, title, body string, tone models.Tone, mood Mood) tea.Cmd {
	item, ok := s.deck.Current()
	if !ok {
		return nil
	}
	s.opts.notify(TabSuggestions, item.ID, outcome, title, fmt.Sprintf("%s: %s", body, item.Title), tone)
	s.deck.Advance()
	return settleAfter(s.opts.settle, s.mount, s.mascot.React(mood))
}

func (s *suggestionsScreen) Fling(i gesture.Intent) tea.Cmd {
	if s.card == nil {
		return nil
	}
	cmd, _ := s.card.Fling(i)
	return cmd
}

// pending is the number of ideas not yet reviewed in this mount.
func (s *suggestionsScreen) pending() int {
	return max(s.deck.Len()-s.accepted-s.dismissed, 0)
}

func (s *suggestionsScreen) header(width int, blink, compact bool) string {
	theme := CurrentTheme
	titles := lipgloss.JoinVertical(lipgloss.Left,
		theme.Header.Render("AI Suggestions"),
		theme.Subtitle.Render("Smart ideas for your schedule"),
	)
	face := s.mascot.View(blink, true)
	gap := max(width-lipgloss.Width(titles)-lipgloss.Width(face), 1)
	top := lipgloss.JoinHorizontal(lipgloss.Top, titles, strings.Repeat(" ", gap), face)

	stat := func(n int, label string, color lipgloss.Color) string {
		return lipgloss.PlaceHorizontal(width/3, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprint(n)),
			theme.Dim.Render(label),
		))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat(s.deck.Len(), "Ideas", theme.Primary),
		stat(s.accepted, "Accepted", theme.Accept),
		stat(s.pending(), "Pending", theme.Warning),
	)
	if compact {
		return lipgloss.JoinVertical(lipgloss.Left, top, stats)
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, "", stats)
}

func (s *suggestionsScreen) cardRect(width, height int) (string, rect) {
	item, ok := s.deck.Current()
	if !ok {
		return "", rect{}
	}
	top := lipgloss.Height(s.header(width, false, compactHeight(height)))
	card := renderSuggestionCard(item, s.deck.Position(), cardWidth(width), s.card.Overlay(), swipe.TransformFor(s.card.Frame()))
	return card, restingCard(card, width, top)
}

func (s *suggestionsScreen) HandleMouse(msg tea.MouseMsg, width, height int) tea.Cmd {
	_, at := s.cardRect(width, height)
	return dragCard(s.card, msg, at)
}

func (s *suggestionsScreen) View(width, height int, blink bool) string {
	theme := CurrentTheme
	parts := []string{s.header(width, blink, compactHeight(height))}
	if s.card == nil {
		parts = append(parts, emptyView(width, "All suggestions reviewed!", "I'll have new ideas for you soon"))
		return trimLines(lipgloss.JoinVertical(lipgloss.Left, parts...), height)
	}
	card, _ := s.cardRect(width, height)
	parts = append(parts,
		placeCard(card, width, swipe.TransformFor(s.card.Frame())),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Dim.Render("Swipe right to accept • Swipe left to dismiss")),
		"",
		legend(s.card, suggestionLegend, width),
	)
	return trimLines(lipgloss.JoinVertical(lipgloss.Left, parts...), height)
}

func suggestionAccent(t models.SuggestionType) lipgloss.Color {
	theme := CurrentTheme
	switch t {
	case models.SuggestionConflict:
		return theme.Warning
	case models.SuggestionHabit:
		return theme.Accept
	case models.SuggestionReminder:
		return theme.Border
	default:
		return theme.Primary
	}
}

func suggestionIcon(t models.SuggestionType) string {
	switch t {
	case models.SuggestionConflict:
		return "▲"
	case models.SuggestionHabit:
		return "✧"
	case models.SuggestionReminder:
		return "♥"
	default:
		return "◷"
	}
}

func renderSuggestionCard(item models.Suggestion, position string, width int, overlay swipe.Overlay, tf swipe.Transform) string {
	theme := CurrentTheme
	inner := width - 4
	accent := suggestionAccent(item.Type)
	dot := priorityDot(item.Priority)
	head := lipgloss.NewStyle().Foreground(accent).Render(suggestionIcon(item.Type)) + " " +
		theme.Title.Render(truncate(item.Title, inner-4))
	if dot != "" {
		head += strings.Repeat(" ", max(inner-lipgloss.Width(head)-lipgloss.Width(dot), 1)) + dot
	}
	lines := []string{head}
	if item.TimeSlot != "" {
		lines = append(lines, theme.Subtitle.Render("  "+item.TimeSlot))
	}
	lines = append(lines, "", theme.Body.Width(inner).Render(item.Description), "")
	kind := theme.Chip.Render(string(item.Type) + " suggestion")
	pos := theme.Dim.Render(position)
	lines = append(lines, kind+strings.Repeat(" ", max(inner-lipgloss.Width(kind)-lipgloss.Width(pos), 1))+pos)
	return cardBox(width, accent, overlay, tf).Render(strings.Join(lines, "\n"))
}
