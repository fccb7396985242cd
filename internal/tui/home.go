package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/conciergerie/internal/config"
	"github.com/akyairhashvil/conciergerie/internal/deck"
	"github.com/akyairhashvil/conciergerie/internal/gesture"
	"github.com/akyairhashvil/conciergerie/internal/models"
	"github.com/akyairhashvil/conciergerie/internal/swipe"
	"github.com/akyairhashvil/conciergerie/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

var homeLegend = map[gesture.Intent]string{
	gesture.Left:  "Decline",
	gesture.Up:    "Done",
	gesture.Right: "Accept",
}

// homeScreen is the swipeable task feed.
type homeScreen struct {
	mount       uuid.UUID
	opts        screenOptions
	deck        *deck.Deck[models.Task]
	card        *swipe.Card[tea.Cmd]
	mascot      Mascot
	showSummary bool
	summaryText string
	err         error
}

func newHomeScreen(opts screenOptions) *homeScreen {
	h := &homeScreen{mount: uuid.New(), opts: opts, mascot: NewMascot(MoodNeutral)}
	tasks, err := opts.provider.Tasks(opts.ctx)
	if err != nil {
		util.LogError("load tasks", err)
		h.err = err
		tasks = nil
	}
	h.deck = deck.New(tasks)
	if !h.deck.Empty() {
		h.card = opts.newCard(
			swipe.OnRight(h.accept),
			swipe.OnLeft(h.decline),
			swipe.OnUp(h.complete),
		)
	}
	return h
}

func (h *homeScreen) Mount() uuid.UUID { return h.mount }
func (h *homeScreen) Err() error       { return h.err }
func (h *homeScreen) Capturing() bool  { return false }

func (h *homeScreen) Settle(seq int) { h.mascot.Settle(seq) }

func (h *homeScreen) Cancel() {
	if h.card != nil {
		h.card.Cancel()
	}
}

func (h *homeScreen) accept() tea.Cmd {
	return h.commit(models.OutcomeAccept, "Accepted ✓", "Task accepted and scheduled", models.ToneInfo, MoodHappy)
}

func (h *homeScreen) decline() tea.Cmd {
	return h.commit(models.OutcomeReject, "Declined ✗", "Task declined and dismissed", models.ToneError, MoodSurprised)
}

func (h *homeScreen) complete() tea.Cmd {
	return h.commit(models.OutcomeComplete, "Completed! ✨", "Task marked as done", models.ToneInfo, MoodHappy)
}

func (h *homeScreen) commit(outcome models.Outcome, title, body string, tone models.Tone, mood Mood) tea.Cmd {
	task, ok := h.deck.Current()
	if !ok {
		return nil
	}
	h.opts.notify(TabHome, task.ID, outcome, title, fmt.Sprintf("%s: %s", body, task.Title), tone)
	h.deck.Advance()
	return settleAfter(h.opts.settle, h.mount, h.mascot.React(mood))
}

// Fling commits a swipe from the keyboard.
func (h *homeScreen) Fling(i gesture.Intent) tea.Cmd {
	if h.card == nil {
		return nil
	}
	cmd, _ := h.card.Fling(i)
	return cmd
}

// ToggleSummary is the mascot tap: think for a moment and flip the bubble.
func (h *homeScreen) ToggleSummary() tea.Cmd {
	h.showSummary = !h.showSummary
	if h.showSummary {
		h.summaryText = h.summary()
	}
	return settleAfter(config.MascotThinkDelay, h.mount, h.mascot.React(MoodThinking))
}

// PullDown announces today's counts.
func (h *homeScreen) PullDown() tea.Cmd {
	h.opts.notify(TabHome, "", models.OutcomeSummary, "Today's Summary", h.summary(), models.ToneInfo)
	return nil
}

func (h *homeScreen) summary() string {
	today, err := h.opts.provider.TodayTasks(h.opts.ctx)
	if err != nil {
		util.LogError("load today summary", err)
		return "Summary unavailable"
	}
	c := countToday(today)
	return fmt.Sprintf("%d tasks • %d completed • %d pending", c.total, c.done, c.todo)
}

type homeLayout struct {
	header  string
	mascot  rect
	card    string
	cardAt  rect
	pullRow int
}

func (h *homeScreen) layout(width, height int) homeLayout {
	theme := CurrentTheme
	compact := compactHeight(height)
	face := h.mascot.View(false, compact)
	faceW := lipgloss.Width(face)
	var l homeLayout
	l.mascot = rect{x: max((width-faceW)/2, 0), y: 0, w: faceW, h: lipgloss.Height(face)}

	lines := []string{
		lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Header.Render("Conciergerie IA")),
	}
	if !compact {
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Subtitle.Render("Your intelligent assistant")))
	}
	if h.showSummary {
		bubble := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Render(theme.Subtitle.Render("Today: " + h.summaryText))
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, bubble))
	}
	header := lipgloss.JoinVertical(lipgloss.Left, lines...)
	l.header = header
	top := l.mascot.h + lipgloss.Height(header)

	if task, ok := h.deck.Current(); ok {
		frame := h.card.Frame()
		l.card = renderTaskCard(task, cardWidth(width), h.card.Overlay(), swipe.TransformFor(frame))
		l.cardAt = restingCard(l.card, width, top)
		l.pullRow = top + l.cardAt.h + 3
	} else {
		l.pullRow = top + lipgloss.Height(emptyView(width, "", ""))
	}
	return l
}

func (h *homeScreen) HandleMouse(msg tea.MouseMsg, width, height int) tea.Cmd {
	l := h.layout(width, height)
	if isLeftPress(msg) {
		switch {
		case l.mascot.contains(msg.X, msg.Y):
			return h.ToggleSummary()
		case msg.Y == l.pullRow:
			return h.PullDown()
		}
	}
	return dragCard(h.card, msg, l.cardAt)
}

func (h *homeScreen) View(width, height int, blink bool) string {
	theme := CurrentTheme
	l := h.layout(width, height)
	face := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.mascot.View(blink, compactHeight(height)))
	parts := []string{face, l.header}
	if h.card == nil {
		parts = append(parts, emptyView(width, "All caught up!", "No pending tasks right now"))
	} else {
		parts = append(parts, placeCard(l.card, width, swipe.TransformFor(h.card.Frame())))
	}
	parts = append(parts,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Dim.Render("Pull down for today's list [p]")),
	)
	if h.card != nil {
		parts = append(parts, "", legend(h.card, homeLegend, width))
	}
	return trimLines(lipgloss.JoinVertical(lipgloss.Left, parts...), height)
}

func taskIcon(t models.TaskType) string {
	switch t {
	case models.TaskSuggestion:
		return "✦"
	case models.TaskConflict:
		return "▲"
	case models.TaskMissed:
		return "✗"
	default:
		return "◆"
	}
}

func taskAccent(t models.TaskType) lipgloss.Color {
	theme := CurrentTheme
	switch t {
	case models.TaskSuggestion:
		return theme.Accept
	case models.TaskConflict:
		return theme.Warning
	case models.TaskMissed:
		return theme.Reject
	default:
		return theme.Primary
	}
}

func taskBanner(t models.TaskType) string {
	switch t {
	case models.TaskMissed:
		return "Missed your call. Suggest reschedule tomorrow 2–3 PM?"
	case models.TaskSuggestion:
		return "You have 2h free. Perfect time for this activity!"
	case models.TaskConflict:
		return "This overlaps with another appointment. Choose one to keep."
	}
	return ""
}

func renderTaskCard(task models.Task, width int, overlay swipe.Overlay, tf swipe.Transform) string {
	theme := CurrentTheme
	inner := width - 4
	accent := taskAccent(task.Type)
	dot := priorityDot(task.Priority)
	titleW := inner - 2 - lipgloss.Width(dot) - 1
	head := lipgloss.NewStyle().Foreground(accent).Render(taskIcon(task.Type)) + " " +
		theme.Title.Render(truncate(task.Title, titleW))
	if dot != "" {
		pad := inner - lipgloss.Width(head) - lipgloss.Width(dot)
		head += strings.Repeat(" ", max(pad, 1)) + dot
	}
	lines := []string{head}
	if task.Time != "" {
		lines = append(lines, theme.Subtitle.Render("◷ "+task.Time))
	}
	if task.Description != "" {
		lines = append(lines, "", theme.Body.Width(inner).Render(task.Description))
	}
	if banner := taskBanner(task.Type); banner != "" {
		style := theme.Banner.BorderForeground(accent)
		lines = append(lines, "", style.Width(inner-1).Render(banner))
	}
	return cardBox(width, accent, overlay, tf).Render(strings.Join(lines, "\n"))
}
