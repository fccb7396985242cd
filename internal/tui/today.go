package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/conciergerie/internal/config"
	"github.com/akyairhashvil/conciergerie/internal/deck"
	"github.com/akyairhashvil/conciergerie/internal/models"
	"github.com/akyairhashvil/conciergerie/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

const (
	rescheduleSlot  = "Tomorrow 2:00 PM"
	defaultCategory = "Personal"
)

type todayCounts struct {
	total, done, missed, todo int
}

func countToday(tasks []models.TodayTask) todayCounts {
	c := todayCounts{total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case models.TodayDone:
			c.done++
		case models.TodayMissed:
			c.missed++
		default:
			c.todo++
		}
	}
	return c
}

// todayScreen is the daily checklist.
type todayScreen struct {
	mount    uuid.UUID
	opts     screenOptions
	deck     *deck.Deck[models.TodayTask]
	progress progress.Model
	input    textinput.Model
	adding   bool
	err      error
}

func newTodayScreen(opts screenOptions) *todayScreen {
	s := &todayScreen{mount: uuid.New(), opts: opts}
	tasks, err := opts.provider.TodayTasks(opts.ctx)
	if err != nil {
		util.LogError("load today", err)
		s.err = err
		tasks = nil
	}
	s.deck = deck.New(tasks)
	s.progress = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	ti := textinput.New()
	ti.Placeholder = "New task… add #health to set a category"
	ti.CharLimit = config.MaxTitleLength
	s.input = ti
	return s
}

func (s *todayScreen) Mount() uuid.UUID { return s.mount }
func (s *todayScreen) Err() error       { return s.err }
func (s *todayScreen) Settle(int)       {}
func (s *todayScreen) Capturing() bool  { return s.adding }

func (s *todayScreen) Cancel() {
	s.CloseInput()
}

func (s *todayScreen) Counts() todayCounts {
	return countToday(s.deck.Items())
}

func (s *todayScreen) Next() tea.Cmd {
	s.deck.Advance()
	return nil
}

func (s *todayScreen) Prev() tea.Cmd {
	s.deck.Retreat()
	return nil
}

// Toggle flips the selected task between done and to do.
func (s *todayScreen) Toggle() tea.Cmd {
	task, ok := s.deck.Current()
	if !ok {
		return nil
	}
	title := "Marked done"
	if task.Status == models.TodayDone {
		task.Status = models.TodayTodo
		title = "Marked to do"
	} else {
		task.Status = models.TodayDone
	}
	s.deck.Replace(task)
	s.opts.notify(TabToday, task.ID, models.OutcomeToggle, title, task.Title, models.ToneInfo)
	return nil
}

// Reschedule moves a missed task to the suggested slot.
func (s *todayScreen) Reschedule() tea.Cmd {
	task, ok := s.deck.Current()
	if !ok || task.Status != models.TodayMissed {
		return nil
	}
	task.Status = models.TodayTodo
	task.Time = rescheduleSlot
	s.deck.Replace(task)
	s.opts.notify(TabToday, task.ID, models.OutcomeReschedule, "Rescheduled",
		fmt.Sprintf("%s moved to tomorrow 2–3 PM", task.Title), models.ToneInfo)
	return nil
}

// Dismiss drops a missed task from the list.
func (s *todayScreen) Dismiss() tea.Cmd {
	task, ok := s.deck.Current()
	if !ok || task.Status != models.TodayMissed {
		return nil
	}
	s.deck.Remove(task.ID)
	s.opts.notify(TabToday, task.ID, models.OutcomeDismiss, "Dismissed", task.Title, models.ToneError)
	return nil
}

// OpenInput starts the quick-add prompt.
func (s *todayScreen) OpenInput() tea.Cmd {
	s.adding = true
	s.input.Reset()
	return s.input.Focus()
}

func (s *todayScreen) CloseInput() {
	s.adding = false
	s.input.Blur()
	s.input.Reset()
}

// HandleInput feeds a key to the quick-add prompt.
func (s *todayScreen) HandleInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		s.CloseInput()
		return nil
	case tea.KeyEnter:
		s.add(s.input.Value())
		s.CloseInput()
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// add appends a to-do parsed from text. The first #tag becomes the category.
func (s *todayScreen) add(text string) {
	title := strings.TrimSpace(util.StripTags(text))
	if title == "" {
		return
	}
	category := defaultCategory
	if tags := util.ExtractTags(text); len(tags) > 0 {
		category = util.TitleCase(tags[0])
	}
	now := s.opts.now
	task := models.TodayTask{
		ID:       uuid.NewString(),
		Title:    title,
		Time:     now().Format("3:04 PM"),
		Status:   models.TodayTodo,
		Category: category,
	}
	s.deck.Append(task)
	s.deck.Select(s.deck.Len() - 1)
	s.opts.notify(TabToday, task.ID, models.OutcomeAdd, "Task added", task.Title, models.ToneInfo)
}

type todayAction int

const (
	actSelect todayAction = iota
	actToggle
	actReschedule
	actDismiss
)

type todayTarget struct {
	index int
	kind  todayAction
	from  int
	to    int
}

type todayLayout struct {
	header  string
	lines   []string
	targets [][]todayTarget
	offset  int
	listTop int
	listH   int
	addRow  int
	footer  string
}

func (s *todayScreen) header(width int) string {
	theme := CurrentTheme
	c := s.Counts()
	stats := theme.Subtitle.Render(fmt.Sprintf("%d/%d completed", c.done, c.total))
	if c.missed > 0 {
		stats += "  " + lipgloss.NewStyle().Foreground(theme.Reject).Render(fmt.Sprintf("%d missed", c.missed))
	}
	s.progress.Width = max(width-2, 4)
	bar := s.progress.ViewAs(util.Percent(c.done, c.total))
	return lipgloss.JoinVertical(lipgloss.Left, theme.Header.Render("Today"), stats, bar, "")
}

func statusIcon(st models.TodayStatus) string {
	theme := CurrentTheme
	switch st {
	case models.TodayDone:
		return lipgloss.NewStyle().Foreground(theme.Accept).Render("✔")
	case models.TodayMissed:
		return lipgloss.NewStyle().Foreground(theme.Reject).Render("!")
	default:
		return theme.Dim.Render("○")
	}
}

// block renders one task and the click targets of each of its lines.
func (s *todayScreen) block(i int, task models.TodayTask, selected bool, width int) ([]string, [][]todayTarget) {
	theme := CurrentTheme
	cursor := "  "
	if selected {
		cursor = theme.Focused.Render("› ")
	}
	clock := theme.Subtitle.Render("◷ " + task.Time)
	titleStyle := theme.Title
	if task.Status == models.TodayDone {
		titleStyle = theme.Done
	}
	titleW := max(width-lipgloss.Width(clock)-6, 4)
	title := titleStyle.Render(truncate(task.Title, titleW))
	row := cursor + statusIcon(task.Status) + " " + title
	row += strings.Repeat(" ", max(width-lipgloss.Width(row)-lipgloss.Width(clock), 1)) + clock

	lines := []string{row}
	targets := [][]todayTarget{{
		{index: i, kind: actToggle, from: 2, to: 4},
		{index: i, kind: actSelect, from: 0, to: width},
	}}
	if task.Category != "" {
		lines = append(lines, "    "+theme.Chip.Render(task.Category))
		targets = append(targets, []todayTarget{{index: i, kind: actSelect, from: 0, to: width}})
	}
	if task.Status == models.TodayMissed {
		msg := fmt.Sprintf("Missed your %s. Suggest reschedule tomorrow 2–3 PM?", strings.ToLower(task.Title))
		lines = append(lines, "    "+theme.ErrBanner.Render(truncate(msg, max(width-6, 4))))
		targets = append(targets, []todayTarget{{index: i, kind: actSelect, from: 0, to: width}})

		resched := theme.Button.Render("Reschedule")
		dismiss := theme.Dim.Render("[ Dismiss ]")
		start := 4
		mid := start + lipgloss.Width(resched) + 1
		lines = append(lines, strings.Repeat(" ", start)+resched+" "+dismiss)
		targets = append(targets, []todayTarget{
			{index: i, kind: actReschedule, from: start, to: start + lipgloss.Width(resched)},
			{index: i, kind: actDismiss, from: mid, to: mid + lipgloss.Width(dismiss)},
		})
	}
	return lines, targets
}

func (s *todayScreen) layout(width, height int) todayLayout {
	theme := CurrentTheme
	var l todayLayout
	l.header = s.header(width)
	l.listTop = lipgloss.Height(l.header)

	selStart, selEnd := 0, 0
	for i, task := range s.deck.Items() {
		selected := i == s.deck.Index()
		if selected {
			selStart = len(l.lines)
		}
		lines, targets := s.block(i, task, selected, width)
		l.lines = append(l.lines, lines...)
		l.targets = append(l.targets, targets...)
		if selected {
			selEnd = len(l.lines)
		}
	}

	if s.deck.Empty() {
		l.lines = splitLines(emptyView(width, "Nothing planned", "Add a quick task to get started"))
		l.targets = make([][]todayTarget, len(l.lines))
	}

	if s.adding {
		l.footer = theme.Focused.Render("+ ") + s.input.View()
	} else {
		l.footer = theme.Button.Render("+ Add quick task")
	}
	l.listH = max(height-l.listTop-2, 1)
	if len(l.lines) > l.listH {
		l.offset = util.Clamp(selStart-(l.listH-(selEnd-selStart))/2, 0, len(l.lines)-l.listH)
	}
	l.addRow = l.listTop + min(len(l.lines), l.listH) + 1
	return l
}

func (s *todayScreen) HandleMouse(msg tea.MouseMsg, width, height int) tea.Cmd {
	if !isLeftPress(msg) {
		return nil
	}
	l := s.layout(width, height)
	if msg.Y == l.addRow {
		if s.adding {
			return nil
		}
		return s.OpenInput()
	}
	row := msg.Y - l.listTop
	if row < 0 || row >= l.listH {
		return nil
	}
	line := row + l.offset
	if line >= len(l.targets) {
		return nil
	}
	for _, t := range l.targets[line] {
		if msg.X < t.from || msg.X >= t.to {
			continue
		}
		s.deck.Select(t.index)
		switch t.kind {
		case actToggle:
			return s.Toggle()
		case actReschedule:
			return s.Reschedule()
		case actDismiss:
			return s.Dismiss()
		}
		return nil
	}
	return nil
}

func (s *todayScreen) View(width, height int, _ bool) string {
	l := s.layout(width, height)
	end := min(l.offset+l.listH, len(l.lines))
	list := strings.Join(l.lines[l.offset:end], "\n")
	return trimLines(lipgloss.JoinVertical(lipgloss.Left, l.header, list, "", l.footer), height)
}
