package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/conciergerie/internal/deck"
	"github.com/akyairhashvil/conciergerie/internal/models"
	"github.com/akyairhashvil/conciergerie/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// connectionsScreen manages the services the assistant reads from.
type connectionsScreen struct {
	mount uuid.UUID
	opts  screenOptions
	deck  *deck.Deck[models.Connection]
	err   error
}

func newConnectionsScreen(opts screenOptions) *connectionsScreen {
	s := &connectionsScreen{mount: uuid.New(), opts: opts}
	conns, err := opts.provider.Connections(opts.ctx)
	if err != nil {
		util.LogError("load connections", err)
		s.err = err
		conns = nil
	}
	s.deck = deck.New(conns)
	return s
}

func (s *connectionsScreen) Mount() uuid.UUID { return s.mount }
func (s *connectionsScreen) Err() error       { return s.err }
func (s *connectionsScreen) Settle(int)       {}
func (s *connectionsScreen) Cancel()          {}
func (s *connectionsScreen) Capturing() bool  { return false }

func (s *connectionsScreen) Next() tea.Cmd {
	s.deck.Advance()
	return nil
}

func (s *connectionsScreen) Prev() tea.Cmd {
	s.deck.Retreat()
	return nil
}

// Connected counts connections whose status is connected.
func (s *connectionsScreen) Connected() int {
	n := 0
	for _, c := range s.deck.Items() {
		if c.Status == models.ConnectionConnected {
			n++
		}
	}
	return n
}

// Toggle enables or disables the selected connection. Enabling connects it.
func (s *connectionsScreen) Toggle() tea.Cmd {
	c, ok := s.deck.Current()
	if !ok {
		return nil
	}
	wasEnabled := c.Enabled
	c.Enabled = !wasEnabled
	if c.Enabled {
		c.Status = models.ConnectionConnected
	} else {
		c.Status = models.ConnectionDisconnected
	}
	s.deck.Replace(c)
	if wasEnabled {
		s.opts.notify(TabConnections, c.ID, models.OutcomeDisconnect, "Disconnected", c.Name+" disabled", models.ToneInfo)
	} else {
		s.opts.notify(TabConnections, c.ID, models.OutcomeConnect, "Connected", c.Name+" enabled", models.ToneInfo)
	}
	return nil
}

// Reconnect retries a failing connection.
func (s *connectionsScreen) Reconnect() tea.Cmd {
	c, ok := s.deck.Current()
	if !ok || c.Status != models.ConnectionError {
		return nil
	}
	c.Status = models.ConnectionConnected
	c.Enabled = true
	c.LastSync = "just now"
	s.deck.Replace(c)
	s.opts.notify(TabConnections, c.ID, models.OutcomeReconnect, "Reconnected", c.Name+" is syncing again", models.ToneInfo)
	return nil
}

func (s *connectionsScreen) Add() tea.Cmd {
	s.opts.notify(TabConnections, "", models.OutcomeAdd, "Add Connection", "New service integration coming soon!", models.ToneInfo)
	return nil
}

func connectionStatus(st models.ConnectionStatus) (string, lipgloss.Style) {
	theme := CurrentTheme
	switch st {
	case models.ConnectionConnected:
		return "Connected", lipgloss.NewStyle().Foreground(theme.Accept)
	case models.ConnectionError:
		return "Error", lipgloss.NewStyle().Foreground(theme.Reject)
	default:
		return "Not connected", theme.Dim
	}
}

func connectionIcon(st models.ConnectionStatus) string {
	theme := CurrentTheme
	switch st {
	case models.ConnectionConnected:
		return lipgloss.NewStyle().Foreground(theme.Accept).Render("✔")
	case models.ConnectionError:
		return lipgloss.NewStyle().Foreground(theme.Reject).Render("!")
	default:
		return theme.Dim.Render("●")
	}
}

func renderSwitch(on bool) string {
	theme := CurrentTheme
	if on {
		return lipgloss.NewStyle().Foreground(theme.Accept).Render("[ ●]")
	}
	return theme.Dim.Render("[○ ]")
}

const switchWidth = 4

type connAction int

const (
	connSelect connAction = iota
	connToggle
	connReconnect
)

type connTarget struct {
	index int
	kind  connAction
	from  int
	to    int
}

type connLayout struct {
	header  string
	lines   []string
	targets [][]connTarget
	offset  int
	listTop int
	listH   int
	addRow  int
}

func (s *connectionsScreen) header() string {
	theme := CurrentTheme
	connected := s.Connected()
	stats := lipgloss.NewStyle().Foreground(theme.Accept).Render("●") + fmt.Sprintf(" %d connected   ", connected) +
		theme.Dim.Render(fmt.Sprintf("● %d available", s.deck.Len()-connected))
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Header.Render("Connections"),
		theme.Subtitle.Render("Manage your connected services"),
		stats,
		"",
	)
}

func (s *connectionsScreen) block(i int, c models.Connection, selected bool, width int) ([]string, [][]connTarget) {
	theme := CurrentTheme
	cursor := "  "
	if selected {
		cursor = theme.Focused.Render("› ")
	}
	sw := renderSwitch(c.Enabled)
	swFrom := width - switchWidth
	name := cursor + theme.Title.Render(truncate(c.Name, max(width-10, 4))) + " " + connectionIcon(c.Status)
	name += strings.Repeat(" ", max(swFrom-lipgloss.Width(name), 1)) + sw

	status, statusStyle := connectionStatus(c.Status)
	meta := "    " + statusStyle.Render(status)
	if c.LastSync != "" {
		sync := theme.Dim.Render("Last sync: " + c.LastSync)
		meta += strings.Repeat(" ", max(width-lipgloss.Width(meta)-lipgloss.Width(sync), 1)) + sync
	}

	selectAll := []connTarget{{index: i, kind: connSelect, from: 0, to: width}}
	lines := []string{
		name,
		"    " + theme.Body.Render(truncate(c.Description, max(width-4, 4))),
		meta,
	}
	targets := [][]connTarget{
		{{index: i, kind: connToggle, from: swFrom, to: width}, selectAll[0]},
		selectAll,
		selectAll,
	}
	if c.Status == models.ConnectionError {
		msg := "Connection failed. Check your account permissions and try again."
		btn := theme.Button.Render("Reconnect")
		lines = append(lines,
			"    "+theme.ErrBanner.Render(truncate(msg, max(width-6, 4))),
			"    "+btn,
		)
		targets = append(targets, selectAll, []connTarget{{index: i, kind: connReconnect, from: 4, to: 4 + lipgloss.Width(btn)}})
	}
	lines = append(lines, "")
	targets = append(targets, nil)
	return lines, targets
}

func (s *connectionsScreen) layout(width, height int) connLayout {
	var l connLayout
	l.header = s.header()
	l.listTop = lipgloss.Height(l.header)
	selStart, selEnd := 0, 0
	for i, c := range s.deck.Items() {
		selected := i == s.deck.Index()
		if selected {
			selStart = len(l.lines)
		}
		lines, targets := s.block(i, c, selected, width)
		l.lines = append(l.lines, lines...)
		l.targets = append(l.targets, targets...)
		if selected {
			selEnd = len(l.lines)
		}
	}
	if s.deck.Empty() {
		l.lines = splitLines(emptyView(width, "No services yet", "Add a connection to get started"))
		l.targets = make([][]connTarget, len(l.lines))
	}
	l.listH = max(height-l.listTop-2, 1)
	if len(l.lines) > l.listH {
		l.offset = util.Clamp(selStart-(l.listH-(selEnd-selStart))/2, 0, len(l.lines)-l.listH)
	}
	l.addRow = l.listTop + min(len(l.lines), l.listH) + 1
	return l
}

func (s *connectionsScreen) HandleMouse(msg tea.MouseMsg, width, height int) tea.Cmd {
	if !isLeftPress(msg) {
		return nil
	}
	l := s.layout(width, height)
	if msg.Y == l.addRow {
		return s.Add()
	}
	row := msg.Y - l.listTop
	if row < 0 || row >= l.listH || row+l.offset >= len(l.targets) {
		return nil
	}
	for _, t := range l.targets[row+l.offset] {
		if msg.X < t.from || msg.X >= t.to {
			continue
		}
		s.deck.Select(t.index)
		switch t.kind {
		case connToggle:
			return s.Toggle()
		case connReconnect:
			return s.Reconnect()
		}
		return nil
	}
	return nil
}

func (s *connectionsScreen) View(width, height int, _ bool) string {
	theme := CurrentTheme
	l := s.layout(width, height)
	end := min(l.offset+l.listH, len(l.lines))
	list := strings.Join(l.lines[l.offset:end], "\n")
	add := theme.Button.Render("+ Add new connection")
	return trimLines(lipgloss.JoinVertical(lipgloss.Left, l.header, list, "", add), height)
}
