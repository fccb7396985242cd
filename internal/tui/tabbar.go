package tui

import (
	"strings"

	"github.com/akyairhashvil/conciergerie/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// Tab identifies one of the four screens.
type Tab string

const (
	TabHome        Tab = "home"
	TabToday       Tab = "today"
	TabSuggestions Tab = "suggestions"
	TabConnections Tab = "connections"
)

// Tabs in navigation order.
var Tabs = []Tab{TabHome, TabToday, TabSuggestions, TabConnections}

// ParseTab maps an identifier to a tab. Unknown identifiers open home.
func ParseTab(s string) Tab {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Tabs {
		if t == known {
			return t
		}
	}
	return TabHome
}

func (t Tab) Label() string {
	switch t {
	case TabToday:
		return "Today"
	case TabSuggestions:
		return "Ideas"
	case TabConnections:
		return "Connect"
	default:
		return "Home"
	}
}

func (t Tab) Icon() string {
	switch t {
	case TabToday:
		return "▦"
	case TabSuggestions:
		return "✦"
	case TabConnections:
		return "⇄"
	default:
		return "⌂"
	}
}

func (t Tab) index() int {
	for i, known := range Tabs {
		if t == known {
			return i
		}
	}
	return 0
}

// Next and Prev cycle through the tabs.
func (t Tab) Next() Tab { return Tabs[(t.index()+1)%len(Tabs)] }
func (t Tab) Prev() Tab { return Tabs[(t.index()+len(Tabs)-1)%len(Tabs)] }

func tabWidth(total int) int {
	w := total / len(Tabs)
	if w < 1 {
		return 1
	}
	return w
}

// tabAt maps a column of the tab bar to a tab.
func tabAt(x, width int) Tab {
	i := util.Clamp(x/tabWidth(width), 0, len(Tabs)-1)
	return Tabs[i]
}

func renderTabBar(active Tab, width int) string {
	theme := CurrentTheme
	w := tabWidth(width)
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width, 0)))
	cells := make([]string, len(Tabs))
	marks := make([]string, len(Tabs))
	for i, t := range Tabs {
		style := theme.TabIdle
		mark := ""
		if t == active {
			style = theme.TabActive
			mark = theme.TabActive.Render("▔▔")
		}
		cells[i] = lipgloss.PlaceHorizontal(w, lipgloss.Center, style.Render(t.Icon()+" "+t.Label()))
		marks[i] = lipgloss.PlaceHorizontal(w, lipgloss.Center, mark)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		rule,
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
		lipgloss.JoinHorizontal(lipgloss.Top, marks...),
	)
}
