package tui

import (
	"github.com/akyairhashvil/conciergerie/internal/gesture"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func bind(keys []string, help, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

func handled(cmd tea.Cmd) (tea.Cmd, bool) { return cmd, true }

// defaultRegistry wires every key the app understands.
func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()

	// Global
	r.Register(KeyBinding{
		Binding: bind([]string{"ctrl+c", "q"}, "q", "quit"),
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) {
			m.quitting = true
			return handled(tea.Quit)
		},
	})
	r.Register(KeyBinding{
		Binding: bind([]string{"tab"}, "tab", "next"),
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.SwitchTab(m.tab.Next())) },
	})
	r.Register(KeyBinding{
		Binding: bind([]string{"shift+tab"}, "", ""),
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.SwitchTab(m.tab.Prev())) },
	})
	r.Register(KeyBinding{
		Binding: bind([]string{"1", "2", "3", "4"}, "1-4", "tabs"),
		Handler: func(m *MainModel, msg tea.KeyMsg) (tea.Cmd, bool) {
			i := int(msg.String()[0] - '1')
			return handled(m.SwitchTab(Tabs[i]))
		},
	})
	r.Register(KeyBinding{
		Binding: bind([]string{"t"}, "t", "theme"),
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.CycleTheme()) },
	})
	r.Register(KeyBinding{
		Binding: bind([]string{"esc"}, "", ""),
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) {
			m.active().Cancel()
			return handled(nil)
		},
	})

	// Home
	home := []Tab{TabHome}
	homeFling := func(i gesture.Intent) KeyHandler {
		return func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.home.Fling(i)) }
	}
	r.Register(KeyBinding{Binding: bind([]string{"left", "h"}, "←", "decline"), Tabs: home, Priority: 10, Handler: homeFling(gesture.Left)})
	r.Register(KeyBinding{Binding: bind([]string{"up", "k"}, "↑", "done"), Tabs: home, Priority: 10, Handler: homeFling(gesture.Up)})
	r.Register(KeyBinding{Binding: bind([]string{"right", "l"}, "→", "accept"), Tabs: home, Priority: 10, Handler: homeFling(gesture.Right)})
	r.Register(KeyBinding{
		Binding: bind([]string{"m"}, "m", "summary"), Tabs: home, Priority: 10,
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.home.ToggleSummary()) },
	})
	r.Register(KeyBinding{
		Binding: bind([]string{"p"}, "p", "today"), Tabs: home, Priority: 10,
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.home.PullDown()) },
	})

	// Suggestions
	ideas := []Tab{TabSuggestions}
	ideaFling := func(i gesture.Intent) KeyHandler {
		return func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.ideas.Fling(i)) }
	}
	r.Register(KeyBinding{Binding: bind([]string{"left", "h"}, "←", "dismiss"), Tabs: ideas, Priority: 10, Handler: ideaFling(gesture.Left)})
	r.Register(KeyBinding{Binding: bind([]string{"right", "l"}, "→", "accept"), Tabs: ideas, Priority: 10, Handler: ideaFling(gesture.Right)})

	// Today
	today := []Tab{TabToday}
	r.Register(KeyBinding{
		Binding: bind([]string{"up", "k"}, "↑/↓", "select"), Tabs: today, Priority: 10,
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.today.Prev()) },
	})
	r.Register(KeyBinding{
		Binding: bind([]string{"down", "j"}, "↑/↓", "select"), Tabs: today, Priority: 10,
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.today.Next()) },
	})
	r.Register(KeyBinding{
		Binding: bind([]string{" ", "space", "enter", "x"}, "space", "toggle"), Tabs: today, Priority: 10,
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.today.Toggle()) },
	})
	r.Register(KeyBinding{
		Binding: bind([]string{"r"}, "r", "reschedule"), Tabs: today, Priority: 10,
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.today.Reschedule()) },
	})
	r.Register(KeyBinding{
		Binding: bind([]string{"d"}, "d", "dismiss"), Tabs: today, Priority: 10,
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.today.Dismiss()) },
	})
	r.Register(KeyBinding{
		Binding: bind([]string{"a"}, "a", "add"), Tabs: today, Priority: 10,
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.today.OpenInput()) },
	})

	// Connections
	conns := []Tab{TabConnections}
	r.Register(KeyBinding{
		Binding: bind([]string{"up", "k"}, "↑/↓", "select"), Tabs: conns, Priority: 10,
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.conns.Prev()) },
	})
	r.Register(KeyBinding{
		Binding: bind([]string{"down", "j"}, "↑/↓", "select"), Tabs: conns, Priority: 10,
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.conns.Next()) },
	})
	r.Register(KeyBinding{
		Binding: bind([]string{" ", "space", "enter"}, "space", "toggle"), Tabs: conns, Priority: 10,
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.conns.Toggle()) },
	})
	r.Register(KeyBinding{
		Binding: bind([]string{"r"}, "r", "reconnect"), Tabs: conns, Priority: 10,
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.conns.Reconnect()) },
	})
	r.Register(KeyBinding{
		Binding: bind([]string{"a"}, "a", "add"), Tabs: conns, Priority: 10,
		Handler: func(m *MainModel, _ tea.KeyMsg) (tea.Cmd, bool) { return handled(m.conns.Add()) },
	})

	return r
}
