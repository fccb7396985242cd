package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestMascotSettleOnlyLatest(t *testing.T) {
	m := NewMascot(MoodNeutral)
	first := m.React(MoodHappy)
	second := m.React(MoodSurprised)

	if m.Settle(first) {
		t.Fatalf("older reaction must not settle")
	}
	if m.Mood() != MoodSurprised {
		t.Fatalf("expected surprised, got %s", m.Mood())
	}
	if !m.Settle(second) || m.Mood() != MoodNeutral {
		t.Fatalf("expected neutral after settle, got %s", m.Mood())
	}
}

func TestMascotView(t *testing.T) {
	m := NewMascot(MoodThinking)
	if got := m.View(false, true); !strings.Contains(got, "(● ●)") || !strings.Contains(got, "…") {
		t.Fatalf("unexpected compact face %q", got)
	}
	if got := m.View(true, true); !strings.Contains(got, "- -") {
		t.Fatalf("expected closed eyes, got %q", got)
	}
	if h := lipgloss.Height(m.View(false, false)); h != 4 {
		t.Fatalf("expected boxed face of 4 rows, got %d", h)
	}
	if !compactHeight(10) || compactHeight(40) || compactHeight(0) {
		t.Fatalf("unexpected compact threshold")
	}
}

func TestParseTab(t *testing.T) {
	tests := map[string]Tab{
		"home":        TabHome,
		" Today ":     TabToday,
		"suggestions": TabSuggestions,
		"connections": TabConnections,
		"settings":    TabHome,
		"":            TabHome,
	}
	for in, want := range tests {
		if got := ParseTab(in); got != want {
			t.Errorf("ParseTab(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestTabCycle(t *testing.T) {
	if TabConnections.Next() != TabHome || TabHome.Prev() != TabConnections {
		t.Fatalf("tab cycle should wrap")
	}
	if TabSuggestions.Label() != "Ideas" {
		t.Fatalf("unexpected label %s", TabSuggestions.Label())
	}
}

func TestTabAt(t *testing.T) {
	tests := []struct {
		x    int
		want Tab
	}{
		{0, TabHome},
		{19, TabHome},
		{20, TabToday},
		{45, TabSuggestions},
		{79, TabConnections},
		{200, TabConnections},
	}
	for _, tt := range tests {
		if got := tabAt(tt.x, 80); got != tt.want {
			t.Errorf("tabAt(%d) = %s, want %s", tt.x, got, tt.want)
		}
	}
}

func TestRenderTabBar(t *testing.T) {
	bar := renderTabBar(TabToday, 80)
	if lipgloss.Height(bar) != 3 {
		t.Fatalf("expected 3 rows, got %d", lipgloss.Height(bar))
	}
	for _, tab := range Tabs {
		if !strings.Contains(bar, tab.Label()) {
			t.Errorf("tab bar missing %s", tab.Label())
		}
	}
}

func TestHandlerRegistryPriorityAndTabs(t *testing.T) {
	r := NewHandlerRegistry()
	var calls []string
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "global")),
		Handler: func(*MainModel, tea.KeyMsg) (tea.Cmd, bool) {
			calls = append(calls, "global")
			return nil, true
		},
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "today")),
		Tabs:     []Tab{TabToday},
		Priority: 10,
		Handler: func(*MainModel, tea.KeyMsg) (tea.Cmd, bool) {
			calls = append(calls, "today")
			return nil, true
		},
	})
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}

	m := &MainModel{tab: TabToday}
	if _, ok := r.Handle(m, msg); !ok {
		t.Fatalf("expected handled")
	}
	m.tab = TabHome
	r.Handle(m, msg)
	if strings.Join(calls, ",") != "today,global" {
		t.Fatalf("unexpected dispatch order %v", calls)
	}
	if _, ok := r.Handle(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}); ok {
		t.Fatalf("unbound key should not be handled")
	}
}

func TestHelpForTab(t *testing.T) {
	r := defaultRegistry()
	home := r.HelpForTab(TabHome)
	if !strings.HasPrefix(home, "[←]decline") {
		t.Fatalf("tab bindings should come first, got %q", home)
	}
	if !strings.Contains(home, "[q]quit") || strings.Contains(home, "reconnect") {
		t.Fatalf("unexpected home help %q", home)
	}
	if today := r.HelpForTab(TabToday); strings.Count(today, "[↑/↓]") != 1 {
		t.Fatalf("duplicate help keys should collapse, got %q", today)
	}
}

func TestThemes(t *testing.T) {
	t.Cleanup(func() { SetTheme("default") })
	if SetTheme("missing") {
		t.Fatalf("unknown theme should be rejected")
	}
	names := ThemeNames()
	if len(names) < 2 || nextTheme(names[len(names)-1]) != names[0] {
		t.Fatalf("theme cycle should wrap: %v", names)
	}
	if nextTheme("missing") != names[0] {
		t.Fatalf("unknown theme should restart the cycle")
	}
	for _, name := range names {
		if !SetTheme(name) {
			t.Fatalf("SetTheme(%s) failed", name)
		}
		for _, mood := range []Mood{MoodNeutral, MoodThinking, MoodHappy, MoodSurprised, MoodTired} {
			if _, ok := CurrentTheme.Mood[mood]; !ok {
				t.Errorf("theme %s has no color for %s", name, mood)
			}
		}
	}
}

func TestVersionLabel(t *testing.T) {
	commit, built := GitCommit, BuildTime
	t.Cleanup(func() { GitCommit, BuildTime = commit, built })

	GitCommit, BuildTime = "unknown", "unknown"
	if VersionLabel() != AppVersion {
		t.Fatalf("unexpected label %s", VersionLabel())
	}
	GitCommit = "abc123"
	if !strings.Contains(VersionLabel(), "abc123") {
		t.Fatalf("commit missing from %s", VersionLabel())
	}
}
