package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/conciergerie/internal/config"
	"github.com/akyairhashvil/conciergerie/internal/database"
	"github.com/akyairhashvil/conciergerie/internal/models"
	"github.com/akyairhashvil/conciergerie/internal/notify"
	"github.com/akyairhashvil/conciergerie/internal/provider"
	"github.com/akyairhashvil/conciergerie/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures the app shell.
type Options struct {
	Provider        provider.Provider
	Sink            notify.Sink
	Settings        database.SettingsRepository
	Tab             string
	Theme           string
	ThemeExplicit   bool
	CommitThreshold float64
	HintThreshold   float64
	SettleDelay     time.Duration
	Now             func() time.Time
}

// OptionsFromSettings copies the resolved configuration into shell options.
func OptionsFromSettings(s config.Settings, p provider.Provider) Options {
	return Options{
		Provider:        p,
		Tab:             s.Tab,
		Theme:           s.Theme,
		CommitThreshold: s.CommitThreshold,
		HintThreshold:   s.HintThreshold,
		SettleDelay:     s.SettleDelay,
	}
}

// MainModel is the root bubbletea model: a tab bar over one mounted screen.
type MainModel struct {
	ctx       context.Context
	opts      screenOptions
	keys      *HandlerRegistry
	settings  database.SettingsRepository
	toasts    *notify.Toasts
	tab       Tab
	themeName string
	home      *homeScreen
	today     *todayScreen
	ideas     *suggestionsScreen
	conns     *connectionsScreen
	blink     bool
	width     int
	height    int
	quitting  bool
}

func NewMainModel(ctx context.Context, o Options) MainModel {
	if o.CommitThreshold <= 0 {
		o.CommitThreshold = config.CommitThreshold
	}
	if o.HintThreshold <= 0 {
		o.HintThreshold = config.HintThreshold
	}
	if o.SettleDelay <= 0 {
		o.SettleDelay = config.SettleDelay
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	toasts := notify.NewToasts().WithClock(o.Now)
	sink := notify.Multi{toasts}
	if o.Sink != nil {
		sink = append(sink, o.Sink)
	}

	m := MainModel{
		ctx:      ctx,
		keys:     defaultRegistry(),
		settings: o.Settings,
		toasts:   toasts,
		opts: screenOptions{
			ctx:      ctx,
			provider: o.Provider,
			sink:     sink,
			commit:   o.CommitThreshold,
			hint:     o.HintThreshold,
			settle:   o.SettleDelay,
			now:      o.Now,
		},
	}
	m.applyTheme(o.Theme, o.ThemeExplicit)
	m.mount(ParseTab(o.Tab))
	return m
}

// applyTheme picks an explicit theme first, then a saved one, then the
// configured name.
func (m *MainModel) applyTheme(name string, explicit bool) {
	if m.settings != nil && !explicit {
		if saved, ok := m.settings.GetSetting(m.ctx, config.KeyTheme); ok && saved != "" {
			name = saved
		}
	}
	if !SetTheme(name) {
		name = "default"
		SetTheme(name)
	}
	m.themeName = name
}

// CycleTheme switches to the next theme and remembers it.
func (m *MainModel) CycleTheme() tea.Cmd {
	m.themeName = nextTheme(m.themeName)
	SetTheme(m.themeName)
	if m.settings != nil {
		util.LogError("save theme", m.settings.SetSetting(m.ctx, config.KeyTheme, m.themeName))
	}
	return nil
}

// mount builds a fresh controller for tab and drops every other one.
func (m *MainModel) mount(tab Tab) {
	m.home, m.today, m.ideas, m.conns = nil, nil, nil, nil
	m.tab = tab
	switch tab {
	case TabToday:
		m.today = newTodayScreen(m.opts)
	case TabSuggestions:
		m.ideas = newSuggestionsScreen(m.opts)
	case TabConnections:
		m.conns = newConnectionsScreen(m.opts)
	default:
		m.home = newHomeScreen(m.opts)
	}
}

func (m *MainModel) active() screen {
	switch m.tab {
	case TabToday:
		return m.today
	case TabSuggestions:
		return m.ideas
	case TabConnections:
		return m.conns
	default:
		return m.home
	}
}

// SwitchTab activates tab. The screen is always remounted, so pending
// gestures and timers of the previous mount no longer apply.
func (m *MainModel) SwitchTab(tab Tab) tea.Cmd {
	m.active().Cancel()
	m.mount(tab)
	return nil
}

func (m MainModel) Tab() Tab { return m.tab }

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(blinkCmd(true), textinput.Blink)
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before, _ := m.toasts.Latest()
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case settleMsg:
		if s := m.active(); s.Mount() == msg.mount {
			s.Settle(msg.seq)
		}
		return m, nil
	case blinkMsg:
		m.blink = msg.closed
		return m, blinkCmd(!msg.closed)
	case toastExpiredMsg:
		m.toasts.Prune()
		return m, nil
	default:
		if s, ok := m.active().(*todayScreen); ok && s.adding {
			var c tea.Cmd
			s.input, c = s.input.Update(msg)
			return m, c
		}
	}

	if after, ok := m.toasts.Latest(); ok && after.ID != before.ID {
		cmd = tea.Batch(cmd, toastExpiry(m.toasts.TTL()))
	}
	return m, cmd
}

func (m *MainModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return tea.Quit
	}
	if s, ok := m.active().(*todayScreen); ok && s.Capturing() {
		return s.HandleInput(msg)
	}
	cmd, _ := m.keys.Handle(m, msg)
	return cmd
}

// content geometry: one toast row on top, then the screen, the help row and
// the tab bar.
func (m *MainModel) contentHeight() int {
	return max(m.height-1-1-config.TabBarHeight, 1)
}

func (m *MainModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	tabTop := m.height - config.TabBarHeight
	if m.height > 0 && msg.Y >= tabTop && isLeftPress(msg) {
		if tab := tabAt(msg.X, m.width); tab != m.tab {
			return m.SwitchTab(tab)
		}
		return nil
	}
	local := msg
	local.Y = msg.Y - 1
	if msg.Action == tea.MouseActionPress && (local.Y < 0 || local.Y >= m.contentHeight()) {
		return nil
	}
	return m.active().HandleMouse(local, m.width, m.contentHeight())
}

func (m MainModel) statusLine() string {
	theme := CurrentTheme
	if t, ok := m.toasts.Latest(); ok {
		style := theme.ToastInfo
		if t.Tone == models.ToneError {
			style = theme.ToastErr
		}
		text := t.Title
		if t.Body != "" {
			text += "  " + t.Body
		}
		return style.Render(truncate(text, max(m.width-2, 1)))
	}
	if err := m.active().Err(); err != nil {
		return lipgloss.NewStyle().Foreground(theme.Reject).Render(truncate(fmt.Sprintf("Could not load %s: %v", m.tab.Label(), err), m.width))
	}
	return ""
}

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading…"
	}
	theme := CurrentTheme
	h := m.contentHeight()
	body := lipgloss.NewStyle().Height(h).MaxHeight(h).Render(m.active().View(m.width, h, m.blink))
	help := theme.Dim.Render(truncate(m.keys.HelpForTab(m.tab), m.width))
	return lipgloss.JoinVertical(lipgloss.Left,
		m.statusLine(),
		body,
		help,
		renderTabBar(m.tab, m.width),
	)
}
