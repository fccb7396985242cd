package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m *MainModel, msg tea.KeyMsg) (tea.Cmd, bool)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Tabs     []Tab
	Priority int
}

func (b KeyBinding) AppliesToTab(tab Tab) bool {
	if len(b.Tabs) == 0 {
		return true
	}
	for _, t := range b.Tabs {
		if t == tab {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m *MainModel, msg tea.KeyMsg) (tea.Cmd, bool) {
	for _, b := range r.bindings {
		if key.Matches(msg, b.Binding) && b.AppliesToTab(m.tab) {
			cmd, handled := b.Handler(m, msg)
			if handled {
				return cmd, true
			}
		}
	}
	return nil, false
}

func (r *HandlerRegistry) BindingsForTab(tab Tab) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToTab(tab) {
			out = append(out, b)
		}
	}
	return out
}

// HelpForTab renders the footer help, tab-specific bindings first.
func (r *HandlerRegistry) HelpForTab(tab Tab) string {
	bindings := r.BindingsForTab(tab)
	sort.SliceStable(bindings, func(i, j int) bool {
		return len(bindings[i].Tabs) > 0 && len(bindings[j].Tabs) == 0
	})
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		h := b.Binding.Help()
		if h.Desc == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		parts = append(parts, "["+h.Key+"]"+h.Desc)
	}
	return strings.Join(parts, " ")
}
