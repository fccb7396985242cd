package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Subtitle  lipgloss.Style
	Title     lipgloss.Style
	Body      lipgloss.Style
	Done      lipgloss.Style
	Accept    lipgloss.Color
	Reject    lipgloss.Color
	Warning   lipgloss.Color
	Primary   lipgloss.Color
	Chip      lipgloss.Style
	Banner    lipgloss.Style
	ErrBanner lipgloss.Style
	Button    lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	ToastInfo lipgloss.Style
	ToastErr  lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Mood      map[Mood]lipgloss.Color
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Padding(0, 1),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Subtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Body:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Accept:    lipgloss.Color("42"),
		Reject:    lipgloss.Color("196"),
		Warning:   lipgloss.Color("214"),
		Primary:   lipgloss.Color("63"),
		Chip:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("237")).Padding(0, 1),
		Banner:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("63")).PaddingLeft(1),
		ErrBanner: lipgloss.NewStyle().Foreground(lipgloss.Color("217")).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("196")).PaddingLeft(1),
		Button:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("63")).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		TabIdle:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		ToastInfo: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("63")).Padding(0, 1),
		ToastErr:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Mood: map[Mood]lipgloss.Color{
			MoodNeutral:   "63",
			MoodThinking:  "141",
			MoodHappy:     "42",
			MoodSurprised: "214",
			MoodTired:     "244",
		},
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Padding(0, 1),
		Border:    lipgloss.Color("62"),                                           // Purple
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true), // Cyan
		Subtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Body:      lipgloss.NewStyle().Foreground(lipgloss.Color("253")),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true), // Comment
		Accept:    lipgloss.Color("120"),                                                    // Green
		Reject:    lipgloss.Color("203"),                                                    // Red
		Warning:   lipgloss.Color("215"),                                                    // Orange
		Primary:   lipgloss.Color("141"),                                                    // Purple
		Chip:      lipgloss.NewStyle().Foreground(lipgloss.Color("253")).Background(lipgloss.Color("59")).Padding(0, 1),
		Banner:    lipgloss.NewStyle().Foreground(lipgloss.Color("253")).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("141")).PaddingLeft(1),
		ErrBanner: lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("203")).PaddingLeft(1),
		Button:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("141")).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		TabIdle:   lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		ToastInfo: lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("141")).Padding(0, 1),
		ToastErr:  lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("203")).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Mood: map[Mood]lipgloss.Color{
			MoodNeutral:   "141",
			MoodThinking:  "117",
			MoodHappy:     "120",
			MoodSurprised: "228",
			MoodTired:     "60",
		},
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// SetTheme activates a theme by key and reports whether it exists.
func SetTheme(name string) bool {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
		return true
	}
	return false
}

// ThemeNames returns the theme keys in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for k := range Themes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// nextTheme returns the key after current, wrapping around.
func nextTheme(current string) string {
	names := ThemeNames()
	for i, n := range names {
		if n == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
