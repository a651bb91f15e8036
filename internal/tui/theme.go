package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines colors for the terminal frontend.
type Theme struct {
	Name string

	Text   string
	Muted  string
	Accent string
	Danger string
	Border string
}

// Styles holds the Lipgloss styles derived from a Theme.
type Styles struct {
	Title    lipgloss.Style
	Panel    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Clock    lipgloss.Style
	Finished lipgloss.Style
	Dimmed   lipgloss.Style
	Preset   lipgloss.Style
	Active   lipgloss.Style
	Help     lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 2),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Clock: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Finished: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Dimmed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Faint(true),

		Preset: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Active: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Underline(true),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
	}
}

var themes = []Theme{
	{
		Name:   "Ocean",
		Text:   "#E6EDF3",
		Muted:  "#8B949E",
		Accent: "#3366E6",
		Danger: "#E64033",
		Border: "#2659D9",
	},
	{
		Name:   "Mono",
		Text:   "#FFFFFF",
		Muted:  "#A0A0A0",
		Accent: "#FFFFFF",
		Danger: "#FF5555",
		Border: "#606060",
	},
}

// GetTheme returns the named theme, or the first theme when unknown.
func GetTheme(name string) Theme {
	for _, theme := range themes {
		if theme.Name == name {
			return theme
		}
	}
	return themes[0]
}

// NextTheme returns the theme name after current, wrapping around.
func NextTheme(current string) string {
	for i, theme := range themes {
		if theme.Name == current {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// ThemeNames lists the available theme names in cycle order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for _, theme := range themes {
		names = append(names, theme.Name)
	}
	return names
}
