package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title       lipgloss.Style
	Description lipgloss.Style
	Input       lipgloss.Style
	Button      lipgloss.Style
	Disabled    lipgloss.Style
	Spinner     lipgloss.Style
	Positive    lipgloss.Style
	Negative    lipgloss.Style
	Confidence  lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#A78BFA")).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#111827")).
			Padding(0, 2),
		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Background(lipgloss.Color("#374151")).
			Padding(0, 2),
		Spinner:    lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")),
		Positive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#16A34A")),
		Negative:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DC2626")),
		Confidence: lipgloss.NewStyle().Foreground(lipgloss.Color("#4B5563")),
		Error:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DC2626")),
		Help:       lipgloss.NewStyle().Faint(true),
	}
}
