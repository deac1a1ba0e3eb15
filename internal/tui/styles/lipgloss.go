package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme  Theme
	Title  lipgloss.Style
	Header lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Track  lipgloss.Style
	Fill   lipgloss.Style
	Paused lipgloss.Style
	Error  lipgloss.Style
	Panel  lipgloss.Style
}

// DefaultStyles builds styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(DefaultTheme)
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens

	return Styles{
		Theme:  theme,
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)).Bold(true),
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Track:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Track)),
		Fill:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Fill)),
		Paused: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Paused)).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
		Panel:  lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(tokens.Border)).Padding(0, 1),
	}
}
