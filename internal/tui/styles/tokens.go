// Package styles defines terminal color themes for choreo output.
package styles

import "strings"

// ThemeTokens defines the semantic color roles.
type ThemeTokens struct {
	Text      string
	TextMuted string
	Border    string
	Accent    string
	Track     string
	Fill      string
	Paused    string
	Error     string
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
}

// ThemeByName returns the named theme, falling back to DefaultTheme.
func ThemeByName(name string) Theme {
	if theme, ok := Themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return theme
	}
	return DefaultTheme
}
