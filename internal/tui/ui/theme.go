package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is the theme used when none is configured
const DefaultTheme = "dracula"

// curatedThemeIDs is the subset of bubbletint themes offered by the
// TUI. Anything not in this set is filtered out of the registry.
var curatedThemeIDs = map[string]bool{
	"dracula":          true,
	"nord":             true,
	"gruvbox_dark":     true,
	"gruvbox_light":    true,
	"solarized_dark":   true,
	"solarized_light":  true,
	"tokyo_night":      true,
	"catppuccin_mocha": true,
}

// ThemeProvider manages TUI themes using bubbletint
type ThemeProvider struct {
	registry *tint.Registry
}

// NewThemeProvider creates a ThemeProvider seeded with the curated
// theme set. An empty or unknown initialTheme falls back to
// DefaultTheme.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	var (
		tints       []tint.Tint
		defaultTint tint.Tint
	)
	for _, t := range tint.DefaultTints() {
		if !curatedThemeIDs[t.ID()] {
			continue
		}
		tints = append(tints, t)
		if t.ID() == DefaultTheme {
			defaultTint = t
		}
	}
	if defaultTint == nil && len(tints) > 0 {
		defaultTint = tints[0]
	}

	registry := tint.NewRegistry(defaultTint, tints...)
	if initialTheme != "" {
		registry.SetTintID(initialTheme)
	}

	return &ThemeProvider{registry: registry}
}

// SetTheme sets the current theme by name.
// Returns true if the theme was found and set, false otherwise.
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// NextTheme cycles to the next theme and returns its name.
func (tp *ThemeProvider) NextTheme() string {
	tp.registry.NextTint()
	return tp.registry.ID()
}

// CurrentName returns the name of the current theme.
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// CurrentDisplayName returns the display name of the current theme.
func (tp *ThemeProvider) CurrentDisplayName() string {
	return tp.registry.DisplayName()
}

// AvailableThemes returns a sorted list of the offered theme names.
func (tp *ThemeProvider) AvailableThemes() []string {
	ids := tp.registry.TintIDs()
	sort.Strings(ids)
	return ids
}

// Registry returns the underlying bubbletint registry for direct color access.
func (tp *ThemeProvider) Registry() *tint.Registry {
	return tp.registry
}

// Styles returns a Styles struct configured for the current theme.
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
