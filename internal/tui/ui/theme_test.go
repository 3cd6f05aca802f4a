package ui

import (
	"testing"
)

func TestNewThemeProvider_Default(t *testing.T) {
	tp := NewThemeProvider("")
	if tp.CurrentName() != DefaultTheme {
		t.Errorf("CurrentName = %q, expected %q", tp.CurrentName(), DefaultTheme)
	}
}

func TestNewThemeProvider_NamedTheme(t *testing.T) {
	tp := NewThemeProvider("nord")
	if tp.CurrentName() != "nord" {
		t.Errorf("CurrentName = %q, expected nord", tp.CurrentName())
	}
}

func TestNewThemeProvider_UnknownThemeFallsBack(t *testing.T) {
	tp := NewThemeProvider("does-not-exist")
	if tp.CurrentName() != DefaultTheme {
		t.Errorf("CurrentName = %q, expected fallback to %q", tp.CurrentName(), DefaultTheme)
	}
}

func TestSetTheme(t *testing.T) {
	tp := NewThemeProvider("")

	if !tp.SetTheme("nord") {
		t.Fatal("SetTheme(nord) = false, expected true")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("CurrentName = %q after SetTheme, expected nord", tp.CurrentName())
	}

	if tp.SetTheme("does-not-exist") {
		t.Error("SetTheme(does-not-exist) = true, expected false")
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	tp := NewThemeProvider("")
	before := tp.CurrentName()

	next := tp.NextTheme()
	if next == before {
		t.Error("NextTheme did not change the theme")
	}
	if tp.CurrentName() != next {
		t.Errorf("CurrentName = %q, expected %q", tp.CurrentName(), next)
	}
}

func TestAvailableThemes(t *testing.T) {
	tp := NewThemeProvider("")
	themes := tp.AvailableThemes()

	if len(themes) == 0 {
		t.Fatal("AvailableThemes is empty")
	}

	found := false
	for _, name := range themes {
		if name == DefaultTheme {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("AvailableThemes does not contain %q", DefaultTheme)
	}

	// Sorted
	for i := 1; i < len(themes); i++ {
		if themes[i-1] > themes[i] {
			t.Errorf("AvailableThemes not sorted at %d: %q > %q", i, themes[i-1], themes[i])
			break
		}
	}
}

func TestStyles(t *testing.T) {
	tp := NewThemeProvider("")
	styles := tp.Styles()

	// Spot-check that theme colors made it into the styles
	if styles.Title.GetForeground() != tp.Registry().Purple() {
		t.Error("Title style does not use the theme's purple")
	}
}
