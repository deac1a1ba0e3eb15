package styles

import "testing"

func TestThemeByName(t *testing.T) {
	if got := ThemeByName("High-Contrast"); got.Name != "high-contrast" {
		t.Fatalf("ThemeByName(High-Contrast) = %q", got.Name)
	}
	if got := ThemeByName("neon"); got.Name != DefaultTheme.Name {
		t.Fatalf("unknown theme should fall back to default, got %q", got.Name)
	}
}

func TestBuildStylesKeepsTheme(t *testing.T) {
	s := BuildStyles(HighContrastTheme)
	if s.Theme.Name != "high-contrast" {
		t.Fatalf("unexpected theme %q", s.Theme.Name)
	}
	if out := s.Title.Render("x"); out == "" {
		t.Fatal("expected rendered output")
	}
}
