package wmf

import (
	"strings"
	"testing"
)

func TestThemeByName(t *testing.T) {
	for _, name := range AvailableThemes() {
		th, ok := ThemeByName(name)
		if !ok {
			t.Fatalf("ThemeByName(%q) not found", name)
		}
		if th.Name() != name {
			t.Fatalf("theme name mismatch: got %q want %q", th.Name(), name)
		}
	}
}

func TestThemeByNameNormalizes(t *testing.T) {
	th, ok := ThemeByName("  GruvBox ")
	if !ok {
		t.Fatalf("expected normalized lookup to succeed")
	}
	if th.Name() != "gruvbox" {
		t.Fatalf("got %q", th.Name())
	}
}

func TestThemeByNameEmptyIsDefault(t *testing.T) {
	th, ok := ThemeByName("")
	if !ok || th.Name() != "default" {
		t.Fatalf("empty name should yield default, got %v %v", th, ok)
	}
}

func TestThemeByNameUnknown(t *testing.T) {
	if _, ok := ThemeByName("no-such-theme"); ok {
		t.Fatalf("unknown theme should not resolve")
	}
}

func TestAvailableThemesSorted(t *testing.T) {
	names := AvailableThemes()
	if len(names) < 2 {
		t.Fatalf("expected multiple built-in themes, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("themes not sorted: %v", names)
		}
	}
}

func TestBuiltinStylesCarryAttributes(t *testing.T) {
	st := DefaultTheme().Styles()
	if !strings.Contains(st.Strong.Prefix, "\x1b[1m") {
		t.Fatalf("strong style should carry bold, got %q", st.Strong.Prefix)
	}
	if !strings.Contains(st.Emphasis.Prefix, "\x1b[3m") {
		t.Fatalf("emphasis style should carry italic, got %q", st.Emphasis.Prefix)
	}
	if !strings.Contains(st.LinkText.Prefix, "\x1b[4m") {
		t.Fatalf("link text style should carry underline, got %q", st.LinkText.Prefix)
	}
}

func TestNewTheme(t *testing.T) {
	th := NewTheme("custom", Styles{Text: ANSIStyle{Prefix: "x"}})
	if th.Name() != "custom" || th.Styles().Text.Prefix != "x" {
		t.Fatalf("NewTheme did not preserve definition")
	}
}
