package wmf

import (
	"sort"
	"strings"

	"pkt.systems/wmf/internal/palette"
)

// ANSIStyle describes a terminal style as an ANSI prefix sequence.
type ANSIStyle struct {
	Prefix string
}

// Styles groups the semantic styles used by the renderer, one per inline
// construct.
type Styles struct {
	Text        ANSIStyle
	Strong      ANSIStyle
	Emphasis    ANSIStyle
	Insert      ANSIStyle
	Strikeout   ANSIStyle
	Superscript ANSIStyle
	Subscript   ANSIStyle
	Monospaced  ANSIStyle
	LinkText    ANSIStyle
	LinkURL     ANSIStyle
	Anchor      ANSIStyle
	Image       ANSIStyle
	Entity      ANSIStyle
}

// Theme provides named styles for wiki markup rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) ANSIStyle {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return ANSIStyle{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:        style(p.Text),
		Strong:      style(palette.Bold, p.Strong),
		Emphasis:    style(palette.Italic, p.Emphasis),
		Insert:      style(palette.Underline, p.Insert),
		Strikeout:   style(palette.Strike, p.Strikeout),
		Superscript: style(p.Superscript),
		Subscript:   style(palette.Faint, p.Subscript),
		Monospaced:  style(p.Monospaced),
		LinkText:    style(palette.Underline, p.LinkText),
		LinkURL:     style(p.LinkURL),
		Anchor:      style(palette.Faint, p.Anchor),
		Image:       style(p.Image),
		Entity:      style(p.Entity),
	}
}

var builtinThemes = map[string]Theme{
	"default":        theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"gruvbox":        theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteDoomGruvbox)},
	"dracula":        theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDoomDracula)},
	"nord":           theme{name: "nord", styles: stylesFromPalette(palette.PaletteDoomNord)},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"github-light":   theme{name: "github-light", styles: stylesFromPalette(palette.PaletteGithubLight)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
