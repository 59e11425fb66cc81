// Package palette holds ANSI escape prefixes for the built-in themes.
package palette

// Text attribute prefixes shared by all palettes.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Faint     = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Strike    = "\x1b[9m"
)

// Palette is a set of color prefixes, one per inline construct.
type Palette struct {
	Text        string
	Strong      string
	Emphasis    string
	Insert      string
	Strikeout   string
	Superscript string
	Subscript   string
	Monospaced  string
	LinkText    string
	LinkURL     string
	Anchor      string
	Image       string
	Entity      string
}

func fg256(n string) string {
	return "\x1b[38;5;" + n + "m"
}

// PaletteDefault keeps body text unstyled and colors only markup.
var PaletteDefault = Palette{
	Strong:      fg256("203"),
	Emphasis:    fg256("215"),
	Insert:      fg256("114"),
	Strikeout:   fg256("245"),
	Superscript: fg256("117"),
	Subscript:   fg256("117"),
	Monospaced:  fg256("252") + "\x1b[48;5;236m",
	LinkText:    fg256("75"),
	LinkURL:     fg256("244"),
	Anchor:      fg256("244"),
	Image:       fg256("180"),
	Entity:      fg256("223"),
}

var PaletteDoomGruvbox = Palette{
	Text:        fg256("223"),
	Strong:      fg256("167"),
	Emphasis:    fg256("214"),
	Insert:      fg256("142"),
	Strikeout:   fg256("245"),
	Superscript: fg256("109"),
	Subscript:   fg256("109"),
	Monospaced:  fg256("208") + "\x1b[48;5;237m",
	LinkText:    fg256("109"),
	LinkURL:     fg256("245"),
	Anchor:      fg256("245"),
	Image:       fg256("175"),
	Entity:      fg256("214"),
}

var PaletteDoomDracula = Palette{
	Text:        fg256("253"),
	Strong:      fg256("212"),
	Emphasis:    fg256("228"),
	Insert:      fg256("84"),
	Strikeout:   fg256("245"),
	Superscript: fg256("117"),
	Subscript:   fg256("117"),
	Monospaced:  fg256("84") + "\x1b[48;5;236m",
	LinkText:    fg256("141"),
	LinkURL:     fg256("245"),
	Anchor:      fg256("245"),
	Image:       fg256("215"),
	Entity:      fg256("228"),
}

var PaletteDoomNord = Palette{
	Text:        fg256("253"),
	Strong:      fg256("131"),
	Emphasis:    fg256("222"),
	Insert:      fg256("108"),
	Strikeout:   fg256("245"),
	Superscript: fg256("110"),
	Subscript:   fg256("110"),
	Monospaced:  fg256("110") + "\x1b[48;5;238m",
	LinkText:    fg256("109"),
	LinkURL:     fg256("245"),
	Anchor:      fg256("245"),
	Image:       fg256("139"),
	Entity:      fg256("222"),
}

var PaletteSolarizedDark = Palette{
	Text:        fg256("247"),
	Strong:      fg256("160"),
	Emphasis:    fg256("136"),
	Insert:      fg256("64"),
	Strikeout:   fg256("241"),
	Superscript: fg256("37"),
	Subscript:   fg256("37"),
	Monospaced:  fg256("37") + "\x1b[48;5;235m",
	LinkText:    fg256("33"),
	LinkURL:     fg256("241"),
	Anchor:      fg256("241"),
	Image:       fg256("125"),
	Entity:      fg256("136"),
}

var PaletteGithubLight = Palette{
	Text:        fg256("235"),
	Strong:      fg256("160"),
	Emphasis:    fg256("130"),
	Insert:      fg256("28"),
	Strikeout:   fg256("245"),
	Superscript: fg256("26"),
	Subscript:   fg256("26"),
	Monospaced:  fg256("124") + "\x1b[48;5;255m",
	LinkText:    fg256("26"),
	LinkURL:     fg256("245"),
	Anchor:      fg256("245"),
	Image:       fg256("90"),
	Entity:      fg256("130"),
}
