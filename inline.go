package wmf

// Inline is one node of the paragraph-level AST. A parsed paragraph is an
// ordered sequence of Inline values; recursive nodes (Link, Styled,
// Monospaced) own their children outright.
type Inline interface {
	inlineNode()
}

// Text is a run of characters containing no special character.
type Text struct {
	Text string
}

// Space marks one or more consecutive literal spaces. The run length is
// not preserved.
type Space struct{}

// LineBreak is an in-paragraph break: a source newline that does not end
// the paragraph, or an explicit double-backslash break.
type LineBreak struct{}

// SpecialChar is a single punctuation character emitted literally, either
// escaped with a backslash or carrying no markup meaning in context.
type SpecialChar struct {
	Char rune
}

// Entity is an HTML-style character reference. Name holds the body
// between '&' and ';'.
type Entity struct {
	Name string
}

// Emoji is one of the fixed set of icon identifiers.
type Emoji struct {
	Kind EmojiKind
}

// Anchor is a named in-document anchor target.
type Anchor struct {
	Name string
}

// Image references an external resource by URL.
type Image struct {
	URL string
}

// Link pairs an alias (possibly empty) with a URL.
type Link struct {
	Alias []Inline
	URL   string
}

// Styled applies a style to a non-empty sequence of inline elements.
type Styled struct {
	Style   StyleKind
	Content []Inline
}

// Monospaced wraps a possibly empty sequence of inline elements.
type Monospaced struct {
	Content []Inline
}

func (Text) inlineNode()        {}
func (Space) inlineNode()       {}
func (LineBreak) inlineNode()   {}
func (SpecialChar) inlineNode() {}
func (Entity) inlineNode()      {}
func (Emoji) inlineNode()       {}
func (Anchor) inlineNode()      {}
func (Image) inlineNode()       {}
func (Link) inlineNode()        {}
func (Styled) inlineNode()      {}
func (Monospaced) inlineNode()  {}

// StyleKind identifies the style of a Styled span.
type StyleKind uint8

const (
	_ StyleKind = iota
	// StyleStrong is *strong* text.
	StyleStrong
	// StyleEmphasis is _emphasized_ text.
	StyleEmphasis
	// StyleInsert is +inserted+ text.
	StyleInsert
	// StyleStrikeout is -struck-out- text.
	StyleStrikeout
	// StyleSuperscript is ^superscript^ text.
	StyleSuperscript
	// StyleSubscript is ~subscript~ text.
	StyleSubscript
)

// String returns the style name.
func (s StyleKind) String() string {
	switch s {
	case StyleStrong:
		return "strong"
	case StyleEmphasis:
		return "emphasis"
	case StyleInsert:
		return "insert"
	case StyleStrikeout:
		return "strikeout"
	case StyleSuperscript:
		return "superscript"
	case StyleSubscript:
		return "subscript"
	}
	return "unknown"
}

// styleForDelimiter maps a delimiter character to its style.
func styleForDelimiter(c byte) (StyleKind, bool) {
	switch c {
	case '*':
		return StyleStrong, true
	case '_':
		return StyleEmphasis, true
	case '+':
		return StyleInsert, true
	case '-':
		return StyleStrikeout, true
	case '^':
		return StyleSuperscript, true
	case '~':
		return StyleSubscript, true
	}
	return 0, false
}
