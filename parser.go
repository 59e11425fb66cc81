package wmf

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// parseContext is the ephemeral state threaded through one parse. It is
// saved and restored together with the cursor around every alternative,
// so a failed recognizer leaves no trace.
type parseContext struct {
	inTable   bool
	inLink    bool
	afterWord bool
}

// ParseOption configures a parse invocation.
type ParseOption func(*parser)

// InTable parses in table-cell context, where '|' is a cell separator
// rather than a literal symbol.
func InTable() ParseOption {
	return func(p *parser) {
		p.ctx.inTable = true
	}
}

// WithBlockTerminators replaces the block-terminator keywords the
// dispatcher refuses to consume. The block-level driver owns this list.
func WithBlockTerminators(names ...string) ParseOption {
	return func(p *parser) {
		p.blockNames = names
	}
}

// WithEndOfParagraph replaces the paragraph-end predicate consulted after
// a raw newline. The predicate receives the input remaining after the
// newline.
func WithEndOfParagraph(pred func(rest string) bool) ParseOption {
	return func(p *parser) {
		p.endOfPara = pred
	}
}

var defaultBlockTerminators = []string{"code", "color", "noformat", "panel", "quote"}

// inlineExpectations lists the alternatives the dispatcher tries, for
// error reporting.
var inlineExpectations = []string{
	"whitespace", "emoji", "text", "line break", "link", "image",
	"styled text", "monospaced text", "anchor", "entity", "symbol",
}

// ParseError reports that no inline element matched at Pos. It is only
// returned once every alternative has been exhausted; all other failures
// are ordinary backtracking.
type ParseError struct {
	Pos      int
	Expected []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: no inline element matched at offset %d (expected %s)",
		e.Pos, strings.Join(e.Expected, ", "))
}

type parser struct {
	input      string
	pos        int
	ctx        parseContext
	blockNames []string
	endOfPara  func(rest string) bool
}

// mark is a transaction snapshot: cursor plus context flags.
type mark struct {
	pos int
	ctx parseContext
}

func newParser(input string, opts ...ParseOption) *parser {
	p := &parser{
		input:      input,
		blockNames: defaultBlockTerminators,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.endOfPara == nil {
		p.endOfPara = p.defaultEndOfParagraph
	}
	return p
}

// ParseInlines parses one paragraph (or table cell) of wiki markup into
// its inline elements. Parsing stops cleanly at end of input, at a
// block-terminator keyword, or at a newline that ends the paragraph; any
// other position where no alternative matches yields a *ParseError.
func ParseInlines(text string, opts ...ParseOption) ([]Inline, error) {
	return newParser(text, opts...).run()
}

func (p *parser) run() ([]Inline, error) {
	var out []Inline
	for p.pos < len(p.input) {
		if p.atBlockTerminator() {
			break
		}
		if p.input[p.pos] == '\n' && p.endOfPara(p.input[p.pos+1:]) {
			break
		}
		n, ok := p.parseInline()
		if !ok {
			return nil, &ParseError{Pos: p.pos, Expected: append([]string(nil), inlineExpectations...)}
		}
		out = append(out, n)
	}
	return out, nil
}

func (p *parser) save() mark {
	return mark{pos: p.pos, ctx: p.ctx}
}

func (p *parser) restore(m mark) {
	p.pos = m.pos
	p.ctx = m.ctx
}

func (p *parser) rest() string {
	return p.input[p.pos:]
}

func (p *parser) peekRune() (rune, int) {
	if p.pos >= len(p.input) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(p.input[p.pos:])
}

func (p *parser) consumeByte(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) consumeLit(s string) bool {
	if strings.HasPrefix(p.rest(), s) {
		p.pos += len(s)
		return true
	}
	return false
}

// defaultEndOfParagraph treats end of input, a blank line, or a
// block-terminator keyword as the end of the paragraph.
func (p *parser) defaultEndOfParagraph(rest string) bool {
	if rest == "" {
		return true
	}
	i := 0
	for i < len(rest) && rest[i] == ' ' {
		i++
	}
	if i < len(rest) && rest[i] == '\n' {
		return true
	}
	return hasBlockTerminator(rest, p.blockNames)
}

func (p *parser) atBlockTerminator() bool {
	return hasBlockTerminator(p.rest(), p.blockNames)
}

func hasBlockTerminator(rest string, names []string) bool {
	if rest == "" || rest[0] != '{' {
		return false
	}
	for _, name := range names {
		if len(rest) > len(name)+1 && strings.HasPrefix(rest[1:], name) && rest[1+len(name)] == '}' {
			return true
		}
	}
	return false
}

// parseInline tries every recognizer in priority order. Emoji precedes
// text so smileys are not swallowed as plain characters; link and image
// precede styled spans because '[' and '!' are also symbol characters;
// symbol is the fallback for any remaining special character.
func (p *parser) parseInline() (Inline, bool) {
	if p.atBlockTerminator() {
		return nil, false
	}
	if n, ok := p.parseWhitespace(); ok {
		return n, true
	}
	if n, ok := p.parseEmoji(); ok {
		return n, true
	}
	if n, ok := p.parseText(); ok {
		return n, true
	}
	if n, ok := p.parseLinebreak(); ok {
		return n, true
	}
	if n, ok := p.parseLink(); ok {
		return n, true
	}
	if n, ok := p.parseImage(); ok {
		return n, true
	}
	if n, ok := p.parseStyled(); ok {
		return n, true
	}
	if n, ok := p.parseMonospaced(); ok {
		return n, true
	}
	if n, ok := p.parseAnchor(); ok {
		return n, true
	}
	if n, ok := p.parseEntity(); ok {
		return n, true
	}
	if n, ok := p.parseSymbol(); ok {
		return n, true
	}
	return nil, false
}

// parseWhitespace collapses a run of literal spaces. Tabs are plain text.
func (p *parser) parseWhitespace() (Inline, bool) {
	n := 0
	for p.pos+n < len(p.input) && p.input[p.pos+n] == ' ' {
		n++
	}
	if n == 0 {
		return nil, false
	}
	p.pos += n
	p.ctx.afterWord = false
	return Space{}, true
}

// parseText consumes the maximal run of characters outside the special
// set. afterWord is set when the run ends in an alphanumeric character,
// which blocks a style delimiter from opening mid-word.
func (p *parser) parseText() (Inline, bool) {
	start := p.pos
	wordEnd := false
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if isSpecialRune(r) {
			break
		}
		wordEnd = isAlphaNum(r)
		p.pos += size
	}
	if p.pos == start {
		return nil, false
	}
	p.ctx.afterWord = wordEnd
	return Text{Text: p.input[start:p.pos]}, true
}

// parseLinebreak recognizes a raw newline that does not end the
// paragraph, or a double backslash not followed by a third. Inside a link
// alias a newline terminates the alias instead.
func (p *parser) parseLinebreak() (Inline, bool) {
	m := p.save()
	if !p.ctx.inLink && p.consumeByte('\n') {
		if !p.endOfPara(p.input[p.pos:]) {
			p.ctx.afterWord = false
			return LineBreak{}, true
		}
		p.restore(m)
		return nil, false
	}
	rest := p.rest()
	if strings.HasPrefix(rest, `\\`) && !strings.HasPrefix(rest, `\\\`) {
		p.pos += 2
		p.ctx.afterWord = false
		return LineBreak{}, true
	}
	return nil, false
}

func (p *parser) parseEmoji() (Inline, bool) {
	m := p.save()
	kind, ok := p.scanSmiley()
	if !ok {
		p.restore(m)
		kind, ok = p.scanIcon()
	}
	if !ok {
		p.restore(m)
		return nil, false
	}
	// a trailing letter means we are inside a longer word
	if r, _ := p.peekRune(); unicode.IsLetter(r) {
		p.restore(m)
		return nil, false
	}
	p.ctx.afterWord = false
	return Emoji{Kind: kind}, true
}

func (p *parser) scanSmiley() (EmojiKind, bool) {
	rest := p.rest()
	if strings.HasPrefix(rest, ";)") {
		p.pos += 2
		return EmojiWinking, true
	}
	if len(rest) < 2 || rest[0] != ':' {
		return 0, false
	}
	var kind EmojiKind
	switch rest[1] {
	case 'D':
		kind = EmojiSmiling
	case ')':
		kind = EmojiSlightlySmiling
	case '(':
		kind = EmojiFrowning
	case 'P':
		kind = EmojiTongue
	default:
		return 0, false
	}
	p.pos += 2
	return kind, true
}

func (p *parser) scanIcon() (EmojiKind, bool) {
	rest := p.rest()
	if rest == "" || rest[0] != '(' {
		return 0, false
	}
	i := 1
	for i < len(rest) && isIconNameByte(rest[i]) {
		i++
	}
	if i == 1 || i >= len(rest) || rest[i] != ')' {
		return 0, false
	}
	kind, ok := iconNames[rest[1:i]]
	if !ok {
		return 0, false
	}
	p.pos += i + 1
	return kind, true
}

func isIconNameByte(c byte) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
		return true
	}
	switch c {
	case '/', '!', '+', '-', '?', '*':
		return true
	}
	return false
}

// parseEntity recognizes &name; or &#digits; without validating the name
// against any entity table.
func (p *parser) parseEntity() (Inline, bool) {
	rest := p.rest()
	if rest == "" || rest[0] != '&' {
		return nil, false
	}
	i := 1
	if i < len(rest) && rest[i] == '#' {
		i++
		digits := i
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == digits {
			return nil, false
		}
	} else {
		letters := i
		for i < len(rest) && isASCIILetter(rest[i]) {
			i++
		}
		if i == letters {
			return nil, false
		}
	}
	if i >= len(rest) || rest[i] != ';' {
		return nil, false
	}
	name := rest[1:i]
	p.pos += i + 1
	p.ctx.afterWord = false
	return Entity{Name: name}, true
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// parseSymbol emits one literal special character: an escaped punctuation
// rune, or a bare symbol character admissible in this context.
func (p *parser) parseSymbol() (Inline, bool) {
	rest := p.rest()
	if rest == "" {
		return nil, false
	}
	if rest[0] == '\\' && len(rest) > 1 {
		r, size := utf8.DecodeRuneInString(rest[1:])
		if escapable(r) {
			p.pos += 1 + size
			p.ctx.afterWord = false
			return SpecialChar{Char: r}, true
		}
	}
	if admissibleSymbol(rest[0], p.ctx) {
		p.pos++
		p.ctx.afterWord = false
		return SpecialChar{Char: rune(rest[0])}, true
	}
	return nil, false
}

// enclosed is the shared combinator for "opening ... content ... closing"
// spans. The opening delimiter may not follow a word run or precede a
// space; the closing delimiter must be followed by a word boundary, which
// is checked by lookahead and not consumed. The whole attempt is
// transactional.
func (p *parser) enclosed(opening, closing func() bool) ([]Inline, bool) {
	m := p.save()
	if p.ctx.afterWord {
		return nil, false
	}
	if !opening() {
		p.restore(m)
		return nil, false
	}
	if p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.restore(m)
		return nil, false
	}
	content := []Inline{}
	for {
		if p.closedWithBoundary(closing) {
			p.ctx.afterWord = false
			return content, true
		}
		n, ok := p.parseInline()
		if !ok {
			p.restore(m)
			return nil, false
		}
		content = append(content, n)
	}
}

func (p *parser) closedWithBoundary(closing func() bool) bool {
	m := p.save()
	if !closing() {
		p.restore(m)
		return false
	}
	if p.pos < len(p.input) {
		r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
		if unicode.IsLetter(r) {
			p.restore(m)
			return false
		}
	}
	return true
}

// parseStyled peeks at the delimiter character to pick the style, then
// runs the enclosing combinator with that character on both ends. Content
// must be non-empty.
func (p *parser) parseStyled() (Inline, bool) {
	if p.pos >= len(p.input) {
		return nil, false
	}
	delim := p.input[p.pos]
	style, ok := styleForDelimiter(delim)
	if !ok {
		return nil, false
	}
	m := p.save()
	content, ok := p.enclosed(
		func() bool { return p.consumeByte(delim) },
		func() bool { return p.consumeByte(delim) },
	)
	if !ok {
		return nil, false
	}
	if len(content) == 0 {
		p.restore(m)
		return nil, false
	}
	return Styled{Style: style, Content: content}, true
}

// parseMonospaced recognizes {{...}}. Unlike styled spans the content may
// be empty.
func (p *parser) parseMonospaced() (Inline, bool) {
	content, ok := p.enclosed(
		func() bool { return p.consumeLit("{{") },
		func() bool { return p.consumeLit("}}") },
	)
	if !ok {
		return nil, false
	}
	return Monospaced{Content: content}, true
}

// parseAnchor recognizes {anchor:name}, stripping embedded spaces.
func (p *parser) parseAnchor() (Inline, bool) {
	const prefix = "{anchor:"
	rest := p.rest()
	if !strings.HasPrefix(rest, prefix) {
		return nil, false
	}
	for i := len(prefix); i < len(rest); i++ {
		switch rest[i] {
		case '}':
			name := strings.ReplaceAll(rest[len(prefix):i], " ", "")
			p.pos += i + 1
			p.ctx.afterWord = false
			return Anchor{Name: name}, true
		case '\n':
			return nil, false
		}
	}
	return nil, false
}

// parseImage recognizes !url! with no CR, TAB, or LF in the url.
func (p *parser) parseImage() (Inline, bool) {
	rest := p.rest()
	if rest == "" || rest[0] != '!' {
		return nil, false
	}
	i := 1
	for i < len(rest) && rest[i] != '!' {
		if rest[i] == '\n' || rest[i] == '\r' || rest[i] == '\t' {
			return nil, false
		}
		i++
	}
	if i == 1 || i >= len(rest) {
		return nil, false
	}
	url := rest[1:i]
	p.pos += i + 1
	p.ctx.afterWord = false
	return Image{URL: url}, true
}

// parseLink recognizes [alias|url] and [url]. Links do not nest: the
// alias is parsed recursively with inLink set, which also removes ']' and
// '|' from the symbol set and lets the alias end at either.
func (p *parser) parseLink() (Inline, bool) {
	if p.ctx.inLink {
		return nil, false
	}
	m := p.save()
	if !p.consumeByte('[') {
		return nil, false
	}
	aliasMark := p.save()
	p.ctx.inLink = true
	var alias []Inline
	for {
		n, ok := p.parseInline()
		if !ok {
			break
		}
		alias = append(alias, n)
	}
	if len(alias) > 0 && p.pos < len(p.input) && p.input[p.pos] == '|' {
		p.pos++
		p.ctx.inLink = aliasMark.ctx.inLink
	} else {
		p.restore(aliasMark)
		alias = nil
	}
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '|' || c == ']' || c == ' ' || c == '\n' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		p.restore(m)
		return nil, false
	}
	url := p.input[start:p.pos]
	if !p.consumeByte(']') {
		p.restore(m)
		return nil, false
	}
	p.ctx.afterWord = false
	return Link{Alias: alias, URL: url}, true
}
