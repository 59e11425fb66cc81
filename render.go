package wmf

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"pkt.systems/wmf/internal/palette"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader       io.Reader
	Writer       io.Writer
	Width        int
	Theme        Theme
	Options      []RenderOption
	ParseOptions []ParseOption
}

// Render reads a whole document of wiki markup, splits it into paragraphs
// on blank lines, parses each paragraph's inline elements, and writes
// themed ANSI output wrapped to Width. Block constructs are not
// interpreted; each blank-line-separated chunk is one paragraph.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	var cfg renderConfig
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	th := req.Theme
	if th == nil {
		th = DefaultTheme()
	}
	r := inlineRenderer{
		styles: th.Styles(),
		osc8:   cfg.osc8,
		width:  req.Width,
	}
	for i, para := range SplitParagraphs(normalizeInput(src)) {
		inlines, err := ParseInlines(para, req.ParseOptions...)
		if err != nil {
			return fmt.Errorf("render: paragraph %d: %w", i+1, err)
		}
		out := r.render(inlines)
		if req.Width > 0 {
			out = wordwrap.String(out, req.Width)
			if cfg.softWrap {
				out = wrap.String(out, req.Width)
			}
		}
		if i > 0 {
			if _, err := io.WriteString(req.Writer, "\n"); err != nil {
				return fmt.Errorf("render: write: %w", err)
			}
		}
		if _, err := io.WriteString(req.Writer, out+"\n"); err != nil {
			return fmt.Errorf("render: write: %w", err)
		}
	}
	return nil
}

// SplitParagraphs divides a document into blank-line-separated chunks,
// the unit the inline parser consumes. Lines containing only spaces are
// blank. This is the extent of block-level handling in this package.
func SplitParagraphs(text string) []string {
	var paras []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			paras = append(paras, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return paras
}

type inlineRenderer struct {
	styles Styles
	osc8   bool
	width  int
}

func (r inlineRenderer) render(nodes []Inline) string {
	var b strings.Builder
	r.write(&b, nodes, r.styles.Text.Prefix)
	return b.String()
}

// write emits nodes with the given active style prefix. Nested spans pass
// the concatenation of their own prefix down, so each text chunk carries
// the full style chain and is reset after.
func (r inlineRenderer) write(b *strings.Builder, nodes []Inline, prefix string) {
	for _, node := range nodes {
		switch n := node.(type) {
		case Text:
			writeStyled(b, prefix, n.Text)
		case Space:
			b.WriteByte(' ')
		case LineBreak:
			b.WriteByte('\n')
		case SpecialChar:
			writeStyled(b, prefix, string(n.Char))
		case Entity:
			writeStyled(b, prefix+r.styles.Entity.Prefix, decodeEntity(n.Name))
		case Emoji:
			b.WriteString(n.Kind.Glyph())
		case Anchor:
			writeStyled(b, r.styles.Anchor.Prefix, "#"+n.Name)
		case Image:
			writeStyled(b, r.styles.Image.Prefix, "[image: "+r.fitToWidth(n.URL)+"]")
		case Link:
			r.writeLink(b, n, prefix)
		case Styled:
			r.write(b, n.Content, prefix+r.styleFor(n.Style).Prefix)
		case Monospaced:
			r.write(b, n.Content, prefix+r.styles.Monospaced.Prefix)
		}
	}
}

func (r inlineRenderer) styleFor(kind StyleKind) ANSIStyle {
	switch kind {
	case StyleStrong:
		return r.styles.Strong
	case StyleEmphasis:
		return r.styles.Emphasis
	case StyleInsert:
		return r.styles.Insert
	case StyleStrikeout:
		return r.styles.Strikeout
	case StyleSuperscript:
		return r.styles.Superscript
	case StyleSubscript:
		return r.styles.Subscript
	}
	return ANSIStyle{}
}

func (r inlineRenderer) writeLink(b *strings.Builder, link Link, prefix string) {
	if r.osc8 {
		b.WriteString(osc8Start + link.URL + osc8Terminator)
		if len(link.Alias) == 0 {
			writeStyled(b, prefix+r.styles.LinkText.Prefix, link.URL)
		} else {
			r.write(b, link.Alias, prefix+r.styles.LinkText.Prefix)
		}
		b.WriteString(osc8End)
		return
	}
	if len(link.Alias) == 0 {
		writeStyled(b, prefix+r.styles.LinkText.Prefix, r.fitToWidth(link.URL))
		return
	}
	r.write(b, link.Alias, prefix+r.styles.LinkText.Prefix)
	b.WriteByte(' ')
	writeStyled(b, r.styles.LinkURL.Prefix, "("+r.fitToWidth(link.URL)+")")
}

func (r inlineRenderer) fitToWidth(url string) string {
	if r.width <= 0 {
		return url
	}
	return fitURL(url, r.width)
}

func writeStyled(b *strings.Builder, prefix, text string) {
	if prefix == "" || text == "" {
		b.WriteString(text)
		return
	}
	b.WriteString(prefix)
	b.WriteString(text)
	b.WriteString(palette.Reset)
}

// decodeEntity resolves an HTML-style reference body; unknown names are
// rendered back literally.
func decodeEntity(name string) string {
	raw := "&" + name + ";"
	if decoded := html.UnescapeString(raw); decoded != raw {
		return decoded
	}
	return raw
}
