package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"
	"pkt.systems/wmf"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/wmf")
}

func main() {
	var (
		themeName  string
		widthFlag  int
		osc8Flag   string
		listThemes bool
		outPath    string
		boring     bool
		tableCell  bool
		astDump    bool
	)

	flags := pflag.NewFlagSet("wmf", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&osc8Flag, "osc8", "8", "auto", "OSC8 hyperlinks: auto|on|off")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&boring, "boring", "b", false, "Generate non-ANSI output")
	flags.BoolVar(&tableCell, "table", false, "Parse input in table-cell context")
	flags.BoolVar(&astDump, "ast", false, "Print the parsed inline elements as JSON instead of rendering")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: wmf [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, wiki markup is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listThemes {
		for _, name := range wmf.AvailableThemes() {
			fmt.Fprintln(os.Stdout, name)
		}
		return
	}

	reader, closer, err := openInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	var parseOpts []wmf.ParseOption
	if tableCell {
		parseOpts = append(parseOpts, wmf.InTable())
	}

	if astDump {
		if err := dumpAST(reader, writer, parseOpts); err != nil {
			fmt.Fprintf(os.Stderr, "ast: %v\n", err)
			os.Exit(1)
		}
		return
	}

	osc8, err := resolveOSC8(osc8Flag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --osc8 %q: %v\n", osc8Flag, err)
		os.Exit(2)
	}
	theme, ok := wmf.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n", themeName)
		os.Exit(2)
	}
	if boring {
		theme = wmf.NewTheme("boring", wmf.Styles{})
		osc8 = false
	}
	if err := wmf.Render(wmf.RenderRequest{
		Reader:       reader,
		Writer:       writer,
		Width:        resolveWidth(widthFlag),
		Theme:        theme,
		Options:      []wmf.RenderOption{wmf.WithOSC8(osc8)},
		ParseOptions: parseOpts,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

func dumpAST(r io.Reader, w io.Writer, parseOpts []wmf.ParseOption) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if err := wmf.ValidateInput(src); err != nil {
		return err
	}
	text := strings.ReplaceAll(string(src), "\r", "")
	paragraphs := make([][]map[string]any, 0, 1)
	for i, para := range wmf.SplitParagraphs(text) {
		inlines, err := wmf.ParseInlines(para, parseOpts...)
		if err != nil {
			return fmt.Errorf("paragraph %d: %w", i+1, err)
		}
		paragraphs = append(paragraphs, astJSON(inlines))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(paragraphs)
}

func astJSON(nodes []wmf.Inline) []map[string]any {
	out := make([]map[string]any, 0, len(nodes))
	for _, node := range nodes {
		switch n := node.(type) {
		case wmf.Text:
			out = append(out, map[string]any{"type": "text", "text": n.Text})
		case wmf.Space:
			out = append(out, map[string]any{"type": "space"})
		case wmf.LineBreak:
			out = append(out, map[string]any{"type": "linebreak"})
		case wmf.SpecialChar:
			out = append(out, map[string]any{"type": "special-char", "char": string(n.Char)})
		case wmf.Entity:
			out = append(out, map[string]any{"type": "entity", "name": n.Name})
		case wmf.Emoji:
			out = append(out, map[string]any{"type": "emoji", "kind": n.Kind.String()})
		case wmf.Anchor:
			out = append(out, map[string]any{"type": "anchor", "name": n.Name})
		case wmf.Image:
			out = append(out, map[string]any{"type": "image", "url": n.URL})
		case wmf.Link:
			out = append(out, map[string]any{"type": "link", "alias": astJSON(n.Alias), "url": n.URL})
		case wmf.Styled:
			out = append(out, map[string]any{"type": "styled", "style": n.Style.String(), "content": astJSON(n.Content)})
		case wmf.Monospaced:
			out = append(out, map[string]any{"type": "monospaced", "content": astJSON(n.Content)})
		}
	}
	return out
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return wmf.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	return &multiInputReader{sources: sources}, nil, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func atoi(value string) (int, error) {
	var n int
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return 0, fmt.Errorf("invalid int")
		}
		n = n*10 + int(value[i]-'0')
	}
	return n, nil
}
