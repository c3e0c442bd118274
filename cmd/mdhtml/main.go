package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdhtml"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/mdhtml")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code: 0 on success, 1 on
// runtime failures and 2 on usage errors. Deferred closes run before it
// returns.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		terminalMode bool
		themeName    string
		widthFlag    int
		osc8Flag     string
		listThemes   bool
		outPath      string
		boring       bool
		escapeURLs   bool
		frontMatter  bool
		standalone   bool
		title        string
		traceFlag    string
	)

	flags := pflag.NewFlagSet("mdhtml", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&terminalMode, "terminal", false, "Render styled terminal text instead of HTML")
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name for --terminal")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Wrap width for --terminal (0 uses terminal width if available)")
	flags.StringVarP(&osc8Flag, "osc8", "8", "auto", "OSC8 hyperlinks for --terminal: auto|on|off")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&boring, "boring", "b", false, "Terminal output without ANSI styling")
	flags.BoolVar(&escapeURLs, "escape-urls", false, "HTML-escape link targets")
	flags.BoolVar(&frontMatter, "front-matter", false, "Strip leading YAML/TOML/JSON front matter")
	flags.BoolVar(&standalone, "standalone", false, "Wrap HTML output in a complete document")
	flags.StringVar(&title, "title", "", "Document title for --standalone (defaults to the front matter title, then the first input name)")
	flags.StringVar(&traceFlag, "trace", "", "Dump lexer or parser output instead of rendering: tokens|tree")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdhtml [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, markup is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if listThemes {
		printThemes(stdout)
		return 0
	}

	trace, err := parseTraceMode(traceFlag)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --trace %q: %v\n", traceFlag, err)
		return 2
	}

	var theme mdhtml.Theme
	var osc8 bool
	if terminalMode {
		var ok bool
		theme, ok = mdhtml.ThemeByName(themeName)
		if !ok {
			fmt.Fprintf(stderr, "unknown theme %q\n\n", themeName)
			printThemes(stderr)
			return 2
		}
		if boring {
			theme = boringTheme()
		}
		osc8, err = resolveOSC8(osc8Flag)
		if err != nil {
			fmt.Fprintf(stderr, "invalid --osc8 %q: %v\n", osc8Flag, err)
			return 2
		}
	}

	inputs := flags.Args()
	reader, closer, err := openInputs(inputs, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	writer, closeOut, err := resolveOutput(outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	var opts []mdhtml.RenderOption
	if frontMatter {
		opts = append(opts, mdhtml.WithFrontMatter(true))
	}

	if trace != mdhtml.TraceNone {
		if err := mdhtml.Trace(mdhtml.TraceRequest{
			Reader:  reader,
			Writer:  writer,
			Mode:    trace,
			Options: opts,
		}); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
		return 0
	}

	if terminalMode {
		if osc8 && strings.EqualFold(strings.TrimSpace(osc8Flag), "auto") && !isTerminal(writer) {
			osc8 = false
		}
		opts = append(opts, mdhtml.WithOSC8(osc8))
		if err := mdhtml.RenderTerminal(mdhtml.TerminalRequest{
			Reader:  reader,
			Writer:  writer,
			Width:   resolveWidth(widthFlag),
			Theme:   theme,
			Options: opts,
		}); err != nil {
			fmt.Fprintf(stderr, "render: %v\n", err)
			return 1
		}
		return 0
	}

	if escapeURLs {
		opts = append(opts, mdhtml.WithEscapedURLs(true))
	}
	if standalone {
		opts = append(opts,
			mdhtml.WithStandalone(title),
			mdhtml.WithDefaultTitle(documentTitle(title, inputs)),
		)
	}
	if err := mdhtml.Convert(mdhtml.ConvertRequest{
		Reader:  reader,
		Writer:  writer,
		Options: opts,
	}); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}

func parseTraceMode(mode string) (mdhtml.TraceMode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "":
		return mdhtml.TraceNone, nil
	case "tokens", "lex":
		return mdhtml.TraceTokens, nil
	case "tree", "ast":
		return mdhtml.TraceTree, nil
	default:
		return mdhtml.TraceNone, fmt.Errorf("expected tokens|tree")
	}
}

func documentTitle(title string, args []string) string {
	if title != "" {
		return title
	}
	if len(args) == 0 {
		return "stdin"
	}
	base := filepath.Base(args[0])
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func printThemes(w io.Writer) {
	for _, name := range mdhtml.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return mdhtml.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func boringTheme() mdhtml.Theme {
	return mdhtml.NewTheme("boring", mdhtml.Styles{})
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

// multiInputReader concatenates inputs, opening each lazily and closing it
// once drained.
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

func openInputs(args []string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
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

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
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

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
