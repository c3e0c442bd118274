package mdhtml

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"pkt.systems/mdhtml/internal/palette"
)

var ansiRegexp = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")
var osc8Regexp = regexp.MustCompile("\x1b\\]8;;.*?\x1b\\\\")

func stripANSI(s string) string {
	s = ansiRegexp.ReplaceAllString(s, "")
	s = osc8Regexp.ReplaceAllString(s, "")
	return s
}

func renderTerminalString(t *testing.T, src string, width int, theme Theme, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	err := RenderTerminal(TerminalRequest{
		Reader:  strings.NewReader(src),
		Writer:  &out,
		Width:   width,
		Theme:   theme,
		Options: opts,
	})
	if err != nil {
		t.Fatalf("render terminal: %v", err)
	}
	return out.String()
}

var boring = NewTheme("boring", Styles{})

const terminalSample = "# Title\n\nSome **bold** and *it* with [site](https://example.com).\n\n- one\n- two\n\n```go\nfmt.Println(\"hi\")\n```"

func TestRenderTerminalPlain(t *testing.T) {
	got := renderTerminalString(t, terminalSample, 0, boring)
	want := strings.Join([]string{
		"# Title",
		"",
		"Some bold and it with site (https://example.com).",
		"",
		"- one",
		"- two",
		"",
		"fmt.Println(\"hi\")",
	}, "\n") + "\n"
	if got != want {
		t.Fatalf("plain output mismatch\n---want---\n%s\n---got---\n%s", want, got)
	}
}

func TestRenderTerminalANSI(t *testing.T) {
	out := renderTerminalString(t, terminalSample, 0, DefaultTheme())
	plain := renderTerminalString(t, terminalSample, 0, boring)
	if stripANSI(out) != plain {
		t.Fatalf("styled output differs from plain after stripping\n---plain---\n%s\n---stripped---\n%s", plain, stripANSI(out))
	}
	for name, prefix := range map[string]string{
		"H1":          palette.PaletteDefault.H1,
		"strong":      palette.PaletteDefault.Strong,
		"emphasis":    palette.PaletteDefault.Emphasis,
		"code block":  palette.PaletteDefault.CodeBlock,
		"list marker": palette.PaletteDefault.ListMarker,
		"link text":   palette.PaletteDefault.LinkText,
	} {
		if !strings.Contains(out, prefix) {
			t.Fatalf("missing %s ANSI prefix", name)
		}
	}
}

func TestRenderTerminalNestedStyleKeepsOuter(t *testing.T) {
	out := renderTerminalString(t, "**a *b***", 0, DefaultTheme())
	styles := DefaultTheme().Styles()
	inner := styles.Text.Prefix + styles.Strong.Prefix + styles.Emphasis.Prefix + "b"
	if !strings.Contains(out, inner) {
		t.Fatalf("nested emphasis lost outer style: %q", out)
	}
}

func TestRenderTerminalOSC8(t *testing.T) {
	out := renderTerminalString(t, "See [website](https://example.com) now.", 0, boring, WithOSC8(true))
	if !strings.Contains(out, "\x1b]8;;https://example.com\x1b\\website\x1b]8;;\x1b\\") {
		t.Fatalf("missing OSC 8 hyperlink: %q", out)
	}
	if strings.Contains(out, "(https://example.com)") {
		t.Fatalf("URL fallback printed alongside OSC 8 link: %q", out)
	}
}

func TestRenderTerminalWraps(t *testing.T) {
	src := "alpha beta gamma delta epsilon zeta eta theta\n\n- alpha beta gamma delta epsilon zeta"
	width := 16
	out := renderTerminalString(t, src, width, boring)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	var inList bool
	for _, line := range lines {
		if len(line) > width {
			t.Fatalf("line exceeds width %d: %q", width, line)
		}
		if strings.HasPrefix(line, "- ") {
			inList = true
			continue
		}
		if inList && !strings.HasPrefix(line, "  ") {
			t.Fatalf("list continuation not indented: %q", line)
		}
	}
	if !inList {
		t.Fatalf("list item missing:\n%s", out)
	}
	if got := strings.Join(strings.Fields(out), " "); got != "alpha beta gamma delta epsilon zeta eta theta - alpha beta gamma delta epsilon zeta" {
		t.Fatalf("words changed by wrapping: %q", got)
	}
}

func TestRenderTerminalFitsLongURL(t *testing.T) {
	out := renderTerminalString(t, "[x](https://example.com/a/very/long/path/that/does/not/fit)", 20, boring)
	if !strings.Contains(out, "…") {
		t.Fatalf("expected truncated URL: %q", out)
	}
	if strings.Contains(out, "https://") {
		t.Fatalf("expected scheme to be dropped first: %q", out)
	}
}

func TestRenderTerminalNilArguments(t *testing.T) {
	if err := RenderTerminal(TerminalRequest{Writer: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error for nil reader")
	}
	if err := RenderTerminal(TerminalRequest{Reader: strings.NewReader("x")}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

func TestFitURL(t *testing.T) {
	cases := []struct {
		url   string
		limit int
		want  string
	}{
		{"https://a.io", 40, "https://a.io"},
		{"https://a.io/x", 10, "a.io/x"},
		{"https://example.com/long", 8, "example…"},
		{"https://example.com", 0, "https://example.com"},
		{"https://example.com", 1, "…"},
	}
	for _, tc := range cases {
		if got := fitURL(tc.url, tc.limit); got != tc.want {
			t.Fatalf("fitURL(%q, %d) = %q want %q", tc.url, tc.limit, got, tc.want)
		}
	}
}
