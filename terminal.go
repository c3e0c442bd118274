package mdhtml

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"pkt.systems/mdhtml/internal/palette"
)

const listIndent = 2

// TerminalRequest configures RenderTerminal.
type TerminalRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []RenderOption
}

// RenderTerminal renders markup as styled, word-wrapped text for display in a
// terminal. It parses the input exactly as Convert does. A Width of 0 disables
// wrapping.
func RenderTerminal(req TerminalRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render terminal: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render terminal: writer is nil")
	}
	cfg := newRenderConfig(req.Options)
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	doc, _, err := readDocument(req.Reader, cfg)
	if err != nil {
		return fmt.Errorf("render terminal: %w", err)
	}
	out := renderTerminal(doc, req.Width, theme.Styles(), cfg.osc8)
	if out == "" {
		return nil
	}
	if _, err := io.WriteString(req.Writer, out); err != nil {
		return fmt.Errorf("render terminal: write: %w", err)
	}
	return nil
}

type terminalWriter struct {
	styles Styles
	width  int
	osc8   bool
	sb     strings.Builder
}

// renderTerminal writes every block followed by a newline and separates
// blocks with one blank line.
func renderTerminal(doc Node, width int, styles Styles, osc8 bool) string {
	w := terminalWriter{styles: styles, width: width, osc8: osc8}
	for i, block := range doc.Children {
		if i > 0 {
			w.sb.WriteByte('\n')
		}
		w.block(block)
	}
	return w.sb.String()
}

func (w *terminalWriter) block(n Node) {
	switch n.Kind {
	case NodeHeading:
		st := w.styles.Heading[headingIndex(n.Level)]
		marker := applyStyle(st, strings.Repeat("#", n.Level)+" ")
		w.writeLine(w.wrap(marker+w.inlines(n.Children, st), 0))
	case NodeParagraph:
		w.writeLine(w.wrap(w.inlines(n.Children, w.styles.Text), 0))
	case NodeUnorderedList:
		for _, item := range n.Children {
			w.listItem(item)
		}
	case NodeCodeBlock:
		body := strings.TrimSuffix(n.Text, "\n")
		for _, line := range strings.Split(body, "\n") {
			w.writeLine(applyStyle(w.styles.CodeBlock, line))
		}
	}
}

func (w *terminalWriter) listItem(item Node) {
	marker := applyStyle(w.styles.ListMarker, "-") + " "
	lines := strings.Split(w.wrap(w.inlines(item.Children, w.styles.Text), listIndent), "\n")
	w.writeLine(marker + lines[0])
	if len(lines) > 1 {
		w.writeLine(indent.String(strings.Join(lines[1:], "\n"), listIndent))
	}
}

func (w *terminalWriter) inlines(children []Node, base Style) string {
	var b strings.Builder
	for _, c := range children {
		switch c.Kind {
		case NodeText:
			b.WriteString(applyStyle(base, c.Text))
		case NodeBold:
			b.WriteString(w.inlines(c.Children, combineStyles(base, w.styles.Strong)))
		case NodeItalic:
			b.WriteString(w.inlines(c.Children, combineStyles(base, w.styles.Emphasis)))
		case NodeLink:
			b.WriteString(w.link(c, base))
		}
	}
	return b.String()
}

func (w *terminalWriter) link(n Node, base Style) string {
	label := applyStyle(combineStyles(base, w.styles.LinkText), n.Text)
	if w.osc8 {
		return osc8Link(n.URL, label)
	}
	url := fitURL(n.URL, w.width-2)
	return label + applyStyle(base, " ") + applyStyle(w.styles.LinkURL, "("+url+")")
}

func (w *terminalWriter) wrap(text string, indentWidth int) string {
	if w.width <= 0 {
		return text
	}
	limit := w.width - indentWidth
	if limit < 1 {
		limit = 1
	}
	return wordwrap.String(text, limit)
}

func (w *terminalWriter) writeLine(s string) {
	w.sb.WriteString(s)
	w.sb.WriteByte('\n')
}

func applyStyle(st Style, text string) string {
	if st.Prefix == "" || text == "" {
		return text
	}
	return st.Prefix + text + palette.Reset
}

func headingIndex(level int) int {
	switch {
	case level < 1:
		return 0
	case level > 6:
		return 5
	}
	return level - 1
}
