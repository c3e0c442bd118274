package mdhtml

import (
	"strconv"
	"strings"
)

// escapeHTML replaces '&', '<' and '>' in one pass, so the ampersands it
// introduces are never escaped a second time.
var escapeHTML = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace

var escapeAttr = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;").Replace

// ToHTML converts markup text to HTML. It is total: every input produces
// some output and malformed constructs degrade to literal text.
func ToHTML(input string) string {
	return RenderHTML(Parse(Lex(input)))
}

// RenderHTML serializes a node and its descendants to HTML.
func RenderHTML(n Node) string {
	return renderHTML(n, renderConfig{})
}

func renderHTML(n Node, cfg renderConfig) string {
	var sb strings.Builder
	h := htmlWriter{sb: &sb, escapeURLs: cfg.escapeURLs}
	h.node(n)
	return sb.String()
}

type htmlWriter struct {
	sb         *strings.Builder
	escapeURLs bool
}

func (h htmlWriter) node(n Node) {
	switch n.Kind {
	case NodeDocument:
		h.joined(n.Children)
	case NodeHeading:
		level := strconv.Itoa(n.Level)
		h.sb.WriteString("<h" + level + ">")
		h.inlines(n.Children)
		h.sb.WriteString("</h" + level + ">")
	case NodeParagraph:
		h.wrap("<p>", n.Children, "</p>")
	case NodeBold:
		h.wrap("<strong>", n.Children, "</strong>")
	case NodeItalic:
		h.wrap("<em>", n.Children, "</em>")
	case NodeText:
		h.sb.WriteString(escapeHTML(n.Text))
	case NodeLink:
		url := n.URL
		if h.escapeURLs {
			url = escapeAttr(url)
		}
		h.sb.WriteString(`<a href="`)
		h.sb.WriteString(url)
		h.sb.WriteString(`">`)
		h.sb.WriteString(escapeHTML(n.Text))
		h.sb.WriteString("</a>")
	case NodeUnorderedList:
		h.sb.WriteString("<ul>\n")
		h.joined(n.Children)
		h.sb.WriteString("\n</ul>")
	case NodeListItem:
		h.wrap("<li>", n.Children, "</li>")
	case NodeCodeBlock:
		h.sb.WriteString("<pre><code>")
		h.sb.WriteString(escapeHTML(n.Text))
		h.sb.WriteString("</code></pre>")
	}
}

func (h htmlWriter) wrap(open string, children []Node, close string) {
	h.sb.WriteString(open)
	h.inlines(children)
	h.sb.WriteString(close)
}

func (h htmlWriter) inlines(children []Node) {
	for _, c := range children {
		h.node(c)
	}
}

func (h htmlWriter) joined(children []Node) {
	for i, c := range children {
		if i > 0 {
			h.sb.WriteByte('\n')
		}
		h.node(c)
	}
}

func standaloneDocument(title, body string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>" + escapeHTML(title) + "</title>\n")
	sb.WriteString("</head>\n<body>\n")
	if body != "" {
		sb.WriteString(body)
		sb.WriteByte('\n')
	}
	sb.WriteString("</body>\n</html>")
	return sb.String()
}
