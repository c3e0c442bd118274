package mdhtml

import (
	"fmt"
	"io"
	"strings"
)

// TraceMode selects the pipeline stage Trace dumps.
type TraceMode uint8

const (
	// TraceNone disables tracing.
	TraceNone TraceMode = iota
	// TraceTokens dumps the Lex output.
	TraceTokens
	// TraceTree dumps the Parse output.
	TraceTree
)

// TraceRequest configures Trace.
type TraceRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Mode    TraceMode
	Options []RenderOption
}

// Trace reads input the same way Convert does and writes the token stream or
// document tree instead of HTML. Non-empty dumps end with a newline.
func Trace(req TraceRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("trace: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("trace: writer is nil")
	}
	if req.Mode != TraceTokens && req.Mode != TraceTree {
		return fmt.Errorf("trace: unknown mode %d", req.Mode)
	}
	src, _, err := readSource(req.Reader, newRenderConfig(req.Options))
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	tokens := Lex(src)
	var out string
	if req.Mode == TraceTokens {
		out = DumpTokens(tokens)
	} else {
		out = DumpTree(Parse(tokens))
	}
	if out == "" {
		return nil
	}
	if _, err := io.WriteString(req.Writer, out+"\n"); err != nil {
		return fmt.Errorf("trace: write: %w", err)
	}
	return nil
}

// DumpTokens formats tokens one per line, for debugging the lexer.
func DumpTokens(tokens []Token) string {
	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(tok.String())
	}
	return sb.String()
}

// DumpTree formats a node and its descendants one per line, indenting
// children by two spaces per level.
func DumpTree(n Node) string {
	var sb strings.Builder
	dumpNode(&sb, n, 0)
	return sb.String()
}

func dumpNode(sb *strings.Builder, n Node, depth int) {
	if sb.Len() > 0 {
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Kind.String())
	switch n.Kind {
	case NodeHeading:
		fmt.Fprintf(sb, " Level=%d", n.Level)
	case NodeText, NodeCodeBlock:
		fmt.Fprintf(sb, " %q", n.Text)
	case NodeLink:
		fmt.Fprintf(sb, " Text=%q URL=%q", n.Text, n.URL)
	}
	for _, c := range n.Children {
		dumpNode(sb, c, depth+1)
	}
}
