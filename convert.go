package mdhtml

import (
	"bytes"
	"fmt"
	"io"
)

// ConvertRequest configures Convert.
type ConvertRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []RenderOption
}

// Convert reads markup from Reader and writes HTML to Writer.
//
// The input is read fully into memory and validated before conversion. A
// trailing newline is appended to non-empty output.
func Convert(req ConvertRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("convert: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("convert: writer is nil")
	}
	cfg := newRenderConfig(req.Options)
	doc, fm, err := readDocument(req.Reader, cfg)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	out := renderHTML(doc, cfg)
	if cfg.standalone {
		out = standaloneDocument(cfg.documentTitle(fm), out)
	}
	if out == "" {
		return nil
	}
	if _, err := io.WriteString(req.Writer, out+"\n"); err != nil {
		return fmt.Errorf("convert: write: %w", err)
	}
	return nil
}

var crlf = []byte("\r\n")

// readDocument reads, validates and parses the whole input.
func readDocument(r io.Reader, cfg renderConfig) (Node, frontMatter, error) {
	src, fm, err := readSource(r, cfg)
	if err != nil {
		return Node{}, frontMatter{}, err
	}
	return Parse(Lex(src)), fm, nil
}

// readSource reads and validates the whole input, normalizes line endings and
// splits off the front matter when cfg enables it.
func readSource(r io.Reader, cfg renderConfig) (string, frontMatter, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", frontMatter{}, fmt.Errorf("read: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return "", frontMatter{}, err
	}
	if bytes.Contains(src, crlf) {
		src = bytes.ReplaceAll(src, crlf, []byte("\n"))
	}
	var fm frontMatter
	if cfg.frontMatter {
		fm, src, _ = splitFrontMatter(src)
	}
	return string(src), fm, nil
}
