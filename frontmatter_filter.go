package mdhtml

import "bytes"

// frontMatter is a leading metadata block split off the input.
type frontMatter struct {
	delim string
	meta  []byte
}

// splitFrontMatter separates a leading metadata block delimited by "---",
// "+++" or ";;;" lines from the body. The block is only recognized when its
// first line looks like metadata and a closing delimiter exists; otherwise ok
// is false and body is src.
func splitFrontMatter(src []byte) (fm frontMatter, body []byte, ok bool) {
	openLine, openNext, ok := nextLine(src, 0)
	if !ok {
		return frontMatter{}, src, false
	}
	delim, isFrontMatter := parseOpeningFrontMatterDelimiter(openLine)
	if !isFrontMatter {
		return frontMatter{}, src, false
	}
	secondLine, secondNext, ok := nextLine(src, openNext)
	if !ok || !frontMatterMetadataLikely(secondLine) {
		return frontMatter{}, src, false
	}
	closeStart, closeNext, found := findClosingFrontMatterDelimiter(src, secondNext, delim)
	if !found {
		return frontMatter{}, src, false
	}
	fm = frontMatter{delim: string(delim), meta: src[openNext:closeStart]}
	return fm, bytes.TrimLeft(src[closeNext:], "\r\n"), true
}

func nextLine(src []byte, start int) ([]byte, int, bool) {
	if start >= len(src) {
		return nil, 0, false
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src), true
	}
	lineEnd := start + i
	return trimCR(src[start:lineEnd]), lineEnd + 1, true
}

func parseOpeningFrontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

// findClosingFrontMatterDelimiter returns the offsets where the closing
// delimiter line starts and where the line after it starts.
func findClosingFrontMatterDelimiter(src []byte, start int, delim []byte) (int, int, bool) {
	for idx := start; idx < len(src); {
		line, next, ok := nextLine(src, idx)
		if !ok {
			return 0, 0, false
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return idx, next, true
		}
		idx = next
	}
	return 0, 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
