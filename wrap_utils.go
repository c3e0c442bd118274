package mdhtml

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// fitURL shortens a link target for display within limit columns, first by
// dropping the scheme and then by truncating with an ellipsis.
func fitURL(url string, limit int) string {
	if limit <= 0 || ansi.PrintableRuneWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		trimmed := url[idx+3:]
		if ansi.PrintableRuneWidth(trimmed) <= limit {
			return trimmed
		}
		url = trimmed
	}
	if limit == 1 {
		return "…"
	}
	return truncate.StringWithTail(url, uint(limit), "…")
}
