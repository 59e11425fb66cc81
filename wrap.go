package wmf

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

// fitURL shortens a URL to fit the given printable width, first by
// dropping the scheme, then by truncating with an ellipsis.
func fitURL(url string, limit int) string {
	if ansi.PrintableRuneWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		if trimmed := url[idx+3:]; ansi.PrintableRuneWidth(trimmed) <= limit {
			return trimmed
		}
	}
	return truncateWithEllipsis(url, limit)
}

func truncateWithEllipsis(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}
