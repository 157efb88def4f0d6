package service

import (
	"html"
	"strings"
)

// sanitizeText HTML-escapes user supplied text and trims surrounding
// whitespace before it is stored.
func sanitizeText(s string) string {
	return strings.TrimSpace(html.EscapeString(s))
}
