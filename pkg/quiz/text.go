package quiz

import (
	"strings"
	"unicode"
)

// DefaultSummaryLength is the max length of a summary shown in a question, in characters
const DefaultSummaryLength = 220

const ellipsis = " …"

// Truncate shortens text to at most maxLen characters at a word boundary and appends an ellipsis.
// The trailing partial word is dropped together with the whitespace before it. If the cut part has
// no whitespace at all it is kept as is.
func Truncate(text string, maxLen int) string {
	if text == "" {
		return ""
	}

	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	cut := string(runes[:max(maxLen, 0)])
	if strings.IndexFunc(cut, unicode.IsSpace) >= 0 {
		cut = strings.TrimRightFunc(cut, func(r rune) bool { return !unicode.IsSpace(r) })
		cut = strings.TrimRightFunc(cut, unicode.IsSpace)
	}
	return cut + ellipsis
}
