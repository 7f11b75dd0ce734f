package domain

import (
	"strings"
)

// NormalizeText prepares free text (notes, chat messages) for keyword
// matching: it trims, lowercases and collapses runs of spaces. Apostrophes
// are kept so negations like "don't" survive.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
