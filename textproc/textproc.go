// Package textproc provides the pure text preparation steps of the
// pipeline: input normalization, display truncation, and the extractive
// summary used when every generative model is exhausted.
package textproc

import (
	"errors"
	"strings"
)

// MinInputLength is the shortest pasted text accepted for processing.
const MinInputLength = 50

// ErrTextTooShort reports input below MinInputLength after normalization.
var ErrTextTooShort = errors.New("text too short")

// NormalizeInput collapses internal whitespace and rejects text that is
// empty or too short to summarize.
func NormalizeInput(text string) (string, error) {
	normalized := strings.Join(strings.Fields(text), " ")
	if len(normalized) < MinInputLength {
		return "", ErrTextTooShort
	}
	return normalized, nil
}

// TruncateForDisplay caps text at limit characters, appending an ellipsis
// when anything was cut.
func TruncateForDisplay(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}

// ExtractiveSummary produces a summary without any model: the first three
// sentences when the text has that many, otherwise the text truncated to
// maxLength characters. It never fails.
func ExtractiveSummary(text string, maxLength int) string {
	sentences := splitSentences(text)
	if len(sentences) >= 3 {
		return strings.Join(sentences[:3], ". ") + "."
	}
	if len(text) > maxLength {
		return text[:maxLength] + "..."
	}
	return text
}

func splitSentences(text string) []string {
	var out []string
	for _, s := range strings.Split(text, ".") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
