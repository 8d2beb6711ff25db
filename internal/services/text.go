package services

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	slugSeparators = regexp.MustCompile(`[\s_]+`)
	slugStrip      = regexp.MustCompile(`[^\w\x{0600}-\x{06FF}-]+`)
	slugHyphenRuns = regexp.MustCompile(`-{2,}`)
	blankLineRuns  = regexp.MustCompile(`\n{2,}`)
)

// Slugify derives a URL-safe lowercase identifier from a title or label.
// Arabic letters are kept as-is; everything else outside [A-Za-z0-9_-] is
// stripped after whitespace and underscores collapse to hyphens.
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = slugSeparators.ReplaceAllString(s, "-")
	s = slugStrip.ReplaceAllString(s, "")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NormalizeParagraphs turns raw body text into the pre-rendered paragraph
// markup posts carry: blank-line runs split paragraphs, single newlines become
// line breaks.
func NormalizeParagraphs(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "<p></p>"
	}
	s := strings.ReplaceAll(trimmed, "\r", "")
	s = blankLineRuns.ReplaceAllString(s, "</p><p>")
	s = strings.ReplaceAll(s, "\n", "<br>")
	return "<p>" + s + "</p>"
}

// Excerpt takes the first 160 characters of the raw body, with an ellipsis
// when truncated.
func Excerpt(body string) string {
	runes := []rune(body)
	if len(runes) <= 160 {
		return body
	}
	return string(runes[:160]) + "..."
}

func shortID(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}
