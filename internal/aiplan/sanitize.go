package aiplan

import (
	"regexp"
	"strings"
)

// maxTitleLen caps how much of a user-written title reaches the prompt.
const maxTitleLen = 200

var (
	dashRunPattern = regexp.MustCompile(`-{3,}`)
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// SanitizeTitle strips sequences from a user-written title that could be
// mistaken for formatting or instruction boundaries by the generator:
// code fences, horizontal rules, HTML-like tags. The result is truncated
// so a single title cannot dominate the prompt.
func SanitizeTitle(s string) string {
	s = strings.ReplaceAll(s, "```", "'''")
	s = dashRunPattern.ReplaceAllString(s, "___")
	s = htmlTagPattern.ReplaceAllString(s, "")

	runes := []rune(s)
	if len(runes) > maxTitleLen {
		s = string(runes[:maxTitleLen])
	}

	return strings.TrimSpace(s)
}
