package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// bracketPattern matches parenthesized or bracketed segments up to the first
// closing bracket of the same kind, so "Song (Live) [Remaster]" drops both
// annotations but keeps the text between them.
var bracketPattern = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)

// NormalizeTrackName reduces a free-text track label to its canonical
// matching form: bracketed segments removed, punctuation stripped, case
// folded, and whitespace collapsed to single spaces. Underscores and digits
// survive because they are significant in filenames.
func NormalizeTrackName(raw string) string {
	name := bracketPattern.ReplaceAllString(raw, "")

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	folded := cases.Fold().String(b.String())
	return strings.Join(strings.Fields(folded), " ")
}

// TokenSet returns the deduplicated whitespace-delimited tokens of s. Callers
// normalize s first; TokenSet itself does no case folding.
func TokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}
	return set
}
