// Package slug turns free text into filesystem-safe, length-bounded
// identifiers. Slugs are the on-disk identity of dishes, so the rules
// here are part of the storage contract.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength bounds slug length so derived filenames stay portable.
const MaxLength = 100

var (
	// foldAccents decomposes characters and drops combining marks and
	// control/format characters, so "Crème Brûlée" folds to "Creme Brulee".
	foldAccents = transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.In(unicode.C)),
	)

	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	separators = regexp.MustCompile(`[\s_-]+`)
)

// Slugify converts text to a lowercase identifier containing only
// [a-z0-9-]: accents are folded to ASCII, runs of separators collapse to
// a single dash, leading/trailing dashes are stripped, and the result is
// truncated to MaxLength. It is total and idempotent; empty input yields
// an empty slug, and callers supply fallback names upstream.
func Slugify(text string) string {
	text = strings.ToLower(text)

	if folded, _, err := transform.String(foldAccents, text); err == nil {
		text = folded
	}

	text = nonWord.ReplaceAllString(text, "")
	text = separators.ReplaceAllString(text, "-")
	text = strings.Trim(text, "-")

	if len(text) > MaxLength {
		text = strings.Trim(text[:MaxLength], "-")
	}
	return text
}

// SuffixIfExists returns candidate unchanged when it is absent from
// existing, otherwise the first of candidate-1, candidate-2, ... that is
// free. Deterministic: no randomness, no filesystem access.
func SuffixIfExists(candidate string, existing map[string]bool) string {
	if !existing[candidate] {
		return candidate
	}
	for i := 1; ; i++ {
		next := fmt.Sprintf("%s-%d", candidate, i)
		if !existing[next] {
			return next
		}
	}
}
