// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// NormalizeTerm returns the matching key for a term: trimmed and lowercased.
func NormalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isWordRune matches letters, numbers and underscore.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// punctuation removes every rune that is neither a word rune nor whitespace.
var punctuation = runes.Remove(runes.Predicate(func(r rune) bool {
	return !isWordRune(r) && !unicode.IsSpace(r)
}))

// cleanCandidate lowercases s and strips punctuation and symbols, keeping
// the spaces between words of a phrase.
func cleanCandidate(s string) string {
	out, _, err := transform.String(punctuation, strings.ToLower(s))
	if err != nil {
		return ""
	}
	return out
}

// Minimum cleaned lengths (exclusive) for a span to be tried as a term.
const (
	minUnigramLen = 4
	minBigramLen  = 8
	minTrigramLen = 12
)

// Candidates returns the spans of sentence that may name a term, in scan
// order: every qualifying single word, then every 2-word phrase, then
// every 3-word phrase. Spans are cleaned of punctuation; a span whose
// cleaned form does not exceed the minimum length for its width is
// skipped, and repeated spans keep only their first position.
func Candidates(sentence string) []string {
	words := strings.Fields(sentence)
	seen := make(map[string]bool)
	var out []string

	add := func(span string, minLen int) {
		c := cleanCandidate(span)
		if utf8.RuneCountInString(c) <= minLen || seen[c] {
			return
		}
		seen[c] = true
		out = append(out, c)
	}

	for _, w := range words {
		add(w, minUnigramLen)
	}
	for i := 0; i+1 < len(words); i++ {
		add(words[i]+" "+words[i+1], minBigramLen)
	}
	for i := 0; i+2 < len(words); i++ {
		add(words[i]+" "+words[i+1]+" "+words[i+2], minTrigramLen)
	}
	return out
}
