// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sentences

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// placeholder pairs the pattern text reported to translators with its
// case-insensitive matcher.
type placeholder struct {
	pattern string
	re      *regexp.Regexp
}

func newPlaceholder(pattern string) placeholder {
	return placeholder{pattern: pattern, re: regexp.MustCompile(`(?i)` + pattern)}
}

var placeholders = []placeholder{
	newPlaceholder(`\[.*?\]`),
	newPlaceholder(`TODO`),
	newPlaceholder(`TBD`),
	newPlaceholder(`XXX`),
	newPlaceholder(`\?\?\?`),
}

var asciiLetter = regexp.MustCompile(`[a-zA-Z]`)

// Length ratio bounds (English over Dutch) outside which a translation is
// considered incomplete.
const (
	minRatio = 0.3
	maxRatio = 3.0
)

// DetectIncomplete reports whether en looks like a missing or partial
// translation of nl, and why. Checks apply in order and the first failing
// one gives the reason.
func DetectIncomplete(nl, en string) (bool, string) {
	en = strings.TrimSpace(en)
	if en == "" {
		return true, "Empty translation"
	}

	for _, p := range placeholders {
		if p.re.MatchString(en) {
			return true, "Contains placeholder: " + p.pattern
		}
	}

	if strings.TrimSpace(nl) == en {
		return true, "English is copy of Dutch"
	}

	if nlLen := utf8.RuneCountInString(nl); nlLen > 0 {
		ratio := float64(utf8.RuneCountInString(en)) / float64(nlLen)
		if ratio < minRatio {
			return true, fmt.Sprintf("Too short (ratio: %.2f)", ratio)
		}
		if ratio > maxRatio {
			return true, fmt.Sprintf("Too long (ratio: %.2f)", ratio)
		}
	}

	if !asciiLetter.MatchString(en) {
		return true, "No alphabetic characters"
	}
	return false, ""
}
