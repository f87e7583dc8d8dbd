// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sources turns the open-data legal source research document into
// structured source metadata. Every source starts unreviewed, in the
// research phase.
package sources

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// MaxSources is the number of leading sections that describe confirmed
// open-data sources; later sections are ignored.
const MaxSources = 33

// Field defaults for sections that omit them.
const (
	DefaultPriority     = "MEDIUM"
	DefaultLanguages    = "Unknown"
	DefaultTerms        = "Unknown"
	DefaultLicense      = "Open Access"
	DefaultJurisdiction = "INTL"

	StatusResearch = "research_phase"
	ReviewNotes    = "Terms not yet extracted. Requires SME review before integration."
)

var (
	sectionSplit = regexp.MustCompile(`\n### \d+\.`)
	titleRe      = regexp.MustCompile(`### \d+\.\s+(.+?)(?:\n|\*\*)`)
	priorityRe   = regexp.MustCompile(`\*\*Priority:\s+(.+?)\*\*`)
	urlRe        = regexp.MustCompile(`\*\*URL:\*\*\s+(.+?)(?:\n|\*\*)`)
	languagesRe  = regexp.MustCompile(`\*\*Languages:\*\*\s+(.+?)(?:\n|\*\*)`)
	contentRe    = regexp.MustCompile(`(?s)\*\*Content:\*\*\s+(.+?)(?:\n\n|\*\*)`)
	licenseRe    = regexp.MustCompile(`\*\*License:\*\*\s+(.+?)(?:\n|✅)`)
	termsRe      = regexp.MustCompile(`\*\*Estimated Terms:\*\*\s+(.+?)(?:\n|$)`)
)

// Section is one "### N. Name" block of the research document, with the
// number it receives by position.
type Section struct {
	Number int
	Text   string
}

// Sections splits a research document at its numbered level-3 headings.
// Text before the first heading is dropped, and sections are renumbered
// by position.
func Sections(doc string) []Section {
	parts := sectionSplit.Split(doc, -1)
	out := make([]Section, 0, len(parts))
	for i, part := range parts[1:] {
		n := i + 1
		out = append(out, Section{Number: n, Text: fmt.Sprintf("### %d.", n) + part})
	}
	return out
}

// field returns the trimmed first capture of re in text.
func field(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func fieldOr(re *regexp.Regexp, text, fallback string) string {
	if v, ok := field(re, text); ok {
		return v
	}
	return fallback
}

// isFlagRune matches the globe emoji and the regional indicator symbols
// that compose flag emoji.
func isFlagRune(r rune) bool {
	return r == '\U0001F30D' || (r >= '\U0001F1E6' && r <= '\U0001F1FF')
}

// stripFlags removes trailing flag emoji and surrounding whitespace.
func stripFlags(name string) string {
	return strings.TrimSpace(strings.TrimRightFunc(name, func(r rune) bool {
		return isFlagRune(r) || unicode.IsSpace(r)
	}))
}
