// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"strings"

	"github.com/pdiddy/legal-lexicon/pkg/types"
)

// glossaryMarker is the substring of a source-type that makes duplicate
// translations collapsible.
const glossaryMarker = "Glossary"

// dedupKey is the identity of a translation for deduplication. The
// source-type is not part of it.
type dedupKey struct {
	translation string
	lang        string
	hasDef      bool
	definition  string
	source      string
	license     string
	smeReviewed bool
	hasContext  bool
	context     string
}

func keyOf(t types.Translation) dedupKey {
	k := dedupKey{
		translation: t.Translation,
		lang:        t.Lang,
		source:      t.Source,
		license:     t.License,
		smeReviewed: t.SMEReviewed,
	}
	if t.Definition != nil {
		k.hasDef, k.definition = true, *t.Definition
	}
	if t.Context != nil {
		k.hasContext, k.context = true, *t.Context
	}
	return k
}

// DeduplicateTranslations collapses translations that agree on text,
// language, definition, source, license, review flag and context. A group
// of such duplicates collapses to its first member relabeled "Legal
// Glossary" when any member's source-type contains "Glossary"; otherwise
// every member is kept. Groups are emitted in order of first occurrence.
func DeduplicateTranslations(in []types.Translation) []types.Translation {
	groups := make(map[dedupKey][]types.Translation, len(in))
	var order []dedupKey
	for _, t := range in {
		k := keyOf(t)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], t)
	}

	out := make([]types.Translation, 0, len(in))
	for _, k := range order {
		group := groups[k]
		switch {
		case len(group) == 1:
			out = append(out, group[0])
		case anyGlossary(group):
			merged := group[0]
			merged.SourceType = types.LabelLegalGlossary
			out = append(out, merged)
		default:
			out = append(out, group...)
		}
	}
	return out
}

func anyGlossary(group []types.Translation) bool {
	for _, t := range group {
		if strings.Contains(t.SourceType, glossaryMarker) {
			return true
		}
	}
	return false
}

// TermChange records a term whose translation list shrank.
type TermChange struct {
	Term   string
	Before int
	After  int
}

// DedupStats summarizes deduplication over a set of terms.
type DedupStats struct {
	TermsWithDuplicates int
	Before              int
	After               int
	Changes             []TermChange
}

// Removed returns the number of translations dropped.
func (s DedupStats) Removed() int { return s.Before - s.After }

// DeduplicateTerms applies DeduplicateTranslations to every term in place.
func DeduplicateTerms(terms []*types.TermRecord) DedupStats {
	var stats DedupStats
	for _, term := range terms {
		before := len(term.Translations)
		term.Translations = DeduplicateTranslations(term.Translations)
		after := len(term.Translations)

		stats.Before += before
		stats.After += after
		if after < before {
			stats.TermsWithDuplicates++
			stats.Changes = append(stats.Changes, TermChange{Term: term.Term, Before: before, After: after})
		}
	}
	return stats
}
