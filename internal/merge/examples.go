// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"fmt"
	"strings"

	"github.com/pdiddy/legal-lexicon/pkg/types"
)

// MatchStats counts example attachment outcomes. Examples with a blank
// sentence are neither matched nor unmatched.
type MatchStats struct {
	Matched   int
	Unmatched int
}

// Matcher attaches example sentences to aggregated terms by phrase overlap.
// Per-term example counters live on the Matcher, so ids are a function of
// input order only.
type Matcher struct {
	agg      *Aggregator
	counters map[string]int
}

// NewMatcher returns a Matcher over the terms of agg.
func NewMatcher(agg *Aggregator) *Matcher {
	return &Matcher{agg: agg, counters: make(map[string]int)}
}

// Match tries to attach one example. The first candidate span of the
// sentence (see Candidates) that names a term wins; the example is
// attached to that term only. It returns the attached term's id.
func (m *Matcher) Match(rec types.SourceRecord) (string, bool) {
	sentence := strings.TrimSpace(rec.Source)
	if sentence == "" {
		return "", false
	}

	for _, cand := range Candidates(sentence) {
		term, ok := m.agg.Lookup(NormalizeTerm(cand))
		if !ok {
			continue
		}
		m.counters[term.ID]++
		id := fmt.Sprintf("ex_%s_%03d", termNumber(term.ID), m.counters[term.ID])
		term.Examples = append(term.Examples, NewExample(rec, id))
		return term.ID, true
	}
	return "", false
}

// MatchAll runs Match over examples in order.
func (m *Matcher) MatchAll(examples []types.SourceRecord) MatchStats {
	var stats MatchStats
	for _, rec := range examples {
		if strings.TrimSpace(rec.Source) == "" {
			continue
		}
		if _, ok := m.Match(rec); ok {
			stats.Matched++
		} else {
			stats.Unmatched++
		}
	}
	return stats
}

// NewExample builds the Example stored for a matched record.
func NewExample(rec types.SourceRecord, id string) types.Example {
	return types.Example{
		ID:          id,
		NL:          rec.Source,
		EN:          rec.Target,
		Source:      rec.AuthorOrUnknown(),
		License:     rec.LicenseOr(types.DefaultLicense),
		Premium:     rec.Premium.Truthy(),
		SMEReviewed: rec.SMEReviewed.Truthy(),
	}
}
