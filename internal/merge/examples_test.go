// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/legal-lexicon/pkg/types"
)

func aggregatorWith(terms ...string) *Aggregator {
	agg := NewAggregator()
	var records []types.SourceRecord
	for _, term := range terms {
		records = append(records, rec(term, term+" (en)"))
	}
	agg.Aggregate(LabeledSource{Label: types.LabelLegalGlossary, Records: records})
	return agg
}

func TestMatchFirstScanHitWins(t *testing.T) {
	agg := aggregatorWith("vordering", "procesbelang")
	m := NewMatcher(agg)

	id, ok := m.Match(types.SourceRecord{
		Source: "De eiser heeft procesbelang bij deze vordering.",
		Target: "The claimant has a legal interest in this claim.",
	})
	require.True(t, ok)

	procesbelang, _ := agg.Lookup("procesbelang")
	vordering, _ := agg.Lookup("vordering")
	assert.Equal(t, procesbelang.ID, id)
	require.Len(t, procesbelang.Examples, 1)
	assert.Empty(t, vordering.Examples, "an example attaches to one term only")

	ex := procesbelang.Examples[0]
	assert.Equal(t, "ex_00002_001", ex.ID)
	assert.Equal(t, "De eiser heeft procesbelang bij deze vordering.", ex.NL)
	assert.Equal(t, "The claimant has a legal interest in this claim.", ex.EN)
	assert.Equal(t, types.DefaultAuthor, ex.Source)
	assert.Equal(t, types.DefaultLicense, ex.License)
	assert.False(t, ex.Premium)
	assert.Nil(t, ex.Context)
}

func TestMatchPhrase(t *testing.T) {
	agg := aggregatorWith("hoger beroep")
	m := NewMatcher(agg)

	_, ok := m.Match(types.SourceRecord{Source: "Tegen dit vonnis staat hoger beroep open."})
	assert.True(t, ok)
	term, _ := agg.Lookup("hoger beroep")
	assert.Len(t, term.Examples, 1)
}

func TestMatchShortTermsNeverMatch(t *testing.T) {
	// "akte" has four characters and is below the unigram threshold.
	agg := aggregatorWith("akte")
	_, ok := NewMatcher(agg).Match(types.SourceRecord{Source: "Een akte is opgemaakt."})
	assert.False(t, ok)
}

func TestMatchAllCountersAndStats(t *testing.T) {
	agg := aggregatorWith("dagvaarding", "verzet")
	examples := []types.SourceRecord{
		{Source: "De dagvaarding wordt betekend.", Premium: types.StringFlag("yes"), Author: "HR", License: "CC0"},
		{Source: "   "},
		{Source: "Tegen het verstekvonnis staat verzet open."},
		{Source: "Niets te vinden hier."},
		{Source: "Een tweede dagvaarding volgt.", SMEReviewed: types.BoolFlag(true)},
	}

	stats := NewMatcher(agg).MatchAll(examples)
	assert.Equal(t, MatchStats{Matched: 3, Unmatched: 1}, stats)

	dagvaarding, _ := agg.Lookup("dagvaarding")
	require.Len(t, dagvaarding.Examples, 2)
	assert.Equal(t, "ex_00001_001", dagvaarding.Examples[0].ID)
	assert.Equal(t, "ex_00001_002", dagvaarding.Examples[1].ID)
	assert.True(t, dagvaarding.Examples[0].Premium)
	assert.Equal(t, "HR", dagvaarding.Examples[0].Source)
	assert.Equal(t, "CC0", dagvaarding.Examples[0].License)
	assert.True(t, dagvaarding.Examples[1].SMEReviewed)

	verzet, _ := agg.Lookup("verzet")
	require.Len(t, verzet.Examples, 1)
	assert.Equal(t, "ex_00002_001", verzet.Examples[0].ID)
}

func TestExampleSingleAttachment(t *testing.T) {
	agg := aggregatorWith("eiser", "gedaagde", "vordering", "rechter", "vonnis")
	examples := []types.SourceRecord{
		{Source: "De eiser en de gedaagde verschijnen."},
		{Source: "De rechter wijst de vordering toe bij vonnis."},
		{Source: "Het vonnis bindt eiser en gedaagde."},
	}
	NewMatcher(agg).MatchAll(examples)

	claims := make(map[string]int)
	for _, term := range agg.Terms() {
		for _, ex := range term.Examples {
			claims[ex.ID]++
		}
	}
	assert.Len(t, claims, 3)
	for id, n := range claims {
		assert.Equal(t, 1, n, id)
	}
}
