// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/legal-lexicon/pkg/types"
)

func tr(text, sourceType string) types.Translation {
	return types.Translation{
		Translation: text,
		Lang:        "en-gb",
		Source:      "Unknown",
		SourceType:  sourceType,
		License:     "CC BY 4.0",
	}
}

func TestDeduplicateTranslationsGlossaryCollapse(t *testing.T) {
	in := []types.Translation{
		tr("legal interest", types.LabelCivilProcedureGlossary),
		tr("legal interest", types.LabelLegalGlossary),
	}
	out := DeduplicateTranslations(in)
	require.Len(t, out, 1)
	assert.Equal(t, types.LabelLegalGlossary, out[0].SourceType)
	assert.Equal(t, "legal interest", out[0].Translation)
}

func TestDeduplicateTranslationsRelabelsFirstMember(t *testing.T) {
	a := tr("claim", types.LabelCivilProcedureGlossary)
	b := tr("claim", types.LabelCivilProcedureGlossary)
	out := DeduplicateTranslations([]types.Translation{a, b})
	require.Len(t, out, 1)
	assert.Equal(t, types.LabelLegalGlossary, out[0].SourceType)
}

func TestDeduplicateTranslationsKeepsNonGlossaryDuplicates(t *testing.T) {
	in := []types.Translation{
		tr("claim", types.LabelLegalDictionary),
		tr("claim", types.LabelLegalDictionary),
	}
	out := DeduplicateTranslations(in)
	assert.Equal(t, in, out)
}

func TestDeduplicateTranslationsDistinctFields(t *testing.T) {
	base := tr("claim", types.LabelLegalGlossary)

	withContext := base
	withContext.Context = strPtr("art. 3:296 BW")
	otherContext := base
	otherContext.Context = strPtr("art. 21 Rv")

	withDef := base
	withDef.Definition = strPtr("")

	reviewed := base
	reviewed.SMEReviewed = true

	otherLicense := base
	otherLicense.License = "Unknown"

	tests := []struct {
		name string
		a, b types.Translation
	}{
		{"context differs", withContext, otherContext},
		{"null context vs set", base, withContext},
		{"null definition vs empty", base, withDef},
		{"review flag differs", base, reviewed},
		{"license differs", base, otherLicense},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := DeduplicateTranslations([]types.Translation{tt.a, tt.b})
			assert.Len(t, out, 2)
		})
	}
}

func TestDeduplicateTranslationsGroupOrder(t *testing.T) {
	in := []types.Translation{
		tr("claim", types.LabelCivilProcedureGlossary),
		tr("demand", types.LabelLegalDictionary),
		tr("suit", types.LabelLegalDictionary),
		tr("demand", types.LabelLegalDictionary),
		tr("claim", types.LabelLegalGlossary),
	}
	out := DeduplicateTranslations(in)

	var got []string
	for _, x := range out {
		got = append(got, x.Translation+"/"+x.SourceType)
	}
	assert.Equal(t, []string{
		"claim/Legal Glossary",
		"demand/Legal Dictionary",
		"demand/Legal Dictionary",
		"suit/Legal Dictionary",
	}, got)
}

func TestDeduplicateTranslationsEmpty(t *testing.T) {
	assert.Empty(t, DeduplicateTranslations(nil))
}

func TestDeduplicateTermsNonIncrease(t *testing.T) {
	terms := []*types.TermRecord{
		{Term: "procesbelang", Translations: []types.Translation{
			tr("legal interest", types.LabelCivilProcedureGlossary),
			tr("legal interest", types.LabelLegalGlossary),
		}},
		{Term: "vordering", Translations: []types.Translation{
			tr("claim", types.LabelLegalDictionary),
		}},
		{Term: "leeg", Translations: []types.Translation{}},
	}
	before := make([]int, len(terms))
	for i, term := range terms {
		before[i] = len(term.Translations)
	}

	stats := DeduplicateTerms(terms)

	for i, term := range terms {
		assert.LessOrEqual(t, len(term.Translations), before[i])
	}
	assert.Equal(t, 1, stats.TermsWithDuplicates)
	assert.Equal(t, 3, stats.Before)
	assert.Equal(t, 2, stats.After)
	assert.Equal(t, 1, stats.Removed())
	assert.Equal(t, []TermChange{{Term: "procesbelang", Before: 2, After: 1}}, stats.Changes)
}
