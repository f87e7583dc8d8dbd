// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/legal-lexicon/pkg/types"
)

const glossaryJSON = `[
  {"source": "procesbelang", "target": "legal interest", "license": "CC BY 4.0", "sme-reviewed": "no"},
  {"source": "Vordering", "target": "claim", "license": "CC BY 4.0", "author": "Rechtspraak"},
  {"source": "hoger beroep", "target": "appeal", "license": "CC BY 4.0"}
]`

const dictionaryJSON = `[
  {"source": "vordering", "target": "claim", "license": "CC BY 4.0",
   "lang-target-dict": "A demand for relief brought before the court.", "sme-reviewed": true}
]`

const legalGlossaryJSON = `[
  {"source": "Procesbelang", "target": "legal interest", "license": "CC BY 4.0"},
  {"source": "arrest", "target": "judgment", "license": "CC0"}
]`

const examplesJSON = `[
  {"source": "De eiser heeft procesbelang bij deze vordering.", "target": "The claimant has a legal interest in this claim.", "license": "CC BY 4.0", "premium": "Yes"},
  {"source": "Het hoger beroep is ingesteld.", "target": "The appeal has been lodged.", "premium": false},
  {"source": "", "target": "ignored"},
  {"source": "Geen enkele treffer.", "target": "No hit at all."}
]`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// setupData writes the merge inputs under a temporary data directory and
// returns the layout's merge config.
func setupData(t *testing.T) types.MergeConfig {
	t.Helper()
	cfg := types.NewLayout(t.TempDir()).Merge()
	writeFile(t, cfg.GlossaryPath, glossaryJSON)
	writeFile(t, cfg.DictionaryPath, dictionaryJSON)
	writeFile(t, cfg.LegalGlossaryPath, legalGlossaryJSON)
	writeFile(t, cfg.ExamplesPath, examplesJSON)
	return cfg
}

func testLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}

func termByName(t *testing.T, terms []types.TermRecord, name string) types.TermRecord {
	t.Helper()
	for _, term := range terms {
		if NormalizeTerm(term.Term) == NormalizeTerm(name) {
			return term
		}
	}
	t.Fatalf("term %q not found", name)
	return types.TermRecord{}
}

func TestPipelineBuild(t *testing.T) {
	cfg := setupData(t)
	log, logs := testLogger()

	terms, summary, err := NewPipeline(cfg, log).Build()
	require.NoError(t, err)
	assert.Zero(t, logs.FilterMessage("source not found, skipping").Len())

	var names []string
	for _, term := range terms {
		names = append(names, term.Term)
	}
	assert.Equal(t, []string{"arrest", "hoger beroep", "procesbelang", "Vordering"}, names)

	proces := termByName(t, terms, "procesbelang")
	assert.Equal(t, "term_00001", proces.ID)
	require.Len(t, proces.Translations, 1, "glossary duplicates collapse")
	assert.Equal(t, types.LabelLegalGlossary, proces.Translations[0].SourceType)
	require.Len(t, proces.Examples, 1)
	assert.Equal(t, "ex_00001_001", proces.Examples[0].ID)
	assert.True(t, proces.Examples[0].Premium)

	vordering := termByName(t, terms, "vordering")
	assert.Equal(t, "term_00002", vordering.ID)
	require.Len(t, vordering.Translations, 2, "differing author and definition keep both")
	assert.Equal(t, types.LabelCivilProcedureGlossary, vordering.Translations[0].SourceType)
	assert.Equal(t, "Rechtspraak", vordering.Translations[0].Source)
	assert.Equal(t, types.LabelLegalDictionary, vordering.Translations[1].SourceType)
	require.NotNil(t, vordering.Translations[1].Definition)
	assert.True(t, vordering.Translations[1].SMEReviewed)
	assert.Empty(t, vordering.Examples)

	beroep := termByName(t, terms, "hoger beroep")
	require.Len(t, beroep.Examples, 1)
	assert.Equal(t, "ex_00003_001", beroep.Examples[0].ID)
	assert.False(t, beroep.Examples[0].Premium)

	assert.Equal(t, 4, summary.Terms)
	assert.Equal(t, 5, summary.Translations)
	assert.InDelta(t, 1.25, summary.AverageTranslations(), 1e-9)
	assert.Equal(t, 1, summary.Dedup.Removed())
	assert.Equal(t, 2, summary.Matched)
	assert.Equal(t, 1, summary.Unmatched)
	assert.Equal(t, 2, summary.Examples)
	assert.Equal(t, 2, summary.TermsWithExamples)
	assert.Equal(t, 1, summary.TermsWithDefinitions)
	assert.Equal(t, 1, summary.PremiumExamples)
	assert.Equal(t, 1, summary.FreeExamples)
	assert.Equal(t, []LicenseCount{{"CC BY 4.0", 4}, {"CC0", 1}}, summary.Licenses)
}

func TestPipelineRunIsIdempotent(t *testing.T) {
	cfg := setupData(t)
	log, _ := testLogger()

	var out bytes.Buffer
	_, err := NewPipeline(cfg, log).Run(&out)
	require.NoError(t, err)
	first, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "unique terms:          4")

	_, err = NewPipeline(cfg, log).Run(&bytes.Buffer{})
	require.NoError(t, err)
	second, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPipelineRunOutputShape(t *testing.T) {
	cfg := setupData(t)
	log, _ := testLogger()

	_, err := NewPipeline(cfg, log).Run(&bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 4)
	first := raw[0]
	assert.Equal(t, "arrest", first["term"])
	assert.Equal(t, map[string]any{}, first["metadata"])
	assert.Equal(t, []any{}, first["examples"])

	trs := first["translations"].([]any)
	require.Len(t, trs, 1)
	translation := trs[0].(map[string]any)
	assert.Contains(t, translation, "definition")
	assert.Nil(t, translation["definition"])
	assert.Contains(t, translation, "context")
	assert.Equal(t, "Unknown", translation["source"])
}

func TestPipelineMissingSourcesWarn(t *testing.T) {
	cfg := types.NewLayout(t.TempDir()).Merge()
	writeFile(t, cfg.GlossaryPath, glossaryJSON)
	log, logs := testLogger()

	terms, summary, err := NewPipeline(cfg, log).Build()
	require.NoError(t, err)
	assert.Len(t, terms, 3)
	assert.Equal(t, 3, logs.FilterMessage("source not found, skipping").Len())
	assert.Zero(t, summary.Matched)

	var missing []string
	for _, src := range summary.Sources {
		if !src.Found {
			missing = append(missing, src.Label)
		}
	}
	assert.Equal(t, []string{types.LabelLegalDictionary, types.LabelLegalGlossary, "Examples"}, missing)
}

func TestPipelineMalformedSourceAborts(t *testing.T) {
	cfg := setupData(t)
	writeFile(t, cfg.LegalGlossaryPath, `[{"source": "arrest",`)
	log, _ := testLogger()

	_, err := NewPipeline(cfg, log).Run(&bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), cfg.LegalGlossaryPath)

	_, statErr := os.Stat(cfg.OutputPath)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "no output is written on failure")
}

func TestSummaryAverageWithoutTerms(t *testing.T) {
	assert.Zero(t, Summary{}.AverageTranslations())
}
