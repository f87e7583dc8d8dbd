// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package incomplete

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/legal-lexicon/internal/jsonio"
	"github.com/pdiddy/legal-lexicon/pkg/types"
)

func reason(s string) *string { return &s }

func sampleSentences() []types.SentenceEntry {
	return []types.SentenceEntry{
		{ID: "b1_1_s001", NL: "Artikel 1", EN: "Article 1", Document: "Book 1"},
		{ID: "b1_2_s001", NL: "De rechter beslist.", EN: "", Document: "Book 1",
			Incomplete: true, IncompleteReason: reason("Empty translation")},
		{ID: "b4_1_s001", NL: "Arbitrage", EN: "Arbitrage", Document: "Book 4",
			Incomplete: true, IncompleteReason: reason("English is copy of Dutch")},
		{ID: "b4_2_s001", NL: "Het scheidsgerecht.", EN: "", Document: "Book 4",
			Incomplete: true, IncompleteReason: reason("Empty translation")},
	}
}

func newWorkflow(t *testing.T) (*Workflow, types.IncompleteConfig, *observer.ObservedLogs) {
	t.Helper()
	cfg := types.NewLayout(t.TempDir()).Incomplete()
	core, logs := observer.New(zapcore.WarnLevel)
	return New(cfg, zap.New(core).Sugar()), cfg, logs
}

func TestToEntries(t *testing.T) {
	entries := ToEntries(sampleSentences())
	require.Len(t, entries, 3)
	assert.Equal(t, types.IncompleteEntry{
		ID:       "b1_2_s001",
		NL:       "De rechter beslist.",
		Reason:   "Empty translation",
		Document: "Book 1",
	}, entries[0])

	assert.NotNil(t, ToEntries(nil))
}

func TestList(t *testing.T) {
	wf, cfg, _ := newWorkflow(t)
	require.NoError(t, jsonio.WriteJSON(cfg.SentencesPath, sampleSentences()))

	var out bytes.Buffer
	summary, err := wf.List(&out)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Sentences)
	assert.Equal(t, 3, summary.Incomplete)
	assert.Equal(t, []Count{{"Empty translation", 2}, {"English is copy of Dutch", 1}}, summary.ByReason)
	assert.Equal(t, []Count{{"Book 1", 1}, {"Book 4", 2}}, summary.ByDocument)

	data, err := os.ReadFile(cfg.ListPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"en-translated": ""`)
	assert.Contains(t, string(data), `"notes": ""`)
}

func TestListRequiresSentences(t *testing.T) {
	wf, _, _ := newWorkflow(t)
	_, err := wf.List(&bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, jsonio.ErrMissing))
}

func TestApply(t *testing.T) {
	wf, cfg, _ := newWorkflow(t)
	require.NoError(t, jsonio.WriteJSON(cfg.SentencesPath, sampleSentences()))
	original, err := os.ReadFile(cfg.SentencesPath)
	require.NoError(t, err)

	list := ToEntries(sampleSentences())
	list[0].ENTranslated = "  The court decides.  "
	list[1].ENTranslated = "Arbitration"
	list[2].ENTranslated = "   "
	require.NoError(t, jsonio.WriteJSON(cfg.ListPath, list))

	var out bytes.Buffer
	summary, err := wf.Apply(&out)
	require.NoError(t, err)
	assert.Equal(t, ApplySummary{Manual: 2, Applied: 2, Total: 4, StillIncomplete: 1}, summary)
	assert.Equal(t, 3, summary.Completed())
	assert.Contains(t, out.String(), "completed:        3 (75.0%)")

	backup, err := os.ReadFile(cfg.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, original, backup)

	updated, err := jsonio.LoadRequired[types.SentenceEntry](cfg.SentencesPath)
	require.NoError(t, err)
	assert.Equal(t, "The court decides.", updated[1].EN)
	assert.False(t, updated[1].Incomplete)
	assert.Nil(t, updated[1].IncompleteReason)
	assert.Equal(t, "Arbitration", updated[2].EN)
	assert.True(t, updated[3].Incomplete)
}

func TestApplyWithoutManualTranslations(t *testing.T) {
	wf, cfg, logs := newWorkflow(t)
	require.NoError(t, jsonio.WriteJSON(cfg.SentencesPath, sampleSentences()))
	require.NoError(t, jsonio.WriteJSON(cfg.ListPath, ToEntries(sampleSentences())))
	before, err := os.ReadFile(cfg.SentencesPath)
	require.NoError(t, err)

	summary, err := wf.Apply(&bytes.Buffer{})
	require.NoError(t, err)
	assert.Zero(t, summary.Applied)
	assert.Equal(t, 3, summary.StillIncomplete)
	assert.Equal(t, 1, logs.FilterMessage("no manual translations found").Len())

	after, err := os.ReadFile(cfg.SentencesPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.FileExists(t, cfg.BackupPath)
}

func TestApplyRequiresList(t *testing.T) {
	wf, cfg, _ := newWorkflow(t)
	require.NoError(t, jsonio.WriteJSON(cfg.SentencesPath, sampleSentences()))
	_, err := wf.Apply(&bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, jsonio.ErrMissing))
	assert.NoFileExists(t, cfg.BackupPath)
}

func TestAnalyzeParagraph(t *testing.T) {
	longNL := "Artikel 12 tot en met 15 van deze titel zijn van toepassing op het verzoekschrift."
	tests := []struct {
		name   string
		nl, en string
		reason string
	}{
		{
			name:   "mutatis mutandis",
			nl:     "De artikelen 20 en 21 zijn van overeenkomstige toepassing.",
			en:     "Articles 20 and 21 apply",
			reason: ReasonMutatisMutandis,
		},
		{
			name:   "apply without clause",
			nl:     "De artikelen 20 en 21 gelden voor elke procedure in eerste aanleg.",
			en:     "Articles 20 and 21 always apply",
			reason: "",
		},
		{
			name:   "much shorter overrides mutatis mutandis",
			nl:     longNL,
			en:     "Articles apply",
			reason: ReasonMuchShorter,
		},
		{
			name:   "ellipsis",
			nl:     "De rechter kan partijen oproepen.",
			en:     "The court may summon ...",
			reason: ReasonEllipsis,
		},
		{
			name:   "open parenthesis",
			nl:     "De rechter kan partijen oproepen (artikel 87).",
			en:     "The court may summon the parties (",
			reason: ReasonEllipsis,
		},
		{
			name:   "short dutch never much shorter",
			nl:     "Zie artikel 4.",
			en:     "See.",
			reason: "",
		},
		{
			name:   "complete",
			nl:     "De rechter kan partijen oproepen.",
			en:     "The court may summon the parties.",
			reason: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := AnalyzeParagraph(types.SourceRecord{TUID: "x", Source: tt.nl, Target: tt.en, Document: "Book 1"})
			if tt.reason == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.reason, f.Reason)
			assert.Equal(t, len([]rune(tt.nl)), f.NLLen)
			assert.Equal(t, len([]rune(tt.en)), f.ENLen)
			assert.Equal(t, "x", f.TUID)
		})
	}
}

func TestWorkflowAnalyze(t *testing.T) {
	wf, cfg, logs := newWorkflow(t)
	book := `[
  {"tuid": "b1_7", "source": "De rechter kan partijen oproepen.", "target": "The court may summon ...", "document": "Book 1"},
  {"tuid": "b1_8", "source": "De rechter kan partijen oproepen.", "target": "The court may summon the parties.", "document": "Book 1"}
]`
	require.NoError(t, jsonio.WriteFile(cfg.BookPaths[0], []byte(book)))

	var out bytes.Buffer
	summary, err := wf.Analyze(&out)
	require.NoError(t, err)
	assert.Equal(t, AnalyzeSummary{Files: 1, Missing: 2, Findings: 1, ByReason: []Count{{ReasonEllipsis, 1}}}, summary)
	assert.Equal(t, 2, logs.FilterMessage("book file not found, skipping").Len())

	findings, err := jsonio.LoadRequired[types.IncompleteFinding](cfg.ReportPath)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "b1_7", findings[0].TUID)
	assert.True(t, strings.HasPrefix(filepath.Base(cfg.ReportPath), "incomplete-translations-report"))
}
