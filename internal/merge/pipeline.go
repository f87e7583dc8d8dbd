// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge builds the unified legal dictionary: it aggregates
// glossary and dictionary records into one entry per term, removes
// redundant translations, attaches example sentences, and writes the
// sorted result.
package merge

import (
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/pdiddy/legal-lexicon/internal/jsonio"
	"github.com/pdiddy/legal-lexicon/pkg/types"
)

// SourceCount records how many records one input contributed.
type SourceCount struct {
	Label   string
	Path    string
	Found   bool
	Records int
}

// LicenseCount is one row of the license breakdown.
type LicenseCount struct {
	License string
	Count   int
}

// Summary holds the statistics of a merge run.
type Summary struct {
	Sources              []SourceCount
	Terms                int
	Translations         int
	SkippedRecords       int
	Dedup                DedupStats
	Matched              int
	Unmatched            int
	Examples             int
	TermsWithExamples    int
	TermsWithDefinitions int
	PremiumExamples      int
	FreeExamples         int
	Licenses             []LicenseCount
}

// AverageTranslations returns translations per term, zero for no terms.
func (s Summary) AverageTranslations() float64 {
	if s.Terms == 0 {
		return 0
	}
	return float64(s.Translations) / float64(s.Terms)
}

// Fprint writes the human-readable summary.
func (s Summary) Fprint(w io.Writer) {
	for _, src := range s.Sources {
		if src.Found {
			fmt.Fprintf(w, "loaded  %-26s %6d records\n", src.Label, src.Records)
		} else {
			fmt.Fprintf(w, "missing %-26s %s\n", src.Label, src.Path)
		}
	}
	fmt.Fprintf(w, "\nunique terms:          %d\n", s.Terms)
	fmt.Fprintf(w, "total translations:    %d\n", s.Translations)
	fmt.Fprintf(w, "avg per term:          %.2f\n", s.AverageTranslations())
	fmt.Fprintf(w, "duplicates removed:    %d (%d terms)\n", s.Dedup.Removed(), s.Dedup.TermsWithDuplicates)
	fmt.Fprintf(w, "examples matched:      %d\n", s.Matched)
	fmt.Fprintf(w, "examples unmatched:    %d\n", s.Unmatched)
	fmt.Fprintf(w, "terms with examples:   %d\n", s.TermsWithExamples)
	fmt.Fprintf(w, "terms with definition: %d\n", s.TermsWithDefinitions)
	fmt.Fprintf(w, "examples free/premium: %d/%d\n", s.FreeExamples, s.PremiumExamples)
	if len(s.Licenses) > 0 {
		fmt.Fprintf(w, "\nlicenses:\n")
		for _, lc := range s.Licenses {
			fmt.Fprintf(w, "  %-30s %d\n", lc.License, lc.Count)
		}
	}
}

// Pipeline runs the merge job: load, aggregate, deduplicate, match
// examples, sort, write.
type Pipeline struct {
	cfg types.MergeConfig
	log *zap.SugaredLogger
}

// NewPipeline returns a Pipeline over the files named in cfg.
func NewPipeline(cfg types.MergeConfig, log *zap.SugaredLogger) *Pipeline {
	return &Pipeline{cfg: cfg, log: log}
}

// sourcePlan is the fixed provenance policy: each file and its label, in
// aggregation order.
func (p *Pipeline) sourcePlan() []LabeledSource {
	return []LabeledSource{
		{Label: types.LabelCivilProcedureGlossary, Path: p.cfg.GlossaryPath},
		{Label: types.LabelLegalDictionary, Path: p.cfg.DictionaryPath},
		{Label: types.LabelLegalGlossary, Path: p.cfg.LegalGlossaryPath},
	}
}

func (p *Pipeline) load(label, path string) ([]types.SourceRecord, SourceCount, error) {
	records, found, err := jsonio.LoadCollection[types.SourceRecord](path)
	if err != nil {
		return nil, SourceCount{}, fmt.Errorf("loading %s: %w", label, err)
	}
	if !found {
		p.log.Warnw("source not found, skipping", "label", label, "path", path)
	}
	return records, SourceCount{Label: label, Path: path, Found: found, Records: len(records)}, nil
}

// Build runs every stage except the writer and returns the sorted terms.
// Any load error aborts before a term is produced.
func (p *Pipeline) Build() ([]types.TermRecord, Summary, error) {
	var summary Summary

	sources := p.sourcePlan()
	for i := range sources {
		records, count, err := p.load(sources[i].Label, sources[i].Path)
		if err != nil {
			return nil, summary, err
		}
		sources[i].Records = records
		summary.Sources = append(summary.Sources, count)
	}
	examples, count, err := p.load("Examples", p.cfg.ExamplesPath)
	if err != nil {
		return nil, summary, err
	}
	summary.Sources = append(summary.Sources, count)

	agg := NewAggregator()
	aggStats := agg.Aggregate(sources...)
	summary.SkippedRecords = aggStats.Skipped
	if aggStats.Skipped > 0 {
		p.log.Debugw("skipped blank records", "count", aggStats.Skipped)
	}

	summary.Dedup = DeduplicateTerms(agg.Terms())

	matchStats := NewMatcher(agg).MatchAll(examples)
	summary.Matched = matchStats.Matched
	summary.Unmatched = matchStats.Unmatched

	terms := agg.Sorted()
	summary.collect(terms)
	return terms, summary, nil
}

// Run builds the dictionary, writes it to the configured output and
// prints the summary to w.
func (p *Pipeline) Run(w io.Writer) (Summary, error) {
	terms, summary, err := p.Build()
	if err != nil {
		return summary, err
	}
	if err := jsonio.WriteJSON(p.cfg.OutputPath, terms); err != nil {
		return summary, fmt.Errorf("writing unified dictionary: %w", err)
	}
	p.log.Infow("unified dictionary written", "path", p.cfg.OutputPath, "terms", len(terms))

	summary.Fprint(w)
	fmt.Fprintf(w, "\nwrote %s\n", p.cfg.OutputPath)
	return summary, nil
}

// collect fills the output statistics from the final terms.
func (s *Summary) collect(terms []types.TermRecord) {
	licenses := make(map[string]int)
	s.Terms = len(terms)
	for _, t := range terms {
		s.Translations += len(t.Translations)
		s.Examples += len(t.Examples)
		if len(t.Examples) > 0 {
			s.TermsWithExamples++
		}
		if hasDefinition(t.Translations) {
			s.TermsWithDefinitions++
		}
		for _, tr := range t.Translations {
			licenses[tr.License]++
		}
		for _, ex := range t.Examples {
			if ex.Premium {
				s.PremiumExamples++
			} else {
				s.FreeExamples++
			}
		}
	}

	s.Licenses = s.Licenses[:0]
	for lic, n := range licenses {
		s.Licenses = append(s.Licenses, LicenseCount{License: lic, Count: n})
	}
	sort.Slice(s.Licenses, func(i, j int) bool {
		return s.Licenses[i].License < s.Licenses[j].License
	})
}

func hasDefinition(trs []types.Translation) bool {
	for _, tr := range trs {
		if tr.Definition != nil && *tr.Definition != "" {
			return true
		}
	}
	return false
}
