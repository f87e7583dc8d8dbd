// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package incomplete runs the manual translation workflow for sentence
// pairs flagged incomplete: it lists them for translators, merges their
// work back and analyzes paragraph-level sources for truncation.
package incomplete

import (
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/pdiddy/legal-lexicon/internal/jsonio"
	"github.com/pdiddy/legal-lexicon/pkg/types"
)

// Workflow holds the file locations and logger shared by the steps.
type Workflow struct {
	cfg types.IncompleteConfig
	log *zap.SugaredLogger
}

// New returns a Workflow over cfg.
func New(cfg types.IncompleteConfig, log *zap.SugaredLogger) *Workflow {
	return &Workflow{cfg: cfg, log: log}
}

// Count is a label with the number of entries carrying it.
type Count struct {
	Label string
	Count int
}

// ListSummary describes a generated translator list.
type ListSummary struct {
	Sentences  int
	Incomplete int
	ByReason   []Count
	ByDocument []Count
}

// ToEntries selects the incomplete sentences and converts them to the
// translator format with empty en-translated and notes.
func ToEntries(sentences []types.SentenceEntry) []types.IncompleteEntry {
	out := []types.IncompleteEntry{}
	for _, s := range sentences {
		if !s.Incomplete {
			continue
		}
		e := types.IncompleteEntry{
			ID:       s.ID,
			NL:       s.NL,
			EN:       s.EN,
			Document: s.Document,
		}
		if s.IncompleteReason != nil {
			e.Reason = *s.IncompleteReason
		}
		out = append(out, e)
	}
	return out
}

// List writes the translator list of every incomplete sentence.
func (wf *Workflow) List(w io.Writer) (ListSummary, error) {
	sentences, err := jsonio.LoadRequired[types.SentenceEntry](wf.cfg.SentencesPath)
	if err != nil {
		return ListSummary{}, fmt.Errorf("loading sentences: %w", err)
	}

	entries := ToEntries(sentences)
	if err := jsonio.WriteJSON(wf.cfg.ListPath, entries); err != nil {
		return ListSummary{}, fmt.Errorf("writing incomplete list: %w", err)
	}
	wf.log.Infow("incomplete list written", "path", wf.cfg.ListPath, "entries", len(entries))

	reasons := make(map[string]int)
	docs := make(map[string]int)
	for _, e := range entries {
		reasons[e.Reason]++
		docs[e.Document]++
	}
	summary := ListSummary{
		Sentences:  len(sentences),
		Incomplete: len(entries),
		ByReason:   byCountDesc(reasons),
		ByDocument: byLabel(docs),
	}

	fmt.Fprintf(w, "sentences:  %d\n", summary.Sentences)
	fmt.Fprintf(w, "incomplete: %d\n", summary.Incomplete)
	fprintCounts(w, "by reason", summary.ByReason)
	fprintCounts(w, "by document", summary.ByDocument)
	fmt.Fprintf(w, "\nwrote %s\n", wf.cfg.ListPath)
	return summary, nil
}

// byCountDesc orders counts by descending count, then label.
func byCountDesc(m map[string]int) []Count {
	out := byLabel(m)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func byLabel(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for label, n := range m {
		out = append(out, Count{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

func fprintCounts(w io.Writer, title string, counts []Count) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, c := range counts {
		fmt.Fprintf(w, "  %s: %d\n", c.Label, c.Count)
	}
}
