// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sentences

import (
	"fmt"
	"io"
	"sort"

	"github.com/pdiddy/legal-lexicon/pkg/types"
)

// ReasonCount is the number of entries flagged for one reason.
type ReasonCount struct {
	Reason string
	Count  int
}

// DocumentCompletion is the completion tally of one document.
type DocumentCompletion struct {
	Document string
	Total    int
	Complete int
}

// Percent returns the completion percentage of the document.
func (d DocumentCompletion) Percent() float64 {
	if d.Total == 0 {
		return 0
	}
	return float64(d.Complete) / float64(d.Total) * 100
}

// Report summarizes the incomplete-translation flags of a sentence set.
type Report struct {
	Total      int
	Incomplete int
	Reasons    []ReasonCount
	Documents  []DocumentCompletion
}

// Complete returns the number of entries not flagged incomplete.
func (r Report) Complete() int { return r.Total - r.Incomplete }

// CompletionRate returns the percentage of complete entries.
func (r Report) CompletionRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Complete()) / float64(r.Total) * 100
}

// NewReport tallies entries. Reasons are ordered by descending count, ties
// in first-seen order; documents are ordered by name.
func NewReport(entries []types.SentenceEntry) Report {
	r := Report{Total: len(entries)}

	reasonIdx := make(map[string]int)
	docs := make(map[string]*DocumentCompletion)
	for _, e := range entries {
		d, ok := docs[e.Document]
		if !ok {
			d = &DocumentCompletion{Document: e.Document}
			docs[e.Document] = d
		}
		d.Total++

		if !e.Incomplete {
			d.Complete++
			continue
		}
		r.Incomplete++
		reason := "Unknown"
		if e.IncompleteReason != nil {
			reason = *e.IncompleteReason
		}
		if i, ok := reasonIdx[reason]; ok {
			r.Reasons[i].Count++
		} else {
			reasonIdx[reason] = len(r.Reasons)
			r.Reasons = append(r.Reasons, ReasonCount{Reason: reason, Count: 1})
		}
	}

	sort.SliceStable(r.Reasons, func(i, j int) bool {
		return r.Reasons[i].Count > r.Reasons[j].Count
	})
	for _, d := range docs {
		r.Documents = append(r.Documents, *d)
	}
	sort.Slice(r.Documents, func(i, j int) bool {
		return r.Documents[i].Document < r.Documents[j].Document
	})
	return r
}

// Fprint writes the report in human-readable form.
func (r Report) Fprint(w io.Writer) {
	fmt.Fprintf(w, "\ntotal sentences:  %d\n", r.Total)
	fmt.Fprintf(w, "incomplete:       %d\n", r.Incomplete)
	fmt.Fprintf(w, "complete:         %d\n", r.Complete())
	fmt.Fprintf(w, "completion rate:  %.1f%%\n", r.CompletionRate())

	if len(r.Reasons) > 0 {
		fmt.Fprintf(w, "\nincomplete reasons:\n")
		for _, rc := range r.Reasons {
			fmt.Fprintf(w, "  %s: %d\n", rc.Reason, rc.Count)
		}
	}
	if len(r.Documents) > 0 {
		fmt.Fprintf(w, "\nby document:\n")
		for _, d := range r.Documents {
			fmt.Fprintf(w, "  %s: %d/%d (%.1f%%)\n", d.Document, d.Complete, d.Total, d.Percent())
		}
	}
}
