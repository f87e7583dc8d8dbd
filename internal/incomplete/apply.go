// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package incomplete

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/legal-lexicon/internal/jsonio"
	"github.com/pdiddy/legal-lexicon/pkg/types"
)

// ApplySummary reports the result of merging manual translations.
type ApplySummary struct {
	Manual          int
	Applied         int
	Total           int
	StillIncomplete int
}

// Completed returns the number of sentences no longer flagged.
func (s ApplySummary) Completed() int { return s.Total - s.StillIncomplete }

// ManualTranslations maps sentence ids to the trimmed en-translated text
// of every entry a translator filled in.
func ManualTranslations(entries []types.IncompleteEntry) map[string]string {
	out := make(map[string]string)
	for _, e := range entries {
		if text := strings.TrimSpace(e.ENTranslated); text != "" {
			out[e.ID] = text
		}
	}
	return out
}

// ApplyTranslations sets the English text of matching sentences and
// clears their incomplete flag. It returns the number updated.
func ApplyTranslations(sentences []types.SentenceEntry, manual map[string]string) int {
	n := 0
	for i := range sentences {
		text, ok := manual[sentences[i].ID]
		if !ok {
			continue
		}
		sentences[i].EN = text
		sentences[i].Incomplete = false
		sentences[i].IncompleteReason = nil
		n++
	}
	return n
}

// Apply backs up the sentence file, merges the translator list into it
// and rewrites it. With no filled-in translations only the backup is
// written.
func (wf *Workflow) Apply(w io.Writer) (ApplySummary, error) {
	entries, err := jsonio.LoadRequired[types.IncompleteEntry](wf.cfg.ListPath)
	if err != nil {
		return ApplySummary{}, fmt.Errorf("loading incomplete list: %w", err)
	}
	sentences, err := jsonio.LoadRequired[types.SentenceEntry](wf.cfg.SentencesPath)
	if err != nil {
		return ApplySummary{}, fmt.Errorf("loading sentences: %w", err)
	}

	if err := jsonio.WriteJSON(wf.cfg.BackupPath, sentences); err != nil {
		return ApplySummary{}, fmt.Errorf("writing backup: %w", err)
	}
	fmt.Fprintf(w, "backup %s\n", wf.cfg.BackupPath)

	manual := ManualTranslations(entries)
	summary := ApplySummary{Manual: len(manual), Total: len(sentences)}
	if len(manual) == 0 {
		wf.log.Warnw("no manual translations found", "path", wf.cfg.ListPath)
		summary.StillIncomplete = countIncomplete(sentences)
		return summary, nil
	}

	summary.Applied = ApplyTranslations(sentences, manual)
	summary.StillIncomplete = countIncomplete(sentences)

	if err := jsonio.WriteJSON(wf.cfg.SentencesPath, sentences); err != nil {
		return summary, fmt.Errorf("writing sentences: %w", err)
	}

	fmt.Fprintf(w, "total sentences:  %d\n", summary.Total)
	fmt.Fprintf(w, "completed:        %d (%.1f%%)\n", summary.Completed(), percent(summary.Completed(), summary.Total))
	fmt.Fprintf(w, "still incomplete: %d (%.1f%%)\n", summary.StillIncomplete, percent(summary.StillIncomplete, summary.Total))
	fmt.Fprintf(w, "applied:          %d\n", summary.Applied)
	return summary, nil
}

func countIncomplete(sentences []types.SentenceEntry) int {
	n := 0
	for _, s := range sentences {
		if s.Incomplete {
			n++
		}
	}
	return n
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
