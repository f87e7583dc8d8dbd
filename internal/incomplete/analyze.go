// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package incomplete

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/legal-lexicon/internal/jsonio"
	"github.com/pdiddy/legal-lexicon/pkg/types"
)

// Finding reasons, in the order the rules run. A later rule that fires
// replaces an earlier reason.
const (
	ReasonMutatisMutandis = "Mutatis mutandis clause - truncated"
	ReasonMuchShorter     = "English much shorter than Dutch"
	ReasonEllipsis        = "Ellipsis or incomplete parenthesis"
)

var mutatisMutandis = regexp.MustCompile(`(?i)van overeenkomstige toepassing|is van toepassing|zijn van toepassing`)

// AnalyzeParagraph checks one paragraph and returns a finding when its English
// looks truncated.
func AnalyzeParagraph(rec types.SourceRecord) (types.IncompleteFinding, bool) {
	nl, en := rec.Source, rec.Target
	nlLen := utf8.RuneCountInString(nl)
	enLen := utf8.RuneCountInString(en)
	trimmed := strings.TrimSpace(en)

	reason := ""
	if strings.HasSuffix(trimmed, "apply") && float64(nlLen) > float64(enLen)*1.5 && mutatisMutandis.MatchString(nl) {
		reason = ReasonMutatisMutandis
	}
	if float64(enLen) < float64(nlLen)*0.4 && nlLen > 50 {
		reason = ReasonMuchShorter
	}
	if strings.HasSuffix(trimmed, "...") || strings.HasSuffix(trimmed, "(") {
		reason = ReasonEllipsis
	}
	if reason == "" {
		return types.IncompleteFinding{}, false
	}

	return types.IncompleteFinding{
		TUID:     rec.TUID,
		NL:       nl,
		EN:       en,
		NLLen:    nlLen,
		ENLen:    enLen,
		Reason:   reason,
		Document: rec.Document,
	}, true
}

// AnalyzeSummary counts findings across the analyzed books.
type AnalyzeSummary struct {
	Files    int
	Missing  int
	Findings int
	ByReason []Count
}

// Analyze scans the paragraph-level book files and writes the findings
// report. Missing books are logged and skipped.
func (wf *Workflow) Analyze(w io.Writer) (AnalyzeSummary, error) {
	var summary AnalyzeSummary
	findings := []types.IncompleteFinding{}

	for _, path := range wf.cfg.BookPaths {
		paragraphs, found, err := jsonio.LoadCollection[types.SourceRecord](path)
		if err != nil {
			return summary, err
		}
		if !found {
			wf.log.Warnw("book file not found, skipping", "path", path)
			summary.Missing++
			continue
		}
		summary.Files++

		n := 0
		for _, p := range paragraphs {
			if f, ok := AnalyzeParagraph(p); ok {
				findings = append(findings, f)
				n++
			}
		}
		fmt.Fprintf(w, "%s: %d findings\n", path, n)
	}

	if err := jsonio.WriteJSON(wf.cfg.ReportPath, findings); err != nil {
		return summary, fmt.Errorf("writing report: %w", err)
	}

	reasons := make(map[string]int)
	for _, f := range findings {
		reasons[f.Reason]++
	}
	summary.Findings = len(findings)
	summary.ByReason = byCountDesc(reasons)

	fmt.Fprintf(w, "\ntotal findings: %d\n", summary.Findings)
	for _, c := range summary.ByReason {
		fmt.Fprintf(w, "  %-40s %4d\n", c.Label, c.Count)
	}
	fmt.Fprintf(w, "\nwrote %s\n", wf.cfg.ReportPath)
	return summary, nil
}
