// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sentences

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/pdiddy/legal-lexicon/internal/jsonio"
	"github.com/pdiddy/legal-lexicon/pkg/types"
)

// Defaults for paragraph fields the legislation files may omit.
const (
	DefaultTUID    = "unknown"
	DefaultLicense = "CC BY 4.0"
)

// headingMaxLen is the length below which a paragraph without a period
// is treated as a title or article heading.
const headingMaxLen = 50

// ExtractParagraph turns one paragraph record into sentence entries. Both
// sides are split and paired by position; a side that runs out pairs with
// the empty string. Short period-free paragraphs become a single heading
// entry. A paragraph with both sides empty yields nothing.
func ExtractParagraph(rec types.SourceRecord) []types.SentenceEntry {
	nl := strings.TrimSpace(rec.Source)
	en := strings.TrimSpace(rec.Target)
	if nl == "" && en == "" {
		return nil
	}

	tuid := rec.TUID
	if tuid == "" {
		tuid = DefaultTUID
	}
	license := rec.LicenseOr(DefaultLicense)

	entry := func(i int, nl, en string, kind types.SentenceType) types.SentenceEntry {
		e := types.SentenceEntry{
			ID:          fmt.Sprintf("%s_s%03d", tuid, i+1),
			NL:          nl,
			EN:          en,
			Type:        kind,
			Document:    rec.Document,
			Author:      rec.Author,
			License:     license,
			SMEReviewed: rec.SMEReviewed.Truthy(),
		}
		if incomplete, reason := DetectIncomplete(nl, en); incomplete {
			e.Incomplete = true
			e.IncompleteReason = &reason
		}
		return e
	}

	if utf8.RuneCountInString(nl) < headingMaxLen && !strings.Contains(nl, ".") {
		return []types.SentenceEntry{entry(0, nl, en, types.SentenceTypeTitle)}
	}

	nlParts, enParts := Split(nl), Split(en)
	n := max(len(nlParts), len(enParts))
	out := make([]types.SentenceEntry, 0, n)
	for i := range n {
		out = append(out, entry(i, at(nlParts, i), at(enParts, i), types.SentenceTypeSentence))
	}
	return out
}

func at(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

// Extractor runs sentence extraction over the configured book files.
type Extractor struct {
	cfg types.SentenceConfig
	log *zap.SugaredLogger
}

// NewExtractor returns an Extractor for cfg.
func NewExtractor(cfg types.SentenceConfig, log *zap.SugaredLogger) *Extractor {
	return &Extractor{cfg: cfg, log: log}
}

// ExtractFile extracts the sentences of one paragraph-level file. A
// missing file is logged and yields no entries.
func (e *Extractor) ExtractFile(path string, w io.Writer) ([]types.SentenceEntry, error) {
	paragraphs, found, err := jsonio.LoadCollection[types.SourceRecord](path)
	if err != nil {
		return nil, err
	}
	if !found {
		e.log.Warnw("book file not found, skipping", "path", path)
		fmt.Fprintf(w, "missing %s\n", filepath.Base(path))
		return nil, nil
	}

	var out []types.SentenceEntry
	for _, p := range paragraphs {
		out = append(out, ExtractParagraph(p)...)
	}
	fmt.Fprintf(w, "%-40s %5d paragraphs -> %5d sentences\n", filepath.Base(path), len(paragraphs), len(out))
	return out, nil
}

// ExtractAll extracts every book file in order and concatenates the result.
func (e *Extractor) ExtractAll(w io.Writer) ([]types.SentenceEntry, error) {
	all := []types.SentenceEntry{}
	for _, path := range e.cfg.BookPaths {
		entries, err := e.ExtractFile(path, w)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}

// Run extracts all books, writes the combined sentence file and prints
// the extraction report.
func (e *Extractor) Run(w io.Writer) (Report, error) {
	entries, err := e.ExtractAll(w)
	if err != nil {
		return Report{}, err
	}
	if err := jsonio.WriteJSON(e.cfg.OutputPath, entries); err != nil {
		return Report{}, fmt.Errorf("writing sentences: %w", err)
	}
	e.log.Infow("sentences written", "path", e.cfg.OutputPath, "entries", len(entries))

	report := NewReport(entries)
	report.Fprint(w)
	return report, nil
}
