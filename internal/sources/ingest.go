// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/facebookgo/clock"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/pdiddy/legal-lexicon/internal/jsonio"
	"github.com/pdiddy/legal-lexicon/pkg/types"
)

// Default locations of the research document and the generated list,
// relative to the working directory.
const (
	DefaultInput  = "OPEN-DATA-LEGAL-SOURCES-VERIFIED.md"
	DefaultOutput = "international-sources.json"
)

const description = "International legal translation sources verified for open licenses. " +
	"All sources require Subject Matter Expert review before term integration."

// ParseSection extracts the metadata of one section. It returns false when
// the section has no title.
func ParseSection(sec Section) (types.SourceMetadata, bool) {
	title, ok := field(titleRe, sec.Text)
	if !ok {
		return types.SourceMetadata{}, false
	}
	name := stripFlags(title)
	content := fieldOr(contentRe, sec.Text, "")
	license, licenseURL := ClassifyLicense(fieldOr(licenseRe, sec.Text, "Unknown"), sec.Text)

	meta := types.SourceMetadata{
		ID:                 fmt.Sprintf("source_%03d", sec.Number),
		Name:               name,
		SourceType:         ClassifySourceType(name, content),
		Jurisdiction:       ClassifyJurisdiction(name),
		Languages:          fieldOr(languagesRe, sec.Text, DefaultLanguages),
		ContentDescription: content,
		License:            license,
		EstimatedTerms:     fieldOr(termsRe, sec.Text, DefaultTerms),
		Priority:           fieldOr(priorityRe, sec.Text, DefaultPriority),
		Status:             StatusResearch,
		Notes:              ReviewNotes,
	}
	if url, ok := field(urlRe, sec.Text); ok {
		meta.SourceURL = &url
	}
	if licenseURL != "" {
		meta.LicenseURL = &licenseURL
	}
	return meta, true
}

// Parse extracts the confirmed sources of a research document: the first
// MaxSources sections that carry a title.
func Parse(doc string) []types.SourceMetadata {
	out := []types.SourceMetadata{}
	for _, sec := range Sections(doc) {
		if sec.Number > MaxSources {
			break
		}
		if meta, ok := ParseSection(sec); ok {
			out = append(out, meta)
		}
	}
	return out
}

// NewDocument wraps sources with the generated metadata block.
func NewDocument(sources []types.SourceMetadata, c clock.Clock) types.SourcesDocument {
	return types.SourcesDocument{
		Metadata: types.SourcesSummary{
			GeneratedDate:     c.Now().Format("2006-01-02"),
			TotalSources:      len(sources),
			Status:            StatusResearch,
			SMEReviewRequired: true,
			Description:       description,
		},
		Sources: sources,
	}
}

// Tally is a label and the number of sources carrying it.
type Tally struct {
	Label string
	Count int
}

// Summary groups sources by jurisdiction (by code), license and type (by
// descending count).
type Summary struct {
	Total          int
	ByJurisdiction []Tally
	ByLicense      []Tally
	ByType         []Tally
}

// Summarize tallies sources.
func Summarize(sources []types.SourceMetadata) Summary {
	jur := lo.CountValuesBy(sources, func(s types.SourceMetadata) string { return s.Jurisdiction })
	lic := lo.CountValuesBy(sources, func(s types.SourceMetadata) string { return s.License })
	typ := lo.CountValuesBy(sources, func(s types.SourceMetadata) string { return s.SourceType })

	return Summary{
		Total:          len(sources),
		ByJurisdiction: tallies(jur, false),
		ByLicense:      tallies(lic, true),
		ByType:         tallies(typ, true),
	}
}

// tallies orders counts by label, then by descending count when byCount.
func tallies(m map[string]int, byCount bool) []Tally {
	out := lo.MapToSlice(m, func(label string, n int) Tally { return Tally{Label: label, Count: n} })
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	if byCount {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	}
	return out
}

// Fprint writes the summary.
func (s Summary) Fprint(w io.Writer) {
	fmt.Fprintf(w, "total sources: %d\n", s.Total)
	fmt.Fprintf(w, "jurisdictions: %d\n", len(s.ByJurisdiction))
	fmt.Fprintf(w, "\nby jurisdiction:\n")
	for _, t := range s.ByJurisdiction {
		fmt.Fprintf(w, "  %-10s %2d\n", t.Label, t.Count)
	}
	fmt.Fprintf(w, "\nby license:\n")
	for _, t := range s.ByLicense {
		fmt.Fprintf(w, "  %-25s %2d\n", t.Label, t.Count)
	}
	fmt.Fprintf(w, "\nby type:\n")
	for _, t := range s.ByType {
		fmt.Fprintf(w, "  %-35s %2d\n", t.Label, t.Count)
	}
}

// Ingester reads a research document and writes the source list.
type Ingester struct {
	clock clock.Clock
	log   *zap.SugaredLogger
}

// NewIngester returns an Ingester stamping documents with c.
func NewIngester(c clock.Clock, log *zap.SugaredLogger) *Ingester {
	return &Ingester{clock: c, log: log}
}

// Run parses the document at input and writes the source list to output.
func (in *Ingester) Run(input, output string, w io.Writer) (Summary, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return Summary{}, fmt.Errorf("reading research document: %w", err)
	}

	sources := Parse(string(data))
	if len(sources) == 0 {
		in.log.Warnw("no sources found in research document", "path", input)
	}
	if err := jsonio.WriteJSON(output, NewDocument(sources, in.clock)); err != nil {
		return Summary{}, fmt.Errorf("writing sources: %w", err)
	}
	in.log.Infow("sources written", "path", output, "sources", len(sources))

	summary := Summarize(sources)
	summary.Fprint(w)
	fmt.Fprintf(w, "\nwrote %s\n", output)
	return summary, nil
}
