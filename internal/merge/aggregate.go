// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/legal-lexicon/pkg/types"
)

// LabeledSource is one input collection and the provenance label its
// translations receive.
type LabeledSource struct {
	Label   string
	Path    string
	Records []types.SourceRecord
}

// AggregateStats counts what Aggregate did with its input.
type AggregateStats struct {
	Created int
	Added   int
	Skipped int
}

// Aggregator folds source records into one TermRecord per normalized term.
// It owns the id counter: ids are assigned in the order keys are first
// seen, so the same input always produces the same ids.
type Aggregator struct {
	terms map[string]*types.TermRecord
	order []string
	next  int

	// shadowed holds seeded records whose key was already taken. They
	// receive no new translations but are written back unchanged.
	shadowed []*types.TermRecord
}

// NewAggregator returns an empty Aggregator whose first id is term_00001.
func NewAggregator() *Aggregator {
	return &Aggregator{
		terms: make(map[string]*types.TermRecord),
		next:  1,
	}
}

// FormatTermID renders sequence number n as a term id.
func FormatTermID(n int) string {
	return fmt.Sprintf("term_%05d", n)
}

// termNumber returns the numeric part of a term id ("term_00042" -> "00042").
func termNumber(id string) string {
	if _, num, ok := strings.Cut(id, "_"); ok {
		return num
	}
	return id
}

// Seed loads existing records, keeping their ids, and moves the counter
// past the highest id seen so new terms never collide. When several
// records share a key the first one receives later translations; the
// others are kept as they are.
func (a *Aggregator) Seed(records []types.TermRecord) error {
	for i := range records {
		rec := records[i]
		n, err := strconv.Atoi(termNumber(rec.ID))
		if err != nil {
			return fmt.Errorf("term %q: invalid id %q", rec.Term, rec.ID)
		}
		if n >= a.next {
			a.next = n + 1
		}
		ensureCollections(&rec)
		key := NormalizeTerm(rec.Term)
		if _, exists := a.terms[key]; exists {
			a.shadowed = append(a.shadowed, &rec)
			continue
		}
		a.terms[key] = &rec
		a.order = append(a.order, key)
	}
	return nil
}

// Add appends a Translation built from rec under the given label. It
// reports created=true when rec introduced a new key and ok=false when
// the record was skipped: a blank term, or neither translation text nor
// definition.
func (a *Aggregator) Add(rec types.SourceRecord, label string) (created, ok bool) {
	if strings.TrimSpace(rec.Target) == "" && isBlank(rec.LangTargetDict) {
		return false, false
	}
	return a.AddTranslation(rec.Source, rec.SourceLangOr(types.DefaultSourceLang), NewTranslation(rec, label))
}

// AddTranslation attaches tr to the record for term, creating the record
// with lang and the next id when the key is new.
func (a *Aggregator) AddTranslation(term, lang string, tr types.Translation) (created, ok bool) {
	term = strings.TrimSpace(term)
	key := NormalizeTerm(term)
	if key == "" {
		return false, false
	}

	rec, exists := a.terms[key]
	if !exists {
		rec = types.NewTermRecord(FormatTermID(a.next), term, lang)
		a.next++
		a.terms[key] = rec
		a.order = append(a.order, key)
	}
	rec.Translations = append(rec.Translations, tr)
	return !exists, true
}

// Aggregate folds sources in order, records in order.
func (a *Aggregator) Aggregate(sources ...LabeledSource) AggregateStats {
	var stats AggregateStats
	for _, src := range sources {
		for _, rec := range src.Records {
			created, ok := a.Add(rec, src.Label)
			switch {
			case !ok:
				stats.Skipped++
			case created:
				stats.Created++
				stats.Added++
			default:
				stats.Added++
			}
		}
	}
	return stats
}

// Lookup returns the record for a normalized key.
func (a *Aggregator) Lookup(key string) (*types.TermRecord, bool) {
	rec, ok := a.terms[key]
	return rec, ok
}

// Len returns the number of distinct keys.
func (a *Aggregator) Len() int { return len(a.order) }

// Terms returns the records in first-seen order.
func (a *Aggregator) Terms() []*types.TermRecord {
	out := make([]*types.TermRecord, len(a.order))
	for i, key := range a.order {
		out[i] = a.terms[key]
	}
	return out
}

// Shadowed returns the number of seeded records that share a key with
// an earlier one.
func (a *Aggregator) Shadowed() int { return len(a.shadowed) }

// Sorted returns copies of every record, shadowed ones included, ordered
// by lowercase term text. Ties keep first-seen order.
func (a *Aggregator) Sorted() []types.TermRecord {
	out := make([]types.TermRecord, 0, len(a.order)+len(a.shadowed))
	for _, key := range a.order {
		out = append(out, *a.terms[key])
	}
	for _, rec := range a.shadowed {
		out = append(out, *rec)
	}
	SortTerms(out)
	return out
}

// SortTerms sorts records by lowercase term text, stable for ties.
func SortTerms(terms []types.TermRecord) {
	sort.SliceStable(terms, func(i, j int) bool {
		return strings.ToLower(terms[i].Term) < strings.ToLower(terms[j].Term)
	})
}

// NewTranslation builds the Translation contributed by a source record.
func NewTranslation(rec types.SourceRecord, label string) types.Translation {
	return types.Translation{
		Translation: rec.Target,
		Lang:        rec.TargetLang(),
		Definition:  rec.LangTargetDict,
		Source:      rec.AuthorOrUnknown(),
		SourceType:  label,
		License:     rec.LicenseOr(types.DefaultLicense),
		SMEReviewed: rec.SMEReviewed.Truthy(),
	}
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// ensureCollections replaces nil collections of a decoded record so it
// serializes with [] and {}.
func ensureCollections(rec *types.TermRecord) {
	if rec.Translations == nil {
		rec.Translations = []types.Translation{}
	}
	if rec.Examples == nil {
		rec.Examples = []types.Example{}
	}
	if rec.Metadata == nil {
		rec.Metadata = map[string]any{}
	}
}
