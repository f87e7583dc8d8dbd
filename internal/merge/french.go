// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/legal-lexicon/internal/jsonio"
	"github.com/pdiddy/legal-lexicon/pkg/types"
)

// FrenchLang is the language of terms and translations added from the
// French legal dictionary.
const FrenchLang = "fr-fr"

// FrenchStats counts the outcome of a French import.
type FrenchStats struct {
	Entries int
	Updated int
	Added   int
	Skipped int
	Terms   int

	// Duplicates counts existing records sharing a key with an earlier
	// one. They are written back unchanged.
	Duplicates int
}

// NewFrenchTranslation builds the Translation contributed by an FR-FR
// dictionary entry: the French term names itself, with its definition.
func NewFrenchTranslation(rec types.SourceRecord) types.Translation {
	return types.Translation{
		Translation: rec.Source,
		Lang:        FrenchLang,
		Definition:  rec.LangSourceDict,
		Source:      rec.AuthorOrUnknown(),
		SourceType:  types.LabelFrenchLegalDictionary,
		License:     rec.LicenseOr(types.DefaultLicense),
		SMEReviewed: rec.SMEReviewed.StrictTrue(),
	}
}

// ImportFrench folds the FR-FR dictionary at frenchPath into the unified
// dictionary at dictPath. Existing terms keep their ids; new terms continue
// the id sequence. The result is re-sorted and written back to dictPath.
func ImportFrench(dictPath, frenchPath string, w io.Writer) (FrenchStats, error) {
	var stats FrenchStats

	french, err := jsonio.LoadRequired[types.SourceRecord](frenchPath)
	if err != nil {
		return stats, fmt.Errorf("loading French dictionary: %w", err)
	}
	existing, err := LoadDictionary(dictPath)
	if err != nil {
		return stats, fmt.Errorf("loading unified dictionary: %w", err)
	}

	agg := NewAggregator()
	if err := agg.Seed(existing); err != nil {
		return stats, fmt.Errorf("seeding from %s: %w", dictPath, err)
	}
	stats.Duplicates = agg.Shadowed()

	stats.Entries = len(french)
	for _, rec := range french {
		if strings.TrimSpace(rec.Source) == "" {
			stats.Skipped++
			continue
		}
		created, _ := agg.AddTranslation(rec.Source, rec.SourceLangOr(FrenchLang), NewFrenchTranslation(rec))
		if created {
			stats.Added++
		} else {
			stats.Updated++
		}
	}

	terms := agg.Sorted()
	stats.Terms = len(terms)
	if err := jsonio.WriteJSON(dictPath, terms); err != nil {
		return stats, fmt.Errorf("writing unified dictionary: %w", err)
	}

	fmt.Fprintf(w, "French entries: %d\n", stats.Entries)
	fmt.Fprintf(w, "updated terms:  %d\n", stats.Updated)
	fmt.Fprintf(w, "added terms:    %d\n", stats.Added)
	if stats.Skipped > 0 {
		fmt.Fprintf(w, "skipped blank:  %d\n", stats.Skipped)
	}
	if stats.Duplicates > 0 {
		fmt.Fprintf(w, "duplicate keys: %d (kept unchanged)\n", stats.Duplicates)
	}
	fmt.Fprintf(w, "total terms:    %d\n", stats.Terms)
	return stats, nil
}
