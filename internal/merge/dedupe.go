// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"fmt"
	"io"

	"github.com/pdiddy/legal-lexicon/internal/jsonio"
	"github.com/pdiddy/legal-lexicon/pkg/types"
)

// LoadDictionary reads a unified dictionary file. The file is required.
func LoadDictionary(path string) ([]types.TermRecord, error) {
	terms, err := jsonio.LoadRequired[types.TermRecord](path)
	if err != nil {
		return nil, err
	}
	for i := range terms {
		ensureCollections(&terms[i])
	}
	return terms, nil
}

// DedupeFile re-applies translation deduplication to the unified
// dictionary at path and rewrites it. Term order is preserved.
func DedupeFile(path string, w io.Writer) (DedupStats, error) {
	terms, err := LoadDictionary(path)
	if err != nil {
		return DedupStats{}, err
	}

	ptrs := make([]*types.TermRecord, len(terms))
	for i := range terms {
		ptrs[i] = &terms[i]
	}
	stats := DeduplicateTerms(ptrs)

	for _, c := range stats.Changes {
		fmt.Fprintf(w, "%s: %d -> %d translations\n", c.Term, c.Before, c.After)
	}

	if err := jsonio.WriteJSON(path, terms); err != nil {
		return stats, fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(w, "\nterms with duplicates: %d\n", stats.TermsWithDuplicates)
	fmt.Fprintf(w, "translations: %d -> %d (%d removed)\n", stats.Before, stats.After, stats.Removed())
	return stats, nil
}
