// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"fmt"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/legal-lexicon/internal/jsonio"
	"github.com/pdiddy/legal-lexicon/pkg/types"
)

// ExportYAML writes the matching terms to export.yaml in the index
// directory and returns the path. It supports the same filters as Lookup
// and is never truncated by a result limit.
func (s *Store) ExportYAML(ctx context.Context, opts LookupOptions) (string, error) {
	terms, err := s.exportTerms(ctx, opts)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.indexDir, "export.yaml")
	data, err := yaml.Marshal(terms)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := jsonio.WriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// ExportJSON writes the matching terms to export.json in the index
// directory and returns the path. It supports the same filters as Lookup
// and is never truncated by a result limit.
func (s *Store) ExportJSON(ctx context.Context, opts LookupOptions) (string, error) {
	terms, err := s.exportTerms(ctx, opts)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.indexDir, "export.json")
	if err := jsonio.WriteJSON(path, terms); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Store) exportTerms(ctx context.Context, opts LookupOptions) ([]types.TermRecord, error) {
	terms, err := s.query(ctx, opts, 0)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	if terms == nil {
		terms = []types.TermRecord{}
	}
	return terms, nil
}
