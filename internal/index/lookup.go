// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/pdiddy/legal-lexicon/internal/merge"
	"github.com/pdiddy/legal-lexicon/pkg/types"
)

// LookupOptions controls which terms a lookup returns.
type LookupOptions struct {
	// Query matches the term key or any translation text as a substring.
	// An empty query matches every term.
	Query string

	// Exact restricts matching to the normalized term key.
	Exact bool

	// Lang keeps only translations in this language.
	Lang string

	// SourceType keeps only translations with this source type.
	SourceType string

	// MaxResults caps the number of terms; zero uses the store default.
	MaxResults int
}

// Lookup returns matching terms in dictionary order, exact key matches
// first. Each term carries only the translations passing the Lang and
// SourceType filters, and terms left with none are dropped.
func (s *Store) Lookup(ctx context.Context, opts LookupOptions) ([]types.TermRecord, error) {
	limit := opts.MaxResults
	if limit <= 0 {
		limit = s.maxResults
	}
	return s.query(ctx, opts, limit)
}

// query runs a lookup; a limit of zero or less returns every match.
func (s *Store) query(ctx context.Context, opts LookupOptions, limit int) ([]types.TermRecord, error) {
	key := merge.NormalizeTerm(opts.Query)

	q := sq.Select("t.id", "t.term", "t.lang").From("terms t")

	switch {
	case key == "":
	case opts.Exact:
		q = q.Where(sq.Eq{"t.term_key": key})
	default:
		pattern := "%" + escapeLike(key) + "%"
		q = q.Where(sq.Or{
			sq.Expr(`t.term_key LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`EXISTS (SELECT 1 FROM translations x
				WHERE x.term_id = t.id AND lower(x.translation) LIKE ? ESCAPE '\')`, pattern),
		})
	}

	filter := translationFilter(opts)
	if len(filter) > 0 {
		sub, subArgs, err := sq.Select("1").From("translations tr").
			Where("tr.term_id = t.id").
			Where(filter).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("building translation filter: %w", err)
		}
		q = q.Where(sq.Expr("EXISTS ("+sub+")", subArgs...))
	}

	q = q.OrderByClause("(t.term_key = ?) DESC", key).OrderBy("t.position")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building term query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying terms: %w", err)
	}

	var terms []types.TermRecord
	for rows.Next() {
		var t types.TermRecord
		if err := rows.Scan(&t.ID, &t.Term, &t.Lang); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning term: %w", err)
		}
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating terms: %w", err)
	}
	rows.Close()

	for i := range terms {
		if err := s.hydrate(ctx, &terms[i], filter); err != nil {
			return nil, err
		}
	}
	return terms, nil
}

// translationFilter returns the conditions on alias tr for the
// translation filters of opts.
func translationFilter(opts LookupOptions) sq.And {
	var filter sq.And
	if opts.Lang != "" {
		filter = append(filter, sq.Eq{"tr.lang": opts.Lang})
	}
	if opts.SourceType != "" {
		filter = append(filter, sq.Eq{"tr.source_type": opts.SourceType})
	}
	return filter
}

// hydrate loads the translations and examples of t.
func (s *Store) hydrate(ctx context.Context, t *types.TermRecord, filter sq.And) error {
	q := sq.Select("tr.translation", "tr.lang", "tr.definition", "tr.source",
		"tr.source_type", "tr.license", "tr.sme_reviewed", "tr.context").
		From("translations tr").
		Where(sq.Eq{"tr.term_id": t.ID})
	if len(filter) > 0 {
		q = q.Where(filter)
	}
	query, args, err := q.OrderBy("tr.position").ToSql()
	if err != nil {
		return fmt.Errorf("building translation query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("querying translations of %s: %w", t.ID, err)
	}
	defer rows.Close()

	t.Translations = []types.Translation{}
	for rows.Next() {
		var (
			tr   types.Translation
			def  sql.NullString
			note sql.NullString
		)
		if err := rows.Scan(&tr.Translation, &tr.Lang, &def, &tr.Source, &tr.SourceType, &tr.License, &tr.SMEReviewed, &note); err != nil {
			return fmt.Errorf("scanning translation of %s: %w", t.ID, err)
		}
		tr.Definition = stringPtr(def)
		tr.Context = stringPtr(note)
		t.Translations = append(t.Translations, tr)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating translations of %s: %w", t.ID, err)
	}

	exRows, err := s.db.QueryContext(ctx,
		`SELECT id, nl, en, source, license, premium, sme_reviewed, context
		 FROM examples WHERE term_id = ? ORDER BY position`, t.ID)
	if err != nil {
		return fmt.Errorf("querying examples of %s: %w", t.ID, err)
	}
	defer exRows.Close()

	t.Examples = []types.Example{}
	for exRows.Next() {
		var (
			ex   types.Example
			note sql.NullString
		)
		if err := exRows.Scan(&ex.ID, &ex.NL, &ex.EN, &ex.Source, &ex.License, &ex.Premium, &ex.SMEReviewed, &note); err != nil {
			return fmt.Errorf("scanning example of %s: %w", t.ID, err)
		}
		ex.Context = stringPtr(note)
		t.Examples = append(t.Examples, ex)
	}
	if err := exRows.Err(); err != nil {
		return fmt.Errorf("iterating examples of %s: %w", t.ID, err)
	}

	t.Metadata = map[string]any{}
	return nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
