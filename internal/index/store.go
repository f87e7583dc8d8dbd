// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index keeps a queryable SQLite copy of the unified dictionary.
// The index is rebuilt from the dictionary file in full on every build;
// it is never edited in place.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/legal-lexicon/internal/merge"
	"github.com/pdiddy/legal-lexicon/pkg/types"
)

const (
	dbFile            = "lexicon.db"
	defaultMaxResults = 20

	// runTimeLayout is fixed width so built_at sorts in time order.
	runTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Store manages the term index database.
type Store struct {
	db         *sql.DB
	indexDir   string
	maxResults int
}

// NewStore opens or creates the index database at indexDir/lexicon.db and
// creates the schema if it does not exist.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{
		db:         db,
		indexDir:   cfg.IndexDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS terms (
			id TEXT PRIMARY KEY,
			term TEXT NOT NULL,
			term_key TEXT NOT NULL,
			lang TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_terms_key ON terms(term_key)`,
		`CREATE TABLE IF NOT EXISTS translations (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			term_id TEXT NOT NULL REFERENCES terms(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			translation TEXT NOT NULL,
			lang TEXT NOT NULL,
			definition TEXT,
			source TEXT NOT NULL,
			source_type TEXT NOT NULL,
			license TEXT NOT NULL,
			sme_reviewed INTEGER NOT NULL,
			context TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_translations_term ON translations(term_id)`,
		`CREATE INDEX IF NOT EXISTS idx_translations_lang ON translations(lang)`,
		`CREATE TABLE IF NOT EXISTS examples (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL,
			term_id TEXT NOT NULL REFERENCES terms(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			nl TEXT NOT NULL,
			en TEXT NOT NULL,
			source TEXT NOT NULL,
			license TEXT NOT NULL,
			premium INTEGER NOT NULL,
			sme_reviewed INTEGER NOT NULL,
			context TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_examples_term ON examples(term_id)`,
		`CREATE TABLE IF NOT EXISTS index_runs (
			id TEXT PRIMARY KEY,
			built_at TEXT NOT NULL,
			source_path TEXT NOT NULL,
			terms INTEGER NOT NULL,
			translations INTEGER NOT NULL,
			examples INTEGER NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Run records one index build.
type Run struct {
	ID           string
	BuiltAt      time.Time
	SourcePath   string
	Terms        int
	Translations int
	Examples     int
}

// Build replaces the index contents with terms inside one transaction and
// records the run. sourcePath names the dictionary the terms came from.
func (s *Store) Build(ctx context.Context, terms []types.TermRecord, sourcePath string, w io.Writer) (Run, error) {
	run := Run{
		ID:         uuid.NewString(),
		BuiltAt:    time.Now().UTC(),
		SourcePath: sourcePath,
		Terms:      len(terms),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"examples", "translations", "terms"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return Run{}, fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	termStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO terms (id, term, term_key, lang, position) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, fmt.Errorf("preparing term insert: %w", err)
	}
	defer termStmt.Close()

	trStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO translations (term_id, position, translation, lang, definition, source, source_type, license, sme_reviewed, context)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, fmt.Errorf("preparing translation insert: %w", err)
	}
	defer trStmt.Close()

	exStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO examples (id, term_id, position, nl, en, source, license, premium, sme_reviewed, context)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, fmt.Errorf("preparing example insert: %w", err)
	}
	defer exStmt.Close()

	for pos, term := range terms {
		if _, err := termStmt.ExecContext(ctx, term.ID, term.Term, merge.NormalizeTerm(term.Term), term.Lang, pos); err != nil {
			return Run{}, fmt.Errorf("inserting term %s: %w", term.ID, err)
		}
		for i, tr := range term.Translations {
			_, err := trStmt.ExecContext(ctx,
				term.ID, i, tr.Translation, tr.Lang, nullString(tr.Definition),
				tr.Source, tr.SourceType, tr.License, tr.SMEReviewed, nullString(tr.Context),
			)
			if err != nil {
				return Run{}, fmt.Errorf("inserting translation of %s: %w", term.ID, err)
			}
			run.Translations++
		}
		for i, ex := range term.Examples {
			_, err := exStmt.ExecContext(ctx,
				ex.ID, term.ID, i, ex.NL, ex.EN, ex.Source, ex.License,
				ex.Premium, ex.SMEReviewed, nullString(ex.Context),
			)
			if err != nil {
				return Run{}, fmt.Errorf("inserting example %s: %w", ex.ID, err)
			}
			run.Examples++
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO index_runs (id, built_at, source_path, terms, translations, examples) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.BuiltAt.Format(runTimeLayout), run.SourcePath, run.Terms, run.Translations, run.Examples,
	)
	if err != nil {
		return Run{}, fmt.Errorf("recording run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("committing index: %w", err)
	}

	fmt.Fprintf(w, "indexed %d terms, %d translations, %d examples (run %s)\n",
		run.Terms, run.Translations, run.Examples, run.ID)
	return run, nil
}

// LastRun returns the most recent build, or sql.ErrNoRows when the index
// has never been built.
func (s *Store) LastRun(ctx context.Context) (Run, error) {
	var (
		run     Run
		builtAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, built_at, source_path, terms, translations, examples
		 FROM index_runs ORDER BY built_at DESC, rowid DESC LIMIT 1`,
	).Scan(&run.ID, &builtAt, &run.SourcePath, &run.Terms, &run.Translations, &run.Examples)
	if err != nil {
		return Run{}, err
	}
	run.BuiltAt, err = time.Parse(runTimeLayout, builtAt)
	if err != nil {
		return Run{}, fmt.Errorf("parsing run time %q: %w", builtAt, err)
	}
	return run, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
