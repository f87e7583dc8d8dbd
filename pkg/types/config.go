// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "path/filepath"

// Subdirectories of the data directory.
const (
	DictionariesDir   = "dictionaries"
	CivilProcedureDir = "legislation/civil-procedure"
	ReportsDir        = "reports"
	IndexDir          = "index"
)

// DefaultDataDir is the jurisdiction directory used when none is configured.
const DefaultDataDir = "legal-data/netherlands"

// LogConfig selects the logger flavour and level.
type LogConfig struct {
	// Mode is "development" (console encoder) or "production" (JSON encoder).
	Mode string `json:"mode" yaml:"mode"`

	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level"`
}

// MergeConfig holds the file locations for the dictionary merge job.
type MergeConfig struct {
	// GlossaryPath is the civil procedure glossary.
	GlossaryPath string `json:"glossary_path" yaml:"glossary_path"`

	// DictionaryPath is the definitional legal dictionary.
	DictionaryPath string `json:"dictionary_path" yaml:"dictionary_path"`

	// LegalGlossaryPath is the second glossary variant.
	LegalGlossaryPath string `json:"legal_glossary_path" yaml:"legal_glossary_path"`

	// ExamplesPath is the example sentence collection.
	ExamplesPath string `json:"examples_path" yaml:"examples_path"`

	// OutputPath is the unified dictionary written by the job.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// SentenceConfig holds the file locations for sentence extraction.
type SentenceConfig struct {
	// BookPaths are the paragraph-level legislation files, processed in order.
	BookPaths []string `json:"book_paths" yaml:"book_paths"`

	// OutputPath is the combined sentence-level output.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// IncompleteConfig holds the file locations for the manual translation
// workflow and the paragraph-level analysis report.
type IncompleteConfig struct {
	SentencesPath string   `json:"sentences_path" yaml:"sentences_path"`
	ListPath      string   `json:"list_path" yaml:"list_path"`
	BackupPath    string   `json:"backup_path" yaml:"backup_path"`
	BookPaths     []string `json:"book_paths" yaml:"book_paths"`
	ReportPath    string   `json:"report_path" yaml:"report_path"`
}

// IndexConfig holds settings for the SQLite term index.
type IndexConfig struct {
	// IndexDir contains lexicon.db and export files.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of lookup results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Layout resolves every job's default paths under one data directory.
type Layout struct {
	DataDir string
}

// NewLayout returns a Layout rooted at dataDir, or DefaultDataDir when empty.
func NewLayout(dataDir string) Layout {
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	return Layout{DataDir: dataDir}
}

// UnifiedDictionaryPath is the merge output and the input of dedupe,
// import-fr and index.
func (l Layout) UnifiedDictionaryPath() string {
	return filepath.Join(l.DataDir, "unified-dictionary.json")
}

// FrenchDictionaryPath is the FR-FR dictionary consumed by import-fr.
func (l Layout) FrenchDictionaryPath() string {
	return filepath.Join(l.DataDir, DictionariesDir, "FR-FR-dictionary.json")
}

// Merge returns the default MergeConfig.
func (l Layout) Merge() MergeConfig {
	dict := filepath.Join(l.DataDir, DictionariesDir)
	return MergeConfig{
		GlossaryPath:      filepath.Join(dict, "Glossary-of-Dutch-Procedural-Terminology.json"),
		DictionaryPath:    filepath.Join(dict, "NL-EN-legal-dictionary.json"),
		LegalGlossaryPath: filepath.Join(dict, "NL-EN-legal-glossary.json"),
		ExamplesPath:      filepath.Join(l.DataDir, CivilProcedureDir, "NL-EN-example-sentences.json"),
		OutputPath:        l.UnifiedDictionaryPath(),
	}
}

func (l Layout) bookPaths() []string {
	cp := filepath.Join(l.DataDir, CivilProcedureDir)
	return []string{
		filepath.Join(cp, "NL-EN-civil-procedure-book1.json"),
		filepath.Join(cp, "NL-EN-civil-procedure-book2-3.json"),
		filepath.Join(cp, "NL-EN-civil-procedure-book4.json"),
	}
}

func (l Layout) sentencesPath() string {
	return filepath.Join(l.DataDir, CivilProcedureDir, "NL-EN-civil-procedure-sentences-all.json")
}

// Sentences returns the default SentenceConfig.
func (l Layout) Sentences() SentenceConfig {
	return SentenceConfig{
		BookPaths:  l.bookPaths(),
		OutputPath: l.sentencesPath(),
	}
}

// Incomplete returns the default IncompleteConfig.
func (l Layout) Incomplete() IncompleteConfig {
	cp := filepath.Join(l.DataDir, CivilProcedureDir)
	return IncompleteConfig{
		SentencesPath: l.sentencesPath(),
		ListPath:      filepath.Join(cp, "INCOMPLETE-TRANSLATIONS.json"),
		BackupPath:    filepath.Join(cp, "NL-EN-civil-procedure-sentences-all.BACKUP.json"),
		BookPaths:     l.bookPaths(),
		ReportPath:    filepath.Join(l.DataDir, ReportsDir, "incomplete-translations-report.json"),
	}
}

// Index returns the default IndexConfig.
func (l Layout) Index() IndexConfig {
	return IndexConfig{
		IndexDir:   filepath.Join(l.DataDir, IndexDir),
		MaxResults: 20,
	}
}

// Dirs lists every directory of the layout, for project initialization.
func (l Layout) Dirs() []string {
	return []string{
		filepath.Join(l.DataDir, DictionariesDir),
		filepath.Join(l.DataDir, CivilProcedureDir),
		filepath.Join(l.DataDir, ReportsDir),
		filepath.Join(l.DataDir, IndexDir),
	}
}
