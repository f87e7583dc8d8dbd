// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Provenance labels assigned to translations by the merge and import jobs.
const (
	LabelCivilProcedureGlossary = "Civil Procedure Glossary"
	LabelLegalDictionary        = "Legal Dictionary"
	LabelLegalGlossary          = "Legal Glossary"
	LabelFrenchLegalDictionary  = "French Legal Dictionary"
)

// TermRecord is a unique source-language entry of the unified dictionary
// with its aggregated translations and examples.
type TermRecord struct {
	// ID is the synthetic identifier, "term_" followed by a five-digit
	// zero-padded sequence number.
	ID string `json:"id" yaml:"id"`

	// Term keeps the casing of the first record that introduced the key.
	Term string `json:"term" yaml:"term"`

	// Lang is the source language tag.
	Lang string `json:"lang" yaml:"lang"`

	Translations []Translation `json:"translations" yaml:"translations"`
	Examples     []Example     `json:"examples" yaml:"examples"`

	// Metadata is reserved for downstream annotation and written as {}.
	Metadata map[string]any `json:"metadata" yaml:"metadata"`
}

// Translation is one target-language rendering of a term plus provenance.
type Translation struct {
	Translation string  `json:"translation" yaml:"translation"`
	Lang        string  `json:"lang" yaml:"lang"`
	Definition  *string `json:"definition" yaml:"definition"`
	Source      string  `json:"source" yaml:"source"`
	SourceType  string  `json:"source-type" yaml:"source-type"`
	License     string  `json:"license" yaml:"license"`
	SMEReviewed bool    `json:"sme-reviewed" yaml:"sme-reviewed"`
	Context     *string `json:"context" yaml:"context"`
}

// Example is a bilingual sentence attached to a term.
type Example struct {
	ID          string  `json:"id" yaml:"id"`
	NL          string  `json:"nl" yaml:"nl"`
	EN          string  `json:"en" yaml:"en"`
	Source      string  `json:"source" yaml:"source"`
	License     string  `json:"license" yaml:"license"`
	Premium     bool    `json:"premium" yaml:"premium"`
	SMEReviewed bool    `json:"sme-reviewed" yaml:"sme-reviewed"`
	Context     *string `json:"context" yaml:"context"`
}

// NewTermRecord returns a TermRecord with empty, non-nil collections so it
// serializes as [] and {} rather than null.
func NewTermRecord(id, term, lang string) *TermRecord {
	return &TermRecord{
		ID:           id,
		Term:         term,
		Lang:         lang,
		Translations: []Translation{},
		Examples:     []Example{},
		Metadata:     map[string]any{},
	}
}
