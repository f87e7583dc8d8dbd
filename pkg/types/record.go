// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Defaults applied when a SourceRecord omits a field.
const (
	DefaultSourceLang = "nl-nl"
	DefaultTargetLang = "en-gb"
	DefaultAuthor     = "Unknown"
	DefaultLicense    = "Unknown"
)

// SourceRecord is one flat entry of a collaborator-produced collection:
// a glossary or dictionary line, an example sentence pair, or a
// paragraph-level legislation segment imported from TMX.
type SourceRecord struct {
	// TUID is the translation unit id carried over from TMX imports.
	TUID string `json:"tuid,omitempty"`

	// Source is the source-language text (a term, sentence or paragraph).
	Source string `json:"source"`

	// Target is the target-language text.
	Target string `json:"target"`

	LangSource string `json:"lang-source,omitempty"`
	LangTarget string `json:"lang-target,omitempty"`

	// LangSourceDict is a source-language definition, when the collection
	// is a monolingual dictionary.
	LangSourceDict *string `json:"lang-source-dict,omitempty"`

	// LangTargetDict is a target-language definition.
	LangTargetDict *string `json:"lang-target-dict,omitempty"`

	Author      string `json:"author,omitempty"`
	License     string `json:"license,omitempty"`
	SMEReviewed Flag   `json:"sme-reviewed"`
	Premium     Flag   `json:"premium"`

	// Type is the segment kind (e.g. "legislation").
	Type string `json:"type,omitempty"`

	// Document names the legal instrument the segment belongs to.
	Document string `json:"document,omitempty"`
}

// SourceLangOr returns LangSource or fallback when it is empty.
func (r SourceRecord) SourceLangOr(fallback string) string {
	return orDefault(r.LangSource, fallback)
}

// TargetLang returns LangTarget or DefaultTargetLang.
func (r SourceRecord) TargetLang() string {
	return orDefault(r.LangTarget, DefaultTargetLang)
}

// AuthorOrUnknown returns Author or DefaultAuthor.
func (r SourceRecord) AuthorOrUnknown() string {
	return orDefault(r.Author, DefaultAuthor)
}

// LicenseOr returns License or fallback when it is empty.
func (r SourceRecord) LicenseOr(fallback string) string {
	return orDefault(r.License, fallback)
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
