// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SentenceType distinguishes split sentences from short headings kept whole.
type SentenceType string

const (
	SentenceTypeSentence SentenceType = "sentence"
	SentenceTypeTitle    SentenceType = "title-or-header"
)

// SentenceEntry is one aligned sentence pair extracted from a paragraph of
// bilingual legislation, with the result of the incomplete-translation check.
type SentenceEntry struct {
	ID               string       `json:"id"`
	NL               string       `json:"nl"`
	EN               string       `json:"en"`
	Type             SentenceType `json:"type"`
	Document         string       `json:"document"`
	Author           string       `json:"author"`
	License          string       `json:"license"`
	SMEReviewed      bool         `json:"sme-reviewed"`
	Incomplete       bool         `json:"incomplete"`
	IncompleteReason *string      `json:"incomplete-reason"`
}

// IncompleteEntry is the simplified record handed to translators. They fill
// in ENTranslated (and optionally Notes) and the apply step merges it back.
type IncompleteEntry struct {
	ID           string `json:"id"`
	NL           string `json:"nl"`
	EN           string `json:"en"`
	ENTranslated string `json:"en-translated"`
	Reason       string `json:"reason"`
	Document     string `json:"document"`
	Notes        string `json:"notes"`
}

// IncompleteFinding is a paragraph-level entry of the incomplete
// translations analysis report.
type IncompleteFinding struct {
	TUID     string `json:"tuid"`
	NL       string `json:"nl"`
	EN       string `json:"en"`
	NLLen    int    `json:"nl_len"`
	ENLen    int    `json:"en_len"`
	Reason   string `json:"reason"`
	Document string `json:"document"`
}
