// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SourceMetadata describes an international open-data legal source
// identified during research, before any terms are extracted from it.
type SourceMetadata struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	SourceURL          *string `json:"source_url"`
	SourceType         string  `json:"source_type"`
	Jurisdiction       string  `json:"jurisdiction"`
	Languages          string  `json:"languages"`
	ContentDescription string  `json:"content_description"`
	License            string  `json:"license"`
	LicenseURL         *string `json:"license_url"`
	EstimatedTerms     string  `json:"estimated_terms"`
	Priority           string  `json:"priority"`
	SMEReviewed        bool    `json:"sme_reviewed"`
	Status             string  `json:"status"`
	Notes              string  `json:"notes"`
}

// SourcesDocument is the on-disk form of the ingested source list.
type SourcesDocument struct {
	Metadata SourcesSummary   `json:"metadata"`
	Sources  []SourceMetadata `json:"sources"`
}

// SourcesSummary is the header block of a SourcesDocument.
type SourcesSummary struct {
	GeneratedDate     string `json:"generated_date"`
	TotalSources      int    `json:"total_sources"`
	Status            string `json:"status"`
	SMEReviewRequired bool   `json:"sme_review_required"`
	Description       string `json:"description"`
}
