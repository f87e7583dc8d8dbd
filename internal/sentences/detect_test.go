// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sentences

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIncomplete(t *testing.T) {
	tests := []struct {
		name       string
		nl, en     string
		incomplete bool
		reason     string
	}{
		{"empty", "De eiser", "", true, "Empty translation"},
		{"whitespace", "De eiser", "   ", true, "Empty translation"},
		{"bracket placeholder", "De eiser vordert", "The [claimant] claims", true, `Contains placeholder: \[.*?\]`},
		{"todo any case", "De eiser vordert", "todo translate", true, "Contains placeholder: TODO"},
		{"tbd", "De eiser vordert", "TBD later", true, "Contains placeholder: TBD"},
		{"xxx", "De eiser vordert", "The xxx claims", true, "Contains placeholder: XXX"},
		{"question marks", "De eiser vordert", "The ??? claims", true, `Contains placeholder: \?\?\?`},
		{"copy of dutch", " Artikel 12 ", "Artikel 12", true, "English is copy of Dutch"},
		{"too short", "De eiser vordert betaling van een geldsom.", "Pay.", true, "Too short (ratio: 0.10)"},
		{"too long", "Ja", "Yes, absolutely", true, "Too long (ratio: 7.50)"},
		{"no letters", "Artikel 1", "1-2-3", true, "No alphabetic characters"},
		{"complete", "De eiser vordert betaling.", "The claimant claims payment.", false, ""},
		{"empty dutch skips ratio", "", "An orphan sentence.", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incomplete, reason := DetectIncomplete(tt.nl, tt.en)
			assert.Equal(t, tt.incomplete, incomplete)
			assert.Equal(t, tt.reason, reason)
		})
	}
}
