// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTerm(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Procesbelang", "procesbelang"},
		{"  Eiser  ", "eiser"},
		{"\tRECHTER\n", "rechter"},
		{"Ärztliche Verklaring", "ärztliche verklaring"},
		{"   ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTerm(tt.in))
		})
	}
}

func TestCleanCandidate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"vordering.", "vordering"},
		{"(Procesbelang),", "procesbelang"},
		{"art. 3:303", "art 3303"},
		{"eiser's", "eisers"},
		{"ne_bis", "ne_bis"},
		{"rechtspleging—", "rechtspleging"},
		{"...", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanCandidate(tt.in))
		})
	}
}

func TestCandidates(t *testing.T) {
	t.Run("scan order unigrams then bigrams then trigrams", func(t *testing.T) {
		got := Candidates("De eiser heeft procesbelang bij deze vordering.")
		assert.Equal(t, []string{
			"eiser", "heeft", "procesbelang", "vordering",
			"eiser heeft", "heeft procesbelang", "procesbelang bij", "deze vordering",
			"de eiser heeft", "eiser heeft procesbelang", "heeft procesbelang bij",
			"procesbelang bij deze", "bij deze vordering",
		}, got)
	})

	t.Run("length thresholds are exclusive", func(t *testing.T) {
		assert.Equal(t, []string{"recht", "rust recht"}, Candidates("rust recht"))

		assert.Empty(t, Candidates("abc efgh"))
		assert.Equal(t, []string{"abcd efgh"}, Candidates("abcd efgh"))

		assert.Equal(t, []string{"efghij", "cd efghij"}, Candidates("ab cd efghij"))
		assert.Equal(t, []string{"efghijk", "cd efghijk", "ab cd efghijk"}, Candidates("ab cd efghijk"))
	})

	t.Run("repeated spans keep first position", func(t *testing.T) {
		got := Candidates("beslag Beslag beslag.")
		assert.Equal(t, []string{"beslag", "beslag beslag", "beslag beslag beslag"}, got)
	})

	t.Run("empty sentence", func(t *testing.T) {
		assert.Empty(t, Candidates("   "))
	})
}
