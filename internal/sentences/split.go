// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sentences splits paragraph-level bilingual legislation into
// aligned sentence pairs and flags pairs whose English side looks
// incomplete.
package sentences

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// abbreviations never end a sentence when they precede ". X".
var abbreviations = []string{
	"Art", "Rv", "Nr", "Dr", "Mr", "Prof", "Jr", "Sr",
	"etc", "i.e", "e.g", "vgl", "bv", "eg", "viz", "cf",
}

const (
	minSplitText   = 5
	minSplitLength = 50
)

// Split breaks text into sentences. Text shorter than 50 characters or
// with at most one period is returned whole. Otherwise text is cut at a
// period followed by whitespace and an uppercase ASCII letter, unless the
// period closes a known abbreviation. Each piece is trimmed and gets a
// terminating period when it has no final punctuation.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minSplitText {
		return []string{text}
	}
	if utf8.RuneCountInString(text) < minSplitLength || strings.Count(text, ".") <= 1 {
		return []string{strings.TrimSpace(text)}
	}

	var out []string
	for _, piece := range cut(text) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		if !strings.HasSuffix(piece, ".") && !strings.HasSuffix(piece, "?") && !strings.HasSuffix(piece, "!") {
			piece += "."
		}
		out = append(out, piece)
	}
	if len(out) == 0 {
		return []string{strings.TrimSpace(text)}
	}
	return out
}

// cut splits text at sentence boundaries, dropping the period and the
// whitespace that make up each boundary.
func cut(text string) []string {
	var pieces []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '.' {
			continue
		}
		j := i + 1
		for j < len(text) {
			r, size := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(r) {
				break
			}
			j += size
		}
		if j == i+1 || j >= len(text) || text[j] < 'A' || text[j] > 'Z' {
			continue
		}
		if endsWithAbbreviation(text[:i]) {
			continue
		}
		pieces = append(pieces, text[start:i])
		start = j
		i = j - 1
	}
	return append(pieces, text[start:])
}

// endsWithAbbreviation reports whether s ends with an abbreviation that
// starts at a word boundary.
func endsWithAbbreviation(s string) bool {
	for _, abbr := range abbreviations {
		if !strings.HasSuffix(s, abbr) {
			continue
		}
		before := s[:len(s)-len(abbr)]
		if before == "" {
			return true
		}
		r, _ := utf8.DecodeLastRuneInString(before)
		if !isWordRune(r) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}
