// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/legal-lexicon/internal/jsonio"
	"github.com/pdiddy/legal-lexicon/pkg/types"
)

const duplicatedJSON = `[
  {"id": "term_00001", "term": "procesbelang", "lang": "nl-nl",
   "translations": [
     {"translation": "legal interest", "lang": "en-gb", "definition": null, "source": "Unknown",
      "source-type": "Civil Procedure Glossary", "license": "CC BY 4.0", "sme-reviewed": false, "context": null},
     {"translation": "legal interest", "lang": "en-gb", "definition": null, "source": "Unknown",
      "source-type": "Legal Glossary", "license": "CC BY 4.0", "sme-reviewed": false, "context": null}
   ],
   "examples": [], "metadata": {}},
  {"id": "term_00002", "term": "eiser", "lang": "nl-nl", "translations": null}
]`

func TestDedupeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unified-dictionary.json")
	writeFile(t, path, duplicatedJSON)

	var out bytes.Buffer
	stats, err := DedupeFile(path, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TermsWithDuplicates)
	assert.Equal(t, 1, stats.Removed())
	assert.Contains(t, out.String(), "procesbelang: 2 -> 1 translations")

	terms, err := LoadDictionary(path)
	require.NoError(t, err)
	require.Len(t, terms, 2)
	require.Len(t, terms[0].Translations, 1)
	assert.Equal(t, types.LabelLegalGlossary, terms[0].Translations[0].SourceType)
	assert.Equal(t, "eiser", terms[1].Term)
	assert.NotNil(t, terms[1].Translations)

	again, err := DedupeFile(path, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Zero(t, again.Removed(), "a second pass changes nothing")
}

func TestDedupeFileMissing(t *testing.T) {
	_, err := DedupeFile(filepath.Join(t.TempDir(), "absent.json"), &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, jsonio.ErrMissing))
}
