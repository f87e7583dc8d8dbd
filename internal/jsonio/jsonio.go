// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package jsonio loads and writes the JSON collections every batch job
// reads and produces. Loading distinguishes an absent file (a skippable
// contribution) from an unreadable or malformed one (fatal for the run).
// Writing is atomic: output appears complete or not at all.
package jsonio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrMissing is wrapped by LoadRequired when the file does not exist.
var ErrMissing = errors.New("file not found")

// LoadCollection reads a JSON array from path. A missing file is not an
// error: it returns an empty slice and found=false so the caller can log
// the absence and continue. Any other read or parse failure is returned.
func LoadCollection[T any](path string) (items []T, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, true, fmt.Errorf("parsing %s: %w", path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}

// LoadRequired is LoadCollection for inputs a job cannot run without.
// A missing file yields an error wrapping ErrMissing.
func LoadRequired[T any](path string) ([]T, error) {
	items, found, err := LoadCollection[T](path)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", path, ErrMissing)
	}
	return items, nil
}

// LoadDocument reads a single JSON document (not necessarily an array)
// into v.
func LoadDocument(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, ErrMissing)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Marshal encodes v with two-space indentation, leaving non-ASCII and
// HTML characters unescaped. U+2028 and U+2029, which encoding/json always
// escapes, are written as raw characters too.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return unescapeSeparators(buf.Bytes()), nil
}

var separatorEscapes = map[string]string{
	`\u2028`: "\u2028",
	`\u2029`: "\u2029",
}

// unescapeSeparators replaces the \u2028 and \u2029 escapes in encoded
// JSON with the characters themselves. An escape preceded by an odd run
// of backslashes is literal text and stays as it is.
func unescapeSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	backslashes := 0
	for i := 0; i < len(data); i++ {
		if data[i] == '\\' && backslashes%2 == 0 && i+6 <= len(data) {
			if raw, ok := separatorEscapes[string(data[i:i+6])]; ok {
				out = append(out, raw...)
				i += 5
				backslashes = 0
				continue
			}
		}
		if data[i] == '\\' {
			backslashes++
		} else {
			backslashes = 0
		}
		out = append(out, data[i])
	}
	return out
}

// WriteJSON encodes v and replaces path with the result. The data goes to
// a temporary file in the same directory first and is renamed into place,
// so a failed run never leaves a truncated file behind. Parent
// directories are created as needed.
func WriteJSON(path string, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	return WriteFile(path, data)
}

// WriteFile atomically replaces path with data.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
