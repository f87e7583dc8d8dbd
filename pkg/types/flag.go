// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type flagKind int

const (
	flagNull flagKind = iota
	flagBool
	flagString
	flagNumber
)

// Flag is a loosely typed boolean as found in collaborator-produced JSON:
// the same field may hold true, "yes", "TRUE", 1 or null depending on the
// tool that exported the file. Flag keeps the raw form so each job can
// apply its own interpretation.
type Flag struct {
	kind flagKind
	b    bool
	s    string
	n    float64
}

// BoolFlag returns a Flag holding a JSON bool.
func BoolFlag(b bool) Flag { return Flag{kind: flagBool, b: b} }

// StringFlag returns a Flag holding a JSON string.
func StringFlag(s string) Flag { return Flag{kind: flagString, s: s} }

// IsSet reports whether the field was present and not null.
func (f Flag) IsSet() bool { return f.kind != flagNull }

// Truthy interprets the flag the way the merge job does: strings "yes",
// "true" and "1" (any case) are true, numbers are true when non-zero,
// null is false.
func (f Flag) Truthy() bool {
	switch f.kind {
	case flagBool:
		return f.b
	case flagString:
		switch strings.ToLower(f.s) {
		case "yes", "true", "1":
			return true
		}
		return false
	case flagNumber:
		return f.n != 0
	default:
		return false
	}
}

// StrictTrue interprets the flag the way the French dictionary import
// does: a string is true only when it equals "TRUE" (any case); bools
// and numbers keep their plain truth value.
func (f Flag) StrictTrue() bool {
	switch f.kind {
	case flagBool:
		return f.b
	case flagString:
		return strings.ToUpper(f.s) == "TRUE"
	case flagNumber:
		return f.n != 0
	default:
		return false
	}
}

// UnmarshalJSON accepts bool, string, number and null.
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = Flag{}
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*f = BoolFlag(data[0] == 't')
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = StringFlag(s)
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("flag: unsupported value %s", data)
		}
		*f = Flag{kind: flagNumber, n: n}
	}
	return nil
}

// MarshalJSON writes the Truthy interpretation as a JSON bool.
func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Truthy())
}
