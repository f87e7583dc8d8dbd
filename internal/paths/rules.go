// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paths rewrites data-file references inside project files when
// the data directory layout changes.
package paths

import (
	"fmt"
	"regexp"
	"sort"
)

// Rule replaces every match of Pattern with Replacement (regexp expansion
// syntax).
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply rewrites content with the rule.
func (r Rule) Apply(content string) string {
	return r.Pattern.ReplaceAllString(content, r.Replacement)
}

// Preset is a named rule set with the files it applies to.
type Preset struct {
	Name        string
	Description string
	Rules       []Rule
	Patterns    []string
	Exclude     []string
}

// Rewrite applies every rule of the preset in order.
func (p Preset) Rewrite(content string) string {
	for _, r := range p.Rules {
		content = r.Apply(content)
	}
	return content
}

// quotedMove moves a quoted file reference under prefix+netherlands/.
func quotedMove(prefix, file string) Rule {
	return Rule{
		Pattern:     regexp.MustCompile(`(['"])(` + regexp.QuoteMeta(prefix) + `)(` + file + `)(['"])`),
		Replacement: "${1}${2}netherlands/${3}${4}",
	}
}

// relocate moves a file reference to a new path, keeping an optional
// leading "../".
func relocate(from, to string) Rule {
	return Rule{
		Pattern:     regexp.MustCompile(`(\.\./)?` + regexp.QuoteMeta(from)),
		Replacement: "${1}" + to,
	}
}

const (
	nlFiles      = `NL-[^'"]*\.json`
	reportFile   = `incomplete-translations-report\.json`
	legacyDir    = "i8n/netherlands/"
	dictionaries = "legal-data/netherlands/dictionaries/"
	civilProc    = "legal-data/netherlands/legislation/civil-procedure/"
	reports      = "legal-data/netherlands/reports/"
)

var jurisdictionPreset = Preset{
	Name:        "jurisdiction",
	Description: "i8n/NL-*.json -> i8n/netherlands/NL-*.json",
	Rules: []Rule{
		quotedMove("../i8n/", nlFiles),
		quotedMove("i8n/", nlFiles),
		quotedMove("../i8n/", reportFile),
		quotedMove("i8n/", reportFile),
	},
	Patterns: []string{"*.py", "import/*.py"},
	Exclude:  []string{"update-paths-to-jurisdiction.py"},
}

func legalDataRules() []Rule {
	moves := []struct{ file, dir string }{
		{"NL-legal-dictionary.json", dictionaries},
		{"NL-EN-legal-dictionary.json", dictionaries},
		{"NL-EN-legal-glossary.json", dictionaries},
		{"NL-FR-legal-glossary.json", dictionaries},
		{"NL-DE-legal-glossary.json", dictionaries},
		{"NL-ES-legal-glossary.json", dictionaries},
		{"NL-EN-legislation-extracted-terms.json", dictionaries},
		{"NL-EN-legislation-glossary-additions.json", dictionaries},
		{"NL-EN-civil-procedure-all.json", civilProc},
		{"NL-EN-civil-procedure-all-BACKUP.json", civilProc},
		{"NL-EN-civil-procedure-book1.json", civilProc},
		{"NL-EN-civil-procedure-book2-3.json", civilProc},
		{"NL-EN-civil-procedure-book4.json", civilProc},
		{"NL-EN-example-sentences.json", civilProc},
		{"incomplete-translations-report.json", reports},
	}
	rules := make([]Rule, len(moves))
	for i, m := range moves {
		rules[i] = relocate(legacyDir+m.file, m.dir+m.file)
	}
	return rules
}

var legalDataPreset = Preset{
	Name:        "legal-data",
	Description: "i8n/netherlands/ -> legal-data/netherlands/{dictionaries,legislation/civil-procedure,reports}/",
	Rules:       legalDataRules(),
	Patterns:    []string{"*.py", "import/*.py", "*.html"},
	Exclude:     []string{"update-paths-to-jurisdiction.py", "update-paths-legal-data.py"},
}

var presets = map[string]Preset{
	jurisdictionPreset.Name: jurisdictionPreset,
	legalDataPreset.Name:    legalDataPreset,
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown path preset %q (have %v)", name, Names())
	}
	return p, nil
}

// Names lists the preset names in order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
