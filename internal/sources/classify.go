// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import "strings"

type licenseRule struct {
	match func(license, text string) bool
	name  string
	url   string
}

func inLicense(subs ...string) func(license, text string) bool {
	return func(license, _ string) bool {
		for _, s := range subs {
			if strings.Contains(license, s) {
				return true
			}
		}
		return false
	}
}

func inLicenseOrText(sub string) func(license, text string) bool {
	return func(license, text string) bool {
		return strings.Contains(license, sub) || strings.Contains(text, sub)
	}
}

// licenseRules are tried in order; the first match names the license.
var licenseRules = []licenseRule{
	{inLicenseOrText("CC BY 4.0"), "CC BY 4.0", "https://creativecommons.org/licenses/by/4.0/"},
	{inLicenseOrText("CC0"), "CC0", "https://creativecommons.org/publicdomain/zero/1.0/"},
	{inLicense("CC BY-NC-SA"), "CC BY-NC-SA 3.0", "https://creativecommons.org/licenses/by-nc-sa/3.0/"},
	{inLicense("CC BY-NC"), "CC BY-NC 3.0", "https://creativecommons.org/licenses/by-nc/3.0/"},
	{inLicense("OGL", "Open Government Licence"), "OGL v3.0", "https://www.nationalarchives.gov.uk/doc/open-government-licence/version/3/"},
	{inLicense("Apache 2.0"), "Apache 2.0", "https://www.apache.org/licenses/LICENSE-2.0"},
	{inLicense("Public Domain", "US Government Works"), "Public Domain", ""},
	{inLicense("Licence Ouverte"), "Licence Ouverte 2.0", "https://www.etalab.gouv.fr/licence-ouverte-open-licence"},
}

// ClassifyLicense maps the free-text license line of a section (and the
// section text for the Creative Commons checks) to a license name and URL.
// The URL is empty when the license has none.
func ClassifyLicense(license, text string) (name, url string) {
	for _, r := range licenseRules {
		if r.match(license, text) {
			return r.name, r.url
		}
	}
	return DefaultLicense, ""
}

// jurisdictions are tried in order against the source name.
var jurisdictions = []struct {
	key  string
	code string
}{
	{"European Union", "EU"},
	{"EUR-Lex", "EU"},
	{"DGT", "EU"},
	{"EuroVoc", "EU"},
	{"JRC-Acquis", "EU"},
	{"EUCLCORP", "EU"},
	{"ELRC-SHARE", "EU"},
	{"Switzerland", "CH"},
	{"Swiss", "CH"},
	{"France", "FR"},
	{"Légifrance", "FR"},
	{"United Kingdom", "GB"},
	{"UK Legislation", "GB"},
	{"United Nations", "UN"},
	{"MultiUN", "UN"},
	{"UN Parallel", "UN"},
	{"United States", "US"},
	{"US Library", "US"},
	{"Japan", "JP"},
	{"Japanese Law", "JP"},
	{"South Korea", "KR"},
	{"Korea", "KR"},
	{"Thailand", "TH"},
	{"Vietnam", "VN"},
	{"Hong Kong", "HK"},
	{"Taiwan", "TW"},
	{"South Africa", "ZA"},
	{"India", "IN"},
	{"Brazil", "BR"},
	{"Russia", "RU"},
	{"Kenya", "KE"},
	{"Uganda", "UG"},
	{"Ghana", "GH"},
	{"Tanzania", "TZ"},
	{"Czech", "CZ"},
	{"WTO", "INTL"},
	{"Asian Language Treebank", "ASEAN"},
	{"Leeds Arabic", "ARAB"},
	{"AfricanLII", "AFRICA"},
	{"ECHR", "ECHR"},
	{"Constitute Project", "INTL"},
}

// ClassifyJurisdiction returns the jurisdiction code for a source name.
func ClassifyJurisdiction(name string) string {
	for _, j := range jurisdictions {
		if strings.Contains(name, j.key) {
			return j.code
		}
	}
	return DefaultJurisdiction
}

// Source types.
const (
	TypeConstitution      = "Constitutional Law Corpus"
	TypeCourt             = "Court Judgments"
	TypeLegislation       = "Legislation Corpus"
	TypeParallelCorpus    = "Parallel Corpus"
	TypeTerminology       = "Legal Terminology Database"
	TypeTranslationMemory = "Translation Memory"
	TypeDatabase          = "Legal Database"
)

// ClassifySourceType guesses the kind of source from its name and
// content description.
func ClassifySourceType(name, content string) string {
	n := strings.ToLower(name)
	c := strings.ToLower(content)
	switch {
	case strings.Contains(n, "constitution") || strings.Contains(c, "constitution"):
		return TypeConstitution
	case strings.Contains(n, "court") || strings.Contains(c, "judgment") || strings.Contains(c, "case law"):
		return TypeCourt
	case strings.Contains(c, "legislation") || strings.Contains(c, "statute") || strings.Contains(c, "code"):
		return TypeLegislation
	case strings.Contains(n, "corpus") || strings.Contains(n, "parallel"):
		return TypeParallelCorpus
	case strings.Contains(n, "thesaurus") || strings.Contains(n, "terminology"):
		return TypeTerminology
	case strings.Contains(n, "translation memory") || strings.Contains(content, "TMX"):
		return TypeTranslationMemory
	default:
		return TypeDatabase
	}
}
