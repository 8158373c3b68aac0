package calc

import (
	"sort"
	"strings"

	"github.com/linyc74/cbioingest/internal/schema"
)

// icd resolves the anatomic site to its ICD-O-3 and ICD-10 codes. An
// unresolvable site yields blank codes, never an error.
func (e *Engine) icd(rec map[string]string) error {
	if !e.schema.Has(schema.TumorDiseaseAnatomicSite) {
		return nil
	}
	site := rec[schema.TumorDiseaseAnatomicSite]
	if e.schema.Has(schema.ICDO3SiteCode) {
		rec[schema.ICDO3SiteCode] = e.sites.ICDO3(site)
	}
	if e.schema.Has(schema.ICD10Classification) {
		rec[schema.ICD10Classification] = e.sites.ICD10(site)
	}
	return nil
}

// SiteCodes maps anatomic site descriptions to classification codes.
type SiteCodes struct {
	icdO3 map[string]string
	icd10 map[string]string
}

// DefaultSiteCodes returns the built-in head-and-neck tables (SEER and
// ICD-10-CM, 2023 editions).
func DefaultSiteCodes() *SiteCodes {
	return &SiteCodes{icdO3: icdO3SiteCodes, icd10: icd10Classifications}
}

// ICDO3 resolves a site to its ICD-O-3 site code, or "".
func (s *SiteCodes) ICDO3(site string) string {
	return matchSite(site, s.icdO3)
}

// ICD10 resolves a site to its ICD-10 classification, or "".
func (s *SiteCodes) ICD10(site string) string {
	return matchSite(site, s.icd10)
}

// matchSite tries an exact match, then a case-insensitive match, then the
// entry sharing the most words with the query. Word-count ties go to the
// entry with the larger matched fraction of its own words.
func matchSite(site string, table map[string]string) string {
	if site == "" {
		return ""
	}
	if code, ok := table[site]; ok {
		return code
	}

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lower := strings.ToLower(site)
	for _, k := range keys {
		if strings.ToLower(k) == lower {
			return table[k]
		}
	}

	query := wordSet(lower)
	var best string
	bestCount, bestFrac := 0, 0.0
	for _, k := range keys {
		words := wordSet(strings.ToLower(k))
		count := 0
		for w := range words {
			if query[w] {
				count++
			}
		}
		if count == 0 {
			continue
		}
		frac := float64(count) / float64(len(words))
		if count > bestCount || (count == bestCount && frac > bestFrac) {
			best, bestCount, bestFrac = k, count, frac
		}
	}
	if best == "" {
		return ""
	}
	return table[best]
}

func wordSet(s string) map[string]bool {
	out := map[string]bool{}
	for _, w := range strings.Fields(s) {
		out[w] = true
	}
	return out
}

// https://training.seer.cancer.gov/head-neck/abstract-code-stage/codes.html (2023 edition)
var icdO3SiteCodes = map[string]string{
	// Lip
	"External upper lip":        "C00.0",
	"External lower lip":        "C00.1",
	"External lip":              "C00.2",
	"Mucosa of upper lip":       "C00.3",
	"Mucosa of lower lip":       "C00.4",
	"Mucosa of lip":             "C00.5",
	"Commissure of lip":         "C00.6",
	"Overlapping lesion of lip": "C00.8",
	"Lip":                       "C00.9",

	// Base of tongue
	"Base of tongue": "C01.9",

	// Other and unspecified parts of tongue
	"Dorsal surface of tongue":     "C02.0",
	"Border of tongue":             "C02.1",
	"Ventral surface of tongue":    "C02.2",
	"Anterior 2/3 of tongue":       "C02.3",
	"Lingual tonsil":               "C02.4",
	"Overlapping lesion of tongue": "C02.8",
	"Tongue":                       "C02.9",

	// Gum
	"Upper gum": "C03.0",
	"Lower gum": "C03.1",
	"Gum":       "C03.9",

	// Floor of mouth
	"Anterior floor of mouth":              "C04.0",
	"Lateral floor of mouth":               "C04.1",
	"Overlapping lesion of floor of mouth": "C04.8",
	"Floor of mouth":                       "C04.9",

	// Palate
	"Hard palate":                  "C05.0",
	"Soft palate":                  "C05.1",
	"Uvula":                        "C05.2",
	"Overlapping lesion of palate": "C05.8",
	"Palate":                       "C05.9",

	// Other and unspecified parts of mouth
	"Cheek mucosa":       "C06.0",
	"Vestibule of mouth": "C06.1",
	"Retromolar area":    "C06.2",
	"Overlapping lesion of other and unspecified parts of mouth": "C06.8",
	"Mouth": "C06.9",

	// Parotid gland
	"Parotid gland": "C07.9",

	// Other and unspecified major salivary gland
	"Submandibular gland":                         "C08.0",
	"Sublingual gland":                            "C08.1",
	"Overlapping lesion of major salivary glands": "C08.8",
	"Major salivary gland":                        "C08.9",

	// Site names used on the data entry side
	"Retromolar Triangle":                    "C06.2",
	"Right Tongue":                           "C02.9",
	"Left Tongue":                            "C02.9",
	"Cross Midline (CM) Tongue":              "C02.9",
	"Left Upper Gingiva":                     "C03.0",
	"Left Lower Gingiva":                     "C03.1",
	"Right Upper Gingiva":                    "C03.0",
	"Right Lower Gingiva":                    "C03.1",
	"Cross Midline (CM) Left Upper Gingiva":  "C03.0",
	"Cross Midline (CM) Right Lower Gingiva": "C03.1",
	"Cross Midline (CM) Gingiva":             "C03.9",
	"Left Palate":                            "C05.9",
	"Right Palate":                           "C05.9",
	"Cross Midline (CM) Palate":              "C05.9",
	"Upper Lip":                              "C00.9",
	"Lower Lip":                              "C00.9",
	"External Upper Lip":                     "C00.0",
	"External Lower Lip":                     "C00.1",
	"Upper Lip Inner Aspect":                 "C00.3",
	"Lower Lip Inner Aspect":                 "C00.4",
	"Cross Midline (CM) Lip":                 "C00.9",
	"Left Buccal Mucosa":                     "C06.0",
	"Right Buccal Mucosa":                    "C06.0",
}

// https://www.icd10data.com/ICD10CM/Codes (2023 edition)
// The codes match ICD-O-3 even though the official wordings differ
// slightly; the ICD-O-3 descriptions are used here. "C08.8" has no
// ICD-10 counterpart.
var icd10Classifications = func() map[string]string {
	out := make(map[string]string, len(icdO3SiteCodes))
	for site, code := range icdO3SiteCodes {
		if code == "C08.8" {
			continue
		}
		out[site] = code
	}
	return out
}()
