// internal/pipeline/planner.go
package pipeline

import (
	"sort"
	"strings"
)

// industrySearchTerms maps an industry to the directory search phrases
// that surface it. Ordering matters: terms are issued until the per-scan
// cap is hit, so the strongest phrases come first.
var industrySearchTerms = map[string][]string{
	"hvac":        {"hvac contractor", "heating and cooling", "air conditioning repair", "furnace repair"},
	"plumbing":    {"plumber", "plumbing contractor", "drain cleaning"},
	"electrical":  {"electrician", "electrical contractor", "lighting installation"},
	"landscaping": {"landscaping", "lawn care", "tree service"},
	"restaurant":  {"restaurant", "cafe", "diner", "pizzeria"},
	"automotive":  {"auto repair", "mechanic", "tire shop", "oil change"},
	"retail":      {"store", "boutique", "retail shop"},
	"healthcare":  {"clinic", "dentist", "urgent care"},
	"legal":       {"law firm", "attorney", "legal services"},
	"accounting":  {"accounting firm", "tax preparation", "bookkeeping"},
}

var genericSearchTerms = []string{"business", "local services"}

// PlanSearchTerms resolves an industry into its ordered search phrases,
// capped at maxTerms. Unknown industries fall back to phrases built from
// the industry string itself; an empty industry yields the generic terms.
func PlanSearchTerms(industry string, maxTerms int) []string {
	if maxTerms <= 0 {
		maxTerms = 3
	}

	key := strings.ToLower(strings.TrimSpace(industry))
	if key == "" || key == "all" {
		return capTerms(genericSearchTerms, maxTerms)
	}

	if terms, ok := industrySearchTerms[key]; ok {
		return capTerms(terms, maxTerms)
	}

	// Partial match in either direction ("auto" finds "automotive").
	// Map iteration order is random, so scan a sorted view.
	for _, known := range industryKeysSorted {
		if strings.Contains(known, key) || strings.Contains(key, known) {
			return capTerms(industrySearchTerms[known], maxTerms)
		}
	}

	fallback := []string{key, key + " service", key + " company", "business"}
	return capTerms(fallback, maxTerms)
}

func capTerms(terms []string, max int) []string {
	if len(terms) <= max {
		out := make([]string, len(terms))
		copy(out, terms)
		return out
	}
	out := make([]string, max)
	copy(out, terms[:max])
	return out
}

var industryKeysSorted []string

func init() {
	for key := range industrySearchTerms {
		industryKeysSorted = append(industryKeysSorted, key)
	}
	sort.Strings(industryKeysSorted)
}
