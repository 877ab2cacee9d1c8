// internal/pipeline/relevance.go
package pipeline

import (
	"regexp"
	"strings"
)

// relevanceKeywords lists the name tokens that mark a business as
// belonging to an industry. Industries without an entry pass everything
// not excluded.
var relevanceKeywords = map[string][]string{
	"hvac": {
		"hvac", "heating", "cooling", "air conditioning", "ac", "furnace",
		"heat pump", "ductwork", "ventilation", "climate", "thermal",
		"refrigeration", "boiler", "geothermal", "comfort", "mechanical",
		"contractor",
	},
	"plumbing": {
		"plumbing", "plumber", "pipe", "drain", "sewer", "water heater",
		"faucet", "toilet", "sink", "bathroom", "kitchen", "leak",
	},
	"electrical": {
		"electric", "electrical", "electrician", "wiring", "circuit",
		"panel", "outlet", "lighting", "generator", "solar",
	},
	"landscaping": {
		"landscape", "landscaping", "lawn", "garden", "tree", "grass",
		"irrigation", "sprinkler", "yard", "outdoor", "nursery",
	},
	"automotive": {
		"auto", "car", "vehicle", "automotive", "repair", "service",
		"mechanic", "garage", "tire", "oil", "brake", "engine",
	},
	"restaurant": {
		"restaurant", "cafe", "diner", "grill", "kitchen", "food",
		"dining", "bistro", "eatery", "pizza", "burger", "bar",
	},
}

// Always rejected regardless of industry.
var exclusionKeywords = []string{
	"church", "temple", "mosque", "synagogue", "religious", "ministry",
	"radio", "television", "broadcast",
	"school", "university", "college", "library",
	"government", "municipal",
	"museum",
}

// Rejected unless the scan targets the industry they belong to.
var conditionalExclusions = []struct {
	keywords   []string
	industries []string
}{
	{keywords: []string{"hospital", "medical center", "clinic"}, industries: []string{"healthcare"}},
	{keywords: []string{"bank", "credit union", "insurance"}, industries: []string{"accounting", "financial"}},
}

var shortKeywordPatterns = map[string]*regexp.Regexp{}

func init() {
	for _, keywords := range relevanceKeywords {
		for _, kw := range keywords {
			if len(kw) <= 2 {
				shortKeywordPatterns[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
			}
		}
	}
}

// IsRelevantBusiness reports whether a business name plausibly belongs
// to the scanned industry. Short keywords like "ac" only match on word
// boundaries so "Pacific Grill" stays out of an HVAC scan.
func IsRelevantBusiness(businessName, industry string) bool {
	if businessName == "" || industry == "" {
		return true
	}

	nameLower := strings.ToLower(businessName)
	industryLower := strings.ToLower(strings.TrimSpace(industry))

	for _, keyword := range exclusionKeywords {
		if strings.Contains(nameLower, keyword) {
			return false
		}
	}
	for _, cond := range conditionalExclusions {
		if containsString(cond.industries, industryLower) {
			continue
		}
		for _, keyword := range cond.keywords {
			if strings.Contains(nameLower, keyword) {
				return false
			}
		}
	}

	keywords, ok := relevanceKeywords[industryLower]
	if !ok {
		return true
	}

	for _, keyword := range keywords {
		if len(keyword) <= 2 {
			if shortKeywordPatterns[keyword].MatchString(nameLower) {
				return true
			}
		} else if strings.Contains(nameLower, keyword) {
			return true
		}
	}

	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
