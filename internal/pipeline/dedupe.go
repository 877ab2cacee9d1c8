// internal/pipeline/dedupe.go
package pipeline

import (
	"strings"
	"unicode"

	"market-intel/internal/models"
)

// Directory and social domains are never a business's own website.
var aggregatorDomains = []string{
	"yelp.com", "google.com", "facebook.com", "yellowpages.com",
	"linkedin.com", "instagram.com", "bbb.org", "angi.com",
	"thumbtack.com", "homeadvisor.com",
}

// Deduplicate merges records describing the same business across sources.
// The key is the normalized name; the richest record anchors each merge.
// The operation is idempotent and deterministic for a given input order.
func Deduplicate(records []models.BusinessRecord) []models.MergedBusiness {
	type group struct {
		records []models.BusinessRecord
	}

	groups := make(map[string]*group)
	var order []string

	for _, record := range records {
		key := normalizeNameKey(record.Name)
		if key == "" {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.records = append(g.records, record)
	}

	out := make([]models.MergedBusiness, 0, len(order))
	for _, key := range order {
		out = append(out, mergeGroup(groups[key].records))
	}
	return out
}

// normalizeNameKey lowercases, strips punctuation, and collapses
// whitespace so "Joe's HVAC" and "joes hvac llc" only differ by tokens.
func normalizeNameKey(name string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

func mergeGroup(records []models.BusinessRecord) models.MergedBusiness {
	base := records[0]
	bestScore := completeness(base)
	for _, r := range records[1:] {
		if score := completeness(r); score > bestScore {
			base, bestScore = r, score
		}
	}

	merged := models.MergedBusiness{BusinessRecord: base}

	var websites []string
	seenSources := make(map[string]bool)
	for _, r := range records {
		if merged.Phone == "" {
			merged.Phone = r.Phone
		}
		if merged.Email == "" {
			merged.Email = r.Email
		}
		if merged.Website == "" {
			merged.Website = r.Website
		}
		if merged.Line1 == "" && r.Line1 != "" {
			merged.Line1, merged.City, merged.State, merged.Zip = r.Line1, r.City, r.State, r.Zip
		}
		if merged.Coordinates == nil {
			merged.Coordinates = r.Coordinates
		}
		if r.Rating > merged.Rating {
			merged.Rating = r.Rating
		}
		// Review counts are per-directory audiences, not additive: a
		// Google reviewer and a Yelp reviewer may be the same person.
		if r.ReviewCount > merged.ReviewCount {
			merged.ReviewCount = r.ReviewCount
		}
		if r.PhotoCount > merged.PhotoCount {
			merged.PhotoCount = r.PhotoCount
		}
		if len(r.Categories) > len(merged.Categories) {
			merged.Categories = r.Categories
		}
		if r.Website != "" {
			websites = append(websites, r.Website)
		}
		if !seenSources[r.Source] {
			seenSources[r.Source] = true
			merged.Sources = append(merged.Sources, r.Source)
		}
	}

	if preferred := preferOwnedWebsite(websites); preferred != "" {
		merged.Website = preferred
	}

	return merged
}

// completeness scores how much usable detail a record carries; it picks
// the anchor record for each merge group.
func completeness(r models.BusinessRecord) int {
	return len(r.Website) + len(r.Phone) + len(r.Email) + r.ReviewCount
}

// preferOwnedWebsite returns the first URL that isn't a directory or
// social profile, or empty when every candidate is an aggregator.
func preferOwnedWebsite(websites []string) string {
	for _, site := range websites {
		lower := strings.ToLower(site)
		aggregated := false
		for _, domain := range aggregatorDomains {
			if strings.Contains(lower, domain) {
				aggregated = true
				break
			}
		}
		if !aggregated {
			return site
		}
	}
	return ""
}
