// internal/analytics/digital.go
package analytics

import (
	"strings"

	"market-intel/internal/models"
)

// AssessDigitalOpportunity scores a business's digital presence against
// its industry benchmark and models the revenue lift of closing the gap.
// Component weights: website 25%, SEO 20%, mobile 20%, security 15%,
// speed 20%.
func AssessDigitalOpportunity(industry, website, businessName string, revenue float64) models.DigitalOpportunity {
	benchmark := benchmarkFor(industry)

	websiteScore, seoScore, mobileScore, securityScore, speedScore := presenceScores(website, businessName)

	score := websiteScore*0.25 + seoScore*0.20 + mobileScore*0.20 + securityScore*0.15 + speedScore*0.20

	percentile := (score / benchmark.Leaders) * 100
	if percentile > 99 {
		percentile = 99
	}

	urgency, urgencyScore := modernizationUrgency(score, benchmark)

	gap := benchmark.Average - score
	if gap < 0 {
		gap = 0
	}
	revenueLift := (gap / 100) * benchmark.ROIMultiplier * revenue * 0.15

	return models.DigitalOpportunity{
		Score:         score,
		Percentile:    percentile,
		Urgency:       urgency,
		UrgencyScore:  urgencyScore,
		RevenueLift:   revenueLift,
		WebsiteScore:  websiteScore,
		SEOScore:      seoScore,
		MobileScore:   mobileScore,
		SecurityScore: securityScore,
		SpeedScore:    speedScore,
	}
}

// presenceScores derives the five component scores from website
// characteristics alone. No live probe here; the enrichment stage owns
// actual page fetches.
func presenceScores(website, businessName string) (quality, seo, mobile, security, speed float64) {
	if website == "" {
		return 0, 0, 0, 0, 0
	}

	lower := strings.ToLower(website)

	quality = 30 // having a website at all
	if strings.Contains(lower, "https") {
		quality += 25
	}
	if strings.Contains(lower, "wordpress") || strings.Contains(lower, "wix") || strings.Contains(lower, "squarespace") {
		quality += 15
	} else {
		quality += 25
	}

	domain := lower
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	if i := strings.IndexByte(domain, '/'); i >= 0 {
		domain = domain[:i]
	}

	normalizedName := strings.ReplaceAll(strings.ToLower(businessName), " ", "")
	normalizedDomain := strings.ReplaceAll(strings.ReplaceAll(domain, "-", ""), "_", "")
	if normalizedName != "" && strings.Contains(normalizedDomain, normalizedName) {
		quality += 20 // brand-aligned domain
	}
	if quality > 100 {
		quality = 100
	}

	if quality > 60 {
		seo = 45
	} else {
		seo = 25
	}
	if strings.Contains(domain, ".com") {
		seo += 15
	}
	if seo > 100 {
		seo = 100
	}

	if quality > 50 {
		mobile = 70
	} else {
		mobile = 30
	}

	if strings.Contains(lower, "https") {
		security = 80
	} else {
		security = 20
	}

	// Estimated from overall site quality so repeated scans agree.
	speed = clampScore(60 + (quality-50)/4)

	return quality, seo, mobile, security, speed
}

func modernizationUrgency(score float64, benchmark digitalBenchmark) (string, float64) {
	switch {
	case score < benchmark.Average*0.6:
		return "Critical - Major Digital Transformation Needed", 95
	case score < benchmark.Average:
		return "High - Below Industry Average", 80
	case score < benchmark.Leaders*0.85:
		return "Moderate - Room for Improvement", 60
	default:
		return "Low - Digital Leader", 25
	}
}
