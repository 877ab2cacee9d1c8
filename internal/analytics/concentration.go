// internal/analytics/concentration.go
package analytics

import (
	"sort"

	"market-intel/internal/models"
)

// Proxy names reported alongside the HHI so consumers know which
// per-business value backed the market shares.
const (
	ProxyRevenue         = "revenue"
	ProxyReviewsWeighted = "reviews_weighted"
	ProxyEqual           = "equal"
)

// MarketConcentration computes the Herfindahl-Hirschman Index on a 0-10000
// scale. Revenue estimates back the shares when available; otherwise
// review counts weighted by rating stand in, and failing that every
// business gets an equal share.
func MarketConcentration(businesses []models.MergedBusiness, revenues []models.RevenueEstimate) models.ConcentrationReport {
	if len(businesses) == 0 {
		return models.ConcentrationReport{
			FragmentationLevel: fragmentationLevel(0),
			RollupOpportunity:  rollupOpportunity(0),
			Proxy:              ProxyEqual,
		}
	}

	values, proxy := proxyValues(businesses, revenues)

	var total float64
	for _, v := range values {
		total += v
	}
	if total == 0 {
		equal := 1.0 / float64(len(values))
		for i := range values {
			values[i] = equal
		}
		total = 1.0
		proxy = ProxyEqual
	}

	shares := make([]float64, len(values))
	var hhi float64
	for i, v := range values {
		share := v / total
		shares[i] = share
		hhi += share * share * 10000
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(shares)))
	topShare := shares[0]
	top3 := 0.0
	for i := 0; i < len(shares) && i < 3; i++ {
		top3 += shares[i]
	}

	return models.ConcentrationReport{
		HHI:                hhi,
		FragmentationLevel: fragmentationLevel(hhi),
		RollupOpportunity:  rollupOpportunity(hhi),
		TopShare:           topShare,
		Top3Share:          top3,
		Proxy:              proxy,
	}
}

func proxyValues(businesses []models.MergedBusiness, revenues []models.RevenueEstimate) ([]float64, string) {
	values := make([]float64, len(businesses))

	if len(revenues) == len(businesses) {
		usable := false
		for i, r := range revenues {
			values[i] = r.Estimate
			if r.Estimate > 0 {
				usable = true
			}
		}
		if usable {
			return values, ProxyRevenue
		}
	}

	usable := false
	for i, b := range businesses {
		values[i] = float64(b.ReviewCount) * b.Rating / 5.0
		if values[i] > 0 {
			usable = true
		}
	}
	if usable {
		return values, ProxyReviewsWeighted
	}

	for i := range values {
		values[i] = 1
	}
	return values, ProxyEqual
}

// DOJ merger-guideline bands.
func fragmentationLevel(hhi float64) string {
	switch {
	case hhi < 1500:
		return "Highly Fragmented"
	case hhi <= 2500:
		return "Moderately Concentrated"
	default:
		return "Highly Concentrated"
	}
}

func rollupOpportunity(hhi float64) string {
	switch {
	case hhi < 1000:
		return "Excellent"
	case hhi < 1800:
		return "Good"
	case hhi < 2500:
		return "Moderate"
	default:
		return "Limited"
	}
}
