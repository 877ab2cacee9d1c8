// internal/analytics/revenue.go
package analytics

import (
	"math"

	"market-intel/internal/models"
)

const (
	revenueFloor = 150000
	rangeSpread  = 0.25
)

// EstimateRevenue models annual revenue from review and photo volume on a
// log curve, adjusted for rating quality and business tenure. Estimates
// never drop below the floor a staffed storefront implies.
func EstimateRevenue(industry string, reviewCount, photoCount int, rating float64, yearsInBusiness int) models.RevenueEstimate {
	coeffs := coefficientsFor(industry)

	base := coeffs.Alpha*math.Log1p(float64(reviewCount)) + coeffs.Beta*math.Log1p(float64(photoCount))

	ratingAdj := ratingAdjustment(rating)
	tenureAdj := tenureAdjustment(yearsInBusiness)

	estimate := base * ratingAdj * tenureAdj
	if estimate < revenueFloor {
		estimate = revenueFloor
	}

	return models.RevenueEstimate{
		Estimate:   math.Round(estimate),
		Min:        math.Round(estimate * (1 - rangeSpread)),
		Max:        math.Round(estimate * (1 + rangeSpread)),
		Confidence: revenueConfidence(reviewCount, photoCount, ratingAdj, tenureAdj),
	}
}

func ratingAdjustment(rating float64) float64 {
	switch {
	case rating >= 4.5:
		return 1.2
	case rating >= 4.0:
		return 1.0
	case rating >= 3.5:
		return 0.8
	default:
		return 0.6
	}
}

func tenureAdjustment(years int) float64 {
	switch {
	case years >= 15:
		return 1.15
	case years >= 5:
		return 1.0
	default:
		return 0.9
	}
}

func revenueConfidence(reviewCount, photoCount int, ratingAdj, tenureAdj float64) float64 {
	confidence := 0.70
	if reviewCount >= 50 {
		confidence += 0.10
	}
	if photoCount >= 10 {
		confidence += 0.10
	}

	// Signals beyond the neutral multiplier raise confidence too.
	signals := 0
	if ratingAdj != 1.0 {
		signals++
	}
	if tenureAdj != 1.0 {
		signals++
	}
	if signals >= 2 {
		confidence += 0.10
	}

	if confidence > 0.95 {
		confidence = 0.95
	}
	return confidence
}
