// internal/analytics/leads.go
package analytics

// LeadScoreInputs carries the per-business and market-level signals the
// lead scorer combines.
type LeadScoreInputs struct {
	Revenue         float64
	SuccessionScore float64
	MarketShare     float64 // fraction of the scanned market, 0..1
	DigitalScore    float64
	HHI             float64
}

// LeadScore ranks acquisition attractiveness 0-100. Weights: revenue 30%,
// succession 25%, market share 20%, digital presence 15%, fragmentation 10%.
// Weak digital presence raises the score since it represents upside.
func LeadScore(in LeadScoreInputs) float64 {
	revenueScore := clampScore(in.Revenue / 2000000 * 100)
	shareScore := clampScore(in.MarketShare * 1000)
	digitalUpside := clampScore(100 - in.DigitalScore)
	fragmentationScore := clampScore(100 - in.HHI/100)

	return clampScore(
		revenueScore*0.30 +
			in.SuccessionScore*0.25 +
			shareScore*0.20 +
			digitalUpside*0.15 +
			fragmentationScore*0.10,
	)
}

// EstimateYearsInBusiness infers tenure from review accumulation. Review
// volume builds slowly for most local businesses, so it doubles as a
// rough age signal.
func EstimateYearsInBusiness(reviewCount int, rating float64) int {
	years := reviewCount/8 + int(rating)
	if years < 2 {
		years = 2
	}
	if years > 25 {
		years = 25
	}
	return years
}

// EstimateEmployees infers headcount from review volume.
func EstimateEmployees(reviewCount int) int {
	employees := 2 + reviewCount/10
	if employees < 2 {
		employees = 2
	}
	if employees > 50 {
		employees = 50
	}
	return employees
}
