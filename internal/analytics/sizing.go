// internal/analytics/sizing.go
package analytics

import "market-intel/internal/models"

// MarketSizing produces top-down TAM/SAM/SOM estimates for the scanned
// market. SAM is the 25% of TAM realistically serviceable; SOM the 10% of
// SAM obtainable by a single operator.
func EstimateMarketSizing(industry, state string, businessCount int) models.MarketSizing {
	multiplier := geographicMultiplierFor(state)
	tam := float64(businessCount) * averageRevenueFor(industry) * multiplier
	sam := tam * 0.25
	som := sam * 0.10

	return models.MarketSizing{
		TAM:                  tam,
		SAM:                  sam,
		SOM:                  som,
		GeographicMultiplier: multiplier,
	}
}
