// internal/analytics/density.go
package analytics

import "market-intel/internal/models"

// BusinessDensity relates business count to the population base of the
// scanned location. The boolean on the report is set when the metro was
// not in the census table and the default base stood in.
func BusinessDensity(location string, businessCount int, useHouseholds bool) models.DensityReport {
	entry, found := lookupCensus(location)

	base := entry.Population
	if useHouseholds {
		base = entry.Households
	}
	if base <= 0 {
		base = defaultPopulation
		found = false
	}

	ratio := float64(businessCount) / float64(base)
	level, interpretation := densityLevel(ratio)

	return models.DensityReport{
		PerThousand:    ratio * 1000,
		Level:          level,
		Interpretation: interpretation,
		PopulationBase: base,
		Degraded:       !found,
	}
}

func densityLevel(ratio float64) (string, string) {
	switch {
	case ratio > 0.01:
		return "Very High", "Oversaturated"
	case ratio > 0.005:
		return "High", "Saturated"
	case ratio > 0.002:
		return "Moderate", "Competitive"
	case ratio > 0.001:
		return "Low", "Opportunity"
	default:
		return "Very Low", "Underserved"
	}
}

// MarketOpportunity combines the density read with the concentration
// rollup into a single acquisition-climate label.
func MarketOpportunity(densityLevelName, rollup string) string {
	switch {
	case densityLevelName == "Very Low" && rollup == "Excellent":
		return "Exceptional"
	case (densityLevelName == "Low" || densityLevelName == "Very Low") &&
		(rollup == "Excellent" || rollup == "Good"):
		return "High"
	case densityLevelName == "Moderate" && (rollup == "Good" || rollup == "Moderate"):
		return "Moderate"
	default:
		return "Limited"
	}
}
