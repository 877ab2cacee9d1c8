package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessDensity_KnownMetro(t *testing.T) {
	report := BusinessDensity("San Francisco", 440, false)

	assert.False(t, report.Degraded)
	assert.Equal(t, int64(884279), report.PopulationBase)
	// 440 / 884279 ≈ 0.0005 per person
	assert.InDelta(t, 0.4976, report.PerThousand, 0.001)
	assert.Equal(t, "Very Low", report.Level)
	assert.Equal(t, "Underserved", report.Interpretation)
}

func TestBusinessDensity_MetroWithStateSuffix(t *testing.T) {
	report := BusinessDensity("San Francisco, CA", 100, false)

	assert.False(t, report.Degraded)
	assert.Equal(t, int64(884279), report.PopulationBase)
}

func TestBusinessDensity_HouseholdBase(t *testing.T) {
	byPop := BusinessDensity("San Francisco", 100, false)
	byHH := BusinessDensity("San Francisco", 100, true)

	assert.Equal(t, int64(378438), byHH.PopulationBase)
	assert.Greater(t, byHH.PerThousand, byPop.PerThousand)
}

func TestBusinessDensity_UnknownLocationDegrades(t *testing.T) {
	report := BusinessDensity("Smallville", 50, false)

	assert.True(t, report.Degraded)
	assert.Equal(t, defaultPopulation, report.PopulationBase)
}

func TestBusinessDensity_ScalesWithCount(t *testing.T) {
	small := BusinessDensity("Chicago", 10, false)
	large := BusinessDensity("Chicago", 1000, false)

	assert.InDelta(t, small.PerThousand*100, large.PerThousand, 0.0001)
}

func TestBusinessDensity_LevelBands(t *testing.T) {
	// Default base of 100000 makes the band thresholds easy to hit.
	cases := []struct {
		count int
		level string
	}{
		{1500, "Very High"},
		{800, "High"},
		{300, "Moderate"},
		{150, "Low"},
		{50, "Very Low"},
	}
	for _, tc := range cases {
		report := BusinessDensity("Nowhere", tc.count, false)
		assert.Equal(t, tc.level, report.Level, "count=%d", tc.count)
	}
}

func TestMarketOpportunity_Matrix(t *testing.T) {
	assert.Equal(t, "Exceptional", MarketOpportunity("Very Low", "Excellent"))
	assert.Equal(t, "High", MarketOpportunity("Low", "Good"))
	assert.Equal(t, "Moderate", MarketOpportunity("Moderate", "Good"))
	assert.Equal(t, "Limited", MarketOpportunity("Very High", "Limited"))
}
