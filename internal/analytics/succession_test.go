package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessSuccessionRisk_MatureFamilyBusiness(t *testing.T) {
	risk := AssessSuccessionRisk(SuccessionInputs{
		Name:            "Johnson & Sons Plumbing",
		Website:         "",
		Rating:          3.8,
		Revenue:         400000,
		YearsInBusiness: 30,
		EmployeeCount:   4,
	})

	// Old, small, family-named, no website: every sub-score elevated.
	assert.GreaterOrEqual(t, risk.Score, 70.0)
	assert.Contains(t, risk.Level, "High")
	assert.Contains(t, risk.Factors, "Business Maturity (30 years)")
	assert.Contains(t, risk.Factors, "Leadership Transition Signals")
	assert.Contains(t, risk.Factors, "Limited Digital Infrastructure")
}

func TestAssessSuccessionRisk_YoungModernBusiness(t *testing.T) {
	risk := AssessSuccessionRisk(SuccessionInputs{
		Name:            "Volt Electric",
		Website:         "https://voltelectricservicecompany.io/contact",
		Rating:          4.8,
		Revenue:         6000000,
		YearsInBusiness: 3,
		EmployeeCount:   40,
	})

	assert.Less(t, risk.Score, 50.0)
}

func TestAssessSuccessionRisk_SubScoreBreakpoints(t *testing.T) {
	assert.Equal(t, 85.0, ageRisk(25))
	assert.Equal(t, 100.0, ageRisk(40))
	assert.Equal(t, 45.0, ageRisk(15))
	assert.Equal(t, 30.0, ageRisk(10))

	assert.Equal(t, 80.0, scaleRisk(100000))
	assert.Equal(t, 65.0, scaleRisk(500000))
	assert.Equal(t, 45.0, scaleRisk(1500000))
	assert.Equal(t, 20.0, scaleRisk(9000000))
}

func TestAssessSuccessionRisk_LevelBands(t *testing.T) {
	cases := []struct {
		score float64
		level string
	}{
		{90, "Critical - Immediate Succession Likely"},
		{75, "High - Strong Succession Signals"},
		{55, "Moderate - Succession Planning Phase"},
		{35, "Low - Stable Operations"},
		{10, "Minimal - Established Operations"},
	}
	for _, tc := range cases {
		level, _ := successionLevel(tc.score)
		assert.Equal(t, tc.level, level, "score=%v", tc.score)
	}
}

func TestEstimateOwnerAge_Bounds(t *testing.T) {
	assert.Equal(t, 30, estimateOwnerAge(0, 20))
	assert.Equal(t, 85, estimateOwnerAge(60, 80))
	assert.Equal(t, 55, estimateOwnerAge(20, 50))
}

func TestEstimateDomainAge_Deterministic(t *testing.T) {
	first := estimateDomainAge("https://www.smithfamilyheatingservice.com")
	second := estimateDomainAge("https://www.smithfamilyheatingservice.com")
	assert.Equal(t, first, second)

	assert.Equal(t, 0, estimateDomainAge(""))
	assert.LessOrEqual(t, estimateDomainAge("https://averyveryverylongdomainname.net"), 25)
}
