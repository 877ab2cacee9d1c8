package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessDigitalOpportunity_NoWebsite(t *testing.T) {
	result := AssessDigitalOpportunity("hvac", "", "Joe's HVAC", 800000)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, "Critical - Major Digital Transformation Needed", result.Urgency)
	assert.Equal(t, 95.0, result.UrgencyScore)
	// Full 42-point gap against the hvac average.
	assert.InDelta(t, 0.42*1.8*800000*0.15, result.RevenueLift, 0.01)
}

func TestAssessDigitalOpportunity_SecureBrandSite(t *testing.T) {
	result := AssessDigitalOpportunity("hvac", "https://joeshvac.com", "Joes HVAC", 800000)

	assert.Greater(t, result.Score, 60.0)
	assert.Equal(t, 80.0, result.SecurityScore)
	assert.Equal(t, 70.0, result.MobileScore)
	assert.Greater(t, result.Percentile, 50.0)
}

func TestAssessDigitalOpportunity_PercentileCapped(t *testing.T) {
	result := AssessDigitalOpportunity("plumbing", "https://acme.com", "Acme", 500000)
	assert.LessOrEqual(t, result.Percentile, 99.0)
}

func TestAssessDigitalOpportunity_UrgencyBands(t *testing.T) {
	benchmark := benchmarkFor("hvac") // avg 42, leaders 78

	urgency, score := modernizationUrgency(20, benchmark)
	assert.Equal(t, "Critical - Major Digital Transformation Needed", urgency)
	assert.Equal(t, 95.0, score)

	urgency, score = modernizationUrgency(35, benchmark)
	assert.Equal(t, "High - Below Industry Average", urgency)
	assert.Equal(t, 80.0, score)

	urgency, score = modernizationUrgency(55, benchmark)
	assert.Equal(t, "Moderate - Room for Improvement", urgency)
	assert.Equal(t, 60.0, score)

	urgency, score = modernizationUrgency(75, benchmark)
	assert.Equal(t, "Low - Digital Leader", urgency)
	assert.Equal(t, 25.0, score)
}

func TestAssessDigitalOpportunity_NoLiftAboveAverage(t *testing.T) {
	// retail average is 72; a strong site should clear it
	result := AssessDigitalOpportunity("retail", "https://bigbrandstore.com", "Big Brand Store", 2000000)
	if result.Score >= 72 {
		assert.Equal(t, 0.0, result.RevenueLift)
	}
}
