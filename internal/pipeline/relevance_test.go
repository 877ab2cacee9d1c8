package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRelevantBusiness_HVACMatches(t *testing.T) {
	assert.True(t, IsRelevantBusiness("Joe's HVAC Repair", "hvac"))
	assert.True(t, IsRelevantBusiness("Windy City Heating & Cooling", "hvac"))
	assert.True(t, IsRelevantBusiness("Comfort Climate Solutions", "hvac"))
	assert.True(t, IsRelevantBusiness("AC Masters", "hvac"))
}

func TestIsRelevantBusiness_ShortKeywordWordBoundary(t *testing.T) {
	// "ac" must not match inside other words.
	assert.False(t, IsRelevantBusiness("Pacific Grill", "hvac"))
	assert.False(t, IsRelevantBusiness("Macy's Department Store", "hvac"))
	assert.True(t, IsRelevantBusiness("AC & Furnace Pros", "hvac"))
}

func TestIsRelevantBusiness_ExclusionsAlwaysApply(t *testing.T) {
	assert.False(t, IsRelevantBusiness("First Baptist Church", "hvac"))
	assert.False(t, IsRelevantBusiness("First Baptist Church Heating Fund", "hvac"))
	assert.False(t, IsRelevantBusiness("Springfield Public Library", "plumbing"))
	assert.False(t, IsRelevantBusiness("KQED Radio", "electrical"))
	assert.False(t, IsRelevantBusiness("City Museum of Art", "landscaping"))
}

func TestIsRelevantBusiness_ConditionalExclusions(t *testing.T) {
	assert.False(t, IsRelevantBusiness("Mercy Hospital", "hvac"))
	assert.True(t, IsRelevantBusiness("Westside Clinic", "healthcare"))

	assert.False(t, IsRelevantBusiness("First National Bank", "hvac"))
	assert.True(t, IsRelevantBusiness("Harbor Insurance Group", "financial"))
}

func TestIsRelevantBusiness_UnknownIndustryPasses(t *testing.T) {
	assert.True(t, IsRelevantBusiness("Mystery Emporium", "antiques"))
}

func TestIsRelevantBusiness_EmptyInputsPass(t *testing.T) {
	assert.True(t, IsRelevantBusiness("", "hvac"))
	assert.True(t, IsRelevantBusiness("Anything Goes", ""))
}

func TestIsRelevantBusiness_IrrelevantNameRejected(t *testing.T) {
	assert.False(t, IsRelevantBusiness("Sunrise Yoga Studio", "hvac"))
	assert.False(t, IsRelevantBusiness("Quick Cuts Barbershop", "plumbing"))
}
