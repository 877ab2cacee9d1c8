package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateScanRequest_Valid(t *testing.T) {
	doc := map[string]interface{}{
		"location":       "San Francisco",
		"industry":       "hvac",
		"max_businesses": 50,
		"use_cache":      true,
	}

	result, err := ValidateScanRequest(doc)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateScanRequest_NullIndustry(t *testing.T) {
	doc := map[string]interface{}{
		"location": "San Francisco",
		"industry": nil,
	}

	result, err := ValidateScanRequest(doc)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	doc["industry"] = 42
	result, err = ValidateScanRequest(doc)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidateScanRequest_MissingLocation(t *testing.T) {
	doc := map[string]interface{}{
		"industry": "hvac",
	}

	result, err := ValidateScanRequest(doc)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
}

func TestValidateScanRequest_EmptyLocation(t *testing.T) {
	doc := map[string]interface{}{
		"location": "",
	}

	result, err := ValidateScanRequest(doc)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidateScanRequest_UnknownField(t *testing.T) {
	doc := map[string]interface{}{
		"location": "Boston",
		"budget":   100000,
	}

	result, err := ValidateScanRequest(doc)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}
