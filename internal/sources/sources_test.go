package sources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-intel/internal/common/config"
	stderrors "market-intel/internal/common/errors"
	"market-intel/internal/common/logger"
	"market-intel/internal/models"
)

func sourceConfig(baseURL string) config.SourceConfig {
	return config.SourceConfig{
		Enabled: true,
		APIKey:  "test-key",
		BaseURL: baseURL,
		Timeout: 2000,
		Limit:   20,
	}
}

func TestGooglePlacesAdapter_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/place/textsearch/json", r.URL.Path)
		assert.Equal(t, "hvac in Springfield, IL", r.URL.Query().Get("query"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "OK",
			"results": []map[string]interface{}{
				{"name": "Springfield Heating", "formatted_address": "1 Main St", "rating": 4.4},
				{"name": "Capital Cooling", "formatted_address": "2 Oak Ave", "rating": 4.1},
			},
		})
	}))
	defer server.Close()

	adapter := NewGooglePlacesAdapter(sourceConfig(server.URL), logger.NewNoOpLogger())
	records, err := adapter.Fetch(context.Background(), models.Query{Location: "Springfield, IL", Term: "hvac"})

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.SourceGooglePlaces, records[0].Source)
	assert.Contains(t, string(records[0].Payload), "Springfield Heating")
}

func TestGooglePlacesAdapter_ZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "ZERO_RESULTS"})
	}))
	defer server.Close()

	adapter := NewGooglePlacesAdapter(sourceConfig(server.URL), logger.NewNoOpLogger())
	records, err := adapter.Fetch(context.Background(), models.Query{Location: "Nowhere", Term: "hvac"})

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGooglePlacesAdapter_DeniedStatusIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":        "REQUEST_DENIED",
			"error_message": "The provided API key is invalid.",
		})
	}))
	defer server.Close()

	adapter := NewGooglePlacesAdapter(sourceConfig(server.URL), logger.NewNoOpLogger())
	_, err := adapter.Fetch(context.Background(), models.Query{Location: "Boston", Term: "hvac"})

	require.Error(t, err)
	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeSourceUnavailable, stdErr.Code)
}

func TestYelpAdapter_FetchPaginates(t *testing.T) {
	var offsets []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/businesses/search", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		offsets = append(offsets, r.URL.Query().Get("offset"))

		businesses := make([]map[string]interface{}, 0, 50)
		count := 50
		if r.URL.Query().Get("offset") != "0" {
			count = 10
		}
		for i := 0; i < count; i++ {
			businesses = append(businesses, map[string]interface{}{"name": "Biz", "review_count": i})
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"businesses": businesses, "total": 60})
	}))
	defer server.Close()

	cfg := sourceConfig(server.URL)
	cfg.Limit = 100
	adapter := NewYelpAdapter(cfg, logger.NewNoOpLogger())
	records, err := adapter.Fetch(context.Background(), models.Query{Location: "Boston", Term: "plumber"})

	require.NoError(t, err)
	assert.Len(t, records, 60)
	assert.Equal(t, []string{"0", "50"}, offsets)
}

func TestYelpAdapter_ServerErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	adapter := NewYelpAdapter(sourceConfig(server.URL), logger.NewNoOpLogger())
	_, err := adapter.Fetch(context.Background(), models.Query{Location: "Boston", Term: "plumber"})

	require.Error(t, err)
	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeSourceUnavailable, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestSerpAdapter_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "google_local", r.URL.Query().Get("engine"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"local_results": []map[string]interface{}{
				{"title": "Joe's HVAC", "website": "joeshvac.com", "rating": 4.5},
			},
		})
	}))
	defer server.Close()

	adapter := NewSerpAdapter(sourceConfig(server.URL), logger.NewNoOpLogger())
	records, err := adapter.Fetch(context.Background(), models.Query{Location: "Springfield", Term: "hvac repair"})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.SourceSerp, records[0].Source)
}

func TestSerpAdapter_APIErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"error": "Invalid API key"})
	}))
	defer server.Close()

	adapter := NewSerpAdapter(sourceConfig(server.URL), logger.NewNoOpLogger())
	_, err := adapter.Fetch(context.Background(), models.Query{Location: "Springfield", Term: "hvac"})

	require.Error(t, err)
	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeSourceUnavailable, stdErr.Code)
}

func TestAdapterTimeoutMapsToTimeoutError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	adapter := NewGooglePlacesAdapter(sourceConfig(server.URL), logger.NewNoOpLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := adapter.Fetch(ctx, models.Query{Location: "Boston", Term: "hvac"})
	require.Error(t, err)
	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeSourceTimeout, stdErr.Code)
}

func TestSyntheticAdapter_Deterministic(t *testing.T) {
	adapter := NewSyntheticAdapter(config.SourceConfig{Limit: 12}, logger.NewNoOpLogger())
	query := models.Query{Location: "Portland, OR", Term: "landscaping"}

	first, err := adapter.Fetch(context.Background(), query)
	require.NoError(t, err)
	second, err := adapter.Fetch(context.Background(), query)
	require.NoError(t, err)

	require.Len(t, first, 12)
	require.Len(t, second, 12)
	for i := range first {
		assert.JSONEq(t, string(first[i].Payload), string(second[i].Payload))
	}

	var decoded syntheticBusiness
	require.NoError(t, json.Unmarshal(first[0].Payload, &decoded))
	assert.Equal(t, "Portland", decoded.City)
	assert.Contains(t, decoded.Name, "Landscaping")
	assert.GreaterOrEqual(t, decoded.Rating, 3.0)
	assert.LessOrEqual(t, decoded.Rating, 5.0)
}

func TestBuildEnabled_FiltersByRequestAndConfig(t *testing.T) {
	cfg := &config.Config{
		Sources: map[string]config.SourceConfig{
			models.SourceGooglePlaces: {Enabled: true, APIKey: "k"},
			models.SourceYelp:         {Enabled: false, APIKey: "k"},
			models.SourceSynthetic:    {Enabled: true},
		},
	}

	all := BuildEnabled(cfg, nil, logger.NewNoOpLogger())
	names := make([]string, 0, len(all))
	for _, a := range all {
		names = append(names, a.Name())
	}
	assert.Contains(t, names, models.SourceGooglePlaces)
	assert.Contains(t, names, models.SourceSynthetic)
	assert.NotContains(t, names, models.SourceYelp)

	only := BuildEnabled(cfg, []string{models.SourceSynthetic, "bogus"}, logger.NewNoOpLogger())
	require.Len(t, only, 1)
	assert.Equal(t, models.SourceSynthetic, only[0].Name())
}

func TestBuild_UnknownSource(t *testing.T) {
	_, err := Build("craigslist", config.SourceConfig{}, logger.NewNoOpLogger())
	assert.Error(t, err)
}
