// internal/sources/googleplaces.go
package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"market-intel/internal/common/config"
	"market-intel/internal/common/errors"
	httpclient "market-intel/internal/common/http"
	"market-intel/internal/common/logger"
	"market-intel/internal/models"
)

const defaultGooglePlacesBaseURL = "https://maps.googleapis.com"

type googlePlacesSearchResponse struct {
	Results      []json.RawMessage `json:"results"`
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message"`
}

// GooglePlacesAdapter queries the Places Text Search API.
type GooglePlacesAdapter struct {
	apiKey  string
	baseURL string
	limit   int
	client  *httpclient.Client
	logger  logger.Logger
}

func NewGooglePlacesAdapter(cfg config.SourceConfig, log logger.Logger) *GooglePlacesAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGooglePlacesBaseURL
	}
	return &GooglePlacesAdapter{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		limit:   cfg.Limit,
		client:  httpclient.NewClient(time.Duration(cfg.Timeout) * time.Millisecond),
		logger:  log,
	}
}

func (a *GooglePlacesAdapter) Name() string { return models.SourceGooglePlaces }

func (a *GooglePlacesAdapter) Fetch(ctx context.Context, query models.Query) ([]models.RawRecord, error) {
	params := url.Values{}
	params.Set("query", fmt.Sprintf("%s in %s", query.Term, query.Location))
	params.Set("key", a.apiKey)
	if meters := radiusMeters(query.RadiusMiles, 50000); meters > 0 {
		params.Set("radius", strconv.Itoa(meters))
	}
	endpoint := a.baseURL + "/maps/api/place/textsearch/json?" + params.Encode()

	var resp googlePlacesSearchResponse
	if err := a.client.GetJSON(ctx, endpoint, nil, &resp); err != nil {
		if ctx.Err() != nil {
			return nil, errors.NewSourceTimeoutError(a.Name())
		}
		return nil, errors.NewSourceUnavailableError(a.Name(), err)
	}

	switch resp.Status {
	case "OK", "ZERO_RESULTS":
	default:
		return nil, errors.NewSourceUnavailableError(a.Name(),
			fmt.Errorf("places status %s: %s", resp.Status, resp.ErrorMessage))
	}

	results := resp.Results
	if limit := effectiveLimit(a.limit, query.Limit); limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	records := make([]models.RawRecord, 0, len(results))
	for _, result := range results {
		records = append(records, models.RawRecord{Source: a.Name(), Payload: result})
	}

	a.logger.Debug("Places fetch complete", map[string]interface{}{
		"term":    query.Term,
		"records": len(records),
	})
	return records, nil
}

// radiusMeters converts the request radius, clamped to the provider cap.
func radiusMeters(miles, providerCap int) int {
	if miles <= 0 {
		return 0
	}
	meters := miles * 1609
	if meters > providerCap {
		return providerCap
	}
	return meters
}

// effectiveLimit picks the tighter of the configured and per-query caps.
func effectiveLimit(configured, requested int) int {
	switch {
	case configured <= 0:
		return requested
	case requested <= 0:
		return configured
	case requested < configured:
		return requested
	default:
		return configured
	}
}
