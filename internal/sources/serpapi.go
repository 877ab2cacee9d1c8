// internal/sources/serpapi.go
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

const (
	defaultSerpBaseURL = "https://serpapi.com"
	serpPageSize       = 20
)

type serpSearchResponse struct {
	LocalResults []json.RawMessage `json:"local_results"`
	Error        string            `json:"error"`
}

// SerpAdapter queries SerpApi's google_local engine for map-pack style
// listings, which often carry the business website that the directory
// APIs withhold.
type SerpAdapter struct {
	apiKey  string
	baseURL string
	limit   int
	client  *httpclient.Client
	logger  logger.Logger
}

func NewSerpAdapter(cfg config.SourceConfig, log logger.Logger) *SerpAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultSerpBaseURL
	}
	return &SerpAdapter{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		limit:   cfg.Limit,
		client:  httpclient.NewClient(time.Duration(cfg.Timeout) * time.Millisecond),
		logger:  log,
	}
}

func (a *SerpAdapter) Name() string { return models.SourceSerp }

func (a *SerpAdapter) Fetch(ctx context.Context, query models.Query) ([]models.RawRecord, error) {
	num := effectiveLimit(a.limit, query.Limit)
	if num <= 0 || num > serpPageSize {
		num = serpPageSize
	}

	params := url.Values{}
	params.Set("engine", "google_local")
	params.Set("q", query.Term)
	params.Set("location", query.Location)
	params.Set("num", strconv.Itoa(num))
	params.Set("api_key", a.apiKey)
	endpoint := a.baseURL + "/search.json?" + params.Encode()

	var resp serpSearchResponse
	if err := a.client.GetJSON(ctx, endpoint, nil, &resp); err != nil {
		if ctx.Err() != nil {
			return nil, errors.NewSourceTimeoutError(a.Name())
		}
		return nil, errors.NewSourceUnavailableError(a.Name(), err)
	}
	if resp.Error != "" {
		return nil, errors.NewSourceUnavailableError(a.Name(), fmt.Errorf("serpapi: %s", resp.Error))
	}

	results := resp.LocalResults
	if len(results) > num {
		results = results[:num]
	}

	records := make([]models.RawRecord, 0, len(results))
	for _, result := range results {
		records = append(records, models.RawRecord{Source: a.Name(), Payload: result})
	}

	a.logger.Debug("Serp fetch complete", map[string]interface{}{
		"term":    query.Term,
		"records": len(records),
	})
	return records, nil
}
