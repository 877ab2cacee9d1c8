// internal/sources/yelp.go
package sources

import (
	"context"
	"encoding/json"
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
	defaultYelpBaseURL = "https://api.yelp.com"
	yelpPageSize       = 50
	yelpFetchCap       = 200
)

type yelpSearchResponse struct {
	Businesses []json.RawMessage `json:"businesses"`
	Total      int               `json:"total"`
}

// YelpAdapter queries the Fusion business search API, paging through
// results up to the fetch cap.
type YelpAdapter struct {
	apiKey  string
	baseURL string
	limit   int
	client  *httpclient.Client
	logger  logger.Logger
}

func NewYelpAdapter(cfg config.SourceConfig, log logger.Logger) *YelpAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultYelpBaseURL
	}
	return &YelpAdapter{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		limit:   cfg.Limit,
		client:  httpclient.NewClient(time.Duration(cfg.Timeout) * time.Millisecond),
		logger:  log,
	}
}

func (a *YelpAdapter) Name() string { return models.SourceYelp }

func (a *YelpAdapter) Fetch(ctx context.Context, query models.Query) ([]models.RawRecord, error) {
	want := effectiveLimit(a.limit, query.Limit)
	if want <= 0 || want > yelpFetchCap {
		want = yelpFetchCap
	}
	headers := map[string]string{"Authorization": "Bearer " + a.apiKey}

	var records []models.RawRecord
	for offset := 0; len(records) < want; offset += yelpPageSize {
		pageSize := want - len(records)
		if pageSize > yelpPageSize {
			pageSize = yelpPageSize
		}

		params := url.Values{}
		params.Set("location", query.Location)
		params.Set("term", query.Term)
		params.Set("limit", strconv.Itoa(pageSize))
		params.Set("offset", strconv.Itoa(offset))
		if meters := radiusMeters(query.RadiusMiles, 40000); meters > 0 {
			params.Set("radius", strconv.Itoa(meters))
		}
		endpoint := a.baseURL + "/v3/businesses/search?" + params.Encode()

		var resp yelpSearchResponse
		if err := a.client.GetJSON(ctx, endpoint, headers, &resp); err != nil {
			if ctx.Err() != nil {
				return nil, errors.NewSourceTimeoutError(a.Name())
			}
			// Keep whatever earlier pages produced.
			if len(records) > 0 {
				a.logger.Warn("Yelp pagination stopped early", map[string]interface{}{
					"offset": offset,
					"error":  err.Error(),
				})
				break
			}
			return nil, errors.NewSourceUnavailableError(a.Name(), err)
		}

		for _, business := range resp.Businesses {
			records = append(records, models.RawRecord{Source: a.Name(), Payload: business})
		}

		if len(resp.Businesses) < pageSize || offset+pageSize >= resp.Total {
			break
		}
	}

	a.logger.Debug("Yelp fetch complete", map[string]interface{}{
		"term":    query.Term,
		"records": len(records),
	})
	return records, nil
}
