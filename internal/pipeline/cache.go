package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"market-intel/internal/common/config"
	"market-intel/internal/common/database"
	"market-intel/internal/common/logger"
	"market-intel/internal/common/metrics"
	"market-intel/internal/models"

	"github.com/redis/go-redis/v9"
)

// ScanCache is a read-through cache for assembled scan responses. A miss
// is never an error to the caller; redis being down just means every scan
// computes fresh.
type ScanCache struct {
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewScanCache(rdb *database.RedisClient, cfg config.CacheConfig, log logger.Logger) *ScanCache {
	ttl := time.Duration(cfg.TTL) * time.Second
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &ScanCache{redis: rdb, ttl: ttl, logger: log}
}

// Key builds a deterministic cache key from the request dimensions that
// change the result set. Source order in the request does not matter.
func (c *ScanCache) Key(req models.ScanRequest) string {
	sources := append([]string(nil), req.Sources...)
	sort.Strings(sources)
	return fmt.Sprintf("scan:%s|%s|%s",
		strings.ToLower(strings.TrimSpace(req.Location)),
		strings.ToLower(strings.TrimSpace(req.Industry)),
		strings.Join(sources, ","))
}

// Get returns the cached response for the request, or nil on a miss.
func (c *ScanCache) Get(ctx context.Context, req models.ScanRequest) *models.ScanResponse {
	if c == nil || c.redis == nil {
		return nil
	}

	key := c.Key(req)
	raw, err := c.redis.Get(ctx, key)
	if err == redis.Nil {
		metrics.CacheHits.WithLabelValues("miss").Inc()
		return nil
	}
	if err != nil {
		metrics.CacheHits.WithLabelValues("error").Inc()
		c.logger.Warn("Scan cache read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil
	}

	var resp models.ScanResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		metrics.CacheHits.WithLabelValues("error").Inc()
		c.logger.Warn("Scan cache entry undecodable, evicting", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		_ = c.redis.Del(ctx, key)
		return nil
	}

	metrics.CacheHits.WithLabelValues("hit").Inc()
	return &resp
}

// Put stores the response under the request's key for the configured TTL.
func (c *ScanCache) Put(ctx context.Context, req models.ScanRequest, resp *models.ScanResponse) {
	if c == nil || c.redis == nil || resp == nil {
		return
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		c.logger.Warn("Scan response not serializable for cache", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	key := c.Key(req)
	if err := c.redis.Set(ctx, key, payload, c.ttl); err != nil {
		c.logger.Warn("Scan cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
