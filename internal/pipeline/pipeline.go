// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"
	"time"

	"market-intel/internal/common/config"
	"market-intel/internal/common/errors"
	"market-intel/internal/common/logger"
	"market-intel/internal/common/metrics"
	"market-intel/internal/common/observability"
	"market-intel/internal/models"
	"market-intel/internal/sources"
)

// AdapterBuilder yields the source adapters a scan should fan out to.
// Swappable so tests can inject stubs.
type AdapterBuilder func(cfg *config.Config, requested []string, log logger.Logger) []sources.Adapter

// Result is the fetch-and-clean half of a scan, ready for analytics.
type Result struct {
	Businesses []models.MergedBusiness
	// TotalFetched counts raw records before filtering and merging.
	TotalFetched int
	// Partial marks a scan where at least one source failed or the
	// scan deadline cut fetching short.
	Partial bool
}

// Pipeline runs planner, fetch fan-out, normalize, relevance filter and
// dedupe for one scan request.
type Pipeline struct {
	cfg           *config.Config
	buildAdapters AdapterBuilder
	normalizer    *Normalizer
	obs           *observability.Observability
	logger        logger.Logger
}

func New(cfg *config.Config, obs *observability.Observability, log logger.Logger) *Pipeline {
	return &Pipeline{
		cfg:           cfg,
		buildAdapters: sources.BuildEnabled,
		normalizer:    NewNormalizer(log),
		obs:           obs,
		logger:        log,
	}
}

// WithAdapterBuilder overrides adapter construction, for tests.
func (p *Pipeline) WithAdapterBuilder(build AdapterBuilder) *Pipeline {
	p.buildAdapters = build
	return p
}

type fetchJob struct {
	adapter sources.Adapter
	query   models.Query
}

// Scan executes the fetch half of a scan. One failing source never fails
// the whole scan; its error lands in the collector and the result is
// marked partial. A scan that finds nothing returns an empty result with
// a NO_RECORDS_FOUND warning, not an error; the only error is the caller
// abandoning the request.
func (p *Pipeline) Scan(ctx context.Context, req models.ScanRequest, collector *errors.Collector) (*Result, error) {
	deadline := config.GetDuration(p.cfg.Pipeline.ScanDeadline)
	if deadline <= 0 {
		deadline = 25 * time.Second
	}
	scanCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	adapters := p.buildAdapters(p.cfg, req.Sources, p.logger)
	if len(adapters) == 0 {
		collector.Collect(errors.NewNoRecordsFoundError(req.Location, req.Industry))
		return &Result{}, nil
	}

	terms := PlanSearchTerms(req.Industry, p.cfg.Pipeline.MaxTermsPerSource)

	raw, partial := p.fetchAll(scanCtx, adapters, req, terms, collector)
	if ctx.Err() != nil {
		// The caller went away; the scan deadline is handled above.
		return nil, errors.NewTimeoutError("scan", ctx.Err())
	}
	if len(raw) == 0 {
		collector.Collect(errors.NewNoRecordsFoundError(req.Location, req.Industry))
		return &Result{Partial: partial}, nil
	}

	normalizeStart := time.Now()
	records := p.normalizer.Normalize(raw, collector)
	p.recordStage(ctx, "normalize", normalizeStart)

	filterStart := time.Now()
	relevant := records[:0]
	for _, record := range records {
		if IsRelevantBusiness(record.Name, req.Industry) {
			relevant = append(relevant, record)
			continue
		}
		metrics.RecordsDropped.WithLabelValues(record.Source, "irrelevant").Inc()
	}
	p.recordStage(ctx, "relevance_filter", filterStart)

	dedupeStart := time.Now()
	merged := Deduplicate(relevant)
	p.recordStage(ctx, "dedupe", dedupeStart)

	metrics.BusinessesMerged.WithLabelValues(req.Industry).Set(float64(len(merged)))

	max := req.MaxBusinesses
	if max <= 0 || max > p.cfg.Pipeline.MaxBusinesses {
		max = p.cfg.Pipeline.MaxBusinesses
	}
	if max > 0 && len(merged) > max {
		merged = merged[:max]
	}

	if len(merged) == 0 {
		collector.Collect(errors.NewNoRecordsFoundError(req.Location, req.Industry))
		return &Result{TotalFetched: len(raw), Partial: partial}, nil
	}

	p.logger.Info("Scan fetch complete", map[string]interface{}{
		"location":   req.Location,
		"industry":   req.Industry,
		"raw":        len(raw),
		"businesses": len(merged),
		"partial":    partial,
	})

	return &Result{Businesses: merged, TotalFetched: len(raw), Partial: partial}, nil
}

// fetchAll fans adapter×term jobs out over a bounded worker pool and
// gathers the raw records. Partial is true when any fetch failed or the
// scan deadline expired before all jobs ran.
func (p *Pipeline) fetchAll(ctx context.Context, adapters []sources.Adapter, req models.ScanRequest, terms []string, collector *errors.Collector) ([]models.RawRecord, bool) {
	fetchStart := time.Now()

	var jobs []fetchJob
	for _, adapter := range adapters {
		for _, term := range terms {
			jobs = append(jobs, fetchJob{
				adapter: adapter,
				query: models.Query{
					Location:    req.Location,
					Term:        term,
					RadiusMiles: req.RadiusMiles,
				},
			})
		}
	}

	workers := p.cfg.Pipeline.MaxConcurrentFetches
	if workers <= 0 {
		workers = 6
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		raw     []models.RawRecord
		partial bool
	)
	sem := make(chan struct{}, workers)

	for _, job := range jobs {
		if ctx.Err() != nil {
			partial = true
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(job fetchJob) {
			defer wg.Done()
			defer func() { <-sem }()

			records, err := p.fetchOne(ctx, job)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				partial = true
				collector.Collect(err)
				return
			}
			raw = append(raw, records...)
		}(job)
	}
	wg.Wait()

	if ctx.Err() != nil {
		partial = true
	}

	p.recordStage(ctx, "fetch", fetchStart)
	return raw, partial
}

func (p *Pipeline) fetchOne(ctx context.Context, job fetchJob) ([]models.RawRecord, error) {
	name := job.adapter.Name()
	srcCfg := config.GetSourceConfig(p.cfg, name)

	timeout := config.GetDuration(srcCfg.Timeout)
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	metrics.SourceFetchesTotal.WithLabelValues(name).Inc()
	records, err := job.adapter.Fetch(callCtx, job.query)
	metrics.SourceFetchDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if err != nil {
		code := string(errors.ErrCodeSourceUnavailable)
		if stdErr, ok := err.(*errors.StandardError); ok {
			code = string(stdErr.Code)
		}
		metrics.SourceFetchesFailed.WithLabelValues(name, code).Inc()
		p.logger.Warn("Source fetch failed", map[string]interface{}{
			"source": name,
			"term":   job.query.Term,
			"error":  err.Error(),
		})
		return nil, err
	}

	return records, nil
}

func (p *Pipeline) recordStage(ctx context.Context, stage string, start time.Time) {
	if p.obs != nil {
		p.obs.RecordStageDuration(ctx, stage, time.Since(start))
	}
}
