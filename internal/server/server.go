// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"market-intel/internal/analytics"
	"market-intel/internal/common/config"
	"market-intel/internal/common/errors"
	"market-intel/internal/common/logger"
	"market-intel/internal/common/metrics"
	"market-intel/internal/common/observability"
	"market-intel/internal/common/validation"
	"market-intel/internal/enrich"
	"market-intel/internal/models"
	"market-intel/internal/pipeline"
)

// Server exposes the market scan API.
type Server struct {
	cfg      *config.Config
	pipeline *pipeline.Pipeline
	engine   *analytics.Engine
	crawler  *enrich.Crawler
	cache    *pipeline.ScanCache
	obs      *observability.Observability
	logger   logger.Logger

	httpServer *http.Server
}

func New(cfg *config.Config, p *pipeline.Pipeline, engine *analytics.Engine, crawler *enrich.Crawler, cache *pipeline.ScanCache, obs *observability.Observability, log logger.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		pipeline: p,
		engine:   engine,
		crawler:  crawler,
		cache:    cache,
		obs:      obs,
		logger:   log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/market/scan", s.handleScan)
	mux.HandleFunc("/healthz", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      mux,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}
	return s
}

// Handler returns the configured mux, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", map[string]interface{}{
		"address": s.httpServer.Addr,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed,
			errors.NewInvalidRequestError("method not allowed: "+r.Method))
		return
	}

	start := time.Now()

	var doc map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		metrics.ScansCompleted.WithLabelValues("invalid").Inc()
		writeError(w, http.StatusBadRequest,
			errors.NewInvalidRequestError("request body is not valid JSON: "+err.Error()))
		return
	}

	validated, err := validation.ValidateScanRequest(doc)
	if err != nil {
		metrics.ScansCompleted.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError,
			errors.NewInvalidRequestError("request validation unavailable: "+err.Error()))
		return
	}
	if !validated.Valid {
		metrics.ScansCompleted.WithLabelValues("invalid").Inc()
		detail, _ := json.Marshal(validated.Errors)
		writeError(w, http.StatusBadRequest,
			errors.NewInvalidRequestError(string(detail)))
		return
	}

	var req models.ScanRequest
	payload, _ := json.Marshal(doc)
	if err := json.Unmarshal(payload, &req); err != nil {
		metrics.ScansCompleted.WithLabelValues("invalid").Inc()
		writeError(w, http.StatusBadRequest,
			errors.NewInvalidRequestError("request body undecodable: "+err.Error()))
		return
	}
	req.RequestID = uuid.NewString()

	scanLogger := s.logger.WithFields(map[string]interface{}{
		"request_id": req.RequestID,
		"location":   req.Location,
		"industry":   req.Industry,
	})

	if req.UseCache && s.cache != nil {
		if cached := s.cache.Get(r.Context(), req); cached != nil {
			scanLogger.Info("Scan served from cache", nil)
			cached.RequestID = req.RequestID
			metrics.ScansCompleted.WithLabelValues("cached").Inc()
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	collector := errors.NewCollector(scanLogger)
	result, err := s.pipeline.Scan(r.Context(), req, collector)
	if err != nil {
		s.writeScanFailure(w, scanLogger, err)
		return
	}

	if req.CrawlContacts && s.crawler != nil && s.cfg.Enrichment.Enabled {
		s.crawler.Enrich(r.Context(), result.Businesses)
	}

	report := s.engine.Analyze(req, result.Businesses, collector)
	resp := assembleResponse(req, result, report, collector.Messages())

	if req.UseCache && s.cache != nil {
		s.cache.Put(r.Context(), req, resp)
	}

	metrics.ScansCompleted.WithLabelValues("success").Inc()
	metrics.ScanDuration.WithLabelValues(req.Industry).Observe(time.Since(start).Seconds())
	if s.obs != nil {
		s.obs.RecordScanProcessed(r.Context(), "success")
	}

	scanLogger.Info("Scan complete", map[string]interface{}{
		"businesses": len(resp.Businesses),
		"partial":    resp.PartialResults,
		"duration":   time.Since(start).String(),
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeScanFailure(w http.ResponseWriter, log logger.Logger, err error) {
	stdErr, ok := err.(*errors.StandardError)
	if !ok {
		stdErr = errors.NewInvalidRequestError(err.Error())
	}

	status := http.StatusInternalServerError
	switch stdErr.Code {
	case errors.ErrCodeNoRecordsFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidRequest:
		status = http.StatusBadRequest
	case errors.ErrCodeTimeoutError:
		status = http.StatusGatewayTimeout
	}

	metrics.ScansCompleted.WithLabelValues("failed").Inc()
	if s.obs != nil {
		s.obs.RecordScanProcessed(context.Background(), "failed")
	}
	log.WithError(stdErr).Warn("Scan failed", nil)
	writeError(w, status, stdErr)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, stdErr *errors.StandardError) {
	writeJSON(w, status, map[string]interface{}{"error": stdErr})
}
