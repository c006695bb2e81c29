// Package chi exposes the lookup resolver over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Mehrdad93/baybe/internal/domain"
	logpkg "github.com/Mehrdad93/baybe/internal/logger"
	"github.com/Mehrdad93/baybe/internal/lookup"
	"github.com/Mehrdad93/baybe/internal/metrics"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server handles lookup resolution requests.
type Server struct {
	logger        *zap.Logger
	defaultMode   lookup.ImputeMode
	maxBatchRows  int
	defaultSeed   int64
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. A non-zero defaultSeed fixes the
// random source for requests that carry no seed of their own.
func NewServer(logger *zap.Logger, defaultMode lookup.ImputeMode, maxBatchRows int, defaultSeed int64) *Server {
	s := &Server{
		logger:       logger,
		defaultMode:  defaultMode,
		maxBatchRows: maxBatchRows,
		defaultSeed:  defaultSeed,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrConfiguration, http.StatusBadRequest, "configuration_error"),
		sentinelHandler(domain.ErrLookupMiss, http.StatusUnprocessableEntity, "lookup_miss"),
		sentinelHandler(domain.ErrInvariantViolation, http.StatusConflict, "invariant_violation"),
	}
	return s
}

// Routes builds the HTTP router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(s.withLogger)

	r.Get("/healthz", s.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/v1/resolve", s.Resolve)

	return r
}

// withLogger stores the server logger in the request context, tagged
// with the request path.
func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logpkg.ContextWithLogger(r.Context(), s.logger)
		next.ServeHTTP(w, r.WithContext(logpkg.With(ctx, zap.String("path", r.URL.Path))))
	})
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Resolve handles POST /v1/resolve.
func (s *Server) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}

	if len(req.Queries.Columns) == 0 || len(req.Queries.Rows) == 0 {
		writeError(w, http.StatusBadRequest, "validation_failed", "Queries must contain columns and rows")
		return
	}
	if s.maxBatchRows > 0 && len(req.Queries.Rows) > s.maxBatchRows {
		writeError(w, http.StatusBadRequest, "validation_failed",
			fmt.Sprintf("Batch exceeds %d rows", s.maxBatchRows))
		return
	}

	queries, err := req.Queries.toFrame()
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", "Invalid queries: "+err.Error())
		return
	}

	targets, err := targetsFromDTO(req.Targets)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	mode := s.defaultMode
	if req.ImputeMode != "" {
		mode = lookup.ImputeMode(req.ImputeMode)
		if !mode.IsValid() {
			writeError(w, http.StatusBadRequest, "validation_failed",
				fmt.Sprintf("Unknown impute mode %q", req.ImputeMode))
			return
		}
	}

	var src lookup.Source
	if req.Table != nil {
		table, err := req.Table.toFrame()
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", "Invalid table: "+err.Error())
			return
		}
		src = lookup.NewTableSource(table)
	}

	opts := []lookup.Option{lookup.WithLogger(logpkg.FromContext(r.Context()))}
	if req.Seed != nil {
		opts = append(opts, lookup.WithRand(rand.New(rand.NewSource(*req.Seed))))
	} else if s.defaultSeed != 0 {
		opts = append(opts, lookup.WithRand(rand.New(rand.NewSource(s.defaultSeed))))
	}

	sum, err := lookup.NewResolver(opts...).Resolve(queries, targets, src, mode)
	if err != nil {
		s.handleError(w, err)
		return
	}
	metrics.ObserveSummary(sum)

	writeJSON(w, http.StatusOK, resolveResponse{
		Queries: frameToDTO(queries),
		Summary: summaryToDTO(sum),
	})
}

func (s *Server) handleError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("resolve failed", zap.Error(err))
	metrics.LookupFailuresTotal.WithLabelValues("other").Inc()
	writeError(w, http.StatusInternalServerError, "internal_error", "Resolution failed")
}

func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		metrics.LookupFailuresTotal.WithLabelValues(code).Inc()
		writeError(w, status, code, err.Error())
		return true
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
