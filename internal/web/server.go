package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vbonduro/movecheck/internal/service"
	"github.com/vbonduro/movecheck/internal/wire"
)

// maxBodyBytes bounds a request body; a large inspection with notes stays
// well under it.
const maxBodyBytes = 4 << 20

type Server struct {
	service  *service.EstimationService
	mux      *http.ServeMux
	validate *validator.Validate
	logger   *slog.Logger
}

func NewServer(svc *service.EstimationService, logger *slog.Logger) *Server {
	s := &Server{
		service:  svc,
		mux:      http.NewServeMux(),
		validate: wire.NewValidator(),
		logger:   logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("GET /tariffs", s.handleTariffs)
	s.mux.HandleFunc("POST /comparisons", s.handleCompare)
	s.mux.HandleFunc("POST /estimates", s.handleCreateEstimate)
	s.mux.HandleFunc("GET /estimates/{id}", s.handleGetEstimate)
	s.mux.HandleFunc("DELETE /estimates/{id}", s.handleDeleteEstimate)
	s.mux.HandleFunc("GET /properties/{ref}/estimates", s.handleListEstimates)
}

// securityHeaders adds response headers suited to a JSON-only API.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

// HTTPServer returns an http.Server serving this API on addr.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string, fields map[string]string) {
	s.writeJSON(w, status, errorResponse{Error: msg, Fields: fields})
}

// decode reads a JSON body into dst and validates it. On failure it has
// already written the 400 response.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error(), nil)
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "validation failed", wire.Fields(err))
		return false
	}
	return true
}
