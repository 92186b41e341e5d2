// Package httpapi serves the dashboard page, its JSON API, and the
// health, readiness, and metrics endpoints.
package httpapi

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/Nancy240/Forest-monitoring-data/internal/domain"
)

//go:embed dashboard.html
var templateFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templateFS, "dashboard.html"))

// Dataset is the read side of the snapshot store the handlers serve from.
type Dataset interface {
	Readings(eventTag string) []domain.SensorReading
	EventCounts() []domain.EventCount
	Events() []string
	Len() int
	LoadedAt() time.Time
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the dashboard and API over HTTP.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// summaryResponse is the payload behind /api/summary.
type summaryResponse struct {
	EventCounts []domain.EventCount `json:"event_counts"`
	Total       int                 `json:"total"`
	LoadedAt    *time.Time          `json:"loaded_at,omitempty"`
}

// NewServer creates an HTTP server with the dashboard, API, and
// health/readiness/metrics routes. The browser fetches the API from the
// rendered page, so responses carry permissive CORS headers.
func NewServer(addr string, data Dataset, ready ReadinessChecker, logger *slog.Logger) *Server {
	router := mux.NewRouter()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      cors.Default().Handler(router),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}

	router.HandleFunc("/", s.handleDashboard).Methods(http.MethodGet)
	router.HandleFunc("/api/readings", handleReadings(data)).Methods(http.MethodGet)
	router.HandleFunc("/api/events", handleEvents(data)).Methods(http.MethodGet)
	router.HandleFunc("/api/summary", handleSummary(data)).Methods(http.MethodGet)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/readyz", handleReady(ready)).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, map[string]string{"Title": "Forest Monitoring Dashboard"}); err != nil {
		s.logger.Error("render dashboard failed", "error", err)
	}
}

// handleReadings serves the (optionally filtered) snapshot. Nullable channels
// serialize as JSON null; readings is always an array, never null, so the
// browser side can iterate without guarding.
func handleReadings(data Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag := r.URL.Query().Get("event")
		readings := data.Readings(tag)
		if readings == nil {
			readings = []domain.SensorReading{}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"readings": readings,
			"count":    len(readings),
		})
	}
}

func handleEvents(data Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"events": data.Events()})
	}
}

func handleSummary(data Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		resp := summaryResponse{
			EventCounts: data.EventCounts(),
			Total:       data.Len(),
		}
		if loadedAt := data.LoadedAt(); !loadedAt.IsZero() {
			resp.LoadedAt = &loadedAt
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
