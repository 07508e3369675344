package server

import (
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/toolver/toolver/pkg/errors"
	"github.com/toolver/toolver/pkg/serializer"
)

// setupRoutes registers all HTTP routes on the mux.
// System endpoints bypass the middleware chain so probes and scrapes
// are never rate limited.
func (s *Server) setupRoutes(mux *http.ServeMux) {
	// System endpoints (no rate limiting)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	// Registered handlers with the full middleware chain
	for path, handler := range s.config.Handlers {
		mux.HandleFunc(path, s.withMiddleware(handler))
	}
}

// handleRoot serves the discovery document listing the routes the
// server exposes. Callers can override it by registering their own
// handler on "/".
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"method not allowed", false, nil)
		return
	}

	routes := make([]string, 0, len(s.config.Handlers)+3)
	for path := range s.config.Handlers {
		if path == "/" {
			continue
		}
		routes = append(routes, path)
	}
	routes = append(routes, "/health", "/ready", "/metrics")
	sort.Strings(routes)

	resp := struct {
		Name      string   `json:"name"`
		Version   string   `json:"version"`
		Ready     bool     `json:"ready"`
		Timestamp string   `json:"timestamp"`
		Routes    []string `json:"routes"`
	}{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.isReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    routes,
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
