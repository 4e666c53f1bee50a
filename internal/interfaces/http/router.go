// Package http wires the MolCanvas REST API: router construction, the HTTP
// server lifecycle, handlers and middleware.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MolCanvas/internal/interfaces/http/handlers"
	"github.com/turtacn/MolCanvas/internal/interfaces/http/middleware"
	"github.com/turtacn/MolCanvas/pkg/errors"
	"github.com/turtacn/MolCanvas/pkg/types/common"
)

// RouterConfig carries the handlers and optional middleware the router mounts.
// Nil handlers are skipped so tests can exercise a partial surface.
type RouterConfig struct {
	SessionHandler  *handlers.SessionHandler
	MoleculeHandler *handlers.MoleculeHandler
	LibraryHandler  *handlers.LibraryHandler
	HealthHandler   *handlers.HealthHandler

	// CORS, when non-nil, is applied to the whole router.
	CORS *middleware.CORSConfig

	// Logger, when non-nil, enables per-request logging.
	Logger logging.Logger

	// LoggingConfig tunes the request logging middleware. Zero value gets
	// DefaultLoggingConfig.
	LoggingConfig *middleware.LoggingConfig

	// AppMetrics, when non-nil, enables per-request Prometheus observations.
	AppMetrics *prometheus.AppMetrics

	// MetricsCollector, when non-nil, mounts its handler at /metrics.
	MetricsCollector prometheus.MetricsCollector
}

// NewRouter builds the chi router for the MolCanvas API.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if cfg.CORS != nil {
		r.Use(middleware.CORS(*cfg.CORS))
	}
	if cfg.Logger != nil {
		lc := middleware.DefaultLoggingConfig()
		if cfg.LoggingConfig != nil {
			lc = *cfg.LoggingConfig
		}
		r.Use(middleware.RequestLogging(cfg.Logger, lc))
	}
	if cfg.AppMetrics != nil {
		r.Use(middleware.HTTPMetrics(cfg.AppMetrics))
	}

	// Probes and metrics live outside the versioned API prefix.
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(r)
	}
	if cfg.MetricsCollector != nil {
		r.Handle("/metrics", cfg.MetricsCollector.Handler())
	}

	r.Route("/api/v1", func(api chi.Router) {
		if cfg.SessionHandler != nil {
			cfg.SessionHandler.RegisterRoutes(api)
		}
		if cfg.MoleculeHandler != nil {
			cfg.MoleculeHandler.RegisterRoutes(api)
		}
		if cfg.LibraryHandler != nil {
			cfg.LibraryHandler.RegisterRoutes(api)
		}
	})

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	return r
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeErrorEnvelope(w, r, http.StatusNotFound, errors.ErrCodeNotFound, "resource not found")
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeErrorEnvelope(w, r, http.StatusMethodNotAllowed, errors.ErrCodeBadRequest, "method not allowed")
}

func writeErrorEnvelope(w http.ResponseWriter, r *http.Request, status int, code errors.ErrorCode, msg string) {
	resp := common.NewErrorResponse(string(code), msg)
	resp.RequestID = chimw.GetReqID(r.Context())

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

//Personal.AI order the ending
