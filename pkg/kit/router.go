package kit

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const readyTimeout = 1 * time.Second

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	WriteRateLimit int
}

// NewRouter returns a chi router carrying the middleware stack shared by every
// service, plus /healthz and, when enabled, /metrics. Callers only add routes.
func NewRouter(deps HTTPDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Recoverer)
	r.Use(Tracing(deps.Service))
	r.Use(Logging(deps.Log))

	if deps.Registry != nil {
		metrics := NewMetrics(deps.Registry)
		r.Use(metrics.Middleware(deps.Service, ChiRoutePatternOrPath))

		if deps.MetricsEnabled {
			r.With(MetricsAuth(deps.MetricsToken)).
				Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
		}
	}

	r.Get("/healthz", Healthz)
	return r
}

// WriteLimiter is the middleware for mutating routes: a per-IP limiter when
// WriteRateLimit is set, a pass-through otherwise.
func (d HTTPDeps) WriteLimiter() func(http.Handler) http.Handler {
	if d.WriteRateLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return NewIPRateLimiter(d.WriteRateLimit, time.Minute).Middleware
}

func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func Readyz(ping func(context.Context) error, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := ping(ctx); err != nil {
			if log != nil {
				log.Warn("readyz failed", zap.Error(err))
			}
			WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
