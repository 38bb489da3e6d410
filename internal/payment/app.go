package payment

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"MiniShop/pkg/kit"
)

func NewHandler(s *Server, deps kit.HTTPDeps) http.Handler {
	if s.Log == nil {
		s.Log = deps.Log
	}

	r := kit.NewRouter(deps)
	setupMetrics(s, deps)

	// Nothing to be unready about.
	r.Get("/readyz", kit.Healthz)

	r.With(deps.WriteLimiter()).Post("/payments", s.process)

	return r
}

func setupMetrics(s *Server, deps kit.HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	s.processed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_processed_total",
			Help: "Payment requests handled, by reported status",
		},
		[]string{"status"},
	)
	deps.Registry.MustRegister(s.processed)
}
