package product

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

	r.Get("/readyz", kit.Readyz(s.Store.Ping, deps.Log))

	r.Get("/products", s.list)
	r.With(deps.WriteLimiter()).Post("/products", s.add)

	return r
}

func setupMetrics(s *Server, deps kit.HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	deps.Registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "products_total",
			Help: "Products currently held in memory",
		},
		func() float64 { return float64(s.Store.Len()) },
	))
}
