package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"
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

	r.Get("/cart", s.list)
	r.Group(func(wr chi.Router) {
		wr.Use(deps.WriteLimiter())
		wr.Post("/cart", s.add)
		wr.Delete("/cart/{itemID:[0-9]+}", s.remove)
	})

	return r
}

func setupMetrics(s *Server, deps kit.HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	s.removed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_items_removed_total",
		Help: "Cart items removed by DELETE /cart/{id}",
	})

	deps.Registry.MustRegister(
		s.removed,
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "cart_items",
				Help: "Items currently held in the cart",
			},
			func() float64 { return float64(s.Store.Len()) },
		),
	)
}
