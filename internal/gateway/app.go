package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"MiniShop/pkg/kit"
)

type Deps struct {
	ProductURL string
	CartURL    string
	PaymentURL string
}

const (
	readyTimeout      = 2 * time.Second
	readyProbeTimeout = 700 * time.Millisecond
)

var readyClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     30 * time.Second,
	},
}

type upstream struct {
	name   string
	prefix string
	url    string
	proxy  http.Handler
}

func NewHandler(deps Deps, httpDeps kit.HTTPDeps) (http.Handler, error) {
	upstreams, err := buildUpstreams(deps, httpDeps.Log)
	if err != nil {
		return nil, err
	}

	r := kit.NewRouter(httpDeps)
	r.Get("/readyz", readyz(upstreams, httpDeps.Log))

	for _, u := range upstreams {
		r.Handle(u.prefix, u.proxy)
		r.Handle(u.prefix+"/*", u.proxy)
	}

	return r, nil
}

func buildUpstreams(deps Deps, log *zap.Logger) ([]upstream, error) {
	ups := []upstream{
		{name: "product", prefix: "/products", url: deps.ProductURL},
		{name: "cart", prefix: "/cart", url: deps.CartURL},
		{name: "payment", prefix: "/payments", url: deps.PaymentURL},
	}

	for i := range ups {
		ups[i].url = strings.TrimRight(ups[i].url, "/")
		p, err := NewReverseProxy(ups[i].url, log)
		if err != nil {
			return nil, fmt.Errorf("%s upstream %q: %w", ups[i].name, ups[i].url, err)
		}
		ups[i].proxy = p
	}
	return ups, nil
}

func readyz(ups []upstream, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		for _, u := range ups {
			if err := checkReady(ctx, u.url+"/readyz"); err != nil {
				if log != nil {
					log.Warn("readyz failed", zap.String("upstream", u.name), zap.Error(err))
				}
				kit.WriteError(w, r, http.StatusServiceUnavailable, u.name+" not ready", nil)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
	}
}

func checkReady(ctx context.Context, url string) error {
	cctx, cancel := context.WithTimeout(ctx, readyProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(cctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := readyClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status=%d", resp.StatusCode)
	}

	return nil
}
