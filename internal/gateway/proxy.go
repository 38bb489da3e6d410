package gateway

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"net/url"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"MiniShop/pkg/kit"
)

var errBadUpstreamURL = errors.New("upstream url must be absolute")

// NewReverseProxy forwards to target, passing the request id and trace context
// along and answering 502 itself when the upstream cannot be reached.
func NewReverseProxy(target string, log *zap.Logger) (*httputil.ReverseProxy, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errBadUpstreamURL
	}
	if log == nil {
		log = zap.NewNop()
	}

	p := httputil.NewSingleHostReverseProxy(u)

	direct := p.Director
	p.Director = func(req *http.Request) {
		direct(req)
		if rid := chimw.GetReqID(req.Context()); rid != "" {
			req.Header.Set(kit.RequestIDHeader, rid)
		}
		kit.InjectTrace(req.Context(), req.Header)
	}

	// The gateway already set X-Request-Id on the response.
	p.ModifyResponse = func(resp *http.Response) error {
		resp.Header.Del(kit.RequestIDHeader)
		return nil
	}

	p.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Warn("upstream request failed",
			zap.Error(err),
			zap.String("upstream", u.Host),
			zap.String("path", r.URL.Path),
		)
		kit.WriteError(w, r, http.StatusBadGateway, "upstream unavailable", nil)
	}

	return p, nil
}
