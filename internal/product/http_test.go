package product_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"MiniShop/internal/product"
	"MiniShop/pkg/kit"
)

const seedJSON = `[{"id":1,"name":"Laptop","price":1200},{"id":2,"name":"Phone","price":800}]`

func newProductTS(t *testing.T, deps kit.HTTPDeps) *httptest.Server {
	t.Helper()

	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	deps.Service = "product"

	s := &product.Server{Store: product.NewStore()}
	ts := httptest.NewServer(product.NewHandler(s, deps))
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url, body string, headers map[string]string) (*http.Response, string) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, strings.TrimSpace(string(raw))
}

func TestProducts_SeededOnStartup(t *testing.T) {
	ts := newProductTS(t, kit.HTTPDeps{})

	resp, body := do(t, http.MethodGet, ts.URL+"/products", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type=%q", ct)
	}
	if body != seedJSON {
		t.Fatalf("body=%s want=%s", body, seedJSON)
	}
}

func TestProducts_AddAppendsInSubmissionOrder(t *testing.T) {
	ts := newProductTS(t, kit.HTTPDeps{})

	posts := []struct {
		body string
		echo string
	}{
		{`{"id":3,"name":"Tablet","price":600}`, `{"id":3,"name":"Tablet","price":600}`},
		{`{"price": 9.99, "name": "Dup", "id": 1, "color": "red"}`, `{"color":"red","id":1,"name":"Dup","price":9.99}`},
		{`{"name":"No id"}`, `{"name":"No id"}`},
	}

	want := strings.TrimSuffix(seedJSON, "]")
	for _, p := range posts {
		resp, body := do(t, http.MethodPost, ts.URL+"/products", p.body, nil)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("post status=%d body=%s", resp.StatusCode, body)
		}
		if body != p.echo {
			t.Fatalf("echo=%s want=%s", body, p.echo)
		}
		want += "," + p.echo
	}
	want += "]"

	_, body := do(t, http.MethodGet, ts.URL+"/products", "", nil)
	if body != want {
		t.Fatalf("body=%s want=%s", body, want)
	}
}

func TestProducts_AddRejectsMalformedBody(t *testing.T) {
	ts := newProductTS(t, kit.HTTPDeps{})

	for _, body := range []string{
		`not json`,
		`{"id":1`,
		`[{"id":1}]`,
		`42`,
		`{"id":1}{"id":2}`,
	} {
		resp, raw := do(t, http.MethodPost, ts.URL+"/products", body, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %q: status=%d resp=%s", body, resp.StatusCode, raw)
		}
		if !strings.Contains(raw, `"error":"bad json"`) {
			t.Fatalf("body %q: resp=%s", body, raw)
		}
	}

	resp, raw := do(t, http.MethodPost, ts.URL+"/products", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty body: status=%d resp=%s", resp.StatusCode, raw)
	}

	_, body := do(t, http.MethodGet, ts.URL+"/products", "", nil)
	if body != seedJSON {
		t.Fatalf("rejected posts changed the sequence: %s", body)
	}
}

func TestProducts_ConcurrentAddsAreNotLost(t *testing.T) {
	ts := newProductTS(t, kit.HTTPDeps{})

	const n = 40
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body := fmt.Sprintf(`{"id":%d,"name":"p%d","price":1}`, 100+i, i)
			resp, err := http.Post(ts.URL+"/products", "application/json", strings.NewReader(body))
			if err != nil {
				t.Errorf("post: %v", err)
				return
			}
			_ = resp.Body.Close()
			if resp.StatusCode != http.StatusCreated {
				t.Errorf("status=%d", resp.StatusCode)
			}
		}(i)
	}
	wg.Wait()

	_, body := do(t, http.MethodGet, ts.URL+"/products", "", nil)
	for i := 0; i < n; i++ {
		if !strings.Contains(body, fmt.Sprintf(`"id":%d,`, 100+i)) {
			t.Fatalf("product %d missing from %s", 100+i, body)
		}
	}
}

func TestProducts_MetricsRequireToken(t *testing.T) {
	ts := newProductTS(t, kit.HTTPDeps{
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: true,
		MetricsToken:   "scrape",
	})

	do(t, http.MethodPost, ts.URL+"/products", `{"id":3,"name":"Tablet","price":600}`, nil)

	resp, _ := do(t, http.MethodGet, ts.URL+"/metrics", "", nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("unauthenticated scrape status=%d", resp.StatusCode)
	}

	resp, body := do(t, http.MethodGet, ts.URL+"/metrics", "", map[string]string{
		"Authorization": "Bearer scrape",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("scrape status=%d", resp.StatusCode)
	}
	if !strings.Contains(body, "products_total 3") {
		t.Fatalf("products_total gauge missing:\n%s", body)
	}
	if !strings.Contains(body, `http_requests_total{method="POST",path="/products",service="product",status="201"} 1`) {
		t.Fatalf("request counter missing:\n%s", body)
	}
}

func TestProducts_HealthAndUnknownRoutes(t *testing.T) {
	ts := newProductTS(t, kit.HTTPDeps{})

	cases := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/readyz", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodDelete, "/products", http.StatusMethodNotAllowed},
	}
	for _, c := range cases {
		resp, _ := do(t, c.method, ts.URL+c.path, "", nil)
		if resp.StatusCode != c.want {
			t.Fatalf("%s %s: status=%d want=%d", c.method, c.path, resp.StatusCode, c.want)
		}
	}
}
