package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/coffee-store/internal/http/metric"
	"github.com/tuanvumaihuynh/coffee-store/internal/http/middleware"
	"github.com/tuanvumaihuynh/coffee-store/pkg/correlationid"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestCorrelationID(t *testing.T) {
	var got string
	h := middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = correlationid.FromContext(r.Context())
	}))

	t.Run("Should keep the incoming correlation id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(correlationid.Header, "abc-123")
		resp := httptest.NewRecorder()

		h.ServeHTTP(resp, req)

		assert.Equal(t, "abc-123", got)
		assert.Equal(t, "abc-123", resp.Header().Get(correlationid.Header))
	})

	t.Run("Should generate a correlation id when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		resp := httptest.NewRecorder()

		h.ServeHTTP(resp, req)

		assert.NotEmpty(t, got)
		assert.Equal(t, got, resp.Header().Get(correlationid.Header))
	})
}

func TestRecoverer(t *testing.T) {
	h := middleware.Recoverer(discardLogger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()

	require.NotPanics(t, func() { h.ServeHTTP(resp, req) })
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"code":"internalServerError","message":"an unknown error occurred"}`, resp.Body.String())
}

func TestMetrics(t *testing.T) {
	m := metric.New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(middleware.Metrics(m))
	r.Get("/api/coffees/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"1", "2", "3"} {
		req := httptest.NewRequest(http.MethodGet, "/api/coffees/"+id, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.InDelta(t, 3, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/api/coffees/{id}", "200")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.InflightRequests), 0)
}

func TestLogging(t *testing.T) {
	var sb strings.Builder
	log := slog.New(slog.NewTextHandler(&sb, nil))

	h := middleware.Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/coffees", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, sb.String(), "method=POST")
	assert.Contains(t, sb.String(), "path=/api/coffees")
	assert.Contains(t, sb.String(), "status=201")
}

func TestCors(t *testing.T) {
	h := middleware.Cors([]string{"https://shop.example.com"})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/coffees", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, req)

	assert.Equal(t, "https://shop.example.com", resp.Header().Get("Access-Control-Allow-Origin"))
}
