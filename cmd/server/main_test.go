package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iho/positiondraft/internal/infrastructure/config"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := &config.Config{IdempotencyTTL: time.Hour}
	return newRouter(cfg, client, nil, zerolog.Nop(), prometheus.NewRegistry())
}

func TestNewRouter_SaveThenRead(t *testing.T) {
	router := newTestServer(t)

	body := `{"new_entity_name":"MyBroker","products":{"STOCK_ETF":{"entries":[{"id":null,"name":"Apple","ticker":"AAPL","shares":10}]}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/positions", strings.NewReader(body))
	req.Header.Set("Idempotency-Key", "k1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	first := rec.Body.String()

	// Replaying the key must not create a second entity.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/positions", strings.NewReader(body))
	req.Header.Set("Idempotency-Key", "k1")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Body.String() != first || rec.Header().Get("X-Idempotency-Replay") != "true" {
		t.Fatalf("expected replayed response, got %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/entities", nil))
	if strings.Count(rec.Body.String(), "MyBroker") != 1 {
		t.Fatalf("expected one entity, got %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/positions", nil))
	if !strings.Contains(rec.Body.String(), `"source":"MANUAL"`) || !strings.Contains(rec.Body.String(), `"shares":10`) {
		t.Fatalf("unexpected positions: %s", rec.Body.String())
	}
}

func TestNewRouter_ServesMetricsAndHealth(t *testing.T) {
	router := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected %s to return 200, got %d", path, rec.Code)
		}
	}
}
