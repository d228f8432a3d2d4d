package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsNilSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.RecordRequest("/", http.MethodGet, http.StatusOK, time.Millisecond)
	m.RecordError("X")
	m.RecordAuth("ok")
	m.RecordEdge("pass")
}

func TestMetricsCounters(t *testing.T) {
	t.Parallel()

	m := NewMetrics("test")
	m.RecordAuth("ok")
	m.RecordAuth("ok")
	m.RecordAuth("EXPIRED_CREDENTIAL")
	m.RecordEdge("redirect_login")
	m.RecordError("ROUTE_NOT_FOUND")
	m.RecordRequest("/api/session", http.MethodGet, http.StatusOK, 10*time.Millisecond)

	if got := testutil.ToFloat64(m.auth.WithLabelValues("ok")); got != 2 {
		t.Errorf("auth ok = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.auth.WithLabelValues("EXPIRED_CREDENTIAL")); got != 1 {
		t.Errorf("auth expired = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.edge.WithLabelValues("redirect_login")); got != 1 {
		t.Errorf("edge redirect_login = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.errors.WithLabelValues("ROUTE_NOT_FOUND")); got != 1 {
		t.Errorf("errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("/api/session", http.MethodGet, "200")); got != 1 {
		t.Errorf("requests = %v, want 1", got)
	}
}

func TestMetricsHandler(t *testing.T) {
	t.Parallel()

	m := NewMetrics("test")
	m.RecordAuth("ok")

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `test_auth_decisions_total{outcome="ok"} 1`) {
		t.Errorf("metrics output missing auth counter:\n%s", body)
	}
}
