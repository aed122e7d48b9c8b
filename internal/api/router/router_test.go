package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wellport-health/patient-portal-api/internal/http/handlers"
	"github.com/wellport-health/patient-portal-api/internal/masterapi"
	"github.com/wellport-health/patient-portal-api/internal/pricing"
	"github.com/wellport-health/patient-portal-api/internal/scheduling"
	"github.com/wellport-health/patient-portal-api/pkg/logging"
)

func newTestRouter(t *testing.T, upstream http.HandlerFunc) http.Handler {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	client := masterapi.NewClient(srv.URL, "key", "token", logging.Default())

	catalog := scheduling.NewCatalog(client, 1000, logging.Default(), nil)
	builder := scheduling.NewRequestBuilder(scheduling.AvailabilityConfig{
		Fallback: scheduling.ModeIdentifiers{CategoryID: "cat-1", EventID: "evt-1"},
	})
	availability := scheduling.NewAvailabilityService(client, builder, logging.Default(), nil)
	quotes := pricing.NewQuoteService(client, nil, nil, "99214", logging.Default(), nil)

	return New(&Config{
		Logger:             logging.Default(),
		Scheduling:         handlers.NewSchedulingHandler(catalog, availability, logging.Default()),
		Pricing:            handlers.NewPricingHandler(quotes, logging.Default()),
		CORSAllowedOrigins: []string{"https://portal.example"},
	})
}

func TestRouterHealth(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRouterRoutes(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/resources/by-location":
			w.Write([]byte(`{"items":[{"id":"R1","resourceDisplayName":"Dr. Adams"}]}`))
		case "/appointments/availability":
			w.Write([]byte(`{"items":[{"resourceId":"R1","startDateTime":"2026-09-01T09:00:00"}]}`))
		case "/master/procedures":
			w.Write([]byte(`{"items":[{"code":"99214","currentPrice":175}]}`))
		default:
			http.NotFound(w, req)
		}
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scheduling/resources", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("resources status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	body := `{"date":"2026-09-01","locationIds":["L1"],"resourceIds":["R1"],"mode":"inperson"}`
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/scheduling/availability", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("availability status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pricing/quote", strings.NewReader(`{"planName":"Basic","mode":"inperson"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("quote status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {})

	req := httptest.NewRequest(http.MethodOptions, "/pricing/quote", nil)
	req.Header.Set("Origin", "https://portal.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://portal.example" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
