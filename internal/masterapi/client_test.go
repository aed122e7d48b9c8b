package masterapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wellport-health/patient-portal-api/pkg/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, "key-1", "token-1", logging.Default())
}

func TestClient_GetResourcesByLocation_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/resources/by-location" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("locationId") != "loc-1" {
			t.Fatalf("locationId = %s", r.URL.Query().Get("locationId"))
		}
		if r.URL.Query().Get("top") != "50" {
			t.Fatalf("top = %s", r.URL.Query().Get("top"))
		}
		if r.URL.Query().Has("address") {
			t.Fatal("empty address should be omitted")
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
			t.Fatalf("Authorization = %s", got)
		}
		if got := r.Header.Get("X-Api-Key"); got != "key-1" {
			t.Fatalf("X-Api-Key = %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Items":[{"id":"res-1","resourceDisplayName":"Dr. Adams","isDeleted":false}]}`))
	})

	items, err := client.GetResourcesByLocation(context.Background(), ResourceFilters{LocationID: "loc-1", Top: 50})
	if err != nil {
		t.Fatalf("GetResourcesByLocation() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].DisplayName != "Dr. Adams" {
		t.Fatalf("display name = %s", items[0].DisplayName)
	}
}

func TestClient_GetAvailability_PostsWireBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/appointments/availability" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("Content-Type = %s", got)
		}
		_, _ = w.Write([]byte(`{"Items":[{"resourceId":"res-1","startDateTime":"2026-03-02T09:00:00"}]}`))
	})

	payload, err := client.GetAvailability(context.Background(), AvailabilityRequest{
		CategoryID:     "cat-1",
		EventID:        "evt-1",
		DateRangeStart: "2026-03-02T00:00:00",
		DateRangeEnd:   "2026-03-02T23:59:59",
		DaysOfWeek:     []int{1, 2, 3, 4, 5, 6, 7},
	})
	if err != nil {
		t.Fatalf("GetAvailability() error = %v", err)
	}
	if payload == nil {
		t.Fatal("expected decoded payload")
	}
}

func TestClient_GetProcedures_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/master/procedures" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"items":[{"code":"99214","currentPrice":"175.00","isDeleted":false}]}`))
	})

	items, err := client.GetProcedures(context.Background())
	if err != nil {
		t.Fatalf("GetProcedures() error = %v", err)
	}
	if len(items) != 1 || items[0].Code != "99214" {
		t.Fatalf("items = %+v", items)
	}
}

func TestClient_HTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream failed", http.StatusBadGateway)
	})

	_, err := client.GetResourcesByLocation(context.Background(), ResourceFilters{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestClient_InvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"items":[`))
	})

	_, err := client.GetProcedures(context.Background())
	if err == nil {
		t.Fatal("expected JSON decode error, got nil")
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(`{"items":[]}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.GetProcedures(ctx)
	if err == nil {
		t.Fatal("expected cancellation error, got nil")
	}
}
